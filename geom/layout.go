package geom

import (
	"math"
	"strings"
)

// DefaultLineHeight is the line height multiplier used when a text element
// does not carry one.
const DefaultLineHeight = 1.25

// Text alignments.
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// TextLine is one laid-out line of a text element, in element-local
// coordinates. X is the anchor: the line's left edge, center or right edge
// depending on alignment. Baseline is the y of the alphabetic baseline.
type TextLine struct {
	Text     string
	X        float64
	Baseline float64
}

// LayoutText splits s on newlines and positions each line inside a box of
// the given width.
func LayoutText(s string, fontSize, lineHeight float64, align string, width float64) []TextLine {
	if lineHeight <= 0 {
		lineHeight = DefaultLineHeight
	}
	advance := fontSize * lineHeight
	x := TextAnchorX(align, width)
	parts := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	lines := make([]TextLine, len(parts))
	for i, part := range parts {
		lines[i] = TextLine{
			Text:     part,
			X:        x,
			Baseline: float64(i)*advance + fontSize,
		}
	}
	return lines
}

// TextAnchorX returns the horizontal anchor for an alignment.
func TextAnchorX(align string, width float64) float64 {
	switch align {
	case AlignCenter:
		return width / 2
	case AlignRight:
		return width
	default:
		return 0
	}
}

// LineStartX converts an anchor into the x where a line of the given
// measured width starts.
func LineStartX(align string, anchor, lineWidth float64) float64 {
	switch align {
	case AlignCenter:
		return anchor - lineWidth/2
	case AlignRight:
		return anchor - lineWidth
	default:
		return anchor
	}
}

// Frame decoration constants.
const (
	FrameStrokeColor        = "#bbb"
	FrameStrokeWidth        = 2.0
	FrameCornerRadius       = 8.0
	FrameNameOffset         = 3.0
	FrameNameFontSize       = 14.0
	FrameNameLineHeight     = 1.25
	FrameNameColorLight     = "#999999"
	FrameNameColorDark      = "#7a7a7a"
	DefaultFrameNamePrefix  = "Frame"
	frameNameEllipsis       = "…"
	EmbeddablePlaceholder   = "Empty Web Embed"
	OcclusionPadding        = 4.0
	DefaultEmbedFontDivisor = 30.0
)

// FrameLabelHeight is the height of the strip above a frame that holds its
// name.
func FrameLabelHeight() float64 {
	return FrameNameFontSize*FrameNameLineHeight + FrameNameOffset
}

// FrameLabelBaseline is the baseline of the frame name, relative to the
// frame's top edge.
func FrameLabelBaseline() float64 {
	return -FrameNameOffset - (FrameNameFontSize*FrameNameLineHeight-FrameNameFontSize)/2
}

// FrameName returns the display name of a frame.
func FrameName(name string) string {
	if strings.TrimSpace(name) == "" {
		return DefaultFrameNamePrefix
	}
	return name
}

// TruncateToWidth shortens s with a trailing ellipsis until measure(s) fits
// in maxWidth. It returns s unchanged when it already fits and the bare
// ellipsis when nothing else fits.
func TruncateToWidth(s string, maxWidth float64, measure func(string) float64) string {
	if measure(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	lo, hi := 0, len(runes)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if measure(string(runes[:mid])+frameNameEllipsis) <= maxWidth {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	if lo == 0 {
		if measure(frameNameEllipsis) <= maxWidth {
			return frameNameEllipsis
		}
		return ""
	}
	return strings.TrimRight(string(runes[:lo]), " ") + frameNameEllipsis
}

// EmbeddableLabel is the placeholder text drawn inside an embeddable.
type EmbeddableLabel struct {
	Text     string
	FontSize float64
	Lines    []TextLine
}

// LayoutEmbeddableLabel centers the link (or a placeholder) inside a w x h
// box. The font size is min(w/2, w/len(text)) but never below w/30.
// measure reports the width of a string at font size 1.
func LayoutEmbeddableLabel(link string, w, h float64, measure func(string) float64) EmbeddableLabel {
	text := link
	if strings.TrimSpace(text) == "" {
		text = EmbeddablePlaceholder
	}
	n := float64(len([]rune(text)))
	size := math.Max(math.Min(w/2, w/n), w/DefaultEmbedFontDivisor)

	var wrapped []string
	if measure != nil {
		wrapped = WrapText(text, w, func(s string) float64 { return measure(s) * size })
	} else {
		wrapped = []string{text}
	}
	advance := size * DefaultLineHeight
	top := (h - advance*float64(len(wrapped))) / 2
	lines := make([]TextLine, len(wrapped))
	for i, l := range wrapped {
		lines[i] = TextLine{Text: l, X: w / 2, Baseline: top + float64(i)*advance + size}
	}
	return EmbeddableLabel{Text: text, FontSize: size, Lines: lines}
}

// WrapText breaks s into lines no wider than maxWidth. Words longer than a
// line are split between characters.
func WrapText(s string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	cur := ""
	flush := func() {
		if cur != "" {
			lines = append(lines, cur)
			cur = ""
		}
	}
	for _, word := range strings.Fields(s) {
		candidate := word
		if cur != "" {
			candidate = cur + " " + word
		}
		if measure(candidate) <= maxWidth {
			cur = candidate
			continue
		}
		flush()
		if measure(word) <= maxWidth {
			cur = word
			continue
		}
		for _, r := range word {
			if cur != "" && measure(cur+string(r)) > maxWidth {
				flush()
			}
			cur += string(r)
		}
	}
	flush()
	if len(lines) == 0 {
		lines = []string{s}
	}
	return lines
}
