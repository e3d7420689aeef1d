package text

import (
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Glyph is one positioned glyph of a Run. X and Y are pen offsets from the
// run origin, Y growing downward.
type Glyph struct {
	ID      uint16
	Cluster int
	X, Y    float64
	Advance float64
}

// Run is a single line of text shaped with one family at one size.
type Run struct {
	Family *Family
	Size   float64
	Text   string
	Glyphs []Glyph
	// Width is the total advance.
	Width float64
}

// shaper wraps HarfBuzz shaping. HarfbuzzShaper keeps mutable buffers, so
// instances are pooled; font.Face is created per call for the same reason.
type shaper struct {
	pool sync.Pool
}

func newShaper() *shaper {
	return &shaper{
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
}

func (s *shaper) shape(f *Family, size float64, runes []rune) shaping.Output {
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f.gt),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)
	return out
}

// Shape shapes one line of s. Text is NFC-normalized first; line breaks
// are not interpreted.
func (r *Registry) Shape(family int, size float64, s string) (*Run, error) {
	f, err := r.Family(family)
	if err != nil {
		return nil, err
	}
	s = norm.NFC.String(s)
	key := runKey{Family: f.ID, Size: size, Text: s}
	return r.runs.GetOrCreate(key, func() *Run {
		run := &Run{Family: f, Size: size, Text: s}
		if s == "" {
			return run
		}
		out := r.shaper.shape(f, size, []rune(s))
		run.Glyphs = convertGlyphs(out.Glyphs)
		run.Width = fixedToFloat(out.Advance)
		return run
	}), nil
}

// Measure returns the advance width of s, or the widest line when s
// spans several lines. Unknown families measure as zero.
func (r *Registry) Measure(family int, size float64, s string) float64 {
	var w float64
	for _, line := range strings.Split(s, "\n") {
		run, err := r.Shape(family, size, line)
		if err != nil {
			return 0
		}
		w = max(w, run.Width)
	}
	return w
}

// Measurer binds Measure to a family and size.
func (r *Registry) Measurer(family int, size float64) func(string) float64 {
	return func(s string) float64 { return r.Measure(family, size, s) }
}

func detectScript(runes []rune) language.Script {
	for _, c := range runes {
		if c == ' ' || c == '\t' {
			continue
		}
		return language.LookupScript(c)
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

func convertGlyphs(glyphs []shaping.Glyph) []Glyph {
	if len(glyphs) == 0 {
		return nil
	}
	out := make([]Glyph, len(glyphs))
	var x float64
	for i, g := range glyphs {
		adv := fixedToFloat(g.Advance)
		out[i] = Glyph{
			ID:      uint16(g.GlyphID), //nolint:gosec // sfnt glyph indexes are 16-bit
			Cluster: g.TextIndex(),
			X:       x + fixedToFloat(g.XOffset),
			Y:       -fixedToFloat(g.YOffset),
			Advance: adv,
		}
		x += adv
	}
	return out
}
