package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/gogpu/scenerender/assets"
	"github.com/gogpu/scenerender/geom"
	"github.com/gogpu/scenerender/recording"
	"github.com/gogpu/scenerender/text"
)

// DrawText writes a <text> element with the full line; the viewer lays
// it out with the embedded font.
func (b *Backend) DrawText(run recording.TextRun, m geom.Matrix, brush recording.Brush) {
	c := recording.BrushColor(brush)
	if run.Text == "" || c.A == 0 || run.Size <= 0 {
		return
	}
	if b.fonts != nil {
		b.usage.Add(run.Family, run.Text)
	}
	fmt.Fprintf(&b.body, `<text x="%s" y="%s" font-family="%s" font-size="%s" text-anchor="%s"%s style="white-space: pre"%s>`,
		num(run.Anchor.X), num(run.Anchor.Y), b.fontFamily(run), num(run.Size), textAnchor(run.Align),
		fillAttrs(brush, recording.FillRuleNonZero), transformAttr(m))
	_ = xml.EscapeText(&b.body, []byte(run.Text))
	b.body.WriteString("</text>")
}

// fontFamily returns the CSS font-family list for run: the registered
// family name followed by a generic fallback.
func (b *Backend) fontFamily(run recording.TextRun) string {
	generic := "sans-serif"
	if run.Family == text.FamilyCode {
		generic = "monospace"
	}
	var f *text.Family
	if b.fonts != nil {
		f, _ = b.fonts.Family(run.Family)
	}
	if f == nil && run.Shaped != nil {
		f = run.Shaped.Family
	}
	if f == nil {
		return generic
	}
	return fmt.Sprintf("&quot;%s&quot;, %s", f.Name, generic)
}

func textAnchor(align string) string {
	switch align {
	case "center":
		return "middle"
	case "right":
		return "end"
	}
	return "start"
}

// writeFonts writes one @font-face rule per embedded segment group.
func (b *Backend) writeFonts(doc *bytes.Buffer) {
	if b.fonts == nil {
		return
	}
	embeds := b.fonts.Embeds(&b.usage)
	if len(embeds) == 0 {
		return
	}
	doc.WriteString(`<style class="style-fonts"><![CDATA[`)
	for _, e := range embeds {
		mime := "font/otf"
		if e.Family.IsTrueType() {
			mime = "font/ttf"
		}
		fmt.Fprintf(doc, "\n@font-face {\n\tfont-family: \"%s\";\n\tsrc: url(%s);\n\tunicode-range: %s;\n}",
			e.Family.Name, assets.EncodeDataURL(mime, e.Data), e.UnicodeRange)
	}
	doc.WriteString("\n]]></style>")
}
