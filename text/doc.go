// Package text registers the fonts used by scene text and measures,
// shapes and outlines strings with them.
//
// Fonts are held by a Registry that is built once per rendering context:
//
//	reg := text.NewRegistry()
//	if err := reg.Load(); err != nil {
//	    return err
//	}
//	w := reg.Measure(text.FamilyNormal, 20, "Hello")
//
// Load registers the bundled families and may be called any number of
// times. Shaping goes through go-text/typesetting (HarfBuzz); glyph
// outlines come from golang.org/x/image/font/sfnt.
//
// Each family is split into Unicode-range segments. Vector output embeds
// only the segments that the rendered text touches; see Registry.Embeds.
package text
