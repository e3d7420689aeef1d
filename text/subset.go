package text

import (
	"fmt"
	"log/slog"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"github.com/go-text/typesetting/font"

	"github.com/gogpu/scenerender/internal/logx"
)

// rangeCutsets lists, per entry of Ranges, the code points of gf that fall
// inside that range.
func rangeCutsets(gf *font.Font) []string {
	sets := make([]strings.Builder, len(Ranges))
	it := gf.Cmap.Iter()
	for it.Next() {
		c, gid := it.Char()
		if gid == 0 {
			continue
		}
		sets[RangeIndex(c)].WriteRune(c)
	}
	out := make([]string, len(sets))
	for i := range sets {
		out[i] = sets[i].String()
	}
	return out
}

// cutFont returns a TrueType file holding only the glyphs of cutset.
func cutFont(data []byte, cutset string) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("text: subset font: %v", r)
		}
	}()
	out = fpdf.UTF8CutFont(data, cutset)
	if len(out) == 0 {
		return nil, fmt.Errorf("text: subset font: empty result")
	}
	return out, nil
}

// segments splits f into one Segment per Range. TrueType families get a
// subset file per range; ranges the font does not cover carry no data.
// CFF families cannot be cut and every segment shares the full file.
func segments(f *Family) []Segment {
	out := make([]Segment, len(Ranges))
	for i, rg := range Ranges {
		out[i] = Segment{Range: rg, Data: f.Data}
	}
	if !f.IsTrueType() {
		return out
	}
	for i, cutset := range rangeCutsets(f.gt) {
		if cutset == "" {
			out[i].Data = nil
			continue
		}
		data, err := cutFont(f.Data, cutset)
		if err != nil {
			logx.Logger().Warn("font range embeds the full file",
				slog.String("family", f.Name),
				slog.String("range", Ranges[i].Name),
				slog.Any("error", err))
			continue
		}
		out[i].Data = data
	}
	return out
}
