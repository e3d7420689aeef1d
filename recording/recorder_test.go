package recording

import (
	"image/color"
	"testing"

	"github.com/gogpu/scenerender/geom"
)

func square() *geom.Path {
	p := geom.NewPath()
	p.Rectangle(0, 0, 10, 10)
	return p
}

func TestPlaybackOrder(t *testing.T) {
	rec := NewRecorder(100, 50)
	black := NewSolidBrush(color.NRGBA{A: 255})

	rec.FillRect(geom.NewRect(0, 0, 100, 50), black)
	rec.BeginGroup(Group{Clip: &Clip{Path: square(), Matrix: geom.Identity()}})
	rec.FillPath(square(), geom.Identity(), black, FillRuleNonZero)
	rec.StrokePath(square(), geom.Identity(), black, Stroke{Width: 2})
	rec.EndGroup()
	rec.BeginGroup(Group{Mask: &Mask{Holes: []*geom.Path{square()}}})
	rec.DrawText(TextRun{Text: "hi"}, geom.Identity(), black)
	rec.DrawImage(&Image{ID: "img"}, geom.Identity(), ImageOptions{Alpha: 1})
	r := rec.FinishRecording()

	mock := newMockBackend("m")
	if err := r.Playback(mock); err != nil {
		t.Fatalf("Playback: %v", err)
	}
	want := []string{
		"rect 100x50",
		"group clip=true mask=false",
		"fill 5",
		"stroke 5 w=2",
		"end",
		"group clip=false mask=true",
		"text hi",
		"image img",
		"end",
	}
	if len(mock.calls) != len(want) {
		t.Fatalf("calls = %q, want %q", mock.calls, want)
	}
	for i := range want {
		if mock.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, mock.calls[i], want[i])
		}
	}
	if mock.width != 100 || mock.height != 50 || mock.beginCalls != 1 || mock.endCalls != 1 {
		t.Errorf("lifecycle: %+v", mock)
	}
}

func TestRecorderSkipsEmpty(t *testing.T) {
	rec := NewRecorder(1, 1)
	brush := NewSolidBrush(color.NRGBA{A: 255})
	rec.FillPath(geom.NewPath(), geom.Identity(), brush, FillRuleNonZero)
	rec.StrokePath(square(), geom.Identity(), brush, Stroke{Width: 0})
	rec.DrawText(TextRun{}, geom.Identity(), brush)
	rec.DrawImage(nil, geom.Identity(), ImageOptions{})
	rec.EndGroup()

	if n := len(rec.FinishRecording().Commands()); n != 0 {
		t.Errorf("got %d commands, want 0", n)
	}
}

func TestRecordingIsImmutable(t *testing.T) {
	rec := NewRecorder(1, 1)
	p := square()
	rec.FillPath(p, geom.Identity(), SolidBrush{}, FillRuleNonZero)
	p.LineTo(99, 99)

	r := rec.FinishRecording()
	cmd := r.Commands()[0].(FillPathCommand)
	if got := r.Resources().GetPath(cmd.Path).Len(); got != 5 {
		t.Errorf("pooled path has %d elements, want 5", got)
	}
}

func TestImagesAreInterned(t *testing.T) {
	pool := NewResourcePool()
	a := pool.AddImage(&Image{ID: "x"})
	b := pool.AddImage(&Image{ID: "x"})
	c := pool.AddImage(&Image{})
	if a != b || a == c || pool.ImageCount() != 2 {
		t.Errorf("refs %d %d %d, count %d", a, b, c, pool.ImageCount())
	}
	if pool.GetImage(ImageRef(7)) != nil || pool.GetPath(PathRef(3)) != nil || pool.GetBrush(BrushRef(3)) != nil {
		t.Error("out of range references must resolve to nil")
	}
}

func TestFinishClosesGroups(t *testing.T) {
	rec := NewRecorder(1, 1)
	rec.BeginGroup(Group{})
	rec.BeginGroup(Group{})
	r := rec.FinishRecording()
	if r.Count(CmdBeginGroup) != 2 || r.Count(CmdEndGroup) != 2 {
		t.Errorf("unbalanced groups: %d begin, %d end", r.Count(CmdBeginGroup), r.Count(CmdEndGroup))
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#1e1e1e", color.NRGBA{0x1e, 0x1e, 0x1e, 0xff}},
		{"#fff", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"#ff000080", color.NRGBA{0xff, 0, 0, 0x80}},
		{"transparent", color.NRGBA{}},
		{"", color.NRGBA{}},
		{"not-a-color", color.NRGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseColor(tt.in).Color; got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSolidBrush(t *testing.T) {
	b := NewSolidBrush(color.NRGBA{R: 0x12, G: 0xab, B: 0x09, A: 200})
	if b.Hex() != "#12ab09" {
		t.Errorf("Hex = %s", b.Hex())
	}
	if got := b.WithAlpha(0.5).Color.A; got != 100 {
		t.Errorf("WithAlpha(0.5).A = %d, want 100", got)
	}
	if !b.WithAlpha(0).IsTransparent() {
		t.Error("zero alpha must be transparent")
	}
	if BrushColor(nil) != (color.NRGBA{}) {
		t.Error("nil brush must be transparent")
	}
}

func TestCommandTypeString(t *testing.T) {
	if CmdDrawText.String() != "DrawText" || CommandType(200).String() != "Unknown" {
		t.Error("unexpected command names")
	}
}
