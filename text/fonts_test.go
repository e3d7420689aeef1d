package text

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/scenerender/geom"
)

func loaded(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	require.NoError(t, r.Load())
	return r
}

func TestLoadIsIdempotent(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, r.Load())
		}()
	}
	wg.Wait()
	require.NoError(t, r.Load())

	for _, id := range []int{FamilyHandDrawn, FamilyNormal, FamilyCode} {
		f, err := r.Family(id)
		require.NoError(t, err)
		assert.Equal(t, id, f.ID)
	}
}

func TestFamilyAliases(t *testing.T) {
	r := loaded(t)
	tests := []struct {
		id   int
		want int
	}{
		{FamilyExcalifont, FamilyHandDrawn},
		{FamilyNunito, FamilyHandDrawn},
		{FamilyLilita, FamilyCode},
		{FamilyComicShark, FamilyCode},
		{42, DefaultFamily},
	}
	for _, tt := range tests {
		f, err := r.Family(tt.id)
		require.NoError(t, err)
		assert.Equal(t, tt.want, f.ID, "family %d", tt.id)
	}
}

func TestEmptyRegistry(t *testing.T) {
	r := NewRegistry()
	_, err := r.Family(FamilyHandDrawn)
	assert.True(t, errors.Is(err, ErrUnknownFamily))
	assert.Equal(t, 0.0, r.Measure(FamilyHandDrawn, 20, "x"))
	assert.ErrorIs(t, r.Register(9, "empty", nil), ErrEmptyFontData)

	var fe *FontError
	require.ErrorAs(t, r.Register(9, "junk", []byte("not a font")), &fe)
	assert.Equal(t, 9, fe.Family)
}

func TestMeasure(t *testing.T) {
	r := loaded(t)

	short := r.Measure(FamilyHandDrawn, 20, "Hi")
	long := r.Measure(FamilyHandDrawn, 20, "Hello, world")
	assert.Greater(t, short, 0.0)
	assert.Greater(t, long, short)
	assert.InDelta(t, 2*short, r.Measure(FamilyHandDrawn, 40, "Hi"), 1)

	mono := r.Measurer(FamilyCode, 10)
	assert.InDelta(t, mono("iiii"), mono("MMMM"), 1e-9)

	assert.Equal(t, long, r.Measure(FamilyHandDrawn, 20, "Hi\nHello, world"))
	assert.Equal(t, 0.0, r.Measure(FamilyHandDrawn, 20, ""))
}

func TestTruncateWithMeasure(t *testing.T) {
	r := loaded(t)
	measure := r.Measurer(FamilyHandDrawn, geom.FrameNameFontSize)
	name := strings.Repeat("Frame name ", 10)
	got := geom.TruncateToWidth(name, 80, measure)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.LessOrEqual(t, measure(got), 80.0)
}

func TestOutline(t *testing.T) {
	r := loaded(t)
	run, err := r.Shape(FamilyNormal, 20, "Ab c")
	require.NoError(t, err)
	require.Len(t, run.Glyphs, 4)

	p := run.Outline(geom.Pt(10, 30))
	require.False(t, p.IsEmpty())
	b := p.Bounds()
	assert.GreaterOrEqual(t, b.MinX, 9.0)
	assert.Less(t, b.MinY, 30.0, "glyphs rise above the baseline")
	assert.LessOrEqual(t, b.MaxX, 10+run.Width+1)

	space, err := r.Shape(FamilyNormal, 20, " ")
	require.NoError(t, err)
	assert.True(t, space.Outline(geom.Point{}).IsEmpty())
}

func TestIsTrueType(t *testing.T) {
	r := loaded(t)
	goReg, _ := r.Family(FamilyHandDrawn)
	assert.True(t, goReg.IsTrueType())
}

func TestEmbeds(t *testing.T) {
	r := loaded(t)
	var u Usage
	u.Add(FamilyHandDrawn, "plain")
	u.Add(FamilyExcalifont, "naïve – ok")

	embeds := r.Embeds(&u)
	require.Len(t, embeds, 2)
	assert.Equal(t, FamilyHandDrawn, embeds[0].Family.ID)
	assert.Equal(t, "U+0000-00FF", embeds[0].UnicodeRange)
	assert.Equal(t, "U+2000-206F", embeds[1].UnicodeRange)

	var none Usage
	assert.Empty(t, r.Embeds(&none))
}

func TestEmbedsAreRangeSubsets(t *testing.T) {
	r := loaded(t)
	goReg, err := r.Family(FamilyHandDrawn)
	require.NoError(t, err)

	var u Usage
	u.Add(FamilyHandDrawn, "Hi")
	embeds := r.Embeds(&u)
	require.Len(t, embeds, 1)
	assert.Less(t, len(embeds[0].Data), len(goReg.Data))
	assert.Equal(t, []byte{0, 1, 0, 0}, embeds[0].Data[:4])

	// Go Regular has no glyphs above the BMP: nothing to embed for them.
	var emoji Usage
	emoji.Add(FamilyHandDrawn, "😀")
	assert.Empty(t, r.Embeds(&emoji))
}

func TestEmbedsMergeSharedData(t *testing.T) {
	r := loaded(t)
	normal, err := r.Family(FamilyNormal)
	require.NoError(t, err)
	if normal.IsTrueType() {
		t.Skip("bundled normal family is cut into subsets")
	}
	var u Usage
	u.Add(FamilyNormal, "a – b")
	embeds := r.Embeds(&u)
	require.Len(t, embeds, 1, "segments sharing one file are merged")
	assert.Equal(t, "U+0000-00FF, U+2000-206F", embeds[0].UnicodeRange)
	assert.Equal(t, normal.Data, embeds[0].Data)
}

func TestRangeIndex(t *testing.T) {
	assert.Equal(t, "latin", Ranges[RangeIndex('a')].Name)
	assert.Equal(t, "latin-ext", Ranges[RangeIndex('ő')].Name)
	assert.Equal(t, "greek-cyrillic", Ranges[RangeIndex('Ж')].Name)
	assert.Equal(t, "cjk", Ranges[RangeIndex('漢')].Name)
	assert.Equal(t, "supplementary", Ranges[RangeIndex('😀')].Name)
	assert.Equal(t, "U+0000-00FF", Ranges[0].CSS())
}

func TestCacheEviction(t *testing.T) {
	c := NewCache[int, int](4)
	for i := range 5 {
		c.GetOrCreate(i, func() int { return i * i })
	}
	assert.Equal(t, 3, c.Len())
	_, ok := c.Get(0)
	assert.False(t, ok)
	v, ok := c.Get(4)
	assert.True(t, ok)
	assert.Equal(t, 16, v)
}
