package text

import (
	"bytes"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/scenerender/internal/logx"
)

// Font family ids as stored in scene documents.
const (
	FamilyHandDrawn   = 1
	FamilyNormal      = 2
	FamilyCode        = 3
	FamilyExcalifont  = 5
	FamilyNunito      = 6
	FamilyLilita      = 7
	FamilyComicShark  = 8
	DefaultFamily     = FamilyHandDrawn
	runCacheSoftLimit = 4096
)

// aliases maps families without a bundled font onto one that has it.
var aliases = map[int]int{
	FamilyExcalifont: FamilyHandDrawn,
	FamilyNunito:     FamilyHandDrawn,
	FamilyLilita:     FamilyCode,
	FamilyComicShark: FamilyCode,
}

// Segment is the font data serving one Range of a family. Data is nil
// when the family has no glyphs in the range.
type Segment struct {
	Range Range
	Data  []byte
}

// Family is one registered font.
type Family struct {
	ID   int
	Name string
	// Data is the complete font file.
	Data []byte
	// Segments has one entry per element of Ranges.
	Segments []Segment

	sfnt *sfnt.Font
	gt   *font.Font
}

// IsTrueType reports whether Data holds glyf outlines rather than CFF.
func (f *Family) IsTrueType() bool {
	return len(f.Data) >= 4 && (bytes.Equal(f.Data[:4], []byte{0, 1, 0, 0}) || string(f.Data[:4]) == "true")
}

// Registry holds the fonts of one rendering context. It is safe for
// concurrent use once loaded.
type Registry struct {
	once sync.Once
	err  error

	mu       sync.RWMutex
	families map[int]*Family

	shaper *shaper
	runs   *Cache[runKey, *Run]
}

// NewRegistry returns an empty registry. Call Load before use.
func NewRegistry() *Registry {
	return &Registry{
		families: make(map[int]*Family),
		shaper:   newShaper(),
		runs:     NewCache[runKey, *Run](runCacheSoftLimit),
	}
}

// Load registers the bundled families. Only the first call does any work;
// later calls return the first result.
func (r *Registry) Load() error {
	r.once.Do(func() {
		bundled := []struct {
			id   int
			name string
			data []byte
		}{
			{FamilyHandDrawn, "Go Regular", goregular.TTF},
			{FamilyNormal, "Latin Modern Sans", lmsans10regular.TTF},
			{FamilyCode, "Go Mono", gomono.TTF},
		}
		for _, b := range bundled {
			if err := r.Register(b.id, b.name, b.data); err != nil {
				r.err = err
				return
			}
		}
		logx.Logger().Debug("fonts loaded", slog.Int("families", len(bundled)))
	})
	return r.err
}

// Register adds or replaces a family and cuts it into range segments.
func (r *Registry) Register(id int, name string, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	sf, err := sfnt.Parse(data)
	if err != nil {
		return &FontError{Family: id, Name: name, Err: err}
	}
	gf, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return &FontError{Family: id, Name: name, Err: err}
	}

	f := &Family{ID: id, Name: name, Data: data, sfnt: sf, gt: gf.Font}
	f.Segments = segments(f)

	r.mu.Lock()
	r.families[id] = f
	r.mu.Unlock()
	return nil
}

// Family resolves a family id, following aliases and falling back to
// DefaultFamily for unknown ids.
func (r *Registry) Family(id int) (*Family, error) {
	if to, ok := aliases[id]; ok {
		id = to
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if f, ok := r.families[id]; ok {
		return f, nil
	}
	if f, ok := r.families[DefaultFamily]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownFamily, id)
}

// Embed is one font file to inline into a vector document.
type Embed struct {
	Family *Family
	Data   []byte
	// UnicodeRange lists the covered ranges in CSS syntax.
	UnicodeRange string
}

// Embeds returns the font files needed for the ranges recorded in u.
// Segments of a family sharing the same data are merged into one embed.
func (r *Registry) Embeds(u *Usage) []Embed {
	ranges := make(map[*Family]map[int]struct{})
	var families []*Family
	for _, id := range u.Families() {
		f, err := r.Family(id)
		if err != nil {
			continue
		}
		set, ok := ranges[f]
		if !ok {
			set = make(map[int]struct{})
			ranges[f] = set
			families = append(families, f)
		}
		for _, ri := range u.RangesOf(id) {
			set[ri] = struct{}{}
		}
	}
	sort.Slice(families, func(i, j int) bool { return families[i].ID < families[j].ID })

	var out []Embed
	for _, f := range families {
		used := make([]int, 0, len(ranges[f]))
		for ri := range ranges[f] {
			used = append(used, ri)
		}
		sort.Ints(used)

		index := make(map[*byte]int)
		for _, ri := range used {
			seg := f.Segments[ri]
			if len(seg.Data) == 0 {
				continue
			}
			key := &seg.Data[0]
			if i, ok := index[key]; ok {
				out[i].UnicodeRange += ", " + seg.Range.CSS()
				continue
			}
			index[key] = len(out)
			out = append(out, Embed{Family: f, Data: seg.Data, UnicodeRange: seg.Range.CSS()})
		}
	}
	return out
}
