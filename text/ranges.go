package text

import (
	"fmt"
	"sort"
)

// Range is a contiguous block of code points that a font segment covers.
type Range struct {
	Name   string
	Lo, Hi rune
}

// CSS returns the range in CSS unicode-range syntax.
func (r Range) CSS() string {
	return fmt.Sprintf("U+%04X-%04X", r.Lo, r.Hi)
}

// Contains reports whether c falls inside r.
func (r Range) Contains(c rune) bool {
	return c >= r.Lo && c <= r.Hi
}

// Ranges partitions the code space. Every family is split along these
// boundaries.
var Ranges = []Range{
	{"latin", 0x0000, 0x00FF},
	{"latin-ext", 0x0100, 0x036F},
	{"greek-cyrillic", 0x0370, 0x052F},
	{"misc", 0x0530, 0x1FFF},
	{"punctuation", 0x2000, 0x206F},
	{"symbols", 0x2070, 0x2BFF},
	{"cjk", 0x2C00, 0xFFFF},
	{"supplementary", 0x10000, 0x10FFFF},
}

// RangeIndex returns the index in Ranges of the block containing c.
func RangeIndex(c rune) int {
	i := sort.Search(len(Ranges), func(i int) bool { return Ranges[i].Hi >= c })
	if i == len(Ranges) {
		return len(Ranges) - 1
	}
	return i
}

// Usage records which range segments of which families a document needs.
// The zero value is ready to use.
type Usage struct {
	used map[int]map[int]struct{}
}

// Add marks the segments covering s in family as used.
func (u *Usage) Add(family int, s string) {
	if u.used == nil {
		u.used = make(map[int]map[int]struct{})
	}
	set := u.used[family]
	if set == nil {
		set = make(map[int]struct{})
		u.used[family] = set
	}
	for _, c := range s {
		if c == '\n' || c == '\r' {
			continue
		}
		set[RangeIndex(c)] = struct{}{}
	}
}

// Families returns the family ids in use, ascending.
func (u *Usage) Families() []int {
	out := make([]int, 0, len(u.used))
	for f, set := range u.used {
		if len(set) > 0 {
			out = append(out, f)
		}
	}
	sort.Ints(out)
	return out
}

// RangesOf returns the used range indexes of family, ascending.
func (u *Usage) RangesOf(family int) []int {
	set := u.used[family]
	out := make([]int, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Ints(out)
	return out
}
