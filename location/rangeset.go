package location

import "sort"

// FileLocationRangeSet is an immutable collection of FileLocationRange values, partitioned internally by filename. Structurally identical ranges for the same
// file collapse to a single entry.
//
// The zero value is not meaningful; use NewFileLocationRangeSet (an empty argument list yields a usable empty set).
type FileLocationRangeSet struct {
	byFile map[string]map[LocationRange]struct{}
}

// NewFileLocationRangeSet returns a set holding the given ranges. Duplicate ranges within the same file are stored once.
func NewFileLocationRangeSet(ranges ...FileLocationRange) *FileLocationRangeSet {
	s := &FileLocationRangeSet{byFile: make(map[string]map[LocationRange]struct{})}
	for _, r := range ranges {
		s.insert(r)
	}
	return s
}

// insert is only called during construction; sets are never mutated after they are returned to the caller.
func (s *FileLocationRangeSet) insert(r FileLocationRange) {
	file, ok := s.byFile[r.Filename]
	if !ok {
		file = make(map[LocationRange]struct{})
		s.byFile[r.Filename] = file
	}
	file[r.Range] = struct{}{}
}

// Len returns the number of distinct ranges in the set.
func (s *FileLocationRangeSet) Len() int {
	n := 0
	for _, file := range s.byFile {
		n += len(file)
	}
	return n
}

// Contains reports whether any stored range for loc's file contains loc. Cost is linear in the number of ranges stored for that one file.
func (s *FileLocationRangeSet) Contains(loc FileLocation) bool {
	for r := range s.byFile[loc.Filename] {
		if r.Contains(loc.Location) {
			return true
		}
	}
	return false
}

// Union returns a new set containing every range from this set and from each of the others. The operands are unaffected.
func (s *FileLocationRangeSet) Union(others ...*FileLocationRangeSet) *FileLocationRangeSet {
	merged := NewFileLocationRangeSet(s.Ranges()...)
	for _, other := range others {
		for _, r := range other.Ranges() {
			merged.insert(r)
		}
	}
	return merged
}

// Ranges returns the set's contents as a slice, sorted by filename and then by (start, stop) order. The slice is freshly allocated on each call.
func (s *FileLocationRangeSet) Ranges() []FileLocationRange {
	out := make([]FileLocationRange, 0, s.Len())
	for filename, file := range s.byFile {
		for r := range file {
			out = append(out, FileLocationRange{Filename: filename, Range: r})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if c := a.Range.Start.Compare(b.Range.Start); c != 0 {
			return c < 0
		}
		return a.Range.Stop.Compare(b.Range.Stop) < 0
	})
	return out
}
