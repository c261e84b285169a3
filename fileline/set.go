package fileline

import (
	"sort"
	"strconv"
	"strings"
)

// FileLineSet is an immutable set of FileLine values, partitioned internally by filename. Construct instances with NewFileLineSet or FileLineSetFrom; the
// derived-set operations (Union, Intersection, Filter, RestrictToFiles) always return new sets and leave their operands unchanged.
type FileLineSet struct {
	byFile map[string]map[int]struct{}
}

// NewFileLineSet returns a set holding the given lines. Duplicates collapse.
func NewFileLineSet(lines ...FileLine) *FileLineSet {
	s := &FileLineSet{byFile: make(map[string]map[int]struct{})}
	for _, l := range lines {
		s.insert(l)
	}
	return s
}

// FileLineSetFrom returns a set holding, for each filename in contents, the listed line numbers.
func FileLineSetFrom(contents map[string][]int) *FileLineSet {
	s := &FileLineSet{byFile: make(map[string]map[int]struct{})}
	for filename, nums := range contents {
		for _, num := range nums {
			s.insert(FileLine{Filename: filename, Num: num})
		}
	}
	return s
}

// insert is only called during construction; sets are never mutated after they are returned to the caller.
func (s *FileLineSet) insert(l FileLine) {
	file, ok := s.byFile[l.Filename]
	if !ok {
		file = make(map[int]struct{})
		s.byFile[l.Filename] = file
	}
	file[l.Num] = struct{}{}
}

// Contains reports whether the set holds the given line.
func (s *FileLineSet) Contains(l FileLine) bool {
	_, ok := s.byFile[l.Filename][l.Num]
	return ok
}

// Len returns the number of lines in the set.
func (s *FileLineSet) Len() int {
	n := 0
	for _, file := range s.byFile {
		n += len(file)
	}
	return n
}

// Files returns the sorted names of the files represented by the lines in this set.
func (s *FileLineSet) Files() []string {
	files := make([]string, 0, len(s.byFile))
	for filename := range s.byFile {
		files = append(files, filename)
	}
	sort.Strings(files)
	return files
}

// LinesInFile returns the lines in this set that belong to the named file, in ascending order. The result is empty if the file is not represented.
func (s *FileLineSet) LinesInFile(filename string) []FileLine {
	nums := sortedNums(s.byFile[filename])
	lines := make([]FileLine, 0, len(nums))
	for _, num := range nums {
		lines = append(lines, FileLine{Filename: filename, Num: num})
	}
	return lines
}

// All returns every line in the set, ordered by filename and then line number.
func (s *FileLineSet) All() []FileLine {
	var lines []FileLine
	for _, filename := range s.Files() {
		lines = append(lines, s.LinesInFile(filename)...)
	}
	return lines
}

// Union returns a new set containing every line from this set and from each of the others.
func (s *FileLineSet) Union(others ...*FileLineSet) *FileLineSet {
	merged := NewFileLineSet(s.All()...)
	for _, other := range others {
		for _, l := range other.All() {
			merged.insert(l)
		}
	}
	return merged
}

// Intersection returns a new set containing the lines present in this set and in every one of the others.
func (s *FileLineSet) Intersection(others ...*FileLineSet) *FileLineSet {
	result := NewFileLineSet()
	for _, l := range s.All() {
		keep := true
		for _, other := range others {
			if !other.Contains(l) {
				keep = false
				break
			}
		}
		if keep {
			result.insert(l)
		}
	}
	return result
}

// Filter returns the subset of lines for which pred returns true.
func (s *FileLineSet) Filter(pred func(FileLine) bool) *FileLineSet {
	result := NewFileLineSet()
	for _, l := range s.All() {
		if pred(l) {
			result.insert(l)
		}
	}
	return result
}

// RestrictToFiles returns the subset of lines that occur in any of the named files.
func (s *FileLineSet) RestrictToFiles(filenames []string) *FileLineSet {
	result := NewFileLineSet()
	for _, filename := range filenames {
		for num := range s.byFile[filename] {
			result.insert(FileLine{Filename: filename, Num: num})
		}
	}
	return result
}

// ToMap returns the set's contents as a map from filename to ascending line numbers.
func (s *FileLineSet) ToMap() map[string][]int {
	out := make(map[string][]int, len(s.byFile))
	for filename, file := range s.byFile {
		out[filename] = sortedNums(file)
	}
	return out
}

// String renders the set compactly, one file per line, with runs of consecutive line numbers collapsed. For example:
//
//	a.py: 1..3; 7
//	b.py: 10
func (s *FileLineSet) String() string {
	var out []string
	for _, filename := range s.Files() {
		nums := sortedNums(s.byFile[filename])
		if len(nums) == 0 {
			continue
		}

		type run struct{ start, stop int }
		runs := []run{{start: nums[0], stop: nums[0]}}
		for _, num := range nums[1:] {
			if num == runs[len(runs)-1].stop+1 {
				runs[len(runs)-1].stop = num
			} else {
				runs = append(runs, run{start: num, stop: num})
			}
		}

		strs := make([]string, 0, len(runs))
		for _, r := range runs {
			if r.start == r.stop {
				strs = append(strs, strconv.Itoa(r.start))
			} else {
				strs = append(strs, strconv.Itoa(r.start)+".."+strconv.Itoa(r.stop))
			}
		}
		out = append(out, filename+": "+strings.Join(strs, "; "))
	}
	return strings.Join(out, "\n")
}

func sortedNums(file map[int]struct{}) []int {
	nums := make([]int, 0, len(file))
	for num := range file {
		nums = append(nums, num)
	}
	sort.Ints(nums)
	return nums
}
