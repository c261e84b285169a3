package fileline

// FileLineMap is a mutable map from FileLine to values of type T, partitioned internally by filename. Operations on a FileLineMap are NOT safe for concurrent
// use.
type FileLineMap[T any] struct {
	byFile map[string]map[int]T
	length int
}

// NewFileLineMap returns an empty map.
func NewFileLineMap[T any]() *FileLineMap[T] {
	return &FileLineMap[T]{byFile: make(map[string]map[int]T)}
}

// Get returns the value stored for the given line, and whether one was present.
func (m *FileLineMap[T]) Get(l FileLine) (T, bool) {
	val, ok := m.byFile[l.Filename][l.Num]
	return val, ok
}

// Set stores val for the given line, replacing any existing value.
func (m *FileLineMap[T]) Set(l FileLine, val T) {
	file, ok := m.byFile[l.Filename]
	if !ok {
		file = make(map[int]T)
		m.byFile[l.Filename] = file
	}
	if _, exists := file[l.Num]; !exists {
		m.length++
	}
	file[l.Num] = val
}

// Delete removes the entry for the given line, if present.
func (m *FileLineMap[T]) Delete(l FileLine) {
	file, ok := m.byFile[l.Filename]
	if !ok {
		return
	}
	if _, exists := file[l.Num]; !exists {
		return
	}
	delete(file, l.Num)
	if len(file) == 0 {
		delete(m.byFile, l.Filename)
	}
	m.length--
}

// Len returns the number of entries in the map.
func (m *FileLineMap[T]) Len() int {
	return m.length
}

// All calls fn for each entry in the map, ordered by filename and then line number. Iteration stops early if fn returns false.
func (m *FileLineMap[T]) All(fn func(FileLine, T) bool) {
	set := NewFileLineSet()
	for filename, file := range m.byFile {
		for num := range file {
			set.insert(FileLine{Filename: filename, Num: num})
		}
	}
	for _, l := range set.All() {
		if !fn(l, m.byFile[l.Filename][l.Num]) {
			return
		}
	}
}
