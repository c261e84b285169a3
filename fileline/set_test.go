package fileline_test

import (
	"testing"

	"github.com/ChrisTimperley/sourcelocation/fileline"

	"github.com/stretchr/testify/require"
)

func TestSetBasics(t *testing.T) {
	set := fileline.FileLineSetFrom(map[string][]int{
		"a.py": {1, 2, 3, 7},
		"b.py": {10},
	})

	require.Equal(t, 5, set.Len())
	require.Equal(t, []string{"a.py", "b.py"}, set.Files())
	require.True(t, set.Contains(fileline.NewFileLine("a.py", 7)))
	require.False(t, set.Contains(fileline.NewFileLine("a.py", 4)))
	require.False(t, set.Contains(fileline.NewFileLine("c.py", 1)))

	require.Equal(t, []fileline.FileLine{
		fileline.NewFileLine("b.py", 10),
	}, set.LinesInFile("b.py"))
	require.Empty(t, set.LinesInFile("c.py"))

	require.Equal(t, map[string][]int{
		"a.py": {1, 2, 3, 7},
		"b.py": {10},
	}, set.ToMap())
}

func TestSetDuplicatesCollapse(t *testing.T) {
	set := fileline.NewFileLineSet(
		fileline.NewFileLine("a.py", 1),
		fileline.NewFileLine("a.py", 1),
		fileline.NewFileLine("a.py", 2),
	)
	require.Equal(t, 2, set.Len())
}

func TestSetString(t *testing.T) {
	set := fileline.FileLineSetFrom(map[string][]int{
		"a.py": {3, 1, 2, 7},
		"b.py": {10},
	})

	// Consecutive runs collapse; files appear sorted:
	require.Equal(t, "a.py: 1..3; 7\nb.py: 10", set.String())
}

func TestSetUnionIntersection(t *testing.T) {
	a := fileline.FileLineSetFrom(map[string][]int{"a.py": {1, 2}})
	b := fileline.FileLineSetFrom(map[string][]int{"a.py": {2, 3}, "b.py": {1}})

	union := a.Union(b)
	require.Equal(t, map[string][]int{"a.py": {1, 2, 3}, "b.py": {1}}, union.ToMap())

	inter := a.Intersection(b)
	require.Equal(t, map[string][]int{"a.py": {2}}, inter.ToMap())

	// Operands unchanged:
	require.Equal(t, 2, a.Len())
	require.Equal(t, 3, b.Len())
}

func TestSetFilterAndRestrict(t *testing.T) {
	set := fileline.FileLineSetFrom(map[string][]int{
		"a.py": {1, 2, 3},
		"b.py": {4, 5},
	})

	even := set.Filter(func(l fileline.FileLine) bool { return l.Num%2 == 0 })
	require.Equal(t, map[string][]int{"a.py": {2}, "b.py": {4}}, even.ToMap())

	onlyB := set.RestrictToFiles([]string{"b.py", "c.py"})
	require.Equal(t, map[string][]int{"b.py": {4, 5}}, onlyB.ToMap())
}

func TestMap(t *testing.T) {
	m := fileline.NewFileLineMap[string]()
	k1 := fileline.NewFileLine("a.py", 1)
	k2 := fileline.NewFileLine("b.py", 2)

	m.Set(k1, "one")
	m.Set(k2, "two")
	m.Set(k1, "uno") // overwrite does not grow the map
	require.Equal(t, 2, m.Len())

	val, ok := m.Get(k1)
	require.True(t, ok)
	require.Equal(t, "uno", val)

	_, ok = m.Get(fileline.NewFileLine("a.py", 9))
	require.False(t, ok)

	var visited []fileline.FileLine
	m.All(func(l fileline.FileLine, _ string) bool {
		visited = append(visited, l)
		return true
	})
	require.Equal(t, []fileline.FileLine{k1, k2}, visited)

	m.Delete(k1)
	m.Delete(k1) // deleting a missing key is a no-op
	require.Equal(t, 1, m.Len())
	_, ok = m.Get(k1)
	require.False(t, ok)
}
