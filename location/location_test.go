package location_test

import (
	"testing"

	"github.com/ChrisTimperley/sourcelocation/location"

	"github.com/stretchr/testify/require"
)

func TestLocationCompare(t *testing.T) {
	tests := []struct {
		name string
		a    location.Location
		b    location.Location
		want int
	}{
		{name: "equal", a: location.NewLocation(3, 7), b: location.NewLocation(3, 7), want: 0},
		{name: "earlier line", a: location.NewLocation(2, 99), b: location.NewLocation(3, 1), want: -1},
		{name: "later line", a: location.NewLocation(4, 1), b: location.NewLocation(3, 99), want: 1},
		{name: "same line earlier column", a: location.NewLocation(3, 1), b: location.NewLocation(3, 2), want: -1},
		{name: "same line later column", a: location.NewLocation(3, 9), b: location.NewLocation(3, 2), want: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.a.Compare(tc.b))
			require.Equal(t, -tc.want, tc.b.Compare(tc.a))
		})
	}
}

func TestLocationRangeContains(t *testing.T) {
	r := location.NewLocationRange(location.NewLocation(1, 1), location.NewLocation(3, 1))

	// Start is inclusive, stop is exclusive:
	require.True(t, r.Contains(location.NewLocation(1, 1)))
	require.False(t, r.Contains(location.NewLocation(3, 1)))

	// Any column on an interior line is inside:
	require.True(t, r.Contains(location.NewLocation(2, 99)))

	require.False(t, r.Contains(location.NewLocation(0, 5)))
	require.False(t, r.Contains(location.NewLocation(3, 2)))
}

func TestFileLocationAccessors(t *testing.T) {
	fl := location.NewFileLocation("src/main.c", 12, 4)
	require.Equal(t, 12, fl.Line())
	require.Equal(t, 4, fl.Column())
}

func TestFileLocationRangeContains(t *testing.T) {
	r := location.NewFileLocationRange("a.py", location.NewLocation(1, 1), location.NewLocation(2, 1))

	require.True(t, r.Contains(location.NewFileLocation("a.py", 1, 5)))

	// Same position in a different file is never contained:
	require.False(t, r.Contains(location.NewFileLocation("b.py", 1, 5)))
}

func TestStringRoundTrips(t *testing.T) {
	loc, err := location.ParseLocation("3:12")
	require.NoError(t, err)
	require.Equal(t, location.NewLocation(3, 12), loc)
	require.Equal(t, "3:12", loc.String())

	lr, err := location.ParseLocationRange("1:1::4:9")
	require.NoError(t, err)
	require.Equal(t, location.NewLocationRange(location.NewLocation(1, 1), location.NewLocation(4, 9)), lr)
	require.Equal(t, "1:1::4:9", lr.String())

	fl, err := location.ParseFileLocation("pkg/util@example.py@9:2")
	require.NoError(t, err)
	require.Equal(t, "pkg/util@example.py", fl.Filename)
	require.Equal(t, location.NewLocation(9, 2), fl.Location)
	require.Equal(t, "pkg/util@example.py@9:2", fl.String())

	fr, err := location.ParseFileLocationRange("a.py@1:1::2:8")
	require.NoError(t, err)
	require.Equal(t, location.NewFileLocationRange("a.py", location.NewLocation(1, 1), location.NewLocation(2, 8)), fr)
	require.Equal(t, "a.py@1:1::2:8", fr.String())
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"",
		"3",
		"3:x",
		"x:3",
	}
	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			_, err := location.ParseLocation(input)
			require.Error(t, err)
			var pe *location.ParseError
			require.ErrorAs(t, err, &pe)
			require.Equal(t, input, pe.Input)
		})
	}

	_, err := location.ParseLocationRange("1:1")
	require.Error(t, err)

	_, err = location.ParseFileLocation("no-separator")
	require.Error(t, err)

	_, err = location.ParseFileLocationRange("a.py@1:1")
	require.Error(t, err)
}
