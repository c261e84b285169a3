// Package fileline provides the FileLine value type, which identifies a one-indexed line within a named file, along with set and map containers partitioned by
// filename for efficient per-file access.
package fileline

import (
	"strconv"
	"strings"
)

// FileLine represents a one-indexed line within a specific file. It is an immutable, comparable value and may be used as a map key.
//
// FileLines are ordered lexicographically by filename, then by line number.
type FileLine struct {
	Filename string // Name of the file the line belongs to.
	Num      int    // One-indexed line number.
}

// NewFileLine returns the given one-indexed line of the named file.
func NewFileLine(filename string, num int) FileLine {
	return FileLine{Filename: filename, Num: num}
}

// ParseFileLine parses a file line in "filename:num" form. The filename runs up to the last ':' in the input, so filenames containing ':' parse correctly.
func ParseFileLine(s string) (FileLine, error) {
	sep := strings.LastIndex(s, ":")
	if sep < 0 {
		return FileLine{}, &ParseError{Input: s}
	}
	num, err := strconv.Atoi(s[sep+1:])
	if err != nil {
		return FileLine{}, &ParseError{Input: s}
	}
	return FileLine{Filename: s[:sep], Num: num}, nil
}

// Compare returns an integer comparing two file lines, ordering by filename and then by line number. The result will be -1 if l < other, 1 if l > other, and 0
// if they are equal.
func (l FileLine) Compare(other FileLine) int {
	if l.Filename != other.Filename {
		if l.Filename < other.Filename {
			return -1
		}
		return 1
	}
	if l.Num != other.Num {
		if l.Num < other.Num {
			return -1
		}
		return 1
	}
	return 0
}

// String returns the line in "filename:num" form.
func (l FileLine) String() string {
	return l.Filename + ":" + strconv.Itoa(l.Num)
}

// ParseError describes a failure to parse a FileLine from its string form.
type ParseError struct {
	Input string // The input that failed to parse.
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "fileline: malformed FileLine: " + strconv.Quote(e.Input)
}
