// Package location provides value types for addressing positions within source files: one-indexed (line, column) locations, half-open location ranges, and
// file-qualified variants of both.
//
// All types in this package are immutable values with no identity beyond their fields. They are safe to share across goroutines and to use as map keys.
package location

import "strconv"

// Location represents a character location within an arbitrary file. Line and Column are both one-indexed.
//
// Locations are totally ordered: primarily by line, then by column. Use Compare for ordering.
type Location struct {
	Line   int // One-indexed line number.
	Column int // One-indexed column number.
}

// NewLocation returns the location for the given one-indexed line and column.
func NewLocation(line, column int) Location {
	return Location{Line: line, Column: column}
}

// Compare returns an integer comparing two locations. The result will be -1 if l < other, 1 if l > other, and 0 if they are equal.
func (l Location) Compare(other Location) int {
	if l.Line != other.Line {
		if l.Line < other.Line {
			return -1
		}
		return 1
	}
	if l.Column != other.Column {
		if l.Column < other.Column {
			return -1
		}
		return 1
	}
	return 0
}

// String returns the location in "line:column" form.
func (l Location) String() string {
	return strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Column)
}

// LocationRange captures a contiguous range of locations, half-open on the combined (line, column) order: Start is inclusive and Stop is exclusive.
//
// The type does not enforce Start <= Stop; callers must not construct inverted ranges.
type LocationRange struct {
	Start Location // Inclusive lower bound.
	Stop  Location // Exclusive upper bound.
}

// NewLocationRange returns the half-open range [start, stop).
func NewLocationRange(start, stop Location) LocationRange {
	return LocationRange{Start: start, Stop: stop}
}

// Contains reports whether loc falls within the half-open range [r.Start, r.Stop).
func (r LocationRange) Contains(loc Location) bool {
	return loc.Compare(r.Start) >= 0 && loc.Compare(r.Stop) < 0
}

// String returns the range in "start::stop" form.
func (r LocationRange) String() string {
	return r.Start.String() + "::" + r.Stop.String()
}

// FileLocation represents a character location within a particular file.
//
// FileLocations are ordered lexicographically by filename, then by the wrapped location.
type FileLocation struct {
	Filename string   // Name of the file to which the character belongs.
	Location Location // Location of the character within the file.
}

// NewFileLocation returns the location for the given one-indexed line and column of the named file.
func NewFileLocation(filename string, line, column int) FileLocation {
	return FileLocation{Filename: filename, Location: NewLocation(line, column)}
}

// Line returns the one-indexed line number for this location.
func (f FileLocation) Line() int {
	return f.Location.Line
}

// Column returns the one-indexed column number for this location.
func (f FileLocation) Column() int {
	return f.Location.Column
}

// Compare returns an integer comparing two file locations, ordering by filename and then by location.
func (f FileLocation) Compare(other FileLocation) int {
	if f.Filename != other.Filename {
		if f.Filename < other.Filename {
			return -1
		}
		return 1
	}
	return f.Location.Compare(other.Location)
}

// String returns the location in "filename@line:column" form.
func (f FileLocation) String() string {
	return f.Filename + "@" + f.Location.String()
}

// FileLocationRange captures a contiguous half-open range of locations within a particular file.
type FileLocationRange struct {
	Filename string        // Name of the file the range belongs to.
	Range    LocationRange // Half-open location range within the file.
}

// NewFileLocationRange returns the half-open range [start, stop) within the named file.
func NewFileLocationRange(filename string, start, stop Location) FileLocationRange {
	return FileLocationRange{Filename: filename, Range: NewLocationRange(start, stop)}
}

// Contains reports whether loc falls within this range. The filename must match exactly; a location in a different file is never contained.
func (f FileLocationRange) Contains(loc FileLocation) bool {
	return f.Filename == loc.Filename && f.Range.Contains(loc.Location)
}

// String returns the range in "filename@start::stop" form.
func (f FileLocationRange) String() string {
	return f.Filename + "@" + f.Range.String()
}
