package location

import (
	"strconv"
	"strings"
)

// ParseError describes a failure to parse one of this package's value types from its string form.
type ParseError struct {
	Kind  string // Name of the type being parsed (ex: "Location").
	Input string // The input that failed to parse.
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "location: malformed " + e.Kind + ": " + strconv.Quote(e.Input)
}

// ParseLocation parses a location in "line:column" form.
func ParseLocation(s string) (Location, error) {
	lineStr, colStr, ok := strings.Cut(s, ":")
	if !ok {
		return Location{}, &ParseError{Kind: "Location", Input: s}
	}
	line, err := strconv.Atoi(lineStr)
	if err != nil {
		return Location{}, &ParseError{Kind: "Location", Input: s}
	}
	column, err := strconv.Atoi(colStr)
	if err != nil {
		return Location{}, &ParseError{Kind: "Location", Input: s}
	}
	return Location{Line: line, Column: column}, nil
}

// ParseLocationRange parses a range in "start::stop" form, where start and stop use the Location grammar.
func ParseLocationRange(s string) (LocationRange, error) {
	startStr, stopStr, ok := strings.Cut(s, "::")
	if !ok {
		return LocationRange{}, &ParseError{Kind: "LocationRange", Input: s}
	}
	start, err := ParseLocation(startStr)
	if err != nil {
		return LocationRange{}, &ParseError{Kind: "LocationRange", Input: s}
	}
	stop, err := ParseLocation(stopStr)
	if err != nil {
		return LocationRange{}, &ParseError{Kind: "LocationRange", Input: s}
	}
	return LocationRange{Start: start, Stop: stop}, nil
}

// ParseFileLocation parses a file location in "filename@line:column" form. The filename is taken up to the last '@' in the input, so filenames that themselves
// contain '@' parse correctly.
func ParseFileLocation(s string) (FileLocation, error) {
	at := strings.LastIndex(s, "@")
	if at < 0 {
		return FileLocation{}, &ParseError{Kind: "FileLocation", Input: s}
	}
	loc, err := ParseLocation(s[at+1:])
	if err != nil {
		return FileLocation{}, &ParseError{Kind: "FileLocation", Input: s}
	}
	return FileLocation{Filename: s[:at], Location: loc}, nil
}

// ParseFileLocationRange parses a file range in "filename@start::stop" form. As with ParseFileLocation, the filename runs up to the last '@'.
func ParseFileLocationRange(s string) (FileLocationRange, error) {
	at := strings.LastIndex(s, "@")
	if at < 0 {
		return FileLocationRange{}, &ParseError{Kind: "FileLocationRange", Input: s}
	}
	r, err := ParseLocationRange(s[at+1:])
	if err != nil {
		return FileLocationRange{}, &ParseError{Kind: "FileLocationRange", Input: s}
	}
	return FileLocationRange{Filename: s[:at], Range: r}, nil
}
