package diff

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedDiff indicates that input text could not be parsed as a unified diff. Errors returned from ParseUnifiedDiff wrap it; test with IsMalformedDiff or
// errors.Is.
var ErrMalformedDiff = errors.New("malformed diff")

// IsMalformedDiff reports whether err (as returned from ParseUnifiedDiff) indicates that the diff text itself was malformed.
//
// It returns false for start-line numbers that fail integer conversion; those propagate as the underlying strconv error.
func IsMalformedDiff(err error) bool {
	return errors.Is(err, ErrMalformedDiff)
}

// reader is a cursor over the lines of a diff. Parsing consumes lines strictly left to right; a line that terminates a hunk or file section is peeked, not
// consumed, so it remains visible to the caller that resumes scanning.
type reader struct {
	lines []string
	idx   int

	// spliced holds body content found on the same physical line as a hunk header, to be served before lines[idx]. At most one line is ever pending: it is
	// set immediately after a header is consumed and always drained before the next header.
	spliced    string
	hasSpliced bool
}

func newReader(text string) *reader {
	return &reader{lines: strings.Split(text, "\n")}
}

func (r *reader) eof() bool {
	return !r.hasSpliced && r.idx >= len(r.lines)
}

func (r *reader) peek() (string, bool) {
	if r.hasSpliced {
		return r.spliced, true
	}
	if r.idx >= len(r.lines) {
		return "", false
	}
	return r.lines[r.idx], true
}

func (r *reader) next() (string, bool) {
	line, ok := r.peek()
	if !ok {
		return "", false
	}
	if r.hasSpliced {
		r.spliced = ""
		r.hasSpliced = false
	} else {
		r.idx++
	}
	return line, true
}

func (r *reader) splice(line string) {
	r.spliced = line
	r.hasSpliced = true
}

// ParseUnifiedDiff parses a complete unified-format diff, as produced by `diff -u`, `git diff`, or `svn diff`. Blank lines between per-file sections are
// tolerated and discarded, as are dialect-specific preamble lines before each file's "---"/"+++" pair.
//
// There is no partial success: the result is either a fully structured Diff or an error. A missing "---" marker yields an error wrapping ErrMalformedDiff;
// malformed start-line numbers propagate the underlying strconv error.
//
// Only blank lines are skipped at this level; everything else is handed to file-diff parsing, whose preamble skip is what discards git/svn noise. Keeping the
// split this way avoids silently swallowing structurally meaningful lines between files.
func ParseUnifiedDiff(text string) (Diff, error) {
	r := newReader(text)

	var fileDiffs []FileDiff
	for !r.eof() {
		line, _ := r.peek()
		if strings.TrimSpace(line) == "" {
			r.next()
			continue
		}
		fd, err := readFileDiff(r)
		if err != nil {
			return Diff{}, err
		}
		fileDiffs = append(fileDiffs, fd)
	}

	return Diff{FileDiffs: fileDiffs}, nil
}

// readFileDiff reads the next file diff from the buffer. It discards preamble lines until one starts with "---", consumes the "---"/"+++" filename pair, and
// then reads hunks until the next line is not a hunk header (that line stays in the buffer for the caller).
//
// A buffer that empties before a "---" line is a malformed diff. A "---" line not immediately followed by a "+++" line violates the dispatch contract and
// panics; that state is unreachable through ParseUnifiedDiff on any input that has the "---" marker pair.
func readFileDiff(r *reader) (FileDiff, error) {
	for {
		line, ok := r.peek()
		if !ok {
			return FileDiff{}, fmt.Errorf("%w: couldn't find line starting with %q", ErrMalformedDiff, "---")
		}
		if strings.HasPrefix(line, "---") {
			break
		}
		r.next()
	}

	oldLine, _ := r.next()
	newLine, ok := r.next()
	if !ok || !strings.HasPrefix(newLine, "+++") {
		panic(fmt.Sprintf("diff: %q line must be immediately followed by a %q line (got %q)", "---", "+++", newLine))
	}

	fd := FileDiff{
		OldFilename: strings.TrimSpace(stripFileMarker(oldLine)),
		NewFilename: strings.TrimSpace(stripFileMarker(newLine)),
	}
	for {
		line, ok := r.peek()
		if !ok || !strings.HasPrefix(line, "@@") {
			break
		}
		h, err := readHunk(r)
		if err != nil {
			return FileDiff{}, err
		}
		fd.Hunks = append(fd.Hunks, h)
	}

	return fd, nil
}

// stripFileMarker drops the 4-character "--- "/"+++ " prefix from a filename line.
func stripFileMarker(line string) string {
	if len(line) < 4 {
		return ""
	}
	return line[4:]
}

// readHunk reads the next hunk from the buffer. The caller must have verified that the next line is a hunk header; calling readHunk on anything else panics.
//
// Body lines are consumed while they carry a '+', '-', or space prefix. The first line with any other prefix (or the end of the buffer) terminates the hunk and
// is left in the buffer.
func readHunk(r *reader) (Hunk, error) {
	header, ok := r.next()
	if !ok || !strings.HasPrefix(header, "@@ -") {
		panic(fmt.Sprintf("diff: readHunk called on a buffer whose next line is not a hunk header (got %q)", header))
	}

	endHeader := strings.Index(header, " @@")
	if endHeader < 0 {
		return Hunk{}, fmt.Errorf("%w: hunk header %q missing closing %q", ErrMalformedDiff, header, "@@")
	}

	// git doesn't always newline-terminate the header before the first context line; when content trails the closing "@@", splice it back into the buffer as
	// the first body line.
	if bonus := header[endHeader+3:]; bonus != "" {
		r.splice(bonus)
	}

	oldStart, newStart, err := parseHunkStarts(header[4:endHeader])
	if err != nil {
		return Hunk{}, err
	}

	h := Hunk{OldStartLine: oldStart, NewStartLine: newStart}
	for {
		line, ok := r.peek()
		if !ok {
			break
		}
		switch {
		case strings.HasPrefix(line, "+"):
			h.Lines = append(h.Lines, InsertedLine{Text: line[1:]})
		case strings.HasPrefix(line, "-"):
			h.Lines = append(h.Lines, DeletedLine{Text: line[1:]})
		case strings.HasPrefix(line, " "):
			h.Lines = append(h.Lines, ContextLine{Text: line[1:]})
		default:
			// End of hunk; the line stays in the buffer for the caller.
			return h, nil
		}
		r.next()
	}
	return h, nil
}

// parseHunkStarts parses the "<old>[,<count>] +<new>[,<count>]" fields of a hunk header. The optional counts are accepted but not retained; rendering recomputes
// them from the body.
func parseHunkStarts(fields string) (oldStart, newStart int, err error) {
	left, right, found := strings.Cut(fields, " +")
	if !found {
		return 0, 0, fmt.Errorf("%w: hunk header fields %q missing %q separator", ErrMalformedDiff, fields, " +")
	}

	oldField, _, _ := strings.Cut(left, ",")
	oldStart, err = strconv.Atoi(oldField)
	if err != nil {
		return 0, 0, err
	}

	newField, _, _ := strings.Cut(right, ",")
	newStart, err = strconv.Atoi(newField)
	if err != nil {
		return 0, 0, err
	}

	return oldStart, newStart, nil
}
