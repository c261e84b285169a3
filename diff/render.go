package diff

import (
	"fmt"
	"strings"
)

// String returns the line as it appears in a unified diff.
func (l InsertedLine) String() string {
	return "+" + l.Text
}

// String returns the line as it appears in a unified diff.
func (l DeletedLine) String() string {
	return "-" + l.Text
}

// String returns the line as it appears in a unified diff.
func (l ContextLine) String() string {
	return " " + l.Text
}

// String renders the hunk in the unified format: the "@@ -a,b +c,d @@" header followed by the prefixed body lines, newline-joined. The header's old and new
// counts are recomputed from the body on every call.
func (h Hunk) String() string {
	var numInserted, numDeleted, numContext int
	for _, line := range h.Lines {
		switch line.(type) {
		case InsertedLine:
			numInserted++
		case DeletedLine:
			numDeleted++
		case ContextLine:
			numContext++
		}
	}

	numOldLines := numContext + numDeleted
	numNewLines := numContext + numInserted

	out := make([]string, 0, len(h.Lines)+1)
	out = append(out, fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStartLine, numOldLines, h.NewStartLine, numNewLines))
	for _, line := range h.Lines {
		out = append(out, line.String())
	}
	return strings.Join(out, "\n")
}

// String renders the file diff in the unified format: the "---"/"+++" filename pair followed by each hunk's rendering, newline-joined.
func (fd FileDiff) String() string {
	out := make([]string, 0, len(fd.Hunks)+2)
	out = append(out, "--- "+fd.OldFilename, "+++ "+fd.NewFilename)
	for _, h := range fd.Hunks {
		out = append(out, h.String())
	}
	return strings.Join(out, "\n")
}

// String renders the whole diff in the unified format. The output always ends with exactly one trailing newline; that trailing newline is part of the format,
// not an accident of joining.
func (d Diff) String() string {
	out := make([]string, 0, len(d.FileDiffs)+1)
	for _, fd := range d.FileDiffs {
		out = append(out, fd.String())
	}
	out = append(out, "")
	return strings.Join(out, "\n")
}
