package diff

import "strings"

// HunkLine is a single body line of a Hunk: an insertion, a deletion, or an unchanged context line. It is a closed sum: the only implementations are
// InsertedLine, DeletedLine, and ContextLine.
type HunkLine interface {
	// String returns the line as it appears in a unified diff, with its one-character prefix.
	String() string

	hunkLine()
}

// InsertedLine is a line added to the new file. Text holds the line content without the '+' prefix.
type InsertedLine struct {
	Text string
}

// DeletedLine is a line removed from the old file. Text holds the line content without the '-' prefix.
type DeletedLine struct {
	Text string
}

// ContextLine is a line present in both files. Text holds the line content without the leading space.
type ContextLine struct {
	Text string
}

func (l InsertedLine) hunkLine() {}
func (l DeletedLine) hunkLine()  {}
func (l ContextLine) hunkLine()  {}

var (
	_ HunkLine = InsertedLine{}
	_ HunkLine = DeletedLine{}
	_ HunkLine = ContextLine{}
)

// Hunk is a contiguous block of changes within a single file.
//
// The old/new line counts that appear in a rendered hunk header are not stored; String recomputes them from Lines, so the header count invariant (see the package
// documentation) holds for hand-built hunks too.
type Hunk struct {
	OldStartLine int        // One-indexed line in the old file where the hunk begins.
	NewStartLine int        // One-indexed line in the new file where the hunk begins.
	Lines        []HunkLine // Ordered body of the hunk.
}

// FileHunk pairs a Hunk with the old and new filenames of the FileDiff it belongs to.
type FileHunk struct {
	OldFilename string
	NewFilename string
	Hunk        Hunk
}

// FileDiff represents a set of changes to a single text-based file.
type FileDiff struct {
	OldFilename string // Path of the old file, as it appeared after "--- ".
	NewFilename string // Path of the new file, as it appeared after "+++ ".
	Hunks       []Hunk // Ordered hunks of the file.
}

// FileHunks returns one FileHunk per hunk, in hunk order, each pairing the hunk with this FileDiff's filenames. The slice is re-derived on every call.
func (fd FileDiff) FileHunks() []FileHunk {
	fileHunks := make([]FileHunk, 0, len(fd.Hunks))
	for _, h := range fd.Hunks {
		fileHunks = append(fileHunks, FileHunk{
			OldFilename: fd.OldFilename,
			NewFilename: fd.NewFilename,
			Hunk:        h,
		})
	}
	return fileHunks
}

// Strip returns a copy of this FileDiff with the first numComponents '/'-separated components removed from both filenames. Stripping zero components returns the
// receiver unchanged; stripping more components than a path has yields an empty filename. numComponents must be >= 0 or Strip panics.
func (fd FileDiff) Strip(numComponents int) FileDiff {
	if numComponents < 0 {
		panic("diff: Strip called with negative numComponents")
	}
	if numComponents == 0 {
		return fd
	}
	return FileDiff{
		OldFilename: stripPath(fd.OldFilename, numComponents),
		NewFilename: stripPath(fd.NewFilename, numComponents),
		Hunks:       fd.Hunks,
	}
}

func stripPath(path string, numComponents int) string {
	components := strings.Split(path, "/")
	if numComponents >= len(components) {
		return ""
	}
	return strings.Join(components[numComponents:], "/")
}

// Diff represents a set of changes to one or more text-based files.
type Diff struct {
	FileDiffs []FileDiff // Ordered per-file diffs.
}

// DiffFromFileHunks reconstructs a Diff from a flat list of FileHunks by grouping them on their (old filename, new filename) pair. A new group opens the first
// time a pair is seen; later hunks with the same pair append to that group in arrival order. The resulting FileDiff order is the order in which distinct pairs
// first appeared.
//
// Note that if fileHunks was flattened from a Diff that held two separate FileDiffs with the same filename pair, regrouping merges them into one FileDiff at the
// first pair's position.
func DiffFromFileHunks(fileHunks []FileHunk) Diff {
	type filenamePair struct {
		old string
		new string
	}

	groupIdx := make(map[filenamePair]int)
	var fileDiffs []FileDiff
	for _, fh := range fileHunks {
		key := filenamePair{old: fh.OldFilename, new: fh.NewFilename}
		i, ok := groupIdx[key]
		if !ok {
			i = len(fileDiffs)
			groupIdx[key] = i
			fileDiffs = append(fileDiffs, FileDiff{OldFilename: fh.OldFilename, NewFilename: fh.NewFilename})
		}
		fileDiffs[i].Hunks = append(fileDiffs[i].Hunks, fh.Hunk)
	}

	return Diff{FileDiffs: fileDiffs}
}

// Files returns the old filename of every FileDiff, in order.
func (d Diff) Files() []string {
	files := make([]string, 0, len(d.FileDiffs))
	for _, fd := range d.FileDiffs {
		files = append(files, fd.OldFilename)
	}
	return files
}

// FileHunks returns every hunk in the diff paired with its filenames, in file order and then hunk order. The slice is re-derived on every call.
func (d Diff) FileHunks() []FileHunk {
	var fileHunks []FileHunk
	for _, fd := range d.FileDiffs {
		fileHunks = append(fileHunks, fd.FileHunks()...)
	}
	return fileHunks
}

// Strip returns a copy of this Diff with the first numComponents path components removed from every filename. See FileDiff.Strip for the exact semantics.
func (d Diff) Strip(numComponents int) Diff {
	if numComponents < 0 {
		panic("diff: Strip called with negative numComponents")
	}
	if numComponents == 0 {
		return d
	}
	fileDiffs := make([]FileDiff, 0, len(d.FileDiffs))
	for _, fd := range d.FileDiffs {
		fileDiffs = append(fileDiffs, fd.Strip(numComponents))
	}
	return Diff{FileDiffs: fileDiffs}
}
