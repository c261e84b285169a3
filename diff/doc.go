// Package diff parses and renders diffs in the unified format.
//
// Representation: A Diff holds an ordered slice of FileDiffs, one per changed file. Each FileDiff names the old and new file and holds an ordered slice of Hunks.
// Each Hunk records where it starts in the old and new file and an ordered body of HunkLines, where every body line is one of InsertedLine, DeletedLine, or
// ContextLine. The kind of each body line is carried by its type, never re-derived from a prefix character.
//
// Invariants:
//   - Rendering a Hunk emits a header whose old count equals count(context)+count(deleted) and whose new count equals count(context)+count(inserted), for every
//     hunk ever constructed, parsed or hand-built.
//   - For canonical input (no dialect preamble), ParseUnifiedDiff followed by String reproduces the input text.
//   - Diff.String always ends with exactly one trailing newline.
//
// Dialects: ParseUnifiedDiff accepts raw unified diffs as well as git and svn output. Dialect-specific preamble lines ("diff --git ...", "index ...",
// "new file mode ...", "Index: ...", "===...===") are tolerated and discarded; they are not modeled and never re-rendered.
//
// This package does not compute diffs. It only parses and re-emits diffs that already exist in text form; binary-file markers and patch application are out of
// scope.
//
// All produced values are immutable trees: a Hunk's body belongs to that Hunk, a FileDiff's hunks to that FileDiff, with no sharing and no back-references. They
// are safe to share read-only across goroutines.
package diff
