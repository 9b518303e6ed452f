// Package justify fills lines of plain text to an exact column width.
//
// Each paragraph is split on unicode whitespace and packed greedily into
// lines. The unused width of every line, the last one included, is spread
// across the gaps between its words, with any remainder going to the
// rightmost gaps. A word wider than the target width sits alone on its line.
//
//	lines, err := justify.Paragraph("This is a sample text", 12)
//	// "This  is   a", "sample  text"
//
// # Building blocks
//
//   - [Distribute] renders one line from its words and spare spaces.
//   - [Pack] lazily turns a word sequence into rendered lines.
//   - [Paragraph] splits text with [Words] and collects the packed lines.
//   - [Paragraphs] justifies a sequence of paragraphs, e.g. from
//     [ReadParagraphs].
//
// # Measuring
//
// Word width defaults to the character count ([RuneCount]). Use
// [WithMeasure] with [DisplayWidth] to count terminal columns instead.
//
// # Output
//
// [Write], [Marshal], and [WriteIter] render [Justified] paragraphs as
// [Plain] text, [JSON], [JSONL], [YAML], or a [GoTemplate]. Use
// [ParseFormat] to convert a CLI flag string into a [Format].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidWidth] — width is zero or negative
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrInvalidTemplate] — invalid go-template syntax
package justify
