package justify

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidWidth      = errors.New("width must be greater than 0")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Measure reports the width a word occupies on a line.
type Measure func(string) int

var (
	// RuneCount counts one column per character. It is the default.
	RuneCount Measure = utf8.RuneCountInString

	// DisplayWidth counts terminal columns, so East Asian wide characters
	// take two and combining marks take none.
	DisplayWidth Measure = runewidth.StringWidth
)

// Option configures [Pack], [Paragraph], and [Paragraphs].
type Option func(*options)

type options struct {
	measure Measure
}

// WithMeasure sets how word widths are computed. A nil measure keeps the
// default [RuneCount].
func WithMeasure(m Measure) Option {
	return func(o *options) {
		if m != nil {
			o.measure = m
		}
	}
}

func newOptions(opts []Option) options {
	o := options{measure: RuneCount}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func checkWidth(width int) error {
	if width <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWidth, width)
	}
	return nil
}

// Distribute renders one line, spreading extraSpace spaces across the gaps
// between words. extraSpace is the whole unused budget of the line, so it
// already includes the single space each gap needs. When it does not divide
// evenly the rightmost gaps receive one space more.
//
// A single word is returned as is. Several words with no extra space are
// joined by single spaces.
func Distribute(words []string, extraSpace int) string {
	switch {
	case len(words) == 0:
		return ""
	case len(words) == 1:
		return words[0]
	case extraSpace <= 0:
		return strings.Join(words, " ")
	}

	gaps := len(words) - 1
	perGap, rem := extraSpace/gaps, extraSpace%gaps

	var sb strings.Builder
	sb.Grow(extraSpace + len(words)*8)
	narrow := strings.Repeat(" ", perGap)
	wide := narrow + " "
	for i, word := range words[:gaps] {
		sb.WriteString(word)
		if i < gaps-rem {
			sb.WriteString(narrow)
		} else {
			sb.WriteString(wide)
		}
	}
	sb.WriteString(words[gaps])
	return sb.String()
}

// Pack groups words greedily into lines of the given width and renders each
// through [Distribute], the last line included. A word wider than width is
// placed alone on its line and never split.
//
// The returned sequence is lazy: words are pulled only as lines are
// requested. Pack fails with [ErrInvalidWidth] before touching words when
// width is not positive.
func Pack(words iter.Seq[string], width int, opts ...Option) (iter.Seq[string], error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	o := newOptions(opts)
	return func(yield func(string) bool) {
		var line []string
		remaining := width
		for word := range words {
			n := o.measure(word)
			// remaining goes negative after a word wider than width.
			if len(line) > 0 && len(line)+n > remaining {
				if !yield(Distribute(line, remaining)) {
					return
				}
				line, remaining = line[:0], width
			}
			line = append(line, word)
			remaining -= n
		}
		if len(line) > 0 {
			yield(Distribute(line, remaining))
		}
	}, nil
}

// Words splits text into whitespace-delimited words, lazily.
func Words(text string) iter.Seq[string] {
	return strings.FieldsFuncSeq(text, isSpace)
}

// isSpace extends unicode.IsSpace with the ASCII information separators,
// which line-oriented tools commonly treat as whitespace too.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Paragraph justifies a single paragraph of text to width and returns its
// lines. Empty or all-whitespace text yields no lines.
func Paragraph(text string, width int, opts ...Option) ([]string, error) {
	lines, err := Pack(Words(text), width, opts...)
	if err != nil {
		return nil, err
	}
	var out []string
	for line := range lines {
		out = append(out, line)
	}
	return out, nil
}
