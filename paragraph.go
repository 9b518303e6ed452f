package justify

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"
)

// Justified is one paragraph after justification.
type Justified struct {
	Width int      `json:"width" yaml:"width"`
	Lines []string `json:"lines" yaml:"lines"`
}

// String returns the lines joined by newlines.
func (j Justified) String() string { return strings.Join(j.Lines, "\n") }

// Paragraphs justifies every paragraph of paras independently and yields
// the results in input order. A blank paragraph still yields a [Justified],
// with no lines.
func Paragraphs(paras iter.Seq[string], width int, opts ...Option) (iter.Seq[Justified], error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	return func(yield func(Justified) bool) {
		for para := range paras {
			// Width was checked above, Paragraph cannot fail here.
			lines, _ := Paragraph(para, width, opts...)
			if lines == nil {
				lines = []string{}
			}
			if !yield(Justified{Width: width, Lines: lines}) {
				return
			}
		}
	}, nil
}

// ReadParagraphs yields each line of r as a paragraph, without its line
// terminator. "\n", "\r\n", and a lone "\r" all end a line. A final line
// without a terminator is still yielded. Read errors are yielded once and
// end the sequence.
func ReadParagraphs(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		br := bufio.NewReader(r)
		for {
			chunk, err := br.ReadString('\n')
			if len(chunk) > 0 {
				for _, line := range splitLines(chunk) {
					if !yield(line, nil) {
						return
					}
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield("", err)
				}
				return
			}
		}
	}
}

// splitLines breaks a chunk ending in at most one "\n" into lines, treating
// a lone "\r" as a line break too.
func splitLines(chunk string) []string {
	chunk = strings.TrimSuffix(strings.TrimSuffix(chunk, "\n"), "\r")
	return strings.Split(chunk, "\r")
}
