package justify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"
	"text/template"
)

// WriteIter renders justified paragraphs as the iterator yields them, so a
// long input is written while later paragraphs are still being packed.
// Plain, JSONL, and GoTemplate write each paragraph immediately. JSON always
// produces an array, one element per paragraph. YAML is collected first
// because the encoder needs a complete document.
func WriteIter(w io.Writer, f Format, seq iter.Seq[Justified]) error {
	switch f {
	case Plain:
		return streamPlain(w, seq)
	case JSON:
		return streamJSON(w, seq)
	case JSONL:
		return streamJSONL(w, seq)
	case YAML:
		return streamCollect(w, f, seq)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return streamGoTemplate(w, tmpl, seq)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// WriteChan writes justified paragraphs in the order they arrive on ch.
// Paragraphs share no state, so callers may justify them on several
// goroutines and send the results here in input order.
func WriteChan(w io.Writer, f Format, ch <-chan Justified) error {
	return WriteIter(w, f, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func streamCollect(w io.Writer, f Format, seq iter.Seq[Justified]) error {
	var items []Justified
	for item := range seq {
		items = append(items, item)
	}
	return Write(w, f, items...)
}

func streamPlain(w io.Writer, seq iter.Seq[Justified]) error {
	for item := range seq {
		if _, err := fmt.Fprintln(w, item.String()); err != nil {
			return err
		}
	}
	return nil
}

func streamJSON(w io.Writer, seq iter.Seq[Justified]) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	first := true
	for item := range seq {
		buf.Reset()
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := enc.Encode(item); err != nil {
			return err
		}
		// Encode terminates each element with a newline; the array stays on one line.
		if _, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]\n")
	return err
}

func streamJSONL(w io.Writer, seq iter.Seq[Justified]) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for item := range seq {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}

func streamGoTemplate(w io.Writer, tmplStr string, seq iter.Seq[Justified]) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for item := range seq {
		if err := tmpl.Execute(w, item); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
