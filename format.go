package justify

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Format represents an output format for justified paragraphs.
type Format string

const (
	Plain Format = "plain"
	JSON  Format = "json"
	JSONL Format = "jsonl"
	YAML  Format = "yaml"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Plain, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats lists the output formats a justified paragraph can be written in.
// GoTemplate is not included because it takes a template argument.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each [Justified] using a Go
// text/template, one execution per paragraph followed by a newline.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat resolves the value of an output-format flag such as
// "plain" or "json". A "go-template=<tmpl>" value yields the matching
// [GoTemplate] format.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders justified paragraphs in format f and writes them to w. For
// JSON and YAML a single paragraph is written as an object, several as a list.
func Write(w io.Writer, f Format, items ...Justified) error {
	switch f {
	case Plain:
		return writePlain(w, items)
	case JSON:
		return writeJSON(w, items)
	case JSONL:
		return streamJSONL(w, slices.Values(items))
	case YAML:
		return writeYAML(w, items)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return streamGoTemplate(w, tmpl, slices.Values(items))
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders paragraphs in format f and returns the bytes.
func Marshal(f Format, items ...Justified) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, items...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
