// Package output renders conversion results and listings for the terminal
// or for other programs.
//
// Three formats are supported:
//
//   - text: the value's plain rendering, one record per line
//   - json: indented JSON without HTML escaping
//   - yaml: YAML with two-space indentation
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how values are written
type Format string

const (
	TextFormat Format = "text"
	JSONFormat Format = "json"
	YAMLFormat Format = "yaml"
)

// ParseFormat converts a flag or config value to a Format.
// The empty string selects text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", TextFormat:
		return TextFormat, nil
	case JSONFormat:
		return JSONFormat, nil
	case YAMLFormat, "yml":
		return YAMLFormat, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// Texter is implemented by values with their own text rendering
type Texter interface {
	Text() string
}

// Encode writes v to w in the given format
func Encode(w io.Writer, v interface{}, format Format) error {
	data, err := Marshal(v, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Marshal renders v in the given format. Structured formats end with a newline.
func Marshal(v interface{}, format Format) ([]byte, error) {
	switch format {
	case JSONFormat:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case YAMLFormat:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case TextFormat, "":
		if t, ok := v.(Texter); ok {
			return []byte(t.Text()), nil
		}
		return []byte(fmt.Sprint(v)), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
