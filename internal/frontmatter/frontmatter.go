// Package frontmatter extracts and decodes the metadata header at the top of
// a document. A header opens with a delimiter line and runs until the same
// delimiter appears again (or the document ends):
//
//	---
//	title: Two Sum
//	source: TOI 2021
//	---
//
// "---" headers are YAML, "+++" headers are TOML.
package frontmatter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrMalformed is returned when a header block cannot be decoded into a mapping.
var ErrMalformed = errors.New("malformed header")

// Delimiters for each header format.
const (
	YAMLDelimiter = "---"
	TOMLDelimiter = "+++"
)

// Format identifies how a header block is encoded.
type Format int

const (
	// FormatNone means the document has no header.
	FormatNone Format = iota
	// FormatYAML is a "---" delimited block.
	FormatYAML
	// FormatTOML is a "+++" delimited block.
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "none"
	}
}

// Block is a raw header as found in a document.
type Block struct {
	Format  Format
	Content string // lines between the delimiters, joined with "\n"
}

// Extract looks for a header at the start of lines.
// The first line must be exactly a delimiter once surrounding whitespace is
// trimmed. Collection stops at the next line equal to the same delimiter,
// or at the last line if it never appears.
func Extract(lines []string) (Block, bool) {
	if len(lines) == 0 {
		return Block{}, false
	}

	var format Format
	delim := strings.TrimSpace(lines[0])
	switch delim {
	case YAMLDelimiter:
		format = FormatYAML
	case TOMLDelimiter:
		format = FormatTOML
	default:
		return Block{}, false
	}

	body := make([]string, 0, 8)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == delim {
			break
		}
		body = append(body, strings.TrimRight(line, "\r"))
	}

	return Block{Format: format, Content: strings.Join(body, "\n")}, true
}

// ExtractFromBytes splits content into lines and calls Extract.
func ExtractFromBytes(content []byte) (Block, bool) {
	return Extract(strings.Split(string(content), "\n"))
}

// Parse decodes the block into a Meta mapping.
// An empty block yields an empty Meta.
func (b Block) Parse() (Meta, error) {
	switch b.Format {
	case FormatYAML:
		return ParseYAML([]byte(b.Content))
	case FormatTOML:
		return ParseTOML([]byte(b.Content))
	default:
		return Meta{}, nil
	}
}

// Read extracts and decodes the header of a whole document.
// Documents without a header yield an empty Meta and no error.
func Read(content []byte) (Meta, error) {
	block, ok := ExtractFromBytes(content)
	if !ok {
		return Meta{}, nil
	}
	return block.Parse()
}

// ParseYAML decodes a YAML mapping. A null document is an empty mapping;
// any other non-mapping document is malformed.
func ParseYAML(data []byte) (Meta, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	switch v := raw.(type) {
	case nil:
		return Meta{}, nil
	case map[string]any:
		return Meta(v), nil
	case map[any]any:
		// Non-string keys (e.g. "1: foo") are stringified.
		meta := make(Meta, len(v))
		for k, val := range v {
			meta[fmt.Sprint(k)] = val
		}
		return meta, nil
	default:
		return nil, fmt.Errorf("%w: expected a mapping, got %T", ErrMalformed, raw)
	}
}

// ParseTOML decodes a TOML table.
func ParseTOML(data []byte) (Meta, error) {
	meta := Meta{}
	if err := toml.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return meta, nil
}

// Meta holds decoded header keys. Values keep whatever type the decoder produced.
type Meta map[string]any

// String returns the value for key rendered as text.
// ok is false when the key is missing or explicitly null.
// Sequences are joined with ", ".
func (m Meta) String(key string) (string, bool) {
	v, found := m[key]
	if !found || v == nil {
		return "", false
	}
	return stringify(v), true
}

// Truthy reports whether key holds a non-zero value. Missing keys, null,
// false, zero numbers, empty strings and empty sequences are all falsy.
func (m Meta) Truthy(key string) bool {
	switch val := m[key].(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case int:
		return val != 0
	case int64:
		return val != 0
	case uint64:
		return val != 0
	case float64:
		return val != 0
	case []any:
		return len(val) > 0
	case []string:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if item == nil {
				continue
			}
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(val, ", ")
	case float64:
		return formatFloat(val)
	default:
		return fmt.Sprint(val)
	}
}

// formatFloat keeps whole floats distinguishable from integers, so 3.0 prints
// as "3.0" rather than "3". Very large and very small magnitudes use exponent
// notation.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if a := math.Abs(f); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
