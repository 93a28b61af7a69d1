// Package loader reads row data for tables from JSON, NDJSON, YAML or TOML.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/gridcol/internal/navigator"
	"github.com/oakwood-commons/gridcol/pkg/column"
)

// DefaultRowsKey names the array unwrapped from a top-level object.
const DefaultRowsKey = "rows"

var (
	// ErrEmptyInput is returned for blank input.
	ErrEmptyInput = errors.New("empty input")
	// ErrNotTabular is returned when a document holds no objects.
	ErrNotTabular = errors.New("input is not tabular")
)

// LoadRows parses input into rows, auto-detecting the format:
// - Multi-document YAML (separated by ---): one or more rows per document
// - Newline-delimited JSON: one row per line
// - TOML: a table, or a table with an array of tables under rowsKey
// - A single JSON or YAML document
//
// A document that is an array yields one row per object element. An object
// holding an array under rowsKey yields that array; rowsKey may be a path
// such as data.pages[0].rows. Any other object is a single row. Empty
// rowsKey means DefaultRowsKey.
func LoadRows(input, rowsKey string) ([]column.Row, error) {
	docs, err := LoadDocuments(input)
	if err != nil {
		return nil, err
	}
	if rowsKey == "" {
		rowsKey = DefaultRowsKey
	}
	var rows []column.Row
	for i, doc := range docs {
		r, err := toRows(doc, rowsKey)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		rows = append(rows, r...)
	}
	return rows, nil
}

// ReadRows reads all of r and parses it with LoadRows.
func ReadRows(r io.Reader, rowsKey string) ([]column.Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return LoadRows(string(data), rowsKey)
}

// LoadFile reads and parses a file.
func LoadFile(path, rowsKey string) ([]column.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rows, err := LoadRows(string(data), rowsKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// LoadDocuments parses input into its documents without shaping them.
func LoadDocuments(input string) ([]any, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyInput
	}

	if strings.Contains(input, "\n---") || strings.HasPrefix(input, "---") {
		return loadMultiDocYAML(input)
	}

	// A pretty-printed JSON document spans lines that look like NDJSON.
	if (strings.HasPrefix(input, "{") || strings.HasPrefix(input, "[")) && json.Valid([]byte(input)) {
		return loadJSON(input)
	}

	lines := strings.Split(input, "\n")
	if len(lines) > 1 && isLikelyNDJSON(lines) {
		return loadNDJSON(input)
	}

	// TOML [section] headers look like JSON arrays; check TOML first.
	if isLikelyTOML(input) {
		return loadTOML(input)
	}

	if strings.HasPrefix(input, "{") || strings.HasPrefix(input, "[") {
		return loadJSON(input)
	}
	return loadYAML(input)
}

func toRows(doc any, rowsKey string) ([]column.Row, error) {
	switch v := doc.(type) {
	case []any:
		rows := make([]column.Row, 0, len(v))
		for i, item := range v {
			m, ok := asMap(item)
			if !ok {
				return nil, fmt.Errorf("element %d is %T: %w", i, item, ErrNotTabular)
			}
			rows = append(rows, m)
		}
		return rows, nil
	case []map[string]any:
		rows := make([]column.Row, len(v))
		for i, m := range v {
			rows[i] = m
		}
		return rows, nil
	default:
		m, ok := asMap(doc)
		if !ok {
			return nil, fmt.Errorf("got %T: %w", doc, ErrNotTabular)
		}
		if inner, ok := rowsAt(m, rowsKey); ok {
			switch inner.(type) {
			case []any, []map[string]any:
				return toRows(inner, rowsKey)
			}
		}
		return []column.Row{m}, nil
	}
}

// rowsAt looks rowsKey up as a literal key first, then as a path such as
// data.pages[0].rows.
func rowsAt(m column.Row, rowsKey string) (any, bool) {
	if v, ok := m[rowsKey]; ok {
		return v, true
	}
	if !strings.ContainsAny(rowsKey, ".[") {
		return nil, false
	}
	v, err := navigator.Resolve(map[string]any(m), rowsKey)
	if err != nil {
		return nil, false
	}
	return v, true
}

func asMap(v any) (column.Row, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case column.Row:
		return m, true
	default:
		return nil, false
	}
}

func loadJSON(input string) ([]any, error) {
	var data any
	if err := json.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return []any{data}, nil
}

func loadYAML(input string) ([]any, error) {
	var data any
	if err := yaml.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return []any{data}, nil
}

func loadMultiDocYAML(input string) ([]any, error) {
	var results []any
	decoder := yaml.NewDecoder(strings.NewReader(input))
	for {
		var doc any
		if err := decoder.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("invalid multi-document YAML: %w", err)
		}
		if doc != nil {
			results = append(results, doc)
		}
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no documents found in multi-document YAML")
	}
	return results, nil
}

// loadNDJSON parses one JSON value per line. Lines that are not JSON are an
// error, since rows must be objects.
func loadNDJSON(input string) ([]any, error) {
	lines := strings.Split(input, "\n")
	results := make([]any, 0, len(lines))
	for n, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var obj any
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			return nil, fmt.Errorf("invalid NDJSON at line %d: %w", n+1, err)
		}
		results = append(results, obj)
	}
	return results, nil
}

// isLikelyNDJSON requires several non-empty lines, most of them starting with
// '{' or '[', so YAML lists of bare items are not misread.
func isLikelyNDJSON(lines []string) bool {
	jsonCount := 0
	nonEmptyCount := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		nonEmptyCount++
		if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
			jsonCount++
		}
	}
	return nonEmptyCount > 1 && jsonCount > nonEmptyCount/2
}

var (
	// [section], [[array]], ["quoted"], [dotted.key]; not JSON arrays like [1, 2].
	tomlSectionPattern = regexp.MustCompile(`^\s*\[{1,2}(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\]{1,2}\s*$`)
	// key = value, as opposed to YAML's key: value.
	tomlKeyValuePattern = regexp.MustCompile(`^\s*(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+')+(?:\.(?:[a-zA-Z_][a-zA-Z0-9_-]*|"[^"]+"|'[^']+'))*\s*=\s*.+$`)
)

func isLikelyTOML(input string) bool {
	sectionCount := 0
	keyValueCount := 0
	nonEmptyCount := 0
	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		nonEmptyCount++
		if tomlSectionPattern.MatchString(line) {
			sectionCount++
		}
		if tomlKeyValuePattern.MatchString(line) {
			keyValueCount++
		}
	}
	return sectionCount > 0 || (nonEmptyCount > 0 && keyValueCount > nonEmptyCount/2)
}

func loadTOML(input string) ([]any, error) {
	var data map[string]any
	if err := toml.Unmarshal([]byte(input), &data); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	return []any{data}, nil
}
