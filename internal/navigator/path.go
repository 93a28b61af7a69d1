// Package navigator resolves paths such as data.items[0]["row-list"] inside
// decoded JSON, YAML or TOML documents.
package navigator

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ErrNotFound is returned when a path step does not exist.
var ErrNotFound = errors.New("path not found")

// Step is one parsed path segment: a Field, a QuotedKey or an Index.
type Step interface {
	String() string
}

// Field is a dotted field name.
type Field struct {
	Name string
}

func (f Field) String() string { return f.Name }

// QuotedKey is a key accessed as ["key"], which may contain dots.
type QuotedKey struct {
	Name string
}

func (q QuotedKey) String() string { return strconv.Quote(q.Name) }

// Index is an array index like [0].
type Index struct {
	N int
}

func (i Index) String() string { return strconv.Itoa(i.N) }

// ParsePath splits input into steps. It accepts dots, bracket indices and
// bracket quoted keys. An unterminated bracket is an error.
func ParsePath(input string) ([]Step, error) {
	var steps []Step
	i := 0
	for i < len(input) {
		switch ch := input[i]; ch {
		case '.':
			i++
		case '[':
			end := strings.IndexByte(input[i:], ']')
			if end == -1 {
				return nil, fmt.Errorf("unterminated bracket at offset %d in %q", i, input)
			}
			segment := strings.TrimSpace(input[i+1 : i+end])
			switch {
			case len(segment) >= 2 && segment[0] == '"' && segment[len(segment)-1] == '"':
				steps = append(steps, QuotedKey{Name: segment[1 : len(segment)-1]})
			default:
				if n, err := strconv.Atoi(segment); err == nil {
					steps = append(steps, Index{N: n})
				} else {
					steps = append(steps, Field{Name: segment})
				}
			}
			i += end + 1
		default:
			j := i
			for j < len(input) && input[j] != '.' && input[j] != '[' {
				j++
			}
			steps = append(steps, Field{Name: input[i:j]})
			i = j
		}
	}
	return steps, nil
}

// Resolve walks root along path. An empty path returns root.
func Resolve(root any, path string) (any, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return root, nil
	}
	steps, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	cur := root
	for _, s := range steps {
		cur, err = step(cur, s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return cur, nil
}

func step(cur any, s Step) (any, error) {
	switch v := cur.(type) {
	case map[string]any:
		return mapStep(v, s)
	case []any:
		idx, ok := s.(Index)
		if !ok {
			if n, err := strconv.Atoi(s.String()); err == nil {
				idx = Index{N: n}
			} else {
				return nil, fmt.Errorf("expected numeric index into array but got %s", s)
			}
		}
		if idx.N < 0 || idx.N >= len(v) {
			return nil, fmt.Errorf("index %d out of range: %w", idx.N, ErrNotFound)
		}
		return v[idx.N], nil
	default:
		if m, ok := asStringMap(cur); ok {
			return mapStep(m, s)
		}
		return nil, fmt.Errorf("cannot descend into %T at %s", cur, s)
	}
}

func mapStep(m map[string]any, s Step) (any, error) {
	key := s.String()
	if q, ok := s.(QuotedKey); ok {
		key = q.Name
	}
	v, ok := m[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, ErrNotFound)
	}
	return v, nil
}

// asStringMap converts named map types such as column.Row.
func asStringMap(v any) (map[string]any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.Type().Elem().Kind() != reflect.Interface {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}
