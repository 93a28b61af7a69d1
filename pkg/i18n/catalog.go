// Package i18n resolves text ids to locale specific display strings.
//
// A Catalog is the default Translator. It ships with an embedded table of
// built-in texts and accepts YAML overrides. Requested locales are matched
// against the catalog's locales with golang.org/x/text/language, so "en"
// resolves to "en-us"; anything that does not match falls back to the
// catalog's default locale, and a missing text falls back to the id itself.
package i18n

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLocale is used when a catalog file does not name one.
const DefaultLocale = "zh-cn"

//go:embed catalog.yaml
var embeddedCatalog []byte

// Translator resolves a text id for a locale.
type Translator interface {
	Text(locale, key string) string
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(locale, key string) string

// Text implements Translator.
func (f TranslatorFunc) Text(locale, key string) string { return f(locale, key) }

type catalogFile struct {
	DefaultLocale string                       `yaml:"default-locale"`
	Texts         map[string]map[string]string `yaml:"texts"`
}

// Catalog is a Translator backed by an in-memory text table. It is safe for
// concurrent use.
type Catalog struct {
	mu            sync.RWMutex
	defaultLocale string
	locales       []string
	matcher       language.Matcher
	texts         map[string]map[string]string
}

// Embedded returns a new Catalog holding the built-in texts.
func Embedded() (*Catalog, error) {
	c, err := Parse(embeddedCatalog)
	if err != nil {
		return nil, fmt.Errorf("decode embedded catalog: %w", err)
	}
	return c, nil
}

// Parse builds a Catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	c := &Catalog{texts: map[string]map[string]string{}}
	if err := c.Merge(data); err != nil {
		return nil, err
	}
	return c, nil
}

// Merge decodes YAML and overlays its texts on the catalog. A default-locale
// entry replaces the current default.
func (c *Catalog) Merge(data []byte) error {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("decode catalog: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.texts == nil {
		c.texts = map[string]map[string]string{}
	}
	if dl := normalizeLocale(f.DefaultLocale); dl != "" {
		if _, err := language.Parse(dl); err != nil {
			return fmt.Errorf("default-locale %q: %w", f.DefaultLocale, err)
		}
		c.defaultLocale = dl
	}
	for key, byLocale := range f.Texts {
		dst, ok := c.texts[key]
		if !ok {
			dst = map[string]string{}
			c.texts[key] = dst
		}
		for loc, text := range byLocale {
			loc = normalizeLocale(loc)
			if _, err := language.Parse(loc); err != nil {
				return fmt.Errorf("text %q: locale %q: %w", key, loc, err)
			}
			dst[loc] = text
		}
	}
	c.rebuildLocked()
	return nil
}

// LoadFile merges a YAML catalog file.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := c.Merge(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// rebuildLocked recomputes the locale list and matcher. The default locale
// goes first so the matcher falls back to it.
func (c *Catalog) rebuildLocked() {
	if c.defaultLocale == "" {
		c.defaultLocale = DefaultLocale
	}
	seen := map[string]bool{c.defaultLocale: true}
	others := []string{}
	for _, byLocale := range c.texts {
		for loc := range byLocale {
			if !seen[loc] {
				seen[loc] = true
				others = append(others, loc)
			}
		}
	}
	sort.Strings(others)

	c.locales = append([]string{c.defaultLocale}, others...)
	tags := make([]language.Tag, len(c.locales))
	for i, loc := range c.locales {
		tags[i] = language.Make(loc)
	}
	c.matcher = language.NewMatcher(tags)
}

// DefaultLocale returns the locale used when nothing else matches.
func (c *Catalog) DefaultLocale() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.defaultLocale
}

// Locales lists the catalog's locales, default first.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.locales...)
}

// Resolve maps a requested locale onto one of the catalog's locales.
// Empty or unparseable input resolves to the default locale.
func (c *Catalog) Resolve(locale string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resolveLocked(locale)
}

func (c *Catalog) resolveLocked(locale string) string {
	locale = normalizeLocale(locale)
	if locale == "" || c.matcher == nil {
		return c.defaultLocale
	}
	for _, loc := range c.locales {
		if loc == locale {
			return loc
		}
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return c.defaultLocale
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No || idx < 0 || idx >= len(c.locales) {
		return c.defaultLocale
	}
	return c.locales[idx]
}

// Text returns the text for key in the best matching locale, then the
// default locale, then key itself.
func (c *Catalog) Text(locale, key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	byLocale, ok := c.texts[key]
	if !ok {
		return key
	}
	if s, ok := byLocale[c.resolveLocked(locale)]; ok && s != "" {
		return s
	}
	if s, ok := byLocale[c.defaultLocale]; ok && s != "" {
		return s
	}
	return key
}

// Textf is Text with {0}, {1}, ... replaced by the formatted args.
func (c *Catalog) Textf(locale, key string, args ...any) string {
	return Format(c.Text(locale, key), args...)
}

// Format replaces {n} placeholders in s with fmt.Sprint(args[n]).
// Placeholders without a matching argument are left as is.
func Format(s string, args ...any) string {
	if len(args) == 0 || !strings.Contains(s, "{") {
		return s
	}
	pairs := make([]string, 0, len(args)*2)
	for i, a := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", fmt.Sprint(a))
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}
