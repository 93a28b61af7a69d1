package i18n

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEmbedded(t *testing.T) *Catalog {
	t.Helper()
	c, err := Embedded()
	require.NoError(t, err)
	return c
}

func TestEmbeddedCatalog(t *testing.T) {
	c := mustEmbedded(t)
	assert.Equal(t, DefaultLocale, c.DefaultLocale())
	assert.Equal(t, []string{"zh-cn", "en-us", "zh-tw"}, c.Locales())
}

func TestCatalogText(t *testing.T) {
	c := mustEmbedded(t)

	tests := []struct {
		name   string
		locale string
		key    string
		want   string
	}{
		{name: "exact locale", locale: "en-us", key: "order-text", want: "order"},
		{name: "case and underscore insensitive", locale: "EN_US", key: "order-text", want: "order"},
		{name: "base language matches region", locale: "en", key: "order-text", want: "order"},
		{name: "traditional chinese", locale: "zh-tw", key: "order-text", want: "序號"},
		{name: "empty locale uses default", locale: "", key: "order-text", want: "序号"},
		{name: "unknown locale uses default", locale: "fr-fr", key: "order-text", want: "序号"},
		{name: "garbage locale uses default", locale: "not a locale!", key: "order-text", want: "序号"},
		{name: "missing key echoes key", locale: "en-us", key: "no-such-text", want: "no-such-text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Text(tt.locale, tt.key))
		})
	}
}

func TestCatalogMergeOverridesAndAddsLocales(t *testing.T) {
	c := mustEmbedded(t)
	err := c.Merge([]byte(`
texts:
  order-text:
    en-us: "#"
    ja-jp: 番号
  only-chinese:
    zh-cn: 仅中文
`))
	require.NoError(t, err)

	assert.Equal(t, "#", c.Text("en", "order-text"))
	assert.Equal(t, "番号", c.Text("ja-jp", "order-text"))
	assert.Contains(t, c.Locales(), "ja-jp")
	// Falls back to the default locale when the matched locale has no entry.
	assert.Equal(t, "仅中文", c.Text("en-us", "only-chinese"))
}

func TestCatalogMergeChangesDefaultLocale(t *testing.T) {
	c := mustEmbedded(t)
	require.NoError(t, c.Merge([]byte("default-locale: en-us\n")))
	assert.Equal(t, "en-us", c.DefaultLocale())
	assert.Equal(t, "order", c.Text("", "order-text"))
	assert.Equal(t, "en-us", c.Locales()[0])
}

func TestCatalogMergeErrors(t *testing.T) {
	c := mustEmbedded(t)
	assert.Error(t, c.Merge([]byte("texts: [not, a, map]")))
	assert.Error(t, c.Merge([]byte("texts:\n  a:\n    \"!!\": x\n")))
	// Failed merges leave existing texts intact.
	assert.Equal(t, "order", c.Text("en-us", "order-text"))
}

func TestCatalogLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "texts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("texts:\n  order-text:\n    en-us: No.\n"), 0o600))

	c := mustEmbedded(t)
	require.NoError(t, c.LoadFile(path))
	assert.Equal(t, "No.", c.Text("en-us", "order-text"))

	err := c.LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestTextfAndFormat(t *testing.T) {
	c := mustEmbedded(t)
	assert.Equal(t, "showing 1-10 of 42", c.Textf("en-us", "page-info", 1, 10, 42))
	assert.Equal(t, "a {0} b", Format("a {0} b"))
	assert.Equal(t, "x-{1}", Format("{0}-{1}", "x"))
}

func TestResolve(t *testing.T) {
	c := mustEmbedded(t)
	assert.Equal(t, "en-us", c.Resolve("en"))
	assert.Equal(t, "zh-cn", c.Resolve(""))
	assert.Equal(t, "zh-tw", c.Resolve("ZH-TW"))
}

func TestTranslatorFunc(t *testing.T) {
	var tr Translator = TranslatorFunc(func(locale, key string) string { return locale + ":" + key })
	assert.Equal(t, "en:order-text", tr.Text("en", "order-text"))
}

func TestCatalogConcurrentReads(t *testing.T) {
	c := mustEmbedded(t)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "order", c.Text("en", "order-text"))
		}()
	}
	wg.Wait()
}
