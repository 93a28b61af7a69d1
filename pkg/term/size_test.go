package term

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withSize(t *testing.T, fn func(int) (int, int, error)) {
	t.Helper()
	prev := sizeFunc
	sizeFunc = fn
	t.Cleanup(func() { sizeFunc = prev })
}

func TestDetectSizeFromTerminal(t *testing.T) {
	withSize(t, func(int) (int, int, error) { return 100, 40, nil })
	w, h := DetectSize()
	assert.Equal(t, 100, w)
	assert.Equal(t, 40, h)
}

func TestDetectSizeFromColumns(t *testing.T) {
	withSize(t, func(int) (int, int, error) { return 0, 0, errors.New("not a tty") })
	t.Setenv("COLUMNS", "77")
	w, h := DetectSize()
	assert.Equal(t, 77, w)
	assert.Equal(t, FallbackHeight, h)
}

func TestDetectSizeFallback(t *testing.T) {
	withSize(t, func(int) (int, int, error) { return 0, 0, errors.New("not a tty") })
	t.Setenv("COLUMNS", "wide")
	assert.Equal(t, FallbackWidth, DetectWidth())
}
