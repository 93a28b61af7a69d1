package limiter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		errMsg  string
	}{
		{name: "valid limit only", cfg: Config{Limit: 10}},
		{name: "valid offset only", cfg: Config{Offset: 5}},
		{name: "valid limit and offset", cfg: Config{Limit: 10, Offset: 5}},
		{name: "valid tail only", cfg: Config{Tail: 10}},
		{name: "tail ignores offset (valid)", cfg: Config{Tail: 10, Offset: 5}},
		{name: "limit and tail mutually exclusive", cfg: Config{Limit: 10, Tail: 5}, wantErr: true, errMsg: "mutually exclusive"},
		{name: "negative limit invalid", cfg: Config{Limit: -1}, wantErr: true, errMsg: "non-negative"},
		{name: "negative offset invalid", cfg: Config{Offset: -1}, wantErr: true, errMsg: "non-negative"},
		{name: "negative tail invalid", cfg: Config{Tail: -1}, wantErr: true, errMsg: "non-negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfigIsActive(t *testing.T) {
	assert.False(t, Config{}.IsActive())
	assert.True(t, Config{Limit: 1}.IsActive())
	assert.True(t, Config{Offset: 1}.IsActive())
	assert.True(t, Config{Tail: 1}.IsActive())
}

func TestWindow(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name      string
		cfg       Config
		want      []string
		wantStart int
	}{
		{name: "inactive", cfg: Config{}, want: items, wantStart: 0},
		{name: "limit", cfg: Config{Limit: 2}, want: []string{"a", "b"}, wantStart: 0},
		{name: "offset", cfg: Config{Offset: 3}, want: []string{"d", "e"}, wantStart: 3},
		{name: "offset and limit", cfg: Config{Offset: 1, Limit: 2}, want: []string{"b", "c"}, wantStart: 1},
		{name: "limit beyond end", cfg: Config{Offset: 4, Limit: 10}, want: []string{"e"}, wantStart: 4},
		{name: "huge limit", cfg: Config{Offset: 1, Limit: math.MaxInt}, want: []string{"b", "c", "d", "e"}, wantStart: 1},
		{name: "offset beyond end", cfg: Config{Offset: 9}, want: []string{}, wantStart: 5},
		{name: "tail", cfg: Config{Tail: 2}, want: []string{"d", "e"}, wantStart: 3},
		{name: "tail ignores offset", cfg: Config{Tail: 2, Offset: 1}, want: []string{"d", "e"}, wantStart: 3},
		{name: "tail larger than input", cfg: Config{Tail: 10}, want: items, wantStart: 0},
		{name: "huge tail", cfg: Config{Tail: math.MaxInt}, want: items, wantStart: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, start := Window(tt.cfg, items)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantStart, start)
		})
	}
}
