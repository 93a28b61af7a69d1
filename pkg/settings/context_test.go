package settings

import (
	"context"
	"testing"
)

func TestIntoContext(t *testing.T) {
	tests := []struct {
		name     string
		settings *Run
	}{
		{
			name:     "empty_settings",
			settings: &Run{},
		},
		{
			name: "settings_with_values",
			settings: &Run{
				NoColor: true,
				Locale:  "en-us",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			newCtx := IntoContext(ctx, tt.settings)

			got, ok := FromContext(newCtx)
			if !ok {
				t.Fatal("FromContext() should find the stored settings")
			}
			if got != tt.settings {
				t.Errorf("FromContext() = %p, want %p", got, tt.settings)
			}
		})
	}
}

func TestFromContextMissing(t *testing.T) {
	got, ok := FromContext(context.Background())
	if ok || got != nil {
		t.Errorf("FromContext() on empty context = (%v, %v), want (nil, false)", got, ok)
	}
}

func TestFromContextOrDefault(t *testing.T) {
	def := FromContextOrDefault(context.Background())
	if def == nil || def.Output != "table" {
		t.Fatalf("expected CLI defaults, got %+v", def)
	}

	stored := &Run{Locale: "zh-tw"}
	got := FromContextOrDefault(IntoContext(context.Background(), stored))
	if got != stored {
		t.Errorf("FromContextOrDefault() should return stored settings")
	}
}
