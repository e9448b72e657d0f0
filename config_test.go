package stagefit

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigPreset(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{"design": {"width": 480, "height": 320}, "policy": "FIXED_HEIGHT", "debug": true}`))
	require.NoError(t, err)

	assert.Equal(t, Size{Width: 480, Height: 320}, cfg.Design.Size())
	assert.Equal(t, "FIXED_HEIGHT", cfg.Policy)
	assert.True(t, cfg.Debug)

	src, err := cfg.PolicySource()
	require.NoError(t, err)
	assert.Equal(t, PresetFixedHeight, src)
}

func TestLoadConfigFixedSize(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{"design": {"width": 320, "height": 480}, "fixedSize": {"width": 640, "height": 1280}}`))
	require.NoError(t, err)

	src, err := cfg.PolicySource()
	require.NoError(t, err)
	p, ok := src.(*ResolutionPolicy)
	require.True(t, ok)
	assert.Equal(t, "EQUAL_TO_FRAME+FIXED_SIZE", p.String())
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"zero design", `{"design": {"width": 0, "height": 320}, "policy": "FIXED_WIDTH"}`},
		{"missing policy", `{"design": {"width": 480, "height": 320}}`},
		{"unknown preset", `{"design": {"width": 480, "height": 320}, "policy": "SHOW_ALL"}`},
		{"both forms", `{"design": {"width": 480, "height": 320}, "policy": "FIXED_WIDTH", "fixedSize": {"width": 1, "height": 1}}`},
		{"bad fixed size", `{"design": {"width": 480, "height": 320}, "fixedSize": {"width": -1, "height": 1}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigFS(t *testing.T) {
	fsys := fstest.MapFS{
		"stage.json": {Data: []byte(`{"design": {"width": 480, "height": 320}, "policy": "fixed_width"}`)},
	}

	cfg, err := LoadConfigFS(fsys, "stage.json")
	require.NoError(t, err)
	assert.Equal(t, "fixed_width", cfg.Policy)

	_, err = LoadConfigFS(fsys, "missing.json")
	assert.Error(t, err)
}

func TestConfigApply(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{"design": {"width": 480, "height": 320}, "policy": "FIXED_WIDTH"}`))
	require.NoError(t, err)

	d, m, _ := newTestDelegate(t, Size{Width: 100, Height: 100}, Size{Width: 960, Height: 480})
	require.NoError(t, cfg.Apply(d))

	assert.Equal(t, 2.0, d.ScaleX())
	assert.Equal(t, Size{Width: 480, Height: 240}, m.Buffer)
}
