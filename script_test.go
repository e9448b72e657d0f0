package stagefit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadResizeScript(t *testing.T) {
	data := []byte(`{
		"buffer": {"width": 480, "height": 320},
		"viewport": {"width": 960, "height": 640},
		"steps": [
			{"action": "design", "width": 480, "height": 320, "policy": "FIXED_HEIGHT"},
			{"action": "expect", "scale": 2},
			{"action": "resize", "width": 960, "height": 480},
			{"action": "policy", "policy": "FIXED_WIDTH"}
		]
	}`)

	script, err := LoadResizeScript(data)
	require.NoError(t, err)
	assert.Equal(t, 4, script.Len())
	assert.Equal(t, Size{Width: 480, Height: 320}, script.buffer)
	assert.Equal(t, Size{Width: 960, Height: 640}, script.viewport)
	assert.Equal(t, "design", script.steps[0].Action)
	assert.Equal(t, "FIXED_HEIGHT", script.steps[0].Policy)
	require.NotNil(t, script.steps[1].Scale)
	assert.Equal(t, 2.0, *script.steps[1].Scale)
}

func TestLoadResizeScript_Invalid(t *testing.T) {
	_, err := LoadResizeScript([]byte(`not json`))
	assert.Error(t, err)
}

func TestLoadResizeScript_Empty(t *testing.T) {
	_, err := LoadResizeScript([]byte(`{"steps": []}`))
	assert.Error(t, err)
}

func TestLoadResizeScript_UnknownAction(t *testing.T) {
	_, err := LoadResizeScript([]byte(`{"steps": [{"action": "click"}]}`))
	assert.ErrorContains(t, err, "unknown action")
}

func TestResizeScriptRun(t *testing.T) {
	data := []byte(`{
		"buffer": {"width": 100, "height": 100},
		"viewport": {"width": 1280, "height": 640},
		"steps": [
			{"action": "expect", "state": "uninitialized", "scale": 1},
			{"action": "design", "width": 480, "height": 320, "policy": "FIXED_HEIGHT"},
			{"action": "expect", "state": "resolved", "scale": 2,
				"buffer": {"width": 480, "height": 320}, "display": {"width": 960, "height": 640}},
			{"action": "design", "width": 0, "height": 320, "policy": "FIXED_WIDTH", "expectError": true},
			{"action": "expect", "scale": 2, "buffer": {"width": 480, "height": 320}},
			{"action": "resize", "width": 960, "height": 480},
			{"action": "expect", "scale": 1.5, "display": {"width": 720, "height": 480}},
			{"action": "policy", "policy": "FIXED_WIDTH"},
			{"action": "expect", "scale": 2, "buffer": {"width": 480, "height": 240}, "display": {"width": 960, "height": 480}},
			{"action": "design", "width": 320, "height": 480, "fixedSize": {"width": 640, "height": 1280}},
			{"action": "expect", "scale": 2, "buffer": {"width": 320, "height": 640}, "display": {"width": 640, "height": 1280}},
			{"action": "resize", "width": 0, "height": 0},
			{"action": "expect", "state": "resolved", "scale": 2},
			{"action": "policy", "policy": "FIXED_HEIGHT", "expectError": true},
			{"action": "expect", "state": "configured", "display": {"width": 640, "height": 1280}}
		]
	}`)
	script, err := LoadResizeScript(data)
	require.NoError(t, err)

	d, surface, err := script.Run()
	require.NoError(t, err)
	assert.Equal(t, StateConfigured, d.State())
	assert.Equal(t, "EQUAL_TO_FRAME+FIXED_HEIGHT", d.Policy().String())
	assert.Equal(t, Size{Width: 640, Height: 1280}, surface.ContainerDisplay)
}

func TestResizeScriptRunExpectationFailure(t *testing.T) {
	data := []byte(`{
		"viewport": {"width": 960, "height": 640},
		"steps": [
			{"action": "design", "width": 480, "height": 320, "policy": "FIXED_HEIGHT"},
			{"action": "expect", "scale": 3}
		]
	}`)
	script, err := LoadResizeScript(data)
	require.NoError(t, err)

	_, _, err = script.Run()
	assert.ErrorIs(t, err, ErrExpectationFailed)
	assert.ErrorContains(t, err, "step 1 (expect)")
}

func TestResizeScriptRunMissingError(t *testing.T) {
	data := []byte(`{
		"viewport": {"width": 960, "height": 640},
		"steps": [
			{"action": "design", "width": 480, "height": 320, "policy": "FIXED_HEIGHT", "expectError": true}
		]
	}`)
	script, err := LoadResizeScript(data)
	require.NoError(t, err)

	_, _, err = script.Run()
	assert.ErrorIs(t, err, ErrExpectationFailed)
}
