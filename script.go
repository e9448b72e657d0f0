package stagefit

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrExpectationFailed is returned by ResizeScript.Run when an expect step
// does not match the delegate's layout.
var ErrExpectationFailed = errors.New("stagefit: expectation failed")

const scriptEpsilon = 1e-9

// scriptStep represents a single action in a resize script.
type scriptStep struct {
	Action      string      `json:"action"`
	Width       float64     `json:"width,omitempty"`
	Height      float64     `json:"height,omitempty"`
	Policy      string      `json:"policy,omitempty"`
	FixedSize   *SizeConfig `json:"fixedSize,omitempty"`
	ExpectError bool        `json:"expectError,omitempty"`
	Scale       *float64    `json:"scale,omitempty"`
	Buffer      *SizeConfig `json:"buffer,omitempty"`
	Display     *SizeConfig `json:"display,omitempty"`
	State       string      `json:"state,omitempty"`
}

// scriptFile is the top-level JSON structure for a resize script.
type scriptFile struct {
	Buffer   SizeConfig   `json:"buffer"`
	Viewport SizeConfig   `json:"viewport"`
	Steps    []scriptStep `json:"steps"`
}

// ResizeScript replays a sequence of viewport resizes, design size changes
// and layout expectations against a headless delegate.
//
//	{
//		"buffer":   {"width": 480, "height": 320},
//		"viewport": {"width": 960, "height": 640},
//		"steps": [
//			{"action": "design", "width": 480, "height": 320, "policy": "FIXED_HEIGHT"},
//			{"action": "expect", "scale": 2, "display": {"width": 960, "height": 640}},
//			{"action": "resize", "width": 960, "height": 480},
//			{"action": "policy", "policy": "FIXED_WIDTH"}
//		]
//	}
type ResizeScript struct {
	buffer   Size
	viewport Size
	steps    []scriptStep
}

// LoadResizeScript parses a JSON resize script.
func LoadResizeScript(jsonData []byte) (*ResizeScript, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse resize script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse resize script: no steps")
	}
	for i, st := range file.Steps {
		switch st.Action {
		case "design", "policy", "resize", "expect":
		default:
			return nil, fmt.Errorf("parse resize script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ResizeScript{
		buffer:   file.Buffer.Size(),
		viewport: file.Viewport.Size(),
		steps:    file.Steps,
	}, nil
}

// Len returns the number of steps.
func (s *ResizeScript) Len() int { return len(s.steps) }

// Run executes every step against a fresh delegate over a MemorySurface and
// returns the delegate, the surface, and the first step error.
func (s *ResizeScript) Run(opts ...Option) (*Delegate, *MemorySurface, error) {
	surface := NewMemorySurface(s.buffer)
	viewport := s.viewport
	d := New(surface, surface.Container(), ViewportFunc(func() Size { return viewport }), opts...)

	for i, st := range s.steps {
		err := s.step(d, surface, &viewport, st)
		if err != nil {
			return d, surface, fmt.Errorf("step %d (%s): %w", i, st.Action, err)
		}
	}
	return d, surface, nil
}

func (s *ResizeScript) step(d *Delegate, surface *MemorySurface, viewport *Size, st scriptStep) error {
	var err error
	switch st.Action {
	case "design":
		var src PolicySource
		if src, err = st.policySource(); err == nil {
			err = d.SetDesignSize(st.Width, st.Height, src)
		}
	case "policy":
		var src PolicySource
		if src, err = st.policySource(); err == nil {
			if err = d.SetResolutionPolicy(src); err == nil {
				err = d.Reapply()
			}
		}
	case "resize":
		*viewport = Size{Width: st.Width, Height: st.Height}
		err = d.Reapply()
	case "expect":
		return st.check(d, surface)
	}
	if st.ExpectError {
		if err == nil {
			return fmt.Errorf("%w: expected an error", ErrExpectationFailed)
		}
		return nil
	}
	return err
}

// policySource resolves the step's policy. An empty policy keeps the
// delegate's current one.
func (st scriptStep) policySource() (PolicySource, error) {
	if st.FixedSize != nil {
		fixed, err := NewFixedSize(st.FixedSize.Width, st.FixedSize.Height)
		if err != nil {
			return nil, err
		}
		return NewResolutionPolicy(EqualToFrame{}, fixed), nil
	}
	if st.Policy == "" {
		return nil, nil
	}
	return ParsePreset(st.Policy)
}

func (st scriptStep) check(d *Delegate, surface *MemorySurface) error {
	l := d.Layout()
	if st.Scale != nil {
		if !near(l.ScaleX, *st.Scale) || !near(l.ScaleY, *st.Scale) {
			return fmt.Errorf("%w: scale = (%v, %v), want %v", ErrExpectationFailed, l.ScaleX, l.ScaleY, *st.Scale)
		}
	}
	if st.Buffer != nil && !nearSize(surface.Buffer, st.Buffer.Size()) {
		return fmt.Errorf("%w: buffer = %v, want %v", ErrExpectationFailed, surface.Buffer, st.Buffer.Size())
	}
	if st.Display != nil && !nearSize(surface.Display, st.Display.Size()) {
		return fmt.Errorf("%w: display = %v, want %v", ErrExpectationFailed, surface.Display, st.Display.Size())
	}
	if st.State != "" && d.State().String() != st.State {
		return fmt.Errorf("%w: state = %s, want %s", ErrExpectationFailed, d.State(), st.State)
	}
	return nil
}

func near(a, b float64) bool {
	return math.Abs(a-b) < scriptEpsilon
}

func nearSize(a, b Size) bool {
	return near(a.Width, b.Width) && near(a.Height, b.Height)
}
