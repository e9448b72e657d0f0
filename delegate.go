package stagefit

import (
	"context"
	"fmt"
	"log/slog"
)

// State is the adaptation state of a Delegate.
type State uint8

const (
	StateUninitialized State = iota // no policy has been set
	StateConfigured                 // a policy is active but has not produced a layout since it was set
	StateResolved                   // the active policy has produced the current layout
	StateFailed                     // no policy could be resolved; terminal
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateConfigured:
		return "configured"
	case StateResolved:
		return "resolved"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Option configures a Delegate.
type Option func(*Delegate)

// WithLogger sets the logger used by the delegate instead of the package
// logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Delegate) { d.logger = l }
}

// WithStrategies sets the strategy registry presets expand into. By default
// the delegate uses DefaultStrategies.
func WithStrategies(reg *Strategies) Option {
	return func(d *Delegate) {
		d.strategies = reg
		d.ownStrategies = true
	}
}

// WithDebug enables debug mode from construction.
func WithDebug(enabled bool) Option {
	return func(d *Delegate) { d.debug = enabled }
}

// Delegate owns the design size, the active resolution policy, and the
// resolved scale factors that downstream renderers read. All methods must be
// called from the goroutine that owns the drawing surface.
type Delegate struct {
	env           Env
	strategies    *Strategies
	ownStrategies bool
	logger        *slog.Logger
	debug         bool

	design   Size
	original Size
	layout   Layout
	policy   *ResolutionPolicy
	state    State
}

// New creates a delegate over the given collaborators. The initial design
// size is the surface's current drawing buffer size and the scale is (1, 1).
func New(surface Surface, container Container, viewport Viewport, opts ...Option) *Delegate {
	d := &Delegate{
		env: Env{Surface: surface, Container: container, Viewport: viewport},
	}
	for _, opt := range opts {
		opt(d)
	}
	if !d.ownStrategies {
		d.strategies = DefaultStrategies()
	}
	var buf Size
	if surface != nil {
		buf = surface.BufferSize()
	}
	d.design = buf
	d.original = buf
	d.layout = identityLayout(buf)
	return d
}

func (d *Delegate) log() *slog.Logger {
	if d.logger != nil {
		return d.logger
	}
	return Logger()
}

// SetDebugMode enables or disables debug mode. When enabled, every committed
// layout is logged at debug level.
func (d *Delegate) SetDebugMode(enabled bool) {
	d.debug = enabled
}

// SetDesignSize sets the design resolution and applies the policy resolved
// from src (see SetResolutionPolicy). The policy, design size and layout are
// updated together only if the policy applies; an invalid size or viewport
// is logged at info level and returns an error without changing anything.
func (d *Delegate) SetDesignSize(width, height float64, src PolicySource) error {
	if d.state == StateFailed {
		return ErrFailed
	}
	size := Size{Width: width, Height: height}
	if !size.Valid() {
		d.log().Info("resolution error: invalid design size", "width", width, "height", height)
		return fmt.Errorf("set design size %vx%v: %w", width, height, ErrInvalidDesignSize)
	}
	p, err := d.resolve(src)
	if err != nil {
		return err
	}
	p.Init(d.env)
	layout, err := p.Apply(d.env, size)
	if err != nil {
		d.log().Info("resolution error: layout not applied", "policy", p.String(), "error", err)
		return fmt.Errorf("set design size %vx%v: apply %v: %w", width, height, p, err)
	}
	d.policy = p
	d.design = size
	d.original = size
	d.commit(layout)
	return nil
}

// SetResolutionPolicy activates the policy resolved from src and calls its
// Init. A *ResolutionPolicy is used as is; a Preset expands into
// EqualToFrame plus the preset's content strategy; nil re-activates the
// current policy. When nothing usable can be resolved the error is logged
// at LevelFatal, ErrNoPolicy is returned and the delegate enters StateFailed.
func (d *Delegate) SetResolutionPolicy(src PolicySource) error {
	if d.state == StateFailed {
		return ErrFailed
	}
	p, err := d.resolve(src)
	if err != nil {
		return err
	}
	d.policy = p
	p.Init(d.env)
	d.state = StateConfigured
	return nil
}

// resolve turns src into a usable policy without activating it. Failure is
// fatal.
func (d *Delegate) resolve(src PolicySource) (*ResolutionPolicy, error) {
	if isNilSource(src) {
		if d.policy == nil {
			return nil, d.fail(fmt.Errorf("set resolution policy: none set: %w", ErrNoPolicy))
		}
		src = d.policy
	}
	p, err := src.resolvePolicy(d.strategies)
	if err != nil {
		return nil, d.fail(fmt.Errorf("set resolution policy: %w", err))
	}
	return p, nil
}

// Reapply runs the active policy again against the current viewport. Hosts
// call it when the viewport changes size.
func (d *Delegate) Reapply() error {
	if d.state == StateFailed {
		return ErrFailed
	}
	if d.policy == nil {
		return fmt.Errorf("reapply: %w", ErrNoPolicy)
	}
	return d.apply()
}

func (d *Delegate) apply() error {
	layout, err := d.policy.Apply(d.env, d.design)
	if err != nil {
		d.log().Info("resolution error: layout not applied", "policy", d.policy.String(), "error", err)
		return fmt.Errorf("apply %v: %w", d.policy, err)
	}
	d.commit(layout)
	return nil
}

// commit writes a computed layout to the surface, the container and the
// delegate's scale factors.
func (d *Delegate) commit(l Layout) {
	if s := d.env.Surface; s != nil {
		s.SetBufferSize(l.BufferSize)
		s.SetDisplaySize(l.DisplaySize)
	}
	if c := d.env.Container; c != nil {
		c.SetDisplaySize(l.DisplaySize)
	}
	d.layout = l
	d.state = StateResolved
	if d.debug {
		d.debugLog(l)
	}
}

func (d *Delegate) fail(err error) error {
	d.state = StateFailed
	d.log().Log(context.Background(), LevelFatal, "resolution policy required", "error", err)
	return err
}

func isNilSource(src PolicySource) bool {
	if src == nil {
		return true
	}
	p, ok := src.(*ResolutionPolicy)
	return ok && p == nil
}

// ScaleX returns the last resolved horizontal scale factor.
func (d *Delegate) ScaleX() float64 { return d.layout.ScaleX }

// ScaleY returns the last resolved vertical scale factor.
func (d *Delegate) ScaleY() float64 { return d.layout.ScaleY }

// Scale returns both scale factors.
func (d *Delegate) Scale() (x, y float64) { return d.layout.ScaleX, d.layout.ScaleY }

// DesignSize returns the current design size.
func (d *Delegate) DesignSize() Size { return d.design }

// OriginalDesignSize returns the design size recorded by the last successful
// SetDesignSize, or the construction-time buffer size.
func (d *Delegate) OriginalDesignSize() Size { return d.original }

// Layout returns the last committed layout.
func (d *Delegate) Layout() Layout { return d.layout }

// Policy returns the active policy, or nil.
func (d *Delegate) Policy() *ResolutionPolicy { return d.policy }

// State returns the adaptation state.
func (d *Delegate) State() State { return d.state }

// DesignToScreen maps a design-space point to display pixels.
func (d *Delegate) DesignToScreen(x, y float64) (sx, sy float64) {
	p := d.layout.DesignToDisplay(Vec2{X: x, Y: y})
	return p.X, p.Y
}

// ScreenToDesign maps a display-pixel point to design space.
func (d *Delegate) ScreenToDesign(sx, sy float64) (x, y float64) {
	p := d.layout.DisplayToDesign(Vec2{X: sx, Y: sy})
	return p.X, p.Y
}

// DesignViewport returns the design-space rectangle covered by the drawing
// buffer.
func (d *Delegate) DesignViewport() Rect {
	b := d.layout.BufferSize
	return Rect{Width: b.Width, Height: b.Height}
}
