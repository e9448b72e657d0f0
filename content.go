package stagefit

import "fmt"

// ContentKind identifies a built-in content strategy.
type ContentKind uint8

const (
	ContentFixedHeight ContentKind = iota + 1 // viewport height is the reference dimension
	ContentFixedWidth                         // viewport width is the reference dimension
	ContentFixedSize                          // a fixed target size stands in for the viewport
)

// String returns the kind's preset-style name.
func (k ContentKind) String() string {
	switch k {
	case ContentFixedHeight:
		return "FIXED_HEIGHT"
	case ContentFixedWidth:
		return "FIXED_WIDTH"
	case ContentFixedSize:
		return "FIXED_SIZE"
	default:
		return "UNKNOWN"
	}
}

// Layout is the result of applying a content strategy: a uniform scale
// factor, the size of the drawing buffer in design units, and the size of the
// box it is displayed in, in physical pixels.
type Layout struct {
	Strategy    ContentKind
	ScaleX      float64
	ScaleY      float64
	BufferSize  Size
	DisplaySize Size
	// Viewport is the viewport (or fixed target) the layout was computed for.
	Viewport Size
}

// identityLayout is the layout of a delegate no policy has run on yet.
func identityLayout(buffer Size) Layout {
	return Layout{ScaleX: 1, ScaleY: 1, BufferSize: buffer, DisplaySize: buffer}
}

// DesignToDisplay maps a design-space point to display pixels.
func (l Layout) DesignToDisplay(p Vec2) Vec2 {
	return Vec2{X: p.X * l.ScaleX, Y: p.Y * l.ScaleY}
}

// DisplayToDesign maps a display-pixel point back to design space.
func (l Layout) DisplayToDesign(p Vec2) Vec2 {
	return Vec2{X: p.X / l.ScaleX, Y: p.Y / l.ScaleY}
}

// ContentStrategy computes how design-resolution content is scaled into the
// container. Strategies are stateless and can be shared between policies and
// delegates. The set of strategies is closed; implementations live in this
// package.
type ContentStrategy interface {
	Kind() ContentKind
	// Init captures one-time setup state when a policy becomes active.
	Init(env Env)
	// Apply computes the layout for design against the current viewport.
	Apply(env Env, design Size) (Layout, error)

	contentStrategy()
}

// uniformLayout builds a Layout with the same scale on both axes.
func uniformLayout(kind ContentKind, scale float64, buffer, display, viewport Size) Layout {
	return Layout{
		Strategy:    kind,
		ScaleX:      scale,
		ScaleY:      scale,
		BufferSize:  buffer,
		DisplaySize: display,
		Viewport:    viewport,
	}
}

// FixedHeight scales content so its full design height fills the viewport
// height. The horizontal extent follows the design aspect ratio.
type FixedHeight struct{}

// Kind implements ContentStrategy.
func (FixedHeight) Kind() ContentKind { return ContentFixedHeight }

// Init implements ContentStrategy. It is a no-op.
func (FixedHeight) Init(Env) {}

// Apply implements ContentStrategy.
func (FixedHeight) Apply(env Env, design Size) (Layout, error) {
	if !design.Valid() {
		return Layout{}, fmt.Errorf("fixed height: %w: %vx%v", ErrInvalidDesignSize, design.Width, design.Height)
	}
	vp := env.viewportSize()
	if !validDimension(vp.Height) {
		return Layout{}, fmt.Errorf("fixed height: %w: height %v", ErrInvalidViewport, vp.Height)
	}
	scale := vp.Height / design.Height
	display := Size{Width: design.Width * scale, Height: vp.Height}
	return uniformLayout(ContentFixedHeight, scale, design, display, vp), nil
}

func (FixedHeight) contentStrategy() {}

// FixedWidth scales content so its full design width fills the viewport
// width. The drawing buffer grows or shrinks vertically to cover the
// viewport height.
type FixedWidth struct{}

// Kind implements ContentStrategy.
func (FixedWidth) Kind() ContentKind { return ContentFixedWidth }

// Init implements ContentStrategy. It is a no-op.
func (FixedWidth) Init(Env) {}

// Apply implements ContentStrategy.
func (FixedWidth) Apply(env Env, design Size) (Layout, error) {
	l, err := fitWidth(ContentFixedWidth, design, env.viewportSize())
	if err != nil {
		return Layout{}, fmt.Errorf("fixed width: %w", err)
	}
	return l, nil
}

func (FixedWidth) contentStrategy() {}

// FixedSize behaves like FixedWidth against a target size bound at
// construction instead of the live viewport. Use it when the physical target
// is known in advance, such as a fixed native window.
type FixedSize struct {
	target Size
}

// NewFixedSize returns a FixedSize strategy for a width x height target.
func NewFixedSize(width, height float64) (*FixedSize, error) {
	target := Size{Width: width, Height: height}
	if !target.Valid() {
		return nil, fmt.Errorf("fixed size: %w: target %vx%v", ErrInvalidViewport, width, height)
	}
	return &FixedSize{target: target}, nil
}

// Target returns the size bound at construction.
func (f *FixedSize) Target() Size { return f.target }

// Kind implements ContentStrategy.
func (*FixedSize) Kind() ContentKind { return ContentFixedSize }

// Init implements ContentStrategy. It is a no-op.
func (*FixedSize) Init(Env) {}

// Apply implements ContentStrategy. The live viewport is ignored.
func (f *FixedSize) Apply(_ Env, design Size) (Layout, error) {
	l, err := fitWidth(ContentFixedSize, design, f.target)
	if err != nil {
		return Layout{}, fmt.Errorf("fixed size: %w", err)
	}
	return l, nil
}

func (*FixedSize) contentStrategy() {}

// fitWidth derives the scale from the target width and sizes the drawing
// buffer so that, once scaled, it covers the whole target.
func fitWidth(kind ContentKind, design, target Size) (Layout, error) {
	if !design.Valid() {
		return Layout{}, fmt.Errorf("%w: %vx%v", ErrInvalidDesignSize, design.Width, design.Height)
	}
	if !target.Valid() {
		return Layout{}, fmt.Errorf("%w: %vx%v", ErrInvalidViewport, target.Width, target.Height)
	}
	scale := target.Width / design.Width
	buffer := Size{Width: design.Width, Height: target.Height / scale}
	return uniformLayout(kind, scale, buffer, target, target), nil
}

// knownContent reports whether s is a usable built-in content strategy.
func knownContent(s ContentStrategy) bool {
	switch v := s.(type) {
	case FixedHeight, FixedWidth:
		return true
	case *FixedHeight:
		return v != nil
	case *FixedWidth:
		return v != nil
	case *FixedSize:
		return v != nil && v.target.Valid()
	default:
		return false
	}
}
