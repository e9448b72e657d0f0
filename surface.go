package stagefit

import "math"

// Surface is the primary drawing surface. The drawing buffer is the pixel
// grid content is rendered into; the display size is the box it is stretched
// to on screen.
type Surface interface {
	BufferSize() Size
	SetBufferSize(size Size)
	SetDisplaySize(size Size)
}

// Container is the element enclosing the drawing surface, typically a window
// or a frame.
type Container interface {
	BoxModel() BoxModel
	SetBoxModel(box BoxModel)
	SetDisplaySize(size Size)
}

// Viewport reports the physical area available at runtime. It is queried on
// every apply pass and never cached.
type Viewport interface {
	ViewportSize() Size
}

// ViewportFunc adapts a function to the Viewport interface.
type ViewportFunc func() Size

// ViewportSize calls f.
func (f ViewportFunc) ViewportSize() Size { return f() }

// FixedViewport is a Viewport that always reports the same size.
type FixedViewport Size

// ViewportSize returns the fixed size.
func (v FixedViewport) ViewportSize() Size { return Size(v) }

// Env bundles the host collaborators strategies read from during Init and
// Apply. Any field may be nil; strategies skip what they cannot reach.
type Env struct {
	Surface   Surface
	Container Container
	Viewport  Viewport
}

// viewportSize returns the current viewport, or the zero Size if none is set.
func (e Env) viewportSize() Size {
	if e.Viewport == nil {
		return Size{}
	}
	return e.Viewport.ViewportSize()
}

// Edges holds one value per side of a box. NaN means the side is unset.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// UnsetEdges returns Edges with every side unset.
func UnsetEdges() Edges {
	nan := math.NaN()
	return Edges{Top: nan, Right: nan, Bottom: nan, Left: nan}
}

// normalized replaces unset or negative sides with zero.
func (e Edges) normalized() Edges {
	return Edges{
		Top:    zeroIfUnset(e.Top),
		Right:  zeroIfUnset(e.Right),
		Bottom: zeroIfUnset(e.Bottom),
		Left:   zeroIfUnset(e.Left),
	}
}

func zeroIfUnset(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// BoxModel describes the spacing around a container.
type BoxModel struct {
	Padding Edges
	Border  Edges
	Margin  Edges
}

// UnsetBoxModel returns a BoxModel with every edge unset.
func UnsetBoxModel() BoxModel {
	return BoxModel{Padding: UnsetEdges(), Border: UnsetEdges(), Margin: UnsetEdges()}
}

// Normalized returns a copy with unset or negative edges replaced by zero.
// Explicit non-negative edges are kept.
func (b BoxModel) Normalized() BoxModel {
	return BoxModel{
		Padding: b.Padding.normalized(),
		Border:  b.Border.normalized(),
		Margin:  b.Margin.normalized(),
	}
}

// MemorySurface is a headless Surface and Container. It records every size
// written to it, which makes it suitable for tests, scripts, and hosts that
// apply the geometry themselves.
type MemorySurface struct {
	Buffer           Size
	Display          Size
	ContainerDisplay Size
	Box              BoxModel
}

// NewMemorySurface creates a MemorySurface whose drawing buffer starts at
// buffer and whose container box model is entirely unset.
func NewMemorySurface(buffer Size) *MemorySurface {
	return &MemorySurface{
		Buffer:  buffer,
		Display: buffer,
		Box:     UnsetBoxModel(),
	}
}

// BufferSize implements Surface.
func (m *MemorySurface) BufferSize() Size { return m.Buffer }

// SetBufferSize implements Surface.
func (m *MemorySurface) SetBufferSize(size Size) { m.Buffer = size }

// SetDisplaySize implements Surface.
func (m *MemorySurface) SetDisplaySize(size Size) { m.Display = size }

// Container returns a Container view of m. MemorySurface cannot implement
// both interfaces directly because each declares SetDisplaySize.
func (m *MemorySurface) Container() Container { return memoryContainer{m} }

type memoryContainer struct{ m *MemorySurface }

func (c memoryContainer) BoxModel() BoxModel       { return c.m.Box }
func (c memoryContainer) SetBoxModel(box BoxModel) { c.m.Box = box }
func (c memoryContainer) SetDisplaySize(size Size) { c.m.ContainerDisplay = size }
