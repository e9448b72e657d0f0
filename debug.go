package stagefit

import "log/slog"

// debugLog logs a committed layout. Only called when the delegate is in
// debug mode.
func (d *Delegate) debugLog(l Layout) {
	d.log().Debug("layout committed",
		slog.String("policy", d.policy.String()),
		sizeGroup("design", d.design),
		layoutGroup(l),
	)
}

func sizeGroup(key string, s Size) slog.Attr {
	return slog.Group(key,
		slog.Float64("w", s.Width),
		slog.Float64("h", s.Height),
	)
}

// layoutGroup groups a layout's fields for structured logging.
func layoutGroup(l Layout) slog.Attr {
	return slog.Group("layout",
		slog.String("strategy", l.Strategy.String()),
		slog.Float64("scaleX", l.ScaleX),
		slog.Float64("scaleY", l.ScaleY),
		sizeGroup("buffer", l.BufferSize),
		sizeGroup("display", l.DisplaySize),
		sizeGroup("viewport", l.Viewport),
	)
}
