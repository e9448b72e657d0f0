// Package stagefit adapts a fixed design resolution to a variable physical
// viewport for 2D games built on [Ebitengine].
//
// Content is authored against a design size. A [ResolutionPolicy] pairs a
// [ContainerStrategy], which lays out the window or frame, with a
// [ContentStrategy], which picks a reference dimension and derives one
// uniform scale factor. The [Delegate] owns the design size and the
// resolved scale that renderers read every frame.
//
// # Quick start
//
// The simplest way to get started is [NewGame] and [Run]:
//
//	game, err := stagefit.NewGame(scene, stagefit.Size{Width: 480, Height: 320},
//		stagefit.PresetFixedHeight)
//	if err != nil {
//		log.Fatal(err)
//	}
//	stagefit.Run(game, stagefit.RunConfig{Title: "My Game", Resizable: true})
//
// For hosts that manage their own surface, build a delegate over your own
// [Surface], [Container] and [Viewport] and call [Delegate.Reapply] on every
// resize:
//
//	d := stagefit.New(surface, container, viewport)
//	if err := d.SetDesignSize(480, 320, stagefit.PresetFixedWidth); err != nil {
//		// ...
//	}
//	sx, sy := d.Scale()
//
// # Policies
//
// [PresetFixedHeight] fills the viewport height and lets the width follow
// the design aspect ratio. [PresetFixedWidth] fills the viewport width and
// extends the drawing buffer vertically to cover the viewport. [FixedSize]
// does the same against a target size known in advance. Scale is always
// uniform, so art assets are never distorted.
//
// # Process-wide delegate
//
// [Initialize] installs a delegate that [Default] returns; [Shutdown]
// discards it. Tests construct independent delegates with [New].
//
// [Ebitengine]: https://ebitengine.org
package stagefit
