// Package render paints placed compositions onto 2-D surfaces.
//
// # Overview
//
// Rendering is split in two. [Surface] is a small canvas-style drawing
// contract: transforms, colors, global alpha, paths, fill and stroke. [Paint]
// walks a [placement.Composition] and issues surface calls in a fixed order:
//
//  1. A linear gradient over the whole surface from palette[0] at (0,0) to
//     palette[1] at (w,h).
//  2. For each layer, each placed shape: save state, translate to the shape
//     center, rotate, set colors and a stroke width of 2x the scale factor,
//     trace the outline, fill it when the kind is fillable, stroke it,
//     restore state.
//  3. For each layer, after its shapes, the decorative lines in the last
//     palette color at the configured line opacity.
//
// With [WithMotif], every placed shape becomes a stack of nested pattern
// instances that share its center and colors.
//
// # Surfaces
//
// [Canvas] rasterizes with github.com/fogleman/gg and encodes PNG.
// [Recorder] keeps the call stream and backs tests and plan inspection.
//
//	c := render.NewCanvas(comp.Width, comp.Height)
//	if err := render.Paint(ctx, c, comp, opts...); err != nil {
//	    return err
//	}
//	err := c.EncodePNG(w)
//
// [placement.Composition]: github.com/matzehuels/hashart/pkg/placement.Composition
package render
