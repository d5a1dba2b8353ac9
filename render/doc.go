// Package render runs the two-pass color-field pipeline.
//
// Pass A rasterizes the generated geometry into the classified
// framebuffer: per pixel, the RGB bytes carry the color-space color at
// that point and the alpha byte carries the classifier result (palette
// index, NoMatch or OutsideColorSpace). Pass B derives the display image
// from that framebuffer: highlight treatment, boundary strokes and the
// wireframe overlay.
//
// The software pipeline in this package is authoritative. A GPU
// accelerator may be registered (see Accelerator); when it declines an
// operation with ErrFallbackToCPU the software path runs instead.
//
// The Orchestrator owns the framebuffer, geometry and palette snapshot,
// and exposes pixel readback through ColorAt only.
package render
