// Package wgpu registers a GPU accelerator for the color-field pipeline
// using wgpu/hal compute shaders.
//
// Import this package to enable GPU evaluation of the classifying field
// pass for 2D slices. The field is evaluated per pixel by a compute
// kernel; palette classification runs as one compute pass per palette
// entry (same pipeline, different uniform), which sidesteps naga's
// broken loop lowering to SPIR-V.
//
// If GPU initialization fails (no Vulkan available), registration is
// silently skipped and rendering falls back to the CPU pipeline. Volume
// renders and the display pass always run on the CPU.
//
// Usage:
//
//	import _ "github.com/gogpu/colorfield/backend/wgpu" // enable GPU rendering
package wgpu

import (
	"github.com/gogpu/colorfield"
	"github.com/gogpu/colorfield/render"
)

func init() {
	if err := render.RegisterAccelerator(New()); err != nil {
		colorfield.Logger().Warn("GPU accelerator not available", "err", err)
	}
}
