// Package colorfield renders slices and volumes of the RGB, HSV and HSL
// color spaces and classifies every rendered pixel against a named palette.
//
// # Overview
//
// colorfield is the core of an interactive color-space visualizer. It is a
// two-pass pipeline:
//
//  1. The field pass rasterizes generated geometry (a 2D slice face, a
//     sliced cube, or a sliced cylinder) into an offscreen framebuffer.
//     Each pixel carries the sRGB color of the color-space point it shows,
//     and the alpha byte carries the index of the nearest palette entry.
//  2. The display pass turns that classified framebuffer into the visible
//     image: region boundaries, highlight effects and culling.
//
// Because the framebuffer keeps both color and palette index per pixel, the
// host UI can translate any canvas coordinate back into the original color
// and its palette match with a single readback (the pixel oracle).
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/colorfield"
//	    "github.com/gogpu/colorfield/render"
//	)
//
//	orc, err := render.New(render.Config{Width: 512, Height: 512})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	req := colorfield.RenderRequest{
//	    Space:  colorfield.SpaceHSV,
//	    Mode:   colorfield.Slice2D,
//	    Slices: colorfield.AxisSlices{"v": {Lo: 100, Hi: 100}},
//	    // ...
//	}
//	orc.RenderNow(req)
//	rgb, named := orc.ColorAt(256, 256)
//
// # Architecture
//
// The library is organized into:
//   - Root package: color algebra, color-space model, palette, classifier,
//     render requests, and the small vector/matrix math they share.
//   - shape/: vertex and index buffer generation for faces, cubes,
//     cylinders, wireframes and camera-aligned cross-sections.
//   - render/: the software pipeline, the classified framebuffer, the
//     render orchestrator and the pixel oracle.
//   - backend/wgpu/: GPU acceleration over the gogpu/wgpu HAL, with the
//     WGSL shader sources for both passes.
//
// The software pipeline is authoritative: the GPU backend accelerates it
// where the hardware supports the required features and falls back
// transparently otherwise.
//
// # Coordinate Conventions
//
// Color coordinates are normalized to [0, 1] per axis. The classified
// framebuffer uses the GPU bottom-origin convention; the pixel oracle
// accepts top-origin canvas coordinates and flips internally.
package colorfield
