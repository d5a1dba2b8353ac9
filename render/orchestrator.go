package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/chewxy/math32"
	"github.com/gogpu/colorfield"
	"github.com/gogpu/colorfield/shape"
	"github.com/gogpu/gpucontext"
)

// GPU-facing orchestrator errors.
var (
	// ErrUnsupportedGPU is returned when the GPU context cannot be
	// obtained or lacks required features (depth-texture sampling,
	// fence sync). The orchestrator then cannot be constructed.
	ErrUnsupportedGPU = errors.New("colorfield: GPU context unsupported")

	// ErrFramebufferIncomplete is returned when the offscreen target
	// fails its completeness check.
	ErrFramebufferIncomplete = errors.New("colorfield: framebuffer incomplete")
)

// Camera constants shared by both view modes.
const (
	cameraFOV      = 45 * math32.Pi / 180
	cameraDistance = 2.0
	cameraNear     = 0.1
	cameraFar      = 10.0
)

// Config configures an Orchestrator. Width and Height are required; the
// remaining fields default sensibly.
type Config struct {
	// Width and Height are the canvas dimensions in pixels.
	Width  int
	Height int

	// Scheduler is the frame-coalescing hook. Nil means immediate
	// execution (every Render runs synchronously).
	Scheduler FrameScheduler

	// DeviceProvider optionally shares an existing GPU device with the
	// registered accelerator.
	DeviceProvider gpucontext.DeviceProvider
}

// Orchestrator owns the render pipeline: the classified framebuffer, the
// display buffer, the geometry and the palette snapshot. It is safe for
// concurrent use; only one render runs at a time.
type Orchestrator struct {
	width     int
	height    int
	scheduler FrameScheduler

	mu      sync.Mutex
	fb      *Framebuffer
	display []uint8
	palette colorfield.Palette // snapshot of the last rendered request

	pending *colorfield.RenderRequest
	waiters []chan struct{}
}

// New creates an Orchestrator for a canvas of the given dimensions. The
// classified framebuffer starts fully outside the color space, so
// ColorAt before the first render returns (nil, nil) everywhere.
func New(cfg Config) (*Orchestrator, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("colorfield: invalid canvas size %dx%d", cfg.Width, cfg.Height)
	}
	sched := cfg.Scheduler
	if sched == nil {
		sched = immediateScheduler{}
	}
	if cfg.DeviceProvider != nil {
		if err := SetAcceleratorDeviceProvider(cfg.DeviceProvider); err != nil {
			return nil, err
		}
	}

	o := &Orchestrator{
		width:     cfg.Width,
		height:    cfg.Height,
		scheduler: sched,
		fb:        NewFramebuffer(cfg.Width, cfg.Height),
		display:   make([]uint8, cfg.Width*cfg.Height*4),
	}
	o.fb.Clear(0, 0, 0, colorfield.OutsideColorSpace, 1)
	return o, nil
}

// Render validates the request and enqueues it through the frame
// scheduler. Requests landing within the same frame are coalesced: only
// the last one is executed, earlier ones are silently dropped.
func (o *Orchestrator) Render(req colorfield.RenderRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	o.mu.Lock()
	first := o.pending == nil
	o.pending = &req
	o.mu.Unlock()

	if first {
		o.scheduler.Schedule(o.renderPending)
	}
	return nil
}

// RenderNow validates the request and renders it synchronously,
// bypassing the frame scheduler. Callers whose arguments matter for
// downstream readback (palette mutations) use this entry point so a
// later coalesced request cannot overwrite them.
func (o *Orchestrator) RenderNow(req colorfield.RenderRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	// A newer request cancels any pending coalesced one; letting the
	// older request run later would overwrite this frame.
	o.pending = nil
	o.renderLocked(&req)
	o.notifyLocked()
	return nil
}

// renderPending executes the latest coalesced request.
func (o *Orchestrator) renderPending() {
	o.mu.Lock()
	defer o.mu.Unlock()
	req := o.pending
	o.pending = nil
	if req != nil {
		o.renderLocked(req)
	}
	o.notifyLocked()
}

// WaitForRender blocks until every request dispatched before the call
// has been rendered. After it returns, ColorAt reflects the latest
// request and no earlier one.
func (o *Orchestrator) WaitForRender(ctx context.Context) error {
	o.mu.Lock()
	if o.pending == nil {
		o.mu.Unlock()
		return nil
	}
	ch := make(chan struct{})
	o.waiters = append(o.waiters, ch)
	o.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (o *Orchestrator) notifyLocked() {
	if o.pending != nil {
		return
	}
	for _, ch := range o.waiters {
		close(ch)
	}
	o.waiters = nil
}

// ColorAt reads one pixel from the classified framebuffer. The y
// coordinate is top-origin as the caller sees the canvas; the readback
// flips it to the framebuffer's bottom-origin rows. It returns
// (nil, nil) outside the canvas or outside the color space, and a nil
// NamedColor when the pixel has no palette match.
func (o *Orchestrator) ColorAt(x, y int) (*colorfield.RGB, *colorfield.NamedColor) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if x < 0 || x >= o.width || y < 0 || y >= o.height {
		return nil, nil
	}
	r, g, b, idx := o.fb.At(x, o.height-1-y)
	if idx == colorfield.OutsideColorSpace {
		return nil, nil
	}
	rgb := &colorfield.RGB{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
	if int(idx) < len(o.palette) {
		named := o.palette[idx]
		return rgb, &named
	}
	return rgb, nil
}

// Image returns the display buffer as a top-origin image for host
// presentation or inspection.
func (o *Orchestrator) Image() *image.RGBA {
	o.mu.Lock()
	defer o.mu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, o.width, o.height))
	for y := 0; y < o.height; y++ {
		src := (o.height - 1 - y) * o.width * 4
		dst := y * img.Stride
		copy(img.Pix[dst:dst+o.width*4], o.display[src:src+o.width*4])
	}
	return img
}

// renderLocked runs the full frame: palette snapshot, geometry, Pass A,
// Pass B and the wireframe overlay. Callers hold o.mu.
func (o *Orchestrator) renderLocked(req *colorfield.RenderRequest) {
	o.palette = req.Palette.Clone()
	highlight := req.ResolveHighlight(o.palette)

	frame, ok := o.buildFrame(req, highlight)
	if !ok {
		// Nothing renderable (no slice axis). Keep previous contents.
		return
	}

	o.runField(frame.field)
	o.runDisplay(frame.display)
	if req.Mode == colorfield.Volume3D {
		renderWireframe(o.display, o.fb, frame.field.MVP, frame.wireframe)
	}
}

// frame bundles everything one render produces before rasterization.
type frame struct {
	field     FieldInputs
	display   DisplayInputs
	wireframe shape.LineMesh
}

// buildFrame generates geometry and uniforms for the request.
func (o *Orchestrator) buildFrame(req *colorfield.RenderRequest, highlight int) (frame, bool) {
	polar := req.EffectivePolar()
	angular, radial := -1, -1

	var mesh shape.Mesh
	var wire shape.LineMesh
	var mvp colorfield.Mat4

	aspect := float32(o.width) / float32(o.height)
	proj := colorfield.Perspective(cameraFOV, aspect, cameraNear, cameraFar)
	view := colorfield.Translation(0, 0, -cameraDistance)

	slices := req.NormalizedSlices()

	switch req.Mode {
	case colorfield.Slice2D:
		current, ok := req.CurrentAxis()
		if !ok {
			return frame{}, false
		}
		fixed := req.Space.AxisIndex(current.Key)
		value := float32(slices[fixed][0])

		// The quad fills the viewport exactly at the camera distance.
		sizeY := 2 * math32.Tan(cameraFOV/2) * cameraDistance
		mesh = shape.SliceFace(fixed, value, sizeY*aspect, sizeY)
		mvp = proj.Mul(view)

		if polar {
			ax, _ := req.Space.PolarAxis(current)
			angular = req.Space.AxisIndex(ax.Key)
			// The radial role goes to the remaining free axis.
			for i := 0; i < 3; i++ {
				if i != fixed && i != angular {
					radial = i
				}
			}
		}

	case colorfield.Volume3D:
		rotation := req.Rotation
		if rotation == (colorfield.Mat4{}) {
			rotation = colorfield.Identity4()
		}
		mvp = proj.Mul(view).Mul(rotation)

		if polar {
			a, r, h, _ := req.Space.PolarRoles()
			angular, radial = a, r
			axes := shape.CylinderAxes{Angular: a, Radial: r, Height: h}
			rng := shape.CylinderRanges{
				ThetaLo: float32(slices[a][0]), ThetaHi: float32(slices[a][1]),
				RLo: float32(slices[r][0]), RHi: float32(slices[r][1]),
				HLo: float32(slices[h][0]), HHi: float32(slices[h][1]),
			}
			mesh = shape.CylinderSurface(axes, rng, shape.CubeSize3D)
			wire = shape.CylinderWireframe(axes, rng, shape.CubeSize3D)
		} else {
			lo := colorfield.V3(float32(slices[0][0]), float32(slices[1][0]), float32(slices[2][0]))
			hi := colorfield.V3(float32(slices[0][1]), float32(slices[1][1]), float32(slices[2][1]))
			mesh = shape.CubeSurface(lo, hi, shape.CubeSize3D)
			wire = shape.CubeWireframe(lo, hi, shape.CubeSize3D)
		}

		// The interior becomes visible when fragments are culled, so
		// slice the cube with camera-aligned planes for the shader to
		// shade.
		hideOther := req.HighlightMode == colorfield.HideOther && highlight >= 0
		if !req.ShowUnmatched || hideOther {
			mesh.Append(shape.CrossSections(rotation, shape.CubeSize3D))
		}
	}

	f := frame{
		field: FieldInputs{
			Mesh:           mesh,
			MVP:            mvp,
			Space:          req.Space,
			PolarAngular:   angular,
			PolarRadial:    radial,
			Slices:         slices,
			Palette:        o.palette,
			Metric:         req.Metric,
			Threshold:      req.Threshold,
			ShowUnmatched:  req.ShowUnmatched,
			HideOther:      req.HighlightMode == colorfield.HideOther,
			HighlightIndex: highlight,
		},
		display: DisplayInputs{
			ShowBoundaries: req.ShowBoundaries,
			HighlightMode:  req.HighlightMode,
			HighlightIndex: highlight,
			ShowUnmatched:  req.ShowUnmatched,
		},
		wireframe: wire,
	}
	return f, true
}

// runField runs Pass A, trying the registered accelerator first.
func (o *Orchestrator) runField(in FieldInputs) {
	if a := RegisteredAccelerator(); a != nil && a.CanAccelerate(AccelField) {
		err := a.RenderField(o.fb, in)
		if err == nil {
			return
		}
		if !errors.Is(err, ErrFallbackToCPU) {
			colorfield.Logger().Warn("colorfield: GPU field pass failed, falling back to CPU",
				"accelerator", a.Name(), "err", err)
		}
	}
	renderField(o.fb, in)
}

// runDisplay runs Pass B, trying the registered accelerator first.
func (o *Orchestrator) runDisplay(in DisplayInputs) {
	if a := RegisteredAccelerator(); a != nil && a.CanAccelerate(AccelDisplay) {
		err := a.RenderDisplay(o.display, o.fb, in)
		if err == nil {
			return
		}
		if !errors.Is(err, ErrFallbackToCPU) {
			colorfield.Logger().Warn("colorfield: GPU display pass failed, falling back to CPU",
				"accelerator", a.Name(), "err", err)
		}
	}
	renderDisplay(o.display, o.fb, in)
}
