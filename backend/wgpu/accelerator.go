package wgpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/colorfield"
	"github.com/gogpu/colorfield/render"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// Accelerator runs the field pass on a GPU through the wgpu HAL.
//
// Only fullscreen 2D slices are dispatched: their pixel grid maps
// one-to-one onto a compute grid, so the whole pass reduces to three
// kernel stages and one readback. Volume frames rasterize arbitrary
// perspective geometry and fall back to the software pipeline.
type Accelerator struct {
	mu sync.Mutex

	loader ShaderLoader

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	pipe *fieldPipeline

	initErr        error
	externalDevice bool // true when using shared device (don't destroy on Close)
}

// Interface compliance checks.
var _ render.Accelerator = (*Accelerator)(nil)
var _ render.DeviceProviderAware = (*Accelerator)(nil)
var _ render.CapableAccelerator = (*Accelerator)(nil)

// New returns an accelerator serving the embedded shader sources.
func New() *Accelerator {
	return &Accelerator{loader: DefaultShaderLoader()}
}

// Name returns the accelerator identifier.
func (a *Accelerator) Name() string { return "wgpu" }

// Init registers the accelerator. GPU device initialization is deferred
// until the first frame or until SetDeviceProvider is called, so that a
// standalone Vulkan device is never created when the host supplies a
// shared one moments later.
func (a *Accelerator) Init() error {
	return nil
}

// Close releases all GPU resources held by the accelerator.
func (a *Accelerator) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pipe != nil {
		a.pipe.destroy()
		a.pipe = nil
	}
	if !a.externalDevice {
		if a.device != nil {
			a.device.Destroy()
			a.device = nil
		}
		if a.instance != nil {
			a.instance.Destroy()
			a.instance = nil
		}
	} else {
		// Don't destroy shared resources — we don't own them.
		a.device = nil
		a.instance = nil
	}
	a.queue = nil
	a.initErr = nil
	a.externalDevice = false
}

// CanAccelerate reports whether the accelerator supports the given pass.
// Only the field pass dispatches to the GPU; the display derivation and
// wireframe overlay are cheap enough to stay on the CPU.
func (a *Accelerator) CanAccelerate(pass render.AcceleratedPass) bool {
	return pass&render.AccelField != 0
}

// Capabilities reports the GPU render path. After a sticky init failure
// the software capabilities are reported instead, since every frame
// will fall back to the CPU pipeline.
func (a *Accelerator) Capabilities() render.RendererCapabilities {
	a.mu.Lock()
	failed := a.initErr != nil
	a.mu.Unlock()
	if failed {
		return render.RendererCapabilities{SupportsDepthSampling: true}
	}
	return render.RendererCapabilities{
		IsGPU:                 true,
		SupportsDepthSampling: true,
		SupportsFenceSync:     true,
		MaxTextureSize:        int(gputypes.DefaultLimits().MaxTextureDimension2D),
	}
}

// SetDeviceProvider switches the accelerator to use a shared GPU device
// from an external provider (e.g., a gogpu window). The provider must
// additionally expose HalDevice() any and HalQueue() any returning
// hal.Device and hal.Queue.
func (a *Accelerator) SetDeviceProvider(provider gpucontext.DeviceProvider) error {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return fmt.Errorf("wgpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return fmt.Errorf("wgpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return fmt.Errorf("wgpu: provider HalQueue is not hal.Queue")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Destroy own resources if we created them.
	if a.pipe != nil {
		a.pipe.destroy()
		a.pipe = nil
	}
	if !a.externalDevice && a.device != nil {
		a.device.Destroy()
	}
	if a.instance != nil {
		a.instance.Destroy()
		a.instance = nil
	}

	a.device = device
	a.queue = queue
	a.externalDevice = true
	a.initErr = nil

	pipe, err := newFieldPipeline(device, queue, a.loader)
	if err != nil {
		a.initErr = err
		colorfield.Logger().Warn("wgpu: pipeline init failed, GPU unavailable", "error", err)
		return nil
	}
	a.pipe = pipe
	colorfield.Logger().Debug("wgpu: switched to shared GPU device")
	return nil
}

// RenderField runs Pass A on the GPU when the frame is a fullscreen 2D
// slice, and returns render.ErrFallbackToCPU otherwise.
func (a *Accelerator) RenderField(fb *render.Framebuffer, in render.FieldInputs) error {
	plan, ok := planSliceFrame(fb.Width(), fb.Height(), in)
	if !ok {
		return render.ErrFallbackToCPU
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.ensureLocked(); err != nil {
		return render.ErrFallbackToCPU
	}

	pixels, err := a.pipe.run(plan.params, in.Palette)
	if err != nil {
		return fmt.Errorf("wgpu: field dispatch: %w", err)
	}

	// The slice face sits at one view depth, so a cleared depth plane
	// plus the packed pixel bytes reproduces the software pass exactly.
	fb.Clear(0, 0, 0, colorfield.OutsideColorSpace, plan.depth)
	copy(fb.Pix(), pixels)
	return nil
}

// RenderDisplay always falls back: Pass B is a per-pixel table walk the
// CPU finishes faster than a dispatch round-trip.
func (a *Accelerator) RenderDisplay(_ []uint8, _ *render.Framebuffer, _ render.DisplayInputs) error {
	return render.ErrFallbackToCPU
}

// ensureLocked builds the device and pipeline on first use. A failed
// init is sticky: frames keep falling back without retrying the driver.
func (a *Accelerator) ensureLocked() error {
	if a.initErr != nil {
		return a.initErr
	}
	if a.pipe != nil {
		return nil
	}
	if a.device == nil {
		if err := a.initGPULocked(); err != nil {
			a.initErr = err
			colorfield.Logger().Warn("wgpu: GPU init failed, using CPU rendering", "error", err)
			return err
		}
	}
	pipe, err := newFieldPipeline(a.device, a.queue, a.loader)
	if err != nil {
		a.initErr = err
		colorfield.Logger().Warn("wgpu: pipeline init failed, using CPU rendering", "error", err)
		return err
	}
	a.pipe = pipe
	return nil
}

// initGPULocked creates a standalone Vulkan device for compute-only
// use. This is the fallback path when no external device is provided
// via SetDeviceProvider.
func (a *Accelerator) initGPULocked() error {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("%w: vulkan backend not available", render.ErrUnsupportedGPU)
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	a.instance = instance

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return fmt.Errorf("%w: no GPU adapters found", render.ErrUnsupportedGPU)
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return fmt.Errorf("open device: %w", err)
	}
	a.device = openDev.Device
	a.queue = openDev.Queue

	colorfield.Logger().Info("wgpu: GPU initialized (standalone)", "adapter", selected.Info.Name)
	return nil
}
