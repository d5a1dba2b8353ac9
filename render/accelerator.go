package render

import (
	"errors"
	"sync"

	"github.com/gogpu/gpucontext"
)

// ErrFallbackToCPU indicates the GPU accelerator cannot handle this pass.
// The caller should transparently fall back to the software pipeline.
var ErrFallbackToCPU = errors.New("colorfield: falling back to CPU rendering")

// AcceleratedPass describes pipeline stages for GPU capability checking.
type AcceleratedPass uint32

const (
	// AccelField is the classifying field pass (Pass A).
	AccelField AcceleratedPass = 1 << iota

	// AccelDisplay is the display derivation pass (Pass B).
	AccelDisplay

	// AccelWireframe is the blended wireframe overlay.
	AccelWireframe
)

// Accelerator is an optional GPU pipeline provider.
//
// When registered via RegisterAccelerator, the Orchestrator tries GPU
// rendering first for supported passes. If the accelerator returns
// ErrFallbackToCPU or any error, the pass transparently falls back to
// the software pipeline.
//
// Implementations should be provided by GPU backend packages. Users opt
// in via blank import:
//
//	import _ "github.com/gogpu/colorfield/backend/wgpu" // enables GPU rendering
type Accelerator interface {
	// Name returns the accelerator name (e.g., "wgpu").
	Name() string

	// Init initializes GPU resources. Called once during registration.
	Init() error

	// Close releases GPU resources.
	Close()

	// CanAccelerate reports whether the accelerator supports the given
	// pass. This is a fast check used to skip the GPU entirely.
	CanAccelerate(pass AcceleratedPass) bool

	// RenderField runs Pass A into the classified framebuffer.
	// Returns ErrFallbackToCPU if the pass cannot be GPU-rendered.
	RenderField(fb *Framebuffer, in FieldInputs) error

	// RenderDisplay runs Pass B into the bottom-origin RGBA8 buffer.
	// Returns ErrFallbackToCPU if the pass cannot be GPU-rendered.
	RenderDisplay(dst []uint8, fb *Framebuffer, in DisplayInputs) error
}

// DeviceProviderAware is an optional interface for accelerators that can
// share GPU resources with an external provider (e.g., a gogpu window).
// When SetDeviceProvider is called, the accelerator reuses the provided
// device instead of creating its own.
type DeviceProviderAware interface {
	SetDeviceProvider(provider gpucontext.DeviceProvider) error
}

var (
	accelMu sync.RWMutex
	accel   Accelerator
)

// RegisterAccelerator registers a GPU accelerator for optional GPU
// rendering.
//
// Only one accelerator can be registered; subsequent calls replace the
// previous one. The accelerator's Init() method is called during
// registration. If Init() fails, the accelerator is not registered and
// the error is returned.
func RegisterAccelerator(a Accelerator) error {
	if a == nil {
		return errors.New("colorfield: accelerator must not be nil")
	}
	if err := a.Init(); err != nil {
		return err
	}
	accelMu.Lock()
	old := accel
	accel = a
	accelMu.Unlock()
	if old != nil {
		old.Close()
	}
	return nil
}

// RegisteredAccelerator returns the current GPU accelerator, or nil.
func RegisteredAccelerator() Accelerator {
	accelMu.RLock()
	a := accel
	accelMu.RUnlock()
	return a
}

// SetAcceleratorDeviceProvider passes a device provider to the registered
// accelerator, enabling GPU device sharing. If no accelerator is
// registered or it does not support device sharing, this is a no-op.
func SetAcceleratorDeviceProvider(provider gpucontext.DeviceProvider) error {
	a := RegisteredAccelerator()
	if a == nil {
		return nil
	}
	if dpa, ok := a.(DeviceProviderAware); ok {
		return dpa.SetDeviceProvider(provider)
	}
	return nil
}
