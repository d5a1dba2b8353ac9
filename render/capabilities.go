package render

// RendererCapabilities describes the features of a render path.
type RendererCapabilities struct {
	// IsGPU indicates if this is a GPU-accelerated path.
	IsGPU bool

	// SupportsDepthSampling indicates if the wireframe overlay can
	// sample the field pass depth buffer for occlusion.
	SupportsDepthSampling bool

	// SupportsFenceSync indicates if pass completion is synchronized
	// with fences rather than being inherently synchronous.
	SupportsFenceSync bool

	// MaxTextureSize is the maximum framebuffer dimension (0 = unlimited).
	MaxTextureSize int
}

// CapableAccelerator is an optional interface for accelerators that can
// report their capabilities.
type CapableAccelerator interface {
	Accelerator

	// Capabilities returns the accelerator's capabilities.
	Capabilities() RendererCapabilities
}

// softwareCapabilities describes the built-in CPU pipeline.
var softwareCapabilities = RendererCapabilities{
	IsGPU:                 false,
	SupportsDepthSampling: true,
	SupportsFenceSync:     false,
	MaxTextureSize:        0,
}

// Capabilities reports the capabilities of the active render path. When
// a registered accelerator reports its own capabilities, those are
// returned; otherwise the software pipeline's.
func (o *Orchestrator) Capabilities() RendererCapabilities {
	if a := RegisteredAccelerator(); a != nil {
		if ca, ok := a.(CapableAccelerator); ok {
			return ca.Capabilities()
		}
	}
	return softwareCapabilities
}
