package wgpu

import (
	"embed"
	"fmt"

	"github.com/gogpu/naga"
)

// Stable shader names resolvable through a ShaderLoader. The vertex and
// fragment pairs describe the field pass ("compute"), the display pass
// ("render") and the wireframe overlay.
const (
	ShaderComputeVertex     = "compute_vertex"
	ShaderComputeFragment   = "compute_fragment"
	ShaderRenderVertex      = "render_vertex"
	ShaderRenderFragment    = "render_fragment"
	ShaderWireframeVertex   = "wireframe_vertex"
	ShaderWireframeFragment = "wireframe_fragment"
)

// ShaderNames lists the stable names in compilation order.
var ShaderNames = []string{
	ShaderComputeVertex,
	ShaderComputeFragment,
	ShaderRenderVertex,
	ShaderRenderFragment,
	ShaderWireframeVertex,
	ShaderWireframeFragment,
}

//go:embed shaders/*.wgsl
var shaderFS embed.FS

// fieldKernelName is the internal compute reformulation of the field
// pass, not part of the stable loader names.
const fieldKernelName = "field_compute"

// ShaderLoader resolves shader sources by stable name. The default
// loader serves the embedded sources; hosts may substitute their own to
// override individual shaders.
type ShaderLoader interface {
	LoadShader(name string) (string, error)
}

// embeddedLoader serves the sources embedded in this package.
type embeddedLoader struct{}

func (embeddedLoader) LoadShader(name string) (string, error) {
	src, err := shaderFS.ReadFile("shaders/" + name + ".wgsl")
	if err != nil {
		return "", fmt.Errorf("wgpu: unknown shader %q: %w", name, err)
	}
	return string(src), nil
}

// DefaultShaderLoader returns the loader serving the embedded sources.
func DefaultShaderLoader() ShaderLoader { return embeddedLoader{} }

// compileSPIRV compiles WGSL to SPIR-V words. Compilation failures carry
// the compiler log as a ShaderCompileError.
func compileSPIRV(name, source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, &ShaderCompileError{Name: name, Log: err.Error()}
	}
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
