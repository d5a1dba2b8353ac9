package wgpu

import (
	"strings"
	"testing"
)

func TestDefaultShaderLoaderServesStableNames(t *testing.T) {
	loader := DefaultShaderLoader()
	for _, name := range ShaderNames {
		src, err := loader.LoadShader(name)
		if err != nil {
			t.Fatalf("LoadShader(%q) failed: %v", name, err)
		}
		if src == "" {
			t.Fatalf("LoadShader(%q) returned empty source", name)
		}
	}
}

func TestShaderLoaderUnknownName(t *testing.T) {
	if _, err := DefaultShaderLoader().LoadShader("tessellation_control"); err == nil {
		t.Fatal("expected error for unknown shader name")
	}
}

func TestFieldKernelSource(t *testing.T) {
	src, err := DefaultShaderLoader().LoadShader(fieldKernelName)
	if err != nil {
		t.Fatalf("LoadShader(%q) failed: %v", fieldKernelName, err)
	}
	for _, entry := range []string{"cs_field_init", "cs_field_classify", "cs_field_resolve"} {
		if !strings.Contains(src, "fn "+entry) {
			t.Errorf("field kernel missing entry point %q", entry)
		}
	}
}

// The display fragment stage must mirror the software pass: the
// Boundary highlight mode strokes without show_boundaries, and the
// stroke luminance is taken from the dimmed color rather than the raw
// field texel.
func TestRenderFragmentMatchesSoftwarePass(t *testing.T) {
	src, err := DefaultShaderLoader().LoadShader(ShaderRenderFragment)
	if err != nil {
		t.Fatalf("LoadShader(%q) failed: %v", ShaderRenderFragment, err)
	}
	if !strings.Contains(src, "display.show_boundaries == 1u || boundary_only") {
		t.Error("boundary strokes gated on show_boundaries alone")
	}
	if strings.Contains(src, "dot(texel.rgb") {
		t.Error("stroke luminance computed from the raw field texel")
	}
	if !strings.Contains(src, "dot(rgb") {
		t.Error("stroke luminance missing")
	}
}

func TestVertexShadersDeclareStages(t *testing.T) {
	loader := DefaultShaderLoader()
	for _, tc := range []struct{ name, stage string }{
		{ShaderComputeVertex, "@vertex"},
		{ShaderComputeFragment, "@fragment"},
		{ShaderRenderVertex, "@vertex"},
		{ShaderRenderFragment, "@fragment"},
		{ShaderWireframeVertex, "@vertex"},
		{ShaderWireframeFragment, "@fragment"},
	} {
		src, err := loader.LoadShader(tc.name)
		if err != nil {
			t.Fatalf("LoadShader(%q) failed: %v", tc.name, err)
		}
		if !strings.Contains(src, tc.stage) {
			t.Errorf("%s: missing %s entry point", tc.name, tc.stage)
		}
	}
}
