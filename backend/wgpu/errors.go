package wgpu

import "fmt"

// ShaderCompileError reports a WGSL compilation failure. Log carries the
// compiler output verbatim.
type ShaderCompileError struct {
	Name string // stable shader name
	Log  string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("wgpu: shader %q failed to compile: %s", e.Name, e.Log)
}

// ProgramLinkError reports a pipeline creation failure. Log carries the
// driver output verbatim.
type ProgramLinkError struct {
	Program string
	Log     string
}

func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("wgpu: program %q failed to link: %s", e.Program, e.Log)
}
