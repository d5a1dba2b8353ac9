package wgpu

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gogpu/colorfield"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// fieldPipeline holds the compiled field kernel and its three stage
// pipelines, which share one bind group layout:
//
//	binding 0  uniform   FrameParams
//	binding 1  storage   palette colors (read-only)
//	binding 2  storage   per-pixel color + best distance
//	binding 3  storage   per-pixel best palette index
//	binding 4  storage   packed output pixels
type fieldPipeline struct {
	device hal.Device
	queue  hal.Queue

	module     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout

	initPipe     hal.ComputePipeline
	classifyPipe hal.ComputePipeline
	resolvePipe  hal.ComputePipeline
}

func newFieldPipeline(device hal.Device, queue hal.Queue, loader ShaderLoader) (*fieldPipeline, error) {
	source, err := loader.LoadShader(fieldKernelName)
	if err != nil {
		return nil, err
	}
	words, err := compileSPIRV(fieldKernelName, source)
	if err != nil {
		return nil, err
	}

	p := &fieldPipeline{device: device, queue: queue}
	p.module, err = device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "field_compute",
		Source: hal.ShaderSource{SPIRV: words},
	})
	if err != nil {
		return nil, &ProgramLinkError{Program: fieldKernelName, Log: err.Error()}
	}

	p.bindLayout, err = device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "field_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{Binding: 0, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform}},
			{Binding: 1, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage}},
			{Binding: 2, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}},
			{Binding: 3, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}},
			{Binding: 4, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}},
		},
	})
	if err != nil {
		p.destroy()
		return nil, &ProgramLinkError{Program: fieldKernelName, Log: err.Error()}
	}

	p.pipeLayout, err = device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "field_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.bindLayout},
	})
	if err != nil {
		p.destroy()
		return nil, &ProgramLinkError{Program: fieldKernelName, Log: err.Error()}
	}

	stages := []struct {
		entry string
		dst   *hal.ComputePipeline
	}{
		{"cs_field_init", &p.initPipe},
		{"cs_field_classify", &p.classifyPipe},
		{"cs_field_resolve", &p.resolvePipe},
	}
	for _, st := range stages {
		pipe, err := device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
			Label:   st.entry,
			Layout:  p.pipeLayout,
			Compute: hal.ComputeState{Module: p.module, EntryPoint: st.entry},
		})
		if err != nil {
			p.destroy()
			return nil, &ProgramLinkError{Program: st.entry, Log: err.Error()}
		}
		*st.dst = pipe
	}
	return p, nil
}

func (p *fieldPipeline) destroy() {
	if p.device == nil {
		return
	}
	if p.resolvePipe != nil {
		p.device.DestroyComputePipeline(p.resolvePipe)
		p.resolvePipe = nil
	}
	if p.classifyPipe != nil {
		p.device.DestroyComputePipeline(p.classifyPipe)
		p.classifyPipe = nil
	}
	if p.initPipe != nil {
		p.device.DestroyComputePipeline(p.initPipe)
		p.initPipe = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.bindLayout != nil {
		p.device.DestroyBindGroupLayout(p.bindLayout)
		p.bindLayout = nil
	}
	if p.module != nil {
		p.device.DestroyShaderModule(p.module)
		p.module = nil
	}
}

// packPalette serializes the palette as vec4<f32> entries. The buffer is
// never empty so the storage binding stays valid with an empty palette.
func packPalette(palette colorfield.Palette) []byte {
	n := len(palette)
	if n == 0 {
		n = 1
	}
	out := make([]byte, n*16)
	le := binary.LittleEndian
	for i, entry := range palette {
		le.PutUint32(out[i*16:], math.Float32bits(float32(entry.RGB.R)))
		le.PutUint32(out[i*16+4:], math.Float32bits(float32(entry.RGB.G)))
		le.PutUint32(out[i*16+8:], math.Float32bits(float32(entry.RGB.B)))
		le.PutUint32(out[i*16+12:], math.Float32bits(1))
	}
	return out
}

// run executes the field kernel: one init pass, one classify pass per
// palette entry, one resolve pass, then a staging readback. The classify
// loop is unrolled into passes because naga lowers WGSL loops to SPIR-V
// incorrectly; implicit storage barriers between passes keep the argmin
// updates ordered. One submit and one fence wait cover the whole frame.
//
// The returned bytes are the packed bottom-origin (r, g, b, index)
// pixels, ready to copy into the framebuffer.
func (p *fieldPipeline) run(params frameParams, palette colorfield.Palette) ([]byte, error) {
	w, h := params.width, params.height
	pixelCount := uint64(w) * uint64(h)
	outSize := pixelCount * 4
	paletteBytes := packPalette(palette)

	paletteBuf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "field_palette", Size: uint64(len(paletteBytes)),
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create palette buffer: %w", err)
	}
	defer p.device.DestroyBuffer(paletteBuf)

	fieldBuf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "field_scratch", Size: pixelCount * 16,
		Usage: gputypes.BufferUsageStorage,
	})
	if err != nil {
		return nil, fmt.Errorf("create field buffer: %w", err)
	}
	defer p.device.DestroyBuffer(fieldBuf)

	indexBuf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "field_index", Size: pixelCount * 4,
		Usage: gputypes.BufferUsageStorage,
	})
	if err != nil {
		return nil, fmt.Errorf("create index buffer: %w", err)
	}
	defer p.device.DestroyBuffer(indexBuf)

	outBuf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "field_pixels", Size: outSize,
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopySrc,
	})
	if err != nil {
		return nil, fmt.Errorf("create output buffer: %w", err)
	}
	defer p.device.DestroyBuffer(outBuf)

	stagingBuf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "field_staging", Size: outSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create staging buffer: %w", err)
	}
	defer p.device.DestroyBuffer(stagingBuf)

	p.queue.WriteBuffer(paletteBuf, 0, paletteBytes)

	// One uniform buffer + bind group per classify pass; uniform 0 also
	// serves the init and resolve passes.
	n := len(palette)
	if n == 0 {
		n = 1
	}
	uniformBufs := make([]hal.Buffer, 0, n)
	bindGroups := make([]hal.BindGroup, 0, n)
	defer func() {
		for _, bg := range bindGroups {
			p.device.DestroyBindGroup(bg)
		}
		for _, ub := range uniformBufs {
			p.device.DestroyBuffer(ub)
		}
	}()
	for i := 0; i < n; i++ {
		entryParams := params
		entryParams.entryIndex = uint32(i)

		ub, err := p.device.CreateBuffer(&hal.BufferDescriptor{
			Label: "field_params", Size: frameParamsSize,
			Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return nil, fmt.Errorf("create uniform buffer %d: %w", i, err)
		}
		uniformBufs = append(uniformBufs, ub)
		p.queue.WriteBuffer(ub, 0, entryParams.bytes())

		bg, err := p.device.CreateBindGroup(&hal.BindGroupDescriptor{
			Label: "field_bind", Layout: p.bindLayout,
			Entries: []gputypes.BindGroupEntry{
				{Binding: 0, Resource: gputypes.BufferBinding{Buffer: ub.NativeHandle(), Offset: 0, Size: frameParamsSize}},
				{Binding: 1, Resource: gputypes.BufferBinding{Buffer: paletteBuf.NativeHandle(), Offset: 0, Size: uint64(len(paletteBytes))}},
				{Binding: 2, Resource: gputypes.BufferBinding{Buffer: fieldBuf.NativeHandle(), Offset: 0, Size: pixelCount * 16}},
				{Binding: 3, Resource: gputypes.BufferBinding{Buffer: indexBuf.NativeHandle(), Offset: 0, Size: pixelCount * 4}},
				{Binding: 4, Resource: gputypes.BufferBinding{Buffer: outBuf.NativeHandle(), Offset: 0, Size: outSize}},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("create bind group %d: %w", i, err)
		}
		bindGroups = append(bindGroups, bg)
	}

	encoder, err := p.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "field_encoder"})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("field_frame"); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}

	groupsX := (w + 7) / 8
	groupsY := (h + 7) / 8
	runPass := func(pipe hal.ComputePipeline, bg hal.BindGroup, label string) {
		pass := encoder.BeginComputePass(&hal.ComputePassDescriptor{Label: label})
		pass.SetPipeline(pipe)
		pass.SetBindGroup(0, bg, nil)
		pass.Dispatch(groupsX, groupsY, 1)
		pass.End()
	}

	runPass(p.initPipe, bindGroups[0], "field_init")
	for i := range palette {
		runPass(p.classifyPipe, bindGroups[i], "field_classify")
	}
	runPass(p.resolvePipe, bindGroups[0], "field_resolve")

	encoder.CopyBufferToBuffer(outBuf, stagingBuf, []hal.BufferCopy{
		{SrcOffset: 0, DstOffset: 0, Size: outSize},
	})
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("end encoding: %w", err)
	}
	defer p.device.FreeCommandBuffer(cmdBuf)

	fence, err := p.device.CreateFence()
	if err != nil {
		return nil, fmt.Errorf("create fence: %w", err)
	}
	defer p.device.DestroyFence(fence)
	if err := p.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := p.device.Wait(fence, 1, 5*time.Second)
	if err != nil || !fenceOK {
		return nil, fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}

	pixels := make([]byte, outSize)
	if err := p.queue.ReadBuffer(stagingBuf, 0, pixels); err != nil {
		return nil, fmt.Errorf("readback: %w", err)
	}
	return pixels, nil
}
