//go:build !nogpu

package gpu

import (
	"fmt"
	"sync"
	"time"
	"unsafe"

	"github.com/gogpu/alphablend"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Compositor runs the composite kernel on a Device. It implements
// alphablend.Backend.
type Compositor struct {
	mu    sync.Mutex
	dev   *Device
	clock alphablend.Clock

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.ComputePipeline
	closed     bool
}

var _ alphablend.Backend = (*Compositor)(nil)

// NewCompositor builds the compute pipeline on dev and holds a reference to
// it until Close. A nil clock selects alphablend.SystemClock. Every setup
// failure wraps alphablend.ErrUnsupported so callers fall back to a CPU
// backend.
func NewCompositor(dev *Device, clock alphablend.Clock) (*Compositor, error) {
	if dev == nil || !dev.retain() {
		return nil, fmt.Errorf("%w: no device", alphablend.ErrUnsupported)
	}
	if _, err := CompileKernel(); err != nil {
		dev.Close()
		return nil, fmt.Errorf("%w: %w", alphablend.ErrUnsupported, err)
	}
	if clock == nil {
		clock = alphablend.SystemClock{}
	}
	c := &Compositor{dev: dev, clock: clock}
	if err := c.createPipeline(); err != nil {
		c.destroyPipeline()
		dev.Close()
		return nil, fmt.Errorf("%w: gpu: create pipeline: %w", alphablend.ErrUnsupported, err)
	}
	return c, nil
}

// Kind returns alphablend.KindDeviceOffload.
func (c *Compositor) Kind() alphablend.Kind { return alphablend.KindDeviceOffload }

// Device returns the device the compositor runs on.
func (c *Compositor) Device() *Device { return c.dev }

// Close releases the pipeline and the compositor's device reference.
func (c *Compositor) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.destroyPipeline()
	c.dev.Close()
}

func (c *Compositor) createPipeline() error {
	d := c.dev.device

	shader, err := d.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "alphablend_composite",
		Source: hal.ShaderSource{WGSL: compositeShaderSource},
	})
	if err != nil {
		return fmt.Errorf("create shader module: %w", err)
	}
	c.shader = shader

	bindLayout, err := d.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "alphablend_composite_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{Binding: 0, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform}},
			{Binding: 1, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage}},
			{Binding: 2, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage}},
			{Binding: 3, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group layout: %w", err)
	}
	c.bindLayout = bindLayout

	pipeLayout, err := d.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: "alphablend_composite_pipe_layout", BindGroupLayouts: []hal.BindGroupLayout{c.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	c.pipeLayout = pipeLayout

	pipeline, err := d.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label: "alphablend_composite_pipeline", Layout: c.pipeLayout,
		Compute: hal.ComputeState{Module: c.shader, EntryPoint: kernelEntryPoint},
	})
	if err != nil {
		return fmt.Errorf("create compute pipeline: %w", err)
	}
	c.pipeline = pipeline
	return nil
}

func (c *Compositor) destroyPipeline() {
	if c.dev == nil || c.dev.device == nil {
		return
	}
	d := c.dev.device
	if c.pipeline != nil {
		d.DestroyComputePipeline(c.pipeline)
		c.pipeline = nil
	}
	if c.pipeLayout != nil {
		d.DestroyPipelineLayout(c.pipeLayout)
		c.pipeLayout = nil
	}
	if c.bindLayout != nil {
		d.DestroyBindGroupLayout(c.bindLayout)
		c.bindLayout = nil
	}
	if c.shader != nil {
		d.DestroyShaderModule(c.shader)
		c.shader = nil
	}
}

// buffers holds the per-call device allocations.
type buffers struct {
	params  hal.Buffer
	fg      hal.Buffer
	bgIn    hal.Buffer
	bgOut   hal.Buffer
	staging hal.Buffer
	bind    hal.BindGroup
	size    uint64
}

// Composite blends fg over bg on the device and writes the result into bg.
// The kernel runs twice; the returned duration covers the second run, from
// submission through read-back.
func (c *Compositor) Composite(bg, fg *alphablend.Image) (time.Duration, error) {
	if err := alphablend.Validate(bg, fg); err != nil {
		return 0, err
	}
	if bg.Pixels() == 0 {
		return 0, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.pipeline == nil || c.dev.device == nil {
		return 0, fmt.Errorf("%w: compositor closed", alphablend.ErrUnsupported)
	}

	w, h := uint32(bg.Width()), uint32(bg.Height()) //nolint:gosec // dimensions always fit uint32
	bufs, err := c.createBuffers(w, h)
	defer c.destroyBuffers(bufs)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", alphablend.ErrDeviceTransfer, err)
	}

	pixels := bg.Pixels()
	if err := c.upload(bufs, w, h, bg, fg); err != nil {
		return 0, fmt.Errorf("%w: %w", alphablend.ErrDeviceTransfer, err)
	}

	readback := make([]byte, bufs.size)

	// Warm-up run: absorbs driver compilation and first-use costs.
	if err := c.dispatch(bufs, w, h, readback); err != nil {
		return 0, fmt.Errorf("%w: warm-up: %w", alphablend.ErrDeviceTransfer, err)
	}

	start := c.clock.Now()
	if err := c.dispatch(bufs, w, h, readback); err != nil {
		return 0, fmt.Errorf("%w: %w", alphablend.ErrDeviceTransfer, err)
	}
	elapsed := c.clock.Since(start)

	unpackPixels(readback, bg.Data(), pixels)
	slogger().Debug("gpu: composite dispatched",
		"width", w, "height", h,
		"workgroups_x", workgroups(w), "workgroups_y", workgroups(h),
		"elapsed", elapsed)
	return elapsed, nil
}

// upload writes the uniform and both input images.
func (c *Compositor) upload(b *buffers, w, h uint32, bg, fg *alphablend.Image) error {
	q := c.dev.queue
	pixels := bg.Pixels()
	if err := q.WriteBuffer(b.params, 0, paramsBytes(w, h)); err != nil {
		return fmt.Errorf("write params: %w", err)
	}
	if err := q.WriteBuffer(b.fg, 0, packPixels(fg.Data(), pixels)); err != nil {
		return fmt.Errorf("write foreground: %w", err)
	}
	if err := q.WriteBuffer(b.bgIn, 0, packPixels(bg.Data(), pixels)); err != nil {
		return fmt.Errorf("write background: %w", err)
	}
	return nil
}

func (c *Compositor) createBuffers(w, h uint32) (*buffers, error) {
	d := c.dev.device
	size := uint64(w) * uint64(h) * 4
	b := &buffers{size: size}

	var err error
	create := func(label string, size uint64, usage gputypes.BufferUsage) hal.Buffer {
		if err != nil {
			return nil
		}
		var buf hal.Buffer
		buf, err = d.CreateBuffer(&hal.BufferDescriptor{Label: label, Size: size, Usage: usage})
		if err != nil {
			err = fmt.Errorf("create %s buffer: %w", label, err)
		}
		return buf
	}

	b.params = create("alphablend_params", paramsSize, gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	b.fg = create("alphablend_fg", size, gputypes.BufferUsageStorage|gputypes.BufferUsageCopyDst)
	b.bgIn = create("alphablend_bg_in", size, gputypes.BufferUsageStorage|gputypes.BufferUsageCopyDst)
	b.bgOut = create("alphablend_bg_out", size, gputypes.BufferUsageStorage|gputypes.BufferUsageCopySrc)
	b.staging = create("alphablend_staging", size, gputypes.BufferUsageMapRead|gputypes.BufferUsageCopyDst)
	if err != nil {
		return b, err
	}

	b.bind, err = d.CreateBindGroup(&hal.BindGroupDescriptor{
		Label: "alphablend_composite_bind", Layout: c.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{Buffer: b.params.NativeHandle(), Offset: 0, Size: paramsSize}},
			{Binding: 1, Resource: gputypes.BufferBinding{Buffer: b.fg.NativeHandle(), Offset: 0, Size: size}},
			{Binding: 2, Resource: gputypes.BufferBinding{Buffer: b.bgIn.NativeHandle(), Offset: 0, Size: size}},
			{Binding: 3, Resource: gputypes.BufferBinding{Buffer: b.bgOut.NativeHandle(), Offset: 0, Size: size}},
		},
	})
	if err != nil {
		return b, fmt.Errorf("create bind group: %w", err)
	}
	return b, nil
}

func (c *Compositor) destroyBuffers(b *buffers) {
	if b == nil {
		return
	}
	d := c.dev.device
	if b.bind != nil {
		d.DestroyBindGroup(b.bind)
	}
	for _, buf := range []hal.Buffer{b.params, b.fg, b.bgIn, b.bgOut, b.staging} {
		if buf != nil {
			d.DestroyBuffer(buf)
		}
	}
}

// dispatch records one kernel pass plus the copy to staging, submits it,
// waits for the submission to complete and reads the staging buffer into
// out.
func (c *Compositor) dispatch(b *buffers, w, h uint32, out []byte) error {
	d, q := c.dev.device, c.dev.queue

	encoder, err := d.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "alphablend_encoder"})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("alphablend_composite"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	pass := encoder.BeginComputePass(&hal.ComputePassDescriptor{Label: "alphablend_pass"})
	pass.SetPipeline(c.pipeline)
	pass.SetBindGroup(0, b.bind, nil)
	pass.Dispatch(workgroups(w), workgroups(h), 1)
	pass.End()

	encoder.CopyBufferToBuffer(b.bgOut, b.staging, []hal.BufferCopy{
		{SrcOffset: 0, DstOffset: 0, Size: b.size},
	})
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer d.FreeCommandBuffer(cmdBuf)

	index, err := q.Submit([]hal.CommandBuffer{cmdBuf})
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	if err := c.waitFor(index); err != nil {
		return err
	}
	return c.readback(b, out)
}

// waitFor blocks until submission index has completed.
func (c *Compositor) waitFor(index uint64) error {
	if c.dev.queue.PollCompleted() >= index {
		return nil
	}
	if err := c.dev.device.WaitIdle(); err != nil {
		return fmt.Errorf("wait for GPU: %w", err)
	}
	if done := c.dev.queue.PollCompleted(); done < index {
		return fmt.Errorf("wait for GPU: submission %d not completed (last %d)", index, done)
	}
	return nil
}

// readback copies the staging buffer into out through a host mapping.
func (c *Compositor) readback(b *buffers, out []byte) error {
	d := c.dev.device
	mapping, err := d.MapBuffer(b.staging, 0, b.size)
	if err != nil {
		return fmt.Errorf("map staging buffer: %w", err)
	}
	copy(out, unsafe.Slice((*byte)(mapping.Ptr), b.size))
	if err := d.UnmapBuffer(b.staging); err != nil {
		return fmt.Errorf("unmap staging buffer: %w", err)
	}
	return nil
}
