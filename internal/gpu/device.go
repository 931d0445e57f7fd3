//go:build !nogpu

package gpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/alphablend"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// errNoAdapter is returned when the backend enumerates no adapters.
var errNoAdapter = errors.New("no GPU adapters found")

// Device is an open compute device and its queue. It is reference
// counted: every compositor on it holds a reference, and the device is
// destroyed when the last one is closed.
type Device struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	name     string

	// external devices belong to a provider and are never destroyed here.
	external bool

	mu   sync.Mutex
	refs int
}

func newDevice(instance hal.Instance, device hal.Device, queue hal.Queue, name string, external bool) *Device {
	return &Device{
		instance: instance,
		device:   device,
		queue:    queue,
		name:     name,
		external: external,
		refs:     1,
	}
}

// OpenDefault opens the preferred Vulkan adapter, favouring discrete then
// integrated GPUs. Failure to find one is reported as ErrUnsupported.
func OpenDefault() (*Device, error) {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("%w: vulkan backend not available", alphablend.ErrUnsupported)
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("%w: create instance: %w", alphablend.ErrUnsupported, err)
	}
	return openFirst(instance)
}

// openFirst opens the best adapter of instance. The instance is destroyed
// on failure.
func openFirst(instance hal.Instance) (*Device, error) {
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("%w: %w", alphablend.ErrUnsupported, errNoAdapter)
	}
	selected := preferredAdapter(adapters)
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("%w: open device: %w", alphablend.ErrUnsupported, err)
	}
	slogger().Info("gpu: device acquired", "adapter", selected.Info.Name)
	return newDevice(instance, openDev.Device, openDev.Queue, selected.Info.Name, false), nil
}

// preferredAdapter returns the first discrete GPU, else the first
// integrated one, else the first adapter. adapters must not be empty.
func preferredAdapter(adapters []hal.ExposedAdapter) *hal.ExposedAdapter {
	for _, want := range []gputypes.DeviceType{gputypes.DeviceTypeDiscreteGPU, gputypes.DeviceTypeIntegratedGPU} {
		for i := range adapters {
			if adapters[i].Info.DeviceType == want {
				return &adapters[i]
			}
		}
	}
	return &adapters[0]
}

// OpenInstance opens the best adapter of an already created instance. The
// returned device owns the instance.
func OpenInstance(instance hal.Instance) (*Device, error) {
	return openFirst(instance)
}

// WrapHAL uses a device and queue owned by someone else.
func WrapHAL(device hal.Device, queue hal.Queue, name string) *Device {
	return newDevice(nil, device, queue, name, true)
}

// FromProvider extracts the HAL device and queue from a provider exposing
// HalDevice() any and HalQueue() any, such as a gogpu window.
func FromProvider(provider any) (*Device, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, errors.New("gpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, errors.New("gpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, errors.New("gpu: provider HalQueue is not hal.Queue")
	}
	return WrapHAL(device, queue, "provider"), nil
}

// Name returns the adapter name.
func (d *Device) Name() string { return d.name }

// retain adds a reference. It reports false once the device is closed.
func (d *Device) retain() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.refs <= 0 {
		return false
	}
	d.refs++
	return true
}

// Close drops the caller's reference. The last reference destroys the
// device unless it is owned by a provider. Extra calls are ignored.
func (d *Device) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.refs <= 0 {
		return
	}
	d.refs--
	if d.refs > 0 {
		return
	}
	if d.external {
		d.device, d.queue = nil, nil
		return
	}
	if d.device != nil {
		d.device.Destroy()
		d.device = nil
	}
	if d.instance != nil {
		d.instance.Destroy()
		d.instance = nil
	}
	d.queue = nil
}
