//go:build !nogpu

// Package gpu registers the device-offload compositing backend.
//
// Import it for its side effect to make alphablend.KindDeviceOffload
// available:
//
//	import _ "github.com/gogpu/alphablend/gpu"
//
// The default Vulkan device is opened on first use. Without one, creating
// the backend fails with an error wrapping alphablend.ErrUnsupported and the
// harness moves on to the remaining backends.
package gpu

import (
	"fmt"

	"github.com/gogpu/alphablend"
	gpuimpl "github.com/gogpu/alphablend/internal/gpu"
	"github.com/gogpu/gpucontext"
)

func init() {
	alphablend.Register(alphablend.KindDeviceOffload, func(cfg alphablend.Config) (alphablend.Backend, error) {
		c, err := gpuimpl.Acquire(cfg.Clock)
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}

// options configures New.
type options struct {
	provider gpucontext.DeviceProvider
	clock    alphablend.Clock
}

// Option configures New.
type Option func(*options)

// WithDeviceProvider runs the backend on the device of an external provider
// (e.g., a gogpu window) instead of opening one. The provider must also
// expose HalDevice() any and HalQueue() any.
func WithDeviceProvider(p gpucontext.DeviceProvider) Option {
	return func(o *options) {
		o.provider = p
	}
}

// WithClock sets the clock used to time the second dispatch.
func WithClock(c alphablend.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// New creates a device-offload backend. Close it when done to release the
// pipeline.
func New(opts ...Option) (*gpuimpl.Compositor, error) {
	o := options{clock: alphablend.SystemClock{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.provider == nil {
		return gpuimpl.Acquire(o.clock)
	}
	dev, err := gpuimpl.FromProvider(o.provider)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", alphablend.ErrUnsupported, err)
	}
	// The compositor holds its own reference.
	defer dev.Close()
	return gpuimpl.NewCompositor(dev, o.clock)
}

// SetDeviceProvider makes every backend created afterwards, including those
// created through alphablend.New, share the provider's device.
func SetDeviceProvider(p gpucontext.DeviceProvider) error {
	dev, err := gpuimpl.FromProvider(p)
	if err != nil {
		return err
	}
	defer dev.Close()
	if err := gpuimpl.UseDevice(dev); err != nil {
		return err
	}
	alphablend.Logger().Info("gpu: switched to shared device")
	return nil
}
