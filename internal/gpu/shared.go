//go:build !nogpu

package gpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/alphablend"
)

// The default device is opened once and shared by every compositor created
// through Acquire.
var (
	sharedMu  sync.Mutex
	sharedDev *Device
	sharedErr error
)

// Acquire returns a compositor on the shared device, opening the default
// device on first use. A failed open is remembered and returned again
// without retrying.
func Acquire(clock alphablend.Clock) (*Compositor, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if sharedDev == nil && sharedErr == nil {
		sharedDev, sharedErr = OpenDefault()
		if sharedErr != nil {
			slogger().Warn("gpu: no compute device", "err", sharedErr)
		}
	}
	if sharedErr != nil {
		return nil, sharedErr
	}
	return NewCompositor(sharedDev, clock)
}

// UseDevice replaces the shared device. The shared slot takes its own
// reference to dev; the caller keeps and eventually closes theirs. The
// previous device loses the shared reference but stays open for the
// compositors still running on it. Passing nil forgets the current device
// so the next Acquire opens the default one again.
func UseDevice(dev *Device) error {
	if dev != nil && !dev.retain() {
		return fmt.Errorf("%w: device closed", alphablend.ErrUnsupported)
	}
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if sharedDev != nil {
		sharedDev.Close()
	}
	sharedDev, sharedErr = dev, nil
	return nil
}
