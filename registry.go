package alphablend

import (
	"fmt"
	"sync"
)

// Config is passed to backend factories.
type Config struct {
	// Clock measures the composite calls.
	Clock Clock
}

// Option configures a backend created by New.
type Option func(*Config)

// WithClock sets the clock used to time Composite.
func WithClock(c Clock) Option {
	return func(cfg *Config) {
		if c != nil {
			cfg.Clock = c
		}
	}
}

// Factory creates a backend. It returns an error wrapping ErrUnsupported
// when the host lacks the capability the backend needs.
type Factory func(cfg Config) (Backend, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[Kind]Factory)
)

func init() {
	Register(KindFloatReference, newSoftware(KindFloatReference))
	Register(KindFixedPoint, newSoftware(KindFixedPoint))
	Register(KindOpaqueFast, newSoftware(KindOpaqueFast))
	Register(KindVectorNarrow, newVectorNarrow)
	Register(KindVectorWide, newVectorWide)
}

// Register installs a factory for kind, replacing any previous one.
// Typically called from init functions, like the gpu sub-package does.
func Register(kind Kind, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[kind] = factory
}

// Unregister removes the factory for kind. This is useful for testing.
func Unregister(kind Kind) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, kind)
}

// IsRegistered reports whether a factory exists for kind.
func IsRegistered(kind Kind) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[kind]
	return ok
}

// New creates a backend of the given kind.
//
// An unregistered kind, or a host missing the required capability, yields
// an error wrapping ErrUnsupported.
func New(kind Kind, opts ...Option) (Backend, error) {
	cfg := Config{Clock: SystemClock{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	registryMu.RLock()
	factory, ok := factories[kind]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: backend %s not registered", ErrUnsupported, kind)
	}
	return factory(cfg)
}
