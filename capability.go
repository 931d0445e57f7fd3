package alphablend

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// Vector instruction extensions known to the capability check.
const (
	ExtSSE2  = "sse2"
	ExtSSSE3 = "ssse3"
	ExtAVX   = "avx"
	ExtAVX2  = "avx2"
	ExtASIMD = "asimd" // ARM64 NEON
)

// Capabilities is the host's vector capability table.
type Capabilities struct {
	SSE2  bool
	SSSE3 bool
	AVX   bool
	AVX2  bool
	ASIMD bool
}

// Has reports whether the named extension is present. Unknown names are
// reported as absent.
func (c Capabilities) Has(ext string) bool {
	switch ext {
	case ExtSSE2:
		return c.SSE2
	case ExtSSSE3:
		return c.SSSE3
	case ExtAVX:
		return c.AVX
	case ExtAVX2:
		return c.AVX2
	case ExtASIMD:
		return c.ASIMD
	default:
		return false
	}
}

// DetectCapabilities reads the CPU feature flags. Most callers want
// HostCapabilities, which detects only once.
func DetectCapabilities() Capabilities {
	return Capabilities{
		SSE2:  cpu.X86.HasSSE2,
		SSSE3: cpu.X86.HasSSSE3,
		AVX:   cpu.X86.HasAVX,
		AVX2:  cpu.X86.HasAVX2,
		ASIMD: cpu.ARM64.HasASIMD,
	}
}

var (
	capsMu       sync.RWMutex
	capsDetected bool
	caps         Capabilities
)

// HostCapabilities returns the capability table, querying the CPU on first
// use.
func HostCapabilities() Capabilities {
	capsMu.RLock()
	if capsDetected {
		c := caps
		capsMu.RUnlock()
		return c
	}
	capsMu.RUnlock()

	capsMu.Lock()
	defer capsMu.Unlock()
	if !capsDetected {
		caps = DetectCapabilities()
		capsDetected = true
		Logger().Info("alphablend: capabilities detected",
			"sse2", caps.SSE2, "ssse3", caps.SSSE3,
			"avx", caps.AVX, "avx2", caps.AVX2, "asimd", caps.ASIMD)
	}
	return caps
}

// IsExtensionAvailable reports whether the named vector extension is
// available on this host.
func IsExtensionAvailable(ext string) bool {
	return HostCapabilities().Has(ext)
}

// setCapabilities replaces the detected table and returns a function that
// restores the previous state. Tests only.
func setCapabilities(c Capabilities) (restore func()) {
	capsMu.Lock()
	prevCaps, prevDetected := caps, capsDetected
	caps, capsDetected = c, true
	capsMu.Unlock()
	return func() {
		capsMu.Lock()
		caps, capsDetected = prevCaps, prevDetected
		capsMu.Unlock()
	}
}
