package alphablend

import (
	"errors"
	"testing"

	"golang.org/x/sys/cpu"
)

func TestCapabilitiesHas(t *testing.T) {
	c := Capabilities{SSSE3: true, ASIMD: true}
	tests := []struct {
		ext  string
		want bool
	}{
		{ExtSSE2, false},
		{ExtSSSE3, true},
		{ExtAVX, false},
		{ExtAVX2, false},
		{ExtASIMD, true},
		{"avx512f", false},
	}
	for _, tt := range tests {
		if got := c.Has(tt.ext); got != tt.want {
			t.Errorf("Has(%q) = %v, want %v", tt.ext, got, tt.want)
		}
	}
}

func TestDetectMatchesCPU(t *testing.T) {
	c := DetectCapabilities()
	if c.AVX2 != cpu.X86.HasAVX2 || c.ASIMD != cpu.ARM64.HasASIMD {
		t.Errorf("detected = %+v disagrees with x/sys/cpu", c)
	}
	if HostCapabilities() != HostCapabilities() {
		t.Error("HostCapabilities not stable")
	}
}

func TestVectorBackendsGatedByCapabilities(t *testing.T) {
	tests := []struct {
		name     string
		caps     Capabilities
		narrowOK bool
		wideOK   bool
	}{
		{"none", Capabilities{}, false, false},
		{"ssse3", Capabilities{SSE2: true, SSSE3: true}, true, false},
		{"avx2", Capabilities{SSE2: true, SSSE3: true, AVX: true, AVX2: true}, true, true},
		{"neon", Capabilities{ASIMD: true}, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore := setCapabilities(tt.caps)
			defer restore()

			if IsExtensionAvailable(ExtAVX2) != tt.caps.AVX2 {
				t.Error("IsExtensionAvailable ignores the capability table")
			}
			for kind, ok := range map[Kind]bool{KindVectorNarrow: tt.narrowOK, KindVectorWide: tt.wideOK} {
				_, err := New(kind)
				if ok && err != nil {
					t.Errorf("New(%s) error = %v", kind, err)
				}
				if !ok && !errors.Is(err, ErrUnsupported) {
					t.Errorf("New(%s) error = %v, want ErrUnsupported", kind, err)
				}
			}
		})
	}
}
