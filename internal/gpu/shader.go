//go:build !nogpu

package gpu

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/gogpu/naga"
)

//go:embed shaders/composite.wgsl
var compositeShaderSource string

// Kernel entry point and workgroup edge, matching composite.wgsl.
const (
	kernelEntryPoint = "main"
	workgroupSize    = 8
)

var (
	kernelOnce  sync.Once
	kernelSPIRV []byte
	kernelErr   error
)

// CompileKernel translates the embedded WGSL kernel to SPIR-V. The result
// is computed once per process.
func CompileKernel() ([]byte, error) {
	kernelOnce.Do(func() {
		kernelSPIRV, kernelErr = naga.Compile(compositeShaderSource)
		if kernelErr != nil {
			kernelErr = fmt.Errorf("compile composite kernel: %w", kernelErr)
		}
	})
	return kernelSPIRV, kernelErr
}

// workgroups returns the dispatch grid covering n items.
func workgroups(n uint32) uint32 {
	return (n + workgroupSize - 1) / workgroupSize
}
