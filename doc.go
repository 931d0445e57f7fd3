// Package alphablend composites an RGBA foreground onto an RGBA background
// with the src-over operator, using one of several interchangeable backends.
//
// # Overview
//
// Every backend implements the same contract:
//
//	alpha_out = bg.a + fg.a - bg.a*fg.a
//	out.rgb   = (fg.rgb*fg.a + bg.rgb*bg.a*(1 - fg.a)) / alpha_out
//	out.a     = alpha_out
//
// and differs only in how it gets there:
//
//   - [KindFloatReference]: normalized float32, truncating conversion. The
//     oracle every other backend is validated against.
//   - [KindFixedPoint]: premultiplied integers with a 256x256 divide table.
//   - [KindOpaqueFast]: background assumed opaque, no division at all.
//   - [KindVectorNarrow], [KindVectorWide]: the opaque path on 2 or 4
//     pixels per register pass. Gated behind the CPU capability check.
//   - [KindDeviceOffload]: a compute kernel on the GPU. Registered by the
//     gpu sub-package.
//
// # Quick Start
//
//	bg := alphablend.NewImage(640, 480)
//	fg := alphablend.NewImage(640, 480)
//	bg.Fill(alphablend.Pixel{R: 101, G: 102, B: 103, A: 255})
//	fg.Fill(alphablend.Pixel{R: 10, G: 217, B: 100, A: 200})
//
//	if err := alphablend.Composite(bg, fg); err != nil {
//		log.Fatal(err)
//	}
//
// [Composite] picks the fastest backend the host supports. To use a
// specific one:
//
//	b, err := alphablend.New(alphablend.KindFixedPoint)
//	if err != nil {
//		return err
//	}
//	elapsed, err := b.Composite(bg, fg)
//
// # GPU
//
// The device backend lives in a separate package so that importing
// alphablend does not pull in the GPU stack:
//
//	import _ "github.com/gogpu/alphablend/gpu"
//
// Without a compatible device, [New] returns an error wrapping
// [ErrUnsupported].
//
// # Logging
//
// The package is silent by default. See [SetLogger].
package alphablend
