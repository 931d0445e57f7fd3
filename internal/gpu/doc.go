//go:build !nogpu

// Package gpu implements the device-offload compositing backend on top of
// wgpu/hal compute pipelines.
//
// The float src-over formula runs as a WGSL compute kernel, one invocation
// per pixel over an 8x8 workgroup grid. The host uploads the foreground and
// the background into read-only storage buffers, the kernel writes into a
// third storage buffer, and the result is copied into a mappable staging
// buffer, mapped and read back once the submission has completed.
//
// A Device is reference counted. Compositors hold a reference, so replacing
// the shared device with UseDevice never destroys one still in use.
//
// Every Composite call dispatches the kernel twice and reports the duration
// of the second dispatch only, so one-time costs (pipeline creation, driver
// compilation, first transfer) do not skew the measurement.
package gpu
