//go:build nogpu

// Package gpu registers nothing when built with the nogpu tag:
// alphablend.KindDeviceOffload stays unsupported.
package gpu
