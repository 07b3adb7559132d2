//go:build !linux || !cgo
// +build !linux !cgo

package egl

import (
	"runtime"

	"github.com/pkg/errors"
)

// Load reports that no EGL driver is available on this platform.
func Load() (Driver, error) {
	return nil, errors.Errorf("egl: no driver for %s/%s (cgo required)", runtime.GOOS, runtime.GOARCH)
}
