//go:build !linux || !cgo
// +build !linux !cgo

package gles

import (
	"runtime"

	"github.com/pkg/errors"
)

// Load reports that no GLES implementation is available on this platform.
func Load() (Functions, error) {
	return nil, errors.Errorf("gles: no implementation for %s/%s (cgo required)", runtime.GOOS, runtime.GOARCH)
}
