//go:build windows && amd64

package bindings

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Load maps the SimConnect.dll at path and returns its entry points. Every
// other entry point is resolved on first call; only Open and Close must be
// present for the library to be accepted.
func Load(path string) (API, error) {
	dll := windows.NewLazyDLL(path)
	if err := dll.Load(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLibraryNotFound, path, err)
	}
	t := newProcTable(dll)
	for _, p := range []*windows.LazyProc{t.procOpen, t.procClose} {
		if err := p.Find(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLibraryNotFound, err)
		}
	}
	return t, nil
}
