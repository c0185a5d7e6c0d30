package simconnect

import (
	"errors"
	"fmt"

	"github.com/flightlink/simconnect-go/internal/bindings"
)

var (
	// ErrAlreadyClosed is returned by Close when the connection is not open.
	ErrAlreadyClosed = errors.New("simconnect: connection already closed")

	// ErrOpenFailed reports that SimConnect_Open succeeded without handing
	// back a connection handle.
	ErrOpenFailed = errors.New("simconnect: failed to open connection")

	// ErrNotBuilt reports that this binary cannot load SimConnect.dll because
	// it was not built for windows/amd64.
	ErrNotBuilt = errors.New("simconnect: native bindings not built")

	// ErrLibraryNotFound reports that SimConnect.dll could not be loaded.
	ErrLibraryNotFound = errors.New("simconnect: SimConnect.dll not found")

	// ErrInvalidArgument reports an argument whose shape cannot be expressed
	// to SimConnect, such as a payload that does not split into equal units.
	ErrInvalidArgument = errors.New("simconnect: invalid argument")
)

// ResultError is a failure reported by SimConnect itself.
type ResultError struct {
	// Op names the failed SimConnect entry point.
	Op string
	// Code is the HRESULT returned by the call.
	Code HRESULT
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("simconnect: %s failed (hresult %s)", e.Op, e.Code)
}

// remapError converts bindings layer errors to public API errors.
func remapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bindings.ErrNotBuilt):
		return ErrNotBuilt
	case errors.Is(err, bindings.ErrLibraryNotFound):
		return fmt.Errorf("%w: %v", ErrLibraryNotFound, err)
	}
	return err
}
