package bindings

import (
	"errors"
	"fmt"
)

// Handle is the opaque HANDLE returned by SimConnect_Open. Zero means no
// connection.
type Handle uintptr

// HRESULT is the result code returned by every SimConnect entry point.
type HRESULT int32

// Result codes the wrapper inspects or produces itself.
const (
	S_OK          HRESULT = 0
	E_FAIL        HRESULT = -0x7FFFBFFB // 0x80004005
	E_NOTIMPL     HRESULT = -0x7FFFBFFF // 0x80004001
	E_INVALIDARG  HRESULT = -0x7FF8FFA9 // 0x80070057
	E_OUTOFMEMORY HRESULT = -0x7FF8FFF2 // 0x8007000E
)

var hresultNames = map[HRESULT]string{
	S_OK:          "S_OK",
	E_FAIL:        "E_FAIL",
	E_NOTIMPL:     "E_NOTIMPL",
	E_INVALIDARG:  "E_INVALIDARG",
	E_OUTOFMEMORY: "E_OUTOFMEMORY",
}

func (hr HRESULT) String() string {
	if name, ok := hresultNames[hr]; ok {
		return name
	}
	return fmt.Sprintf("0x%08X", uint32(hr))
}

var (
	// ErrNotBuilt reports that this binary has no SimConnect backend. Only
	// windows/amd64 builds can load SimConnect.dll.
	ErrNotBuilt = errors.New("simconnect/internal/bindings: native bindings not built")

	// ErrLibraryNotFound reports that SimConnect.dll could not be loaded.
	ErrLibraryNotFound = errors.New("simconnect/internal/bindings: SimConnect.dll not found")
)
