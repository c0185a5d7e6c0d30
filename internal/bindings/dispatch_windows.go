//go:build windows && amd64

package bindings

import (
	"sync"

	"golang.org/x/sys/windows"
)

var (
	dispatchOnce sync.Once
	dispatchProc DispatchProc
)

// DispatchCallback returns the native callback that routes each message to
// the function registered under the context key. The callback is created
// once; Windows limits the number of callbacks a process can allocate.
func DispatchCallback() DispatchProc {
	dispatchOnce.Do(func() {
		dispatchProc = DispatchProc(windows.NewCallback(func(data *SIMCONNECT_RECV, size uint32, ctx uintptr) uintptr {
			InvokeDispatch(ctx, data, size)
			return 0
		}))
	})
	return dispatchProc
}
