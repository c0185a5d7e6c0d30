package bindings

import "sync"

// DispatchFunc receives one message during SimConnect_CallDispatch. data
// points into SimConnect's receive buffer and is only valid until the
// function returns.
type DispatchFunc func(data *SIMCONNECT_RECV, size uint32)

// The native context argument carries a registry key rather than a Go
// pointer. The key stays a uintptr throughout: the runtime rejects small
// integers held in pointer-typed values.
var (
	dispatchMu   sync.Mutex
	dispatchNext uintptr = 1
	dispatchReg          = map[uintptr]DispatchFunc{}
)

// RegisterDispatch stores fn and returns the key to pass as the context
// argument of CallDispatch.
func RegisterDispatch(fn DispatchFunc) uintptr {
	dispatchMu.Lock()
	key := dispatchNext
	dispatchNext++
	dispatchReg[key] = fn
	dispatchMu.Unlock()
	return key
}

// UnregisterDispatch forgets the function stored under key.
func UnregisterDispatch(key uintptr) {
	dispatchMu.Lock()
	delete(dispatchReg, key)
	dispatchMu.Unlock()
}

// InvokeDispatch calls the function stored under key. It reports false when
// the key is unknown.
func InvokeDispatch(key uintptr, data *SIMCONNECT_RECV, size uint32) bool {
	dispatchMu.Lock()
	fn, ok := dispatchReg[key]
	dispatchMu.Unlock()
	if !ok {
		return false
	}
	fn(data, size)
	return true
}
