//go:build !(windows && amd64)

package bindings

// DispatchCallback returns zero; there is no native callback outside
// windows/amd64.
func DispatchCallback() DispatchProc { return 0 }
