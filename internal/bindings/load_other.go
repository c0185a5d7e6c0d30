//go:build !(windows && amd64)

package bindings

// Load always fails outside windows/amd64, where SimConnect.dll cannot be
// loaded.
func Load(string) (API, error) {
	return nil, ErrNotBuilt
}
