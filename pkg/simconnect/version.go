package simconnect

// Version is set at build time via ldflags.
var Version = "v0.0.0-in-progress"

// SDKHeader names the SimConnect.h release the bindings were generated from.
const SDKHeader = "MSFS 2020 SimConnect SDK 0.24.3.0"

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}
