// Package simconnect is a Go binding for the Microsoft Flight Simulator
// SimConnect SDK.
//
// A Conn owns one SimConnect connection handle. Its methods forward to the
// SDK's C entry points one to one: Go strings are passed as NUL-terminated
// byte strings, booleans as 0 or 1 and the typed enumerations as their
// native discriminants. Every non-zero HRESULT comes back as a *ResultError
// naming the SDK function that failed.
//
// The wrapper does not interpret the simulator's messages. Received packets
// are surfaced as Message values which callers decode with Decode and the
// Recv* structure aliases.
//
// SimConnect.dll is only loadable from windows/amd64 binaries. Elsewhere New
// returns ErrNotBuilt, so code using the package still compiles and can be
// unit tested on any platform.
//
// A Conn is not safe for concurrent use.
package simconnect
