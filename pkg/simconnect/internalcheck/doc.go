// Package internalcheck holds static checks over the simconnect package.
//
// The tests load pkg/simconnect with golang.org/x/tools/go/packages and
// inspect its syntax: every SDK result must reach the shared check helper,
// every string must pass through the NUL-checking converter, and nothing
// may reach the SDK subsystems the binding leaves out.
//
// # Internal Use Only
//
// This package has no API of its own and should not be imported.
package internalcheck
