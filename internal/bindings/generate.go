// Package bindings holds the Go declarations generated from SimConnect.h and
// the code that loads SimConnect.dll behind them.
//
// The z*.go files are produced by cmd/simconnect-bindgen from bindgen.yaml.
// Regenerate them with the MSFS SDK installed and MSFS_SDK pointing at it:
//
//	go generate ./internal/bindings
package bindings

//go:generate go run ../../cmd/simconnect-bindgen -config bindgen.yaml -out .
