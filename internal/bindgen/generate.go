// Package bindgen turns the SimConnect SDK header into Go declarations: the
// constants, enums, and packed structs of the header, an API interface with
// one method per exported entry point, and a Windows proc table that calls
// those entry points in SimConnect.dll.
//
// Which symbols are emitted is controlled by the allow and block lists of a
// Config. Block lists win over allow lists, and a selected function or type
// that refers to a blocked type is an error rather than a silent omission.
package bindgen

import (
	"fmt"
	"os"
	"path/filepath"
)

// Generate parses header and renders the files selected by cfg.
func Generate(cfg *Config, header []byte) ([]File, error) {
	if err := cfg.compile(); err != nil {
		return nil, err
	}
	h, err := Parse(header)
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}
	sel, err := selectDecls(cfg, h)
	if err != nil {
		return nil, err
	}
	e := &emitter{cfg: cfg, sel: sel, lay: newLayouter(sel)}

	var files []File
	for _, emit := range []func() (File, error){e.emitTypes, e.emitAPI, e.emitProcs} {
		f, err := emit()
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// GenerateFile reads cfg.Header (or headerPath when set) and writes the
// generated files into dir.
func GenerateFile(cfg *Config, headerPath, dir string) ([]string, error) {
	if headerPath == "" {
		headerPath = cfg.Header
	}
	if headerPath == "" {
		return nil, fmt.Errorf("no header path configured")
	}
	src, err := os.ReadFile(headerPath)
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	files, err := Generate(cfg, src)
	if err != nil {
		return nil, err
	}
	written := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, f.Src, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
