package bindgen

import (
	"fmt"
	"sort"
)

// builtin describes how a C scalar maps onto Go.
type builtin struct {
	goType string
	size   int
}

// goBuiltins maps the scalar and Windows types the header uses. Sizes are
// for windows/amd64.
var goBuiltins = map[string]builtin{
	"void":               {"", 0},
	"bool":               {"uint8", 1},
	"char":               {"byte", 1},
	"signed char":        {"int8", 1},
	"unsigned char":      {"uint8", 1},
	"BYTE":               {"uint8", 1},
	"short":              {"int16", 2},
	"unsigned short":     {"uint16", 2},
	"WORD":               {"uint16", 2},
	"int":                {"int32", 4},
	"signed int":         {"int32", 4},
	"unsigned int":       {"uint32", 4},
	"long":               {"int32", 4},
	"unsigned long":      {"uint32", 4},
	"INT":                {"int32", 4},
	"UINT":               {"uint32", 4},
	"LONG":               {"int32", 4},
	"ULONG":              {"uint32", 4},
	"BOOL":               {"int32", 4},
	"DWORD":              {"uint32", 4},
	"HRESULT":            {"HRESULT", 4},
	"__int64":            {"int64", 8},
	"unsigned __int64":   {"uint64", 8},
	"long long":          {"int64", 8},
	"unsigned long long": {"uint64", 8},
	"LONGLONG":           {"int64", 8},
	"ULONGLONG":          {"uint64", 8},
	"QWORD":              {"uint64", 8},
	"float":              {"float32", 4},
	"double":             {"float64", 8},
	"size_t":             {"uintptr", 8},
	"HANDLE":             {"Handle", 8},
	"HWND":               {"uintptr", 8},
	"GUID":               {"GUID", 16},
}

// selection is the part of a header that ends up in the generated files.
type selection struct {
	h      *Header
	funcs  []*Func
	types  map[string]bool
	consts []*Const
	enums  []*Enum
	guid   bool
}

func selectDecls(cfg *Config, h *Header) (*selection, error) {
	s := &selection{h: h, types: map[string]bool{}}

	for _, name := range cfg.Functions.literals() {
		if cfg.Functions.Blocked(name) {
			continue
		}
		if !hasFunc(h, name) {
			return nil, fmt.Errorf("function %s not found in header", name)
		}
	}
	for _, f := range h.Funcs {
		if !cfg.Functions.Selected(f.Name) {
			continue
		}
		if err := s.use(cfg, f.Ret, f.Name); err != nil {
			return nil, err
		}
		for _, p := range f.Params {
			if err := s.use(cfg, p.Type, f.Name); err != nil {
				return nil, err
			}
		}
		s.funcs = append(s.funcs, f)
	}

	for _, name := range cfg.Types.literals() {
		if !cfg.Types.Blocked(name) && !s.known(name) {
			return nil, fmt.Errorf("type %s not found in header", name)
		}
	}
	for _, name := range s.declared() {
		if cfg.Types.Selected(name) {
			if err := s.use(cfg, CType{Name: name}, name); err != nil {
				return nil, err
			}
		}
	}

	for _, c := range h.Consts {
		if !cfg.Vars.Selected(c.Name) {
			continue
		}
		if _, ok := goBuiltins[c.Type.Name]; !ok {
			if err := s.use(cfg, c.Type, c.Name); err != nil {
				return nil, err
			}
		}
		s.consts = append(s.consts, c)
	}

	for _, e := range h.Enums {
		if !s.types[e.Name] {
			continue
		}
		kept := &Enum{Name: e.Name}
		for _, m := range e.Members {
			// Dropped enumerators keep their slot; every emitted value is
			// explicit so later members keep their native numbering.
			if cfg.Vars.Blocked(m.Name) {
				continue
			}
			kept.Members = append(kept.Members, m)
		}
		s.enums = append(s.enums, kept)
	}
	return s, nil
}

// use adds t and everything it depends on to the selection.
func (s *selection) use(cfg *Config, t CType, from string) error {
	name := t.Name
	if name == "GUID" {
		s.guid = true
		return nil
	}
	if _, ok := goBuiltins[name]; ok {
		return nil
	}
	if s.types[name] {
		return nil
	}
	if cfg.Types.Blocked(name) {
		return fmt.Errorf("%s references blocked type %s", from, name)
	}

	if td := s.h.typedef(name); td != nil {
		s.types[name] = true
		if td.FuncPtr {
			return nil
		}
		return s.use(cfg, td.Type, name)
	}
	if s.h.enum(name) != nil {
		s.types[name] = true
		return nil
	}
	if st := s.h.structure(name); st != nil {
		s.types[name] = true
		if st.Base != "" {
			if err := s.use(cfg, CType{Name: st.Base}, name); err != nil {
				return err
			}
		}
		for _, f := range st.Fields {
			if err := s.use(cfg, f.Type, name); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%s references unknown type %s", from, name)
}

func (s *selection) known(name string) bool {
	return s.h.typedef(name) != nil || s.h.enum(name) != nil || s.h.structure(name) != nil
}

// declared lists every named type in the header, sorted.
func (s *selection) declared() []string {
	var out []string
	for _, t := range s.h.Typedefs {
		out = append(out, t.Name)
	}
	for _, e := range s.h.Enums {
		out = append(out, e.Name)
	}
	for _, st := range s.h.Structs {
		out = append(out, st.Name)
	}
	sort.Strings(out)
	return out
}

func hasFunc(h *Header, name string) bool {
	for _, f := range h.Funcs {
		if f.Name == name {
			return true
		}
	}
	return false
}
