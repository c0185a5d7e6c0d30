package bindgen

import (
	"fmt"
	"strings"
)

// The header is compiled with #pragma pack(1), so C fields follow each other
// without padding. Go always aligns naturally. A field whose packed offset is
// not a multiple of its Go alignment is emitted as a byte array of the same
// size, which keeps every Go offset equal to the C offset.

type goField struct {
	name string
	typ  string
	// ctype documents the C type of fields emitted as raw bytes.
	ctype string
}

type goStruct struct {
	name   string
	fields []goField
	size   int // packed C size
	goSize int
	align  int
}

type layouter struct {
	sel     *selection
	structs map[string]*goStruct
}

func newLayouter(sel *selection) *layouter {
	return &layouter{sel: sel, structs: map[string]*goStruct{}}
}

// scalar returns the Go expression, size, and Go alignment of a non-array
// field type.
func (l *layouter) scalar(t CType) (string, int, int, error) {
	if t.Ptr > 0 {
		return "uintptr", 8, 8, nil
	}
	if b, ok := goBuiltins[t.Name]; ok {
		if b.size == 0 {
			return "", 0, 0, fmt.Errorf("field of type %s", t.Name)
		}
		if t.Name == "GUID" {
			return "GUID", 16, 4, nil
		}
		return b.goType, b.size, b.size, nil
	}
	h := l.sel.h
	if td := h.typedef(t.Name); td != nil {
		if td.FuncPtr {
			return t.Name, 8, 8, nil
		}
		_, size, align, err := l.scalar(td.Type)
		return t.Name, size, align, err
	}
	if h.enum(t.Name) != nil {
		return t.Name, 4, 4, nil
	}
	if h.structure(t.Name) != nil {
		gs, err := l.layout(t.Name)
		if err != nil {
			return "", 0, 0, err
		}
		return t.Name, gs.size, gs.align, nil
	}
	return "", 0, 0, fmt.Errorf("unknown type %s", t.Name)
}

func (l *layouter) layout(name string) (*goStruct, error) {
	if gs, ok := l.structs[name]; ok {
		if gs == nil {
			return nil, fmt.Errorf("struct %s contains itself", name)
		}
		return gs, nil
	}
	l.structs[name] = nil
	st := l.sel.h.structure(name)
	if st == nil {
		return nil, fmt.Errorf("unknown struct %s", name)
	}

	gs := &goStruct{name: name, align: 1}
	off := 0
	if st.Base != "" {
		base, err := l.layout(st.Base)
		if err != nil {
			return nil, err
		}
		if base.goSize == base.size {
			gs.fields = append(gs.fields, goField{typ: base.name})
		} else {
			gs.fields = append(gs.fields, base.fields...)
		}
		off = base.size
		gs.align = base.align
	}

	for _, f := range st.Fields {
		expr, size, align, err := l.scalar(f.Type)
		if err != nil {
			return nil, fmt.Errorf("struct %s field %s: %w", name, f.Name, err)
		}
		n := f.Len
		if n == 0 {
			n = 1
		}
		total := size * n

		raw := off%align != 0
		if child, ok := l.structs[f.Type.Name]; ok && child != nil && f.Type.Ptr == 0 && child.goSize != child.size {
			raw = true
		}
		gf := goField{name: exportName(f.Name)}
		switch {
		case raw:
			gf.typ = fmt.Sprintf("[%d]byte", total)
			gf.ctype = f.Type.String()
			if f.Len > 0 {
				gf.ctype += fmt.Sprintf("[%d]", f.Len)
			}
			align = 1
		case f.Len > 0:
			gf.typ = fmt.Sprintf("[%d]%s", f.Len, expr)
		default:
			gf.typ = expr
		}
		gs.fields = append(gs.fields, gf)
		off += total
		if align > gs.align {
			gs.align = align
		}
	}
	gs.size = off
	gs.goSize = alignUp(off, gs.align)
	l.structs[name] = gs
	return gs, nil
}

func alignUp(n, a int) int {
	if a <= 1 {
		return n
	}
	return (n + a - 1) / a * a
}

// exportName capitalizes a C field name so that it is exported.
func exportName(s string) string {
	if s == "" {
		return s
	}
	s = strings.TrimLeft(s, "_")
	if s == "" {
		return "X"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// paramName keeps the header's parameter name unless it collides with a Go
// keyword or a predeclared identifier the generated code relies on.
func paramName(s string) string {
	if goKeywords[s] || s == "uintptr" || s == "unsafe" || s == "math" || s == "syscall" {
		return s + "_"
	}
	return s
}

// methodName turns SimConnect_TransmitClientEvent_EX1 into
// TransmitClientEventEX1.
func methodName(fn string) string {
	name := strings.TrimPrefix(fn, "SimConnect_")
	return strings.ReplaceAll(name, "_", "")
}
