package bindgen

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"
)

// File is one generated Go source file.
type File struct {
	Name string
	Src  []byte
}

const generatedHeader = "// Code generated by simconnect-bindgen. DO NOT EDIT.\n\n"

type emitter struct {
	cfg *Config
	sel *selection
	lay *layouter
	buf bytes.Buffer
}

// importPaths are the packages generated code may reference, keyed by the
// selector prefix that marks a use.
var importPaths = map[string]string{
	"math.":    "math",
	"syscall.": "syscall",
	"unsafe.":  "unsafe",
	"windows.": "golang.org/x/sys/windows",
}

func (e *emitter) printf(format string, args ...any) {
	fmt.Fprintf(&e.buf, format, args...)
}

func (e *emitter) reset() { e.buf.Reset() }

// finish prepends the package clause and import block, then formats.
func (e *emitter) finish(name, constraint string) (File, error) {
	var out bytes.Buffer
	out.WriteString(generatedHeader)
	if constraint != "" {
		fmt.Fprintf(&out, "//go:build %s\n\n", constraint)
	}
	fmt.Fprintf(&out, "package %s\n\n", e.cfg.Package)
	var paths []string
	for sel, path := range importPaths {
		if bytes.Contains(e.buf.Bytes(), []byte(sel)) {
			paths = append(paths, path)
		}
	}
	switch {
	case len(paths) == 1:
		fmt.Fprintf(&out, "import %q\n\n", paths[0])
	case len(paths) > 1:
		sort.Strings(paths)
		out.WriteString("import (\n")
		for _, p := range paths {
			fmt.Fprintf(&out, "\t%q\n", p)
		}
		out.WriteString(")\n\n")
	}
	out.Write(e.buf.Bytes())

	src, err := imports.Process(name, out.Bytes(), &imports.Options{
		FormatOnly: true,
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
	})
	if err != nil {
		return File{}, fmt.Errorf("format %s: %w", name, err)
	}
	return File{Name: name, Src: src}, nil
}

// emitTypes writes constants, enums, typedefs, and structs.
func (e *emitter) emitTypes() (File, error) {
	e.reset()
	h := e.sel.h

	if len(e.sel.consts) > 0 {
		e.printf("const (\n")
		for _, c := range e.sel.consts {
			typ := ""
			if _, ok := goBuiltins[c.Type.Name]; !ok && c.Type.Ptr == 0 {
				typ = " " + c.Type.Name
			}
			e.printf("\t%s%s = %s\n", c.Name, typ, e.literal(c.Value, e.unsigned(c.Type)))
		}
		e.printf(")\n\n")
	}

	for _, td := range h.Typedefs {
		if !e.sel.types[td.Name] {
			continue
		}
		if td.FuncPtr {
			e.printf("// %s is the address of a native callback.\n", td.Name)
			e.printf("type %s uintptr\n\n", td.Name)
			continue
		}
		expr, _, _, err := e.lay.scalar(td.Type)
		if err != nil {
			return File{}, fmt.Errorf("typedef %s: %w", td.Name, err)
		}
		e.printf("type %s %s\n\n", td.Name, expr)
	}

	for _, en := range e.sel.enums {
		e.printf("type %s int32\n\n", en.Name)
		if len(en.Members) == 0 {
			continue
		}
		e.printf("const (\n")
		for _, m := range en.Members {
			e.printf("\t%s %s = %d\n", m.Name, en.Name, m.Value)
		}
		e.printf(")\n\n")
	}

	if e.sel.guid {
		e.printf("// GUID matches the Windows GUID layout.\n")
		e.printf("type GUID struct {\n\tData1 uint32\n\tData2 uint16\n\tData3 uint16\n\tData4 [8]byte\n}\n\n")
	}

	for _, st := range h.Structs {
		if !e.sel.types[st.Name] {
			continue
		}
		gs, err := e.lay.layout(st.Name)
		if err != nil {
			return File{}, err
		}
		e.printf("type %s struct {\n", gs.name)
		for _, f := range gs.fields {
			switch {
			case f.name == "":
				e.printf("\t%s\n", f.typ)
			case f.ctype != "":
				e.printf("\t%s %s // %s\n", f.name, f.typ, f.ctype)
			default:
				e.printf("\t%s %s\n", f.name, f.typ)
			}
		}
		e.printf("}\n\n")
	}

	return e.finish("zsimconnect.go", "")
}

// unsigned reports whether t resolves to an unsigned 32-bit integer, so
// negative initializers wrap the way the C compiler wraps them.
func (e *emitter) unsigned(t CType) bool {
	for t.Ptr == 0 {
		if b, ok := goBuiltins[t.Name]; ok {
			return b.goType == "uint32"
		}
		td := e.sel.h.typedef(t.Name)
		if td == nil || td.FuncPtr {
			return false
		}
		t = td.Type
	}
	return false
}

func (e *emitter) literal(v Value, unsigned bool) string {
	switch {
	case v.Expr != "":
		return v.Expr
	case v.Float:
		s := strconv.FormatFloat(v.Flt, 'g', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		return s
	}
	n := v.Int
	hex := v.Hex
	if unsigned && n < 0 {
		n &= 0xFFFFFFFF
		hex = true
	}
	if hex && n >= 0 {
		return fmt.Sprintf("0x%08X", n)
	}
	return strconv.FormatInt(n, 10)
}

// goParam is a function parameter as it appears in Go and in the syscall.
type goParam struct {
	name string
	typ  string
	arg  string
}

func (e *emitter) params(f *Func) ([]goParam, error) {
	out := make([]goParam, 0, len(f.Params))
	for _, p := range f.Params {
		name := paramName(p.Name)
		if e.opaque(p) {
			out = append(out, goParam{name: name, typ: "uintptr", arg: name})
			continue
		}
		typ, arg, err := e.param(p.Type, name)
		if err != nil {
			return nil, fmt.Errorf("%s parameter %s: %w", f.Name, p.Name, err)
		}
		out = append(out, goParam{name: name, typ: typ, arg: arg})
	}
	return out, nil
}

func (e *emitter) opaque(p *Param) bool {
	if p.Type.Name != "void" || p.Type.Ptr != 1 {
		return false
	}
	for _, name := range e.cfg.Opaque {
		if name == p.Name {
			return true
		}
	}
	return false
}

// param returns the Go type of a parameter and the expression that converts
// it to a syscall argument. Floating point values travel as their bit
// pattern and structs passed by value travel by reference, as the x64
// calling convention requires for structs wider than eight bytes.
func (e *emitter) param(t CType, name string) (string, string, error) {
	if t.Ptr > 0 {
		if t.Name == "void" {
			if t.Ptr == 1 {
				return "unsafe.Pointer", fmt.Sprintf("uintptr(%s)", name), nil
			}
			return strings.Repeat("*", t.Ptr-1) + "unsafe.Pointer", fmt.Sprintf("uintptr(unsafe.Pointer(%s))", name), nil
		}
		elem, err := e.elem(t.Name)
		if err != nil {
			return "", "", err
		}
		return strings.Repeat("*", t.Ptr) + elem, fmt.Sprintf("uintptr(unsafe.Pointer(%s))", name), nil
	}

	h := e.sel.h
	if b, ok := goBuiltins[t.Name]; ok {
		switch b.goType {
		case "":
			return "", "", fmt.Errorf("void parameter")
		case "float32":
			return b.goType, fmt.Sprintf("uintptr(math.Float32bits(%s))", name), nil
		case "float64":
			return b.goType, fmt.Sprintf("uintptr(math.Float64bits(%s))", name), nil
		case "GUID":
			return b.goType, fmt.Sprintf("uintptr(unsafe.Pointer(&%s))", name), nil
		}
		return b.goType, fmt.Sprintf("uintptr(%s)", name), nil
	}
	if td := h.typedef(t.Name); td != nil {
		if td.FuncPtr {
			return t.Name, fmt.Sprintf("uintptr(%s)", name), nil
		}
		_, arg, err := e.param(td.Type, name)
		if err != nil {
			return "", "", err
		}
		if strings.Contains(arg, "Float") {
			base := goBuiltins[td.Type.Name].goType
			arg = strings.Replace(arg, "("+name+")", "("+base+"("+name+"))", 1)
		}
		return t.Name, arg, nil
	}
	if h.enum(t.Name) != nil {
		return t.Name, fmt.Sprintf("uintptr(%s)", name), nil
	}
	if h.structure(t.Name) != nil {
		gs, err := e.lay.layout(t.Name)
		if err != nil {
			return "", "", err
		}
		if gs.size <= 8 {
			return "", "", fmt.Errorf("struct %s passed by value in registers is not supported", t.Name)
		}
		return t.Name, fmt.Sprintf("uintptr(unsafe.Pointer(&%s))", name), nil
	}
	return "", "", fmt.Errorf("unknown type %s", t.Name)
}

// elem names the Go type a pointer parameter points to.
func (e *emitter) elem(name string) (string, error) {
	if b, ok := goBuiltins[name]; ok {
		return b.goType, nil
	}
	if e.sel.h.typedef(name) != nil || e.sel.h.enum(name) != nil || e.sel.h.structure(name) != nil {
		return name, nil
	}
	return "", fmt.Errorf("unknown type %s", name)
}

func (e *emitter) signature(f *Func) (string, []goParam, error) {
	if f.Ret.Name != "HRESULT" || f.Ret.Ptr != 0 {
		return "", nil, fmt.Errorf("%s: unsupported return type %s", f.Name, f.Ret)
	}
	ps, err := e.params(f)
	if err != nil {
		return "", nil, err
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.name + " " + p.typ
	}
	return fmt.Sprintf("%s(%s) HRESULT", methodName(f.Name), strings.Join(parts, ", ")), ps, nil
}

// emitAPI writes the API interface implemented by the proc table and by
// test doubles.
func (e *emitter) emitAPI() (File, error) {
	e.reset()
	e.printf("// API lists the %s entry points selected for this package. Every\n", e.cfg.DLL)
	e.printf("// method returns the native HRESULT unchanged.\n")
	e.printf("type API interface {\n")
	for _, f := range e.sel.funcs {
		sig, _, err := e.signature(f)
		if err != nil {
			return File{}, err
		}
		e.printf("\t%s\n", sig)
	}
	e.printf("}\n")
	return e.finish("zsimconnect_api.go", "")
}

// emitProcs writes the Windows proc table that resolves each entry point
// lazily and calls it through syscall.SyscallN.
func (e *emitter) emitProcs() (File, error) {
	e.reset()

	e.printf("var _ API = (*procTable)(nil)\n\n")
	e.printf("// procTable resolves entry points from %s on first use.\n", e.cfg.DLL)
	e.printf("type procTable struct {\n")
	for _, f := range e.sel.funcs {
		e.printf("\tproc%s *windows.LazyProc\n", methodName(f.Name))
	}
	e.printf("}\n\n")

	e.printf("func newProcTable(dll *windows.LazyDLL) *procTable {\n\treturn &procTable{\n")
	for _, f := range e.sel.funcs {
		e.printf("\t\tproc%s: dll.NewProc(%q),\n", methodName(f.Name), f.Name)
	}
	e.printf("\t}\n}\n\n")

	for _, f := range e.sel.funcs {
		sig, ps, err := e.signature(f)
		if err != nil {
			return File{}, err
		}
		proc := "t.proc" + methodName(f.Name)
		args := []string{proc + ".Addr()"}
		for _, p := range ps {
			args = append(args, p.arg)
		}
		e.printf("func (t *procTable) %s {\n", sig)
		e.printf("\tif %s.Find() != nil {\n\t\treturn E_NOTIMPL\n\t}\n", proc)
		e.printf("\tr0, _, _ := syscall.SyscallN(%s)\n", strings.Join(args, ", "))
		e.printf("\treturn HRESULT(int32(r0))\n}\n\n")
	}
	return e.finish("zsimconnect_windows.go", "windows && amd64")
}
