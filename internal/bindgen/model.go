package bindgen

import "strings"

// Header is the subset of a C header the generator understands, in source
// order.
type Header struct {
	Consts   []*Const
	Enums    []*Enum
	Typedefs []*Typedef
	Structs  []*Struct
	Funcs    []*Func
}

// CType is a C type reduced to its base name and pointer depth.
type CType struct {
	Name string
	Ptr  int
}

func (t CType) String() string { return t.Name + strings.Repeat("*", t.Ptr) }

// Value is an evaluated constant expression.
type Value struct {
	Float bool
	Int   int64
	Flt   float64
	// Expr is a Go expression used instead of the numeric value, for limits
	// such as FLT_MAX.
	Expr string
	Hex  bool
}

// Const is a #define, a static const, or a struct-scoped static const.
type Const struct {
	Name  string
	Type  CType
	Value Value
	// Scope names the struct that declared the constant, if any.
	Scope string
}

type Enum struct {
	Name    string
	Members []*Enumerator
}

type Enumerator struct {
	Name  string
	Value int64
}

// Typedef is a type alias or a function pointer type.
type Typedef struct {
	Name    string
	Type    CType
	FuncPtr bool
}

type Struct struct {
	Name   string
	Base   string
	Fields []*Field
}

type Field struct {
	Name string
	Type CType
	// Len is the array length, zero for scalars.
	Len int
}

type Func struct {
	Name   string
	Ret    CType
	Params []*Param
}

type Param struct {
	Name string
	Type CType
}

func (h *Header) enum(name string) *Enum {
	for _, e := range h.Enums {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func (h *Header) typedef(name string) *Typedef {
	for _, t := range h.Typedefs {
		if t.Name == name {
			return t
		}
	}
	return nil
}

func (h *Header) structure(name string) *Struct {
	for _, s := range h.Structs {
		if s.Name == name {
			return s
		}
	}
	return nil
}
