package bindgen

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// builtinValues are limits the header takes from the Windows and C headers.
var builtinValues = map[string]Value{
	"DWORD_MAX": {Int: math.MaxUint32, Hex: true},
	"UINT_MAX":  {Int: math.MaxUint32, Hex: true},
	"INT_MAX":   {Int: math.MaxInt32},
	"MAX_PATH":  {Int: 260},
	"TRUE":      {Int: 1},
	"FALSE":     {Int: 0},
	"FLT_MAX":   {Float: true, Flt: math.MaxFloat32, Expr: "math.MaxFloat32"},
	"DBL_MAX":   {Float: true, Flt: math.MaxFloat64, Expr: "math.MaxFloat64"},
}

// evaluator computes constant expressions over integer and float literals,
// previously declared constants, casts, and the usual arithmetic and bitwise
// operators.
type evaluator struct {
	toks  []token
	pos   int
	names map[string]Value
	types func(string) bool
}

func evaluate(toks []token, names map[string]Value, isType func(string) bool) (Value, error) {
	if len(toks) == 0 {
		return Value{}, fmt.Errorf("empty expression")
	}
	e := &evaluator{toks: toks, names: names, types: isType}
	v, err := e.binary(0)
	if err != nil {
		return Value{}, err
	}
	if e.pos != len(e.toks) {
		return Value{}, fmt.Errorf("line %d: unexpected %q in constant expression", e.toks[e.pos].line, e.toks[e.pos].text)
	}
	return v, nil
}

var precedence = map[string]int{
	"|": 1, "^": 2, "&": 3,
	"<<": 4, ">>": 4,
	"+": 5, "-": 5,
	"*": 6, "/": 6, "%": 6,
}

func (e *evaluator) peek() (token, bool) {
	if e.pos >= len(e.toks) {
		return token{}, false
	}
	return e.toks[e.pos], true
}

func (e *evaluator) binary(minPrec int) (Value, error) {
	lhs, err := e.unary()
	if err != nil {
		return Value{}, err
	}
	for {
		t, ok := e.peek()
		if !ok || t.kind != tokPunct {
			return lhs, nil
		}
		prec, isOp := precedence[t.text]
		if !isOp || prec <= minPrec {
			return lhs, nil
		}
		e.pos++
		rhs, err := e.binary(prec)
		if err != nil {
			return Value{}, err
		}
		if lhs, err = apply(t.text, lhs, rhs); err != nil {
			return Value{}, fmt.Errorf("line %d: %w", t.line, err)
		}
	}
}

func (e *evaluator) unary() (Value, error) {
	t, ok := e.peek()
	if !ok {
		return Value{}, fmt.Errorf("unexpected end of constant expression")
	}
	switch {
	case t.is("-"), t.is("+"), t.is("~"):
		e.pos++
		v, err := e.unary()
		if err != nil {
			return Value{}, err
		}
		switch t.text {
		case "-":
			if v.Expr != "" {
				v.Expr = "-" + v.Expr
			}
			v.Int, v.Flt = -v.Int, -v.Flt
		case "~":
			if v.Float {
				return Value{}, fmt.Errorf("line %d: ~ applied to float", t.line)
			}
			v.Int = ^v.Int
			v.Hex = true
		}
		return v, nil
	case t.is("("):
		if e.isCast() {
			for !e.toks[e.pos].is(")") {
				e.pos++
			}
			e.pos++
			return e.unary()
		}
		e.pos++
		v, err := e.binary(0)
		if err != nil {
			return Value{}, err
		}
		if t, ok := e.peek(); !ok || !t.is(")") {
			return Value{}, fmt.Errorf("line %d: missing ) in constant expression", t.line)
		}
		e.pos++
		return v, nil
	}
	return e.primary()
}

// isCast reports whether the parenthesis at pos opens a type cast.
func (e *evaluator) isCast() bool {
	i := e.pos + 1
	seen := false
	for ; i < len(e.toks) && !e.toks[i].is(")"); i++ {
		t := e.toks[i]
		switch {
		case t.kind == tokIdent && (e.types(t.text) || t.text == "const" || t.text == "unsigned" || t.text == "signed"):
			seen = true
		case t.is("*"):
		default:
			return false
		}
	}
	return seen && i < len(e.toks)-1
}

func (e *evaluator) primary() (Value, error) {
	t := e.toks[e.pos]
	e.pos++
	switch t.kind {
	case tokNumber:
		return parseNumber(t)
	case tokChar:
		s, err := strconv.Unquote(t.text)
		if err != nil || len(s) != 1 {
			return Value{}, fmt.Errorf("line %d: bad character literal %s", t.line, t.text)
		}
		return Value{Int: int64(s[0])}, nil
	case tokIdent:
		if v, ok := e.names[t.text]; ok {
			return v, nil
		}
		if v, ok := builtinValues[t.text]; ok {
			return v, nil
		}
		return Value{}, fmt.Errorf("line %d: unknown identifier %s in constant expression", t.line, t.text)
	}
	return Value{}, fmt.Errorf("line %d: unexpected %q in constant expression", t.line, t.text)
}

func parseNumber(t token) (Value, error) {
	text := t.text
	lower := strings.ToLower(text)
	isHex := strings.HasPrefix(lower, "0x")
	if !isHex && (strings.ContainsAny(lower, ".e") || strings.HasSuffix(lower, "f")) {
		f, err := strconv.ParseFloat(strings.TrimSuffix(lower, "f"), 64)
		if err != nil {
			return Value{}, fmt.Errorf("line %d: bad float literal %s", t.line, text)
		}
		return Value{Float: true, Flt: f}, nil
	}
	lower = strings.TrimRight(lower, "ul")
	u, err := strconv.ParseUint(lower, 0, 64)
	if err != nil {
		return Value{}, fmt.Errorf("line %d: bad integer literal %s", t.line, text)
	}
	return Value{Int: int64(u), Hex: isHex}, nil
}

func apply(op string, a, b Value) (Value, error) {
	if a.Float || b.Float {
		x, y := a.asFloat(), b.asFloat()
		switch op {
		case "+":
			return Value{Float: true, Flt: x + y}, nil
		case "-":
			return Value{Float: true, Flt: x - y}, nil
		case "*":
			return Value{Float: true, Flt: x * y}, nil
		case "/":
			if y == 0 {
				return Value{}, fmt.Errorf("division by zero")
			}
			return Value{Float: true, Flt: x / y}, nil
		}
		return Value{}, fmt.Errorf("operator %s applied to float", op)
	}
	v := Value{Hex: a.Hex || b.Hex}
	switch op {
	case "|":
		v.Int = a.Int | b.Int
	case "^":
		v.Int = a.Int ^ b.Int
	case "&":
		v.Int = a.Int & b.Int
	case "<<":
		v.Int = a.Int << uint(b.Int)
	case ">>":
		v.Int = a.Int >> uint(b.Int)
	case "+":
		v.Int = a.Int + b.Int
	case "-":
		v.Int = a.Int - b.Int
	case "*":
		v.Int = a.Int * b.Int
	case "/", "%":
		if b.Int == 0 {
			return Value{}, fmt.Errorf("division by zero")
		}
		if op == "/" {
			v.Int = a.Int / b.Int
		} else {
			v.Int = a.Int % b.Int
		}
	}
	return v, nil
}

func (v Value) asFloat() float64 {
	if v.Float {
		return v.Flt
	}
	return float64(v.Int)
}
