package bindgen

import (
	"fmt"
	"strings"
)

// callingConventions are dropped from declarations.
var callingConventions = map[string]bool{
	"__stdcall": true, "__cdecl": true, "CALLBACK": true, "WINAPI": true, "__declspec": true,
}

// qualifiers carry no layout information.
var qualifiers = map[string]bool{
	"static": true, "const": true, "volatile": true, "struct": true, "enum": true, "class": true, "union": true,
}

type parser struct {
	toks  []token
	pos   int
	h     *Header
	names map[string]Value
}

// Parse scans and parses a SimConnect-style C header.
func Parse(src []byte) (*Header, error) {
	toks, defines, err := scan(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, h: &Header{}, names: map[string]Value{}}

	for _, d := range defines {
		v, err := evaluate(d.body, p.names, p.isType)
		if err != nil {
			continue
		}
		typ := CType{Name: "int"}
		if v.Float {
			typ = CType{Name: "double"}
		}
		p.addConst(&Const{Name: d.name, Type: typ, Value: v})
	}

	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.h, nil
}

func (p *parser) parse() error {
	for p.pos < len(p.toks) {
		t := p.toks[p.pos]
		var err error
		switch {
		case t.is(";"), t.is("}"):
			p.pos++
		case t.kind == tokIdent && t.text == "typedef":
			err = p.typedef()
		case t.kind == tokIdent && t.text == "static":
			err = p.staticConst("")
		case t.kind == tokIdent && t.text == "enum":
			err = p.enum()
		case t.kind == tokIdent && (t.text == "struct" || t.text == "class"):
			err = p.structure()
		case t.kind == tokIdent && t.text == "extern":
			p.pos++
			if p.pos < len(p.toks) && p.toks[p.pos].kind == tokString {
				p.pos++
			}
			if p.pos < len(p.toks) && p.toks[p.pos].is("{") {
				p.pos++
			}
		case t.kind == tokIdent && t.text == "namespace":
			for p.pos < len(p.toks) && !p.toks[p.pos].is("{") {
				p.pos++
			}
			p.pos++
		default:
			err = p.declaration(p.statement())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// statement consumes tokens up to the next top-level semicolon. A braced
// body ends the statement after its closing brace and optional semicolon.
func (p *parser) statement() []token {
	start, depth := p.pos, 0
	for p.pos < len(p.toks) {
		t := p.toks[p.pos]
		p.pos++
		switch {
		case t.is("{"):
			depth++
		case t.is("}"):
			depth--
			if depth == 0 {
				if p.pos < len(p.toks) && p.toks[p.pos].is(";") {
					p.pos++
				}
				return p.toks[start:p.pos]
			}
		case t.is(";") && depth == 0:
			return p.toks[start : p.pos-1]
		}
	}
	return p.toks[start:]
}

func (p *parser) typedef() error {
	p.pos++
	stmt := p.statement()
	if len(stmt) == 0 {
		return nil
	}
	if containsPunct(stmt, "{") {
		return nil
	}
	// typedef RET (CONV *Name)(PARAMS);
	if idx := indexPunct(stmt, "("); idx >= 0 && idx+1 < len(stmt) {
		for i := idx + 1; i < len(stmt) && !stmt[i].is(")"); i++ {
			if stmt[i].is("*") && i+1 < len(stmt) && stmt[i+1].kind == tokIdent {
				p.h.Typedefs = append(p.h.Typedefs, &Typedef{Name: stmt[i+1].text, FuncPtr: true})
				return nil
			}
		}
	}
	typ, name, arr, err := p.decl(stmt)
	if err != nil {
		return err
	}
	if arr > 0 || name == "" || (name == typ.Name && typ.Ptr == 0) {
		return nil
	}
	p.h.Typedefs = append(p.h.Typedefs, &Typedef{Name: name, Type: typ})
	return nil
}

func (p *parser) staticConst(scope string) error {
	stmt := p.statement()
	eq := indexPunct(stmt, "=")
	if eq < 0 {
		return nil
	}
	typ, name, _, err := p.decl(stmt[:eq])
	if err != nil {
		return err
	}
	v, err := evaluate(stmt[eq+1:], p.names, p.isType)
	if err != nil {
		return fmt.Errorf("constant %s: %w", name, err)
	}
	p.addConst(&Const{Name: name, Type: typ, Value: v, Scope: scope})
	return nil
}

func (p *parser) addConst(c *Const) {
	for _, existing := range p.h.Consts {
		if existing.Name == c.Name {
			existing.Value = c.Value
			p.names[c.Name] = c.Value
			return
		}
	}
	p.h.Consts = append(p.h.Consts, c)
	p.names[c.Name] = c.Value
}

func (p *parser) enum() error {
	stmt := p.statement()
	open := indexPunct(stmt, "{")
	if open < 0 || open < 2 || stmt[1].kind != tokIdent {
		return nil
	}
	e := &Enum{Name: stmt[1].text}
	body := stmt[open+1:]
	if end := lastPunct(body, "}"); end >= 0 {
		body = body[:end]
	}

	var next int64
	for _, item := range splitTop(body, ",") {
		if len(item) == 0 {
			continue
		}
		if item[0].kind != tokIdent {
			return fmt.Errorf("line %d: malformed enumerator in %s", item[0].line, e.Name)
		}
		val := next
		if len(item) > 2 && item[1].is("=") {
			v, err := evaluate(item[2:], p.names, p.isType)
			if err != nil {
				return fmt.Errorf("enumerator %s: %w", item[0].text, err)
			}
			val = v.Int
		}
		e.Members = append(e.Members, &Enumerator{Name: item[0].text, Value: val})
		p.names[item[0].text] = Value{Int: val}
		next = val + 1
	}
	p.h.Enums = append(p.h.Enums, e)
	return nil
}

func (p *parser) structure() error {
	start := p.pos
	stmt := p.statement()
	open := indexPunct(stmt, "{")
	if open < 0 || len(stmt) < 2 || stmt[1].kind != tokIdent {
		// forward declaration or anonymous struct
		return nil
	}
	s := &Struct{Name: stmt[1].text}
	for i := 2; i < open; i++ {
		if stmt[i].is(":") {
			for j := i + 1; j < open; j++ {
				if stmt[j].kind == tokIdent && stmt[j].text != "public" && stmt[j].text != "private" {
					s.Base = stmt[j].text
					break
				}
			}
		}
	}

	// Re-parse the members with a nested parser over the body so that
	// struct-scoped static constants join the global constant table.
	body := stmt[open+1:]
	if end := lastPunct(body, "}"); end >= 0 {
		body = body[:end]
	}
	sub := &parser{toks: body, h: p.h, names: p.names}
	for sub.pos < len(sub.toks) {
		t := sub.toks[sub.pos]
		if t.is(";") {
			sub.pos++
			continue
		}
		if t.kind == tokIdent && t.text == "static" {
			if err := sub.staticConst(s.Name); err != nil {
				return err
			}
			continue
		}
		member := sub.statement()
		if containsPunct(member, "(") {
			// methods and macro leftovers carry no storage
			continue
		}
		fields, err := p.fields(member)
		if err != nil {
			return fmt.Errorf("struct %s (line %d): %w", s.Name, p.toks[start].line, err)
		}
		s.Fields = append(s.Fields, fields...)
	}
	p.h.Structs = append(p.h.Structs, s)
	return nil
}

// fields handles "TYPE a, b[4];" member declarations.
func (p *parser) fields(member []token) ([]*Field, error) {
	parts := splitTop(member, ",")
	typ, name, arr, err := p.decl(parts[0])
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, nil
	}
	out := []*Field{{Name: name, Type: typ, Len: arr}}
	for _, extra := range parts[1:] {
		decl := append(append([]token{}, parts[0][:len(parts[0])-declaratorLen(parts[0])]...), extra...)
		t, n, a, err := p.decl(decl)
		if err != nil {
			return nil, err
		}
		out = append(out, &Field{Name: n, Type: t, Len: a})
	}
	return out, nil
}

// declaratorLen counts the trailing tokens of a declaration that belong to
// the declarator (pointers, name, array suffix) rather than the type.
func declaratorLen(decl []token) int {
	n := 0
	i := len(decl) - 1
	if i >= 0 && decl[i].is("]") {
		for i >= 0 && !decl[i].is("[") {
			i--
			n++
		}
		i--
		n++
	}
	if i >= 0 && decl[i].kind == tokIdent {
		n++
		i--
	}
	for i >= 0 && decl[i].is("*") {
		n++
		i--
	}
	return n
}

func (p *parser) declaration(stmt []token) error {
	open := indexPunct(stmt, "(")
	if open < 1 || stmt[open-1].kind != tokIdent || containsPunct(stmt[:open], "=") {
		return nil
	}
	name := stmt[open-1].text
	retToks := make([]token, 0, open)
	for _, t := range stmt[:open-1] {
		if t.kind == tokIdent && (callingConventions[t.text] || t.text == "extern" || t.text == "inline") {
			continue
		}
		if t.kind == tokString {
			continue
		}
		retToks = append(retToks, t)
	}
	if len(retToks) == 0 {
		return nil
	}
	ret, _, _, err := p.decl(append(retToks, token{kind: tokIdent, text: "_"}))
	if err != nil {
		return fmt.Errorf("function %s: %w", name, err)
	}

	close := matchParen(stmt, open)
	if close < 0 {
		return fmt.Errorf("function %s: unbalanced parameter list", name)
	}
	f := &Func{Name: name, Ret: ret}
	params := stmt[open+1 : close]
	if len(params) == 1 && params[0].kind == tokIdent && params[0].text == "void" {
		params = nil
	}
	for i, raw := range splitTop(params, ",") {
		if len(raw) == 0 {
			continue
		}
		if eq := indexPunct(raw, "="); eq >= 0 {
			raw = raw[:eq]
		}
		typ, pname, arr, err := p.decl(raw)
		if err != nil {
			return fmt.Errorf("function %s: %w", name, err)
		}
		if arr > 0 {
			typ.Ptr++
		}
		if pname == "" {
			pname = fmt.Sprintf("arg%d", i)
		}
		f.Params = append(f.Params, &Param{Name: pname, Type: typ})
	}
	p.h.Funcs = append(p.h.Funcs, f)
	return nil
}

// decl splits "const TYPE * name[N]" into its type, name and array length.
// Declarations with a single type word and no name return an empty name.
func (p *parser) decl(toks []token) (CType, string, int, error) {
	arr := 0
	if n := len(toks); n > 0 && toks[n-1].is("]") {
		open := lastPunct(toks, "[")
		if open < 0 {
			return CType{}, "", 0, fmt.Errorf("line %d: malformed array declarator", toks[0].line)
		}
		v, err := evaluate(toks[open+1:n-1], p.names, p.isType)
		if err != nil {
			return CType{}, "", 0, err
		}
		arr = int(v.Int)
		toks = toks[:open]
	}

	var (
		words []string
		ptr   int
	)
	for _, t := range toks {
		switch {
		case t.is("*"), t.is("&"):
			ptr++
		case t.kind == tokIdent && qualifiers[t.text]:
		case t.kind == tokIdent && callingConventions[t.text]:
		case t.kind == tokIdent:
			words = append(words, t.text)
		}
	}
	if len(words) == 0 {
		return CType{}, "", 0, fmt.Errorf("missing type in declaration")
	}

	name := ""
	if len(words) > 1 && !isTypeModifier(words[len(words)-1]) {
		name = words[len(words)-1]
		words = words[:len(words)-1]
	}
	typ := CType{Name: strings.Join(words, " "), Ptr: ptr}
	switch typ.Name {
	case "LPCSTR", "LPSTR":
		typ = CType{Name: "char", Ptr: ptr + 1}
	case "LPVOID":
		typ = CType{Name: "void", Ptr: ptr + 1}
	case "unsigned", "signed":
		typ.Name += " int"
	}
	return typ, name, arr, nil
}

func isTypeModifier(w string) bool {
	switch w {
	case "int", "long", "short", "char", "unsigned", "signed", "__int64":
		return true
	}
	return false
}

func (p *parser) isType(name string) bool {
	if _, ok := goBuiltins[name]; ok {
		return true
	}
	return p.h.typedef(name) != nil || p.h.enum(name) != nil || p.h.structure(name) != nil
}

func splitTop(toks []token, sep string) [][]token {
	var (
		out   [][]token
		cur   []token
		depth int
	)
	for _, t := range toks {
		switch {
		case t.is("(") || t.is("[") || t.is("{"):
			depth++
		case t.is(")") || t.is("]") || t.is("}"):
			depth--
		case t.is(sep) && depth == 0:
			out = append(out, cur)
			cur = nil
			continue
		}
		cur = append(cur, t)
	}
	return append(out, cur)
}

func matchParen(toks []token, open int) int {
	depth := 0
	for i := open; i < len(toks); i++ {
		switch {
		case toks[i].is("("):
			depth++
		case toks[i].is(")"):
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func indexPunct(toks []token, text string) int {
	for i, t := range toks {
		if t.is(text) {
			return i
		}
	}
	return -1
}

func lastPunct(toks []token, text string) int {
	for i := len(toks) - 1; i >= 0; i-- {
		if toks[i].is(text) {
			return i
		}
	}
	return -1
}

func containsPunct(toks []token, text string) bool { return indexPunct(toks, text) >= 0 }
