package bindgen

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokNumber
	tokString
	tokChar
	tokPunct
)

type token struct {
	kind tokenKind
	text string
	line int
}

func (t token) is(text string) bool { return t.kind == tokPunct && t.text == text }

type macro struct {
	fn     bool
	params []string
	body   []token
}

// define is an object-like macro with a constant body, kept so it can be
// emitted as a Go constant.
type define struct {
	name string
	body []token
	line int
}

// preprocessor expands the header's macros while tokenizing it. Conditional
// directives are ignored, so every branch is scanned and a later #define of
// the same name wins.
type preprocessor struct {
	macros  map[string]*macro
	defines []define
	out     []token
	pending []token
}

// scan tokenizes a C header, expanding object- and function-like macros.
func scan(src []byte) ([]token, []define, error) {
	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	text, err := stripComments(text)
	if err != nil {
		return nil, nil, err
	}

	p := &preprocessor{macros: map[string]*macro{}}
	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		lineNo := i + 1
		line := lines[i]
		for strings.HasSuffix(strings.TrimRight(line, " \t"), `\`) && i+1 < len(lines) {
			line = strings.TrimSuffix(strings.TrimRight(line, " \t"), `\`) + " " + lines[i+1]
			i++
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			if err := p.directive(strings.TrimSpace(trimmed[1:]), lineNo); err != nil {
				return nil, nil, err
			}
			continue
		}

		toks, err := tokenize(line, lineNo)
		if err != nil {
			return nil, nil, err
		}
		p.pending = append(p.pending, toks...)
	}
	p.flush()
	return p.out, p.defines, nil
}

func (p *preprocessor) flush() {
	if len(p.pending) == 0 {
		return
	}
	p.out = append(p.out, p.expand(p.pending, map[string]bool{})...)
	p.pending = nil
}

func (p *preprocessor) directive(d string, line int) error {
	switch {
	case strings.HasPrefix(d, "define"):
		p.flush()
		return p.define(strings.TrimSpace(strings.TrimPrefix(d, "define")), line)
	case strings.HasPrefix(d, "undef"):
		p.flush()
		delete(p.macros, strings.TrimSpace(strings.TrimPrefix(d, "undef")))
	}
	return nil
}

func (p *preprocessor) define(d string, line int) error {
	toks, err := tokenize(d, line)
	if err != nil {
		return err
	}
	if len(toks) == 0 || toks[0].kind != tokIdent {
		return fmt.Errorf("line %d: malformed #define", line)
	}
	name := toks[0].text
	m := &macro{}

	rest := toks[1:]
	// A function-like macro has its parameter list glued to the name.
	if len(rest) > 0 && rest[0].is("(") && strings.HasPrefix(d[len(name):], "(") {
		m.fn = true
		i := 1
		for ; i < len(rest) && !rest[i].is(")"); i++ {
			if rest[i].kind == tokIdent {
				m.params = append(m.params, rest[i].text)
			}
		}
		if i == len(rest) {
			return fmt.Errorf("line %d: unterminated parameter list in macro %s", line, name)
		}
		rest = rest[i+1:]
	}
	m.body = rest
	p.macros[name] = m

	if !m.fn && len(rest) > 0 && p.isConstantBody(rest) {
		p.defines = append(p.defines, define{name: name, body: rest, line: line})
	}
	return nil
}

var constantOps = map[string]bool{
	"(": true, ")": true, "-": true, "+": true, "~": true, "*": true, "/": true,
	"%": true, "|": true, "&": true, "^": true, "<<": true, ">>": true,
}

// isConstantBody reports whether a macro body is an arithmetic expression
// over literals and previously defined constant macros.
func (p *preprocessor) isConstantBody(body []token) bool {
	operand := false
	for _, t := range body {
		switch t.kind {
		case tokNumber:
			operand = true
		case tokIdent:
			if !p.isConstantMacro(t.text) {
				return false
			}
			operand = true
		case tokPunct:
			if !constantOps[t.text] {
				return false
			}
		default:
			return false
		}
	}
	return operand
}

func (p *preprocessor) isConstantMacro(name string) bool {
	for _, d := range p.defines {
		if d.name == name {
			return true
		}
	}
	return false
}

func (p *preprocessor) expand(in []token, active map[string]bool) []token {
	out := make([]token, 0, len(in))
	for i := 0; i < len(in); i++ {
		t := in[i]
		m, ok := p.macros[t.text]
		if t.kind != tokIdent || !ok || active[t.text] {
			out = append(out, t)
			continue
		}
		if !m.fn {
			active[t.text] = true
			out = append(out, p.expand(m.body, active)...)
			delete(active, t.text)
			continue
		}
		if i+1 >= len(in) || !in[i+1].is("(") {
			out = append(out, t)
			continue
		}
		args, next, ok := collectArgs(in, i+1)
		if !ok {
			out = append(out, t)
			continue
		}
		body := substitute(m, args)
		active[t.text] = true
		out = append(out, p.expand(body, active)...)
		delete(active, t.text)
		i = next - 1
	}
	return out
}

// collectArgs splits a parenthesized macro argument list starting at open.
// It returns the index just past the closing parenthesis.
func collectArgs(in []token, open int) ([][]token, int, bool) {
	var (
		args  [][]token
		cur   []token
		depth int
	)
	for i := open; i < len(in); i++ {
		t := in[i]
		switch {
		case t.is("("):
			depth++
			if depth == 1 {
				continue
			}
		case t.is(")"):
			depth--
			if depth == 0 {
				args = append(args, cur)
				return args, i + 1, true
			}
		case t.is(",") && depth == 1:
			args = append(args, cur)
			cur = nil
			continue
		}
		cur = append(cur, t)
	}
	return nil, 0, false
}

func substitute(m *macro, args [][]token) []token {
	out := make([]token, 0, len(m.body))
	for _, t := range m.body {
		if t.kind == tokIdent {
			if idx := indexOf(m.params, t.text); idx >= 0 {
				if idx < len(args) {
					out = append(out, args[idx]...)
				}
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

// stripComments replaces comments with whitespace, keeping newlines so line
// numbers stay stable.
func stripComments(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\'':
			j := i + 1
			for j < len(s) && s[j] != c && s[j] != '\n' {
				if s[j] == '\\' {
					j++
				}
				j++
			}
			if j >= len(s) {
				j = len(s) - 1
			}
			b.WriteString(s[i : j+1])
			i = j
		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			for i < len(s) && s[i] != '\n' {
				i++
			}
			if i < len(s) {
				b.WriteByte('\n')
			}
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				return "", fmt.Errorf("unterminated block comment")
			}
			comment := s[i : i+2+end+2]
			b.WriteByte(' ')
			b.WriteString(strings.Repeat("\n", strings.Count(comment, "\n")))
			i += len(comment) - 1
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

var punct2 = []string{"<<", ">>", "::", "->", "==", "!=", "<=", ">=", "&&", "||"}

func tokenize(line string, lineNo int) ([]token, error) {
	var toks []token
	for i := 0; i < len(line); {
		c := line[i]
		switch {
		case c == ' ' || c == '\t' || c == '\f' || c == '\v':
			i++
		case isIdentStart(c):
			j := i + 1
			for j < len(line) && isIdentPart(line[j]) {
				j++
			}
			toks = append(toks, token{kind: tokIdent, text: line[i:j], line: lineNo})
			i = j
		case isDigit(c) || (c == '.' && i+1 < len(line) && isDigit(line[i+1])):
			j := i + 1
			for j < len(line) && (isIdentPart(line[j]) || line[j] == '.' ||
				((line[j] == '+' || line[j] == '-') && (line[j-1] == 'e' || line[j-1] == 'E') && !strings.HasPrefix(line[i:], "0x"))) {
				j++
			}
			toks = append(toks, token{kind: tokNumber, text: line[i:j], line: lineNo})
			i = j
		case c == '"' || c == '\'':
			j := i + 1
			for j < len(line) && line[j] != c {
				if line[j] == '\\' {
					j++
				}
				j++
			}
			if j >= len(line) {
				return nil, fmt.Errorf("line %d: unterminated literal", lineNo)
			}
			kind := tokString
			if c == '\'' {
				kind = tokChar
			}
			toks = append(toks, token{kind: kind, text: line[i : j+1], line: lineNo})
			i = j + 1
		default:
			text := string(c)
			for _, p := range punct2 {
				if strings.HasPrefix(line[i:], p) {
					text = p
					break
				}
			}
			toks = append(toks, token{kind: tokPunct, text: text, line: lineNo})
			i += len(text)
		}
	}
	return toks, nil
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
