package internalcheck

import (
	"fmt"
	"go/ast"
	"go/types"
	"strings"
	"testing"
)

// TestStringsAreConverted requires every char* argument handed to the SDK to
// come straight from cString, which rejects embedded NUL bytes.
func TestStringsAreConverted(t *testing.T) {
	var findings []string
	strArgs := 0

	for _, pkg := range load(t, simconnectPkg) {
		info := pkg.TypesInfo
		for _, file := range pkg.Syntax {
			ast.Inspect(file, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return true
				}
				fn, ok := apiMethod(info, call)
				if !ok {
					return true
				}
				for _, arg := range call.Args {
					if !isBytePtr(info.TypeOf(arg)) {
						continue
					}
					strArgs++
					if inner, ok := arg.(*ast.CallExpr); ok && isCall(info, inner, simconnectPkg, "cString") {
						continue
					}
					pos := pkg.Fset.Position(arg.Pos())
					findings = append(findings, fmt.Sprintf("%s: %s string argument bypasses cString", pos, fn.Name()))
				}
				return true
			})
		}
	}

	if strArgs == 0 {
		t.Fatal("no string arguments found")
	}
	if len(findings) > 0 {
		t.Fatalf("unchecked strings:\n%s", strings.Join(findings, "\n"))
	}
}

func isBytePtr(typ types.Type) bool {
	ptr, ok := typ.(*types.Pointer)
	if !ok {
		return false
	}
	basic, ok := ptr.Elem().(*types.Basic)
	return ok && basic.Kind() == types.Byte
}
