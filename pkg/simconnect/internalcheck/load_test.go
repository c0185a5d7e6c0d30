package internalcheck

import (
	"go/ast"
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const (
	simconnectPkg = "github.com/flightlink/simconnect-go/pkg/simconnect"
	bindingsPkg   = "github.com/flightlink/simconnect-go/internal/bindings"
)

func load(t *testing.T, path string) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}
	pkgs, err := packages.Load(cfg, path)
	if err != nil {
		t.Fatalf("load package: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		t.Fatalf("package %s has errors", path)
	}
	return pkgs
}

// apiMethod returns the bindings.API method called by call, if any.
func apiMethod(info *types.Info, call *ast.CallExpr) (*types.Func, bool) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return nil, false
	}
	fn, ok := info.Uses[sel.Sel].(*types.Func)
	if !ok {
		return nil, false
	}
	return fn, strings.HasPrefix(fn.FullName(), "("+bindingsPkg+".API).")
}

// isCall reports whether call invokes the function or method name declared
// in package path.
func isCall(info *types.Info, call *ast.CallExpr, path, name string) bool {
	var id *ast.Ident
	switch fun := call.Fun.(type) {
	case *ast.Ident:
		id = fun
	case *ast.SelectorExpr:
		id = fun.Sel
	default:
		return false
	}
	obj := info.Uses[id]
	return obj != nil && obj.Pkg() != nil && obj.Pkg().Path() == path && obj.Name() == name
}
