package internalcheck

import (
	"fmt"
	"go/types"
	"regexp"
	"strings"
	"testing"
)

// blocked matches the SDK subsystems the binding leaves out: text display,
// weather and string insertion.
var blocked = regexp.MustCompile(`(?i)(^|_)(text|weather|metar|thermal|cloud_state)|InsertString|RetrieveString`)

func TestBlockedSymbolsAreNotGenerated(t *testing.T) {
	var findings []string

	for _, pkg := range load(t, bindingsPkg) {
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			if blocked.MatchString(name) {
				findings = append(findings, "declaration "+name)
			}
		}

		api, ok := scope.Lookup("API").Type().Underlying().(*types.Interface)
		if !ok {
			t.Fatal("bindings.API is not an interface")
		}
		if api.NumMethods() < 60 {
			t.Fatalf("bindings.API has only %d methods", api.NumMethods())
		}
		for i := range api.NumMethods() {
			if name := api.Method(i).Name(); blocked.MatchString(name) {
				findings = append(findings, "API method "+name)
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("blocked SDK symbols generated:\n%s", strings.Join(findings, "\n"))
	}
}

func TestBlockedSymbolsAreNotExposed(t *testing.T) {
	var findings []string

	for _, pkg := range load(t, simconnectPkg) {
		for id, obj := range pkg.TypesInfo.Uses {
			if obj.Pkg() == nil || obj.Pkg().Path() != bindingsPkg {
				continue
			}
			if blocked.MatchString(obj.Name()) {
				findings = append(findings, fmt.Sprintf("%s: uses %s", pkg.Fset.Position(id.Pos()), obj.Name()))
			}
		}
		for _, name := range pkg.Types.Scope().Names() {
			if blocked.MatchString(name) {
				findings = append(findings, "declaration "+name)
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("blocked SDK symbols exposed:\n%s", strings.Join(findings, "\n"))
	}
}
