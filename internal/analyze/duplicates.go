// Package analyze runs the semantic checks that happen after resolution
// and type coercion: duplicate declarations, unresolved references, entry
// point signatures, and return-type agreement. Each check reports through
// a diag.Sink and returns whether it passed; internal/driver composes
// them in the same order the original pipeline did.
package analyze

import (
	"github.com/tay10r/pathway/internal/diag"
	"github.com/tay10r/pathway/internal/ir"
	"github.com/tay10r/pathway/internal/token"
)

// CheckDuplicates reports every module-level declaration whose name
// collides with an earlier one. Variables and functions share one flat
// namespace; function overloads are the single exception, keyed by their
// mangled name so distinct signatures of the same name coexist.
func CheckDuplicates(m *ir.Module, sink diag.Sink) bool {
	varScope := map[string]token.Location{}
	funcScope := map[string]token.Location{}      // keyed by mangled name
	funcUnmangled := map[string]token.Location{} // keyed by plain name

	ok := true

	for _, d := range m.Decls {
		switch decl := d.(type) {
		case *ir.FuncDecl:
			if orig, dup := varScope[decl.Name]; dup {
				emitDuplicate(sink, orig, decl.NameLoc)
				ok = false
				continue
			}
			mangled := decl.MangledName()
			if orig, dup := funcScope[mangled]; dup {
				emitDuplicate(sink, orig, decl.NameLoc)
				ok = false
				continue
			}
			funcUnmangled[decl.Name] = decl.NameLoc
			funcScope[mangled] = decl.NameLoc

		case *ir.VarDecl:
			if orig, dup := funcUnmangled[decl.Name]; dup {
				emitDuplicate(sink, orig, decl.NameLoc)
				ok = false
				continue
			}
			if orig, dup := varScope[decl.Name]; dup {
				emitDuplicate(sink, orig, decl.NameLoc)
				ok = false
				continue
			}
			varScope[decl.Name] = decl.NameLoc
		}
	}

	return ok
}

func emitDuplicate(sink diag.Sink, original, duplicate token.Location) {
	sink.Observe(diag.New(duplicate, diag.DuplicateDecl, "needs a different name"))
	sink.Observe(diag.New(original, diag.OriginalDecl, "first used here"))
}
