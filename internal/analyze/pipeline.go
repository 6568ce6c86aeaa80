package analyze

import (
	"github.com/tay10r/pathway/internal/diag"
	"github.com/tay10r/pathway/internal/ir"
)

// Run executes every semantic check against m in the fixed order
// duplicates, resolution, entry points, return types, reporting through
// sink. It always runs every check — even once one has failed — so a
// single invocation surfaces as many independent problems as possible,
// and reports whether every check passed.
func Run(m *ir.Module, sink diag.Sink) bool {
	ok := CheckDuplicates(m, sink)
	if !CheckResolution(m, sink) {
		ok = false
	}
	if !CheckEntryPoints(m, sink) {
		ok = false
	}
	if !CheckReturns(m, sink) {
		ok = false
	}
	return ok
}
