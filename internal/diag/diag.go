// Package diag implements PT's structured diagnostics: a Diag carries a
// source Location, a stable ID and a message; a Sink receives them
// through a BeginFile/Observe/EndFile stack so that pushed source files
// are rendered against the right slice of source text.
package diag

import "github.com/tay10r/pathway/internal/token"

// Severity is one of Note, Warning or Error.
type Severity int

const (
	Note Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Note:
		return "note"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "error"
}

// ID is a stable diagnostic identifier following a <PHASE><NNN> taxonomy,
// one block of codes per compiler pass.
type ID string

const (
	// Lexer (LEX0xx)
	IllegalChar ID = "LEX001"

	// Parser (PAR0xx)
	SyntaxError ID = "PAR001"

	// Resolver (RES0xx)
	UnresolvedVarRef  ID = "RES001"
	UnresolvedFunc    ID = "RES002"

	// Duplicates (DUP0xx)
	DuplicateDecl ID = "DUP001"
	OriginalDecl  ID = "DUP002"

	// Entry points (ENT0xx)
	MissingEntryPoint     ID = "ENT001"
	DuplicateEntryPoint   ID = "ENT002"
	EntryPointReturnType  ID = "ENT003"
	EntryPointParamCount  ID = "ENT004"
	EntryPointParamType   ID = "ENT005"

	// Return-type checks (RET0xx)
	ReturnTypeMismatch ID = "RET001"

	// Code generator fallbacks (GEN0xx)
	SwizzleFallback ID = "GEN001"

	// Internal errors
	Internal ID = "INT001"
)

var severities = map[ID]Severity{
	IllegalChar: Error,
	SyntaxError: Error,

	UnresolvedVarRef: Error,
	UnresolvedFunc:   Error,

	DuplicateDecl: Error,
	OriginalDecl:  Note,

	MissingEntryPoint:    Error,
	DuplicateEntryPoint:  Error,
	EntryPointReturnType: Error,
	EntryPointParamCount: Error,
	EntryPointParamType:  Error,

	ReturnTypeMismatch: Error,

	SwizzleFallback: Warning,

	Internal: Error,
}

// SeverityOf returns id's severity, defaulting to Error for unknown IDs.
func SeverityOf(id ID) Severity {
	if s, ok := severities[id]; ok {
		return s
	}
	return Error
}

// Diag is a single structured diagnostic.
type Diag struct {
	Location token.Location
	ID       ID
	Message  string
}

func (d Diag) Severity() Severity { return SeverityOf(d.ID) }

// New constructs a Diag from a source location, an ID and a message.
func New(loc token.Location, id ID, message string) Diag {
	return Diag{Location: loc, ID: id, Message: message}
}
