package ir

import "github.com/tay10r/pathway/internal/token"

// Stmt is the sum type over PT statement nodes. The grammar accepts
// control-flow tokens (if/for/while/break/continue) but this IR only
// models the four kinds below — see DESIGN.md's Open Question decision.
type Stmt interface {
	Loc() token.Location
	stmtNode()
}

// AssignmentStmt assigns Rvalue to Lvalue.
type AssignmentStmt struct {
	Lvalue   Expr
	Rvalue   Expr
	Location token.Location
}

func (s *AssignmentStmt) Loc() token.Location { return s.Location }
func (*AssignmentStmt) stmtNode()             {}

// DeclStmt declares a local variable.
type DeclStmt struct {
	Decl     *VarDecl
	Location token.Location
}

func (s *DeclStmt) Loc() token.Location { return s.Location }
func (*DeclStmt) stmtNode()             {}

// ReturnStmt returns Expr's value from the enclosing function.
type ReturnStmt struct {
	Expr     Expr
	Location token.Location
}

func (s *ReturnStmt) Loc() token.Location { return s.Location }
func (*ReturnStmt) stmtNode()             {}

// CompoundStmt is a `{ ... }` block; every function body is one.
type CompoundStmt struct {
	Stmts    []Stmt
	Location token.Location
}

func (s *CompoundStmt) Loc() token.Location { return s.Location }
func (*CompoundStmt) stmtNode()             {}
