package ir

import "github.com/tay10r/pathway/internal/token"

// Expr is the sum type over PT expression nodes. Every expression carries
// its Location; resolver and type-inference passes are the only ones
// permitted to read (and, for the resolver, mutate) the resolution
// fields on VarRef and FuncCall.
type Expr interface {
	Loc() token.Location
	exprNode()
}

// UnaryOp enumerates the unary operators.
type UnaryOp int

const (
	LogicalNot UnaryOp = iota
	BitwiseNot
	Negate
)

// BinaryOp enumerates the binary operators.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
)

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	}
	return "?"
}

func (op UnaryOp) String() string {
	switch op {
	case LogicalNot:
		return "!"
	case BitwiseNot:
		return "~"
	case Negate:
		return "-"
	}
	return "?"
}

// IntLiteral is an integer literal; literals default to Unbound variability.
type IntLiteral struct {
	Value    uint64
	Location token.Location
}

func (e *IntLiteral) Loc() token.Location { return e.Location }
func (*IntLiteral) exprNode()             {}

// FloatLiteral is a floating-point literal. Kind distinguishes the plain
// numeric spelling from the distinguished pi/infinity keyword literals.
type FloatLiteralKind int

const (
	FloatLiteralPlain FloatLiteralKind = iota
	FloatLiteralPi
	FloatLiteralInfinity
)

type FloatLiteral struct {
	Value    float64
	Kind     FloatLiteralKind
	Location token.Location
}

func (e *FloatLiteral) Loc() token.Location { return e.Location }
func (*FloatLiteral) exprNode()             {}

// BoolLiteral is a boolean literal.
type BoolLiteral struct {
	Value    bool
	Location token.Location
}

func (e *BoolLiteral) Loc() token.Location { return e.Location }
func (*BoolLiteral) exprNode()             {}

// VarBinding is anything a VarRef can resolve to: a global or local
// variable declaration, or a function parameter.
type VarBinding interface {
	BindingName() string
	BindingType() Type
}

// VarRef references a variable by name. Resolved is filled in by the
// resolver (internal/resolver) and is nil until then; it is a non-owning
// back-pointer into the same module.
type VarRef struct {
	Name     string
	Resolved VarBinding
	Location token.Location
}

func (e *VarRef) Loc() token.Location { return e.Location }
func (*VarRef) exprNode()             {}

// GroupExpr is a parenthesized sub-expression.
type GroupExpr struct {
	Inner    Expr
	Location token.Location
}

func (e *GroupExpr) Loc() token.Location { return e.Location }
func (*GroupExpr) exprNode()             {}

// UnaryExpr applies a prefix unary operator.
type UnaryExpr struct {
	Op       UnaryOp
	Inner    Expr
	Location token.Location
}

func (e *UnaryExpr) Loc() token.Location { return e.Location }
func (*UnaryExpr) exprNode()             {}

// BinaryExpr applies an infix binary operator.
type BinaryExpr struct {
	Left, Right Expr
	Op          BinaryOp
	Location    token.Location
}

func (e *BinaryExpr) Loc() token.Location { return e.Location }
func (*BinaryExpr) exprNode()             {}

// FuncCall calls a function by name. Candidates is populated by the
// resolver with every function declaration sharing Name; it is empty
// before resolution, may hold several entries after name resolution, and
// must collapse to exactly one after type coercion or the call is
// reported unresolved by the analyzer.
type FuncCall struct {
	Name       string
	Args       []Expr
	Candidates []*FuncDecl
	Location   token.Location
}

func (e *FuncCall) Loc() token.Location { return e.Location }
func (*FuncCall) exprNode()             {}

// Resolved reports whether exactly one candidate survives, and returns it.
func (e *FuncCall) Resolved() (*FuncDecl, bool) {
	if len(e.Candidates) == 1 {
		return e.Candidates[0], true
	}
	return nil, false
}

// TypeConstructor builds a value of Type from Args: builtin type
// construction, and also the implicit-conversion sink used by type
// coercion.
type TypeConstructor struct {
	Type     Type
	Args     []Expr
	Location token.Location
}

func (e *TypeConstructor) Loc() token.Location { return e.Location }
func (*TypeConstructor) exprNode()             {}

// MemberExpr is either a vector swizzle or a struct-field reference,
// depending on the type of Base.
type MemberExpr struct {
	Base       Expr
	MemberName string
	Location   token.Location
}

func (e *MemberExpr) Loc() token.Location { return e.Location }
func (*MemberExpr) exprNode()             {}
