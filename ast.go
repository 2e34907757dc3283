package cyan

import "unsafe"

// astAlign documents the alignment every AST node type is expected to
// have; Bump itself derives each type's alignment via unsafe.Alignof
// rather than taking a fixed const-generic alignment parameter (Go's
// generics don't support alignment-as-a-type-parameter the way Rust's
// const generics do), but every node below is built from uint32-sized
// fields and lands on this alignment regardless.
const astAlign = 4

// calcASTSizeUpperBound computes an upper bound, in bytes, for the AST
// memory a token buffer of tokCount tokens could produce, so the arena
// can be allocated once, before parsing begins.
func calcASTSizeUpperBound(tokCount int) int {
	maxNodeSize := maxInt(
		int(unsafe.Sizeof(Expr{})),
		int(unsafe.Sizeof(Parameter{})),
		int(unsafe.Sizeof(TopLevelItem{})),
		int(unsafe.Sizeof(Statement{})),
		int(unsafe.Sizeof(TypeArgument{})),
	)
	return tokCount * maxNodeSize
}

func maxInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// -- Expressions ----------------------------------------------------------------------------

// ExprKind discriminates the Expr tagged union. Naked expression
// payloads (IdentExpr, InfixExpr, LiteralExpr) are never placed
// directly into the arena — only ever wrapped in an Expr.
type ExprKind uint8

const (
	ExprKindIdent ExprKind = iota + 1
	ExprKindInfix
	ExprKindLiteral
)

// Expr is the tagged union every expression node in the AST is
// represented by.
type Expr struct {
	Kind    ExprKind
	Ident   IdentExpr
	Infix   InfixExpr
	Literal LiteralExpr
}

// IdentExpr is a bare identifier used as an expression.
type IdentExpr struct {
	Ident TokRef[IdentView]
}

// InfixExpr is a binary-operator application.
type InfixExpr struct {
	LeftOperand  Handle[Expr]
	Operator     TokRef[BinaryOperator]
	RightOperand Handle[Expr]
}

// LiteralExpr wraps a string or decimal-integer literal token as an
// expression. Not yet reachable from Parse (expression-statement
// parsing remains future work, as in the original source this module
// was specified from), but fully constructible and arena-round-trip
// tested.
type LiteralExpr struct {
	Literal TokRef[AnyLiteral]
}

// NewLiteralExpr wraps lit as an Expr.
func NewLiteralExpr(lit TokRef[AnyLiteral]) Expr {
	return Expr{Kind: ExprKindLiteral, Literal: LiteralExpr{Literal: lit}}
}

// -- Types ------------------------------------------------------------------------------------

// TypeKind discriminates the Type tagged union. NamedType is the only
// variant the grammar currently produces.
type TypeKind uint8

const (
	TypeKindNamed TypeKind = iota + 1
)

// Type is the tagged union every type node in the AST is represented by.
type Type struct {
	Kind  TypeKind
	Named NamedType
}

// NamedType is an identifier optionally followed by a TypeArguments
// list, e.g. "int" or "List<int>".
type NamedType struct {
	Name    TokRef[IdentView]
	HasArgs bool
	Args    Handle[TypeArguments]
}

// TypeArguments is the `<...>` list following a generic type's name.
type TypeArguments struct {
	Head Handle[LLNode[TypeArgument]]
}

// TypeArgument is one element of a TypeArguments list.
type TypeArgument struct {
	Value Handle[Type]
}

// -- Procedures -------------------------------------------------------------------------------

// ProcDefinition is `proc` Ident Parameters `:` Type ImperativeBlock.
type ProcDefinition struct {
	ProcKeyword TokRef[unit]
	Name        TokRef[IdentView]
	Params      Handle[Parameters]
	Colon       TokRef[unit]
	ReturnType  Handle[Type]
	Body        Handle[ImperativeBlock]
}

// Parameters is the `(` ... `)` parameter list of a ProcDefinition.
type Parameters struct {
	OpenParen  TokRef[unit]
	CloseParen TokRef[unit]
	Head       Handle[LLNode[Parameter]]
}

// Parameter is `Ident` `:` `Type`.
type Parameter struct {
	Name  TokRef[IdentView]
	Colon TokRef[unit]
	Type_ Handle[Type]
}

// ImperativeBlock is `{` Statement* `}`.
type ImperativeBlock struct {
	OpenCurly  TokRef[unit]
	CloseCurly TokRef[unit]
	Statements Handle[LLNode[Statement]]
}

// -- Statements ---------------------------------------------------------------------------------

// StatementKind discriminates the Statement tagged union. Statement
// bodies are deliberately left as future work, as in the original
// source this module was specified from — ImperativeBlock always
// parses with a nil Statements handle.
type StatementKind uint8

// Statement is the tagged union every statement node in the AST would
// be represented by, once statement parsing is implemented.
type Statement struct {
	Kind StatementKind
}

// -- Top-level items -----------------------------------------------------------------------------

// TopLevelItemKind discriminates the TopLevelItem tagged union.
type TopLevelItemKind uint8

const (
	TopLevelItemKindProc TopLevelItemKind = iota + 1
	TopLevelItemKindLineComment
)

// TopLevelItem is one item appearing directly in a source unit: a
// procedure definition, or (so comments survive as trivia) a line
// comment. Struct and enum declarators are recognized by the parser
// but — as in the original source — their bodies remain future work.
type TopLevelItem struct {
	Kind    TopLevelItemKind
	Proc    ProcDefinition
	Comment LineComment
}

// LineComment is a top-level line comment, preserved verbatim.
type LineComment struct {
	Comment TokRef[StrRef]
}

// -- Root -----------------------------------------------------------------------------------

// Ast is the result of parsing one source unit: a handle to the head
// of a linked list of LLNode[TopLevelItem] nodes, plus the arena that owns every
// node the handle (transitively) reaches. Ast itself is ordinary Go
// heap memory — it is never itself placed inside the arena.
type Ast struct {
	Arena *Arena
	Root  Handle[LLNode[TopLevelItem]]
}

// Items returns every top-level item in source order by walking the
// root linked list.
func (a *Ast) Items() []TopLevelItem {
	var items []TopLevelItem
	cur := a.Root
	for !cur.IsNil() {
		node := Get(a.Arena, cur)
		items = append(items, node.Value)
		cur = node.Next
	}
	return items
}
