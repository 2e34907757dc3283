package cyan

// Class is a predicate over Tok values paired with the view type V it
// produces on a match — the Go-generics rendering of the original's
// TokClass trait (a compile-time predicate with an associated View
// type, realized here as a concrete value instead of a trait object
// since Go methods cannot introduce their own type parameters).
type Class[V any] struct {
	Name  string
	Match func(Tok) (V, bool)
}

// TokRef is a token Key paired, in the type system, with the class it
// was proven to match — an AST leaf. TokRef values are comparable and
// freely copyable.
type TokRef[V any] struct {
	key Key
}

// Key returns the underlying token address this reference points at.
func (r TokRef[V]) Key() Key { return r.key }

func newTokRef[V any](key Key) TokRef[V] { return TokRef[V]{key: key} }

// struct{} view used by classes whose membership carries no payload
// beyond "this token is in the class" (delimiters, Formatting).
type unit = struct{}

// -- Ident ----------------------------------------------------------------------------------

// ClassIdent matches any Ident token.
var ClassIdent = Class[IdentView]{
	Name: "Ident",
	Match: func(t Tok) (IdentView, bool) {
		if t.Kind != KindIdent {
			return IdentView{}, false
		}
		return t.Ident, true
	},
}

// -- Literal --------------------------------------------------------------------------------

// AnyLiteral is the view produced by ClassLiteral: either a string or
// decimal-integer literal.
type AnyLiteral struct {
	IsStr  bool
	Str    StrRef
	DecInt StrRef
}

// ClassLiteral matches StrLiteral or DecIntLiteral tokens.
var ClassLiteral = Class[AnyLiteral]{
	Name: "Literal",
	Match: func(t Tok) (AnyLiteral, bool) {
		switch t.Kind {
		case KindStrLiteral:
			return AnyLiteral{IsStr: true, Str: t.StrLiteral}, true
		case KindDecIntLiteral:
			return AnyLiteral{IsStr: false, DecInt: t.DecInt}, true
		default:
			return AnyLiteral{}, false
		}
	},
}

// -- Binary operators -------------------------------------------------------------------------

// BinaryOperator is the view produced by ClassBinaryOperator.
type BinaryOperator uint8

const (
	OpLessThan BinaryOperator = iota + 1
	OpLessThanEq
	OpGreaterThan
	OpGreaterThanEq
	OpEqEq
	OpNotEq
	OpEq
)

// ClassBinaryOperator matches the comparison/equality/assignment subset
// of static tokens.
var ClassBinaryOperator = Class[BinaryOperator]{
	Name: "BinaryOperator",
	Match: func(t Tok) (BinaryOperator, bool) {
		if t.Kind != KindStaticPack {
			return 0, false
		}
		switch t.Static {
		case TokLessThan:
			return OpLessThan, true
		case TokLessThanEq:
			return OpLessThanEq, true
		case TokGreaterThan:
			return OpGreaterThan, true
		case TokGreaterThanEq:
			return OpGreaterThanEq, true
		case TokEqEq:
			return OpEqEq, true
		case TokNotEq:
			return OpNotEq, true
		case TokEq:
			return OpEq, true
		default:
			return 0, false
		}
	},
}

// -- Delimiters -------------------------------------------------------------------------------

func staticClass(name string, want StaticTok) Class[unit] {
	return Class[unit]{
		Name: name,
		Match: func(t Tok) (unit, bool) {
			if t.Kind == KindStaticPack && t.Static == want {
				return unit{}, true
			}
			return unit{}, false
		},
	}
}

var (
	ClassOpenCurly  = staticClass("OpenCurly", TokOpenCurly)
	ClassCloseCurly = staticClass("CloseCurly", TokCloseCurly)
	ClassOpenParen  = staticClass("OpenParen", TokOpenParen)
	ClassCloseParen = staticClass("CloseParen", TokCloseParen)
	ClassLessThan   = staticClass("LessThan", TokLessThan)
	ClassGreaterThan = staticClass("GreaterThan", TokGreaterThan)
	ClassProc       = staticClass("Proc", TokProc)
	ClassComma      = staticClass("Comma", TokComma)
	ClassColon      = staticClass("Colon", TokColon)
)

// -- Top-level item declarators -----------------------------------------------------------------

// ItemDeclarator is the view produced by ClassItemDeclarator.
type ItemDeclarator uint8

const (
	DeclaratorProc ItemDeclarator = iota + 1
	DeclaratorStruct
	DeclaratorEnum
	DeclaratorLineComment
)

// ClassItemDeclarator matches the tokens that may begin a top-level
// item: proc/struct/enum keywords, or a line comment (kept so line
// comments survive as top-level trivia nodes).
var ClassItemDeclarator = Class[ItemDeclarator]{
	Name: "ItemDeclarator",
	Match: func(t Tok) (ItemDeclarator, bool) {
		if t.Kind == KindLineComment {
			return DeclaratorLineComment, true
		}
		if t.Kind != KindStaticPack {
			return 0, false
		}
		switch t.Static {
		case TokProc:
			return DeclaratorProc, true
		case TokStruct:
			return DeclaratorStruct, true
		case TokEnum:
			return DeclaratorEnum, true
		default:
			return 0, false
		}
	},
}

// -- Formatting -------------------------------------------------------------------------------

// ClassFormatting matches Space, Linebreak, and Align tokens — the
// tokens consumed between syntactically meaningful tokens.
var ClassFormatting = Class[unit]{
	Name: "Formatting",
	Match: func(t Tok) (unit, bool) {
		switch t.Kind {
		case KindLinebreak, KindAlign:
			return unit{}, true
		case KindStaticPack:
			if t.Static == TokSpace {
				return unit{}, true
			}
		}
		return unit{}, false
	},
}

// -- LineComment ------------------------------------------------------------------------------

// ClassLineComment matches LineComment tokens, yielding their content.
var ClassLineComment = Class[StrRef]{
	Name: "LineComment",
	Match: func(t Tok) (StrRef, bool) {
		if t.Kind != KindLineComment {
			return StrRef{}, false
		}
		return t.Comment, true
	},
}
