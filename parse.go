package cyan

import "errors"

// TokStream wraps a Cursor with the higher-level operations the parser
// needs: discarding formatting, claiming a classified token, and
// resynchronizing after an error.
type TokStream struct {
	cursor *Cursor
}

// NewTokStream returns a stream positioned at the start of tb.
func NewTokStream(tb *TokBuf) *TokStream {
	return &TokStream{cursor: NewCursor(tb)}
}

// Discard consumes tokens from the stream while they match class c.
func Discard[V any](ts *TokStream, c Class[V]) {
	for {
		tok, ok := ts.cursor.Read()
		if !ok {
			return
		}
		if _, matched := c.Match(tok); !matched {
			return
		}
		ts.cursor.Advance()
	}
}

// ConsumeRef discards formatting, then — if the next token matches c —
// returns a reference to it and advances past it. Returns false (with
// no advance) if the next token does not match.
func ConsumeRef[V any](ts *TokStream, c Class[V]) (TokRef[V], bool) {
	Discard(ts, ClassFormatting)
	tok, ok := ts.cursor.Read()
	if !ok {
		return TokRef[V]{}, false
	}
	if _, matched := c.Match(tok); !matched {
		return TokRef[V]{}, false
	}
	ref := newTokRef[V](ts.cursor.At())
	ts.cursor.Advance()
	return ref, true
}

// Peek discards formatting, then returns the class view of the next
// token without advancing.
func Peek[V any](ts *TokStream, c Class[V]) (V, bool) {
	Discard(ts, ClassFormatting)
	tok, ok := ts.cursor.Read()
	if !ok {
		var zero V
		return zero, false
	}
	return c.Match(tok)
}

// AssertRef requires that the next token (without first discarding
// formatting) matches class c, returning its reference and advancing.
// Panics if it does not — an internal invariant violation, since
// AssertRef is only ever called by a handler immediately after a
// dispatcher peeked the same class.
func AssertRef[V any](ts *TokStream, c Class[V]) TokRef[V] {
	tok, ok := ts.cursor.Read()
	if !ok {
		panic("cyan: AssertRef on class " + c.Name + " but stream is exhausted")
	}
	if _, matched := c.Match(tok); !matched {
		panic("cyan: AssertRef expected token of class " + c.Name + " but next token does not qualify")
	}
	ref := newTokRef[V](ts.cursor.At())
	ts.cursor.Advance()
	return ref
}

// Sync consumes and discards tokens up to, but not including, the next
// occurrence of class c, or end-of-buffer.
func Sync[V any](ts *TokStream, c Class[V]) {
	for {
		tok, ok := ts.cursor.Read()
		if !ok {
			return
		}
		if _, matched := c.Match(tok); matched {
			return
		}
		ts.cursor.Advance()
	}
}

// -- Parse context & recovery protocol ------------------------------------------------------

// errParsePanic is the sentinel returned by every parse function that
// cannot proceed locally. Whoever returns it must already have pushed a
// diagnostic explaining why — callers that receive it may assume the
// diagnostic has been emitted, and should resynchronize rather than
// report anything themselves.
var errParsePanic = errors.New("cyan: parse panic")

// ParseContext threads the token stream, arena, source-unit id, and
// diagnostics sink through every parse function.
type ParseContext struct {
	Stream       *TokStream
	Mem          *Arena
	SourceUnitID int32
	Diagnostics  *[]Diagnostic
}

func (pc *ParseContext) report(d Diagnostic) {
	*pc.Diagnostics = append(*pc.Diagnostics, d)
}

// ExpectRef is the recovery-protocol convenience: if ConsumeRef fails,
// it pushes a MissingTok diagnostic pointing at the cursor's current
// position and returns errParsePanic.
func ExpectRef[V any](pc *ParseContext, c Class[V]) (TokRef[V], error) {
	if ref, ok := ConsumeRef(pc.Stream, c); ok {
		return ref, nil
	}
	pc.report(NewMissingTok(pc.SourceUnitID, c.Name, pc.Stream.cursor.At()))
	return TokRef[V]{}, errParsePanic
}

// -- Parser entry -----------------------------------------------------------------------------

// Parse consumes tb and produces an Ast, appending any diagnostics
// encountered to *diagnostics. sourceUnitID is stored verbatim in
// diagnostics emitted while parsing this buffer.
func Parse(tb *TokBuf, sourceUnitID int32, diagnostics *[]Diagnostic) *Ast {
	stream := NewTokStream(tb)
	tokCount := 0
	for c := NewCursor(tb); c.HasNext(); c.Advance() {
		tokCount++
	}
	mem := NewArena(calcASTSizeUpperBound(tokCount))
	pc := &ParseContext{Stream: stream, Mem: mem, SourceUnitID: sourceUnitID, Diagnostics: diagnostics}

	root := parseRoot(pc)

	mem.ShrinkToFit()
	return &Ast{Arena: mem, Root: root}
}

func parseRoot(pc *ParseContext) Handle[LLNode[TopLevelItem]] {
	var head Handle[LLNode[TopLevelItem]]
	tail := &head

	for pc.Stream.cursor.HasNext() {
		declarator, ok := Peek(pc.Stream, ClassItemDeclarator)
		if !ok {
			pc.report(NewMissingTok(pc.SourceUnitID, ClassItemDeclarator.Name, pc.Stream.cursor.At()))
			Sync(pc.Stream, ClassItemDeclarator)
			continue
		}
		item, err := parseTLItem(pc, declarator)
		if err != nil {
			// The unrecoverable error occurred within parseTLItem and was
			// already reported there.
			Sync(pc.Stream, ClassItemDeclarator)
			continue
		}
		ExtendLL(pc.Mem, &tail, item)
	}

	return head
}

func parseTLItem(pc *ParseContext, declarator ItemDeclarator) (TopLevelItem, error) {
	switch declarator {
	case DeclaratorProc:
		proc, err := parseProcDef(pc)
		if err != nil {
			return TopLevelItem{}, err
		}
		return TopLevelItem{Kind: TopLevelItemKindProc, Proc: proc}, nil
	case DeclaratorLineComment:
		ref := AssertRef(pc.Stream, ClassLineComment)
		return TopLevelItem{
			Kind:    TopLevelItemKindLineComment,
			Comment: LineComment{Comment: ref},
		}, nil
	case DeclaratorStruct, DeclaratorEnum:
		// Struct and enum bodies remain future work, as in the original
		// source this module was specified from. The declarator keyword
		// itself matches ClassItemDeclarator, so it must be claimed here
		// before syncing — otherwise Sync is a no-op (it already sits on a
		// match) and parseRoot would re-peek the same token forever.
		ref := AssertRef(pc.Stream, ClassItemDeclarator)
		pc.report(NewMissingTok(pc.SourceUnitID, "struct/enum body (unsupported)", ref.Key()))
		Sync(pc.Stream, ClassItemDeclarator)
		return TopLevelItem{}, errParsePanic
	default:
		panic("cyan: unreachable item declarator")
	}
}

func parseProcDef(pc *ParseContext) (ProcDefinition, error) {
	procKeyword := AssertRef(pc.Stream, ClassProc)

	name, err := ExpectRef(pc, ClassIdent)
	if err != nil {
		return ProcDefinition{}, err
	}

	params, err := parseParameters(pc)
	if err != nil {
		return ProcDefinition{}, err
	}
	paramsHandle := Bump(pc.Mem, params)

	colon, err := ExpectRef(pc, ClassColon)
	if err != nil {
		return ProcDefinition{}, err
	}

	typ, err := parseType(pc)
	if err != nil {
		return ProcDefinition{}, err
	}
	typeHandle := Bump(pc.Mem, typ)

	body, err := parseImperativeBlock(pc)
	if err != nil {
		return ProcDefinition{}, err
	}
	bodyHandle := Bump(pc.Mem, body)

	return ProcDefinition{
		ProcKeyword: procKeyword,
		Name:        name,
		Params:      paramsHandle,
		Colon:       colon,
		ReturnType:  typeHandle,
		Body:        bodyHandle,
	}, nil
}

func parseParameters(pc *ParseContext) (Parameters, error) {
	openParen, err := ExpectRef(pc, ClassOpenParen)
	if err != nil {
		return Parameters{}, err
	}

	var head Handle[LLNode[Parameter]]
	tail := &head

	if _, ok := Peek(pc.Stream, ClassCloseParen); !ok {
		for {
			param, err := parseParameter(pc)
			if err != nil {
				return Parameters{}, err
			}
			ExtendLL(pc.Mem, &tail, param)

			if _, ok := ConsumeRef(pc.Stream, ClassComma); !ok {
				break
			}
			if _, ok := Peek(pc.Stream, ClassCloseParen); ok {
				break // trailing comma
			}
		}
	}

	closeParen, err := ExpectRef(pc, ClassCloseParen)
	if err != nil {
		return Parameters{}, err
	}

	return Parameters{OpenParen: openParen, CloseParen: closeParen, Head: head}, nil
}

func parseParameter(pc *ParseContext) (Parameter, error) {
	name, err := ExpectRef(pc, ClassIdent)
	if err != nil {
		return Parameter{}, err
	}
	colon, err := ExpectRef(pc, ClassColon)
	if err != nil {
		return Parameter{}, err
	}
	typ, err := parseType(pc)
	if err != nil {
		return Parameter{}, err
	}
	return Parameter{Name: name, Colon: colon, Type_: Bump(pc.Mem, typ)}, nil
}

func parseType(pc *ParseContext) (Type, error) {
	named, err := parseNamedType(pc)
	if err != nil {
		return Type{}, err
	}
	return Type{Kind: TypeKindNamed, Named: named}, nil
}

func parseNamedType(pc *ParseContext) (NamedType, error) {
	name, err := ExpectRef(pc, ClassIdent)
	if err != nil {
		return NamedType{}, err
	}

	if _, ok := Peek(pc.Stream, ClassLessThan); !ok {
		return NamedType{Name: name}, nil
	}

	args, err := parseTypeArguments(pc)
	if err != nil {
		return NamedType{}, err
	}
	return NamedType{Name: name, HasArgs: true, Args: Bump(pc.Mem, args)}, nil
}

func parseTypeArguments(pc *ParseContext) (TypeArguments, error) {
	if _, err := ExpectRef(pc, ClassLessThan); err != nil {
		return TypeArguments{}, err
	}

	var head Handle[LLNode[TypeArgument]]
	tail := &head

	if _, ok := Peek(pc.Stream, ClassGreaterThan); !ok {
		for {
			typ, err := parseType(pc)
			if err != nil {
				return TypeArguments{}, err
			}
			ExtendLL(pc.Mem, &tail, TypeArgument{Value: Bump(pc.Mem, typ)})

			if _, ok := ConsumeRef(pc.Stream, ClassComma); !ok {
				break
			}
			if _, ok := Peek(pc.Stream, ClassGreaterThan); ok {
				break // trailing comma
			}
		}
	}

	if _, err := ExpectRef(pc, ClassGreaterThan); err != nil {
		return TypeArguments{}, err
	}

	return TypeArguments{Head: head}, nil
}

func parseImperativeBlock(pc *ParseContext) (ImperativeBlock, error) {
	openCurly, err := ExpectRef(pc, ClassOpenCurly)
	if err != nil {
		return ImperativeBlock{}, err
	}

	// Statement parsing is future work, as in the original source this
	// module was specified from: every block parses to an empty
	// Statements list regardless of what appears before the closing
	// curly. Anything there is simply synchronized past.
	Sync(pc.Stream, ClassCloseCurly)

	closeCurly, err := ExpectRef(pc, ClassCloseCurly)
	if err != nil {
		return ImperativeBlock{}, err
	}

	return ImperativeBlock{OpenCurly: openCurly, CloseCurly: closeCurly}, nil
}
