package cyan

import "github.com/davecgh/go-spew/spew"

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump renders every token in the buffer as a human-readable tree, for
// use by out-of-scope diagnostic renderers and in this package's own
// tests. It is not on the hot path of lexing or parsing.
func (b *TokBuf) Dump() string {
	toks := make([]Tok, 0, b.Len())
	c := NewCursor(b)
	for {
		tok, ok := c.Read()
		if !ok {
			break
		}
		toks = append(toks, tok)
		c.Advance()
	}
	return dumpConfig.Sdump(toks)
}

// Dump renders every top-level item in the AST as a human-readable
// tree.
func (a *Ast) Dump() string {
	return dumpConfig.Sdump(a.Items())
}
