package cyan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokBuf_DumpIsStableAcrossIdenticalInput(t *testing.T) {
	source := "proc main(): int {\n    \n}"

	tb1 := Lex([]byte(source), NewStrInterner())
	tb2 := Lex([]byte(source), NewStrInterner())

	assertDumpEqual(t, tb1.Dump(), tb2.Dump(), "token dump of identical source")
}

func TestTokBuf_DumpChangesWithSource(t *testing.T) {
	tb1 := Lex([]byte("proc f(): int {}"), NewStrInterner())
	tb2 := Lex([]byte("proc g(): int {}"), NewStrInterner())

	assert.NotEqual(t, tb1.Dump(), tb2.Dump())
	assert.NotEmpty(t, tb1.Dump())
}

func TestAst_DumpIsStableAcrossIdenticalInput(t *testing.T) {
	source := "proc add(a: int, b: int,): Pair<int, int> {}"

	interner1 := NewStrInterner()
	tb1 := Lex([]byte(source), interner1)
	var diags1 []Diagnostic
	ast1 := Parse(tb1, 0, &diags1)

	interner2 := NewStrInterner()
	tb2 := Lex([]byte(source), interner2)
	var diags2 []Diagnostic
	ast2 := Parse(tb2, 0, &diags2)

	assertDumpEqual(t, ast1.Dump(), ast2.Dump(), "AST dump of identical source")
}

func TestAst_DumpMismatchReportsUnifiedDiff(t *testing.T) {
	tb := Lex([]byte("proc f(): int {}"), NewStrInterner())
	var diags []Diagnostic
	ast := Parse(tb, 0, &diags)

	// assertDumpEqual calls t.Fatalf on mismatch, which unwinds the
	// calling goroutine via runtime.Goexit — run it on its own goroutine
	// so this test can observe the failure instead of being unwound itself.
	fake := &testing.T{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		assertDumpEqual(fake, "line one\nline two\n", ast.Dump(), "deliberately mismatched dump")
	}()
	<-done

	assert.True(t, fake.Failed(), "assertDumpEqual should report a failure for mismatched dumps")
}
