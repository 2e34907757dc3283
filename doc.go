// Package cyan implements the front-end core of the Cyan compiler: a
// lexer that converts source bytes into a bit-packed token buffer, and
// a recursive-descent parser that consumes that buffer into a bump-
// arena AST.
//
// File discovery, CLI/config surfaces, diagnostic rendering, and
// everything downstream of the AST (semantic analysis, type checking,
// codegen) are out of scope — this package only describes the
// interfaces those collaborators consume.
package cyan
