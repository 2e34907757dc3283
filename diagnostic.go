package cyan

// Severity is how seriously a Diagnostic should be treated by a
// renderer.
type Severity uint8

const (
	SeverityError Severity = iota + 1
	SeverityWarning
)

// SourceQuote points a diagnostic element at one or more tokens within
// a particular source unit, for a renderer to highlight.
type SourceQuote struct {
	SourceUnitID    int32
	IndicatedTokens []Key
}

// DiagnosticElement is one piece of a diagnostic's explanation: either
// a static message, or a quote of source tokens.
type DiagnosticElement struct {
	IsQuote bool
	Message string
	Quote   SourceQuote
}

// StaticMessageElement returns a DiagnosticElement carrying a plain
// message.
func StaticMessageElement(message string) DiagnosticElement {
	return DiagnosticElement{Message: message}
}

// SourceQuoteElement returns a DiagnosticElement quoting the given
// tokens from sourceUnitID.
func SourceQuoteElement(sourceUnitID int32, tokens ...Key) DiagnosticElement {
	return DiagnosticElement{
		IsQuote: true,
		Quote:   SourceQuote{SourceUnitID: sourceUnitID, IndicatedTokens: tokens},
	}
}

// Diagnostic is a closed sum of diagnostic kinds, exposed uniformly to
// renderers via View.
type Diagnostic struct {
	Severity Severity
	Title    string
	Elements []DiagnosticElement
}

// View exposes the diagnostic in the uniform shape renderers consume.
// Diagnostic already is that shape; View exists so call sites read the
// same way regardless of how many kinds this sum eventually grows to.
func (d Diagnostic) View() Diagnostic { return d }

// NewMissingTok builds the MissingTok diagnostic: "expected a token of
// class want but found something else", quoting the token at the
// cursor's current position.
func NewMissingTok(sourceUnitID int32, want string, at Key) Diagnostic {
	return Diagnostic{
		Severity: SeverityError,
		Title:    "Missing Token",
		Elements: []DiagnosticElement{
			StaticMessageElement("expected " + want),
			SourceQuoteElement(sourceUnitID, at),
		},
	}
}
