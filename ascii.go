package cyan

// Byte classification over the ASCII subset of the source alphabet.
// Cyan source text is ASCII-only (spec.md Non-goals): there is no
// Unicode-aware identifier classification here.

const (
	asciiUnderscore   byte = '_'
	asciiDoubleQuote  byte = '"'
	asciiForwardSlash byte = '/'
	asciiSpace        byte = ' '
	asciiLinebreak    byte = '\n'
)

func isAlphabeticCh(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isNumericCh(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isAlphanumericCh(ch byte) bool {
	return isAlphabeticCh(ch) || isNumericCh(ch)
}

func isIdentPrefixCh(ch byte) bool {
	return isAlphabeticCh(ch) || ch == asciiUnderscore
}

func isIdentCh(ch byte) bool {
	return isAlphanumericCh(ch) || ch == asciiUnderscore
}

// isIdentStr reports whether s would lex as a single Ident token on its
// own, i.e. whether a static token sharing this source text risks being
// mistaken for an identifier prefix.
func isIdentStr(s []byte) bool {
	if len(s) == 0 || !isIdentPrefixCh(s[0]) {
		return false
	}
	for _, ch := range s[1:] {
		if !isIdentCh(ch) {
			return false
		}
	}
	return true
}

// digitBytes enumerates the ASCII decimal digits, used to seed the
// lexer's prefix tree.
var digitBytes = [...]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}

// identPrefixBytes enumerates every byte that may begin an identifier.
func identPrefixBytes() []byte {
	bytes := make([]byte, 0, 53)
	for ch := byte('a'); ch <= 'z'; ch++ {
		bytes = append(bytes, ch)
	}
	for ch := byte('A'); ch <= 'Z'; ch++ {
		bytes = append(bytes, ch)
	}
	bytes = append(bytes, asciiUnderscore)
	return bytes
}
