package extract

import "strings"

// tokenState is the quote state of the value tokenizer.
type tokenState int

const (
	stateBare tokenState = iota
	stateQuoted
)

// SplitValues splits a raw value list on top-level commas.
//
// Commas inside single-quoted literals do not split. Inside a literal, a
// doubled quote ('') and a backslash escape (\' or \\) do not close it.
// Tokens are returned exactly as written, quotes and surrounding whitespace
// included. An unterminated literal runs to the end of the list.
// An empty list yields a single empty token, like SplitFields.
func SplitValues(values string) []string {
	var tokens []string
	var current strings.Builder
	state := stateBare

	runes := []rune(values)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch state {
		case stateBare:
			switch r {
			case ',':
				tokens = append(tokens, current.String())
				current.Reset()
			case '\'':
				state = stateQuoted
				current.WriteRune(r)
			default:
				current.WriteRune(r)
			}

		case stateQuoted:
			current.WriteRune(r)
			switch r {
			case '\\':
				if i+1 < len(runes) {
					i++
					current.WriteRune(runes[i])
				}
			case '\'':
				if i+1 < len(runes) && runes[i+1] == '\'' {
					i++
					current.WriteRune(runes[i])
				} else {
					state = stateBare
				}
			}
		}
	}

	return append(tokens, current.String())
}

// Unquote returns the text of a single-quoted SQL literal with the
// surrounding quotes removed and '' and backslash escapes collapsed.
// Tokens that are not exactly one closed literal (numbers, NULL, functions,
// a literal left open at end of line such as 'abc\') are returned unchanged.
func Unquote(token string) string {
	text, ok := decodeLiteral(token)
	if !ok {
		return token
	}
	return text
}

// decodeLiteral decodes token when its first quote is closed by its last
// character. An escaped final quote does not close the literal.
func decodeLiteral(token string) (string, bool) {
	runes := []rune(token)
	if len(runes) < 2 || runes[0] != '\'' {
		return "", false
	}

	var b strings.Builder
	b.Grow(len(token))

	for i := 1; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\':
			if i+1 >= len(runes) {
				return "", false
			}
			i++
			b.WriteRune(unescape(runes[i]))
		case r == '\'' && i+1 < len(runes) && runes[i+1] == '\'':
			i++
			b.WriteRune('\'')
		case r == '\'':
			return b.String(), i == len(runes)-1
		default:
			b.WriteRune(r)
		}
	}
	return "", false
}

// unescape maps the character after a backslash to the character it denotes
// in MySQL string literals.
func unescape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	default:
		return r
	}
}
