package zonefile

import (
	"strings"
	"unicode"

	"github.com/jroosing/zonejson/internal/pool"
)

// scratchPool reuses the output buffer of removeComments across parses.
var scratchPool = pool.New(func() *strings.Builder {
	return &strings.Builder{}
})

// Tokenize splits a single zonefile line into tokens. Whitespace separates
// tokens unless quoted or escaped, a double quote toggles quoting, a backslash
// escapes the next character, and an unescaped semicolon truncates the line
// (everything after it is a comment).
//
// Malformed quoting is tolerated: an unterminated quote is treated as closed
// at end of line.
func Tokenize(line string) []string {
	var (
		tokens  []string
		buf     strings.Builder
		escaped bool
		quoted  bool
	)

scan:
	for _, c := range line {
		switch {
		case unicode.IsSpace(c):
			switch {
			case quoted:
				buf.WriteRune(c)
			case escaped:
				buf.WriteRune(c)
				escaped = false
			default:
				if buf.Len() > 0 {
					tokens = append(tokens, buf.String())
					buf.Reset()
				}
			}
		case c == '\\':
			if escaped {
				buf.WriteRune(c)
				escaped = false
			} else {
				escaped = true
			}
		case c == '"':
			if escaped {
				buf.WriteRune(c)
				escaped = false
				continue
			}
			if quoted {
				// closing quote flushes the buffer, even when empty
				tokens = append(tokens, buf.String())
				buf.Reset()
			}
			quoted = !quoted
		case c == ';':
			if escaped {
				buf.WriteRune(c)
				escaped = false
				continue
			}
			// comment: flush whatever we have and stop scanning
			tokens = append(tokens, buf.String())
			buf.Reset()
			break scan
		default:
			buf.WriteRune(c)
			escaped = false
		}
	}

	if strings.Trim(buf.String(), " \n") != "" {
		tokens = append(tokens, buf.String())
	}
	return tokens
}

// Serialize is the inverse of Tokenize for a single line: tokens containing
// whitespace are re-quoted and semicolons re-escaped, then everything is
// joined with single spaces.
//
// Tokenize(Serialize(tokens)) == tokens holds as long as no token contains a
// literal double quote or backslash.
func Serialize(tokens []string) string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if strings.Contains(tok, " ") {
			tok = `"` + tok + `"`
		}
		if strings.Contains(tok, ";") {
			tok = strings.ReplaceAll(tok, ";", `\;`)
		}
		out = append(out, tok)
	}
	return strings.Join(out, " ")
}

// removeComments rewrites each non-empty line as Serialize(Tokenize(line)),
// dropping trailing comments and normalizing whitespace and quoting. Blank
// input lines are dropped entirely.
func removeComments(text string) string {
	b := scratchPool.Get()
	defer func() {
		b.Reset()
		scratchPool.Put(b)
	}()

	first := true
	for _, line := range strings.Split(text, "\n") {
		if len(line) == 0 {
			continue
		}
		if !first {
			b.WriteByte('\n')
		}
		first = false
		b.WriteString(Serialize(Tokenize(line)))
	}
	return b.String()
}
