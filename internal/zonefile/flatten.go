package zonefile

import "strings"

// defaultName is substituted when a record omits its name field. In zonefile
// syntax "@" means "the current origin".
const defaultName = "@"

// flatten merges records that span multiple physical lines into one line each.
// A token starting with "(" opens a group; line breaks inside the group do not
// terminate the record. A token ending with ")" while grouped closes it, and
// the next line break emits the accumulated tokens as a single line. The
// parenthesis markers themselves are stripped.
//
// Input must already be comment-free. An unterminated group is dropped along
// with everything captured for it; unbalanced parentheses are not reported.
func flatten(text string) string {
	// Flat token stream with an empty-string sentinel at each line break.
	var stream []string
	for _, line := range strings.Split(text, "\n") {
		if len(line) == 0 {
			continue
		}
		line = strings.ReplaceAll(line, "\t", " ")
		for _, f := range strings.Split(line, " ") {
			if len(f) > 0 {
				stream = append(stream, f)
			}
		}
		stream = append(stream, "")
	}

	var (
		capturing bool
		captured  []string
		flattened []string
	)
	for _, tok := range stream {
		if tok == "" {
			if capturing {
				continue
			}
			if len(captured) > 0 {
				flattened = append(flattened, strings.Join(captured, " "))
				captured = captured[:0]
			}
			continue
		}
		if strings.HasPrefix(tok, "(") {
			tok = strings.TrimLeft(tok, "(")
			capturing = true
		}
		if capturing && strings.HasSuffix(tok, ")") {
			tok = strings.TrimRight(tok, ")")
			capturing = false
		}
		if tok != "" {
			captured = append(captured, tok)
		}
	}
	return strings.Join(flattened, "\n")
}

// addDefaultName prepends "@" to any flattened line whose name field was
// omitted, i.e. whose first token is a record-type name standing in type
// position. Directive lines start with "$" and are left alone.
func addDefaultName(text string, schema Schema) string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		tokens := Tokenize(line)
		if len(tokens) == 0 {
			continue
		}
		if needsDefaultName(tokens, schema) {
			tokens = append([]string{defaultName}, tokens...)
		}
		out = append(out, Serialize(tokens))
	}
	return strings.Join(out, "\n")
}

// needsDefaultName reports whether the line omits its name field. A record
// whose name merely collides with a type name (a host called "A", say) still
// classifies with the type in a later slot and is left alone.
func needsDefaultName(tokens []string, schema Schema) bool {
	if strings.HasPrefix(tokens[0], "$") {
		return false
	}
	if _, ok := schema[tokens[0]]; !ok {
		return false
	}
	_, err := classify(tokens, schema)
	return err != nil
}
