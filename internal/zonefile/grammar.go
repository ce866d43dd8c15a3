package zonefile

import (
	"fmt"
	"strconv"
	"strings"
)

// defaultClass is inserted when a record omits its class field. Only the IN
// class is supported; a different class token is passed through untouched.
const defaultClass = "IN"

// directiveLine is a classified "$ORIGIN"- or "$TTL"-style line.
type directiveLine struct {
	name string
	args []string
}

// recordLine is a classified resource-record line with its leading slots
// normalized: name first, then the optional TTL, then the optional class,
// then the RDATA tokens.
type recordLine struct {
	rtype        string
	name         string
	ttl          string // empty when not present in source
	class        string // empty when not present in source
	rdata        []string
	missingClass bool
}

// classified is the tagged result of sniffing a line's shape. Exactly one of
// directive and record is set.
type classified struct {
	directive *directiveLine
	record    *recordLine
}

// classify locates the record-type token in a line. The canonical slot order
// is [name, ttl?, class?, type, rdata...]; TTL and class are each optional and
// may appear in either order when both are present. The type is found by
// probing slots 1..3 against the schema; a leading-digit slot is a TTL, any
// other optional slot is a class.
func classify(tokens []string, schema Schema) (classified, error) {
	isType := func(tok string) bool {
		if strings.HasPrefix(tok, "$") {
			return false
		}
		_, ok := schema[tok]
		return ok
	}

	if strings.HasPrefix(tokens[0], "$") {
		if _, ok := schema[tokens[0]]; !ok {
			return classified{}, &ParseError{
				Line:   strings.Join(tokens, " "),
				Reason: "unsupported directive " + tokens[0],
			}
		}
		return classified{directive: &directiveLine{name: tokens[0], args: tokens[1:]}}, nil
	}

	rec := recordLine{name: tokens[0]}
	switch {
	case len(tokens) >= 2 && isType(tokens[1]):
		// no TTL, no class
		rec.rtype = tokens[1]
		rec.rdata = tokens[2:]
		rec.missingClass = true

	case len(tokens) >= 3 && isType(tokens[2]):
		// exactly one of TTL / class
		if startsWithDigit(tokens[1]) {
			rec.ttl = tokens[1]
			rec.missingClass = true
		} else {
			rec.class = tokens[1]
		}
		rec.rtype = tokens[2]
		rec.rdata = tokens[3:]

	case len(tokens) >= 4 && isType(tokens[3]):
		// both TTL and class, in either order
		ttl, class := tokens[1], tokens[2]
		if !startsWithDigit(ttl) {
			ttl, class = class, ttl
		}
		rec.ttl = ttl
		rec.class = class
		rec.rtype = tokens[3]
		rec.rdata = tokens[4:]

	default:
		return classified{}, &ParseError{
			Line:   strings.Join(tokens, " "),
			Reason: "unrecognized record shape",
		}
	}
	return classified{record: &rec}, nil
}

func startsWithDigit(tok string) bool {
	return len(tok) > 0 && tok[0] >= '0' && tok[0] <= '9'
}

// parseRecord applies the per-type field schema to a classified record line.
// Absent optional fields are omitted from the result rather than stored as
// placeholders; a defaulted class is flagged with "_missing_class".
func parseRecord(rec *recordLine, schema Schema, line string) (Record, error) {
	fields, ok := schema[rec.rtype]
	if !ok {
		return nil, &ConfigurationError{Type: rec.rtype, Reason: "record type not in schema"}
	}

	out := Record{"name": rec.name}
	if rec.ttl != "" {
		n, err := strconv.Atoi(rec.ttl)
		if err != nil {
			return nil, &ParseError{Line: line, Reason: "ttl must be an integer"}
		}
		out["ttl"] = n
	}
	class := rec.class
	if class == "" {
		class = defaultClass
	}
	out["class"] = class

	if len(rec.rdata) < len(fields) {
		return nil, &ParseError{
			Line:   line,
			Reason: fmt.Sprintf("missing field %q", fields[len(rec.rdata)].Name),
		}
	}
	if len(rec.rdata) > len(fields) {
		return nil, &ParseError{
			Line:   line,
			Reason: fmt.Sprintf("unmatched fields: %v", rec.rdata[len(fields):]),
		}
	}
	for i, f := range fields {
		tok := rec.rdata[i]
		switch f.Type {
		case Int:
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &ParseError{
					Line:   line,
					Reason: fmt.Sprintf("field %q must be an integer", f.Name),
				}
			}
			out[f.Name] = n
		default:
			out[f.Name] = tok
		}
	}

	if rec.missingClass {
		out["_missing_class"] = true
	}
	return out, nil
}

// parseDirective converts a directive line's single value according to the
// schema entry for the directive.
func parseDirective(dir *directiveLine, schema Schema, line string) (any, error) {
	fields := schema[dir.name]
	if len(fields) != 1 {
		return nil, &ConfigurationError{Type: dir.name, Reason: "directives take exactly one value"}
	}
	if len(dir.args) == 0 {
		return nil, &ParseError{Line: line, Reason: dir.name + " requires a value"}
	}
	if len(dir.args) > 1 {
		return nil, &ParseError{
			Line:   line,
			Reason: fmt.Sprintf("unmatched fields: %v", dir.args[1:]),
		}
	}
	if fields[0].Type == Int {
		n, err := strconv.Atoi(dir.args[0])
		if err != nil {
			return nil, &ParseError{Line: line, Reason: dir.name + " must be an integer"}
		}
		return n, nil
	}
	return dir.args[0], nil
}
