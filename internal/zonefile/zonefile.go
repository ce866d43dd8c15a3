// Package zonefile converts DNS zonefile text into a structured record set.
//
// Parsing is a pure pipeline over the input text: comments are stripped,
// parenthesized multi-line records are flattened onto single lines, omitted
// record names are defaulted to "@", and each line is matched against a
// per-record-type schema with the optional TTL and class slots inferred
// positionally. The result maps each record-type name (lower-cased) to an
// ordered list of field maps, with the $ORIGIN and $TTL directives stored as
// scalars under "$origin" and "$ttl".
//
// Known limitations, inherited from the zonefile format this package accepts:
// only one $ORIGIN and one $TTL are honored (the last one wins), and only the
// IN class is supported.
//
// Parsers share no state between calls; concurrent use is safe.
package zonefile

import (
	"os"
	"sort"
	"strings"
)

// Record holds the parsed fields of one resource record, keyed by field name.
// Values are strings or ints per the schema, plus the bool "_missing_class"
// marker when the class field was defaulted rather than read from source.
type Record map[string]any

// ZoneFile is the parsed output: record-type names (lower-cased) mapped to
// ordered []Record, plus the "$origin" (string) and "$ttl" (int) scalars when
// those directives were present.
type ZoneFile map[string]any

// Origin returns the zone's $ORIGIN value, if one was parsed.
func (z ZoneFile) Origin() (string, bool) {
	s, ok := z["$origin"].(string)
	return s, ok
}

// TTL returns the zone's $TTL value, if one was parsed.
func (z ZoneFile) TTL() (int, bool) {
	n, ok := z["$ttl"].(int)
	return n, ok
}

// Records returns the records of the given type, in source order. The type
// name is case-insensitive.
func (z ZoneFile) Records(rtype string) []Record {
	recs, _ := z[strings.ToLower(rtype)].([]Record)
	return recs
}

// Types returns the record-type keys present in the zone (directives
// excluded), sorted.
func (z ZoneFile) Types() []string {
	var out []string
	for key, v := range z {
		if _, ok := v.([]Record); ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// RecordCount returns the total number of resource records in the zone.
func (z ZoneFile) RecordCount() int {
	n := 0
	for _, v := range z {
		if recs, ok := v.([]Record); ok {
			n += len(recs)
		}
	}
	return n
}

// Parser parses zonefile text against an immutable record schema.
type Parser struct {
	schema  Schema
	lenient bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithSchema replaces the default record schema.
func WithSchema(s Schema) Option {
	return func(p *Parser) { p.schema = s }
}

// WithLenient makes the parser skip unparseable lines instead of aborting.
func WithLenient(lenient bool) Option {
	return func(p *Parser) { p.lenient = lenient }
}

// NewParser builds a Parser. A schema defect is reported as a
// ConfigurationError.
func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{schema: DefaultSchema()}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.schema.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse parses zonefile text with the default schema, aborting on the first
// unparseable line.
func Parse(text string) (ZoneFile, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	return p.Parse(text)
}

// ParseLenient parses zonefile text with the default schema, skipping
// unparseable lines.
func ParseLenient(text string) (ZoneFile, error) {
	p, err := NewParser(WithLenient(true))
	if err != nil {
		return nil, err
	}
	return p.Parse(text)
}

// ParseFile reads and parses a zonefile from disk.
func ParseFile(path string) (ZoneFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(b))
}

// Parse runs the full pipeline over text and returns the parsed record set.
// In strict mode the first ParseError aborts the parse; in lenient mode the
// offending line is skipped and no partial state from it is kept.
func (p *Parser) Parse(text string) (ZoneFile, error) {
	text = removeComments(text)
	text = flatten(text)
	text = addDefaultName(text, p.schema)

	zf := ZoneFile{}
	origin := ""
	for _, line := range strings.Split(text, "\n") {
		tokens := Tokenize(line)
		if len(tokens) == 0 {
			continue
		}
		if err := p.parseLine(tokens, line, zf, &origin); err != nil {
			if p.lenient {
				if _, isParse := err.(*ParseError); isParse {
					continue
				}
			}
			return nil, err
		}
	}
	return zf, nil
}

// parseLine classifies one normalized line and merges it into zf. origin
// tracks the most recent $ORIGIN value for PTR fullname derivation.
func (p *Parser) parseLine(tokens []string, line string, zf ZoneFile, origin *string) error {
	cl, err := classify(tokens, p.schema)
	if err != nil {
		return err
	}

	if cl.directive != nil {
		value, err := parseDirective(cl.directive, p.schema, line)
		if err != nil {
			return err
		}
		if cl.directive.name == "$ORIGIN" {
			*origin, _ = value.(string)
		}
		// a repeated directive silently overwrites the previous value
		zf[strings.ToLower(cl.directive.name)] = value
		return nil
	}

	rec, err := parseRecord(cl.record, p.schema, line)
	if err != nil {
		return err
	}
	if cl.record.rtype == "PTR" {
		if *origin == "" {
			return &ParseError{Line: line, Reason: "PTR record requires a prior $ORIGIN"}
		}
		rec["fullname"] = cl.record.name + "." + *origin
	}

	key := strings.ToLower(cl.record.rtype)
	recs, _ := zf[key].([]Record)
	zf[key] = append(recs, rec)
	return nil
}
