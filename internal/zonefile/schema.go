package zonefile

import "strings"

// FieldType declares how a schema field's token is converted.
type FieldType int

const (
	// String passes the token through unchanged.
	String FieldType = iota
	// Int parses the token as a base-10 integer.
	Int
)

// Field describes one positional RDATA field of a record type.
type Field struct {
	Name string
	Type FieldType
}

// Schema maps a record-type name (e.g. "MX") to the ordered field descriptors
// of its RDATA. Directive entries (names starting with "$") carry exactly one
// field: the directive's value.
//
// A Schema is treated as immutable configuration; the parser never modifies it.
type Schema map[string][]Field

// DefaultSchema returns the supported record-type vocabulary:
// $ORIGIN, $TTL, SOA, NS, A, AAAA, CNAME, MX, TXT, PTR, SRV, SPF and URI.
func DefaultSchema() Schema {
	return Schema{
		"$ORIGIN": {{Name: "origin", Type: String}},
		"$TTL":    {{Name: "ttl", Type: Int}},
		"SOA": {
			{Name: "mname", Type: String},
			{Name: "rname", Type: String},
			{Name: "serial", Type: Int},
			{Name: "refresh", Type: Int},
			{Name: "retry", Type: Int},
			{Name: "expire", Type: Int},
			{Name: "minimum", Type: Int},
		},
		"NS":    {{Name: "host", Type: String}},
		"A":     {{Name: "ip", Type: String}},
		"AAAA":  {{Name: "ip", Type: String}},
		"CNAME": {{Name: "alias", Type: String}},
		"MX": {
			{Name: "preference", Type: String},
			{Name: "host", Type: String},
		},
		"TXT": {{Name: "txt", Type: String}},
		"PTR": {{Name: "host", Type: String}},
		"SRV": {
			{Name: "priority", Type: Int},
			{Name: "weight", Type: Int},
			{Name: "port", Type: Int},
			{Name: "target", Type: String},
		},
		"SPF": {{Name: "data", Type: String}},
		"URI": {
			{Name: "priority", Type: Int},
			{Name: "weight", Type: Int},
			{Name: "target", Type: String},
		},
	}
}

// validate checks the schema for configuration defects.
func (s Schema) validate() error {
	if len(s) == 0 {
		return &ConfigurationError{Reason: "schema is empty"}
	}
	for name, fields := range s {
		if name == "" {
			return &ConfigurationError{Reason: "record type with empty name"}
		}
		if strings.HasPrefix(name, "$") && len(fields) != 1 {
			return &ConfigurationError{Type: name, Reason: "directives take exactly one value"}
		}
		for _, f := range fields {
			if f.Name == "" {
				return &ConfigurationError{Type: name, Reason: "field with empty name"}
			}
			if f.Type != String && f.Type != Int {
				return &ConfigurationError{Type: name, Reason: "unknown field type for " + f.Name}
			}
		}
	}
	return nil
}
