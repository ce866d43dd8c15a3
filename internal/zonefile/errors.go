package zonefile

import "fmt"

// ParseError reports a line whose tokens do not match any supported record
// shape, or whose fields fail to convert to their declared types. Line holds
// the offending normalized line for diagnostics.
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse line %q: %s", e.Line, e.Reason)
}

// ConfigurationError reports a defect in the record schema table supplied to
// the parser. This is a programming error in the caller's configuration, not
// a property of the input text.
type ConfigurationError struct {
	Type   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Type == "" {
		return "invalid record schema: " + e.Reason
	}
	return fmt.Sprintf("invalid record schema for %s: %s", e.Type, e.Reason)
}
