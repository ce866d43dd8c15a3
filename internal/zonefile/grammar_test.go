package zonefile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRecordShapes(t *testing.T) {
	schema := DefaultSchema()

	tests := []struct {
		name      string
		tokens    []string
		wantType  string
		wantTTL   string
		wantClass string
		wantRData []string
		missing   bool
	}{
		{
			name:      "no-ttl-no-class",
			tokens:    []string{"www", "A", "1.2.3.4"},
			wantType:  "A",
			wantRData: []string{"1.2.3.4"},
			missing:   true,
		},
		{
			name:      "ttl-only",
			tokens:    []string{"www", "3600", "A", "1.2.3.4"},
			wantType:  "A",
			wantTTL:   "3600",
			wantRData: []string{"1.2.3.4"},
			missing:   true,
		},
		{
			name:      "class-only",
			tokens:    []string{"www", "IN", "A", "1.2.3.4"},
			wantType:  "A",
			wantClass: "IN",
			wantRData: []string{"1.2.3.4"},
		},
		{
			name:      "ttl-then-class",
			tokens:    []string{"www", "3600", "IN", "A", "1.2.3.4"},
			wantType:  "A",
			wantTTL:   "3600",
			wantClass: "IN",
			wantRData: []string{"1.2.3.4"},
		},
		{
			name:      "class-then-ttl",
			tokens:    []string{"www", "IN", "3600", "A", "1.2.3.4"},
			wantType:  "A",
			wantTTL:   "3600",
			wantClass: "IN",
			wantRData: []string{"1.2.3.4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl, err := classify(tt.tokens, schema)
			require.NoError(t, err)
			require.NotNil(t, cl.record)
			assert.Nil(t, cl.directive)
			assert.Equal(t, tt.wantType, cl.record.rtype)
			assert.Equal(t, "www", cl.record.name)
			assert.Equal(t, tt.wantTTL, cl.record.ttl)
			assert.Equal(t, tt.wantClass, cl.record.class)
			assert.Equal(t, tt.wantRData, cl.record.rdata)
			assert.Equal(t, tt.missing, cl.record.missingClass)
		})
	}
}

func TestClassifyDirective(t *testing.T) {
	cl, err := classify([]string{"$ORIGIN", "example.com"}, DefaultSchema())
	require.NoError(t, err)
	require.NotNil(t, cl.directive)
	assert.Equal(t, "$ORIGIN", cl.directive.name)
	assert.Equal(t, []string{"example.com"}, cl.directive.args)
}

func TestClassifyUnrecognizedShape(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{name: "no-type-anywhere", tokens: []string{"www", "1.2.3.4"}},
		{name: "type-too-late", tokens: []string{"a", "b", "c", "d", "A", "1.2.3.4"}},
		{name: "unknown-directive", tokens: []string{"$GENERATE", "1-10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := classify(tt.tokens, DefaultSchema())
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
		})
	}
}

func TestParseRecordFieldTyping(t *testing.T) {
	schema := DefaultSchema()

	cl, err := classify([]string{"_sip._tcp", "SRV", "10", "60", "5060", "sip.example.com"}, schema)
	require.NoError(t, err)

	rec, err := parseRecord(cl.record, schema, "")
	require.NoError(t, err)
	assert.Equal(t, "_sip._tcp", rec["name"])
	assert.Equal(t, 10, rec["priority"])
	assert.Equal(t, 60, rec["weight"])
	assert.Equal(t, 5060, rec["port"])
	assert.Equal(t, "sip.example.com", rec["target"])
}

func TestParseRecordErrors(t *testing.T) {
	schema := DefaultSchema()

	tests := []struct {
		name   string
		tokens []string
	}{
		{name: "too-few-fields", tokens: []string{"www", "MX", "10"}},
		{name: "too-many-fields", tokens: []string{"www", "A", "1.2.3.4", "extra"}},
		{name: "bad-integer", tokens: []string{"www", "SRV", "ten", "60", "5060", "sip"}},
		{name: "bad-ttl", tokens: []string{"www", "3m", "IN", "A", "1.2.3.4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl, err := classify(tt.tokens, schema)
			require.NoError(t, err)

			_, err = parseRecord(cl.record, schema, Serialize(tt.tokens))
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, Serialize(tt.tokens), perr.Line)
		})
	}
}

func TestParseDirectiveValues(t *testing.T) {
	schema := DefaultSchema()

	cl, err := classify([]string{"$TTL", "86400"}, schema)
	require.NoError(t, err)
	v, err := parseDirective(cl.directive, schema, "")
	require.NoError(t, err)
	assert.Equal(t, 86400, v)

	cl, err = classify([]string{"$ORIGIN", "example.com"}, schema)
	require.NoError(t, err)
	v, err = parseDirective(cl.directive, schema, "")
	require.NoError(t, err)
	assert.Equal(t, "example.com", v)
}

func TestParseDirectiveErrors(t *testing.T) {
	schema := DefaultSchema()

	tests := []struct {
		name   string
		tokens []string
	}{
		{name: "missing-value", tokens: []string{"$TTL"}},
		{name: "extra-value", tokens: []string{"$ORIGIN", "example.com", "extra"}},
		{name: "non-integer-ttl", tokens: []string{"$TTL", "1h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl, err := classify(tt.tokens, schema)
			require.NoError(t, err)

			_, err = parseDirective(cl.directive, schema, Serialize(tt.tokens))
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
		})
	}
}
