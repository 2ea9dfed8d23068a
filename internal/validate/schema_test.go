package validate

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = Schema{
	Fields: []Field{
		{Name: "id", Type: String, Forbidden: true},
		{Name: "name", Type: String, Required: true, Tag: "min=1"},
		{Name: "link", Type: String, Tag: "url"},
		{Name: "count", Type: Integer, Required: true, Tag: "gte=1"},
	},
}

func decode(t *testing.T, body string) map[string]any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var payload map[string]any
	require.NoError(t, dec.Decode(&payload))
	return payload
}

func TestSchemaCheck_Valid(t *testing.T) {
	errs := testSchema.Check(decode(t, `{"name":"a","link":"https://example.com","count":3}`))
	assert.Nil(t, errs)
}

func TestSchemaCheck_ReportsEveryViolation(t *testing.T) {
	errs := testSchema.Check(decode(t, `{"id":"x","link":7,"zeta":1,"alpha":true}`))

	assert.Equal(t, []string{
		"id is not allowed",
		"name is required",
		"link must be a string",
		"count is required",
		"alpha is not allowed",
		"zeta is not allowed",
	}, errs)
}

func TestSchemaCheck_Types(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "fractional integer", body: `{"name":"a","count":1.5}`, want: "count must be an integer"},
		{name: "fractional exponent", body: `{"name":"a","count":15e-1}`, want: "count must be an integer"},
		{name: "out of int64 range", body: `{"name":"a","count":1e300}`, want: "count must be an integer"},
		{name: "string integer", body: `{"name":"a","count":"3"}`, want: "count must be an integer"},
		{name: "null string", body: `{"name":null,"count":3}`, want: "name must be a string"},
		{name: "number string", body: `{"name":12,"count":3}`, want: "name must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := testSchema.Check(decode(t, tt.body))
			assert.Equal(t, []string{tt.want}, errs)
		})
	}
}

func TestSchemaCheck_Tags(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "empty string", body: `{"name":"","count":3}`, want: "name must not be empty"},
		{name: "bad url", body: `{"name":"a","link":"not a url","count":3}`, want: "link must be a valid URL"},
		{name: "below minimum", body: `{"name":"a","count":0}`, want: "count must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := testSchema.Check(decode(t, tt.body))
			assert.Equal(t, []string{tt.want}, errs)
		})
	}
}

func TestSchemaCheck_AllowUnknown(t *testing.T) {
	s := Schema{Fields: []Field{{Name: "name", Type: String}}, AllowUnknown: true}
	assert.Nil(t, s.Check(map[string]any{"name": "a", "other": 1}))
}

func TestSchemaCheck_WholeNumberNotations(t *testing.T) {
	for _, body := range []string{
		`{"name":"a","count":100}`,
		`{"name":"a","count":100.0}`,
		`{"name":"a","count":1e2}`,
		`{"name":"a","count":1.00E+2}`,
	} {
		assert.Nil(t, testSchema.Check(decode(t, body)), body)
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		raw    any
		want   int64
		wantOK bool
	}{
		{raw: json.Number("100"), want: 100, wantOK: true},
		{raw: json.Number("100.0"), want: 100, wantOK: true},
		{raw: json.Number("1e2"), want: 100, wantOK: true},
		{raw: json.Number("-2.0"), want: -2, wantOK: true},
		{raw: json.Number("2.5"), wantOK: false},
		{raw: float64(7), want: 7, wantOK: true},
		{raw: "7", wantOK: false},
		{raw: nil, wantOK: false},
	}

	for _, tt := range tests {
		got, ok := Int(tt.raw)
		assert.Equal(t, tt.wantOK, ok, "%v", tt.raw)
		if tt.wantOK {
			assert.Equal(t, tt.want, got, "%v", tt.raw)
		}
	}
}

func TestSchemaCheck_RejectsNUL(t *testing.T) {
	errs := testSchema.Check(decode(t, `{"name":"a\u0000b","count":3}`))
	assert.Equal(t, []string{"name must not contain NUL characters"}, errs)
}

func TestSchemaCheck_Float64Numbers(t *testing.T) {
	s := Schema{Fields: []Field{{Name: "count", Type: Integer}}}

	assert.Nil(t, s.Check(map[string]any{"count": float64(4)}))
	assert.Equal(t, []string{"count must be an integer"}, s.Check(map[string]any{"count": 4.2}))
}

func TestSchemaCheck_Deterministic(t *testing.T) {
	payload := decode(t, `{"b":1,"a":2,"c":3}`)
	first := testSchema.Check(payload)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, testSchema.Check(payload))
	}
}
