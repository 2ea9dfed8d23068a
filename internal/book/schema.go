package book

import "bookstore/internal/validate"

// Integer columns are Postgres INTEGER.
const (
	pagesTag = "gte=1,lte=2147483647"
	yearTag  = "gte=-2147483648,lte=2147483647"
)

// CreateSchema requires every book field, including the caller-chosen ISBN.
var CreateSchema = validate.Schema{
	Fields: []validate.Field{
		{Name: "isbn", Type: validate.String, Required: true, Tag: "min=1"},
		{Name: "amazon_url", Type: validate.String, Required: true, Tag: "url"},
		{Name: "author", Type: validate.String, Required: true},
		{Name: "language", Type: validate.String, Required: true},
		{Name: "pages", Type: validate.Integer, Required: true, Tag: pagesTag},
		{Name: "publisher", Type: validate.String, Required: true},
		{Name: "title", Type: validate.String, Required: true, Tag: "min=1"},
		{Name: "year", Type: validate.Integer, Required: true, Tag: yearTag},
	},
}

// UpdateSchema accepts any subset of the mutable fields. The ISBN cannot be
// changed through an update.
var UpdateSchema = validate.Schema{
	Fields: []validate.Field{
		{Name: "isbn", Forbidden: true},
		{Name: "amazon_url", Type: validate.String, Tag: "url"},
		{Name: "author", Type: validate.String},
		{Name: "language", Type: validate.String},
		{Name: "pages", Type: validate.Integer, Tag: pagesTag},
		{Name: "publisher", Type: validate.String},
		{Name: "title", Type: validate.String, Tag: "min=1"},
		{Name: "year", Type: validate.Integer, Tag: yearTag},
	},
}

// ValidateCreate returns the violated rules of a create payload, nil if valid.
func ValidateCreate(payload map[string]any) []string {
	return CreateSchema.Check(payload)
}

// ValidateUpdate returns the violated rules of an update payload, nil if valid.
func ValidateUpdate(payload map[string]any) []string {
	return UpdateSchema.Check(payload)
}
