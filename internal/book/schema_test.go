package book

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() map[string]any {
	return map[string]any{
		"isbn":       "123432122",
		"amazon_url": "https://amazon.com/taco",
		"author":     "Elie",
		"language":   "English",
		"pages":      json.Number("100"),
		"publisher":  "Nothing publishers",
		"title":      "my first book",
		"year":       json.Number("2008"),
	}
}

func TestValidateCreate_Valid(t *testing.T) {
	assert.Nil(t, ValidateCreate(validPayload()))
}

func TestValidateCreate_MissingFieldIsNamed(t *testing.T) {
	for _, f := range CreateSchema.Fields {
		t.Run(f.Name, func(t *testing.T) {
			payload := validPayload()
			delete(payload, f.Name)

			errs := ValidateCreate(payload)
			require.NotEmpty(t, errs)
			assert.True(t, containsField(errs, f.Name), "errors %v do not name %s", errs, f.Name)
		})
	}
}

func TestValidateCreate_OnlyYear(t *testing.T) {
	errs := ValidateCreate(map[string]any{"year": json.Number("2000")})

	assert.Len(t, errs, 7)
	assert.Contains(t, errs, "title is required")
}

func TestValidateCreate_RejectsUnknownField(t *testing.T) {
	payload := validPayload()
	payload["badField"] = "DO NOT ADD ME!"

	assert.Equal(t, []string{"badField is not allowed"}, ValidateCreate(payload))
}

func TestValidateCreate_Types(t *testing.T) {
	payload := validPayload()
	payload["pages"] = "100"
	payload["isbn"] = json.Number("123432122")

	assert.Equal(t, []string{"isbn must be a string", "pages must be an integer"}, ValidateCreate(payload))
}

func TestValidateUpdate_Subset(t *testing.T) {
	assert.Nil(t, ValidateUpdate(map[string]any{"title": "UPDATED BOOK"}))
	assert.Nil(t, ValidateUpdate(map[string]any{}))
}

func TestValidateUpdate_RejectsISBN(t *testing.T) {
	payload := validPayload()

	errs := ValidateUpdate(payload)
	assert.Equal(t, []string{"isbn is not allowed"}, errs)
}

func TestValidateUpdate_ReportsAll(t *testing.T) {
	errs := ValidateUpdate(map[string]any{
		"isbn":     "32794782",
		"badField": "DO NOT ADD ME!",
		"title":    "",
		"year":     "2000",
	})

	assert.Equal(t, []string{
		"isbn is not allowed",
		"title must not be empty",
		"year must be an integer",
		"badField is not allowed",
	}, errs)
}

func containsField(errs []string, field string) bool {
	for _, e := range errs {
		if strings.HasPrefix(e, field+" ") {
			return true
		}
	}
	return false
}
