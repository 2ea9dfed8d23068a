package book

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookFromPayload(t *testing.T) {
	payload := validPayload()
	payload["pages"] = json.Number("100.0")
	payload["year"] = json.Number("2.008e3")

	assert.Equal(t, testBook(), bookFromPayload(payload))
}

func TestPatchFromPayload(t *testing.T) {
	p := patchFromPayload(map[string]any{
		"title": "UPDATED BOOK",
		"pages": json.Number("1e2"),
	})

	assert.Equal(t, Patch{Title: strPtr("UPDATED BOOK"), Pages: intPtr(100)}, p)
	assert.True(t, patchFromPayload(map[string]any{}).Empty())
}
