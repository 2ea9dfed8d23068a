package book

import "bookstore/internal/validate"

// The builders below read payloads that already passed CreateSchema or
// UpdateSchema, so absent keys are optional fields and present keys carry
// the right JSON type.

func bookFromPayload(payload map[string]any) Book {
	var b Book
	b.ISBN, _ = payload["isbn"].(string)
	b.AmazonURL = stringField(payload, "amazon_url")
	b.Author, _ = payload["author"].(string)
	b.Language, _ = payload["language"].(string)
	b.Publisher, _ = payload["publisher"].(string)
	b.Title, _ = payload["title"].(string)
	if v := intField(payload, "pages"); v != nil {
		b.Pages = *v
	}
	if v := intField(payload, "year"); v != nil {
		b.Year = *v
	}
	return b
}

func patchFromPayload(payload map[string]any) Patch {
	return Patch{
		AmazonURL: stringField(payload, "amazon_url"),
		Author:    stringField(payload, "author"),
		Language:  stringField(payload, "language"),
		Pages:     intField(payload, "pages"),
		Publisher: stringField(payload, "publisher"),
		Title:     stringField(payload, "title"),
		Year:      intField(payload, "year"),
	}
}

func stringField(payload map[string]any, key string) *string {
	s, ok := payload[key].(string)
	if !ok {
		return nil
	}
	return &s
}

func intField(payload map[string]any, key string) *int {
	i, ok := validate.Int(payload[key])
	if !ok {
		return nil
	}
	v := int(i)
	return &v
}
