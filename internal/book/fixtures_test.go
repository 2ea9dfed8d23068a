package book

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

// testBook mirrors the fixture row used throughout the handler and store tests.
func testBook() Book {
	return Book{
		ISBN:      "123432122",
		AmazonURL: strPtr("https://amazon.com/taco"),
		Author:    "Elie",
		Language:  "English",
		Pages:     100,
		Publisher: "Nothing publishers",
		Title:     "my first book",
		Year:      2008,
	}
}
