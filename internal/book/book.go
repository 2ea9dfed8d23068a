package book

import (
	"errors"
)

var (
	// ErrNotFound is returned when no book has the requested ISBN.
	ErrNotFound = errors.New("book not found")
	// ErrConflict is returned when a book with the same ISBN already exists.
	ErrConflict = errors.New("book already exists")
)

// Book represents a book entity. ISBN is the primary key and never changes.
type Book struct {
	ISBN      string  `json:"isbn"`
	AmazonURL *string `json:"amazon_url"`
	Author    string  `json:"author"`
	Language  string  `json:"language"`
	Pages     int     `json:"pages"`
	Publisher string  `json:"publisher"`
	Title     string  `json:"title"`
	Year      int     `json:"year"`
}

// Patch holds the fields of an update. Nil fields are left untouched.
// The ISBN is not part of a patch.
type Patch struct {
	AmazonURL *string `json:"amazon_url"`
	Author    *string `json:"author"`
	Language  *string `json:"language"`
	Pages     *int    `json:"pages"`
	Publisher *string `json:"publisher"`
	Title     *string `json:"title"`
	Year      *int    `json:"year"`
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.AmazonURL == nil && p.Author == nil && p.Language == nil &&
		p.Pages == nil && p.Publisher == nil && p.Title == nil && p.Year == nil
}

// Apply returns b with the patch fields set.
func (p Patch) Apply(b Book) Book {
	if p.AmazonURL != nil {
		v := *p.AmazonURL
		b.AmazonURL = &v
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Language != nil {
		b.Language = *p.Language
	}
	if p.Pages != nil {
		b.Pages = *p.Pages
	}
	if p.Publisher != nil {
		b.Publisher = *p.Publisher
	}
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Year != nil {
		b.Year = *p.Year
	}
	return b
}

// columns returns the column/value pairs set by the patch, in a fixed order.
func (p Patch) columns() ([]string, []any) {
	var cols []string
	var args []any
	add := func(col string, set bool, v any) {
		if set {
			cols = append(cols, col)
			args = append(args, v)
		}
	}
	add("amazon_url", p.AmazonURL != nil, p.AmazonURL)
	add("author", p.Author != nil, p.Author)
	add("language", p.Language != nil, p.Language)
	add("pages", p.Pages != nil, p.Pages)
	add("publisher", p.Publisher != nil, p.Publisher)
	add("title", p.Title != nil, p.Title)
	add("year", p.Year != nil, p.Year)
	return cols, args
}
