package main

import "bookstore/internal/book"

func url(s string) *string { return &s }

// SeedData returns example books to pre-populate the store.
func SeedData() []book.Book {
	return []book.Book{
		{
			ISBN:      "0691161518",
			AmazonURL: url("http://a.co/eobPtX2"),
			Author:    "Matthew Lane",
			Language:  "english",
			Pages:     264,
			Publisher: "Princeton University Press",
			Title:     "Power-Up: Unlocking the Hidden Mathematics in Video Games",
			Year:      2017,
		},
		{
			ISBN:      "9780134190440",
			AmazonURL: url("https://www.amazon.com/dp/0134190440"),
			Author:    "Alan A. A. Donovan",
			Language:  "english",
			Pages:     380,
			Publisher: "Addison-Wesley",
			Title:     "The Go Programming Language",
			Year:      2015,
		},
		{
			ISBN:      "9781491941195",
			AmazonURL: url("https://www.amazon.com/dp/1491941197"),
			Author:    "Katherine Cox-Buday",
			Language:  "english",
			Pages:     238,
			Publisher: "O'Reilly Media",
			Title:     "Concurrency in Go",
			Year:      2017,
		},
	}
}
