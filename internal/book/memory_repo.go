package book

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo keeps books in a map. It backs tests and BOOKS_STORE=memory.
type MemoryRepo struct {
	mu    sync.RWMutex
	books map[string]Book
}

// NewMemoryRepo constructs a MemoryRepo seeded with the provided books.
func NewMemoryRepo(seed ...Book) *MemoryRepo {
	repo := &MemoryRepo{books: make(map[string]Book, len(seed))}
	for _, b := range seed {
		repo.books[b.ISBN] = clone(b)
	}
	return repo
}

// clone copies b so callers never share the AmazonURL pointer with the map.
func clone(b Book) Book {
	if b.AmazonURL != nil {
		v := *b.AmazonURL
		b.AmazonURL = &v
	}
	return b
}

// List returns all books in ascending ISBN order.
func (r *MemoryRepo) List(_ context.Context) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Book, 0, len(r.books))
	for _, b := range r.books {
		out = append(out, clone(b))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ISBN < out[j].ISBN
	})
	return out, nil
}

func (r *MemoryRepo) GetByISBN(_ context.Context, isbn string) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[isbn]
	if !ok {
		return Book{}, ErrNotFound
	}
	return clone(b), nil
}

func (r *MemoryRepo) Create(_ context.Context, b Book) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.books[b.ISBN]; exists {
		return Book{}, ErrConflict
	}
	r.books[b.ISBN] = clone(b)
	return clone(b), nil
}

func (r *MemoryRepo) Update(_ context.Context, isbn string, p Patch) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[isbn]
	if !ok {
		return Book{}, ErrNotFound
	}
	b = p.Apply(b)
	r.books[isbn] = b
	return clone(b), nil
}

func (r *MemoryRepo) Delete(_ context.Context, isbn string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[isbn]; !ok {
		return ErrNotFound
	}
	delete(r.books, isbn)
	return nil
}

// Ping always succeeds.
func (r *MemoryRepo) Ping(_ context.Context) error {
	return nil
}
