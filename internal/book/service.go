package book

import (
	"context"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every stored book.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

// GetByISBN returns a book by its ISBN.
func (s *Service) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	return s.repo.GetByISBN(ctx, isbn)
}

// Create stores a new book under its caller-supplied ISBN.
func (s *Service) Create(ctx context.Context, b Book) (Book, error) {
	return s.repo.Create(ctx, b)
}

// Update changes the patched fields of a book. An empty patch is a read.
func (s *Service) Update(ctx context.Context, isbn string, p Patch) (Book, error) {
	if p.Empty() {
		return s.repo.GetByISBN(ctx, isbn)
	}
	return s.repo.Update(ctx, isbn, p)
}

// Delete removes a book permanently.
func (s *Service) Delete(ctx context.Context, isbn string) error {
	return s.repo.Delete(ctx, isbn)
}
