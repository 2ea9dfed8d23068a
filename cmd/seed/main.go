package main

import (
	"context"
	"errors"
	"log"
	"time"

	"bookstore/internal/book"
	"bookstore/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg := config.MustLoad()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("Failed to connect to database (%s): %v", config.RedactDSN(cfg.DatabaseURL()), err)
	}
	defer pool.Close()

	repo := book.NewPostgresRepo(pool, cfg.Postgres.QueryTimeout)

	inserted, skipped, err := seed(ctx, repo, SeedData())
	if err != nil {
		log.Fatalf("Failed to seed books: %v", err)
	}
	log.Printf("Seeded books: inserted=%d skipped=%d", inserted, skipped)
}

// seed creates every book, skipping ISBNs that already exist.
func seed(ctx context.Context, repo book.Repository, books []book.Book) (inserted, skipped int, err error) {
	for _, b := range books {
		opCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		_, err := repo.Create(opCtx, b)
		cancel()
		switch {
		case err == nil:
			inserted++
		case errors.Is(err, book.ErrConflict):
			skipped++
		default:
			return inserted, skipped, err
		}
	}
	return inserted, skipped, nil
}
