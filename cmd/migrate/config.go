package main

import (
	"os"
)

// migrationsDir is where "create" writes new migration files on disk.
func migrationsDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return "db/migrations"
}
