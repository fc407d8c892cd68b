// Command migrate creates or updates the database schema and exits.
package main

import (
	"context"
	"log"
	"time"

	"github.com/Skotchmaster/nile/internal/config"
	"github.com/Skotchmaster/nile/internal/db"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			log.Printf("db close: %v", err)
		}
	}()

	if err := db.Migrate(ctx, gdb); err != nil {
		log.Fatalf("%v", err)
	}
	log.Println("schema is up to date")
}
