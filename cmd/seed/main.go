package main

import (
	"context"
	"fmt"
	"os"

	"goa.design/clue/log"

	"fortiercars/internal/config"
	"fortiercars/internal/database"
)

// seed migrates the schema and fills empty tables with the example catalog, then exits.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	ctx := log.Context(context.Background(), log.WithFormat(log.FormatTerminal))

	db, err := database.Open(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf(ctx, err, "Failed to initialize database")
	}
	defer database.Close(db)

	store := database.NewStore(db)
	if err := store.Bootstrap(ctx, true); err != nil {
		database.Close(db)
		os.Exit(1)
	}

	for _, c := range []struct {
		name  string
		count func(context.Context, database.Filter) (int64, error)
	}{
		{"testimonials", store.Testimonials.Count},
		{"vehicles", store.Vehicles.Count},
	} {
		n, err := c.count(ctx, nil)
		if err != nil {
			log.Errorf(ctx, err, "Failed to count %s", c.name)
			continue
		}
		log.Printf(ctx, "%s: %d records", c.name, n)
	}
	fmt.Println("Database is ready.")
}
