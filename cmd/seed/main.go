// Command seed resets the configured snapshot store to the freshly seeded
// state: reference treks and companies, no verifications, no reviews, nobody
// logged in. Existing data is overwritten, so it asks first.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/trektrust/trektrust-backend/config"
	"github.com/trektrust/trektrust-backend/internal/store"
	"github.com/trektrust/trektrust-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.Initialize(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		EnableColor: true,
	})

	backend, err := store.Open(cfg)
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}
	defer backend.Close()

	snapshot := store.NewSeededSnapshot()
	fmt.Printf("Seeding %s store with %d treks and %d companies.\n",
		cfg.Store.Backend, len(snapshot.Treks), len(snapshot.Companies))
	fmt.Print("This overwrites any existing snapshot. Proceed? (yes/no): ")

	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Seed cancelled.")
		return
	}

	if err := backend.Save(context.Background(), snapshot); err != nil {
		log.Fatal("Failed to write seeded snapshot:", err)
	}

	fmt.Println("Seed completed successfully!")
}
