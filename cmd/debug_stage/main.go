package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"inventory-manager/core/config"
	"inventory-manager/core/database"
	"inventory-manager/core/reconcile"
	"inventory-manager/core/source"
	"inventory-manager/core/storage"
	"inventory-manager/feature/inventory"

	"go.uber.org/zap"
)

// debugOutput is written to debug_stage.json.
type debugOutput struct {
	Source string               `json:"source"`
	Staged []reconcile.Metadata `json:"staged"`
	Loaded []reconcile.Metadata `json:"loaded"`
	Report *reconcile.Report    `json:"report"`
}

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatal(err)
	}

	src, err := source.New(cfg.Source, client, cfg.Storage.Bucket, zap.NewNop())
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	mgr := inventory.NewManager(src, zap.NewNop())
	store := inventory.NewStore(db)

	fmt.Println("=== STEP 1: Staging ===")
	staged, err := mgr.Stage(ctx)
	if err != nil {
		log.Fatal(err)
	}
	out := debugOutput{Source: cfg.Source.Kind}
	for _, ext := range staged {
		fmt.Printf("staged %s %q %s (%d devices)\n", ext.Meta.ID, ext.Meta.DisplayName, ext.Meta.Version, len(ext.Devices))
		out.Staged = append(out.Staged, ext.Metadata())
	}

	fmt.Println("\n=== STEP 2: Loaded extensions ===")
	out.Loaded, err = store.ListLoaded(ctx)
	if err != nil {
		log.Fatal(err)
	}
	for _, m := range out.Loaded {
		fmt.Printf("loaded %s %q %s\n", m.ID, m.DisplayName, m.Version)
	}

	fmt.Println("\n=== STEP 3: Dry-run reconciliation ===")
	opts := cfg.Reconcile.Options()
	opts.DryRun = true
	out.Report, err = reconcile.Reconcile(ctx, store, staged, out.Loaded, opts, zap.NewNop())
	if err != nil {
		log.Fatal(err)
	}
	for _, a := range out.Report.Actions {
		fmt.Printf("%-6s %s (%s)\n", a.Type, a.ID, a.Reason)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("debug_stage.json", data, 0644); err != nil {
		log.Fatal(err)
	}
	fmt.Println("\nWrote debug_stage.json")
}
