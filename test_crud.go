//go:build ignore
// +build ignore

// Smoke script for the project store CRUD cycle against a throwaway
// database file. Run with: go run test_crud.go

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/thenoetrevino/obra/internal/database"
	"github.com/thenoetrevino/obra/internal/models"
)

func main() {
	ctx := context.Background()

	dir, err := os.MkdirTemp("", "obra-crud-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	db, err := database.InitDB(ctx, filepath.Join(dir, "crud.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	store := database.NewProjectStore(db)

	// Test 1: Insert a project
	project, err := store.Insert(ctx, &models.Project{
		Name:           "CRUD Check",
		EstimatedHours: decimal.RequireFromString("6.5"),
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("✓ Insert: Created project ID %d\n", project.ID)

	// Test 2: Fetch all projects
	projects, err := store.FetchAll(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("✓ FetchAll: Found %d projects\n", len(projects))

	// Test 3: Fetch by ID, children included
	fetched, found, err := store.FetchByID(ctx, project.ID)
	if err != nil {
		log.Fatal(err)
	}
	if !found {
		log.Fatalf("project %d missing after insert", project.ID)
	}
	fmt.Printf("✓ FetchByID: Got '%s' with %d materials and %d steps\n",
		fetched.Name, len(fetched.Materials), len(fetched.Steps))

	// Test 4: Update the project
	fetched.Name = "CRUD Check (renamed)"
	updated, err := store.Update(ctx, fetched)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("✓ Update: Row affected = %v\n", updated)

	// Test 5: Delete the project
	deleted, err := store.Delete(ctx, project.ID)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("✓ Delete: Row affected = %v\n", deleted)

	fmt.Println("\nAll CRUD operations passed! ✅")
}
