//go:build ignore
// +build ignore

// Helper script to add demo projects to the database
// Run with: go run add_demo_data.go

package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"github.com/thenoetrevino/obra/internal/database"
	"github.com/thenoetrevino/obra/internal/models"
)

type demoMaterial struct {
	name        string
	numRequired int
	cost        string
}

type demoProject struct {
	name       string
	estimated  string
	actual     string
	difficulty int
	notes      string
	materials  []demoMaterial
	steps      []string
	categories []string
}

func main() {
	ctx := context.Background()

	// Initialize database at the default path
	db, err := database.InitDB(ctx, "")
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	store := database.NewProjectStore(db)

	demos := []demoProject{
		{
			name:       "Raised Garden Bed",
			estimated:  "6.5",
			actual:     "8",
			difficulty: 2,
			notes:      "# Raised Garden Bed\n\nUse untreated cedar so nothing leaches into the soil.",
			materials: []demoMaterial{
				{"Cedar board 2x8", 6, "14.50"},
				{"Exterior screws", 1, "9.99"},
				{"Landscape fabric", 1, "12.00"},
			},
			steps: []string{
				"Cut boards to length",
				"Assemble the frame",
				"Staple fabric to the underside",
				"Level the site and fill with soil",
			},
			categories: []string{"Woodworking", "Gardening"},
		},
		{
			name:       "Replace Bathroom Faucet",
			estimated:  "2",
			difficulty: 3,
			notes:      "Shut off both valves first. Photograph the old supply line routing.",
			materials: []demoMaterial{
				{"Faucet set", 1, "68.00"},
				{"Plumber's tape", 1, "2.49"},
			},
			steps: []string{
				"Shut off water and drain the lines",
				"Remove the old faucet",
				"Seat and seal the new faucet",
				"Reconnect supply lines and test",
			},
			categories: []string{"Plumbing"},
		},
		{
			name:      "Workbench",
			estimated: "12",
			materials: []demoMaterial{
				{"Plywood sheet 3/4\"", 2, "52.00"},
				{"Construction lumber 2x4", 8, "4.25"},
			},
			steps: []string{
				"Build the two leg frames",
				"Join frames with stretchers",
				"Attach the top and lower shelf",
			},
			categories: []string{"Woodworking"},
		},
	}

	for _, d := range demos {
		estimated, err := decimal.NewFromString(d.estimated)
		if err != nil {
			log.Fatalf("Bad estimated hours for '%s': %v", d.name, err)
		}

		project := &models.Project{
			Name:           d.name,
			EstimatedHours: estimated,
			Notes:          d.notes,
		}
		if d.actual != "" {
			actual, err := decimal.NewFromString(d.actual)
			if err != nil {
				log.Fatalf("Bad actual hours for '%s': %v", d.name, err)
			}
			project.ActualHours = &actual
		}
		if d.difficulty != 0 {
			difficulty := d.difficulty
			project.Difficulty = &difficulty
		}

		created, err := store.Insert(ctx, project)
		if err != nil {
			log.Fatalf("Error creating project '%s': %v", d.name, err)
		}
		log.Printf("Created project: %s (ID %d)", created.Name, created.ID)

		for _, m := range d.materials {
			if _, err := db.ExecContext(ctx,
				"INSERT INTO material (project_id, material_name, num_required, cost) VALUES (?, ?, ?, ?)",
				created.ID, m.name, m.numRequired, m.cost,
			); err != nil {
				log.Printf("Error adding material '%s': %v", m.name, err)
			}
		}

		for i, text := range d.steps {
			if _, err := db.ExecContext(ctx,
				"INSERT INTO step (project_id, step_text, step_order) VALUES (?, ?, ?)",
				created.ID, text, i+1,
			); err != nil {
				log.Printf("Error adding step '%s': %v", text, err)
			}
		}

		for _, categoryName := range d.categories {
			if _, err := db.ExecContext(ctx,
				`INSERT OR IGNORE INTO project_category (project_id, category_id)
				 SELECT ?, category_id FROM category WHERE category_name = ?`,
				created.ID, categoryName,
			); err != nil {
				log.Printf("Error linking category '%s': %v", categoryName, err)
			}
		}
	}

	log.Println("Demo data added successfully!")
}
