package project

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/obra/internal/testutil"
	"github.com/thenoetrevino/obra/internal/testutil/cli"
)

func TestDeleteProject_Positive(t *testing.T) {
	// Setup test DB and App
	db, app := cli.SetupCLITest(t)
	defer func() {
		err := db.Close()
		assert.NoError(t, err)
	}()

	t.Run("Delete project with force flag", func(t *testing.T) {
		projectID := cli.CreateTestProject(t, db, "Doomed Project")

		cmd := DeleteCmd()

		output, err := cli.ExecuteCLICommand(t, app, cmd, []string{
			fmt.Sprintf("%d", projectID),
			"--force",
		})

		assert.NoError(t, err)
		assert.Contains(t, output, "deleted successfully")

		var count int
		err = db.QueryRowContext(context.Background(),
			"SELECT COUNT(*) FROM projects WHERE project_id = ?", projectID).Scan(&count)
		assert.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("Delete cascades to materials, steps, and category links", func(t *testing.T) {
		projectID := cli.CreateTestProject(t, db, "Cascade Project")
		testutil.CreateTestMaterial(t, db, projectID, "Plywood sheet", 2, decimal.RequireFromString("28"))
		testutil.CreateTestStep(t, db, projectID, "Cut the panels", 1)
		categoryID := cli.CreateTestCategory(t, db, "Storage")
		cli.LinkTestCategory(t, db, projectID, categoryID)

		cmd := DeleteCmd()

		_, err := cli.ExecuteCLICommand(t, app, cmd, []string{
			"--id", fmt.Sprintf("%d", projectID),
			"--force", "--quiet",
		})

		assert.NoError(t, err)

		var materials, steps, links int
		err = db.QueryRowContext(context.Background(),
			"SELECT COUNT(*) FROM material WHERE project_id = ?", projectID).Scan(&materials)
		assert.NoError(t, err)
		err = db.QueryRowContext(context.Background(),
			"SELECT COUNT(*) FROM step WHERE project_id = ?", projectID).Scan(&steps)
		assert.NoError(t, err)
		err = db.QueryRowContext(context.Background(),
			"SELECT COUNT(*) FROM project_category WHERE project_id = ?", projectID).Scan(&links)
		assert.NoError(t, err)

		assert.Equal(t, 0, materials)
		assert.Equal(t, 0, steps)
		assert.Equal(t, 0, links)

		// The category itself survives; only the link is removed
		var categories int
		err = db.QueryRowContext(context.Background(),
			"SELECT COUNT(*) FROM category WHERE category_id = ?", categoryID).Scan(&categories)
		assert.NoError(t, err)
		assert.Equal(t, 1, categories)
	})

	t.Run("Delete in quiet mode prints nothing", func(t *testing.T) {
		projectID := cli.CreateTestProject(t, db, "Silent Delete")

		cmd := DeleteCmd()

		output, err := cli.ExecuteCLICommand(t, app, cmd, []string{
			fmt.Sprintf("%d", projectID),
			"--force", "--quiet",
		})

		assert.NoError(t, err)
		assert.Empty(t, output)
	})

	t.Run("Delete in JSON mode", func(t *testing.T) {
		projectID := cli.CreateTestProject(t, db, "JSON Delete")

		cmd := DeleteCmd()

		output, err := cli.ExecuteCLICommand(t, app, cmd, []string{
			fmt.Sprintf("%d", projectID),
			"--force", "--json",
		})

		assert.NoError(t, err)

		result := cli.ParseJSON(t, output)
		assert.True(t, result["success"].(bool))
		assert.Equal(t, float64(projectID), result["project_id"])
	})

	t.Run("Deleting one project leaves the others untouched", func(t *testing.T) {
		keepID := cli.CreateTestProject(t, db, "Keeper")
		testutil.CreateTestStep(t, db, keepID, "Keeper step", 1)
		dropID := cli.CreateTestProject(t, db, "Dropped")

		cmd := DeleteCmd()

		_, err := cli.ExecuteCLICommand(t, app, cmd, []string{
			fmt.Sprintf("%d", dropID),
			"--force", "--quiet",
		})

		assert.NoError(t, err)

		var keeperSteps int
		err = db.QueryRowContext(context.Background(),
			"SELECT COUNT(*) FROM step WHERE project_id = ?", keepID).Scan(&keeperSteps)
		assert.NoError(t, err)
		assert.Equal(t, 1, keeperSteps)
	})
}
