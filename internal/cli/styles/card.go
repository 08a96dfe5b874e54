package styles

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/obra/internal/models"
)

// RenderProjectCard renders a full project detail card: header, hours,
// difficulty, categories, then materials, steps, and markdown notes.
// The show command and the interactive menu both print this.
func RenderProjectCard(project *models.Project, glamourStyle string) string {
	var content strings.Builder

	// Header
	header := TitleStyle.Render(fmt.Sprintf("#%d: %s", project.ID, project.Name))
	content.WriteString(header)
	content.WriteString("\n\n")

	// Hours and difficulty
	content.WriteString(fmt.Sprintf("%s %s\n",
		LabelStyle.Render("Hours:"),
		RenderHours(project),
	))
	content.WriteString(fmt.Sprintf("%s %s\n",
		LabelStyle.Render("Difficulty:"),
		RenderDifficulty(project.Difficulty),
	))

	// Categories
	content.WriteString(fmt.Sprintf("%s %s\n",
		LabelStyle.Render("Categories:"),
		RenderCategoryChips(project.Categories),
	))

	// Materials
	if len(project.Materials) > 0 {
		content.WriteString("\n")
		content.WriteString(SectionStyle.Render("Materials"))
		content.WriteString("\n")
		for _, m := range project.Materials {
			content.WriteString("  " + ValueStyle.Render(formatMaterial(m)) + "\n")
		}
	}

	// Steps, in build order
	if len(project.Steps) > 0 {
		content.WriteString("\n")
		content.WriteString(SectionStyle.Render("Steps"))
		content.WriteString("\n")
		for _, s := range project.Steps {
			content.WriteString(fmt.Sprintf("  %s %s\n",
				SubtitleStyle.Render(fmt.Sprintf("%d.", s.Order)),
				ValueStyle.Render(s.Text),
			))
		}
	}

	// Notes rendered as markdown
	if project.Notes != "" {
		content.WriteString("\n")
		content.WriteString(SectionStyle.Render("Notes"))
		content.WriteString("\n")
		notes := RenderNotes(project.Notes, CardWidth-8, glamourStyle)
		for _, line := range strings.Split(notes, "\n") {
			content.WriteString("  " + line + "\n")
		}
	}

	return RenderCard(content.String())
}

// RenderProjectLine renders a one-line project summary for list views
func RenderProjectLine(p *models.Project) string {
	line := fmt.Sprintf("[%d] %s - %s", p.ID, TitleStyle.Render(p.Name), RenderHours(p))
	if p.Difficulty != nil {
		line += " - " + RenderDifficulty(p.Difficulty)
	}
	return line
}

// formatMaterial renders one material line like "3x Cedar plank ($12.50 each)"
func formatMaterial(m *models.Material) string {
	var b strings.Builder

	if m.NumRequired != nil {
		fmt.Fprintf(&b, "%dx ", *m.NumRequired)
	}
	b.WriteString(m.Name)
	if m.Cost != nil {
		fmt.Fprintf(&b, " ($%s each)", m.Cost)
	}

	return b.String()
}
