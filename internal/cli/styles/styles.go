package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/obra/internal/config"
	"github.com/thenoetrevino/obra/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Estimated:", "Difficulty:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Materials", "Steps"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Border)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Create))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

// RenderCategoryChips renders categories as "[Woodworking] [Gardening]"
func RenderCategoryChips(categories []*models.Category) string {
	if len(categories) == 0 {
		return SubtitleStyle.Render("none")
	}

	chips := make([]string, len(categories))
	for i, c := range categories {
		chips[i] = LabelStyle.Render("[" + c.Name + "]")
	}
	return strings.Join(chips, " ")
}

// RenderDifficulty renders a 1-5 difficulty rating as filled and empty dots
// Format: "●●●○○ (3/5)"
func RenderDifficulty(difficulty *int) string {
	if difficulty == nil {
		return SubtitleStyle.Render("unrated")
	}

	d := *difficulty
	dots := strings.Repeat("●", d) + strings.Repeat("○", 5-d)
	return ValueStyle.Render(fmt.Sprintf("%s (%d/5)", dots, d))
}

// RenderHours formats estimated hours, with actual hours when logged
func RenderHours(p *models.Project) string {
	if p.ActualHours == nil {
		return ValueStyle.Render(fmt.Sprintf("%sh estimated", p.EstimatedHours))
	}
	return ValueStyle.Render(fmt.Sprintf("%sh estimated, %sh actual", p.EstimatedHours, p.ActualHours))
}
