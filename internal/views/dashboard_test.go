package views

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emmanuelos.dev/internal/models"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func sampleApp() models.AppDescriptor {
	return models.AppDescriptor{
		Slug:        "budget-buddy",
		DisplayName: "Budget Buddy",
		Description: "Envelope budgeting.",
		Category:    "Finance",
		MVPFeatures: []string{"Envelopes", "CSV import", "Reports", "Sharing"},
		TechStack:   []string{"Go"},
		GitHubURL:   "https://github.com/x/budget-buddy",
		LiveURL:     "https://budget-buddy.example.com",
	}
}

func TestPageLoadingRendersOnlyIndicator(t *testing.T) {
	body := render(t, Page(models.DashboardView{Loading: true}))

	assert.Contains(t, body, "<!doctype html>")
	assert.Contains(t, body, LoadingMessage)
	assert.Contains(t, body, `http-equiv="refresh"`)
	assert.NotContains(t, body, `id="dashboard"`)
	assert.NotContains(t, body, EmptyMessage)
	assert.NotContains(t, body, "<article")
}

func TestPageLoaded(t *testing.T) {
	view := models.DashboardView{
		Selected:   "All",
		Categories: []string{"All", "Finance"},
		Apps:       []models.AppDescriptor{sampleApp()},
		Total:      1,
	}
	body := render(t, Page(view))

	assert.Contains(t, body, "<title>EmmanuelOS Dashboard</title>")
	assert.Contains(t, body, "Dynamic dashboard showcasing 1 apps across the EmmanuelOS ecosystem")
	assert.Contains(t, body, `data-slug="budget-buddy"`)
	assert.NotContains(t, body, LoadingMessage)
	assert.NotContains(t, body, `http-equiv="refresh"`)
}

func TestCardRendersFirstThreeFeatures(t *testing.T) {
	body := render(t, Card(sampleApp()))

	assert.Contains(t, body, "<h3>Budget Buddy</h3>")
	assert.Contains(t, body, `<span class="badge badge-finance">Finance</span>`)
	assert.Contains(t, body, "<li>Envelopes</li><li>CSV import</li><li>Reports</li></ul>")
	assert.NotContains(t, body, "Sharing")
	assert.Equal(t, 3, strings.Count(body, "<li>"))
}

func TestCardFeatureCounts(t *testing.T) {
	app := sampleApp()

	app.MVPFeatures = []string{"Only"}
	assert.Equal(t, 1, strings.Count(render(t, Card(app)), "<li>"))

	app.MVPFeatures = nil
	body := render(t, Card(app))
	assert.Contains(t, body, "<ul></ul>")
	assert.Equal(t, 0, strings.Count(body, "<li>"))
}

func TestCardLinksOpenSafely(t *testing.T) {
	body := render(t, Card(sampleApp()))

	assert.Contains(t, body, `href="https://budget-buddy.example.com" target="_blank" rel="noopener noreferrer"`)
	assert.Contains(t, body, `href="https://github.com/x/budget-buddy" target="_blank" rel="noopener noreferrer"`)
	assert.Equal(t, 2, strings.Count(body, `rel="noopener noreferrer"`))
}

func TestCardEscapesManifestText(t *testing.T) {
	app := sampleApp()
	app.DisplayName = `<script>alert("x")</script>`
	app.LiveURL = "javascript:alert(1)"

	body := render(t, Card(app))

	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.NotContains(t, body, "javascript:")
	assert.Contains(t, body, string(templ.FailedSanitizationURL))
}

func TestCardTruncatesDescription(t *testing.T) {
	app := sampleApp()
	app.Description = strings.Repeat("a", MaxDescriptionRunes+50)

	body := render(t, Card(app))

	assert.Contains(t, body, strings.Repeat("a", MaxDescriptionRunes-1)+"…")
	assert.NotContains(t, body, strings.Repeat("a", MaxDescriptionRunes))
}

func TestGridEmptyState(t *testing.T) {
	for _, apps := range [][]models.AppDescriptor{nil, {}} {
		body := render(t, Grid(apps))
		assert.Contains(t, body, EmptyMessage)
		assert.NotContains(t, body, "<article")
		assert.NotContains(t, body, `class="grid"`)
	}
}

func TestGridKeepsOrder(t *testing.T) {
	first, second := sampleApp(), sampleApp()
	first.Slug, second.Slug = "zeta", "alpha"

	body := render(t, Grid([]models.AppDescriptor{first, second}))

	assert.Less(t, strings.Index(body, `data-slug="zeta"`), strings.Index(body, `data-slug="alpha"`))
	assert.NotContains(t, body, EmptyMessage)
}

func TestCardSlugWithWhitespace(t *testing.T) {
	app := sampleApp()
	app.Slug = `my app "v2"`

	body := render(t, Card(app))

	assert.Contains(t, body, `data-slug="my app &#34;v2&#34;"`)
	assert.NotContains(t, body, " id=")
}

func TestCategoryFilter(t *testing.T) {
	body := render(t, CategoryFilter([]string{"All", "Games", "AI/Tech"}, "Games"))

	assert.Contains(t, body, ">🌟 All</a>")
	assert.Contains(t, body, `class="filter" href="/"`)
	assert.Contains(t, body, `class="filter filter-selected" href="/?category=Games"`)
	assert.Contains(t, body, `href="/?category=AI%2FTech"`)
	assert.Equal(t, 1, strings.Count(body, `aria-current="true"`))
}

func TestDashboardFragment(t *testing.T) {
	view := models.DashboardView{Selected: "Games", Categories: []string{"All", "Games"}, Total: 3}
	body := render(t, Dashboard(view))

	assert.True(t, strings.HasPrefix(body, `<div id="dashboard"`))
	assert.NotContains(t, body, "<html")
	assert.Contains(t, body, "showcasing 3 apps")
	assert.Contains(t, body, EmptyMessage)
}
