// Package views renders the dashboard as templ components.
package views

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"emmanuelos.dev/internal/models"
)

const (
	// Title is the page title and heading.
	Title = "EmmanuelOS Dashboard"
	// LoadingMessage is shown while the manifest is loading.
	LoadingMessage = "Loading EmmanuelOS Dashboard..."
	// EmptyMessage replaces the grid when no app matches.
	EmptyMessage = "No apps found in this category."

	// MaxFeatures is how many MVP features a card lists.
	MaxFeatures = 3
	// MaxDescriptionRunes bounds the description shown on a card.
	MaxDescriptionRunes = 180

	// refreshSeconds is how often the loading page asks to be redrawn.
	refreshSeconds = 1
)

// Page renders the full HTML document. While loading, the body holds only
// the loading indicator.
func Page(view models.DashboardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw("<!doctype html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		hw.raw("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		if view.Loading {
			hw.raw("<meta http-equiv=\"refresh\" content=\"" + strconv.Itoa(refreshSeconds) + "\">")
		}
		hw.raw("<title>")
		hw.text(Title)
		hw.raw("</title><link rel=\"stylesheet\" href=\"/static/styles.css\">")
		hw.raw("<script src=\"https://unpkg.com/htmx.org@2.0.4\" defer></script>")
		hw.raw("</head><body>")
		if view.Loading {
			hw.component(Loading())
		} else {
			hw.raw("<main class=\"page\">")
			hw.component(Dashboard(view))
			hw.raw("</main>")
		}
		hw.raw("</body></html>")
		return hw.err
	})
}

// Loading renders the spinner and nothing else.
func Loading() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw("<main class=\"page page-loading\"><div class=\"loading\">")
		hw.raw("<div class=\"spinner\" aria-hidden=\"true\"></div><p>")
		hw.text(LoadingMessage)
		hw.raw("</p></div></main>")
		return hw.err
	})
}

// Dashboard renders the header, the category filter and the grid. It is
// also the fragment swapped in by HTMX requests.
func Dashboard(view models.DashboardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw("<div id=\"dashboard\" class=\"container\"><header class=\"hero\"><h1>")
		hw.text(Title)
		hw.raw("</h1><p class=\"subtitle\">")
		hw.text("Dynamic dashboard showcasing " + strconv.Itoa(view.Total) + " apps across the EmmanuelOS ecosystem")
		hw.raw("</p>")
		hw.component(CategoryFilter(view.Categories, view.Selected))
		hw.raw("</header>")
		hw.component(Grid(view.Apps))
		hw.raw("</div>")
		return hw.err
	})
}

// CategoryFilter renders one button per category. Buttons are plain links
// so the page works without JavaScript; HTMX upgrades them to fragment
// swaps.
func CategoryFilter(categories []string, selected string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw("<nav class=\"filters\">")
		for _, category := range categories {
			href := FilterURL(category)
			class := "filter"
			if category == selected {
				class = "filter filter-selected"
			}
			hw.raw("<a")
			hw.attr("class", class)
			hw.url("href", href)
			hw.attr("hx-get", href)
			hw.raw(" hx-target=\"#dashboard\" hx-swap=\"outerHTML\" hx-push-url=\"true\"")
			if category == selected {
				hw.raw(" aria-current=\"true\"")
			}
			hw.raw(">")
			hw.text(FilterLabel(category))
			hw.raw("</a>")
		}
		hw.raw("</nav>")
		return hw.err
	})
}

// Grid renders a card per app in order, or the empty-state message.
func Grid(apps []models.AppDescriptor) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		if len(apps) == 0 {
			hw.raw("<div class=\"empty\"><p>")
			hw.text(EmptyMessage)
			hw.raw("</p></div>")
			return hw.err
		}
		hw.raw("<section class=\"grid\">")
		for _, app := range apps {
			hw.component(Card(app))
		}
		hw.raw("</section>")
		return hw.err
	})
}

// Card renders a single app.
func Card(app models.AppDescriptor) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw("<article class=\"card\"")
		hw.attr("data-slug", app.Slug)
		hw.raw("><div class=\"card-head\"><h3>")
		hw.text(app.DisplayName)
		hw.raw("</h3>")
		hw.component(Badge(app.Category))
		hw.raw("</div><p class=\"description\">")
		hw.text(Truncate(app.Description, MaxDescriptionRunes))
		hw.raw("</p><div class=\"features\"><h4>Key Features:</h4><ul>")
		for _, feature := range TopFeatures(app.MVPFeatures) {
			hw.raw("<li>")
			hw.text(feature)
			hw.raw("</li>")
		}
		hw.raw("</ul></div><div class=\"links\">")
		hw.raw("<a class=\"link link-live\"")
		hw.url("href", app.LiveURL)
		hw.raw(" target=\"_blank\" rel=\"noopener noreferrer\">🚀 View Live</a>")
		hw.raw("<a class=\"link link-github\"")
		hw.url("href", app.GitHubURL)
		hw.raw(" target=\"_blank\" rel=\"noopener noreferrer\">💻 GitHub</a>")
		hw.raw("</div></article>")
		return hw.err
	})
}

// Badge renders the category label with its style.
func Badge(category string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw("<span")
		hw.attr("class", "badge "+CategoryStyle(category))
		hw.raw(">")
		hw.text(category)
		hw.raw("</span>")
		return hw.err
	})
}

// FilterURL is the dashboard location selecting category.
func FilterURL(category string) string {
	if category == models.AllCategory {
		return "/"
	}
	return "/?category=" + url.QueryEscape(category)
}

// FilterLabel is the button text for category.
func FilterLabel(category string) string {
	if category == models.AllCategory {
		return "🌟 All"
	}
	return category
}
