package services

import "emmanuelos.dev/internal/models"

// DeriveCategories returns "All" followed by each distinct category in
// the order it first appears in apps.
func DeriveCategories(apps []models.AppDescriptor) []string {
	categories := []string{models.AllCategory}
	seen := map[string]struct{}{models.AllCategory: {}}
	for _, app := range apps {
		if _, ok := seen[app.Category]; ok {
			continue
		}
		seen[app.Category] = struct{}{}
		categories = append(categories, app.Category)
	}
	return categories
}

// FilterApps returns the apps whose category equals category exactly,
// keeping manifest order. AllCategory returns apps unchanged.
func FilterApps(apps []models.AppDescriptor, category string) []models.AppDescriptor {
	if category == models.AllCategory {
		return apps
	}
	filtered := make([]models.AppDescriptor, 0, len(apps))
	for _, app := range apps {
		if app.Category == category {
			filtered = append(filtered, app)
		}
	}
	return filtered
}
