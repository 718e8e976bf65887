package models

// AllCategory is the filter value meaning "no category restriction"
const AllCategory = "All"

// AppDescriptor represents one application listed on the dashboard
type AppDescriptor struct {
	Slug        string   `json:"slug"`
	DisplayName string   `json:"displayName"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	MVPFeatures []string `json:"mvpFeatures"`
	TechStack   []string `json:"techStack"`
	GitHubURL   string   `json:"githubUrl"`
	LiveURL     string   `json:"liveUrl"`
}

// Manifest wraps the array of apps as served in apps_manifest.json
type Manifest struct {
	Apps []AppDescriptor `json:"apps"`
}

// DashboardView is the derived view rendered for a single request
type DashboardView struct {
	Loading    bool            `json:"loading"`
	Selected   string          `json:"category"`
	Categories []string        `json:"categories"`
	Apps       []AppDescriptor `json:"apps"`
	Total      int             `json:"total"` // apps in the whole manifest
}
