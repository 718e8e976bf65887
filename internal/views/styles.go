package views

import "unicode/utf8"

// DefaultCategoryStyle is used for any category without its own style.
const DefaultCategoryStyle = "badge-default"

var categoryStyles = map[string]string{
	"Personal": "badge-personal",
	"Business": "badge-business",
	"Finance":  "badge-finance",
	"AI/Tech":  "badge-ai-tech",
	"Faith":    "badge-faith",
	"Games":    "badge-games",
}

// CategoryStyle returns the badge class for category
func CategoryStyle(category string) string {
	if style, ok := categoryStyles[category]; ok {
		return style
	}
	return DefaultCategoryStyle
}

// Truncate shortens text to at most max runes, ending with an ellipsis
// when anything was cut.
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return string(runes[:max-1]) + "…"
}

// TopFeatures returns at most the first MaxFeatures features
func TopFeatures(features []string) []string {
	if len(features) > MaxFeatures {
		return features[:MaxFeatures]
	}
	return features
}
