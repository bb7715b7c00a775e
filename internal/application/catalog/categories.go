package catalog

import (
	"strings"

	"github.com/jhoicas/storebot/internal/domain/entity"
)

// Categories maps a category key to the lowercase substrings that place a
// product in it. Matching is a flat OR-combined substring check against the
// product name, so a product may land in several categories.
var Categories = map[string][]string{
	"шампура":      {"шампур", "шпажк"},
	"печи":         {"печь", "мангал"},
	"гриль":        {"гриль", "барбекю"},
	"наборы":       {"набор", "комплект"},
	"миски":        {"миска"},
	"турки":        {"турка"},
	"чайники":      {"чайник"},
	"овощерезки":   {"овощерезк"},
	"обогреватели": {"обогреватель"},
	"для уборки":   {"швабр"},
}

// categoryOrder fixes the menu order the keys are rendered in.
var categoryOrder = []string{
	"шампура",
	"печи",
	"гриль",
	"наборы",
	"миски",
	"турки",
	"чайники",
	"овощерезки",
	"обогреватели",
	"для уборки",
}

// CategoryKeys returns the category keys in menu order.
func CategoryKeys() []string {
	return append([]string(nil), categoryOrder...)
}

// FilterByCategory returns every product whose lowercased name contains at
// least one keyword of the category. An unknown key yields an empty result.
func FilterByCategory(products []entity.Product, key string) []entity.Product {
	keywords := Categories[key]
	var result []entity.Product
	for _, p := range products {
		name := strings.ToLower(p.Name)
		if containsAny(name, keywords) {
			result = append(result, p)
		}
	}
	return result
}
