package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storebot/internal/application/catalog"
	"github.com/jhoicas/storebot/internal/domain/entity"
)

func named(names ...string) []entity.Product {
	products := make([]entity.Product, 0, len(names))
	for i, name := range names {
		products = append(products, entity.Product{Code: string(rune('A' + i)), Name: name})
	}
	return products
}

func TestFilterByCategory_SubstringMatch(t *testing.T) {
	products := named("Шампур стандарт", "ШАМПУР люкс", "Мангал XL", "Набор шпажек")

	got := catalog.FilterByCategory(products, "шампура")
	require.Len(t, got, 3, "case-insensitive substring match over name")
	assert.Equal(t, "Шампур стандарт", got[0].Name)
	assert.Equal(t, "ШАМПУР люкс", got[1].Name)
	assert.Equal(t, "Набор шпажек", got[2].Name)
}

func TestFilterByCategory_UnknownKeyYieldsEmpty(t *testing.T) {
	products := named("Шампур стандарт")
	assert.Empty(t, catalog.FilterByCategory(products, "нет такой"))
}

func TestFilterByCategory_NoMatches(t *testing.T) {
	// Catalog holds only a мангал; the шампура category has nothing.
	products := named("Мангал XL")
	assert.Empty(t, catalog.FilterByCategory(products, "шампура"))
}

func TestFilterByCategory_ProductCanMatchSeveralCategories(t *testing.T) {
	products := named("Набор шампуров")
	assert.Len(t, catalog.FilterByCategory(products, "шампура"), 1)
	assert.Len(t, catalog.FilterByCategory(products, "наборы"), 1)
}

func TestFilterByCategory_MembershipProperty(t *testing.T) {
	products := named("Шампур стандарт", "Мангал XL", "Турка медная", "Чайник эмаль", "Швабра про")

	for key, keywords := range catalog.Categories {
		for _, p := range products {
			inResult := false
			for _, got := range catalog.FilterByCategory(products, key) {
				if got.Code == p.Code {
					inResult = true
				}
			}
			expected := false
			for _, kw := range keywords {
				if strings.Contains(strings.ToLower(p.Name), kw) {
					expected = true
				}
			}
			assert.Equal(t, expected, inResult, "category %q product %q", key, p.Name)
		}
	}
}

func TestCategoryKeys_MenuOrderAndComplete(t *testing.T) {
	keys := catalog.CategoryKeys()
	require.Len(t, keys, len(catalog.Categories))

	want := []string{
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
	assert.Equal(t, want, keys, "keys must follow the menu order, not alphabetical order")

	for _, k := range keys {
		_, ok := catalog.Categories[k]
		assert.True(t, ok, "listed key %q must exist in the category map", k)
	}
}
