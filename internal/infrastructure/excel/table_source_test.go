package excel_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storebot/internal/application/catalog"
	"github.com/jhoicas/storebot/internal/domain/entity"
	"github.com/jhoicas/storebot/internal/infrastructure/excel"
)

func testProducts() []entity.Product {
	return []entity.Product{
		{Code: "A1", Name: "Шампур стандарт", Stock: 10, Price: decimal.NewFromFloat(150.5)},
		{Code: "123", Name: "Мангал XL", Stock: 2, Price: decimal.NewFromInt(4500)},
		{Code: "B2", Name: "Набор шпажек", Stock: 0, Price: decimal.NewFromFloat(99.99)},
	}
}

func TestTableSource_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	source := excel.NewTableSource(path, "")

	require.NoError(t, source.WriteAll(testProducts()))

	rows, err := source.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4, "header plus one row per product")

	// The persisted header must be detectable by the loader, so a saved
	// catalog loads back unchanged.
	products, err := catalog.Parse(rows)
	require.NoError(t, err)
	require.Len(t, products, 3)

	for i, want := range testProducts() {
		got := products[i]
		assert.Equal(t, want.Code, got.Code)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Stock, got.Stock)
		assert.True(t, want.Price.Equal(got.Price), "product %s price: want %s got %s", want.Code, want.Price, got.Price)
	}
}

func TestTableSource_WriteAllOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	source := excel.NewTableSource(path, "")

	require.NoError(t, source.WriteAll(testProducts()))
	require.NoError(t, source.WriteAll(testProducts()[:1]))

	rows, err := source.ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 2, "wholesale overwrite, not append")
}

func TestTableSource_NamedSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	source := excel.NewTableSource(path, "Остатки")

	require.NoError(t, source.WriteAll(testProducts()[:1]))

	rows, err := source.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	products, err := catalog.Parse(rows)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "A1", products[0].Code)
}

func TestTableSource_MissingFile(t *testing.T) {
	source := excel.NewTableSource(filepath.Join(t.TempDir(), "absent.xlsx"), "")
	_, err := source.ReadAll()
	assert.Error(t, err)
}
