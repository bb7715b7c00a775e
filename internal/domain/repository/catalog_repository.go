package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/storebot/internal/domain/entity"
	"github.com/jhoicas/storebot/internal/domain/table"
)

// ProductRepository is the port for the in-process catalog (DIP). The
// catalog is the single source of truth for both customer and admin flows;
// mutating operations persist the whole catalog before returning.
type ProductRepository interface {
	List() []entity.Product
	Len() int
	Page(page, size int) []entity.Product
	GetByCode(code string) (*entity.Product, error)
	SetPrice(code string, price decimal.Decimal) error
	SetStock(code string, stock int) error
	Add(product entity.Product) error
	Reload() (int, error)
}

// TableSource is the port for the durable tabular file backing the catalog.
// ReadAll yields every row as tagged cells; WriteAll overwrites the table
// wholesale with a header row followed by data rows.
type TableSource interface {
	ReadAll() ([]table.Row, error)
	WriteAll(products []entity.Product) error
}
