// Package catalog holds the pure catalog logic: parsing products out of an
// untyped spreadsheet and classifying them into categories.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storebot/internal/domain"
	"github.com/jhoicas/storebot/internal/domain/entity"
	"github.com/jhoicas/storebot/internal/domain/table"
)

// headerScanLimit caps how many leading rows are scanned for headers.
const headerScanLimit = 50

// Header field keywords, matched as lowercase substrings. Suppliers export
// the stock table with varying layouts, so columns are located by keyword
// instead of position.
var (
	codeKeyword  = "код"
	nameKeywords = []string{"наименование", "название"}
	stockKeyword = "остаток"
	priceKeyword = "цена"
)

type header struct {
	code, name, stock, price int
}

// findHeader scans at most headerScanLimit rows for the four field columns.
// The first column matching each keyword wins and is never overwritten.
// It returns the header and the index of the first data row, or
// domain.ErrMissingColumns if some field was never located.
func findHeader(rows []table.Row) (header, int, error) {
	h := header{code: -1, name: -1, stock: -1, price: -1}

	limit := len(rows)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}
	for i := 0; i < limit; i++ {
		for col, cell := range rows[i] {
			if cell.Kind != table.KindText {
				continue
			}
			text := strings.ToLower(strings.TrimSpace(cell.Text))
			if text == "" {
				continue
			}
			switch {
			case h.code < 0 && strings.Contains(text, codeKeyword):
				h.code = col
			case h.name < 0 && containsAny(text, nameKeywords):
				h.name = col
			case h.stock < 0 && strings.Contains(text, stockKeyword):
				h.stock = col
			case h.price < 0 && strings.Contains(text, priceKeyword):
				h.price = col
			}
		}
		if h.code >= 0 && h.name >= 0 && h.stock >= 0 && h.price >= 0 {
			return h, i + 1, nil
		}
	}
	return h, 0, domain.ErrMissingColumns
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// Parse turns a raw table into products. Rows before the detected header
// are ignored; data rows missing code or name are skipped, and stock/price
// cells that are empty or non-numeric fall back to zero. A table with no
// detectable header yields an empty catalog and domain.ErrMissingColumns —
// the caller is expected to log it loudly and keep serving.
func Parse(rows []table.Row) ([]entity.Product, error) {
	h, start, err := findHeader(rows)
	if err != nil {
		return nil, err
	}

	var products []entity.Product
	for _, row := range rows[start:] {
		code := cellAt(row, h.code).String()
		name := cellAt(row, h.name).String()
		if code == "" || name == "" {
			continue
		}
		products = append(products, entity.Product{
			Code:  code,
			Name:  name,
			Stock: cellAt(row, h.stock).Int(),
			Price: decimal.NewFromFloat(cellAt(row, h.price).Float()),
		})
	}
	return products, nil
}

func cellAt(row table.Row, col int) table.Cell {
	if col < 0 || col >= len(row) {
		return table.Empty()
	}
	return row[col]
}
