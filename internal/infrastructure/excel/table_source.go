// Package excel adapts an .xlsx workbook to the TableSource port using
// excelize. Reads return tagged cells; writes overwrite the sheet with the
// whole catalog, header row included.
package excel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/storebot/internal/domain/entity"
	"github.com/jhoicas/storebot/internal/domain/repository"
	"github.com/jhoicas/storebot/internal/domain/table"
)

// Persisted header labels, in the fixed code/name/stock/price column order.
// They contain the loader's keywords so a persisted catalog loads back.
var headerLabels = []string{"Код", "Наименование", "Остаток", "Цена"}

// TableSource reads and writes the catalog workbook at Path. An empty
// Sheet means the first sheet of the workbook.
type TableSource struct {
	Path  string
	Sheet string
}

var _ repository.TableSource = (*TableSource)(nil)

// NewTableSource builds a table source for the given workbook path.
func NewTableSource(path, sheet string) *TableSource {
	return &TableSource{Path: path, Sheet: sheet}
}

// ReadAll returns every row of the sheet as tagged cells.
func (t *TableSource) ReadAll() ([]table.Row, error) {
	f, err := excelize.OpenFile(t.Path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", t.Path, err)
	}
	defer f.Close()

	sheet := t.Sheet
	if sheet == "" {
		sheet = f.GetSheetList()[0]
	}
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	rows := make([]table.Row, len(raw))
	for i, r := range raw {
		row := make(table.Row, len(r))
		for j, v := range r {
			row[j] = classify(v)
		}
		rows[i] = row
	}
	return rows, nil
}

// classify maps a raw cell value onto the cell variant: empty, numeric, or
// text.
func classify(v string) table.Cell {
	if strings.TrimSpace(v) == "" {
		return table.Empty()
	}
	if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
		return table.Number(n)
	}
	return table.Text(v)
}

// WriteAll replaces the workbook contents with a header row followed by one
// row per product. There is no incremental update; the catalog is small and
// the whole table is rewritten on every edit.
func (t *TableSource) WriteAll(products []entity.Product) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetList()[0]
	if t.Sheet != "" && t.Sheet != sheet {
		f.SetSheetName(sheet, t.Sheet)
		sheet = t.Sheet
	}

	for col, label := range headerLabels {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, label); err != nil {
			return err
		}
	}
	for i, p := range products {
		row := i + 2
		values := []interface{}{p.Code, p.Name, p.Stock, p.Price.InexactFloat64()}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(t.Path); err != nil {
		return fmt.Errorf("save workbook %s: %w", t.Path, err)
	}
	return nil
}
