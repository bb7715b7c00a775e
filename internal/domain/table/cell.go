// Package table models an untyped spreadsheet as rows of tagged cells, so
// the loader can coerce mixed text/number/empty values with defined
// fallbacks instead of guessing per call site.
package table

import (
	"strconv"
	"strings"
)

// Kind tags the cell variant.
type Kind int

const (
	KindEmpty Kind = iota
	KindText
	KindNumber
)

// Cell is one spreadsheet cell: empty, text, or numeric.
type Cell struct {
	Kind   Kind
	Text   string
	Number float64
}

// Row is one spreadsheet row.
type Row []Cell

// Empty returns an empty cell.
func Empty() Cell { return Cell{Kind: KindEmpty} }

// Text returns a text cell.
func Text(s string) Cell { return Cell{Kind: KindText, Text: s} }

// Number returns a numeric cell.
func Number(f float64) Cell { return Cell{Kind: KindNumber, Number: f} }

// String coerces the cell to trimmed text. Numeric cells are formatted
// without a trailing ".0"; empty cells yield "".
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return strings.TrimSpace(c.Text)
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// Float coerces the cell to a number, falling back to 0 for empty or
// non-numeric text cells.
func (c Cell) Float() float64 {
	switch c.Kind {
	case KindNumber:
		return c.Number
	case KindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Int coerces the cell to an integer by truncating Float.
func (c Cell) Int() int {
	return int(c.Float())
}

// IsEmpty reports whether the cell coerces to empty text.
func (c Cell) IsEmpty() bool {
	return c.String() == ""
}
