// Package present renders a sheet's grid for a human: a bordered table
// with column-letter headers and 1-based row numbers, or a plain
// tab-separated dump. Both are presentation-layer collaborators — the
// core engine in package sheet never imports this package.
package present

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/kalexmills/cellgraph/position"
	"github.com/kalexmills/cellgraph/sheet"
)

// ColumnWidth is the fixed cell width used by the bordered renderers,
// matching the reference implementation's 12-character columns.
const ColumnWidth = 12

// cellText renders one grid cell as text, for WriteTexts.
func cellText(s *sheet.Sheet, pos position.Position) string {
	cell, _ := s.GetCell(pos)
	if cell == nil {
		return ""
	}
	return cell.GetText()
}

// cellValue renders one grid cell's value, for WriteValues.
func cellValue(s *sheet.Sheet, pos position.Position) string {
	cell, _ := s.GetCell(pos)
	if cell == nil {
		return ""
	}
	return cell.GetValue().String()
}

// WriteValues renders the sheet's values as a bordered table with
// column-letter headers, grounded on Sheet::PrintValues in the reference
// sheet.cpp.
func WriteValues(w io.Writer, s *sheet.Sheet) error {
	return writeBordered(w, s, cellValue)
}

// WriteTexts renders the sheet's raw cell text the same way WriteValues
// renders values, grounded on Sheet::PrintTexts.
func WriteTexts(w io.Writer, s *sheet.Sheet) error {
	return writeBordered(w, s, cellText)
}

func writeBordered(w io.Writer, s *sheet.Sheet, render func(*sheet.Sheet, position.Position) string) error {
	size := s.GetPrintableSize()
	rowHeaderWidth := rowsHeaderSize(size.Rows)
	boundary := boundaryLine(rowHeaderWidth, size.Cols, ColumnWidth)

	if err := writeHeader(w, rowHeaderWidth, size.Cols); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, boundary); err != nil {
		return err
	}
	for row := 0; row < size.Rows; row++ {
		if _, err := fmt.Fprintf(w, "%*d|", rowHeaderWidth, row+1); err != nil {
			return err
		}
		for col := 0; col < size.Cols; col++ {
			if col > 0 {
				if _, err := fmt.Fprint(w, "|"); err != nil {
					return err
				}
			}
			cellStr := render(s, position.New(row, col))
			if _, err := fmt.Fprint(w, fit(cellStr, ColumnWidth)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "|"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, boundary); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(w io.Writer, rowHeaderWidth, cols int) error {
	if _, err := fmt.Fprint(w, strings.Repeat(" ", rowHeaderWidth), "|"); err != nil {
		return err
	}
	for col := 0; col < cols; col++ {
		if _, err := fmt.Fprintf(w, "%*s|", ColumnWidth, columnLetters(col)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func boundaryLine(rowHeaderWidth, cols, width int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("-", rowHeaderWidth))
	b.WriteByte('|')
	for col := 0; col < cols; col++ {
		b.WriteString(strings.Repeat("-", width))
		b.WriteByte('|')
	}
	return b.String()
}

func rowsHeaderSize(rows int) int {
	if rows <= 0 {
		return 0
	}
	n := 0
	for rows > 0 {
		rows /= 10
		n++
	}
	return n
}

func columnLetters(col int) string {
	var buf []byte
	c := col
	for c >= 0 {
		buf = append([]byte{byte('A' + c%26)}, buf...)
		c = c/26 - 1
	}
	return string(buf)
}

// fit truncates s with a trailing ellipsis if it exceeds width, and
// right-aligns it within width otherwise.
func fit(s string, width int) string {
	if len(s) <= width {
		return fmt.Sprintf("%*s", width, s)
	}
	keep := width - 3
	if keep < 0 {
		keep = 0
	}
	return s[:keep] + "..."
}

// WriteTabular renders the sheet as plain tab-separated values, one row
// per line — the alternate layout kept as commented-out "old versions" of
// PrintValues/PrintTexts in the reference sheet.cpp.
func WriteTabular(w io.Writer, s *sheet.Sheet, values bool) error {
	size := s.GetPrintableSize()
	tw := tabwriter.NewWriter(w, 0, 2, 1, '\t', 0)
	render := cellText
	if values {
		render = cellValue
	}
	for row := 0; row < size.Rows; row++ {
		cells := make([]string, size.Cols)
		for col := 0; col < size.Cols; col++ {
			cells[col] = render(s, position.New(row, col))
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}
