package cart

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"farmstand/pkg/money"
)

// SheetName is the worksheet WriteXLSX fills.
const SheetName = "Cart"

var exportHeader = []any{"Name", "Seller", "Price", "Quantity", "Subtotal"}

// WriteXLSX writes the snapshot as a spreadsheet: one row per line item and a closing total row.
func WriteXLSX(w io.Writer, snap Snapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	row := 2
	for _, it := range snap.Items {
		subtotal := money.Format(Total([]LineItem{it}))
		values := []any{it.Name, it.Seller, it.PriceLabel, it.Quantity, subtotal}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("write %s: %w", it.Name, err)
		}
		row++
	}

	totalCell, err := excelize.CoordinatesToCellName(4, row)
	if err != nil {
		return err
	}
	totals := []any{"Total", money.Format(Total(snap.Items))}
	if err := f.SetSheetRow(SheetName, totalCell, &totals); err != nil {
		return fmt.Errorf("write total: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
