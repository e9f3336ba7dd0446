package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/AIS170/xrpl-hackathon/internal/domain"
)

// HistorySheet is the name of the single sheet in the exported workbook.
const HistorySheet = "History"

var historyHeaders = []any{"Timestamp", "Type", "Asset", "Amount", "Impact AUD"}

// HistoryWorkbook renders the transaction history as a one-sheet XLSX
// workbook, one row per recorded trade in history order.
func HistoryWorkbook(history []domain.TransactionRecord) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", HistorySheet); err != nil {
		return nil, fmt.Errorf("naming history sheet: %w", err)
	}

	if err := f.SetSheetRow(HistorySheet, "A1", &historyHeaders); err != nil {
		return nil, fmt.Errorf("writing history headers: %w", err)
	}

	for i, rec := range history {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("computing row cell: %w", err)
		}
		row := []any{
			rec.Timestamp.UTC().Format(time.RFC3339),
			string(rec.Type),
			rec.Asset,
			rec.Amount,
			rec.ImpactAUD,
		}
		if err := f.SetSheetRow(HistorySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("writing history row %d: %w", i+1, err)
		}
	}

	return f, nil
}
