package export

import (
	"testing"
	"time"

	"github.com/AIS170/xrpl-hackathon/internal/domain"
)

func TestHistoryWorkbook(t *testing.T) {
	history := []domain.TransactionRecord{
		{
			Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			Type:      domain.TransactionBuy,
			Asset:     "BTC",
			Amount:    1,
			ImpactAUD: 1000,
		},
		{
			Timestamp: time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
			Type:      domain.TransactionSell,
			Asset:     "BTC",
			Amount:    2,
			ImpactAUD: 2000,
		},
	}

	f, err := HistoryWorkbook(history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(HistorySheet)
	if err != nil {
		t.Fatalf("reading rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2 entries", len(rows))
	}
	if rows[0][0] != "Timestamp" || rows[0][1] != "Type" {
		t.Errorf("header row = %v, want Timestamp/Type/...", rows[0])
	}
	if rows[1][1] != "BUY" || rows[1][2] != "BTC" {
		t.Errorf("first entry = %v, want BUY BTC", rows[1])
	}
	if rows[1][0] != "2025-06-01T12:00:00Z" {
		t.Errorf("first timestamp = %q, want RFC3339 UTC", rows[1][0])
	}
	if rows[2][1] != "SELL" {
		t.Errorf("second entry = %v, want SELL", rows[2])
	}
}

func TestHistoryWorkbookEmpty(t *testing.T) {
	f, err := HistoryWorkbook(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(HistorySheet)
	if err != nil {
		t.Fatalf("reading rows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want header only", len(rows))
	}
}
