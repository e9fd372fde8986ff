package export_test

import (
	"bytes"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/api-sage/xubank-ledger/src/internal/adapter/export"
	"github.com/api-sage/xubank-ledger/src/internal/models"
	"github.com/xuri/excelize/v2"
)

func sampleStatements() models.StatementsResponse {
	return models.StatementsResponse{
		Client: models.ClientResponse{Name: "Ada", TaxID: "111", AccountCount: 2, TotalBalance: "1006.00"},
		Accounts: []models.StatementLine{
			{
				AccountID: 7,
				Kind:      "SAVINGS",
				Balance:   "1006.00",
				Transactions: []models.TransactionResponse{
					{ID: "a", Time: "2024-01-02T10:00:00Z", Kind: "Deposit", Amount: "1000.00", Fee: "0.00", Balance: "1000.00"},
					{ID: "b", Time: "2024-02-02T10:00:00Z", Kind: "Yield", Amount: "6.00", Fee: "0.00", Balance: "1006.00"},
				},
			},
			{AccountID: 9, Kind: "CHECKING", Balance: "0.00"},
		},
	}
}

func TestStatementsWorkbook(t *testing.T) {
	data, err := export.StatementsWorkbook(sampleStatements())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("expected readable workbook, got %v", err)
	}
	defer f.Close()

	want := []string{"Summary", "Account 7", "Account 9"}
	if got := f.GetSheetList(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected sheets %v, got %v", want, got)
	}

	name, _ := f.GetCellValue("Summary", "B1")
	if name != "Ada" {
		t.Fatalf("expected client name Ada, got %q", name)
	}

	rows, err := f.GetRows("Account 7")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[2][1] != "Yield" || rows[2][4] != "1006" || rows[2][5] != "b" {
		t.Fatalf("unexpected yield row %v", rows[2])
	}

	empty, _ := f.GetRows("Account 9")
	if len(empty) != 1 {
		t.Fatalf("expected only the header for an account without history, got %d rows", len(empty))
	}
}

func TestWriteStatements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ada.xlsx")

	if err := export.WriteStatements(path, sampleStatements()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("expected saved workbook, got %v", err)
	}
	defer f.Close()

	balance, _ := f.GetCellValue("Summary", "B3")
	if balance != "1006" {
		t.Fatalf("expected total balance 1006, got %q", balance)
	}
}

func TestWriteStatementsBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "ada.xlsx")

	if err := export.WriteStatements(path, sampleStatements()); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
