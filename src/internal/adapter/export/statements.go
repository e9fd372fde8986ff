// Package export writes client statements to spreadsheet files.
package export

import (
	"bytes"
	"fmt"
	"os"

	"github.com/api-sage/xubank-ledger/src/internal/models"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const summarySheet = "Summary"

var transactionHeader = []string{"Time", "Kind", "Amount", "Fee", "Balance", "Transaction ID"}

// StatementsWorkbook renders a summary sheet followed by one sheet per
// account, in the order the statements list them.
func StatementsWorkbook(statements models.StatementsResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return nil, fmt.Errorf("rename summary sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	summary := [][]any{
		{"Client", statements.Client.Name},
		{"Tax ID", statements.Client.TaxID},
		{"Total balance", amount(statements.Client.TotalBalance)},
		{},
		{"Account", "Kind", "Balance", "Transactions"},
	}
	for _, account := range statements.Accounts {
		summary = append(summary, []any{account.AccountID, account.Kind, amount(account.Balance), len(account.Transactions)})
	}
	if err := writeRows(f, summarySheet, summary); err != nil {
		return nil, err
	}
	_ = f.SetCellStyle(summarySheet, "A1", "A3", bold)
	_ = f.SetCellStyle(summarySheet, "A5", "D5", bold)

	for _, account := range statements.Accounts {
		sheet := fmt.Sprintf("Account %d", account.AccountID)
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", sheet, err)
		}

		rows := make([][]any, 0, len(account.Transactions)+1)
		header := make([]any, 0, len(transactionHeader))
		for _, name := range transactionHeader {
			header = append(header, name)
		}
		rows = append(rows, header)
		for _, tx := range account.Transactions {
			rows = append(rows, []any{tx.Time, tx.Kind, amount(tx.Amount), amount(tx.Fee), amount(tx.Balance), tx.ID})
		}
		if err := writeRows(f, sheet, rows); err != nil {
			return nil, err
		}

		last, _ := excelize.CoordinatesToCellName(len(transactionHeader), 1)
		_ = f.SetCellStyle(sheet, "A1", last, bold)
		_ = f.SetColWidth(sheet, "A", "A", 22)
		_ = f.SetColWidth(sheet, "F", "F", 38)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteStatements saves the workbook to path, replacing any existing file.
func WriteStatements(path string, statements models.StatementsResponse) error {
	data, err := StatementsWorkbook(statements)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save workbook %q: %w", path, err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}

// amount stores formatted amounts as numbers so the sheet can sum them.
func amount(formatted string) any {
	d, err := decimal.NewFromString(formatted)
	if err != nil {
		return formatted
	}
	return d.InexactFloat64()
}
