// Package console drives the ledger from a numbered text menu. It only
// collects input and prints results; every rule lives behind the
// LedgerService it is given.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/api-sage/xubank-ledger/src/internal/adapter/export"
	"github.com/api-sage/xubank-ledger/src/internal/commons"
	"github.com/api-sage/xubank-ledger/src/internal/domain"
	"github.com/api-sage/xubank-ledger/src/internal/logger"
	"github.com/api-sage/xubank-ledger/src/internal/models"
	"github.com/api-sage/xubank-ledger/src/internal/usecase/service_interfaces"
)

const menuText = `
Welcome to XuBank. Choose an option:
1. Register client
2. Open account
3. Deposit
4. Withdraw
5. View balance
6. Apply yield
7. Clients with highest and lowest balance
8. Custody by account type
9. Average account balance
10. View statements
11. Close account
12. Quote fixed-income withdrawal tax
13. Publish report
14. Export statements to spreadsheet
0. Exit
`

const kindMenuText = `Choose the account type:
1. Checking
2. Savings
3. Fixed income
4. Investment`

// errInputClosed ends the loop when input runs out mid-prompt.
var errInputClosed = errors.New("input closed")

type Menu struct {
	svc      service_interfaces.LedgerService
	in       *bufio.Scanner
	out      io.Writer
	currency string
}

func NewMenu(svc service_interfaces.LedgerService, in io.Reader, out io.Writer, currency string) *Menu {
	return &Menu{
		svc:      svc,
		in:       bufio.NewScanner(in),
		out:      out,
		currency: currency,
	}
}

// Run loops until the user picks 0, input ends or ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printf("%s\n", menuText)
		line, err := m.readLine()
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		option, convErr := strconv.Atoi(line)
		if convErr != nil {
			m.printf("Invalid option. Try again.\n")
			continue
		}
		if option == 0 {
			m.printf("Goodbye.\n")
			return nil
		}

		if err := m.dispatch(ctx, option); err != nil {
			if errors.Is(err, errInputClosed) {
				return nil
			}
			return err
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, option int) error {
	switch option {
	case 1:
		return m.registerClient(ctx)
	case 2:
		return m.openAccount(ctx)
	case 3:
		return m.deposit(ctx)
	case 4:
		return m.withdraw(ctx)
	case 5:
		return m.balance(ctx)
	case 6:
		return m.applyYield(ctx)
	case 7:
		m.extremalClients(ctx)
	case 8:
		return m.custody(ctx)
	case 9:
		m.averageBalance(ctx)
	case 10:
		return m.statements(ctx)
	case 11:
		return m.closeAccount(ctx)
	case 12:
		return m.withdrawalTax(ctx)
	case 13:
		m.publishReport(ctx)
	case 14:
		return m.exportStatements(ctx)
	default:
		m.printf("Invalid option. Try again.\n")
	}
	return nil
}

func (m *Menu) registerClient(ctx context.Context) error {
	name, err := m.ask("Enter the client name:")
	if err != nil {
		return err
	}
	taxID, err := m.ask("Enter the client tax id (CPF):")
	if err != nil {
		return err
	}

	resp, svcErr := m.svc.RegisterClient(ctx, models.RegisterClientRequest{Name: name, TaxID: taxID})
	if _, ok := outcome(m, resp, svcErr); ok {
		m.printf("Client registered successfully.\n")
	}
	return nil
}

func (m *Menu) openAccount(ctx context.Context) error {
	taxID, err := m.ask("Enter the client tax id (CPF):")
	if err != nil {
		return err
	}
	kind, ok, err := m.askKind()
	if err != nil || !ok {
		return err
	}
	accountID, ok, err := m.askInt("Enter the account number:")
	if err != nil || !ok {
		return err
	}

	req := models.OpenAccountRequest{TaxID: taxID, AccountID: accountID, Kind: string(kind)}
	if kind == domain.AccountKindChecking {
		req.CreditLimit, err = m.ask("Enter the credit limit:")
		if err != nil {
			return err
		}
	}

	resp, svcErr := m.svc.OpenAccount(ctx, req)
	if _, ok := outcome(m, resp, svcErr); ok {
		m.printf("Account opened successfully.\n")
	}
	return nil
}

func (m *Menu) deposit(ctx context.Context) error {
	req, ok, err := m.askAmount("Enter the amount to deposit:")
	if err != nil || !ok {
		return err
	}

	resp, svcErr := m.svc.Deposit(ctx, req)
	if data, ok := outcome(m, resp, svcErr); ok {
		m.printf("Deposit completed. Current balance: %s\n", m.money(data.Balance))
	}
	return nil
}

func (m *Menu) withdraw(ctx context.Context) error {
	req, ok, err := m.askAmount("Enter the amount to withdraw:")
	if err != nil || !ok {
		return err
	}

	resp, svcErr := m.svc.Withdraw(ctx, req)
	if data, ok := outcome(m, resp, svcErr); ok {
		m.printf("Withdrawal completed. Current balance: %s\n", m.money(data.Balance))
	}
	return nil
}

func (m *Menu) balance(ctx context.Context) error {
	accountID, ok, err := m.askInt("Enter the account number:")
	if err != nil || !ok {
		return err
	}

	resp, svcErr := m.svc.GetBalance(ctx, models.AccountRequest{AccountID: accountID})
	if data, ok := outcome(m, resp, svcErr); ok {
		m.printf("Account balance: %s\n", m.money(data.Balance))
	}
	return nil
}

func (m *Menu) applyYield(ctx context.Context) error {
	accountID, ok, err := m.askInt("Enter the account number to apply yield:")
	if err != nil || !ok {
		return err
	}

	resp, svcErr := m.svc.ApplyYield(ctx, models.AccountRequest{AccountID: accountID})
	if data, ok := outcome(m, resp, svcErr); ok {
		m.printf("Yield applied: %s gross, %s fee. Current balance: %s\n",
			m.money(data.Gross), m.money(data.Fee), m.money(data.Balance))
	}
	return nil
}

func (m *Menu) extremalClients(ctx context.Context) {
	resp, svcErr := m.svc.GetExtremalClients(ctx)
	data, ok := outcome(m, resp, svcErr)
	if !ok {
		return
	}
	if data.Richest == nil || data.Poorest == nil {
		m.printf("No clients registered.\n")
		return
	}

	m.printf("Client with the highest balance: %s - %s\n", data.Richest.Name, m.money(data.Richest.TotalBalance))
	m.printf("Client with the lowest balance: %s - %s\n", data.Poorest.Name, m.money(data.Poorest.TotalBalance))
}

func (m *Menu) custody(ctx context.Context) error {
	kind, ok, err := m.askKind()
	if err != nil || !ok {
		return err
	}

	resp, svcErr := m.svc.GetCustody(ctx, models.CustodyRequest{Kind: string(kind)})
	if data, ok := outcome(m, resp, svcErr); ok {
		m.printf("Total in custody for %s: %s\n", data.Kind, m.money(data.Total))
	}
	return nil
}

func (m *Menu) averageBalance(ctx context.Context) {
	resp, svcErr := m.svc.GetAverageBalance(ctx)
	if data, ok := outcome(m, resp, svcErr); ok {
		m.printf("Average account balance: %s\n", m.money(data.Average))
	}
}

func (m *Menu) statements(ctx context.Context) error {
	taxID, err := m.ask("Enter the client tax id (CPF) to view statements:")
	if err != nil {
		return err
	}

	resp, svcErr := m.svc.GetStatements(ctx, models.ClientRequest{TaxID: taxID})
	data, ok := outcome(m, resp, svcErr)
	if !ok {
		return nil
	}

	m.printf("Statements for %s\n", data.Client.Name)
	if len(data.Accounts) == 0 {
		m.printf("No accounts.\n")
	}
	for _, account := range data.Accounts {
		m.printf("Account %d (%s) - balance %s\n", account.AccountID, account.Kind, m.money(account.Balance))
		if len(account.Entries) == 0 {
			m.printf("  no transactions\n")
		}
		for _, entry := range account.Entries {
			m.printf("  %s\n", entry)
		}
	}
	return nil
}

func (m *Menu) closeAccount(ctx context.Context) error {
	accountID, ok, err := m.askInt("Enter the account number to close:")
	if err != nil || !ok {
		return err
	}

	resp, svcErr := m.svc.CloseAccount(ctx, models.AccountRequest{AccountID: accountID})
	if data, ok := outcome(m, resp, svcErr); ok {
		m.printf("Account %d closed. Final balance: %s\n", data.AccountID, m.money(data.Balance))
	}
	return nil
}

func (m *Menu) withdrawalTax(ctx context.Context) error {
	req, ok, err := m.askAmount("Enter the amount to withdraw:")
	if err != nil || !ok {
		return err
	}

	resp, svcErr := m.svc.GetWithdrawalTax(ctx, req)
	if data, ok := outcome(m, resp, svcErr); ok {
		m.printf("Withdrawal tax on %s: %s\n", m.money(data.Amount), m.money(data.Tax))
	}
	return nil
}

func (m *Menu) publishReport(ctx context.Context) {
	resp, svcErr := m.svc.PublishReport(ctx)
	if data, ok := outcome(m, resp, svcErr); ok {
		m.printf("Report %s published (%d clients, %d accounts).\n", data.ID, data.ClientCount, data.AccountCount)
	}
}

func (m *Menu) exportStatements(ctx context.Context) error {
	taxID, err := m.ask("Enter the client tax id (CPF) to export statements:")
	if err != nil {
		return err
	}
	path, err := m.ask("Enter the output file (.xlsx):")
	if err != nil {
		return err
	}
	if path == "" {
		m.printf("An output file is required.\n")
		return nil
	}

	resp, svcErr := m.svc.GetStatements(ctx, models.ClientRequest{TaxID: taxID})
	data, ok := outcome(m, resp, svcErr)
	if !ok {
		return nil
	}

	if err := export.WriteStatements(path, *data); err != nil {
		logger.Error("console export statements failed", err, logger.Fields{"path": path})
		m.printf("Could not export statements: %v\n", err)
		return nil
	}
	m.printf("Statements for %s exported to %s\n", data.Client.Name, path)
	return nil
}

// askAmount reads an account number followed by an amount.
func (m *Menu) askAmount(prompt string) (models.AmountRequest, bool, error) {
	accountID, ok, err := m.askInt("Enter the account number:")
	if err != nil || !ok {
		return models.AmountRequest{}, ok, err
	}
	amount, err := m.ask(prompt)
	if err != nil {
		return models.AmountRequest{}, false, err
	}
	return models.AmountRequest{AccountID: accountID, Amount: amount}, true, nil
}

func (m *Menu) askKind() (domain.AccountKind, bool, error) {
	choice, ok, err := m.askInt(kindMenuText)
	if err != nil || !ok {
		return "", ok, err
	}
	if choice < 1 || choice > len(domain.AccountKinds) {
		m.printf("Invalid account type.\n")
		return "", false, nil
	}
	return domain.AccountKinds[choice-1], true, nil
}

// askInt reports ok=false after telling the user when the answer is not a
// whole number.
func (m *Menu) askInt(prompt string) (int, bool, error) {
	raw, err := m.ask(prompt)
	if err != nil {
		return 0, false, err
	}
	value, convErr := strconv.Atoi(raw)
	if convErr != nil {
		m.printf("Invalid number: %q\n", raw)
		return 0, false, nil
	}
	return value, true, nil
}

func (m *Menu) ask(prompt string) (string, error) {
	m.printf("%s\n", prompt)
	return m.readLine()
}

func (m *Menu) readLine() (string, error) {
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// outcome prints the failure carried by resp and reports whether the call
// produced data.
func outcome[T any](m *Menu, resp commons.Response[T], err error) (*T, bool) {
	if err == nil && resp.Success && resp.Data != nil {
		return resp.Data, true
	}

	m.printf("%s\n", resp.Failure(err))
	return nil, false
}

func (m *Menu) money(amount string) string {
	return m.currency + " " + amount
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
