package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/api-sage/xubank-ledger/src/internal/domain"
)

func registerClient(t *testing.T, bank *domain.Bank, name string, taxID string) *domain.Client {
	t.Helper()

	client := domain.NewClient(name, taxID)
	if err := bank.AddClient(client); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	return client
}

func TestBankAddClientRejectsDuplicateAndInvalidTaxID(t *testing.T) {
	bank := domain.NewBank()
	registerClient(t, bank, "Ada", "123.456.789-00")

	if err := bank.AddClient(domain.NewClient("Imposter", "12345678900")); !errors.Is(err, domain.ErrDuplicateClient) {
		t.Fatalf("expected ErrDuplicateClient, got %v", err)
	}
	if err := bank.AddClient(domain.NewClient("Nobody", "--")); !errors.Is(err, domain.ErrInvalidTaxID) {
		t.Fatalf("expected ErrInvalidTaxID, got %v", err)
	}
	if len(bank.Clients()) != 1 {
		t.Fatalf("expected 1 client, got %d", len(bank.Clients()))
	}
}

func TestBankFindClientNormalizesTaxID(t *testing.T) {
	bank := domain.NewBank()
	ada := registerClient(t, bank, "Ada", "12345678900")

	found, ok := bank.FindClient("123.456.789-00")
	if !ok || found != ada {
		t.Fatal("expected to find Ada by formatted tax id")
	}
	if _, ok := bank.FindClient("000"); ok {
		t.Fatal("expected unknown tax id to be absent")
	}
}

func TestBankFindAccountAcrossClients(t *testing.T) {
	bank := domain.NewBank()
	ada := registerClient(t, bank, "Ada", "111")
	bob := registerClient(t, bank, "Bob", "222")
	_ = ada.AddAccount(domain.NewSavingsAccount(1, ada))
	_ = bob.AddAccount(domain.NewInvestmentAccount(2, bob))

	account, ok := bank.FindAccount(2)
	if !ok || account.Owner() != bob {
		t.Fatal("expected account 2 to belong to Bob")
	}
	if _, ok := bank.FindAccount(3); ok {
		t.Fatal("expected account 3 to be absent")
	}
}

func TestBankAverageBalanceWithoutAccountsIsZero(t *testing.T) {
	bank := domain.NewBank()
	registerClient(t, bank, "Ada", "111")

	if avg := bank.AverageBalance(); !avg.IsZero() {
		t.Fatalf("expected zero average, got %s", avg)
	}
}

func TestBankAverageBalance(t *testing.T) {
	bank := domain.NewBank()
	ada := registerClient(t, bank, "Ada", "111")
	bob := registerClient(t, bank, "Bob", "222")

	savings := domain.NewSavingsAccount(1, ada)
	_ = savings.Deposit(dec("100"))
	investment := domain.NewInvestmentAccount(2, bob)
	_ = investment.Deposit(dec("200"))
	_ = ada.AddAccount(savings)
	_ = bob.AddAccount(investment)
	_ = bob.AddAccount(domain.NewFixedIncomeAccount(3, bob))

	if avg := bank.AverageBalance(); !avg.Equal(dec("100")) {
		t.Fatalf("expected average 100, got %s", avg)
	}
	if bank.AccountCount() != 3 {
		t.Fatalf("expected 3 accounts, got %d", bank.AccountCount())
	}
}

func TestBankCustodyByType(t *testing.T) {
	bank := domain.NewBank()
	ada := registerClient(t, bank, "Ada", "111")
	bob := registerClient(t, bank, "Bob", "222")

	checking, _ := domain.NewCheckingAccount(1, ada, dec("0"))
	_ = checking.Deposit(dec("1000"))
	adaSavings := domain.NewSavingsAccount(2, ada)
	_ = adaSavings.Deposit(dec("150"))
	bobSavings := domain.NewSavingsAccount(3, bob)
	_ = bobSavings.Deposit(dec("50.25"))
	_ = ada.AddAccount(checking)
	_ = ada.AddAccount(adaSavings)
	_ = bob.AddAccount(bobSavings)

	if custody := bank.CustodyByType(domain.AccountKindSavings); !custody.Equal(dec("200.25")) {
		t.Fatalf("expected savings custody 200.25, got %s", custody)
	}
	if custody := bank.CustodyByType(domain.AccountKindInvestment); !custody.IsZero() {
		t.Fatalf("expected zero investment custody, got %s", custody)
	}
}

func TestBankExtremalClients(t *testing.T) {
	bank := domain.NewBank()
	ada := registerClient(t, bank, "Ada", "111")
	bob := registerClient(t, bank, "Bob", "222")
	eve := registerClient(t, bank, "Eve", "333")

	adaSavings := domain.NewSavingsAccount(1, ada)
	_ = adaSavings.Deposit(dec("500"))
	_ = ada.AddAccount(adaSavings)

	bobChecking, _ := domain.NewCheckingAccount(2, bob, dec("100"))
	_ = bobChecking.Withdraw(dec("40"))
	_ = bob.AddAccount(bobChecking)

	eveSavings := domain.NewSavingsAccount(3, eve)
	_ = eveSavings.Deposit(dec("500"))
	_ = eve.AddAccount(eveSavings)

	richest, ok := bank.ClientWithMaxBalance()
	if !ok || richest != ada {
		t.Fatal("expected Ada to win the tie for richest")
	}
	poorest, ok := bank.ClientWithMinBalance()
	if !ok || poorest != bob {
		t.Fatal("expected Bob to be the poorest")
	}
}

func TestBankExtremalClientsTieGoesToFirst(t *testing.T) {
	bank := domain.NewBank()
	ada := registerClient(t, bank, "Ada", "111")
	registerClient(t, bank, "Bob", "222")

	richest, _ := bank.ClientWithMaxBalance()
	poorest, _ := bank.ClientWithMinBalance()
	if richest != ada || poorest != ada {
		t.Fatal("expected the first registered client for both extremes")
	}
}

func TestBankExtremalClientsEmpty(t *testing.T) {
	bank := domain.NewBank()

	if _, ok := bank.ClientWithMaxBalance(); ok {
		t.Fatal("expected no richest client")
	}
	if _, ok := bank.ClientWithMinBalance(); ok {
		t.Fatal("expected no poorest client")
	}
}

func TestBankReport(t *testing.T) {
	bank := domain.NewBank()
	ada := registerClient(t, bank, "Ada", "111")
	investment := domain.NewInvestmentAccount(1, ada)
	_ = investment.Deposit(dec("400"))
	_ = ada.AddAccount(investment)

	report := bank.Report(fixedNow)

	if report.ClientCount != 1 || report.AccountCount != 1 {
		t.Fatalf("expected 1 client and 1 account, got %d and %d", report.ClientCount, report.AccountCount)
	}
	if !report.GeneratedAt.Equal(fixedNow) {
		t.Fatalf("expected generated at %s, got %s", fixedNow.Format(time.RFC3339), report.GeneratedAt.Format(time.RFC3339))
	}
	if len(report.Custody) != len(domain.AccountKinds) {
		t.Fatalf("expected custody for every kind, got %d", len(report.Custody))
	}
	if !report.Custody[domain.AccountKindInvestment].Equal(dec("400")) {
		t.Fatalf("expected investment custody 400, got %s", report.Custody[domain.AccountKindInvestment])
	}
	if report.Richest == nil || report.Richest.Name != "Ada" {
		t.Fatalf("expected Ada as richest, got %+v", report.Richest)
	}
	if report.Poorest == nil || !report.Poorest.TotalBalance.Equal(dec("400")) {
		t.Fatalf("expected poorest total 400, got %+v", report.Poorest)
	}
}
