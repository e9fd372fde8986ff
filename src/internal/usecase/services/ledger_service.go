package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/api-sage/xubank-ledger/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/xubank-ledger/src/internal/commons"
	"github.com/api-sage/xubank-ledger/src/internal/domain"
	"github.com/api-sage/xubank-ledger/src/internal/logger"
	"github.com/api-sage/xubank-ledger/src/internal/models"
	"github.com/api-sage/xubank-ledger/src/internal/usecase/service_interfaces"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Verify that LedgerService implements the service_interfaces.LedgerService interface
var _ service_interfaces.LedgerService = (*LedgerService)(nil)

type LedgerService struct {
	bank       *domain.Bank
	reportRepo repo_interfaces.ReportRepository
	sampler    domain.RateSampler
	now        func() time.Time
}

type LedgerOption func(*LedgerService)

func WithClock(now func() time.Time) LedgerOption {
	return func(s *LedgerService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRateSampler is handed to every variable-yield account opened afterwards.
func WithRateSampler(sampler domain.RateSampler) LedgerOption {
	return func(s *LedgerService) {
		s.sampler = sampler
	}
}

// NewLedgerService wires the service to bank. reportRepo may be nil, in which
// case PublishReport fails with commons.ErrReportsDisabled.
func NewLedgerService(bank *domain.Bank, reportRepo repo_interfaces.ReportRepository, opts ...LedgerOption) *LedgerService {
	s := &LedgerService{
		bank:       bank,
		reportRepo: reportRepo,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LedgerService) RegisterClient(ctx context.Context, req models.RegisterClientRequest) (commons.Response[models.ClientResponse], error) {
	logger.Info("ledger service register client request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	_ = ctx
	if err := req.Validate(); err != nil {
		logger.Error("ledger service register client validation failed", err, nil)
		return commons.ErrorResponse[models.ClientResponse]("validation failed", err.Error()), err
	}

	client := domain.NewClient(req.Name, req.TaxID)
	if err := s.bank.AddClient(client); err != nil {
		logger.Error("ledger service register client failed", err, nil)
		return commons.ErrorResponse[models.ClientResponse]("failed to register client", err.Error()), err
	}

	logger.Info("ledger service register client success", logger.Fields{
		"clientCount": len(s.bank.Clients()),
	})

	return commons.SuccessResponse("client registered successfully", mapClientToResponse(client)), nil
}

func (s *LedgerService) OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("ledger service open account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	_ = ctx
	if err := req.Validate(); err != nil {
		logger.Error("ledger service open account validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	client, err := s.findClient(req.TaxID)
	if err != nil {
		logger.Error("ledger service open account client lookup failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("Client not found"), err
	}

	if _, ok := s.bank.FindAccount(req.AccountID); ok {
		err := fmt.Errorf("account %d: %w", req.AccountID, domain.ErrDuplicateAccount)
		logger.Error("ledger service open account failed", err, logger.Fields{
			"accountId": req.AccountID,
		})
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	kind := domain.AccountKind(strings.ToUpper(strings.TrimSpace(req.Kind)))
	account, err := s.newAccount(kind, req.AccountID, client, req.CreditLimit)
	if err == nil {
		err = client.AddAccount(account)
	}
	if err != nil {
		logger.Error("ledger service open account failed", err, logger.Fields{
			"accountId": req.AccountID,
			"kind":      kind,
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to open account", err.Error()), err
	}

	logger.Info("ledger service open account success", logger.Fields{
		"accountId": account.ID(),
		"kind":      account.Kind(),
	})

	return commons.SuccessResponse("account opened successfully", mapAccountToResponse(account)), nil
}

func (s *LedgerService) CloseAccount(ctx context.Context, req models.AccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("ledger service close account request", logger.Fields{
		"accountId": req.AccountID,
	})

	_ = ctx
	account, resp, err := s.resolveAccount("close account", req.AccountID, req.Validate)
	if err != nil {
		return resp, err
	}

	account.Owner().RemoveAccount(account.ID())

	logger.Info("ledger service close account success", logger.Fields{
		"accountId": account.ID(),
		"balance":   account.Balance().StringFixed(2),
	})

	return commons.SuccessResponse("account closed successfully", mapAccountToResponse(account)), nil
}

func (s *LedgerService) Deposit(ctx context.Context, req models.AmountRequest) (commons.Response[models.AccountResponse], error) {
	return s.move(ctx, "deposit", req, func(account domain.Account, amount decimal.Decimal) error {
		return account.Deposit(amount)
	})
}

func (s *LedgerService) Withdraw(ctx context.Context, req models.AmountRequest) (commons.Response[models.AccountResponse], error) {
	return s.move(ctx, "withdraw", req, func(account domain.Account, amount decimal.Decimal) error {
		return account.Withdraw(amount)
	})
}

func (s *LedgerService) move(ctx context.Context, op string, req models.AmountRequest, apply func(domain.Account, decimal.Decimal) error) (commons.Response[models.AccountResponse], error) {
	logger.Info("ledger service "+op+" request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	_ = ctx
	account, resp, err := s.resolveAccount(op, req.AccountID, req.Validate)
	if err != nil {
		return resp, err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		logger.Error("ledger service "+op+" parse amount failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", "amount must be numeric"), err
	}

	if err := apply(account, amount); err != nil {
		logger.Error("ledger service "+op+" failed", err, logger.Fields{
			"accountId": account.ID(),
			"amount":    amount.StringFixed(2),
		})
		return commons.ErrorResponse[models.AccountResponse](op+" failed", err.Error()), err
	}

	logger.Info("ledger service "+op+" success", logger.Fields{
		"accountId": account.ID(),
		"amount":    amount.StringFixed(2),
		"balance":   account.Balance().StringFixed(2),
	})

	return commons.SuccessResponse(op+" completed successfully", mapAccountToResponse(account)), nil
}

func (s *LedgerService) ApplyYield(ctx context.Context, req models.AccountRequest) (commons.Response[models.YieldResponse], error) {
	logger.Info("ledger service apply yield request", logger.Fields{
		"accountId": req.AccountID,
	})

	_ = ctx
	account, _, err := s.resolveAccount("apply yield", req.AccountID, req.Validate)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.YieldResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.YieldResponse]("validation failed", err.Error()), err
	}

	yielder, ok := account.(domain.Yielder)
	if !ok {
		err := domain.ErrNotYieldBearing
		logger.Error("ledger service apply yield failed", err, logger.Fields{
			"accountId": account.ID(),
			"kind":      account.Kind(),
		})
		return commons.ErrorResponse[models.YieldResponse]("failed to apply yield", err.Error()), err
	}

	y := yielder.ApplyYield()
	response := models.YieldResponse{
		AccountID: account.ID(),
		Rate:      y.Rate.String(),
		Gross:     y.Gross.StringFixed(2),
		Fee:       y.Fee.StringFixed(2),
		Net:       y.Net().StringFixed(2),
		Balance:   account.Balance().StringFixed(2),
	}

	logger.Info("ledger service apply yield success", logger.Fields{
		"accountId": response.AccountID,
		"rate":      response.Rate,
		"net":       response.Net,
	})

	return commons.SuccessResponse("yield applied successfully", response), nil
}

func (s *LedgerService) GetBalance(ctx context.Context, req models.AccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("ledger service get balance request", logger.Fields{
		"accountId": req.AccountID,
	})

	_ = ctx
	account, resp, err := s.resolveAccount("get balance", req.AccountID, req.Validate)
	if err != nil {
		return resp, err
	}

	logger.Info("ledger service get balance success", logger.Fields{
		"accountId": account.ID(),
	})

	return commons.SuccessResponse("balance fetched successfully", mapAccountToResponse(account)), nil
}

func (s *LedgerService) GetStatements(ctx context.Context, req models.ClientRequest) (commons.Response[models.StatementsResponse], error) {
	logger.Info("ledger service get statements request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	_ = ctx
	if err := req.Validate(); err != nil {
		logger.Error("ledger service get statements validation failed", err, nil)
		return commons.ErrorResponse[models.StatementsResponse]("validation failed", err.Error()), err
	}

	client, err := s.findClient(req.TaxID)
	if err != nil {
		logger.Error("ledger service get statements client lookup failed", err, nil)
		return commons.ErrorResponse[models.StatementsResponse]("Client not found"), err
	}

	statements := client.Statements()
	response := models.StatementsResponse{
		Client:   mapClientToResponse(client),
		Accounts: make([]models.StatementLine, 0, len(statements)),
	}
	for _, statement := range statements {
		response.Accounts = append(response.Accounts, models.StatementLine{
			AccountID:    statement.AccountID,
			Kind:         string(statement.Kind),
			Balance:      statement.Balance.StringFixed(2),
			Entries:      statement.Lines,
			Transactions: mapTransactionsToResponse(statement.Entries),
		})
	}

	logger.Info("ledger service get statements success", logger.Fields{
		"accountCount": len(response.Accounts),
	})

	return commons.SuccessResponse("statements fetched successfully", response), nil
}

func (s *LedgerService) GetCustody(ctx context.Context, req models.CustodyRequest) (commons.Response[models.CustodyResponse], error) {
	logger.Info("ledger service get custody request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	_ = ctx
	if err := req.Validate(); err != nil {
		logger.Error("ledger service get custody validation failed", err, nil)
		return commons.ErrorResponse[models.CustodyResponse]("validation failed", err.Error()), err
	}

	kind := domain.AccountKind(strings.ToUpper(strings.TrimSpace(req.Kind)))
	response := models.CustodyResponse{
		Kind:  string(kind),
		Total: s.bank.CustodyByType(kind).StringFixed(2),
	}

	logger.Info("ledger service get custody success", logger.Fields{
		"kind":  response.Kind,
		"total": response.Total,
	})

	return commons.SuccessResponse("custody fetched successfully", response), nil
}

func (s *LedgerService) GetAverageBalance(ctx context.Context) (commons.Response[models.AverageBalanceResponse], error) {
	logger.Info("ledger service get average balance request", nil)

	_ = ctx
	response := models.AverageBalanceResponse{
		AccountCount: s.bank.AccountCount(),
		Average:      s.bank.AverageBalance().StringFixed(2),
	}

	logger.Info("ledger service get average balance success", logger.Fields{
		"accountCount": response.AccountCount,
		"average":      response.Average,
	})

	return commons.SuccessResponse("average balance fetched successfully", response), nil
}

func (s *LedgerService) GetExtremalClients(ctx context.Context) (commons.Response[models.ExtremalClientsResponse], error) {
	logger.Info("ledger service get extremal clients request", nil)

	_ = ctx
	var response models.ExtremalClientsResponse
	if richest, ok := s.bank.ClientWithMaxBalance(); ok {
		r := mapClientToResponse(richest)
		response.Richest = &r
	}
	if poorest, ok := s.bank.ClientWithMinBalance(); ok {
		p := mapClientToResponse(poorest)
		response.Poorest = &p
	}

	if response.Richest == nil {
		logger.Info("ledger service get extremal clients success", logger.Fields{
			"clientCount": 0,
		})
		return commons.SuccessResponse("no clients registered", response), nil
	}

	logger.Info("ledger service get extremal clients success", logger.Fields{
		"richestBalance": response.Richest.TotalBalance,
		"poorestBalance": response.Poorest.TotalBalance,
	})

	return commons.SuccessResponse("extremal clients fetched successfully", response), nil
}

type withdrawalTaxer interface {
	WithdrawalTax(amount decimal.Decimal) decimal.Decimal
}

func (s *LedgerService) GetWithdrawalTax(ctx context.Context, req models.AmountRequest) (commons.Response[models.WithdrawalTaxResponse], error) {
	logger.Info("ledger service get withdrawal tax request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	_ = ctx
	account, _, err := s.resolveAccount("get withdrawal tax", req.AccountID, req.Validate)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.WithdrawalTaxResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.WithdrawalTaxResponse]("validation failed", err.Error()), err
	}

	taxer, ok := account.(withdrawalTaxer)
	if !ok {
		err := domain.ErrNoWithdrawalTax
		logger.Error("ledger service get withdrawal tax failed", err, logger.Fields{
			"accountId": account.ID(),
			"kind":      account.Kind(),
		})
		return commons.ErrorResponse[models.WithdrawalTaxResponse]("failed to quote withdrawal tax", err.Error()), err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		logger.Error("ledger service get withdrawal tax parse amount failed", err, nil)
		return commons.ErrorResponse[models.WithdrawalTaxResponse]("validation failed", "amount must be numeric"), err
	}

	response := models.WithdrawalTaxResponse{
		AccountID: account.ID(),
		Kind:      string(account.Kind()),
		Amount:    amount.StringFixed(2),
		Tax:       taxer.WithdrawalTax(amount).StringFixed(2),
	}

	logger.Info("ledger service get withdrawal tax success", logger.Fields{
		"accountId": response.AccountID,
		"tax":       response.Tax,
	})

	return commons.SuccessResponse("withdrawal tax quoted successfully", response), nil
}

func (s *LedgerService) BuildReport(ctx context.Context) (commons.Response[models.ReportResponse], error) {
	logger.Info("ledger service build report request", nil)

	_ = ctx
	report := s.bank.Report(s.now().UTC())

	logger.Info("ledger service build report success", logger.Fields{
		"clientCount":  report.ClientCount,
		"accountCount": report.AccountCount,
	})

	return commons.SuccessResponse("report built successfully", mapReportToResponse(report)), nil
}

func (s *LedgerService) PublishReport(ctx context.Context) (commons.Response[models.ReportResponse], error) {
	logger.Info("ledger service publish report request", nil)

	if s.reportRepo == nil {
		err := commons.ErrReportsDisabled
		logger.Error("ledger service publish report failed", err, nil)
		return commons.ErrorResponse[models.ReportResponse]("failed to publish report", err.Error()), err
	}

	report := s.bank.Report(s.now().UTC())
	report.ID = uuid.NewString()

	saved, err := s.reportRepo.Save(ctx, report)
	if err != nil {
		logger.Error("ledger service publish report failed", err, logger.Fields{
			"reportId": report.ID,
		})
		return commons.ErrorResponse[models.ReportResponse]("failed to publish report", "Unable to publish report right now"), err
	}

	logger.Info("ledger service publish report success", logger.Fields{
		"reportId":     saved.ID,
		"accountCount": saved.AccountCount,
	})

	return commons.SuccessResponse("report published successfully", mapReportToResponse(saved)), nil
}

func (s *LedgerService) findClient(taxID string) (*domain.Client, error) {
	client, ok := s.bank.FindClient(taxID)
	if !ok {
		return nil, fmt.Errorf("client %s: %w", strings.TrimSpace(taxID), commons.ErrRecordNotFound)
	}
	return client, nil
}

// resolveAccount validates the request and looks the account up across the
// whole bank, logging and shaping the failure response for op.
func (s *LedgerService) resolveAccount(op string, accountID int, validate func() error) (domain.Account, commons.Response[models.AccountResponse], error) {
	if err := validate(); err != nil {
		logger.Error("ledger service "+op+" validation failed", err, nil)
		return nil, commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	account, ok := s.bank.FindAccount(accountID)
	if !ok {
		err := fmt.Errorf("account %d: %w", accountID, commons.ErrRecordNotFound)
		logger.Error("ledger service "+op+" account lookup failed", err, nil)
		return nil, commons.ErrorResponse[models.AccountResponse]("Account not found"), err
	}

	return account, commons.Response[models.AccountResponse]{}, nil
}

func (s *LedgerService) newAccount(kind domain.AccountKind, id int, owner *domain.Client, creditLimit string) (domain.Account, error) {
	opts := []domain.AccountOption{domain.WithClock(s.now)}
	if s.sampler != nil {
		opts = append(opts, domain.WithRateSampler(s.sampler))
	}

	switch kind {
	case domain.AccountKindChecking:
		limit, err := decimal.NewFromString(strings.TrimSpace(creditLimit))
		if err != nil {
			return nil, fmt.Errorf("creditLimit must be numeric: %w", err)
		}
		checking, err := domain.NewCheckingAccount(id, owner, limit, opts...)
		if err != nil {
			return nil, err
		}
		return checking, nil
	case domain.AccountKindSavings:
		return domain.NewSavingsAccount(id, owner, opts...), nil
	case domain.AccountKindFixedIncome:
		return domain.NewFixedIncomeAccount(id, owner, opts...), nil
	case domain.AccountKindInvestment:
		return domain.NewInvestmentAccount(id, owner, opts...), nil
	default:
		return nil, fmt.Errorf("unsupported account kind %q", kind)
	}
}

func mapClientToResponse(client *domain.Client) models.ClientResponse {
	return models.ClientResponse{
		Name:         client.Name(),
		TaxID:        client.TaxID(),
		AccountCount: len(client.Accounts()),
		TotalBalance: client.TotalBalance().StringFixed(2),
	}
}

func mapAccountToResponse(account domain.Account) models.AccountResponse {
	response := models.AccountResponse{
		AccountID:  account.ID(),
		Kind:       string(account.Kind()),
		OwnerName:  account.Owner().Name(),
		OwnerTaxID: account.Owner().TaxID(),
		Balance:    account.Balance().StringFixed(2),
	}
	if checking, ok := account.(*domain.CheckingAccount); ok {
		response.CreditLimit = checking.CreditLimit().StringFixed(2)
	}
	return response
}

func mapTransactionsToResponse(entries []domain.Transaction) []models.TransactionResponse {
	out := make([]models.TransactionResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, models.TransactionResponse{
			ID:      entry.ID,
			Time:    entry.Time.Format(time.RFC3339),
			Kind:    string(entry.Kind),
			Amount:  entry.Amount.StringFixed(2),
			Fee:     entry.Fee.StringFixed(2),
			Balance: entry.Balance.StringFixed(2),
		})
	}
	return out
}

func mapClientBalance(balance *domain.ClientBalance) *models.ClientResponse {
	if balance == nil {
		return nil
	}
	return &models.ClientResponse{
		Name:         balance.Name,
		TaxID:        balance.TaxID,
		AccountCount: balance.AccountCount,
		TotalBalance: balance.TotalBalance.StringFixed(2),
	}
}

func mapReportToResponse(report domain.Report) models.ReportResponse {
	custody := make(map[string]string, len(report.Custody))
	for kind, total := range report.Custody {
		custody[string(kind)] = total.StringFixed(2)
	}

	return models.ReportResponse{
		ID:             report.ID,
		GeneratedAt:    report.GeneratedAt.Format(time.RFC3339),
		ClientCount:    report.ClientCount,
		AccountCount:   report.AccountCount,
		AverageBalance: report.AverageBalance.StringFixed(2),
		Custody:        custody,
		Richest:        mapClientBalance(report.Richest),
		Poorest:        mapClientBalance(report.Poorest),
	}
}
