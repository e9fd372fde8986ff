package service_interfaces

import (
	"context"

	"github.com/api-sage/xubank-ledger/src/internal/commons"
	"github.com/api-sage/xubank-ledger/src/internal/models"
)

type LedgerService interface {
	RegisterClient(ctx context.Context, req models.RegisterClientRequest) (commons.Response[models.ClientResponse], error)
	OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.AccountResponse], error)
	CloseAccount(ctx context.Context, req models.AccountRequest) (commons.Response[models.AccountResponse], error)
	Deposit(ctx context.Context, req models.AmountRequest) (commons.Response[models.AccountResponse], error)
	Withdraw(ctx context.Context, req models.AmountRequest) (commons.Response[models.AccountResponse], error)
	ApplyYield(ctx context.Context, req models.AccountRequest) (commons.Response[models.YieldResponse], error)
	GetBalance(ctx context.Context, req models.AccountRequest) (commons.Response[models.AccountResponse], error)
	GetStatements(ctx context.Context, req models.ClientRequest) (commons.Response[models.StatementsResponse], error)
	GetCustody(ctx context.Context, req models.CustodyRequest) (commons.Response[models.CustodyResponse], error)
	GetAverageBalance(ctx context.Context) (commons.Response[models.AverageBalanceResponse], error)
	GetExtremalClients(ctx context.Context) (commons.Response[models.ExtremalClientsResponse], error)
	GetWithdrawalTax(ctx context.Context, req models.AmountRequest) (commons.Response[models.WithdrawalTaxResponse], error)
	BuildReport(ctx context.Context) (commons.Response[models.ReportResponse], error)
	PublishReport(ctx context.Context) (commons.Response[models.ReportResponse], error)
}
