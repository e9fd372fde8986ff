package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ClientBalance struct {
	Name         string
	TaxID        string
	AccountCount int
	TotalBalance decimal.Decimal
}

// Report is a point-in-time summary of the whole client base.
type Report struct {
	ID             string
	GeneratedAt    time.Time
	ClientCount    int
	AccountCount   int
	AverageBalance decimal.Decimal
	Custody        map[AccountKind]decimal.Decimal
	Richest        *ClientBalance
	Poorest        *ClientBalance
}

func (b *Bank) Report(at time.Time) Report {
	report := Report{
		GeneratedAt:    at,
		ClientCount:    len(b.clients),
		AccountCount:   b.AccountCount(),
		AverageBalance: b.AverageBalance(),
		Custody:        make(map[AccountKind]decimal.Decimal, len(AccountKinds)),
	}
	for _, kind := range AccountKinds {
		report.Custody[kind] = b.CustodyByType(kind)
	}
	if client, ok := b.ClientWithMaxBalance(); ok {
		report.Richest = clientBalance(client)
	}
	if client, ok := b.ClientWithMinBalance(); ok {
		report.Poorest = clientBalance(client)
	}
	return report
}

func clientBalance(client *Client) *ClientBalance {
	return &ClientBalance{
		Name:         client.Name(),
		TaxID:        client.TaxID(),
		AccountCount: len(client.accounts),
		TotalBalance: client.TotalBalance(),
	}
}
