package domain

import "github.com/shopspring/decimal"

var savingsMonthlyRate = decimal.NewFromFloat(0.006)

type SavingsAccount struct {
	*account
}

func NewSavingsAccount(id int, owner *Client, opts ...AccountOption) *SavingsAccount {
	return &SavingsAccount{account: newAccount(id, AccountKindSavings, owner, buildOptions(opts))}
}

func (a *SavingsAccount) ApplyYield() Yield {
	y := Yield{
		Rate:  savingsMonthlyRate,
		Gross: a.balance.Mul(savingsMonthlyRate),
		Fee:   decimal.Zero,
	}
	a.post(TransactionYield, y.Gross, y.Fee)
	return y
}
