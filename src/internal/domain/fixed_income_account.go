package domain

import "github.com/shopspring/decimal"

var (
	fixedIncomeMinRate       = decimal.NewFromFloat(0.005)
	fixedIncomeMaxRate       = decimal.NewFromFloat(0.0085)
	fixedIncomeWithdrawalTax = decimal.NewFromFloat(0.15)
	fixedIncomeAdminFee      = decimal.NewFromInt(20)
)

type FixedIncomeAccount struct {
	*account
	sampler RateSampler
}

func NewFixedIncomeAccount(id int, owner *Client, opts ...AccountOption) *FixedIncomeAccount {
	o := buildOptions(opts)
	return &FixedIncomeAccount{
		account: newAccount(id, AccountKindFixedIncome, owner, o),
		sampler: o.sampler,
	}
}

// ApplyYield credits balance*rate less the flat administrative fee, which is
// charged even when it exceeds the yield.
func (a *FixedIncomeAccount) ApplyYield() Yield {
	rate := a.sampler.Sample(fixedIncomeMinRate, fixedIncomeMaxRate)
	y := Yield{
		Rate:  rate,
		Gross: a.balance.Mul(rate),
		Fee:   fixedIncomeAdminFee,
	}
	a.post(TransactionYield, y.Gross, y.Fee)
	return y
}

// WithdrawalTax quotes the 15% tax on a withdrawal of amount. It is
// informational only and never debited.
func (a *FixedIncomeAccount) WithdrawalTax(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(fixedIncomeWithdrawalTax)
}
