package domain

import "github.com/shopspring/decimal"

var (
	investmentMinRate       = decimal.NewFromFloat(-0.006)
	investmentMaxRate       = decimal.NewFromFloat(0.015)
	investmentWithdrawalTax = decimal.NewFromFloat(0.225)
	investmentManagementFee = decimal.NewFromFloat(0.01)
)

type InvestmentAccount struct {
	*account
	sampler RateSampler
}

func NewInvestmentAccount(id int, owner *Client, opts ...AccountOption) *InvestmentAccount {
	o := buildOptions(opts)
	return &InvestmentAccount{
		account: newAccount(id, AccountKindInvestment, owner, o),
		sampler: o.sampler,
	}
}

// ApplyYield credits balance*rate. Gains pay a 1% management fee; losses are
// applied in full.
func (a *InvestmentAccount) ApplyYield() Yield {
	rate := a.sampler.Sample(investmentMinRate, investmentMaxRate)
	gross := a.balance.Mul(rate)
	fee := decimal.Zero
	if gross.IsPositive() {
		fee = gross.Mul(investmentManagementFee)
	}

	y := Yield{Rate: rate, Gross: gross, Fee: fee}
	a.post(TransactionYield, y.Gross, y.Fee)
	return y
}

// WithdrawalTax is the 22.5% charged on top of every withdrawal.
func (a *InvestmentAccount) WithdrawalTax(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(investmentWithdrawalTax)
}

// Withdraw checks funds against the pre-tax amount and then debits
// amount+tax, so the balance can end below zero.
func (a *InvestmentAccount) Withdraw(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}

	a.post(TransactionWithdrawal, amount.Neg(), a.WithdrawalTax(amount))
	return nil
}
