package domain

import "github.com/shopspring/decimal"

var (
	overdraftFeeRate = decimal.NewFromFloat(0.03)
	overdraftFeeFlat = decimal.NewFromInt(10)
)

type CheckingAccount struct {
	*account
	creditLimit decimal.Decimal
}

func NewCheckingAccount(id int, owner *Client, creditLimit decimal.Decimal, opts ...AccountOption) (*CheckingAccount, error) {
	if creditLimit.IsNegative() {
		return nil, ErrNegativeCreditLimit
	}

	return &CheckingAccount{
		account:     newAccount(id, AccountKindChecking, owner, buildOptions(opts)),
		creditLimit: creditLimit,
	}, nil
}

func (a *CheckingAccount) CreditLimit() decimal.Decimal {
	return a.creditLimit
}

// OverdraftFee is charged on a deposit made while the balance is negative:
// 3% of the overdrawn amount plus a flat 10.
func (a *CheckingAccount) OverdraftFee() decimal.Decimal {
	if !a.balance.IsNegative() {
		return decimal.Zero
	}
	return a.balance.Neg().Mul(overdraftFeeRate).Add(overdraftFeeFlat)
}

// Deposit credits amount minus the overdraft fee. The fee can exceed the
// deposit, in which case the balance drops further.
func (a *CheckingAccount) Deposit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}

	a.post(TransactionDeposit, amount, a.OverdraftFee())
	return nil
}

// Withdraw may overdraw the account down to -creditLimit. Overdraft
// withdrawals are not posted to the statement.
func (a *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	if amount.GreaterThan(a.balance.Add(a.creditLimit)) {
		return ErrInsufficientFunds
	}

	a.adjust(amount.Neg())
	return nil
}
