package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountKind string

const (
	AccountKindChecking    AccountKind = "CHECKING"
	AccountKindSavings     AccountKind = "SAVINGS"
	AccountKindFixedIncome AccountKind = "FIXED_INCOME"
	AccountKindInvestment  AccountKind = "INVESTMENT"
)

// AccountKinds lists every product in the order the menu offers them.
var AccountKinds = []AccountKind{
	AccountKindChecking,
	AccountKindSavings,
	AccountKindFixedIncome,
	AccountKindInvestment,
}

func (k AccountKind) Valid() bool {
	for _, kind := range AccountKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Account is the contract shared by every product. Variants embed *account
// and override Deposit/Withdraw where their policy differs.
type Account interface {
	ID() int
	Kind() AccountKind
	Owner() *Client
	Balance() decimal.Decimal
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	History() []Transaction
	Statement() []string
}

type AccountOption func(*accountOptions)

type accountOptions struct {
	now     func() time.Time
	sampler RateSampler
}

// WithClock overrides the time source used to stamp history entries.
func WithClock(now func() time.Time) AccountOption {
	return func(o *accountOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithRateSampler overrides the source of variable yield rates.
func WithRateSampler(sampler RateSampler) AccountOption {
	return func(o *accountOptions) {
		if sampler != nil {
			o.sampler = sampler
		}
	}
}

func buildOptions(opts []AccountOption) accountOptions {
	o := accountOptions{now: time.Now, sampler: defaultSampler}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type account struct {
	id      int
	kind    AccountKind
	owner   *Client
	balance decimal.Decimal
	history []Transaction
	now     func() time.Time
}

func newAccount(id int, kind AccountKind, owner *Client, o accountOptions) *account {
	return &account{
		id:      id,
		kind:    kind,
		owner:   owner,
		balance: decimal.Zero,
		history: make([]Transaction, 0),
		now:     o.now,
	}
}

func (a *account) ID() int                  { return a.id }
func (a *account) Kind() AccountKind        { return a.kind }
func (a *account) Owner() *Client           { return a.owner }
func (a *account) Balance() decimal.Decimal { return a.balance }

func (a *account) Deposit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}

	a.post(TransactionDeposit, amount, decimal.Zero)
	return nil
}

func (a *account) Withdraw(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}

	a.post(TransactionWithdrawal, amount.Neg(), decimal.Zero)
	return nil
}

// adjust is the only place the balance changes.
func (a *account) adjust(delta decimal.Decimal) {
	a.balance = a.balance.Add(delta)
}

// post applies amount-fee to the balance and records exactly one entry.
func (a *account) post(kind TransactionKind, amount decimal.Decimal, fee decimal.Decimal) Transaction {
	a.adjust(amount.Sub(fee))
	entry := newTransaction(a.now(), kind, amount, fee, a.balance)
	a.history = append(a.history, entry)
	return entry
}

func (a *account) History() []Transaction {
	out := make([]Transaction, len(a.history))
	copy(out, a.history)
	return out
}

func (a *account) Statement() []string {
	lines := make([]string, 0, len(a.history))
	for _, entry := range a.history {
		lines = append(lines, entry.String())
	}
	return lines
}
