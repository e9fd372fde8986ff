package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionDeposit    TransactionKind = "Deposit"
	TransactionWithdrawal TransactionKind = "Withdrawal"
	TransactionYield      TransactionKind = "Yield"
)

const statementTimeLayout = "02/01/2006 15:04:05"

// Transaction is one history entry. The balance moved by Amount-Fee and
// ended at Balance.
type Transaction struct {
	ID      string
	Time    time.Time
	Kind    TransactionKind
	Amount  decimal.Decimal
	Fee     decimal.Decimal
	Balance decimal.Decimal
}

func newTransaction(at time.Time, kind TransactionKind, amount decimal.Decimal, fee decimal.Decimal, balance decimal.Decimal) Transaction {
	return Transaction{
		ID:      uuid.NewString(),
		Time:    at,
		Kind:    kind,
		Amount:  amount,
		Fee:     fee,
		Balance: balance,
	}
}

func (t Transaction) Delta() decimal.Decimal {
	return t.Amount.Sub(t.Fee)
}

func (t Transaction) String() string {
	line := fmt.Sprintf("%s: %s R$ %s", t.Time.Format(statementTimeLayout), t.Kind, t.Amount.StringFixed(2))
	if !t.Fee.IsZero() {
		line += fmt.Sprintf(" (fee R$ %s)", t.Fee.StringFixed(2))
	}
	return line + fmt.Sprintf(" | Balance: R$ %s", t.Balance.StringFixed(2))
}
