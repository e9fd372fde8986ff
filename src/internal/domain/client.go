package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Client struct {
	name     string
	taxID    string
	accounts []Account
}

func NewClient(name string, taxID string) *Client {
	return &Client{
		name:     strings.TrimSpace(name),
		taxID:    strings.TrimSpace(taxID),
		accounts: make([]Account, 0),
	}
}

func (c *Client) Name() string  { return c.name }
func (c *Client) TaxID() string { return c.taxID }

// NormalizedTaxID is the tax id with every non-digit removed.
func (c *Client) NormalizedTaxID() string {
	return NormalizeTaxID(c.taxID)
}

func NormalizeTaxID(taxID string) string {
	var b strings.Builder
	b.Grow(len(taxID))
	for _, ch := range taxID {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func (c *Client) AddAccount(account Account) error {
	if account.Owner() != c {
		return ErrOwnerMismatch
	}
	if _, ok := c.FindAccount(account.ID()); ok {
		return ErrDuplicateAccount
	}

	c.accounts = append(c.accounts, account)
	return nil
}

func (c *Client) FindAccount(id int) (Account, bool) {
	for _, account := range c.accounts {
		if account.ID() == id {
			return account, true
		}
	}
	return nil, false
}

// RemoveAccount drops the first account with the given id and reports
// whether one was found.
func (c *Client) RemoveAccount(id int) bool {
	for i, account := range c.accounts {
		if account.ID() == id {
			c.accounts = append(c.accounts[:i:i], c.accounts[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Client) Accounts() []Account {
	out := make([]Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

func (c *Client) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, account := range c.accounts {
		total = total.Add(account.Balance())
	}
	return total
}

type AccountStatement struct {
	AccountID int
	Kind      AccountKind
	Balance   decimal.Decimal
	Entries   []Transaction
	Lines     []string
}

func (c *Client) Statements() []AccountStatement {
	out := make([]AccountStatement, 0, len(c.accounts))
	for _, account := range c.accounts {
		out = append(out, AccountStatement{
			AccountID: account.ID(),
			Kind:      account.Kind(),
			Balance:   account.Balance(),
			Entries:   account.History(),
			Lines:     account.Statement(),
		})
	}
	return out
}
