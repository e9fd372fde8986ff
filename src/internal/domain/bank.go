package domain

import "github.com/shopspring/decimal"

// Bank owns the client base in registration order and answers the
// cross-client reporting queries.
type Bank struct {
	clients []*Client
}

func NewBank() *Bank {
	return &Bank{clients: make([]*Client, 0)}
}

func (b *Bank) AddClient(client *Client) error {
	normalized := client.NormalizedTaxID()
	if normalized == "" {
		return ErrInvalidTaxID
	}
	if _, ok := b.FindClient(normalized); ok {
		return ErrDuplicateClient
	}

	b.clients = append(b.clients, client)
	return nil
}

func (b *Bank) FindClient(taxID string) (*Client, bool) {
	wanted := NormalizeTaxID(taxID)
	for _, client := range b.clients {
		if client.NormalizedTaxID() == wanted {
			return client, true
		}
	}
	return nil, false
}

// FindAccount scans every client for the account with the given id.
func (b *Bank) FindAccount(id int) (Account, bool) {
	for _, client := range b.clients {
		if account, ok := client.FindAccount(id); ok {
			return account, true
		}
	}
	return nil, false
}

func (b *Bank) Clients() []*Client {
	out := make([]*Client, len(b.clients))
	copy(out, b.clients)
	return out
}

func (b *Bank) AccountCount() int {
	count := 0
	for _, client := range b.clients {
		count += len(client.accounts)
	}
	return count
}

// CustodyByType sums the balances of every account of the given kind.
func (b *Bank) CustodyByType(kind AccountKind) decimal.Decimal {
	total := decimal.Zero
	for _, client := range b.clients {
		for _, account := range client.accounts {
			if account.Kind() == kind {
				total = total.Add(account.Balance())
			}
		}
	}
	return total
}

// AverageBalance is the mean balance over all accounts, or zero when the
// bank holds none.
func (b *Bank) AverageBalance() decimal.Decimal {
	total := decimal.Zero
	count := 0
	for _, client := range b.clients {
		for _, account := range client.accounts {
			total = total.Add(account.Balance())
			count++
		}
	}
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count)))
}

func (b *Bank) ClientWithMaxBalance() (*Client, bool) {
	return b.extremal(func(candidate, current decimal.Decimal) bool {
		return candidate.GreaterThan(current)
	})
}

func (b *Bank) ClientWithMinBalance() (*Client, bool) {
	return b.extremal(func(candidate, current decimal.Decimal) bool {
		return candidate.LessThan(current)
	})
}

// extremal keeps the first client whose total strictly beats the running
// best, so ties go to the earliest registration.
func (b *Bank) extremal(beats func(candidate, current decimal.Decimal) bool) (*Client, bool) {
	if len(b.clients) == 0 {
		return nil, false
	}

	best := b.clients[0]
	bestTotal := best.TotalBalance()
	for _, client := range b.clients[1:] {
		total := client.TotalBalance()
		if beats(total, bestTotal) {
			best = client
			bestTotal = total
		}
	}
	return best, true
}
