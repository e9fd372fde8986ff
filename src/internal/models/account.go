package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type OpenAccountRequest struct {
	TaxID       string `json:"taxId"`
	AccountID   int    `json:"accountId"`
	Kind        string `json:"kind"`
	CreditLimit string `json:"creditLimit,omitempty"`
}

func (r OpenAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.TaxID) == "" {
		errs = append(errs, "taxId is required")
	}
	if r.AccountID <= 0 {
		errs = append(errs, "accountId must be greater than zero")
	}

	kind := strings.ToUpper(strings.TrimSpace(r.Kind))
	switch kind {
	case "":
		errs = append(errs, "kind is required")
	case "CHECKING", "SAVINGS", "FIXED_INCOME", "INVESTMENT":
	default:
		errs = append(errs, "kind must be one of CHECKING, SAVINGS, FIXED_INCOME, INVESTMENT")
	}

	limit := strings.TrimSpace(r.CreditLimit)
	if kind == "CHECKING" {
		if msg := validateAmount("creditLimit", limit); msg != "" {
			errs = append(errs, msg)
		}
	} else if limit != "" {
		errs = append(errs, "creditLimit only applies to CHECKING accounts")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type AccountRequest struct {
	AccountID int `json:"accountId"`
}

func (r AccountRequest) Validate() error {
	if r.AccountID <= 0 {
		return errors.New("accountId must be greater than zero")
	}
	return nil
}

// AmountRequest carries deposits, withdrawals and tax quotes.
type AmountRequest struct {
	AccountID int    `json:"accountId"`
	Amount    string `json:"amount"`
}

func (r AmountRequest) Validate() error {
	var errs []string

	if r.AccountID <= 0 {
		errs = append(errs, "accountId must be greater than zero")
	}
	if msg := validateAmount("amount", strings.TrimSpace(r.Amount)); msg != "" {
		errs = append(errs, msg)
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func validateAmount(field string, raw string) string {
	if raw == "" {
		return field + " is required"
	}
	parsed, err := decimal.NewFromString(raw)
	if err != nil {
		return field + " must be numeric"
	}
	if parsed.IsNegative() {
		return fmt.Sprintf("%s cannot be negative", field)
	}
	return ""
}

type AccountResponse struct {
	AccountID   int    `json:"accountId"`
	Kind        string `json:"kind"`
	OwnerName   string `json:"ownerName"`
	OwnerTaxID  string `json:"ownerTaxId"`
	Balance     string `json:"balance"`
	CreditLimit string `json:"creditLimit,omitempty"`
}

type YieldResponse struct {
	AccountID int    `json:"accountId"`
	Rate      string `json:"rate"`
	Gross     string `json:"gross"`
	Fee       string `json:"fee"`
	Net       string `json:"net"`
	Balance   string `json:"balance"`
}

type WithdrawalTaxResponse struct {
	AccountID int    `json:"accountId"`
	Kind      string `json:"kind"`
	Amount    string `json:"amount"`
	Tax       string `json:"tax"`
}
