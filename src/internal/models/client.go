package models

import (
	"errors"
	"strings"
	"unicode"
)

type RegisterClientRequest struct {
	Name  string `json:"name"`
	TaxID string `json:"taxId"`
}

func (r RegisterClientRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}

	taxID := strings.TrimSpace(r.TaxID)
	if taxID == "" {
		errs = append(errs, "taxId is required")
	} else if !strings.ContainsFunc(taxID, unicode.IsDigit) {
		errs = append(errs, "taxId must contain digits")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type ClientRequest struct {
	TaxID string `json:"taxId"`
}

func (r ClientRequest) Validate() error {
	if strings.TrimSpace(r.TaxID) == "" {
		return errors.New("taxId is required")
	}
	return nil
}

type ClientResponse struct {
	Name         string `json:"name"`
	TaxID        string `json:"taxId"`
	AccountCount int    `json:"accountCount"`
	TotalBalance string `json:"totalBalance"`
}

type ExtremalClientsResponse struct {
	Richest *ClientResponse `json:"richest,omitempty"`
	Poorest *ClientResponse `json:"poorest,omitempty"`
}

type TransactionResponse struct {
	ID      string `json:"id"`
	Time    string `json:"time"`
	Kind    string `json:"kind"`
	Amount  string `json:"amount"`
	Fee     string `json:"fee"`
	Balance string `json:"balance"`
}

type StatementLine struct {
	AccountID    int                   `json:"accountId"`
	Kind         string                `json:"kind"`
	Balance      string                `json:"balance"`
	Entries      []string              `json:"entries"`
	Transactions []TransactionResponse `json:"transactions"`
}

type StatementsResponse struct {
	Client   ClientResponse  `json:"client"`
	Accounts []StatementLine `json:"accounts"`
}
