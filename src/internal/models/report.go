package models

import (
	"errors"
	"strings"
)

type CustodyRequest struct {
	Kind string `json:"kind"`
}

func (r CustodyRequest) Validate() error {
	switch strings.ToUpper(strings.TrimSpace(r.Kind)) {
	case "":
		return errors.New("kind is required")
	case "CHECKING", "SAVINGS", "FIXED_INCOME", "INVESTMENT":
		return nil
	default:
		return errors.New("kind must be one of CHECKING, SAVINGS, FIXED_INCOME, INVESTMENT")
	}
}

type CustodyResponse struct {
	Kind  string `json:"kind"`
	Total string `json:"total"`
}

type AverageBalanceResponse struct {
	AccountCount int    `json:"accountCount"`
	Average      string `json:"average"`
}

type ReportResponse struct {
	ID             string            `json:"id,omitempty"`
	GeneratedAt    string            `json:"generatedAt"`
	ClientCount    int               `json:"clientCount"`
	AccountCount   int               `json:"accountCount"`
	AverageBalance string            `json:"averageBalance"`
	Custody        map[string]string `json:"custody"`
	Richest        *ClientResponse   `json:"richest,omitempty"`
	Poorest        *ClientResponse   `json:"poorest,omitempty"`
}
