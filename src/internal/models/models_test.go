package models_test

import (
	"strings"
	"testing"

	"github.com/api-sage/xubank-ledger/src/internal/models"
)

func TestRegisterClientRequestValidate(t *testing.T) {
	if err := (models.RegisterClientRequest{Name: "Ada", TaxID: "123.456"}).Validate(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	err := models.RegisterClientRequest{Name: " ", TaxID: "abc"}.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "name is required; taxId must contain digits") {
		t.Fatalf("expected joined errors, got %q", err.Error())
	}
}

func TestOpenAccountRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     models.OpenAccountRequest
		wantErr string
	}{
		{name: "checking with limit", req: models.OpenAccountRequest{TaxID: "1", AccountID: 1, Kind: "checking", CreditLimit: "500"}},
		{name: "savings", req: models.OpenAccountRequest{TaxID: "1", AccountID: 2, Kind: "SAVINGS"}},
		{name: "checking without limit", req: models.OpenAccountRequest{TaxID: "1", AccountID: 1, Kind: "CHECKING"}, wantErr: "creditLimit is required"},
		{name: "negative limit", req: models.OpenAccountRequest{TaxID: "1", AccountID: 1, Kind: "CHECKING", CreditLimit: "-1"}, wantErr: "creditLimit cannot be negative"},
		{name: "limit on savings", req: models.OpenAccountRequest{TaxID: "1", AccountID: 1, Kind: "SAVINGS", CreditLimit: "10"}, wantErr: "creditLimit only applies"},
		{name: "unknown kind", req: models.OpenAccountRequest{TaxID: "1", AccountID: 1, Kind: "GOLD"}, wantErr: "kind must be one of"},
		{name: "zero id", req: models.OpenAccountRequest{TaxID: "1", Kind: "SAVINGS"}, wantErr: "accountId must be greater than zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAmountRequestValidate(t *testing.T) {
	if err := (models.AmountRequest{AccountID: 1, Amount: "10.50"}).Validate(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := (models.AmountRequest{AccountID: 1, Amount: "ten"}).Validate(); err == nil || err.Error() != "amount must be numeric" {
		t.Fatalf("expected numeric error, got %v", err)
	}
	if err := (models.AmountRequest{AccountID: 1, Amount: "-3"}).Validate(); err == nil {
		t.Fatal("expected negative amount to fail")
	}
}

func TestCustodyRequestValidate(t *testing.T) {
	if err := (models.CustodyRequest{Kind: "fixed_income"}).Validate(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := (models.CustodyRequest{}).Validate(); err == nil {
		t.Fatal("expected missing kind to fail")
	}
}
