package domain

import "errors"

var ErrNegativeAmount = errors.New("amount must not be negative")
var ErrInsufficientFunds = errors.New("insufficient funds")
var ErrNegativeCreditLimit = errors.New("credit limit must not be negative")
var ErrOwnerMismatch = errors.New("account belongs to another client")
var ErrDuplicateAccount = errors.New("account number already in use")
var ErrDuplicateClient = errors.New("a client with this tax id already exists")
var ErrInvalidTaxID = errors.New("tax id must contain digits")
var ErrNotYieldBearing = errors.New("account type does not accrue yield")
var ErrNoWithdrawalTax = errors.New("account type has no withdrawal tax")
