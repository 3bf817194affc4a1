package domain

import "errors"

var ErrAccountNotFound = errors.New("Account not found")
var ErrAccountExists = errors.New("Account already exists")
var ErrAccountNumberRequired = errors.New("Account number is required")
