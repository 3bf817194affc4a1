package domain

import "github.com/shopspring/decimal"

type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "ACTIVE"
	AccountStatusSuspended AccountStatus = "SUSPENDED"
	AccountStatusClosed    AccountStatus = "CLOSED"
)

// AccountState is one row of the account lifecycle table. Every operation
// returns the state the account must hold afterwards; the account itself is
// the only writer of its state field. Refusals are reported on the account's
// output writer, never as errors.
type AccountState interface {
	Deposit(account *Account, amount decimal.Decimal) AccountState
	Withdraw(account *Account, amount decimal.Decimal) AccountState
	Activate(account *Account) AccountState
	Suspend(account *Account) AccountState
	Close(account *Account) AccountState
	Status() AccountStatus
}
