package domain

import "github.com/shopspring/decimal"

const (
	msgDepositSuspended  = "You cannot deposit on a suspended account!"
	msgWithdrawSuspended = "You cannot withdraw on a suspended account!"
	msgActivated         = "Account is activated!"
	msgAlreadySuspended  = "Account is already suspended!"
)

type suspendedState struct{}

func (suspendedState) Deposit(account *Account, _ decimal.Decimal) AccountState {
	account.emit(msgDepositSuspended)
	return suspendedState{}
}

func (suspendedState) Withdraw(account *Account, _ decimal.Decimal) AccountState {
	account.emit(msgWithdrawSuspended)
	return suspendedState{}
}

func (suspendedState) Activate(account *Account) AccountState {
	account.emit(msgActivated)
	return activeState{}
}

func (suspendedState) Suspend(account *Account) AccountState {
	account.emit(msgAlreadySuspended)
	return suspendedState{}
}

func (suspendedState) Close(account *Account) AccountState {
	account.emit(msgClosed)
	return closedState{}
}

func (suspendedState) Status() AccountStatus {
	return AccountStatusSuspended
}
