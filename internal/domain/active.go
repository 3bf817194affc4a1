package domain

import "github.com/shopspring/decimal"

const (
	msgDeposited     = "You deposited %s!"
	msgWithdrew      = "You withdrew %s!"
	msgAlreadyActive = "Account is already active!"
	msgSuspended     = "Account is suspended!"
	msgClosed        = "Account is closed!"
)

type activeState struct{}

func (activeState) Deposit(account *Account, amount decimal.Decimal) AccountState {
	account.balance = account.balance.Add(amount)
	account.emitf(msgDeposited, amount)
	account.emit(account.String())
	return activeState{}
}

func (activeState) Withdraw(account *Account, amount decimal.Decimal) AccountState {
	// No insufficient-funds guard: the balance may go negative.
	account.balance = account.balance.Sub(amount)
	account.emitf(msgWithdrew, amount)
	account.emit(account.String())
	return activeState{}
}

func (activeState) Activate(account *Account) AccountState {
	account.emit(msgAlreadyActive)
	return activeState{}
}

func (activeState) Suspend(account *Account) AccountState {
	account.emit(msgSuspended)
	return suspendedState{}
}

func (activeState) Close(account *Account) AccountState {
	account.emit(msgClosed)
	return closedState{}
}

func (activeState) Status() AccountStatus {
	return AccountStatusActive
}
