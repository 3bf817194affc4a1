package domain

import "github.com/shopspring/decimal"

// Refused deposits and withdrawals on a closed account also dump the account,
// and the activate wording really is "can not".
const (
	msgDepositClosed  = "You cannot deposit on a closed account!"
	msgWithdrawClosed = "You cannot withdraw on a closed account!"
	msgSuspendClosed  = "You cannot suspend closed account!"
	msgActivateClosed = "You can not activate closed account!"
	msgAlreadyClosed  = "Account is already closed!"
)

// closedState is terminal: no operation transitions out of it or touches the
// balance.
type closedState struct{}

func (closedState) Deposit(account *Account, _ decimal.Decimal) AccountState {
	account.emit(msgDepositClosed)
	account.emit(account.String())
	return closedState{}
}

func (closedState) Withdraw(account *Account, _ decimal.Decimal) AccountState {
	account.emit(msgWithdrawClosed)
	account.emit(account.String())
	return closedState{}
}

func (closedState) Activate(account *Account) AccountState {
	account.emit(msgActivateClosed)
	return closedState{}
}

func (closedState) Suspend(account *Account) AccountState {
	account.emit(msgSuspendClosed)
	return closedState{}
}

func (closedState) Close(account *Account) AccountState {
	account.emit(msgAlreadyClosed)
	return closedState{}
}

func (closedState) Status() AccountStatus {
	return AccountStatusClosed
}
