package domain

import (
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
)

// Account is the context of the lifecycle state machine. It owns an immutable
// account number, the balance and the current state, and delegates every
// operation to the state, which hands back the state to hold next. All
// outcomes, refusals included, are reported as lines on the account's output
// writer.
type Account struct {
	accountNumber string
	balance       decimal.Decimal
	state         AccountState
	out           io.Writer
}

// New opens an account in the Active state with outcome messages on stdout.
func New(accountNumber string, openingBalance decimal.Decimal) *Account {
	return &Account{
		accountNumber: accountNumber,
		balance:       openingBalance,
		state:         activeState{},
		out:           os.Stdout,
	}
}

// SetOutput redirects the account's outcome messages.
func (a *Account) SetOutput(w io.Writer) {
	a.out = w
}

func (a *Account) AccountNumber() string {
	return a.accountNumber
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Status reports which of the three states the account currently holds.
func (a *Account) Status() AccountStatus {
	return a.state.Status()
}

func (a *Account) Deposit(amount decimal.Decimal) {
	a.state = a.state.Deposit(a, amount)
}

func (a *Account) Withdraw(amount decimal.Decimal) {
	a.state = a.state.Withdraw(a, amount)
}

func (a *Account) Activate() {
	a.state = a.state.Activate(a)
}

func (a *Account) Suspend() {
	a.state = a.state.Suspend(a)
}

func (a *Account) Close() {
	a.state = a.state.Close(a)
}

func (a *Account) String() string {
	return fmt.Sprintf("Account{accountNumber='%s', balance=%s}", a.accountNumber, a.balance)
}

func (a *Account) emit(line string) {
	fmt.Fprintln(a.out, line)
}

func (a *Account) emitf(format string, args ...any) {
	a.emit(fmt.Sprintf(format, args...))
}
