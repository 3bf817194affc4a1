package service_interfaces

import (
	"context"

	"github.com/api-sage/account-lifecycle/internal/usecase/services"
	"github.com/shopspring/decimal"
)

type AccountService interface {
	OpenAccount(ctx context.Context, accountNumber string, openingBalance decimal.Decimal) (services.AccountView, error)
	GetAccount(ctx context.Context, accountNumber string) (services.AccountView, error)
	Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal) (services.AccountView, error)
	Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal) (services.AccountView, error)
	Activate(ctx context.Context, accountNumber string) (services.AccountView, error)
	Suspend(ctx context.Context, accountNumber string) (services.AccountView, error)
	Close(ctx context.Context, accountNumber string) (services.AccountView, error)
}
