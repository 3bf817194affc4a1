package repo_interfaces

import (
	"context"

	"github.com/api-sage/account-lifecycle/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByAccountNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
}
