package memory

import (
	"context"
	"sync"

	"github.com/api-sage/account-lifecycle/internal/domain"
)

// AccountRepository keeps live accounts in process memory, keyed by account
// number. Account state never outlives the process.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]*domain.Account)}
}

func (r *AccountRepository) Create(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.AccountNumber()]; exists {
		return domain.ErrAccountExists
	}

	r.accounts[account.AccountNumber()] = account
	return nil
}

func (r *AccountRepository) GetByAccountNumber(_ context.Context, accountNumber string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, exists := r.accounts[accountNumber]
	if !exists {
		return nil, domain.ErrAccountNotFound
	}

	return account, nil
}
