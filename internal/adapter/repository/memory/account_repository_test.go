package memory_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/api-sage/account-lifecycle/internal/adapter/repository/memory"
	"github.com/api-sage/account-lifecycle/internal/domain"
	"github.com/shopspring/decimal"
)

func TestAccountRepositoryCreateAndGet(t *testing.T) {
	repo := memory.NewAccountRepository()

	account := domain.New("1234", decimal.NewFromInt(10000))
	account.SetOutput(io.Discard)

	if err := repo.Create(context.Background(), account); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByAccountNumber(context.Background(), "1234")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != account {
		t.Fatal("expected the stored account instance back")
	}
}

func TestAccountRepositoryDuplicateCreate(t *testing.T) {
	repo := memory.NewAccountRepository()

	account := domain.New("1234", decimal.NewFromInt(10000))
	account.SetOutput(io.Discard)

	if err := repo.Create(context.Background(), account); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(context.Background(), account); !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("duplicate create error = %v, want %v", err, domain.ErrAccountExists)
	}
}

func TestAccountRepositoryUnknownAccount(t *testing.T) {
	repo := memory.NewAccountRepository()

	if _, err := repo.GetByAccountNumber(context.Background(), "9999"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("get unknown error = %v, want %v", err, domain.ErrAccountNotFound)
	}
}
