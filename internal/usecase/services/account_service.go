package services

import (
	"context"
	"io"
	"strings"

	"github.com/api-sage/account-lifecycle/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/account-lifecycle/internal/domain"
	"github.com/api-sage/account-lifecycle/internal/logger"
	"github.com/shopspring/decimal"
)

// AccountView is the snapshot returned after every account operation.
type AccountView struct {
	AccountNumber string
	Balance       decimal.Decimal
	Status        domain.AccountStatus
}

type AccountService struct {
	accountRepo repo_interfaces.AccountRepository
	out         io.Writer
}

// NewAccountService wires the registry the service operates on and the writer
// account outcome messages are emitted to.
func NewAccountService(accountRepo repo_interfaces.AccountRepository, out io.Writer) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		out:         out,
	}
}

func (s *AccountService) OpenAccount(ctx context.Context, accountNumber string, openingBalance decimal.Decimal) (AccountView, error) {
	logger.Info("account service open account request", logger.Fields{
		"accountNumber":  accountNumber,
		"openingBalance": openingBalance,
	})

	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		logger.Error("account service open account validation failed", domain.ErrAccountNumberRequired, nil)
		return AccountView{}, domain.ErrAccountNumberRequired
	}

	account := domain.New(accountNumber, openingBalance)
	account.SetOutput(s.out)

	if err := s.accountRepo.Create(ctx, account); err != nil {
		logger.Error("account service open account repository failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return AccountView{}, err
	}

	view := viewOf(account)
	logger.Info("account service open account success", logger.Fields{
		"accountNumber": view.AccountNumber,
		"balance":       view.Balance,
		"status":        view.Status,
	})

	return view, nil
}

func (s *AccountService) GetAccount(ctx context.Context, accountNumber string) (AccountView, error) {
	logger.Info("account service get account request", logger.Fields{
		"accountNumber": accountNumber,
	})

	account, err := s.lookup(ctx, accountNumber)
	if err != nil {
		return AccountView{}, err
	}

	return viewOf(account), nil
}

func (s *AccountService) Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal) (AccountView, error) {
	logger.Info("account service deposit request", logger.Fields{
		"accountNumber": accountNumber,
		"amount":        amount,
	})

	return s.apply(ctx, accountNumber, "deposit", func(account *domain.Account) {
		account.Deposit(amount)
	})
}

func (s *AccountService) Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal) (AccountView, error) {
	logger.Info("account service withdraw request", logger.Fields{
		"accountNumber": accountNumber,
		"amount":        amount,
	})

	return s.apply(ctx, accountNumber, "withdraw", func(account *domain.Account) {
		account.Withdraw(amount)
	})
}

func (s *AccountService) Activate(ctx context.Context, accountNumber string) (AccountView, error) {
	logger.Info("account service activate request", logger.Fields{
		"accountNumber": accountNumber,
	})

	return s.apply(ctx, accountNumber, "activate", (*domain.Account).Activate)
}

func (s *AccountService) Suspend(ctx context.Context, accountNumber string) (AccountView, error) {
	logger.Info("account service suspend request", logger.Fields{
		"accountNumber": accountNumber,
	})

	return s.apply(ctx, accountNumber, "suspend", (*domain.Account).Suspend)
}

func (s *AccountService) Close(ctx context.Context, accountNumber string) (AccountView, error) {
	logger.Info("account service close request", logger.Fields{
		"accountNumber": accountNumber,
	})

	return s.apply(ctx, accountNumber, "close", (*domain.Account).Close)
}

// apply looks the account up and hands it to the operation. The state machine
// decides the outcome; refusals are emitted by the account itself, so the only
// error path here is an unknown account number.
func (s *AccountService) apply(ctx context.Context, accountNumber string, operation string, op func(*domain.Account)) (AccountView, error) {
	account, err := s.lookup(ctx, accountNumber)
	if err != nil {
		logger.Error("account service "+operation+" lookup failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return AccountView{}, err
	}

	op(account)

	view := viewOf(account)
	logger.Info("account service "+operation+" handled", logger.Fields{
		"accountNumber": view.AccountNumber,
		"balance":       view.Balance,
		"status":        view.Status,
	})

	return view, nil
}

func (s *AccountService) lookup(ctx context.Context, accountNumber string) (*domain.Account, error) {
	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		return nil, domain.ErrAccountNumberRequired
	}

	return s.accountRepo.GetByAccountNumber(ctx, accountNumber)
}

func viewOf(account *domain.Account) AccountView {
	return AccountView{
		AccountNumber: account.AccountNumber(),
		Balance:       account.Balance(),
		Status:        account.Status(),
	}
}
