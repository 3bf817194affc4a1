package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

const defaultAccountNumber = "1234"
const defaultOpeningBalance = "10000"

type Config struct {
	AccountNumber  string
	OpeningBalance decimal.Decimal
}

func Load() (Config, error) {
	accountNumber := strings.TrimSpace(os.Getenv("DEMO_ACCOUNT_NUMBER"))
	if accountNumber == "" {
		accountNumber = defaultAccountNumber
	}

	rawBalance := strings.TrimSpace(os.Getenv("DEMO_OPENING_BALANCE"))
	if rawBalance == "" {
		rawBalance = defaultOpeningBalance
	}

	openingBalance, err := decimal.NewFromString(rawBalance)
	if err != nil {
		return Config{}, fmt.Errorf("parse DEMO_OPENING_BALANCE: %w", err)
	}

	return Config{
		AccountNumber:  accountNumber,
		OpeningBalance: openingBalance,
	}, nil
}
