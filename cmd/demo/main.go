package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/api-sage/account-lifecycle/internal/adapter/repository/memory"
	"github.com/api-sage/account-lifecycle/internal/config"
	"github.com/api-sage/account-lifecycle/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc := services.NewAccountService(memory.NewAccountRepository(), os.Stdout)

	number := cfg.AccountNumber
	if _, err := svc.OpenAccount(ctx, number, cfg.OpeningBalance); err != nil {
		log.Fatalf("open account: %v", err)
	}

	steps := []struct {
		name string
		run  func() error
	}{
		{"activate", func() error { _, err := svc.Activate(ctx, number); return err }},
		{"suspend", func() error { _, err := svc.Suspend(ctx, number); return err }},
		{"activate", func() error { _, err := svc.Activate(ctx, number); return err }},
		{"deposit", func() error { _, err := svc.Deposit(ctx, number, decimal.NewFromInt(1000)); return err }},
		{"withdraw", func() error { _, err := svc.Withdraw(ctx, number, decimal.NewFromInt(100)); return err }},
		{"close", func() error { _, err := svc.Close(ctx, number); return err }},
		{"activate", func() error { _, err := svc.Activate(ctx, number); return err }},
		{"suspend", func() error { _, err := svc.Suspend(ctx, number); return err }},
		{"withdraw", func() error { _, err := svc.Withdraw(ctx, number, decimal.NewFromInt(500)); return err }},
		{"deposit", func() error { _, err := svc.Deposit(ctx, number, decimal.NewFromInt(1000)); return err }},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			log.Fatalf("%s: %v", step.name, err)
		}
	}
}
