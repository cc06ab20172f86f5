package fundprotection

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"domus/internal/models"
	"domus/internal/repositories"
	"domus/internal/services/notification"
	"domus/internal/services/payment"
	"domus/internal/utils/lock"

	"github.com/shopspring/decimal"
)

const lockTTL = 30 * time.Second

type service struct {
	txRepo     repositories.TransactionRepository
	stepRepo   repositories.StepRepository
	walletRepo repositories.WalletRepository
	provider   payment.Provider
	notifier   notification.Service
	locker     lock.DistributedLock
}

// NewService creates a new fund-protection service.
func NewService(
	txRepo repositories.TransactionRepository,
	stepRepo repositories.StepRepository,
	walletRepo repositories.WalletRepository,
	provider payment.Provider,
	notifier notification.Service,
	locker lock.DistributedLock,
) Service {
	if txRepo == nil {
		panic("transaction repo is required")
	}
	if stepRepo == nil {
		panic("step repo is required")
	}
	if walletRepo == nil {
		panic("wallet repo is required")
	}
	if provider == nil {
		panic("payment provider is required")
	}
	if notifier == nil {
		panic("notifier is required")
	}
	if locker == nil {
		panic("locker is required")
	}
	return &service{
		txRepo:     txRepo,
		stepRepo:   stepRepo,
		walletRepo: walletRepo,
		provider:   provider,
		notifier:   notifier,
		locker:     locker,
	}
}

func (s *service) Initialize(ctx context.Context, transactionID, actorID uint, actorRole, currency string) (*Result, error) {
	key := fmt.Sprintf("fundprotection:%d", transactionID)
	ok, err := s.locker.Acquire(ctx, key, lockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrConflict
	}
	defer func() {
		if err := s.locker.Release(ctx, key); err != nil {
			log.Printf("failed to release lock %s: %v", key, err)
		}
	}()

	// Fresh state under the lock; nothing client-supplied is trusted.
	tx, err := s.txRepo.GetByID(transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if actorRole != models.RoleAdmin && tx.PartyOf(actorID) == "" {
		return nil, ErrForbidden
	}
	if tx.Status != models.TxStatusFundProtection {
		return nil, ErrWrongStage
	}
	if !tx.AgreedPrice.Valid {
		return nil, ErrNoAgreedPrice
	}

	cryptoPct, fiatPct, err := methodPercentages(tx)
	if err != nil {
		return nil, err
	}

	agreed := tx.AgreedPrice.Decimal
	cryptoEUR, fiatEUR := splitAmounts(agreed, cryptoPct, fiatPct)

	in := generationInput{tx: tx, fiatEUR: fiatEUR}
	result := &Result{
		Currency:        CurrencyEUR,
		CryptoEURAmount: cryptoEUR.Round(EURScale),
		FiatEURAmount:   fiatEUR.Round(EURScale),
		ExchangeRate:    decimal.NewFromInt(1),
	}

	if cryptoEUR.IsPositive() {
		if !AllowedCurrencies[currency] {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
		}
		result.Currency = currency
		in.currency = currency

		// Both parties need an enriched wallet before any step exists.
		// Enrichment failure aborts with no steps created.
		buyerWallet, err := s.resolveWallet(ctx, tx.BuyerID, currency)
		if err != nil {
			return nil, err
		}
		sellerWallet, err := s.resolveWallet(ctx, tx.SellerID, currency)
		if err != nil {
			return nil, err
		}
		in.buyerWallet = buyerWallet
		in.sellerWallet = sellerWallet

		rate, fallback := s.sellRate(ctx, currency)
		in.cryptoAmount = cryptoEUR.Div(rate)
		result.ExchangeRate = rate
		result.RateFallback = fallback
		result.CryptoAmount = in.cryptoAmount.Round(CryptoScale)
	}

	steps := buildSteps(in)
	if err := s.stepRepo.ReplaceForTransaction(tx.ID, steps); err != nil {
		return nil, err
	}
	if err := s.txRepo.UpdateFieldsIfStatus(tx.ID, models.TxStatusFundProtection, map[string]interface{}{
		"settlement_currency": result.Currency,
	}); err != nil && !errors.Is(err, repositories.ErrStatusConflict) {
		return nil, err
	}

	for _, step := range steps {
		result.Steps = append(result.Steps, *step)
	}

	data := models.NewJSON(map[string]interface{}{
		"transaction_id": tx.ID,
		"currency":       result.Currency,
		"step_count":     len(steps),
	})
	s.notifier.Notify(ctx, tx.BuyerID, models.NotificationFundProtection,
		"Fund protection initialized",
		fmt.Sprintf("%d payment steps were generated for your transaction", len(steps)), data)
	s.notifier.Notify(ctx, tx.SellerID, models.NotificationFundProtection,
		"Fund protection initialized",
		fmt.Sprintf("%d payment steps were generated for your transaction", len(steps)), data)

	return result, nil
}

// resolveWallet finds the party's wallet for the currency and enriches it
// with a deposit address when missing.
func (s *service) resolveWallet(ctx context.Context, userID uint, currency string) (*models.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserAndCurrency(userID, currency)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, fmt.Errorf("%w: user %d, currency %s", ErrWalletNotFound, userID, currency)
		}
		return nil, err
	}
	if wallet.HasAddress() {
		return wallet, nil
	}

	address, err := s.provider.EnrichWallet(ctx, userID, wallet.ProviderWalletID)
	if err != nil {
		return nil, err
	}
	if err := s.walletRepo.SetAddress(wallet.ID, address); err != nil {
		return nil, err
	}
	wallet.Address = address
	return wallet, nil
}

// sellRate fetches the live sell rate for <currency>EUR. A provider failure
// or missing pair falls back to 1:1 and generation proceeds; this mirrors
// the platform policy of degrading gracefully rather than blocking the deal.
func (s *service) sellRate(ctx context.Context, currency string) (decimal.Decimal, bool) {
	one := decimal.NewFromInt(1)

	rates, err := s.provider.GetExchangeRates(ctx)
	if err != nil {
		log.Printf("exchange rate fetch failed, using 1:1 fallback for %s: %v", currency, err)
		return one, true
	}
	rate, ok := rates[currency+CurrencyEUR]
	if !ok || !rate.Sell.IsPositive() {
		log.Printf("no usable %sEUR rate, using 1:1 fallback", currency)
		return one, true
	}
	return rate.Sell, false
}

func (s *service) CompleteStep(ctx context.Context, stepID, actorID uint) (*models.FundProtectionStep, error) {
	step, err := s.stepRepo.GetByID(stepID)
	if err != nil {
		if errors.Is(err, repositories.ErrStepNotFound) {
			return nil, ErrStepNotFound
		}
		return nil, err
	}

	tx, err := s.txRepo.GetByID(step.TransactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if tx.PartyOf(actorID) != step.UserType {
		return nil, ErrForbidden
	}
	if step.Status == models.StepStatusCompleted {
		return nil, ErrAlreadyCompleted
	}

	pending, err := s.stepRepo.CountIncompleteBefore(tx.ID, step.StepNumber)
	if err != nil {
		return nil, err
	}
	if pending > 0 {
		return nil, fmt.Errorf("%w: step %d", ErrOutOfOrder, step.StepNumber)
	}

	// Guarded update: a concurrent completion of the same step loses here.
	if err := s.stepRepo.MarkCompleted(step.ID); err != nil {
		if errors.Is(err, repositories.ErrStatusConflict) {
			return nil, ErrAlreadyCompleted
		}
		return nil, err
	}
	step.Status = models.StepStatusCompleted

	data := models.NewJSON(map[string]interface{}{
		"transaction_id": tx.ID,
		"step_number":    step.StepNumber,
		"step_type":      step.StepType,
	})
	s.notifier.Notify(ctx, tx.Counterparty(actorID), models.NotificationStepCompleted,
		"Payment step completed",
		fmt.Sprintf("Step %d (%s) was completed", step.StepNumber, step.StepType), data)

	remaining, err := s.stepRepo.CountIncomplete(tx.ID)
	if err != nil {
		return step, nil
	}
	if remaining == 0 {
		msg := "All fund protection steps are completed; the transaction can move to escrow"
		s.notifier.Notify(ctx, tx.BuyerID, models.NotificationStepCompleted, "Fund protection completed", msg, data)
		s.notifier.Notify(ctx, tx.SellerID, models.NotificationStepCompleted, "Fund protection completed", msg, data)
	}

	return step, nil
}

func (s *service) Steps(ctx context.Context, transactionID, actorID uint, actorRole string) ([]models.FundProtectionStep, error) {
	tx, err := s.txRepo.GetByID(transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if actorRole != models.RoleAdmin && tx.PartyOf(actorID) == "" {
		return nil, ErrForbidden
	}
	return s.stepRepo.ListByTransaction(transactionID)
}
