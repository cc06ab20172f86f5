package fundprotection

import (
	"fmt"

	"domus/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// splitAmounts divides the agreed price into its EUR-denominated crypto and
// fiat portions. Percentages are 100/0 for pure CRYPTO and 0/100 for pure
// FIAT; for HYBRID the caller has already validated they sum to 100.
func splitAmounts(agreed decimal.Decimal, cryptoPct, fiatPct int) (cryptoEUR, fiatEUR decimal.Decimal) {
	cryptoEUR = agreed.Mul(decimal.NewFromInt(int64(cryptoPct))).Div(oneHundred)
	fiatEUR = agreed.Mul(decimal.NewFromInt(int64(fiatPct))).Div(oneHundred)
	return cryptoEUR, fiatEUR
}

// methodPercentages normalizes the payment method into crypto/fiat
// percentages, validating the HYBRID split.
func methodPercentages(tx *models.Transaction) (cryptoPct, fiatPct int, err error) {
	switch tx.PaymentMethod {
	case models.PaymentMethodCrypto:
		return 100, 0, nil
	case models.PaymentMethodFiat:
		return 0, 100, nil
	case models.PaymentMethodHybrid:
		if tx.CryptoPercentage+tx.FiatPercentage != 100 {
			return 0, 0, ErrInvalidSplit
		}
		return tx.CryptoPercentage, tx.FiatPercentage, nil
	default:
		return 0, 0, fmt.Errorf("%w: unknown payment method %q", ErrInvalidSplit, tx.PaymentMethod)
	}
}

type generationInput struct {
	tx           *models.Transaction
	currency     string
	cryptoAmount decimal.Decimal
	fiatEUR      decimal.Decimal
	buyerWallet  *models.Wallet // nil when there is no crypto leg
	sellerWallet *models.Wallet
}

// buildSteps emits the step list in strict execution order, numbered from 1.
// The crypto sequence comes first, then the fiat sequence; each sequence's
// internal order is fixed.
func buildSteps(in generationInput) []*models.FundProtectionStep {
	var steps []*models.FundProtectionStep
	num := 0
	next := func() int { num++; return num }

	if in.cryptoAmount.IsPositive() {
		var buyerID, sellerID *uint
		if in.buyerWallet != nil {
			buyerID = &in.buyerWallet.ID
		}
		if in.sellerWallet != nil {
			sellerID = &in.sellerWallet.ID
		}

		steps = append(steps,
			&models.FundProtectionStep{
				TransactionID: in.tx.ID,
				Reference:     uuid.NewString(),
				StepNumber:    next(),
				StepType:      models.StepTypeCryptoDeposit,
				Description:   fmt.Sprintf("Deposit %s %s to your platform wallet", in.cryptoAmount.Round(CryptoScale), in.currency),
				UserType:      models.PartyBuyer,
				Status:        models.StepStatusPending,
				Amount:        in.cryptoAmount,
				Currency:      in.currency,
				ToWalletID:    buyerID,
			},
			&models.FundProtectionStep{
				TransactionID: in.tx.ID,
				Reference:     uuid.NewString(),
				StepNumber:    next(),
				StepType:      models.StepTypeCryptoTransfer,
				Description:   fmt.Sprintf("Transfer %s %s to the seller's platform wallet", in.cryptoAmount.Round(CryptoScale), in.currency),
				UserType:      models.PartyBuyer,
				Status:        models.StepStatusPending,
				Amount:        in.cryptoAmount,
				Currency:      in.currency,
				FromWalletID:  buyerID,
				ToWalletID:    sellerID,
			},
			&models.FundProtectionStep{
				TransactionID: in.tx.ID,
				Reference:     uuid.NewString(),
				StepNumber:    next(),
				StepType:      models.StepTypeCryptoConvert,
				Description:   fmt.Sprintf("Convert received %s to EUR", in.currency),
				UserType:      models.PartySeller,
				Status:        models.StepStatusPending,
				Amount:        in.cryptoAmount,
				Currency:      in.currency,
				FromWalletID:  sellerID,
			},
			&models.FundProtectionStep{
				TransactionID: in.tx.ID,
				Reference:     uuid.NewString(),
				StepNumber:    next(),
				StepType:      models.StepTypeIBANTransfer,
				Description:   "Withdraw converted EUR to your bank account",
				UserType:      models.PartySeller,
				Status:        models.StepStatusPending,
				Amount:        in.cryptoAmount,
				Currency:      in.currency,
				FromWalletID:  sellerID,
			},
		)
	}

	if in.fiatEUR.IsPositive() {
		steps = append(steps,
			&models.FundProtectionStep{
				TransactionID: in.tx.ID,
				Reference:     uuid.NewString(),
				StepNumber:    next(),
				StepType:      models.StepTypeFiatUpload,
				Description:   fmt.Sprintf("Upload proof of bank transfer of %s EUR", in.fiatEUR.Round(EURScale)),
				UserType:      models.PartyBuyer,
				Status:        models.StepStatusPending,
				Amount:        in.fiatEUR,
				Currency:      CurrencyEUR,
			},
			&models.FundProtectionStep{
				TransactionID: in.tx.ID,
				Reference:     uuid.NewString(),
				StepNumber:    next(),
				StepType:      models.StepTypeFiatConfirm,
				Description:   fmt.Sprintf("Confirm receipt of %s EUR", in.fiatEUR.Round(EURScale)),
				UserType:      models.PartySeller,
				Status:        models.StepStatusPending,
				Amount:        in.fiatEUR,
				Currency:      CurrencyEUR,
			},
		)
	}

	return steps
}
