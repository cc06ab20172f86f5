package stage

import (
	"context"
	"testing"

	"domus/internal/models"
	"domus/internal/repositories"
	"domus/internal/services/fundprotection"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stageMocks struct {
	txRepo       *MockTransactionRepo
	propertyRepo *MockPropertyRepo
	offerRepo    *MockOfferRepo
	docRepo      *MockDocumentRepo
	stepRepo     *MockStepRepo
	kyc          *MockKYCService
	generator    *MockGenerator
	notifier     *MockNotifier
	locker       *MockLocker
}

func newStageService() (Service, *stageMocks) {
	m := &stageMocks{
		txRepo:       new(MockTransactionRepo),
		propertyRepo: new(MockPropertyRepo),
		offerRepo:    new(MockOfferRepo),
		docRepo:      new(MockDocumentRepo),
		stepRepo:     new(MockStepRepo),
		kyc:          new(MockKYCService),
		generator:    new(MockGenerator),
		notifier:     new(MockNotifier),
		locker:       new(MockLocker),
	}
	svc := NewService(m.txRepo, m.propertyRepo, m.offerRepo, m.docRepo, m.stepRepo,
		m.kyc, m.generator, m.notifier, m.locker)
	return svc, m
}

func (m *stageMocks) allowLock() {
	m.locker.On("Acquire", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
	m.locker.On("Release", mock.Anything, mock.Anything).Return(nil)
}

func (m *stageMocks) allowNotify() {
	m.notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return()
}

func testTransaction(status string) *models.Transaction {
	tx := &models.Transaction{
		Reference:     "ref-10",
		PropertyID:    5,
		BuyerID:       1,
		SellerID:      2,
		Status:        status,
		OfferPrice:    decimal.NewFromInt(250000),
		PaymentMethod: models.PaymentMethodFiat,
	}
	tx.ID = 10
	return tx
}

func TestMakeOffer(t *testing.T) {
	approvedProperty := func() *models.Property {
		p := &models.Property{
			SellerID: 2,
			Title:    "Canal house",
			Status:   models.PropertyStatusApproved,
			Price:    decimal.NewFromInt(260000),
		}
		p.ID = 5
		return p
	}

	t.Run("success", func(t *testing.T) {
		svc, m := newStageService()
		m.propertyRepo.On("GetByID", uint(5)).Return(approvedProperty(), nil)
		m.txRepo.On("HasActiveForProperty", uint(5), uint(1)).Return(false, nil)
		m.txRepo.On("Create", mock.Anything).Run(func(args mock.Arguments) {
			args.Get(0).(*models.Transaction).ID = 10
		}).Return(nil)
		m.offerRepo.On("Create", mock.Anything).Return(nil)
		m.allowNotify()

		tx, err := svc.MakeOffer(context.Background(), OfferRequest{
			PropertyID:    5,
			BuyerID:       1,
			Amount:        decimal.NewFromInt(250000),
			PaymentMethod: models.PaymentMethodFiat,
		})
		require.NoError(t, err)

		assert.Equal(t, models.TxStatusOffer, tx.Status)
		assert.Equal(t, uint(2), tx.SellerID)
		assert.NotEmpty(t, tx.Reference)
		assert.False(t, tx.ProposalDate.IsZero())
		m.offerRepo.AssertExpectations(t)
	})

	t.Run("property not approved", func(t *testing.T) {
		svc, m := newStageService()
		p := approvedProperty()
		p.Status = models.PropertyStatusUnderReview
		m.propertyRepo.On("GetByID", uint(5)).Return(p, nil)

		_, err := svc.MakeOffer(context.Background(), OfferRequest{
			PropertyID: 5, BuyerID: 1,
			Amount:        decimal.NewFromInt(250000),
			PaymentMethod: models.PaymentMethodFiat,
		})
		assert.ErrorIs(t, err, ErrInvalidOffer)
	})

	t.Run("own property", func(t *testing.T) {
		svc, m := newStageService()
		m.propertyRepo.On("GetByID", uint(5)).Return(approvedProperty(), nil)

		_, err := svc.MakeOffer(context.Background(), OfferRequest{
			PropertyID: 5, BuyerID: 2,
			Amount:        decimal.NewFromInt(250000),
			PaymentMethod: models.PaymentMethodFiat,
		})
		assert.ErrorIs(t, err, ErrInvalidOffer)
	})

	t.Run("duplicate active transaction", func(t *testing.T) {
		svc, m := newStageService()
		m.propertyRepo.On("GetByID", uint(5)).Return(approvedProperty(), nil)
		m.txRepo.On("HasActiveForProperty", uint(5), uint(1)).Return(true, nil)

		_, err := svc.MakeOffer(context.Background(), OfferRequest{
			PropertyID: 5, BuyerID: 1,
			Amount:        decimal.NewFromInt(250000),
			PaymentMethod: models.PaymentMethodFiat,
		})
		assert.ErrorIs(t, err, ErrInvalidOffer)
		m.txRepo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("hybrid split must sum to 100", func(t *testing.T) {
		svc, m := newStageService()
		m.propertyRepo.On("GetByID", uint(5)).Return(approvedProperty(), nil)

		_, err := svc.MakeOffer(context.Background(), OfferRequest{
			PropertyID: 5, BuyerID: 1,
			Amount:           decimal.NewFromInt(250000),
			PaymentMethod:    models.PaymentMethodHybrid,
			CryptoPercentage: 40,
			FiatPercentage:   70,
		})
		assert.ErrorIs(t, err, ErrInvalidOffer)
	})
}

func TestTransition_AcceptOffer(t *testing.T) {
	t.Run("seller accepts", func(t *testing.T) {
		svc, m := newStageService()
		tx := testTransaction(models.TxStatusNegotiation)
		m.allowLock()
		m.allowNotify()
		m.txRepo.On("GetByID", uint(10)).Return(tx, nil)
		m.txRepo.On("UpdateStatusIf", uint(10), models.TxStatusNegotiation,
			models.TxStatusAgreement, mock.Anything).Return(nil)

		result, err := svc.Transition(context.Background(), TransitionRequest{
			TransactionID: 10, ActorID: 2, ActorRole: models.RoleSeller,
			Action: ActionAcceptOffer,
		})
		require.NoError(t, err)
		assert.Equal(t, models.TxStatusAgreement, result.NewStatus)
	})

	t.Run("buyer may not accept", func(t *testing.T) {
		svc, m := newStageService()
		m.allowLock()
		m.txRepo.On("GetByID", uint(10)).Return(testTransaction(models.TxStatusNegotiation), nil)

		_, err := svc.Transition(context.Background(), TransitionRequest{
			TransactionID: 10, ActorID: 1, ActorRole: models.RoleBuyer,
			Action: ActionAcceptOffer,
		})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("not accepting from OFFER", func(t *testing.T) {
		svc, m := newStageService()
		m.allowLock()
		m.txRepo.On("GetByID", uint(10)).Return(testTransaction(models.TxStatusOffer), nil)

		_, err := svc.Transition(context.Background(), TransitionRequest{
			TransactionID: 10, ActorID: 2, ActorRole: models.RoleSeller,
			Action: ActionAcceptOffer,
		})
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestTransition_CounterOffer(t *testing.T) {
	svc, m := newStageService()
	tx := testTransaction(models.TxStatusOffer)
	m.allowLock()
	m.allowNotify()
	m.txRepo.On("GetByID", uint(10)).Return(tx, nil)
	m.txRepo.On("UpdateStatusIf", uint(10), models.TxStatusOffer,
		models.TxStatusNegotiation, mock.Anything).Return(nil)
	m.offerRepo.On("Create", mock.Anything).Return(nil)

	result, err := svc.Transition(context.Background(), TransitionRequest{
		TransactionID: 10, ActorID: 2, ActorRole: models.RoleSeller,
		Action: ActionCounterOffer,
		Amount: decimal.NewFromInt(260000),
	})
	require.NoError(t, err)
	assert.Equal(t, models.TxStatusNegotiation, result.NewStatus)
	m.offerRepo.AssertExpectations(t)
}

func TestTransition_CounterOffer_RequiresPositiveAmount(t *testing.T) {
	svc, m := newStageService()
	m.allowLock()
	m.txRepo.On("GetByID", uint(10)).Return(testTransaction(models.TxStatusOffer), nil)

	_, err := svc.Transition(context.Background(), TransitionRequest{
		TransactionID: 10, ActorID: 1, ActorRole: models.RoleBuyer,
		Action: ActionCounterOffer,
		Amount: decimal.Zero,
	})
	assert.ErrorIs(t, err, ErrInvalidOffer)
}

func TestTransition_SignPromissory(t *testing.T) {
	t.Run("requires the countersigned document", func(t *testing.T) {
		svc, m := newStageService()
		m.allowLock()
		m.txRepo.On("GetByID", uint(10)).Return(testTransaction(models.TxStatusAgreement), nil)
		m.docRepo.On("HasForTransaction", uint(10), models.DocTypePromissoryCountersigned,
			mock.Anything).Return(false, nil)

		_, err := svc.Transition(context.Background(), TransitionRequest{
			TransactionID: 10, ActorID: 1, ActorRole: models.RoleBuyer,
			Action: ActionSignPromissory,
		})
		assert.ErrorIs(t, err, ErrPreconditionFailed)
	})

	t.Run("buyer signs once", func(t *testing.T) {
		svc, m := newStageService()
		tx := testTransaction(models.TxStatusAgreement)
		m.allowLock()
		m.allowNotify()
		m.txRepo.On("GetByID", uint(10)).Return(tx, nil)
		m.docRepo.On("HasForTransaction", uint(10), models.DocTypePromissoryCountersigned,
			mock.Anything).Return(true, nil)
		m.txRepo.On("UpdateFieldsIfStatus", uint(10), models.TxStatusAgreement,
			map[string]interface{}{"buyer_signed": true}).Return(nil)

		result, err := svc.Transition(context.Background(), TransitionRequest{
			TransactionID: 10, ActorID: 1, ActorRole: models.RoleBuyer,
			Action: ActionSignPromissory,
		})
		require.NoError(t, err)
		assert.Equal(t, models.TxStatusAgreement, result.NewStatus, "flag-only action keeps the status")
	})

	t.Run("signing twice is rejected", func(t *testing.T) {
		svc, m := newStageService()
		tx := testTransaction(models.TxStatusAgreement)
		tx.BuyerSigned = true
		m.allowLock()
		m.txRepo.On("GetByID", uint(10)).Return(tx, nil)
		m.docRepo.On("HasForTransaction", uint(10), models.DocTypePromissoryCountersigned,
			mock.Anything).Return(true, nil)

		_, err := svc.Transition(context.Background(), TransitionRequest{
			TransactionID: 10, ActorID: 1, ActorRole: models.RoleBuyer,
			Action: ActionSignPromissory,
		})
		assert.ErrorIs(t, err, ErrAlreadyApplied)
	})
}

func TestTransition_SignMediation_RequiresPromissoryFirst(t *testing.T) {
	svc, m := newStageService()
	tx := testTransaction(models.TxStatusAgreement)
	tx.BuyerSigned = true // seller has not signed yet
	m.allowLock()
	m.txRepo.On("GetByID", uint(10)).Return(tx, nil)

	_, err := svc.Transition(context.Background(), TransitionRequest{
		TransactionID: 10, ActorID: 1, ActorRole: models.RoleBuyer,
		Action: ActionSignMediation,
	})
	assert.ErrorIs(t, err, ErrPreconditionFailed)
}

func agreementReadyForFundProtection() *models.Transaction {
	tx := testTransaction(models.TxStatusAgreement)
	tx.BuyerSigned = true
	tx.SellerSigned = true
	tx.BuyerMediationSigned = true
	tx.SellerMediationSigned = true
	tx.HasRepresentationDoc = true
	tx.BuyerConfirmed = true
	tx.SellerConfirmed = true
	tx.AgreedPrice = decimal.NewNullDecimal(decimal.NewFromInt(250000))
	return tx
}

func TestTransition_StartFundProtection(t *testing.T) {
	t.Run("all gates pass and the generator runs", func(t *testing.T) {
		svc, m := newStageService()
		tx := agreementReadyForFundProtection()
		m.allowLock()
		m.allowNotify()
		m.txRepo.On("GetByID", uint(10)).Return(tx, nil)
		m.docRepo.On("HasForTransaction", uint(10), models.DocTypeRepresentation,
			mock.Anything).Return(true, nil)
		m.kyc.On("TierStatus", mock.Anything, uint(1), models.KYCTier2).
			Return(models.KYCStatusPassed, nil)
		m.kyc.On("TierStatus", mock.Anything, uint(2), models.KYCTier2).
			Return(models.KYCStatusPassed, nil)
		m.txRepo.On("UpdateStatusIf", uint(10), models.TxStatusAgreement,
			models.TxStatusFundProtection, mock.Anything).Return(nil)
		m.generator.On("Initialize", mock.Anything, uint(10), uint(1), models.RoleBuyer, "").
			Return(&fundprotection.Result{Currency: fundprotection.CurrencyEUR}, nil)

		result, err := svc.Transition(context.Background(), TransitionRequest{
			TransactionID: 10, ActorID: 1, ActorRole: models.RoleBuyer,
			Action: ActionStartFundProtection,
		})
		require.NoError(t, err)
		assert.Equal(t, models.TxStatusFundProtection, result.NewStatus)
		require.NotNil(t, result.Generation)
		assert.Equal(t, fundprotection.CurrencyEUR, result.Generation.Currency)
	})

	t.Run("missing KYC blocks the move", func(t *testing.T) {
		svc, m := newStageService()
		tx := agreementReadyForFundProtection()
		m.allowLock()
		m.txRepo.On("GetByID", uint(10)).Return(tx, nil)
		m.docRepo.On("HasForTransaction", uint(10), models.DocTypeRepresentation,
			mock.Anything).Return(true, nil)
		m.kyc.On("TierStatus", mock.Anything, uint(1), models.KYCTier2).
			Return(models.KYCStatusInitiated, nil)

		_, err := svc.Transition(context.Background(), TransitionRequest{
			TransactionID: 10, ActorID: 1, ActorRole: models.RoleBuyer,
			Action: ActionStartFundProtection,
		})
		assert.ErrorIs(t, err, ErrPreconditionFailed)
		m.txRepo.AssertNotCalled(t, "UpdateStatusIf",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing signatures block the move", func(t *testing.T) {
		svc, m := newStageService()
		tx := agreementReadyForFundProtection()
		tx.SellerSigned = false
		m.allowLock()
		m.txRepo.On("GetByID", uint(10)).Return(tx, nil)

		_, err := svc.Transition(context.Background(), TransitionRequest{
			TransactionID: 10, ActorID: 1, ActorRole: models.RoleBuyer,
			Action: ActionStartFundProtection,
		})
		assert.ErrorIs(t, err, ErrPreconditionFailed)
	})

	t.Run("generator failure reverts the status", func(t *testing.T) {
		svc, m := newStageService()
		tx := agreementReadyForFundProtection()
		m.allowLock()
		m.txRepo.On("GetByID", uint(10)).Return(tx, nil)
		m.docRepo.On("HasForTransaction", uint(10), models.DocTypeRepresentation,
			mock.Anything).Return(true, nil)
		m.kyc.On("TierStatus", mock.Anything, mock.Anything, models.KYCTier2).
			Return(models.KYCStatusPassed, nil)
		m.txRepo.On("UpdateStatusIf", uint(10), models.TxStatusAgreement,
			models.TxStatusFundProtection, mock.Anything).Return(nil)
		m.generator.On("Initialize", mock.Anything, uint(10), uint(1), models.RoleBuyer, "BTC").
			Return(nil, fundprotection.ErrWalletNotFound)
		m.txRepo.On("UpdateStatusIf", uint(10), models.TxStatusFundProtection,
			models.TxStatusAgreement, mock.Anything).Return(nil)

		_, err := svc.Transition(context.Background(), TransitionRequest{
			TransactionID: 10, ActorID: 1, ActorRole: models.RoleBuyer,
			Action:   ActionStartFundProtection,
			Currency: "BTC",
		})
		assert.ErrorIs(t, err, fundprotection.ErrWalletNotFound)
		m.txRepo.AssertCalled(t, "UpdateStatusIf", uint(10),
			models.TxStatusFundProtection, models.TxStatusAgreement, mock.Anything)
	})
}

func TestTransition_EnterEscrow(t *testing.T) {
	t.Run("incomplete steps block escrow", func(t *testing.T) {
		svc, m := newStageService()
		m.allowLock()
		m.txRepo.On("GetByID", uint(10)).Return(testTransaction(models.TxStatusFundProtection), nil)
		m.stepRepo.On("ListByTransaction", uint(10)).Return(make([]models.FundProtectionStep, 2), nil)
		m.stepRepo.On("CountIncomplete", uint(10)).Return(int64(1), nil)

		_, err := svc.Transition(context.Background(), TransitionRequest{
			TransactionID: 10, ActorID: 1, ActorRole: models.RoleBuyer,
			Action: ActionEnterEscrow,
		})
		assert.ErrorIs(t, err, ErrPreconditionFailed)
	})

	t.Run("no generated steps block escrow", func(t *testing.T) {
		svc, m := newStageService()
		m.allowLock()
		m.txRepo.On("GetByID", uint(10)).Return(testTransaction(models.TxStatusFundProtection), nil)
		m.stepRepo.On("ListByTransaction", uint(10)).Return([]models.FundProtectionStep{}, nil)

		_, err := svc.Transition(context.Background(), TransitionRequest{
			TransactionID: 10, ActorID: 1, ActorRole: models.RoleBuyer,
			Action: ActionEnterEscrow,
		})
		assert.ErrorIs(t, err, ErrPreconditionFailed)
	})

	t.Run("all steps complete", func(t *testing.T) {
		svc, m := newStageService()
		m.allowLock()
		m.allowNotify()
		m.txRepo.On("GetByID", uint(10)).Return(testTransaction(models.TxStatusFundProtection), nil)
		m.stepRepo.On("ListByTransaction", uint(10)).Return(make([]models.FundProtectionStep, 2), nil)
		m.stepRepo.On("CountIncomplete", uint(10)).Return(int64(0), nil)
		m.txRepo.On("UpdateStatusIf", uint(10), models.TxStatusFundProtection,
			models.TxStatusEscrow, mock.Anything).Return(nil)

		result, err := svc.Transition(context.Background(), TransitionRequest{
			TransactionID: 10, ActorID: 1, ActorRole: models.RoleBuyer,
			Action: ActionEnterEscrow,
		})
		require.NoError(t, err)
		assert.Equal(t, models.TxStatusEscrow, result.NewStatus)
	})
}

func TestTransition_AdminOnlyActions(t *testing.T) {
	t.Run("party may not close", func(t *testing.T) {
		svc, m := newStageService()
		m.allowLock()
		m.txRepo.On("GetByID", uint(10)).Return(testTransaction(models.TxStatusEscrow), nil)

		_, err := svc.Transition(context.Background(), TransitionRequest{
			TransactionID: 10, ActorID: 2, ActorRole: models.RoleSeller,
			Action: ActionClose,
		})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin completes and the property sells", func(t *testing.T) {
		svc, m := newStageService()
		m.allowLock()
		m.allowNotify()
		m.txRepo.On("GetByID", uint(10)).Return(testTransaction(models.TxStatusClosing), nil)
		m.txRepo.On("UpdateStatusIf", uint(10), models.TxStatusClosing,
			models.TxStatusCompleted, mock.Anything).Return(nil)
		m.propertyRepo.On("UpdateStatusIf", uint(5), models.PropertyStatusApproved,
			models.PropertyStatusSold, mock.Anything).Return(nil)

		result, err := svc.Transition(context.Background(), TransitionRequest{
			TransactionID: 10, ActorID: 42, ActorRole: models.RoleAdmin,
			Action: ActionComplete,
		})
		require.NoError(t, err)
		assert.Equal(t, models.TxStatusCompleted, result.NewStatus)
		m.propertyRepo.AssertExpectations(t)
	})
}

func TestTransition_Cancel(t *testing.T) {
	t.Run("party may cancel during negotiation", func(t *testing.T) {
		svc, m := newStageService()
		m.allowLock()
		m.allowNotify()
		m.txRepo.On("GetByID", uint(10)).Return(testTransaction(models.TxStatusNegotiation), nil)
		m.txRepo.On("UpdateStatusIf", uint(10), models.TxStatusNegotiation,
			models.TxStatusCancelled, mock.Anything).Return(nil)

		result, err := svc.Transition(context.Background(), TransitionRequest{
			TransactionID: 10, ActorID: 1, ActorRole: models.RoleBuyer,
			Action: ActionCancel, Reason: "changed my mind",
		})
		require.NoError(t, err)
		assert.Equal(t, models.TxStatusCancelled, result.NewStatus)
	})

	t.Run("party may not cancel after agreement", func(t *testing.T) {
		svc, m := newStageService()
		m.allowLock()
		m.txRepo.On("GetByID", uint(10)).Return(testTransaction(models.TxStatusEscrow), nil)

		_, err := svc.Transition(context.Background(), TransitionRequest{
			TransactionID: 10, ActorID: 1, ActorRole: models.RoleBuyer,
			Action: ActionCancel,
		})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin may cancel any non-terminal stage", func(t *testing.T) {
		svc, m := newStageService()
		m.allowLock()
		m.allowNotify()
		m.txRepo.On("GetByID", uint(10)).Return(testTransaction(models.TxStatusEscrow), nil)
		m.txRepo.On("UpdateStatusIf", uint(10), models.TxStatusEscrow,
			models.TxStatusCancelled, mock.Anything).Return(nil)

		_, err := svc.Transition(context.Background(), TransitionRequest{
			TransactionID: 10, ActorID: 42, ActorRole: models.RoleAdmin,
			Action: ActionCancel, Reason: "fraud review",
		})
		assert.NoError(t, err)
	})

	t.Run("terminal stages cannot be cancelled", func(t *testing.T) {
		svc, m := newStageService()
		m.allowLock()
		m.txRepo.On("GetByID", uint(10)).Return(testTransaction(models.TxStatusCompleted), nil)

		_, err := svc.Transition(context.Background(), TransitionRequest{
			TransactionID: 10, ActorID: 42, ActorRole: models.RoleAdmin,
			Action: ActionCancel,
		})
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestTransition_Concurrency(t *testing.T) {
	t.Run("lock held by another request", func(t *testing.T) {
		svc, m := newStageService()
		m.locker.On("Acquire", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

		_, err := svc.Transition(context.Background(), TransitionRequest{
			TransactionID: 10, ActorID: 2, ActorRole: models.RoleSeller,
			Action: ActionAcceptOffer,
		})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("conditional update loses the race", func(t *testing.T) {
		svc, m := newStageService()
		m.allowLock()
		m.txRepo.On("GetByID", uint(10)).Return(testTransaction(models.TxStatusNegotiation), nil)
		m.txRepo.On("UpdateStatusIf", uint(10), models.TxStatusNegotiation,
			models.TxStatusAgreement, mock.Anything).Return(repositories.ErrStatusConflict)

		_, err := svc.Transition(context.Background(), TransitionRequest{
			TransactionID: 10, ActorID: 2, ActorRole: models.RoleSeller,
			Action: ActionAcceptOffer,
		})
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestTransition_UnknownAction(t *testing.T) {
	svc, _ := newStageService()
	_, err := svc.Transition(context.Background(), TransitionRequest{
		TransactionID: 10, ActorID: 1, ActorRole: models.RoleBuyer,
		Action: Action("teleport"),
	})
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestGetAndHistory_AccessControl(t *testing.T) {
	svc, m := newStageService()
	m.txRepo.On("GetByID", uint(10)).Return(testTransaction(models.TxStatusOffer), nil)
	m.offerRepo.On("ListByTransaction", uint(10)).Return([]models.Offer{}, nil)

	_, err := svc.Get(context.Background(), 10, 99, models.RoleBuyer)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Get(context.Background(), 10, 99, models.RoleAdmin)
	assert.NoError(t, err)

	_, err = svc.OfferHistory(context.Background(), 10, 99, models.RoleSeller)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.OfferHistory(context.Background(), 10, 1, models.RoleBuyer)
	assert.NoError(t, err)
}
