package stage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"domus/internal/models"
	"domus/internal/repositories"
	"domus/internal/services/kyc"
	"domus/internal/services/notification"
	"domus/internal/utils/lock"

	"github.com/google/uuid"
)

type service struct {
	txRepo       repositories.TransactionRepository
	propertyRepo repositories.PropertyRepository
	offerRepo    repositories.OfferRepository
	docRepo      repositories.DocumentRepository
	stepRepo     repositories.StepRepository
	kyc          kyc.Service
	generator    Generator
	notifier     notification.Service
	locker       lock.DistributedLock
}

// NewService creates the stage machine service.
func NewService(
	txRepo repositories.TransactionRepository,
	propertyRepo repositories.PropertyRepository,
	offerRepo repositories.OfferRepository,
	docRepo repositories.DocumentRepository,
	stepRepo repositories.StepRepository,
	kycSvc kyc.Service,
	generator Generator,
	notifier notification.Service,
	locker lock.DistributedLock,
) Service {
	if txRepo == nil {
		panic("transaction repo is required")
	}
	if propertyRepo == nil {
		panic("property repo is required")
	}
	if offerRepo == nil {
		panic("offer repo is required")
	}
	if docRepo == nil {
		panic("document repo is required")
	}
	if stepRepo == nil {
		panic("step repo is required")
	}
	if kycSvc == nil {
		panic("kyc service is required")
	}
	if generator == nil {
		panic("fund protection generator is required")
	}
	if notifier == nil {
		panic("notifier is required")
	}
	if locker == nil {
		panic("locker is required")
	}
	return &service{
		txRepo:       txRepo,
		propertyRepo: propertyRepo,
		offerRepo:    offerRepo,
		docRepo:      docRepo,
		stepRepo:     stepRepo,
		kyc:          kycSvc,
		generator:    generator,
		notifier:     notifier,
		locker:       locker,
	}
}

func (s *service) MakeOffer(ctx context.Context, req OfferRequest) (*models.Transaction, error) {
	property, err := s.propertyRepo.GetByID(req.PropertyID)
	if err != nil {
		if errors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if property.Status != models.PropertyStatusApproved {
		return nil, fmt.Errorf("%w: property is not listed", ErrInvalidOffer)
	}
	if property.SellerID == req.BuyerID {
		return nil, fmt.Errorf("%w: cannot make an offer on your own property", ErrInvalidOffer)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: offer amount must be positive", ErrInvalidOffer)
	}
	if err := validatePaymentMethod(req.PaymentMethod, req.CryptoPercentage, req.FiatPercentage); err != nil {
		return nil, err
	}

	active, err := s.txRepo.HasActiveForProperty(req.PropertyID, req.BuyerID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, fmt.Errorf("%w: an active transaction already exists for this property", ErrInvalidOffer)
	}

	tx := &models.Transaction{
		Reference:        uuid.NewString(),
		PropertyID:       req.PropertyID,
		BuyerID:          req.BuyerID,
		SellerID:         property.SellerID,
		Status:           models.TxStatusOffer,
		OfferPrice:       req.Amount,
		PaymentMethod:    req.PaymentMethod,
		CryptoPercentage: req.CryptoPercentage,
		FiatPercentage:   req.FiatPercentage,
		ProposalDate:     time.Now(),
	}
	if err := s.txRepo.Create(tx); err != nil {
		return nil, err
	}

	offer := &models.Offer{
		TransactionID: tx.ID,
		UserID:        req.BuyerID,
		Party:         models.PartyBuyer,
		Amount:        req.Amount,
		Message:       req.Message,
	}
	if err := s.offerRepo.Create(offer); err != nil {
		log.Printf("failed to record initial offer for transaction %d: %v", tx.ID, err)
	}

	s.notifier.Notify(ctx, property.SellerID, models.NotificationOfferReceived,
		"New offer received",
		fmt.Sprintf("You received an offer of %s EUR on %s", req.Amount, property.Title),
		models.NewJSON(map[string]interface{}{
			"transaction_id": tx.ID,
			"property_id":    property.ID,
			"amount":         req.Amount.String(),
		}))

	return tx, nil
}

func validatePaymentMethod(method string, cryptoPct, fiatPct int) error {
	switch method {
	case models.PaymentMethodFiat, models.PaymentMethodCrypto:
		return nil
	case models.PaymentMethodHybrid:
		if cryptoPct <= 0 || fiatPct <= 0 || cryptoPct+fiatPct != 100 {
			return fmt.Errorf("%w: hybrid split must be two positive percentages summing to 100", ErrInvalidOffer)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidOffer, method)
	}
}

func (s *service) Transition(ctx context.Context, req TransitionRequest) (*Result, error) {
	r, ok := transitions[req.Action]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, req.Action)
	}

	key := fmt.Sprintf("transaction:%d", req.TransactionID)
	acquired, err := s.locker.Acquire(ctx, key, lockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !acquired {
		return nil, ErrConflict
	}
	defer func() {
		if err := s.locker.Release(ctx, key); err != nil {
			log.Printf("failed to release lock %s: %v", key, err)
		}
	}()

	// All gates evaluate fresh persisted state under the lock.
	tx, err := s.txRepo.GetByID(req.TransactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !contains(r.from, tx.Status) {
		return nil, fmt.Errorf("%w: %s is not allowed from %s", ErrConflict, req.Action, tx.Status)
	}
	if !r.allow(tx, req.ActorID, req.ActorRole) {
		return nil, ErrForbidden
	}
	if r.check != nil {
		if err := r.check(ctx, s, tx, req); err != nil {
			return nil, err
		}
	}

	updates, err := r.apply(tx, req)
	if err != nil {
		return nil, err
	}

	if r.to != "" {
		err = s.txRepo.UpdateStatusIf(tx.ID, tx.Status, r.to, updates)
	} else {
		err = s.txRepo.UpdateFieldsIfStatus(tx.ID, tx.Status, updates)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrStatusConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}

	result := &Result{NewStatus: tx.Status}
	if r.to != "" {
		result.NewStatus = r.to
	}

	if err := s.runPostEffects(ctx, tx, req, result); err != nil {
		return nil, err
	}

	s.notifyTransition(ctx, tx, req, r)

	updated, err := s.txRepo.GetByID(tx.ID)
	if err != nil {
		return nil, err
	}
	result.Transaction = updated
	return result, nil
}

// runPostEffects performs the side effects that follow a successful status
// write: counter-offer history, fund-protection initialization, and marking
// the property sold.
func (s *service) runPostEffects(ctx context.Context, tx *models.Transaction, req TransitionRequest, result *Result) error {
	switch req.Action {
	case ActionCounterOffer:
		offer := &models.Offer{
			TransactionID: tx.ID,
			UserID:        req.ActorID,
			Party:         tx.PartyOf(req.ActorID),
			Amount:        req.Amount,
			Message:       req.Message,
		}
		if err := s.offerRepo.Create(offer); err != nil {
			log.Printf("failed to record counter-offer for transaction %d: %v", tx.ID, err)
		}

	case ActionStartFundProtection:
		generation, err := s.generator.Initialize(ctx, tx.ID, req.ActorID, req.ActorRole, req.Currency)
		if err != nil {
			// Best effort revert so the parties can fix the input and retry.
			if rbErr := s.txRepo.UpdateStatusIf(tx.ID, models.TxStatusFundProtection, models.TxStatusAgreement, nil); rbErr != nil {
				log.Printf("failed to revert transaction %d to AGREEMENT: %v", tx.ID, rbErr)
			}
			return err
		}
		result.Generation = generation

	case ActionComplete:
		err := s.propertyRepo.UpdateStatusIf(tx.PropertyID, models.PropertyStatusApproved, models.PropertyStatusSold, nil)
		if err != nil && !errors.Is(err, repositories.ErrStatusConflict) {
			log.Printf("failed to mark property %d sold: %v", tx.PropertyID, err)
		}
	}
	return nil
}

func (s *service) notifyTransition(ctx context.Context, tx *models.Transaction, req TransitionRequest, r rule) {
	if r.notifyType == "" {
		return
	}
	data := models.NewJSON(map[string]interface{}{
		"transaction_id": tx.ID,
		"action":         string(req.Action),
	})
	msg := r.message(tx, req)

	// Admin-driven and cancellation actions inform both parties; party
	// actions inform the counterparty.
	if req.ActorRole == models.RoleAdmin && tx.PartyOf(req.ActorID) == "" {
		s.notifier.Notify(ctx, tx.BuyerID, r.notifyType, r.notifyTitle, msg, data)
		s.notifier.Notify(ctx, tx.SellerID, r.notifyType, r.notifyTitle, msg, data)
		return
	}
	s.notifier.Notify(ctx, tx.Counterparty(req.ActorID), r.notifyType, r.notifyTitle, msg, data)
}

func (s *service) Get(ctx context.Context, transactionID, actorID uint, actorRole string) (*models.Transaction, error) {
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
	return tx, nil
}

func (s *service) ListForUser(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, error) {
	return s.txRepo.ListByUser(userID, limit, offset)
}

func (s *service) OfferHistory(ctx context.Context, transactionID, actorID uint, actorRole string) ([]models.Offer, error) {
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
	return s.offerRepo.ListByTransaction(transactionID)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
