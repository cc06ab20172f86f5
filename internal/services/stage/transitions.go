package stage

import (
	"context"
	"fmt"
	"time"

	"domus/internal/models"
)

// rule describes one row of the transition table: which source statuses the
// action accepts, the resulting status (empty for flag-only actions), who
// may perform it, and the gates that must hold.
type rule struct {
	from  []string
	to    string
	allow func(tx *models.Transaction, actorID uint, role string) bool
	check func(ctx context.Context, s *service, tx *models.Transaction, req TransitionRequest) error
	apply func(tx *models.Transaction, req TransitionRequest) (map[string]interface{}, error)

	notifyType  string
	notifyTitle string
	message     func(tx *models.Transaction, req TransitionRequest) string
}

func anyParty(tx *models.Transaction, actorID uint, role string) bool {
	return tx.PartyOf(actorID) != ""
}

func sellerOnly(tx *models.Transaction, actorID uint, role string) bool {
	return actorID == tx.SellerID
}

func adminOnly(tx *models.Transaction, actorID uint, role string) bool {
	return role == models.RoleAdmin
}

func partyOrAdmin(tx *models.Transaction, actorID uint, role string) bool {
	return role == models.RoleAdmin || tx.PartyOf(actorID) != ""
}

// cancelAllowed: admins may cancel at any time; parties only before the
// agreement is reached.
func cancelAllowed(tx *models.Transaction, actorID uint, role string) bool {
	if role == models.RoleAdmin {
		return true
	}
	if tx.PartyOf(actorID) == "" {
		return false
	}
	return tx.Status == models.TxStatusOffer || tx.Status == models.TxStatusNegotiation
}

var transitions = map[Action]rule{
	ActionCounterOffer: {
		from:  []string{models.TxStatusOffer, models.TxStatusNegotiation},
		to:    models.TxStatusNegotiation,
		allow: anyParty,
		check: func(ctx context.Context, s *service, tx *models.Transaction, req TransitionRequest) error {
			if !req.Amount.IsPositive() {
				return fmt.Errorf("%w: counter-offer amount must be positive", ErrInvalidOffer)
			}
			return nil
		},
		apply: func(tx *models.Transaction, req TransitionRequest) (map[string]interface{}, error) {
			return map[string]interface{}{"offer_price": req.Amount}, nil
		},
		notifyType:  models.NotificationCounterOffer,
		notifyTitle: "Counter-offer received",
		message: func(tx *models.Transaction, req TransitionRequest) string {
			return fmt.Sprintf("A counter-offer of %s EUR was made", req.Amount)
		},
	},

	ActionAcceptOffer: {
		from:  []string{models.TxStatusNegotiation},
		to:    models.TxStatusAgreement,
		allow: sellerOnly,
		apply: func(tx *models.Transaction, req TransitionRequest) (map[string]interface{}, error) {
			return map[string]interface{}{
				"agreed_price":    tx.OfferPrice,
				"acceptance_date": time.Now(),
			}, nil
		},
		notifyType:  models.NotificationOfferAccepted,
		notifyTitle: "Offer accepted",
		message: func(tx *models.Transaction, req TransitionRequest) string {
			return fmt.Sprintf("The seller accepted the offer of %s EUR", tx.OfferPrice)
		},
	},

	ActionSignPromissory: {
		from:  []string{models.TxStatusAgreement},
		allow: anyParty,
		check: func(ctx context.Context, s *service, tx *models.Transaction, req TransitionRequest) error {
			uploaded, err := s.docRepo.HasForTransaction(tx.ID, models.DocTypePromissoryCountersigned, &req.ActorID)
			if err != nil {
				return err
			}
			if !uploaded {
				return failedGate("countersigned promissory agreement not uploaded")
			}
			return nil
		},
		apply: func(tx *models.Transaction, req TransitionRequest) (map[string]interface{}, error) {
			if req.ActorID == tx.BuyerID {
				if tx.BuyerSigned {
					return nil, ErrAlreadyApplied
				}
				return map[string]interface{}{"buyer_signed": true}, nil
			}
			if tx.SellerSigned {
				return nil, ErrAlreadyApplied
			}
			return map[string]interface{}{"seller_signed": true}, nil
		},
		notifyType:  models.NotificationDocumentSigned,
		notifyTitle: "Promissory agreement signed",
		message: func(tx *models.Transaction, req TransitionRequest) string {
			return "The other party signed the promissory agreement"
		},
	},

	ActionSignMediation: {
		from:  []string{models.TxStatusAgreement},
		allow: anyParty,
		check: func(ctx context.Context, s *service, tx *models.Transaction, req TransitionRequest) error {
			if !tx.BuyerSigned || !tx.SellerSigned {
				return failedGate("promissory agreement must be signed by both parties first")
			}
			return nil
		},
		apply: func(tx *models.Transaction, req TransitionRequest) (map[string]interface{}, error) {
			if req.ActorID == tx.BuyerID {
				if tx.BuyerMediationSigned {
					return nil, ErrAlreadyApplied
				}
				return map[string]interface{}{"buyer_mediation_signed": true}, nil
			}
			if tx.SellerMediationSigned {
				return nil, ErrAlreadyApplied
			}
			return map[string]interface{}{"seller_mediation_signed": true}, nil
		},
		notifyType:  models.NotificationDocumentSigned,
		notifyTitle: "Mediation agreement signed",
		message: func(tx *models.Transaction, req TransitionRequest) string {
			return "The other party signed the mediation agreement"
		},
	},

	ActionConfirmRepresentation: {
		from:  []string{models.TxStatusAgreement},
		allow: anyParty,
		check: func(ctx context.Context, s *service, tx *models.Transaction, req TransitionRequest) error {
			uploaded, err := s.docRepo.HasForTransaction(tx.ID, models.DocTypeRepresentation, nil)
			if err != nil {
				return err
			}
			if !uploaded {
				return failedGate("representation document not uploaded")
			}
			return nil
		},
		apply: func(tx *models.Transaction, req TransitionRequest) (map[string]interface{}, error) {
			updates := map[string]interface{}{"has_representation_doc": true}
			if req.ActorID == tx.BuyerID {
				if tx.BuyerConfirmed {
					return nil, ErrAlreadyApplied
				}
				updates["buyer_confirmed"] = true
			} else {
				if tx.SellerConfirmed {
					return nil, ErrAlreadyApplied
				}
				updates["seller_confirmed"] = true
			}
			return updates, nil
		},
		notifyType:  models.NotificationDocumentSigned,
		notifyTitle: "Legal representation confirmed",
		message: func(tx *models.Transaction, req TransitionRequest) string {
			return "The other party confirmed legal representation"
		},
	},

	ActionStartFundProtection: {
		from:  []string{models.TxStatusAgreement},
		to:    models.TxStatusFundProtection,
		allow: partyOrAdmin,
		check: checkFundProtectionGates,
		apply: func(tx *models.Transaction, req TransitionRequest) (map[string]interface{}, error) {
			return nil, nil
		},
		notifyType:  models.NotificationFundProtection,
		notifyTitle: "Fund protection started",
		message: func(tx *models.Transaction, req TransitionRequest) string {
			return "The transaction entered fund protection"
		},
	},

	ActionEnterEscrow: {
		from:  []string{models.TxStatusFundProtection},
		to:    models.TxStatusEscrow,
		allow: partyOrAdmin,
		check: func(ctx context.Context, s *service, tx *models.Transaction, req TransitionRequest) error {
			steps, err := s.stepRepo.ListByTransaction(tx.ID)
			if err != nil {
				return err
			}
			if len(steps) == 0 {
				return failedGate("fund protection steps not initialized")
			}
			incomplete, err := s.stepRepo.CountIncomplete(tx.ID)
			if err != nil {
				return err
			}
			if incomplete > 0 {
				return failedGate("%d fund protection steps not completed", incomplete)
			}
			return nil
		},
		apply: func(tx *models.Transaction, req TransitionRequest) (map[string]interface{}, error) {
			return map[string]interface{}{"escrow_date": time.Now()}, nil
		},
		notifyType:  models.NotificationEscrowEntered,
		notifyTitle: "Escrow entered",
		message: func(tx *models.Transaction, req TransitionRequest) string {
			return "All payment steps completed; funds are in escrow"
		},
	},

	ActionClose: {
		from:  []string{models.TxStatusEscrow},
		to:    models.TxStatusClosing,
		allow: adminOnly,
		apply: func(tx *models.Transaction, req TransitionRequest) (map[string]interface{}, error) {
			return nil, nil
		},
		notifyType:  models.NotificationClosing,
		notifyTitle: "Closing started",
		message: func(tx *models.Transaction, req TransitionRequest) string {
			return "The transaction entered closing"
		},
	},

	ActionComplete: {
		from:  []string{models.TxStatusClosing},
		to:    models.TxStatusCompleted,
		allow: adminOnly,
		apply: func(tx *models.Transaction, req TransitionRequest) (map[string]interface{}, error) {
			return map[string]interface{}{"completion_date": time.Now()}, nil
		},
		notifyType:  models.NotificationCompleted,
		notifyTitle: "Transaction completed",
		message: func(tx *models.Transaction, req TransitionRequest) string {
			return "The property transaction completed"
		},
	},

	ActionCancel: {
		from: []string{
			models.TxStatusOffer, models.TxStatusNegotiation, models.TxStatusAgreement,
			models.TxStatusFundProtection, models.TxStatusEscrow, models.TxStatusClosing,
		},
		to:    models.TxStatusCancelled,
		allow: cancelAllowed,
		apply: func(tx *models.Transaction, req TransitionRequest) (map[string]interface{}, error) {
			return map[string]interface{}{"cancel_reason": req.Reason}, nil
		},
		notifyType:  models.NotificationCancelled,
		notifyTitle: "Transaction cancelled",
		message: func(tx *models.Transaction, req TransitionRequest) string {
			if req.Reason != "" {
				return "The transaction was cancelled: " + req.Reason
			}
			return "The transaction was cancelled"
		},
	},
}

// checkFundProtectionGates verifies every precondition for entering
// FUND_PROTECTION: both promissory signatures, the representation and
// mediation gate, both representation confirmations, and KYC tier 2 for
// both parties.
func checkFundProtectionGates(ctx context.Context, s *service, tx *models.Transaction, req TransitionRequest) error {
	if !tx.BuyerSigned || !tx.SellerSigned {
		return failedGate("promissory agreement not signed by both parties")
	}

	hasRepDoc, err := s.docRepo.HasForTransaction(tx.ID, models.DocTypeRepresentation, nil)
	if err != nil {
		return err
	}
	if !hasRepDoc {
		return failedGate("representation document not uploaded")
	}
	if !tx.BuyerMediationSigned || !tx.SellerMediationSigned {
		return failedGate("mediation agreement not signed by both parties")
	}
	if !tx.BuyerConfirmed || !tx.SellerConfirmed {
		return failedGate("legal representation not confirmed by both parties")
	}

	for _, userID := range []uint{tx.BuyerID, tx.SellerID} {
		status, err := s.kyc.TierStatus(ctx, userID, models.KYCTier2)
		if err != nil {
			return err
		}
		if status != models.KYCStatusPassed {
			return failedGate("KYC tier 2 not passed for user %d", userID)
		}
	}

	return nil
}
