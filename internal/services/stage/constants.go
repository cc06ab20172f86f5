package stage

import "time"

// Action names a requested movement of a transaction through its lifecycle.
type Action string

// Lifecycle actions. Status-moving actions change the transaction status;
// the signing actions only flip sub-stage flags within AGREEMENT.
const (
	ActionCounterOffer          Action = "counter_offer"
	ActionAcceptOffer           Action = "accept_offer"
	ActionSignPromissory        Action = "sign_promissory"
	ActionSignMediation         Action = "sign_mediation"
	ActionConfirmRepresentation Action = "confirm_representation"
	ActionStartFundProtection   Action = "start_fund_protection"
	ActionEnterEscrow           Action = "enter_escrow"
	ActionClose                 Action = "close"
	ActionComplete              Action = "complete"
	ActionCancel                Action = "cancel"
)

const lockTTL = 15 * time.Second
