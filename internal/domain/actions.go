package domain

// ActionType defines the direction of a cash flow (debit or credit).
type ActionType string

const (
	ActionTypeDebit  ActionType = "debit"
	ActionTypeCredit ActionType = "credit"
)

// Opposite flips debit and credit.
func (t ActionType) Opposite() ActionType {
	if t == ActionTypeDebit {
		return ActionTypeCredit
	}
	return ActionTypeDebit
}

// Actor is a party that pays or gets paid for a rental.
type Actor string

const (
	ActorDriver     Actor = "driver"
	ActorOwner      Actor = "owner"
	ActorInsurance  Actor = "insurance"
	ActorAssistance Actor = "assistance"
	ActorPlatform   Actor = "drivy"
)

// LedgerActors is the fixed order of every action list.
var LedgerActors = [...]Actor{ActorDriver, ActorOwner, ActorInsurance, ActorAssistance, ActorPlatform}

// Action is one actor's money movement for a rental.
type Action struct {
	Who    Actor      `json:"who"`
	Type   ActionType `json:"type"`
	Amount int        `json:"amount"`
}

// Commission is the platform's share of a rental price.
type Commission struct {
	InsuranceFee  int `json:"insurance_fee"`
	AssistanceFee int `json:"assistance_fee"`
	PlatformFee   int `json:"drivy_fee"`
}

// Total is the sum of the three fees.
func (c Commission) Total() int {
	return c.InsuranceFee + c.AssistanceFee + c.PlatformFee
}

// Quote holds every figure derived from a single rental.
type Quote struct {
	RentalID            int
	Duration            int
	Price               int
	Commission          Commission
	DeductibleReduction int
}
