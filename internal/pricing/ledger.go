package pricing

import "rental-ledger/internal/domain"

// Ledger lists who pays and who gets paid for a quoted rental, one action per
// actor in domain.LedgerActors order. The driver's debit always equals the sum
// of the credits: the deductible fee is collected from the driver and passed
// on to the platform in full.
func Ledger(q domain.Quote) []domain.Action {
	actions := make([]domain.Action, 0, len(domain.LedgerActors))
	for _, who := range domain.LedgerActors {
		action := domain.Action{Who: who, Type: domain.ActionTypeCredit}
		switch who {
		case domain.ActorDriver:
			action.Type = domain.ActionTypeDebit
			action.Amount = q.Price + q.DeductibleReduction
		case domain.ActorOwner:
			action.Amount = q.Price - q.Commission.Total()
		case domain.ActorInsurance:
			action.Amount = q.Commission.InsuranceFee
		case domain.ActorAssistance:
			action.Amount = q.Commission.AssistanceFee
		case domain.ActorPlatform:
			action.Amount = q.Commission.PlatformFee + q.DeductibleReduction
		}
		actions = append(actions, action)
	}
	return actions
}

// Delta compares the ledgers of the original and modified rental position by
// position. A negative difference is reported as a positive amount flowing
// the other way. A zero difference keeps the modified action's direction.
func Delta(original, modified []domain.Action) []domain.Action {
	deltas := make([]domain.Action, 0, len(modified))
	for i := range modified {
		action := modified[i]
		amount := action.Amount - original[i].Amount
		if amount < 0 {
			amount = -amount
			action.Type = action.Type.Opposite()
		}
		action.Amount = amount
		deltas = append(deltas, action)
	}
	return deltas
}
