package actions

import "customer-contract-portal/internal/domain/contracts"

var transitions = map[ActionType]contracts.State{
	ActionApprove: contracts.StateApproved,
	ActionReject:  contracts.StateRejected,
	ActionReopen:  contracts.StatePendingApproval,
}

// Transition devuelve el estado destino para un action_type.
// No mira el estado actual: approve sobre Approved vuelve a dar Approved.
func Transition(t ActionType) (contracts.State, bool) {
	st, ok := transitions[t]
	return st, ok
}

// Next es la función que el store evalúa dentro de la transacción con el
// status leído del contract.
func Next(t ActionType) NextFunc {
	return func(prior contracts.Status) (contracts.Status, bool) {
		st, ok := Transition(t)
		if !ok {
			return prior, false
		}
		return contracts.Known(st), true
	}
}
