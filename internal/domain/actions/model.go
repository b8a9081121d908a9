package actions

import (
	"time"

	"customer-contract-portal/internal/domain/contracts"
)

// Action es el registro de auditoría de un action sobre un contract.
// Append-only: nunca se actualiza.
type Action struct {
	ID         int64
	ContractID int64

	Type    ActionType
	Note    *string
	ActedBy string
	ActedAt time.Time // se fija al crear

	PriorStatus contracts.Status
	NewStatus   *contracts.Status // nil si el action no cambia status
}
