package contracts

import "time"

// Contract es la unidad cuyo ciclo de vida se audita.
// Status solo cambia vía actions (o vía override administrativo explícito).
type Contract struct {
	ID         int64
	CustomerID int64 // inmutable

	Type   string
	Status Status

	EffectiveDate  time.Time
	ExpirationDate *time.Time

	TermsRef       *string
	AttachmentsRef *string

	CreatedBy string
	UpdatedBy string

	LastActionAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
