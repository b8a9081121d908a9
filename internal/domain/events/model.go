package events

import "time"

// Event es una entrada append-only del log de actividad de un customer.
type Event struct {
	ID         int64
	CustomerID int64

	Type      string
	Timestamp time.Time
	Channel   Channel

	IPAddress *string
	UserAgent *string

	// Metadata es un documento libre clave/valor (metadata_json).
	Metadata map[string]any

	// CorrelationID enlaza eventos relacionados entre sistemas.
	CorrelationID *string
}
