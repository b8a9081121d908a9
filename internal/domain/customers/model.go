package customers

import "time"

// DefaultStatus se aplica cuando el alta no trae status.
const DefaultStatus = "Active"

// Customer es el registro de identidad. Es dueño de contracts y events (cascada al borrar).
type Customer struct {
	ID int64

	Name      string
	Email     string // único
	Phone     string
	Segment   string // categoría libre (Retail, Corporate, ...)
	RiskLevel string
	Status    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
