package notes

import "time"

// Note es un comentario sobre un contract; ParentID arma el hilo de respuestas.
// El parent es inmutable y debe pertenecer al mismo contract, así el árbol no
// puede tener ciclos.
type Note struct {
	ID         int64
	ContractID int64

	Body     string
	ParentID *int64

	CreatedBy string
	CreatedAt time.Time

	// Las ediciones son destructivas: no se guarda el body anterior.
	EditedAt *time.Time
	EditNote *string
}
