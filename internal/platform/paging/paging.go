package paging

import (
	"fmt"
	"strconv"
	"strings"

	"customer-contract-portal/internal/platform/apperr"
)

const (
	MinLimit     = 1
	MaxLimit     = 100
	DefaultLimit = 100
)

// Page es una ventana offset/limit ya validada.
type Page struct {
	Offset int
	Limit  int
}

// Bounds permite configurar el máximo (y el default) por despliegue.
type Bounds struct {
	Max     int
	Default int
}

func DefaultBounds() Bounds {
	return Bounds{Max: MaxLimit, Default: DefaultLimit}
}

// New valida offset/limit. No hace clamp: fuera de rango => InvalidArgument.
func (b Bounds) New(offset, limit int) (Page, error) {
	max := b.Max
	if max < MinLimit {
		max = MaxLimit
	}
	if offset < 0 {
		return Page{}, apperr.InvalidArgument("offset must be >= 0")
	}
	if limit < MinLimit || limit > max {
		return Page{}, apperr.InvalidArgument(fmt.Sprintf("limit must be between %d and %d", MinLimit, max))
	}
	return Page{Offset: offset, Limit: limit}, nil
}

// Parse lee skip/offset y limit desde strings (query params). Vacío => defaults.
func (b Bounds) Parse(offsetRaw, limitRaw string) (Page, error) {
	offset := 0
	if v := strings.TrimSpace(offsetRaw); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Page{}, apperr.InvalidArgument("offset must be an integer")
		}
		offset = n
	}

	limit := b.Default
	if limit < MinLimit {
		limit = DefaultLimit
	}
	if v := strings.TrimSpace(limitRaw); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Page{}, apperr.InvalidArgument("limit must be an integer")
		}
		limit = n
	}

	return b.New(offset, limit)
}

// Slice aplica la ventana sobre un slice ya ordenado (usado por el store en memoria).
func Slice[T any](items []T, p Page) []T {
	if p.Offset >= len(items) {
		return []T{}
	}
	end := p.Offset + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[p.Offset:end]
}
