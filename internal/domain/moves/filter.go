package moves

import (
	"strings"

	"github.com/stockmaster/ops-gateway/internal/domain/entity"
)

// ListFilters filtros del listado de movimientos. El límite se reenvía al
// backend; tipo, estado y búsqueda se aplican además en el gateway para no
// depender de que el backend los implemente.
type ListFilters struct {
	MoveType string
	Status   string
	Search   string // coincide contra referencia, origen y destino (case-insensitive)
	Limit    int
}

// Apply filtra el listado según f. No reordena: el orden del backend se respeta.
func Apply(list []*entity.MoveRecord, f ListFilters) []*entity.MoveRecord {
	out := make([]*entity.MoveRecord, 0, len(list))
	search := strings.ToLower(strings.TrimSpace(f.Search))
	for _, m := range list {
		if f.MoveType != "" && string(m.MoveType) != f.MoveType {
			continue
		}
		if f.Status != "" && string(m.Status) != f.Status {
			continue
		}
		if search != "" && !matches(m, search) {
			continue
		}
		out = append(out, m)
		if f.Limit > 0 && len(out) >= f.Limit {
			break
		}
	}
	return out
}

func matches(m *entity.MoveRecord, search string) bool {
	return strings.Contains(strings.ToLower(m.Reference), search) ||
		strings.Contains(strings.ToLower(m.SourceLocation), search) ||
		strings.Contains(strings.ToLower(m.DestLocation), search)
}
