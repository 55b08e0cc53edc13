package entity

// Product referencia de producto resuelta desde el backend (solo lectura:
// su CRUD pertenece a otro sistema).
type Product struct {
	ID           int64
	Name         string
	SKU          string
	UOM          string // unidad de medida; vacía -> "units"
	CurrentStock int64
}
