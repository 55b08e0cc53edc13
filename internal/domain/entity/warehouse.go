package entity

// Warehouse bodega. Solo lectura desde el gateway.
type Warehouse struct {
	ID       int64
	Name     string
	Location string
}
