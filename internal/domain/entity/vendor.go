package entity

// Vendor proveedor (origen típico de una recepción IN). Solo lectura.
type Vendor struct {
	ID    int64
	Name  string
	Email string
	Phone string
}
