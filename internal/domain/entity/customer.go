package entity

// Customer cliente (destino típico de una entrega OUT). Solo lectura.
type Customer struct {
	ID      int64
	Name    string
	Email   string
	Phone   string
	Address string
}
