package backendapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockmaster/ops-gateway/internal/infrastructure/backendapi"
)

// Las lecturas de referencia son proxies de solo lectura: path correcto y
// mapeo directo al dominio.
func TestReferenceService_Lecturas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/products/":
			_, _ = w.Write([]byte(`[{"id": 7, "name": "Tornillo M8", "sku": "TOR-M8", "uom": "cajas", "current_stock": 120}]`))
		case "/vendors/":
			_, _ = w.Write([]byte(`[{"id": 3, "name": "Aceros del Norte", "email": "ventas@aceros.co"}]`))
		case "/customers/":
			_, _ = w.Write([]byte(`[{"id": 9, "name": "Ferretería La 14", "address": "Cll 14 #3-21"}]`))
		case "/warehouses/":
			_, _ = w.Write([]byte(`[{"id": 2, "name": "Bodega Central", "location": "Cali"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail": "Not Found"}`))
		}
	}))
	defer srv.Close()

	svc := backendapi.NewReferenceService(newClient(t, srv))
	ctx := context.Background()

	products, err := svc.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Tornillo M8", products[0].Name)
	assert.Equal(t, int64(120), products[0].CurrentStock)

	vendors, err := svc.Vendors(ctx)
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, "ventas@aceros.co", vendors[0].Email)

	customers, err := svc.Customers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Cll 14 #3-21", customers[0].Address)

	warehouses, err := svc.Warehouses(ctx)
	require.NoError(t, err)
	require.Len(t, warehouses, 1)
	assert.Equal(t, "Bodega Central", warehouses[0].Name)
}
