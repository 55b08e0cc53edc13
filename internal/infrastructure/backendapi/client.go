// Package backendapi implementa los puertos MoveService y ReferenceDirectory
// contra el backend REST de inventario, que es la única autoridad de los
// datos. El gateway reenvía el Bearer del operador tal cual (no emite
// credenciales propias) y correlaciona cada llamada con X-Request-ID.
package backendapi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/stockmaster/ops-gateway/internal/domain"
	"github.com/stockmaster/ops-gateway/pkg/authtoken"
	"github.com/stockmaster/ops-gateway/pkg/config"
)

// Client cliente HTTP compartido por los servicios del backend.
type Client struct {
	rest *resty.Client
}

// New construye el cliente con base URL, timeout y User-Agent de configuración.
func New(cfg config.BackendConfig) *Client {
	rest := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout()).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", cfg.UserAgent)
	return &Client{rest: rest}
}

// request prepara una petición con contexto, correlación y el token del
// operador si viene en el contexto.
func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.rest.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString())
	if tok := authtoken.FromContext(ctx); tok != "" {
		req.SetAuthToken(tok)
	}
	return req
}

// errorBody forma de error del backend (estilo FastAPI: {"detail": "..."}).
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// remoteError convierte una respuesta no-2xx en domain.RemoteError conservando
// el detail textual para mostrarlo al operador.
func remoteError(resp *resty.Response) error {
	var body errorBody
	_ = json.Unmarshal(resp.Body(), &body)
	detail := body.Detail
	if detail == "" {
		detail = body.Message
	}
	return &domain.RemoteError{StatusCode: resp.StatusCode(), Detail: detail}
}

// transportError envuelve un fallo de red hacia el backend.
func transportError(op string, err error) error {
	return fmt.Errorf("backend %s: %w", op, err)
}
