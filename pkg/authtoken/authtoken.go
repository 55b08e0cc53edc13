package authtoken

import "context"

type contextKey struct{}

// ContextKey es la clave bajo la que viaja el Bearer token del operador.
// Se exporta para poder usar fasthttp.SetUserValue desde el middleware de Fiber.
var ContextKey = contextKey{}

// WithToken devuelve un contexto que transporta el token crudo del operador.
// El cliente del backend lo reenvía tal cual: el gateway no emite credenciales propias.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ContextKey, token)
}

// FromContext devuelve el token del contexto, o "" si no hay.
func FromContext(ctx context.Context) string {
	if v := ctx.Value(ContextKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
