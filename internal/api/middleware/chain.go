package middleware

import (
	"net/http"

	"github.com/justinas/alice"
)

// Chain общая цепочка для всего сервера: recover -> cors -> logging
func Chain(log Logger, allowedOrigins []string) alice.Chain {
	return alice.New(
		Recover(log),
		CORS(allowedOrigins),
		Logging(log),
	)
}

// Wrap оборачивает h общей цепочкой
func Wrap(h http.Handler, log Logger, allowedOrigins []string) http.Handler {
	return Chain(log, allowedOrigins).Then(h)
}
