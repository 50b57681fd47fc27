package middleware

import (
	"net/http"

	"github.com/maridopro/pricing-api/pkg/apiErrors"
)

// ReadinessChecker informa se a carga inicial do armazenamento já terminou.
type ReadinessChecker interface {
	IsReady() bool
}

// ReadyGate segura requisições que dependem do estado persistido até o
// armazenamento local terminar a carga inicial. Evita decisões de navegação
// (ex.: "tem usuário logado?") antes da identidade estar carregada. O
// healthcheck não depende do armazenamento e passa direto.
func ReadyGate(store ReadinessChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/healthcheck" {
				next.ServeHTTP(w, r)
				return
			}

			if !store.IsReady() {
				apiErrors.WriteError(w, apiErrors.ErrStoreNotReady, "Armazenamento local ainda carregando", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
