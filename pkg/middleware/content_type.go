package middleware

import (
	"mime"
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// RequireJSON recusa corpos declarados com outro Content-Type. Sem cabeçalho, a requisição segue.
func RequireJSON() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType := r.Header.Get("Content-Type")
			if contentType != "" {
				mediaType, _, err := mime.ParseMediaType(contentType)
				if err != nil || mediaType != "application/json" {
					apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Content-Type deve ser application/json", nil)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
