package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000", " https://painel.exemplo.com "})(okHandler())

	tests := []struct {
		name        string
		method      string
		origin      string
		wantStatus  int
		wantAllowed string
	}{
		{"origem liberada", http.MethodGet, "http://localhost:3000", http.StatusTeapot, "http://localhost:3000"},
		{"origem com espaços na config", http.MethodGet, "https://painel.exemplo.com", http.StatusTeapot, "https://painel.exemplo.com"},
		{"origem desconhecida", http.MethodGet, "http://evil.test", http.StatusTeapot, ""},
		{"preflight", http.MethodOptions, "http://localhost:3000", http.StatusNoContent, "http://localhost:3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/dashboard", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllowed, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCors_Wildcard(t *testing.T) {
	handler := Cors([]string{"*"})(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://qualquer.test")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, "http://qualquer.test", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	log.SetupTestLogger()

	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sales", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(CorrelationIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/v1/sales", nil)
	req.Header.Set(CorrelationIDHeader, "cliente-123")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "cliente-123", seen)
	assert.Equal(t, "cliente-123", rec.Header().Get(CorrelationIDHeader))
}

func TestLoggingResponseWriter_KeepsFirstStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	lrw := newLoggingResponseWriter(rec)

	_, _ = lrw.Write([]byte("ok"))
	lrw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusOK, lrw.statusCode)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falhou")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":"SRV_001","message":"Erro interno no servidor"}`, rec.Body.String())
}

func TestRequireJSON(t *testing.T) {
	handler := RequireJSON()(okHandler())

	for contentType, want := range map[string]int{
		"":                                http.StatusTeapot,
		"application/json":                http.StatusTeapot,
		"application/json; charset=utf-8": http.StatusTeapot,
		"text/plain":                      http.StatusBadRequest,
	} {
		req := httptest.NewRequest(http.MethodPost, "/v1/sales", nil)
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code, contentType)
	}
}
