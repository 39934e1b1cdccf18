package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/url"

	chimw "github.com/go-chi/chi/v5/middleware"

	"estoque/internal/pkg/logger"
)

// ResponseCache é o contrato do cache de listagens (cache.ListingCache).
type ResponseCache interface {
	Key(ctx context.Context, path string, query url.Values) (string, error)
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte) error
}

// CacheResponse memoriza respostas GET 200 e as devolve com X-Cache: HIT.
// Falhas do cache degradam para a resposta sem cache.
func CacheResponse(rc ResponseCache, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}
			ctx := r.Context()

			key, err := rc.Key(ctx, r.URL.Path, r.URL.Query())
			if err != nil {
				log.Warn("Cache de listagem indisponível.", map[string]interface{}{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}

			body, found, err := rc.Get(ctx, key)
			if err != nil {
				log.Warn("Falha ao ler o cache de listagem.", map[string]interface{}{"key": key, "error": err.Error()})
			}
			if found {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(http.StatusOK)
				w.Write(body)
				return
			}

			w.Header().Set("X-Cache", "MISS")
			var buf bytes.Buffer
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Tee(&buf)

			next.ServeHTTP(ww, r)

			if ww.Status() != http.StatusOK {
				return
			}
			if err := rc.Set(ctx, key, buf.Bytes()); err != nil {
				log.Warn("Falha ao gravar o cache de listagem.", map[string]interface{}{"key": key, "error": err.Error()})
			}
		})
	}
}
