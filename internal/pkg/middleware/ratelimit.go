package middleware

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"estoque/internal/api/respond"
	apperror "estoque/internal/errors"
	"estoque/internal/pkg/cache"
	"estoque/internal/pkg/logger"
)

// RateLimiter aplica uma janela fixa por IP: no máximo limit requisições a cada period.
// Se o Redis falhar a requisição segue sem limite.
func RateLimiter(client cache.Client, limit int, period time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := "rate-limit:" + clientIP(r)
			ctx := r.Context()

			count, err := client.GetInt(ctx, key)
			switch {
			case errors.Is(err, cache.ErrCacheMiss):
				count = 0
			case err != nil:
				log.Warn("Rate limiter indisponível, requisição liberada.", map[string]interface{}{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}

			if count >= int64(limit) {
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("Retry-After", strconv.Itoa(int(period.Seconds())))
				respond.Error(w, r, log, apperror.NewRateLimitError("Tente novamente mais tarde."))
				return
			}

			current, err := client.Incr(ctx, key)
			if err != nil {
				log.Warn("Falha ao incrementar o contador do rate limiter.", map[string]interface{}{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}
			// A janela começa na primeira requisição.
			if current == 1 {
				if err := client.Expire(ctx, key, period); err != nil {
					log.Warn("Falha ao definir a janela do rate limiter.", map[string]interface{}{"error": err.Error()})
				}
			}

			remaining := int64(limit) - current
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
