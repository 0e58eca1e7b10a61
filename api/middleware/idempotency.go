package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/martinvlcek/shoplist-backend/api/responses"
	pkgerrors "github.com/martinvlcek/shoplist-backend/pkg/errors"
	"github.com/martinvlcek/shoplist-backend/pkg/logger"
	pkgredis "github.com/martinvlcek/shoplist-backend/pkg/redis"
)

const idempotencyTTL = 24 * time.Hour

type idempotencyRecord struct {
	Status      int    `json:"status"`
	Body        string `json:"body"`
	RequestHash string `json:"request_hash"`
}

// Idempotency replays the stored response when a mutating request repeats an
// Idempotency-Key. The header is optional: requests without it pass through
// untouched, keeping the plain REST contract intact.
func Idempotency(store pkgredis.IdempotencyStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store == nil || !mutating(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			key := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read request"))
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			hash := requestHash(r.Method, r.URL.Path, body)
			redisKey := store.IdempotencyKey(r.Method+" "+r.URL.Path, key)

			if stored, err := store.Get(r.Context(), redisKey); err == nil {
				var rec idempotencyRecord
				if json.Unmarshal([]byte(stored), &rec) == nil {
					if rec.RequestHash != hash {
						responses.WriteError(r.Context(), logg, w,
							pkgerrors.New(pkgerrors.CodeValidation, "Idempotency-Key reused with a different payload"))
						return
					}
					if logg != nil {
						logg.Info(logg.WithField(r.Context(), "idempotency_key", key), "idempotency.replay")
					}
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(rec.Status)
					io.WriteString(w, rec.Body)
					return
				}
			} else if !pkgredis.IsNil(err) {
				if logg != nil {
					logg.Warn(logg.WithField(r.Context(), "idempotency_key", key), "idempotency store unavailable, passing through")
				}
				next.ServeHTTP(w, r)
				return
			}

			capture := &captureWriter{ResponseWriter: w}
			next.ServeHTTP(capture, r)

			rec := idempotencyRecord{
				Status:      capture.statusOrOK(),
				Body:        capture.buf.String(),
				RequestHash: hash,
			}
			if encoded, err := json.Marshal(rec); err == nil {
				if _, err := store.SetNX(r.Context(), redisKey, string(encoded), idempotencyTTL); err != nil && logg != nil {
					logg.Warn(logg.WithField(r.Context(), "idempotency_key", key), "failed to persist idempotency record")
				}
			}
		})
	}
}

func mutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}

func requestHash(method, path string, body []byte) string {
	sum := sha256.Sum256(append([]byte(method+" "+path+"\n"), body...))
	return base64.StdEncoding.EncodeToString(sum[:])
}

type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (c *captureWriter) WriteHeader(status int) {
	c.status = status
	c.ResponseWriter.WriteHeader(status)
}

func (c *captureWriter) Write(p []byte) (int, error) {
	c.buf.Write(p)
	return c.ResponseWriter.Write(p)
}

func (c *captureWriter) statusOrOK() int {
	if c.status == 0 {
		return http.StatusOK
	}
	return c.status
}
