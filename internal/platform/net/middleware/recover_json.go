package middleware

import (
	"net/http"
	"runtime/debug"

	perr "copsoq/internal/platform/errors"
	"copsoq/internal/platform/logger"
	pnet "copsoq/internal/platform/net"
	phttp "copsoq/internal/platform/net/http"
)

// RecoverJSON turns a panic into a 500 envelope and logs the stack
// http.ErrAbortHandler is re-raised so net/http can drop the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}

			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			status, env := pnet.Failure(perr.PanicErrf("internal error"), pnet.RequestID(r.Context()))
			phttp.WriteJSON(w, status, env)
		}()
		next.ServeHTTP(w, r)
	})
}
