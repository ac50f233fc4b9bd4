package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"fuel-console/pkg/apperror"
	"fuel-console/pkg/utils"
)

func PanicRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("[%s] PANIC RECOVERED: %v\n%s", shortID(RequestID(r.Context())), err, debug.Stack())
				utils.JSON(w, http.StatusInternalServerError, apperror.ErrInternalServer)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
