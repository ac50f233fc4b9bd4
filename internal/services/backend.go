package services

import (
	"fmt"
	"time"

	"fuel-console/internal/timeutil"
	"fuel-console/pkg/apperror"
)

// Clock returns the current time. Services take one so tests can pin it.
type Clock func() time.Time

func defaultClock() time.Time {
	return timeutil.Now()
}

// backendError turns a failed backend call into the 502 shown to the
// operator, keeping the backend's own message.
func backendError(action string, err error) error {
	if err == nil {
		return nil
	}
	return apperror.NewBadGatewayError(fmt.Errorf("%s: %w", action, err))
}
