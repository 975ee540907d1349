package calendars

import (
	"errors"
	"fmt"

	"log-baseline/internal/shared/svcerrors"
)

var ErrInvalidLookback = errors.New("invalid lookback")

const codeInvalidLookback = "CAL_1000"

// errInvalidLookback returns an error for a negative lookback window.
func errInvalidLookback(weeksBack int) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidLookback, "lookback must not be negative",
		fmt.Errorf("%w: weeks_back=%d", ErrInvalidLookback, weeksBack))
}
