package deviations

import (
	"errors"
	"fmt"

	"log-baseline/internal/models"
	"log-baseline/internal/shared/svcerrors"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrInvalidAlpha   = errors.New("invalid pseudo-count")
	ErrUnknownMode    = errors.New("unknown deviation mode")
)

const (
	codeDivisionByZero = "DEV_1000"
	codeInvalidAlpha   = "DEV_1001"
	codeUnknownMode    = "DEV_1002"
)

// errDivisionByZero returns an error for a percent deviation against a zero baseline.
func errDivisionByZero() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeDivisionByZero, "division by zero",
		fmt.Errorf("%w: baseline is 0, use log_ratio mode", ErrDivisionByZero))
}

func errInvalidAlpha(alpha float64) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidAlpha, "alpha must be positive",
		fmt.Errorf("%w: %v", ErrInvalidAlpha, alpha))
}

func errUnknownMode(mode models.DeviationMode) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnknownMode, "unknown deviation mode",
		fmt.Errorf("%w: %q", ErrUnknownMode, mode))
}
