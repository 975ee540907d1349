package timeranges

import (
	"errors"
	"fmt"

	"log-baseline/internal/shared/svcerrors"
)

var (
	ErrMalformedExpression = errors.New("malformed time expression")
	ErrInvalidRange        = errors.New("invalid time range")
)

const (
	codeMalformedExpression = "TIME_1000"
	codeInvalidRange        = "TIME_1001"
)

// errMalformedExpression returns an error for a time token outside the accepted grammar.
func errMalformedExpression(expr string, cause error) *svcerrors.ServiceError {
	wrapped := fmt.Errorf("%w: %q", ErrMalformedExpression, expr)
	if cause != nil {
		wrapped = fmt.Errorf("%w: %q: %w", ErrMalformedExpression, expr, cause)
	}
	return svcerrors.NewInvalidArgumentError(codeMalformedExpression, "malformed time expression", wrapped)
}

// errInvalidRange returns an error when a resolved start lies after its end.
func errInvalidRange(from, to string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRange, "invalid time range",
		fmt.Errorf("%w: from %q to %q: %w", ErrInvalidRange, from, to, cause))
}
