package http

import (
	"errors"
	"fmt"

	"log-baseline/internal/shared/svcerrors"
)

var (
	ErrInvalidRequestBody  = errors.New("invalid request body")
	ErrInvalidQueryParam   = errors.New("invalid query parameter")
	ErrEnvironmentNotFound = errors.New("environment not in snapshot")
)

const (
	codeInvalidRequestBody  = "API_1000"
	codeInvalidQueryParam   = "API_1001"
	codeSnapshotNotFound    = "API_1002"
	codeEnvironmentNotFound = "API_1003"
)

func errInvalidRequestBody(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRequestBody, "request body must be a JSON run request",
		fmt.Errorf("%w: %w", ErrInvalidRequestBody, cause))
}

func errInvalidQueryParam(name, value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQueryParam, fmt.Sprintf("invalid %s %q", name, value),
		fmt.Errorf("%w: %s=%q: %w", ErrInvalidQueryParam, name, value, cause))
}

func errSnapshotNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeSnapshotNotFound, "no snapshot has been saved yet", cause)
}

func errEnvironmentNotFound(env string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeEnvironmentNotFound, fmt.Sprintf("environment %q is not in the latest snapshot", env),
		fmt.Errorf("%w: %q", ErrEnvironmentNotFound, env))
}
