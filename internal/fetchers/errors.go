package fetchers

import (
	"errors"
	"fmt"

	"log-baseline/internal/shared/svcerrors"
)

var (
	ErrFetch           = errors.New("fetch failed")
	ErrInvalidPageSize = errors.New("invalid page size")
)

const (
	codeInvalidPageSize = "FETCH_1000"

	codeUpstreamFetchFailed = "FETCH_9000"
)

// errFetch returns an error for a failed page; entries gathered so far are discarded.
func errFetch(what string, page int, cause error) *svcerrors.ServiceError {
	return svcerrors.NewUpstreamError(codeUpstreamFetchFailed, fmt.Sprintf("fetching %s failed", what),
		fmt.Errorf("%w: page %d: %w", ErrFetch, page, cause))
}

func errInvalidPageSize(size int) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidPageSize, "page size must be positive",
		fmt.Errorf("%w: %d", ErrInvalidPageSize, size))
}
