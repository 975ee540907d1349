package aggregators

import (
	"errors"
	"fmt"

	"log-baseline/internal/shared/svcerrors"
)

var ErrNoBuckets = errors.New("no buckets to average over")

const (
	codeNoBuckets = "AGG_1000"

	codeUpstreamCountFailed = "AGG_9000"
	codeInternalBadCount    = "AGG_9001"
	codeInternalOverflow    = "AGG_9002"
)

// errNoBuckets returns an error when an average is requested over an empty window.
func errNoBuckets(metric string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeNoBuckets, "no buckets to average over",
		fmt.Errorf("%w: metric %q", ErrNoBuckets, metric))
}

// errUpstreamCountFailed returns an error when the log platform fails a count query.
func errUpstreamCountFailed(metric string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewUpstreamError(codeUpstreamCountFailed, fmt.Sprintf("count query for %q failed", metric), cause)
}

// errInternalBadCount returns an error when a count violates count >= 0.
func errInternalBadCount(metric string, count int64) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalBadCount, fmt.Errorf("badCount: metric %q returned %d", metric, count))
}

// errInternalCountOverflow returns an error when a window total does not fit in an int64.
func errInternalCountOverflow(metric string) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalOverflow, fmt.Errorf("countOverflow: metric %q window total exceeds int64", metric))
}
