package pipelines

import (
	"errors"
	"fmt"

	"log-baseline/internal/shared/svcerrors"
)

var (
	ErrInvalidMetricPattern = errors.New("invalid metric pattern")
	ErrUnknownEnvironment   = errors.New("unknown environment")
	ErrInvalidBaseline      = errors.New("invalid baseline")
	ErrInvalidPod           = errors.New("invalid pod name")
	ErrUnknownMetric        = errors.New("unknown metric")
)

const (
	codeInvalidMetricPattern = "PIPE_1000"
	codeUnknownEnvironment   = "PIPE_1001"
	codeInvalidBaseline      = "PIPE_1002"
	codeInvalidPod           = "PIPE_1003"
	codeUnknownMetric        = "PIPE_1004"

	codeInternalSnapshotStoreFailed = "PIPE_9000"
	codeInternalLogDumpStoreFailed  = "PIPE_9001"
)

func errInvalidMetricPattern(pattern string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidMetricPattern, fmt.Sprintf("invalid metric pattern %q", pattern),
		fmt.Errorf("%w: %q: %w", ErrInvalidMetricPattern, pattern, cause))
}

func errUnknownEnvironment(name string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnknownEnvironment, fmt.Sprintf("unknown environment %q", name),
		fmt.Errorf("%w: %q", ErrUnknownEnvironment, name))
}

func errInvalidBaseline(baseline string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidBaseline, "baseline must be business, weekend or auto",
		fmt.Errorf("%w: %q", ErrInvalidBaseline, baseline))
}

func errInvalidPod(pod string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidPod, "pod name is required",
		fmt.Errorf("%w: %q", ErrInvalidPod, pod))
}

func errUnknownMetric(env, metric string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnknownMetric, fmt.Sprintf("metric %q is not configured for %q", metric, env),
		fmt.Errorf("%w: %q", ErrUnknownMetric, metric))
}

func errInternalSnapshotStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSnapshotStoreFailed, fmt.Errorf("snapshotStoreFailed: %w", cause))
}

func errInternalLogDumpStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogDumpStoreFailed, fmt.Errorf("logDumpStoreFailed: %w", cause))
}
