package credentials

import (
	"errors"
	"fmt"

	"log-baseline/internal/shared/svcerrors"
)

var ErrMissingCredentials = errors.New("missing credentials")

const codeMissingCredentials = "CRED_1000"

// errMissingCredentials returns an error telling the caller to skip the environment.
func errMissingCredentials(env, prefix string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnauthenticatedError(codeMissingCredentials,
		fmt.Sprintf("missing credentials for environment %q", env),
		fmt.Errorf("%w: set %s_API_KEY and %s_APP_KEY: %w", ErrMissingCredentials, prefix, prefix, cause))
}
