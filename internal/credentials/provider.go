package credentials

import (
	"errors"
	"fmt"

	"log-baseline/internal/shared/configs"

	"github.com/kelseyhightower/envconfig"
)

// Credentials authenticate against the observability platform.
type Credentials struct {
	APIKey string `split_words:"true" required:"true"`
	AppKey string `split_words:"true" required:"true"`
}

// Provider loads credentials for a configured environment.
//
//go:generate mockgen -source=provider.go -destination=./mocks/provider_mock.go -package=mocks
type Provider interface {
	Load(env configs.EnvironmentConfig) (*Credentials, error)
}

type envProvider struct{}

// NewEnvProvider reads <credentials_prefix>_API_KEY and <credentials_prefix>_APP_KEY
// from the process environment.
func NewEnvProvider() Provider {
	return &envProvider{}
}

func (p *envProvider) Load(env configs.EnvironmentConfig) (*Credentials, error) {
	var creds Credentials
	if err := envconfig.Process(env.CredentialsPrefix, &creds); err != nil {
		return nil, errMissingCredentials(env.Name, env.CredentialsPrefix, err)
	}
	if creds.APIKey == "" || creds.AppKey == "" {
		return nil, errMissingCredentials(env.Name, env.CredentialsPrefix, errors.New("empty key"))
	}
	return &creds, nil
}

// String never prints the secrets.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{APIKey:%s AppKey:%s}", mask(c.APIKey), mask(c.AppKey))
}

func mask(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}
