package app

import (
	"github.com/volunteerconnect/server/internal/auth"
	"github.com/volunteerconnect/server/internal/auth/providers"
)

// JWTServiceConfig converts AuthConfig into the parameters expected by the JWT service.
func (c AuthConfig) JWTServiceConfig() auth.JWTConfig {
	ttl := c.JWT.TTL
	if ttl <= 0 {
		ttl = auth.DefaultAccessTokenTTL
	}

	return auth.JWTConfig{
		Secret:         c.JWT.Secret,
		Issuer:         c.JWT.Issuer,
		AccessTokenTTL: ttl,
	}
}

// LocalProviderConfig converts AuthConfig into LocalProvider parameters.
func (c AuthConfig) LocalProviderConfig() providers.LocalConfig {
	return providers.LocalConfig{
		PasswordPolicy: c.Local.PasswordPolicy,
	}
}
