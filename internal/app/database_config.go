package app

import "github.com/volunteerconnect/server/internal/database"

// Connection converts DatabaseConfig into the parameters expected by database.Open.
// Host based settings apply only when the matching driver block is enabled.
func (c DatabaseConfig) Connection() database.Config {
	cfg := database.Config{
		Driver: c.Driver,
		Path:   c.Path,
		DSN:    c.DSN,
	}

	var hostCfg DBAuthConfig
	switch c.Driver {
	case "postgres", "postgresql":
		hostCfg = c.Postgres
	case "mysql":
		hostCfg = c.MySQL
	}

	if hostCfg.Enabled {
		cfg.Host = hostCfg.Host
		cfg.Port = hostCfg.Port
		cfg.Name = hostCfg.Database
		cfg.User = hostCfg.Username
		cfg.Password = hostCfg.Password
	}

	return cfg
}
