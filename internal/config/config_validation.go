package config

import "errors"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants required before the server can start. All violations are
// reported at once as a joined error rather than failing on the first.
func (cfg *StructuredConfig) validate() error {
	var err error

	if cfg.App.TokenSignKey == "" {
		err = errors.Join(err, ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite {
		err = errors.Join(err, ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		err = errors.Join(err, ErrInvalidServerConfigs)
	}

	return err
}
