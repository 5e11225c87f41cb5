// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

// Role names the process a configuration is validated for.
type Role string

const (
	RoleUsers     Role = "users"
	RoleNotes     Role = "notes"
	RoleLabels    Role = "labels"
	RoleReminders Role = "reminders"
	RoleMigrate   Role = "migrate"
)

var (
	knownDrivers       = []string{"", "pgx", "sqlite3"}
	knownCacheBackends = []string{"", "redis", "memory", "none"}
)

// validate checks the invariants that hold for every role.
func (cfg *StructuredConfig) validate() error {
	if !slices.Contains(knownDrivers, cfg.Storage.DB.Driver) {
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if !slices.Contains(knownCacheBackends, cfg.Storage.Cache.Backend) {
		return fmt.Errorf("%w: unknown cache backend %q", ErrInvalidStorageConfigs, cfg.Storage.Cache.Backend)
	}

	return nil
}

// ValidateFor checks that every setting the given role depends on is present.
func (cfg *StructuredConfig) ValidateFor(role Role) error {
	switch role {
	case RoleUsers:
		return firstError(cfg.requireDB, cfg.requireServer, cfg.requireTokenKey)
	case RoleNotes:
		return firstError(cfg.requireDB, cfg.requireServer, cfg.requireRedis, cfg.requireUsersAdapter, cfg.requireLabelsAdapter)
	case RoleLabels:
		return firstError(cfg.requireDB, cfg.requireServer, cfg.requireUsersAdapter)
	case RoleReminders:
		return firstError(cfg.requireRedis, cfg.requireMail, cfg.requireWorkers)
	case RoleMigrate:
		return cfg.requireDB()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
}

func firstError(checks ...func() error) error {
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *StructuredConfig) requireDB() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}
	return nil
}

func (cfg *StructuredConfig) requireRedis() error {
	if cfg.Storage.Redis.URL == "" {
		return fmt.Errorf("%w: empty redis URL", ErrInvalidStorageConfigs)
	}
	return nil
}

func (cfg *StructuredConfig) requireServer() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}
	return nil
}

func (cfg *StructuredConfig) requireTokenKey() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and duration are required", ErrInvalidAppConfigs)
	}
	return nil
}

func (cfg *StructuredConfig) requireUsersAdapter() error {
	if cfg.Adapter.UsersURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: users URL and request timeout are required", ErrInvalidAdapterConfigs)
	}
	return nil
}

func (cfg *StructuredConfig) requireLabelsAdapter() error {
	if cfg.Adapter.LabelsURL == "" {
		return fmt.Errorf("%w: labels URL is required", ErrInvalidAdapterConfigs)
	}
	return nil
}

func (cfg *StructuredConfig) requireMail() error {
	if cfg.Mail.Host == "" || cfg.Mail.Port == 0 || cfg.Mail.From == "" {
		return fmt.Errorf("%w: host, port and sender are required", ErrInvalidMailConfigs)
	}
	return nil
}

func (cfg *StructuredConfig) requireWorkers() error {
	if cfg.Workers.ReminderPollInterval <= 0 || cfg.Workers.ReminderBatchSize <= 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}
