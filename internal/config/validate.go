package config

import (
	"errors"
	"fmt"

	"lettrix/internal/domain"
)

// Validate validates the application configuration.
func (c *AppConfig) Validate() error {
	var errs []error

	if c.Redis.Addr == "" {
		errs = append(errs, errors.New("redis address is required"))
	}

	if c.Redis.DialTimeout <= 0 {
		errs = append(errs, errors.New("redis dial timeout must be positive"))
	}

	if len(c.Redis.SentinelAddrs) > 0 && c.Redis.MasterName == "" {
		errs = append(errs, errors.New("redis master name is required with sentinel addresses"))
	}

	if c.Templates.Dir != "" && c.Templates.Endpoint != "" {
		errs = append(errs, errors.New("templates dir and templates endpoint are mutually exclusive"))
	}

	if c.Quota.LifetimeFree < 0 {
		errs = append(errs, errors.New("quota lifetime allowance must not be negative"))
	}

	if c.Quota.DailyLimit < 0 {
		errs = append(errs, errors.New("quota daily limit must not be negative"))
	}

	if c.Quota.DailyTTL <= 0 {
		errs = append(errs, errors.New("quota daily TTL must be positive"))
	}

	if c.Stats.TTL < 0 {
		errs = append(errs, errors.New("stats TTL must not be negative"))
	}

	if c.Server.ListenAddr == "" {
		errs = append(errs, errors.New("listen address is required"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %w: %w", domain.ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// ValidateCatalog validates a category catalog. Every category must carry a
// non-empty fallback for each section so generation always has content.
func ValidateCatalog(cat *Catalog) error {
	var errs []error

	if len(cat.Categories) == 0 {
		errs = append(errs, errors.New("at least one category is required"))
	}

	seen := make(map[string]bool)
	for i, c := range cat.Categories {
		if c.ID == "" {
			errs = append(errs, fmt.Errorf("categories[%d].id is required", i))
		} else if seen[c.ID] {
			errs = append(errs, fmt.Errorf("categories[%d].id %q is duplicated", i, c.ID))
		}
		seen[c.ID] = true

		if !c.MissingPlaceholder.Valid() {
			errs = append(errs, fmt.Errorf("categories[%d].missing_placeholder must be %q or %q", i, domain.KeepMissing, domain.EmptyMissing))
		}

		for _, s := range domain.Sections {
			if c.Fallback.For(s) == "" {
				errs = append(errs, fmt.Errorf("categories[%d].fallback.%s is required", i, s))
			}
		}

		for j, b := range c.Extras {
			if b.Field == "" {
				errs = append(errs, fmt.Errorf("categories[%d].extras[%d].field is required", i, j))
			}
		}

		for j, b := range c.Closings {
			if b.Field == "" {
				errs = append(errs, fmt.Errorf("categories[%d].closings[%d].field is required", i, j))
			}
		}

		for j, a := range c.Aliases {
			if a.Field == "" || a.From == "" {
				errs = append(errs, fmt.Errorf("categories[%d].aliases[%d] needs field and from", i, j))
			}
		}

		if c.Export.FilePrefix == "" {
			errs = append(errs, fmt.Errorf("categories[%d].export.file_prefix is required", i))
		}
	}

	if len(errs) > 0 {
		return &domain.ConfigError{
			ConfigName: "categories",
			Err:        fmt.Errorf("%w: %w", domain.ErrInvalidConfig, errors.Join(errs...)),
		}
	}

	return nil
}
