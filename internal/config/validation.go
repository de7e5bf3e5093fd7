package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate checks the configuration for correctness and
// reports every violation at once.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateSources(&cfg.Sources)...)
	errs = append(errs, validateOutput(&cfg.Output)...)
	errs = append(errs, validateSystem(&cfg.System)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateSources checks that every theme is complete and uniquely named.
func validateSources(s *SourcesConfig) []ValidationError {
	var errs []ValidationError

	if len(s.Themes) == 0 {
		errs = append(errs, ValidationError{
			Field:   "sources.themes",
			Message: "at least one theme source is required",
			Wrapped: ErrInvalidConfig,
		})
	}

	seen := make(map[string]bool, len(s.Themes))
	for i, t := range s.Themes {
		field := fmt.Sprintf("sources.themes[%d]", i)
		if strings.TrimSpace(t.Name) == "" {
			errs = append(errs, ValidationError{Field: field + ".name", Message: "required field is empty", Wrapped: ErrInvalidConfig})
		} else if seen[t.Name] {
			errs = append(errs, ValidationError{Field: field + ".name", Message: "duplicate theme name", Value: t.Name, Wrapped: ErrInvalidConfig})
		}
		seen[t.Name] = true

		if strings.TrimSpace(t.Selector) == "" {
			errs = append(errs, ValidationError{Field: field + ".selector", Message: "required field is empty", Wrapped: ErrInvalidConfig})
		}
		if strings.TrimSpace(t.Path) == "" {
			errs = append(errs, ValidationError{Field: field + ".path", Message: "required field is empty", Wrapped: ErrInvalidConfig})
		}
	}

	return errs
}

// validateOutput checks the output format.
func validateOutput(o *OutputConfig) []ValidationError {
	if slices.Contains(ValidFormats(), o.Format) {
		return nil
	}
	return []ValidationError{{
		Field:   "output.format",
		Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidFormats(), ", ")),
		Value:   o.Format,
		Wrapped: ErrInvalidFormat,
	}}
}

// validateSystem checks the logging settings.
func validateSystem(s *SystemConfig) []ValidationError {
	var errs []ValidationError

	if !slices.Contains(ValidLogLevels(), s.LogLevel) {
		errs = append(errs, ValidationError{
			Field:   "system.log_level",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
			Value:   s.LogLevel,
			Wrapped: ErrInvalidLogLevel,
		})
	}
	if !slices.Contains(ValidLogFormats(), s.LogFormat) {
		errs = append(errs, ValidationError{
			Field:   "system.log_format",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogFormats(), ", ")),
			Value:   s.LogFormat,
			Wrapped: ErrInvalidLogLevel,
		})
	}

	return errs
}
