package config

import (
	"errors"
	"fmt"
	"time"
)

const maxJustNow = time.Hour

func (c Config) validate() error {
	var errs []error

	if c.JustNow < 0 || c.JustNow > maxJustNow {
		errs = append(errs, fmt.Errorf(
			"just_now: must be between 0 and %s, got %s",
			maxJustNow,
			c.JustNow,
		))
	}

	if err := c.Color.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("color: %w", err))
	}

	return errors.Join(errs...)
}

func (m ColorMode) Validate() error {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf(
			"unknown color mode \"%s\" (want auto, always or never)",
			m,
		)
	}
}
