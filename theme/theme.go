// Package theme holds the active primary color and its persisted selection
package theme

import (
	"log/slog"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/lixenwraith/ringball/parameter"
)

// Theme is what sinks and the simulation read to color bodies and particles
type Theme struct {
	Primary string
}

// Source is the read side used by the simulation
type Source interface {
	Current() Theme
}

// Store is the persistence the selector saves into
type Store interface {
	Read(key string) (string, bool)
	Write(key, value string) error
}

// Selector cycles through a palette and remembers the choice
type Selector struct {
	palette []string
	current Theme
	store   Store
	logger  *slog.Logger
}

// NewSelector restores the saved color from store, falling back to the default for absent or invalid values
// A nil store keeps the selection in memory only
func NewSelector(store Store, defaultColor string, logger *slog.Logger) *Selector {
	if logger == nil {
		logger = slog.Default()
	}
	if _, err := Parse(defaultColor); err != nil {
		defaultColor = parameter.DefaultThemeColor
	}

	s := &Selector{
		palette: parameter.ThemePalette,
		current: Theme{Primary: Normalize(defaultColor)},
		store:   store,
		logger:  logger,
	}

	if store != nil {
		if saved, ok := store.Read(parameter.KeyThemeColor); ok {
			if _, err := Parse(saved); err == nil {
				s.current = Theme{Primary: Normalize(saved)}
			} else {
				logger.Debug("ignoring saved theme color", "value", saved)
			}
		}
	}
	return s
}

// Current returns the active theme
func (s *Selector) Current() Theme {
	return s.current
}

// Set validates and activates color, persisting it
func (s *Selector) Set(color string) error {
	if _, err := Parse(color); err != nil {
		return err
	}
	s.current = Theme{Primary: Normalize(color)}
	if s.store != nil {
		if err := s.store.Write(parameter.KeyThemeColor, s.current.Primary); err != nil {
			s.logger.Warn("persist theme", "error", err)
		}
	}
	return nil
}

// Next activates the palette color after the current one
func (s *Selector) Next() Theme {
	idx := -1
	for i, c := range s.palette {
		if strings.EqualFold(c, s.current.Primary) {
			idx = i
			break
		}
	}
	next := s.palette[(idx+1)%len(s.palette)]
	_ = s.Set(next)
	return s.current
}

// Parse decodes a #rrggbb color
func Parse(color string) (colorful.Color, error) {
	c, err := colorful.Hex(color)
	if err != nil {
		return colorful.Color{}, errors.Wrapf(err, "invalid theme color %q", color)
	}
	return c, nil
}

// Normalize lowercases a hex color
func Normalize(color string) string {
	return strings.ToLower(color)
}
