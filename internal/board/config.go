package board

import (
	"errors"
	"fmt"
	"math"

	"KanjiDraw/internal/state"
)

// ErrInvalidConfig is returned by New when an option is out of range.
var ErrInvalidConfig = errors.New("invalid board config")

// Config holds everything fixed at construction time. Style is only the
// initial style; the Set* commands change it afterwards.
type Config struct {
	Size          float64
	MinSize       float64
	ResizeEpsilon float64
	Padding       float64
	Scale         int
	Style         state.Style
}

func DefaultConfig() Config {
	return Config{
		Size:          state.DefaultSize,
		MinSize:       state.DefaultMinSize,
		ResizeEpsilon: state.DefaultResizeEpsilon,
		Padding:       state.DefaultPadding,
		Scale:         state.MinScale,
		Style:         state.DefaultStyle(),
	}
}

// Option configures a Board during creation.
//
// Example:
//
//	b, err := board.New(board.WithSize(600), board.WithScale(2))
type Option func(*Config)

// WithSize sets the initial side length in display units.
func WithSize(size float64) Option {
	return func(c *Config) { c.Size = size }
}

// WithMinSize sets the floor below which resizes are ignored.
func WithMinSize(min float64) Option {
	return func(c *Config) { c.MinSize = min }
}

// WithResizeEpsilon sets the smallest side-length change that triggers a rescale.
func WithResizeEpsilon(eps float64) Option {
	return func(c *Config) { c.ResizeEpsilon = eps }
}

// WithPadding sets the horizontal padding subtracted from the available width.
func WithPadding(p float64) Option {
	return func(c *Config) { c.Padding = p }
}

// WithScale sets the initial resolution scale.
func WithScale(n int) Option {
	return func(c *Config) { c.Scale = n }
}

// WithStyle sets the initial style.
func WithStyle(st state.Style) Option {
	return func(c *Config) { c.Style = st }
}

// Validate checks every field and wraps ErrInvalidConfig on failure.
func (c Config) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"size", c.Size},
		{"minimum size", c.MinSize},
		{"resize epsilon", c.ResizeEpsilon},
		{"padding", c.Padding},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
			return fmt.Errorf("%w: %s %v must be finite and non-negative", ErrInvalidConfig, f.name, f.v)
		}
	}
	if c.MinSize <= 0 {
		return fmt.Errorf("%w: minimum size must be positive", ErrInvalidConfig)
	}
	if c.Size < c.MinSize {
		return fmt.Errorf("%w: size %v below minimum %v", ErrInvalidConfig, c.Size, c.MinSize)
	}
	if c.Scale < state.MinScale || c.Scale > state.MaxScale {
		return fmt.Errorf("%w: scale %d outside [%d, %d]", ErrInvalidConfig, c.Scale, state.MinScale, state.MaxScale)
	}
	if err := c.Style.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
