package amount

import (
	"slices"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/samber/lo"
)

const (
	DefaultSeparator    = ","
	DefaultApproxMarker = "≈ "
)

// DefaultSuffixes is the magnitude suffix table indexed by floor(log1000(value)).
var DefaultSuffixes = []string{"", "k", "M", "B", "T", "Q"}

// Config is the formatting configuration of a Formatter.
type Config struct {
	// Separator is inserted between every three digits of the integer portion.
	Separator string `mapstructure:"separator"`

	// ApproxMarker prefixes values that are not zero but render as zero at display precision.
	ApproxMarker string `mapstructure:"approx_marker"`

	// Suffixes is the magnitude suffix table. Exponents beyond the table are clamped to its last entry.
	Suffixes []string `mapstructure:"suffixes"`
}

func DefaultConfig() Config {
	return Config{
		Separator:    DefaultSeparator,
		ApproxMarker: DefaultApproxMarker,
		Suffixes:     slices.Clone(DefaultSuffixes),
	}
}

// Formatter converts and formats amounts. It is immutable and safe for concurrent use.
// The zero value formats with the default configuration.
type Formatter struct {
	separator    string
	approxMarker string
	suffixes     []string
}

// New creates a Formatter. Empty fields of the config fall back to the defaults.
func New(config Config) *Formatter {
	suffixes := lo.Ternary(len(config.Suffixes) == 0, DefaultSuffixes, config.Suffixes)
	return &Formatter{
		separator:    utils.Default(config.Separator, DefaultSeparator),
		approxMarker: utils.Default(config.ApproxMarker, DefaultApproxMarker),
		suffixes:     slices.Clone(suffixes),
	}
}

// Config returns a copy of the formatter configuration.
func (f *Formatter) Config() Config {
	return Config{
		Separator:    f.separator,
		ApproxMarker: f.approxMarker,
		Suffixes:     slices.Clone(f.suffixes),
	}
}

var defaultFormatter = New(DefaultConfig())

// Default returns the formatter used by the package-level functions.
func Default() *Formatter {
	return defaultFormatter
}
