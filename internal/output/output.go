package output

import (
	"context"

	"github.com/crimson-sun/relprep/internal/model"
)

// Writer defines the interface for feature record destinations.
type Writer interface {
	Write(ctx context.Context, rec model.FeatureRecord) error
	Close() error
}

// Verbosity controls how much of a record each sink retains.
type Verbosity int

const (
	// Minimal keeps only the core tensor channels and the label.
	Minimal Verbosity = iota
	// Standard additionally keeps the entity channels.
	Standard
	// Full keeps everything, including the packed token strings.
	Full
)

// ParseVerbosity converts a configuration string to a Verbosity.
// Unknown strings default to Standard.
func ParseVerbosity(s string) Verbosity {
	switch s {
	case "minimal":
		return Minimal
	case "full":
		return Full
	default:
		return Standard
	}
}
