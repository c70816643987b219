package ports

import (
	"context"

	"github.com/KongaYvan/Automates/pkg/domain"
)

// DefinitionLoader retrieves the construction request for one automaton.
// Loaders only read; nothing is ever written back.
type DefinitionLoader interface {
	// Load returns the definition or an error describing why it could not be read
	// or why it is structurally malformed.
	Load(ctx context.Context) (domain.Definition, error)
}
