package validate

import (
	"fmt"

	"github.com/cloudsketch/engine/internal/catalog"
	"github.com/cloudsketch/engine/internal/taxonomy"
)

// Edge is the outcome of validating one connection. Definition is set
// only for valid connections; the advisory network-interface hint never
// carries a definition and never earns points.
type Edge struct {
	IsValid    bool
	Definition *taxonomy.Definition
	Message    string
}

// ValidateEdge searches the taxonomy (optionally limited to one category)
// for a definition admitting source → target. First match wins. A match
// of the reversed pair yields a direction-reversed diagnostic naming the
// definition. As a last advisory fallback, two services that both create
// network interfaces get a "possible but unvalidated" hint.
func ValidateEdge(sourceID, targetID string, cat taxonomy.Category) Edge {
	if d := taxonomy.Match(sourceID, targetID, cat); d != nil {
		return Edge{IsValid: true, Definition: d, Message: d.Description}
	}

	if d := taxonomy.Match(targetID, sourceID, cat); d != nil {
		return Edge{
			Message: fmt.Sprintf("connection direction is reversed: %s (%s) expects %s to point at %s",
				d.ID, d.Description, targetID, sourceID),
		}
	}

	if catalog.CreatesNetworkInterface(sourceID) && catalog.CreatesNetworkInterface(targetID) {
		return Edge{
			Message: fmt.Sprintf("%s and %s both create network interfaces; connectivity is possible but not validated",
				sourceID, targetID),
		}
	}

	return Edge{
		Message: fmt.Sprintf("no known relationship between %s and %s", sourceID, targetID),
	}
}
