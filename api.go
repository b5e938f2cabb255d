// Package engine validates and scores architecture diagrams: it decides
// whether a snapshot of typed, nested resource nodes and typed
// connections conforms to the platform's containment and connectivity
// rules, grades the layout, and produces severity-graded feedback.
//
// All entry points are pure functions over immutable startup tables;
// they are safe for unlimited concurrent callers. The only stateful
// value is Score, and it is updated by replacement.
package engine

import (
	"github.com/cloudsketch/engine/internal/audit"
	"github.com/cloudsketch/engine/internal/catalog"
	"github.com/cloudsketch/engine/internal/diagram"
	"github.com/cloudsketch/engine/internal/result"
	"github.com/cloudsketch/engine/internal/score"
	"github.com/cloudsketch/engine/internal/taxonomy"
	"github.com/cloudsketch/engine/internal/validate"
)

// Input snapshot types.
type (
	Node          = diagram.Node
	Edge          = diagram.Edge
	Snapshot      = diagram.Snapshot
	SubnetVariant = diagram.SubnetVariant
)

const (
	SubnetPublic  = diagram.SubnetPublic
	SubnetPrivate = diagram.SubnetPrivate
)

// Outcome types.
type (
	ServiceDescriptor   = catalog.ServiceDescriptor
	PlacementValidation = validate.Placement
	EdgeValidation      = validate.Edge
	EdgeDefinition      = taxonomy.Definition
	EdgeCategory        = taxonomy.Category
	Score               = score.Score
	Severity            = result.Severity
	Issue               = result.Issue
	AuditReport         = result.AuditReport
)

const (
	SeverityError   = result.SeverityError
	SeverityWarning = result.SeverityWarning
	SeverityNote    = result.SeverityNote
)

// DescribeService looks up a service descriptor by id; aliases resolve
// to their canonical spelling.
func DescribeService(serviceID string) (ServiceDescriptor, bool) {
	return catalog.Describe(serviceID)
}

// ValidatePlacement decides whether serviceID may be placed inside
// containerType (empty means the canvas root). A generic subnet
// container with a known variant uses the variant-specific rules.
func ValidatePlacement(serviceID, containerType string, variant SubnetVariant) PlacementValidation {
	return validate.ValidatePlacement(serviceID, containerType, variant)
}

// ValidateEdge decides whether a connection from source to target
// matches a known edge definition. Pass taxonomy category "" to search
// every category.
func ValidateEdge(sourceServiceID, targetServiceID string, category EdgeCategory) EdgeValidation {
	return validate.ValidateEdge(sourceServiceID, targetServiceID, category)
}

// CreateInitialScore returns a fresh session score.
func CreateInitialScore() Score {
	return score.New()
}

// UpdateScore folds one placement outcome into the score and returns the
// new value without mutating the input.
func UpdateScore(s Score, v PlacementValidation, serviceID, containerType string) Score {
	return score.Update(s, v, serviceID, containerType)
}

// AuditDiagram evaluates a full snapshot in one stateless pass.
// expectedServiceIDs may be nil.
func AuditDiagram(nodes []Node, edges []Edge, expectedServiceIDs []string) *AuditReport {
	return audit.New(audit.DefaultOptions()).Audit(nodes, edges, expectedServiceIDs)
}
