// Package validate resolves single placements and single connections
// against the static catalog, containment, and taxonomy tables. All
// functions are pure; outcomes are returned as severity-tagged data and
// never as errors.
package validate

import (
	"fmt"

	"github.com/cloudsketch/engine/internal/catalog"
	"github.com/cloudsketch/engine/internal/diagram"
	"github.com/cloudsketch/engine/internal/result"
	"github.com/cloudsketch/engine/internal/rules"
)

// ErrorPenalty is the signed point award for an error-severity placement.
const ErrorPenalty = -5

// Placement is the outcome of validating one node against its container.
// Severity is meaningful only when IsValid is false.
type Placement struct {
	IsValid    bool
	Severity   result.Severity
	Points     int
	Message    string
	Descriptor *catalog.ServiceDescriptor
}

// ValidatePlacement decides whether serviceID may be placed inside
// containerType. An empty containerType means the canvas root; a generic
// subnet container is rewritten to its variant-specific rules when the
// variant is known. Unknown services and containers degrade gracefully.
func ValidatePlacement(serviceID, containerType string, variant diagram.SubnetVariant) Placement {
	svc := catalog.Canonical(serviceID)
	desc, known := catalog.Describe(svc)
	key := rules.EffectiveKey(containerType, variant)

	var descp *catalog.ServiceDescriptor
	if known {
		d := desc
		descp = &d
	}
	name := svc
	if known && desc.Name != "" {
		name = desc.Name
	}

	// Containment is only meaningful into a container-capable service.
	if csvc, ok := rules.ContainerService(key); ok {
		if cd, found := catalog.Describe(csvc); found && !cd.ContainerCapable {
			return Placement{
				Severity:   result.SeverityError,
				Points:     ErrorPenalty,
				Message:    fmt.Sprintf("%s cannot contain other resources; attach it with a connection instead", cd.Name),
				Descriptor: descp,
			}
		}
	}

	rule := rules.For(key)

	if msg, rejected := rule.Rejected[svc]; rejected {
		sev := classifyPlacement(desc, known, key, true)
		return Placement{
			Severity:   sev,
			Points:     penalty(sev),
			Message:    msg,
			Descriptor: descp,
		}
	}

	if rule.Allowed[svc] {
		return Placement{
			IsValid:    true,
			Points:     catalog.BasePoints(svc),
			Message:    fmt.Sprintf("%s placed correctly in %s", name, key),
			Descriptor: descp,
		}
	}

	if rule.Policy == rules.Allow {
		return Placement{
			IsValid:    true,
			Points:     catalog.BasePoints(svc),
			Message:    fmt.Sprintf("%s placed on the canvas", name),
			Descriptor: descp,
		}
	}

	// Unlisted in a deny-by-default container.
	sev := classifyPlacement(desc, known, key, false)
	return Placement{
		Severity:   sev,
		Points:     penalty(sev),
		Message:    denyMessage(name, desc, known, key),
		Descriptor: descp,
	}
}

// classifyPlacement grades an invalid placement. Only hard scope and
// security violations become errors; everything else is a warning.
// Notes are reserved for the whole-diagram connection classifier.
func classifyPlacement(desc catalog.ServiceDescriptor, known bool, key rules.Key, explicitlyRejected bool) result.Severity {
	if !known {
		return result.SeverityWarning
	}
	switch {
	case (desc.Scope == catalog.ScopeGlobal || desc.Scope == catalog.ScopeEdge) && rules.NetworkConstruct(key):
		return result.SeverityError
	case desc.Scope == catalog.ScopeRegional && rules.SubnetKey(key):
		return result.SeverityError
	case desc.DatabaseFamily() && key == rules.KeySubnetPublic:
		return result.SeverityError
	}
	if !explicitlyRejected {
		// Default-deny: only zone- and VPC-scoped services may float into
		// unlisted containers at warning level.
		if desc.Scope != catalog.ScopeAZ && desc.Scope != catalog.ScopeVPC {
			return result.SeverityError
		}
	}
	return result.SeverityWarning
}

func penalty(sev result.Severity) int {
	if sev == result.SeverityError {
		return ErrorPenalty
	}
	return 0
}

func denyMessage(name string, desc catalog.ServiceDescriptor, known bool, key rules.Key) string {
	if !known {
		return fmt.Sprintf("%s is not a recognized service; it is not usually placed in %s", name, key)
	}
	switch desc.Scope {
	case catalog.ScopeGlobal, catalog.ScopeEdge:
		return fmt.Sprintf("%s is a %s-scoped service and cannot be nested inside %s", name, desc.Scope, key)
	case catalog.ScopeRegional:
		if rules.SubnetKey(key) {
			return fmt.Sprintf("%s is a regional service and cannot live inside a subnet", name)
		}
		return fmt.Sprintf("%s is a regional service and does not belong inside %s", name, key)
	default:
		return fmt.Sprintf("%s is not usually placed in %s", name, key)
	}
}
