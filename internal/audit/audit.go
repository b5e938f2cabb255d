// Package audit orchestrates placement validation, edge validation, and
// pattern detection over a full snapshot into one explainable report.
// Auditing is stateless: every call recomputes the report from scratch.
package audit

import (
	"fmt"

	"github.com/cloudsketch/engine/internal/catalog"
	"github.com/cloudsketch/engine/internal/diagram"
	"github.com/cloudsketch/engine/internal/patterns"
	"github.com/cloudsketch/engine/internal/result"
	"github.com/cloudsketch/engine/internal/rules"
	"github.com/cloudsketch/engine/internal/taxonomy"
	"github.com/cloudsketch/engine/internal/validate"
)

const (
	// EdgeBonus is credited per valid connection; the same amount raises
	// MaxScore whether the connection passes or fails, so unmet
	// connections visibly cost potential score.
	EdgeBonus = 5
	// ExpectedBonus is credited per expected service present in the
	// snapshot.
	ExpectedBonus = 5
)

// Auditor audits diagram snapshots.
type Auditor struct {
	opts Options
}

// New returns an auditor with the given options.
func New(opts Options) *Auditor {
	if opts.SuggestionThreshold <= 0 {
		opts.SuggestionThreshold = DefaultOptions().SuggestionThreshold
	}
	return &Auditor{opts: opts}
}

// Audit evaluates the snapshot in one pass: placements, connections,
// optional expected-service coverage, and pattern bonuses. Validity is
// governed by error-severity issues alone; warnings and notes only shape
// the score and the feedback lists.
func (a *Auditor) Audit(nodes []diagram.Node, edges []diagram.Edge, expected []string) *result.AuditReport {
	rep := &result.AuditReport{}
	idx := diagram.NewIndex(nodes)

	// 1. Placements
	for i := range nodes {
		n := &nodes[i]
		containerType := ""
		variant := diagram.SubnetVariant("")
		if p := idx.Parent(n); p != nil {
			containerType = p.ServiceID
			variant = p.SubnetVariant
		}
		v := validate.ValidatePlacement(n.ServiceID, containerType, variant)
		rep.MaxScore += catalog.BasePoints(n.ServiceID)
		if v.IsValid {
			rep.Score += v.Points
			rep.Correct = append(rep.Correct, fmt.Sprintf("%s: %s", n.ID, v.Message))
			continue
		}
		rep.Score += v.Points
		rep.PlacementIssues = append(rep.PlacementIssues, result.Issue{
			Type:     "placement",
			Severity: v.Severity,
			NodeID:   n.ID,
			Message:  v.Message,
		})
		if v.Severity == result.SeverityError {
			rep.Incorrect = append(rep.Incorrect, fmt.Sprintf("%s: %s", n.ID, v.Message))
		}
	}

	// 2. Connections. Edges with unresolvable endpoints are skipped.
	for _, e := range edges {
		src := idx.Node(e.Source)
		tgt := idx.Node(e.Target)
		if src == nil || tgt == nil {
			continue
		}
		rep.MaxScore += EdgeBonus
		ev := validate.ValidateEdge(src.ServiceID, tgt.ServiceID, taxonomy.CategoryAny)
		if ev.IsValid {
			rep.Score += EdgeBonus
			rep.Correct = append(rep.Correct, fmt.Sprintf("%s → %s: %s", src.ID, tgt.ID, ev.Message))
			continue
		}
		rep.ConnectionIssues = append(rep.ConnectionIssues, result.Issue{
			Type:     "connection",
			Severity: classifyConnection(src, tgt),
			EdgeID:   e.ID,
			Message:  ev.Message,
		})
	}

	// 3. Expected services
	present := make(map[string]bool, len(nodes))
	for i := range nodes {
		present[catalog.Canonical(nodes[i].ServiceID)] = true
	}
	for _, want := range expected {
		rep.MaxScore += ExpectedBonus
		if present[catalog.Canonical(want)] {
			rep.Score += ExpectedBonus
			rep.Correct = append(rep.Correct, fmt.Sprintf("expected service %s is present", want))
		} else {
			rep.Missing = append(rep.Missing, want)
		}
	}

	// 4. Pattern bonuses
	haDetected, segDetected := false, false
	if a.opts.DetectPatterns {
		if p, ok := patterns.DetectHighAvailability(nodes); ok {
			haDetected = true
			rep.Patterns = append(rep.Patterns, p)
			rep.Score += p.Points
			rep.MaxScore += p.Points
			rep.Correct = append(rep.Correct, p.Description)
		}
		if p, ok := patterns.DetectSegmentation(nodes); ok {
			segDetected = true
			rep.Patterns = append(rep.Patterns, p)
			rep.Score += p.Points
			rep.MaxScore += p.Points
			rep.Correct = append(rep.Correct, p.Description)
		}
	}

	// 5. Suggestions
	if len(rep.PlacementIssues) > 0 {
		rep.Suggestions = append(rep.Suggestions, "review the flagged resource placements")
	}
	if len(rep.ConnectionIssues) > 0 {
		rep.Suggestions = append(rep.Suggestions, "review the flagged connections")
	}
	if a.opts.DetectPatterns && len(nodes) >= a.opts.SuggestionThreshold {
		if !haDetected {
			rep.Suggestions = append(rep.Suggestions, "spread compute and data resources across availability zones for high availability")
		}
		if !segDetected {
			rep.Suggestions = append(rep.Suggestions, "split the network into public and private subnets and keep data stores private")
		}
	}

	// 6. Validity and score floor
	rep.IsValid = result.ErrorCount(rep.PlacementIssues) == 0 &&
		result.ErrorCount(rep.ConnectionIssues) == 0
	if rep.Score < 0 {
		rep.Score = 0
	}
	return rep
}

// classifyConnection grades a failed connection. It is deliberately
// distinct from placement severity: accepted shorthand becomes a note,
// structurally nonsensical edges become errors, the rest warnings.
func classifyConnection(src, tgt *diagram.Node) result.Severity {
	s := catalog.Canonical(src.ServiceID)
	t := catalog.Canonical(tgt.ServiceID)
	sd, sKnown := catalog.Describe(s)
	td, tKnown := catalog.Describe(t)

	// Accepted shorthand: gateway feeding a load balancer, a database
	// replicating to itself, or anything wired to monitoring.
	if (s == "internet-gateway" || s == "nat-gateway") && (t == "alb" || t == "nlb") {
		return result.SeverityNote
	}
	if s == t && sKnown && sd.Category == catalog.CategoryDatabase {
		return result.SeverityNote
	}
	if (sKnown && sd.Category == catalog.CategoryMonitoring) || (tKnown && td.Category == catalog.CategoryMonitoring) {
		return result.SeverityNote
	}

	// Containment is expressed through parent links, not edges.
	srcContainer := containerCapable(src)
	tgtContainer := containerCapable(tgt)
	if tgtContainer && !srcContainer && s != "internet-gateway" {
		return result.SeverityError
	}
	if srcContainer && !tgtContainer {
		return result.SeverityError
	}

	return result.SeverityWarning
}

// containerCapable resolves a node to its container rule key and reports
// whether the backing service can hold children.
func containerCapable(n *diagram.Node) bool {
	key := rules.EffectiveKey(n.ServiceID, n.SubnetVariant)
	svc, ok := rules.ContainerService(key)
	if !ok {
		return false
	}
	d, found := catalog.Describe(svc)
	return found && d.ContainerCapable
}
