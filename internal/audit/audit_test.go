package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsketch/engine/internal/diagram"
	"github.com/cloudsketch/engine/internal/result"
)

func newAuditor() *Auditor {
	return New(DefaultOptions())
}

func TestEmptyDiagramIsValid(t *testing.T) {
	rep := newAuditor().Audit(nil, nil, nil)
	assert.True(t, rep.IsValid)
	assert.Zero(t, rep.Score)
	assert.Zero(t, rep.MaxScore)
	assert.Empty(t, rep.PlacementIssues)
	assert.Empty(t, rep.ConnectionIssues)
}

func TestGlobalServiceNestedInNetworkFailsTheDiagram(t *testing.T) {
	nodes := []diagram.Node{
		{ID: "vpc-1", ServiceID: "vpc"},
		{ID: "dns-1", ServiceID: "route53", ParentID: "vpc-1"},
	}
	rep := newAuditor().Audit(nodes, nil, nil)
	assert.False(t, rep.IsValid)
	require.Len(t, rep.PlacementIssues, 1)
	assert.Equal(t, result.SeverityError, rep.PlacementIssues[0].Severity)
	assert.Equal(t, "dns-1", rep.PlacementIssues[0].NodeID)
	assert.NotEmpty(t, rep.Incorrect)
}

func TestWarningsDoNotFailTheDiagram(t *testing.T) {
	nodes := []diagram.Node{
		{ID: "vpc-1", ServiceID: "vpc"},
		{ID: "web-1", ServiceID: "ec2", ParentID: "vpc-1"}, // discouraged, not fatal
	}
	rep := newAuditor().Audit(nodes, nil, nil)
	assert.True(t, rep.IsValid)
	require.Len(t, rep.PlacementIssues, 1)
	assert.Equal(t, result.SeverityWarning, rep.PlacementIssues[0].Severity)
	assert.Empty(t, rep.Incorrect)
}

func TestGatewayToLoadBalancerIsANote(t *testing.T) {
	nodes := []diagram.Node{
		{ID: "vpc-1", ServiceID: "vpc"},
		{ID: "igw-1", ServiceID: "internet-gateway", ParentID: "vpc-1"},
		{ID: "lb-1", ServiceID: "alb", ParentID: "vpc-1"},
	}
	edges := []diagram.Edge{{ID: "e-1", Source: "igw-1", Target: "lb-1"}}
	rep := newAuditor().Audit(nodes, edges, nil)
	assert.True(t, rep.IsValid, "notes never fail a diagram")
	require.Len(t, rep.ConnectionIssues, 1)
	assert.Equal(t, result.SeverityNote, rep.ConnectionIssues[0].Severity)
}

func TestStructurallyNonsensicalEdgeIsError(t *testing.T) {
	nodes := []diagram.Node{
		{ID: "vpc-1", ServiceID: "vpc"},
		{ID: "sub-1", ServiceID: "subnet", ParentID: "vpc-1", SubnetVariant: diagram.SubnetPrivate},
		{ID: "db-1", ServiceID: "rds", ParentID: "sub-1"},
	}
	// Containment is expressed via parent links; a resource pointing at a
	// container is structural nonsense.
	edges := []diagram.Edge{{ID: "e-1", Source: "db-1", Target: "vpc-1"}}
	rep := newAuditor().Audit(nodes, edges, nil)
	assert.False(t, rep.IsValid)
	require.Len(t, rep.ConnectionIssues, 1)
	assert.Equal(t, result.SeverityError, rep.ConnectionIssues[0].Severity)
}

func TestMonitoringEdgesAreNotes(t *testing.T) {
	nodes := []diagram.Node{
		{ID: "mon-1", ServiceID: "cloudwatch"},
		{ID: "web-1", ServiceID: "ec2"},
	}
	// Reversed metrics flow: invalid, but monitoring shorthand is a note.
	edges := []diagram.Edge{{ID: "e-1", Source: "mon-1", Target: "web-1"}}
	rep := newAuditor().Audit(nodes, edges, nil)
	assert.True(t, rep.IsValid)
	require.Len(t, rep.ConnectionIssues, 1)
	assert.Equal(t, result.SeverityNote, rep.ConnectionIssues[0].Severity)
}

func TestFailedEdgeStillRaisesMaxScore(t *testing.T) {
	nodes := []diagram.Node{
		{ID: "web-1", ServiceID: "ec2"},
		{ID: "db-1", ServiceID: "rds"},
	}
	valid := newAuditor().Audit(nodes, []diagram.Edge{{ID: "e-1", Source: "web-1", Target: "db-1"}}, nil)
	reversed := newAuditor().Audit(nodes, []diagram.Edge{{ID: "e-1", Source: "db-1", Target: "web-1"}}, nil)

	assert.Equal(t, valid.MaxScore, reversed.MaxScore, "potential score is identical")
	assert.Equal(t, valid.Score, reversed.Score+EdgeBonus, "only the valid edge earns the bonus")
}

func TestDanglingEdgesAreSkipped(t *testing.T) {
	nodes := []diagram.Node{{ID: "web-1", ServiceID: "ec2"}}
	edges := []diagram.Edge{{ID: "e-1", Source: "web-1", Target: "ghost"}}
	rep := newAuditor().Audit(nodes, edges, nil)
	assert.True(t, rep.IsValid)
	assert.Empty(t, rep.ConnectionIssues)
}

func TestExpectedServicesNeverAffectValidity(t *testing.T) {
	nodes := []diagram.Node{{ID: "web-1", ServiceID: "ec2"}}
	rep := newAuditor().Audit(nodes, nil, []string{"ec2", "rds"})
	assert.True(t, rep.IsValid)
	assert.Equal(t, []string{"rds"}, rep.Missing)
	assert.Contains(t, rep.Correct, "expected service ec2 is present")
}

func TestPatternBonusRaisesScoreAndMaxScore(t *testing.T) {
	nodes := []diagram.Node{
		{ID: "vpc-1", ServiceID: "vpc"},
		{ID: "az-1", ServiceID: "availability-zone", ParentID: "vpc-1"},
		{ID: "az-2", ServiceID: "availability-zone", ParentID: "vpc-1"},
		{ID: "sub-1", ServiceID: "subnet", ParentID: "az-1", SubnetVariant: diagram.SubnetPrivate},
		{ID: "sub-2", ServiceID: "subnet", ParentID: "az-2", SubnetVariant: diagram.SubnetPrivate},
		{ID: "web-1", ServiceID: "ec2", ParentID: "sub-1"},
		{ID: "web-2", ServiceID: "ec2", ParentID: "sub-2"},
	}
	with := New(Options{DetectPatterns: true}).Audit(nodes, nil, nil)
	without := New(Options{DetectPatterns: false}).Audit(nodes, nil, nil)

	require.Len(t, with.Patterns, 1)
	assert.Equal(t, "ha-compute", with.Patterns[0].ID)
	assert.Equal(t, without.Score+with.Patterns[0].Points, with.Score)
	assert.Equal(t, without.MaxScore+with.Patterns[0].Points, with.MaxScore)
}

func TestSuggestionsFireForNonTrivialDiagrams(t *testing.T) {
	nodes := []diagram.Node{
		{ID: "vpc-1", ServiceID: "vpc"},
		{ID: "sub-1", ServiceID: "subnet", ParentID: "vpc-1"},
		{ID: "web-1", ServiceID: "ec2", ParentID: "sub-1"},
		{ID: "db-1", ServiceID: "rds", ParentID: "sub-1"},
	}
	rep := newAuditor().Audit(nodes, nil, nil)
	require.NotEmpty(t, rep.Suggestions)
	joined := ""
	for _, s := range rep.Suggestions {
		joined += s + "\n"
	}
	assert.Contains(t, joined, "availability zones")
	assert.Contains(t, joined, "private subnets")
}

func TestScoreIsFlooredAtZero(t *testing.T) {
	nodes := []diagram.Node{
		{ID: "vpc-1", ServiceID: "vpc"},
		{ID: "dns-1", ServiceID: "route53", ParentID: "vpc-1"},
		{ID: "iam-1", ServiceID: "iam", ParentID: "vpc-1"},
		{ID: "cdn-1", ServiceID: "cloudfront", ParentID: "vpc-1"},
	}
	rep := newAuditor().Audit(nodes, nil, nil)
	assert.False(t, rep.IsValid)
	assert.GreaterOrEqual(t, rep.Score, 0)
}
