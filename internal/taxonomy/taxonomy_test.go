package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsketch/engine/internal/catalog"
)

func TestEveryEndpointExistsInCatalog(t *testing.T) {
	for _, d := range Definitions() {
		for id := range d.Sources {
			_, ok := catalog.Describe(id)
			assert.True(t, ok, "%s: unknown source %q", d.ID, id)
		}
		for id := range d.Targets {
			_, ok := catalog.Describe(id)
			assert.True(t, ok, "%s: unknown target %q", d.ID, id)
		}
	}
}

func TestDefinitionsAreWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range Definitions() {
		assert.False(t, seen[d.ID], "duplicate definition id %q", d.ID)
		seen[d.ID] = true
		assert.NotEmpty(t, d.Description, d.ID)
		assert.NotEmpty(t, d.Sources, d.ID)
		assert.NotEmpty(t, d.Targets, d.ID)
		assert.Contains(t, []Cardinality{One, Many}, d.SourceCardinality, d.ID)
		assert.Contains(t, []Cardinality{One, Many}, d.TargetCardinality, d.ID)
	}
}

func TestMatchLoadBalancerToTarget(t *testing.T) {
	d := Match("alb", "ec2", CategoryAny)
	require.NotNil(t, d)
	assert.Equal(t, "lb-target", d.ID)
	assert.Equal(t, CategoryDataFlow, d.Category)
}

func TestMatchResolvesAliases(t *testing.T) {
	d := Match("application-load-balancer", "ec2-instance", CategoryAny)
	require.NotNil(t, d)
	assert.Equal(t, "lb-target", d.ID)
}

func TestMatchHonorsCategoryFilter(t *testing.T) {
	require.NotNil(t, Match("security-group", "ec2", CategoryAttachment))
	assert.Nil(t, Match("security-group", "ec2", CategoryDataFlow))
}

func TestMatchIsDirectional(t *testing.T) {
	assert.Nil(t, Match("ec2", "alb", CategoryAny))
	assert.Nil(t, Match("vpc", "internet-gateway", CategoryAny))
}
