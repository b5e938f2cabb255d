package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsketch/engine/internal/diagram"
)

// twoZoneBase builds vpc -> az-1/az-2 -> one private subnet per zone.
func twoZoneBase() []diagram.Node {
	return []diagram.Node{
		{ID: "vpc-1", ServiceID: "vpc"},
		{ID: "az-1", ServiceID: "availability-zone", ParentID: "vpc-1"},
		{ID: "az-2", ServiceID: "availability-zone", ParentID: "vpc-1"},
		{ID: "sub-1", ServiceID: "subnet", ParentID: "az-1", SubnetVariant: diagram.SubnetPrivate},
		{ID: "sub-2", ServiceID: "subnet", ParentID: "az-2", SubnetVariant: diagram.SubnetPrivate},
	}
}

func TestHAComputeAcrossZones(t *testing.T) {
	nodes := append(twoZoneBase(),
		diagram.Node{ID: "web-1", ServiceID: "ec2", ParentID: "sub-1"},
		diagram.Node{ID: "web-2", ServiceID: "ec2", ParentID: "sub-2"},
	)
	p, ok := DetectHighAvailability(nodes)
	require.True(t, ok)
	assert.Equal(t, "ha-compute", p.ID)
	assert.Equal(t, HighAvailabilityBonus, p.Points)
}

func TestHASingleBonusForManyQualifyingPairs(t *testing.T) {
	nodes := append(twoZoneBase(),
		diagram.Node{ID: "web-1", ServiceID: "ec2", ParentID: "sub-1"},
		diagram.Node{ID: "web-2", ServiceID: "ec2", ParentID: "sub-2"},
		diagram.Node{ID: "web-3", ServiceID: "ec2", ParentID: "sub-1"},
		diagram.Node{ID: "web-4", ServiceID: "ec2", ParentID: "sub-2"},
	)
	p, ok := DetectHighAvailability(nodes)
	require.True(t, ok, "many qualifying pairs still yield exactly one bonus")
	assert.Equal(t, "ha-compute", p.ID)
}

func TestHAReplicaTakesPriority(t *testing.T) {
	nodes := append(twoZoneBase(),
		diagram.Node{ID: "web-1", ServiceID: "ec2", ParentID: "sub-1"},
		diagram.Node{ID: "web-2", ServiceID: "ec2", ParentID: "sub-2"},
		diagram.Node{ID: "db-1", ServiceID: "rds", ParentID: "sub-1"},
		diagram.Node{ID: "db-2", ServiceID: "rds-read-replica", ParentID: "sub-2"},
	)
	p, ok := DetectHighAvailability(nodes)
	require.True(t, ok)
	assert.Equal(t, "ha-db-replica", p.ID)
}

func TestHACacheAcrossZones(t *testing.T) {
	nodes := append(twoZoneBase(),
		diagram.Node{ID: "cache-1", ServiceID: "elasticache", ParentID: "sub-1"},
		diagram.Node{ID: "cache-2", ServiceID: "elasticache", ParentID: "sub-2"},
	)
	p, ok := DetectHighAvailability(nodes)
	require.True(t, ok)
	assert.Equal(t, "ha-cache", p.ID)
}

func TestHARequiresDistinctZones(t *testing.T) {
	nodes := append(twoZoneBase(),
		diagram.Node{ID: "web-1", ServiceID: "ec2", ParentID: "sub-1"},
		diagram.Node{ID: "web-2", ServiceID: "ec2", ParentID: "sub-1"},
	)
	_, ok := DetectHighAvailability(nodes)
	assert.False(t, ok, "two instances in one zone are not redundant")
}

func TestHARequiresZoneAncestors(t *testing.T) {
	nodes := []diagram.Node{
		{ID: "web-1", ServiceID: "ec2"},
		{ID: "web-2", ServiceID: "ec2"},
	}
	_, ok := DetectHighAvailability(nodes)
	assert.False(t, ok)
}

func TestSegmentationWithProtectedService(t *testing.T) {
	nodes := []diagram.Node{
		{ID: "vpc-1", ServiceID: "vpc"},
		{ID: "pub", ServiceID: "subnet", ParentID: "vpc-1", SubnetVariant: diagram.SubnetPublic},
		{ID: "priv", ServiceID: "subnet", ParentID: "vpc-1", SubnetVariant: diagram.SubnetPrivate},
		{ID: "db-1", ServiceID: "rds", ParentID: "priv"},
	}
	p, ok := DetectSegmentation(nodes)
	require.True(t, ok)
	assert.Equal(t, "segmentation", p.ID)
	assert.Equal(t, SegmentationBonus, p.Points)
}

func TestSegmentationPartialWithSecurityGroup(t *testing.T) {
	nodes := []diagram.Node{
		{ID: "vpc-1", ServiceID: "vpc"},
		{ID: "pub", ServiceID: "subnet", ParentID: "vpc-1", SubnetVariant: diagram.SubnetPublic},
		{ID: "priv", ServiceID: "subnet", ParentID: "vpc-1", SubnetVariant: diagram.SubnetPrivate},
		{ID: "sg-1", ServiceID: "security-group", ParentID: "vpc-1"},
		{ID: "db-1", ServiceID: "rds", ParentID: "pub"},
	}
	p, ok := DetectSegmentation(nodes)
	require.True(t, ok, "split plus security group earns the lesser bonus")
	assert.Equal(t, "segmentation-partial", p.ID)
	assert.Equal(t, SegmentationPartialBonus, p.Points)
}

func TestSegmentationNeedsBothVariants(t *testing.T) {
	nodes := []diagram.Node{
		{ID: "vpc-1", ServiceID: "vpc"},
		{ID: "pub", ServiceID: "subnet", ParentID: "vpc-1", SubnetVariant: diagram.SubnetPublic},
		{ID: "db-1", ServiceID: "rds", ParentID: "pub"},
	}
	_, ok := DetectSegmentation(nodes)
	assert.False(t, ok)
}
