// Package patterns runs whole-graph scans that award bonus credit for
// emergent best practices no single placement or edge rule can express.
// Detectors are pure and re-run from scratch on every audit.
package patterns

import (
	"fmt"

	"github.com/cloudsketch/engine/internal/catalog"
	"github.com/cloudsketch/engine/internal/diagram"
	"github.com/cloudsketch/engine/internal/result"
	"github.com/cloudsketch/engine/internal/rules"
)

const (
	HighAvailabilityBonus = 20
	SegmentationBonus     = 15
	// SegmentationPartialBonus rewards a public/private split with
	// security groups even when nothing sensitive is placed privately yet.
	SegmentationPartialBonus = 5
)

// DetectHighAvailability reports the first (highest-priority) multi-AZ
// redundancy found: a cross-zone database replica, one compute service
// spread over two zones, or a cache tier spread over two zones. At most
// one bonus is awarded regardless of how many pairs qualify.
func DetectHighAvailability(nodes []diagram.Node) (result.Pattern, bool) {
	idx := diagram.NewIndex(nodes)

	zoneOf := func(n *diagram.Node) string {
		z := idx.NearestAncestor(n, func(p *diagram.Node) bool {
			return catalog.Canonical(p.ServiceID) == "availability-zone"
		})
		if z == nil {
			return ""
		}
		return z.ID
	}

	// (a) primary database replicating across zones
	var primaryZones, replicaZones []string
	for i := range nodes {
		n := &nodes[i]
		z := zoneOf(n)
		if z == "" {
			continue
		}
		switch catalog.Canonical(n.ServiceID) {
		case "rds":
			primaryZones = append(primaryZones, z)
		case "rds-read-replica":
			replicaZones = append(replicaZones, z)
		}
	}
	for _, pz := range primaryZones {
		for _, rz := range replicaZones {
			if pz != rz {
				return result.Pattern{
					ID:          "ha-db-replica",
					Description: "primary database and read replica run in separate availability zones",
					Points:      HighAvailabilityBonus,
				}, true
			}
		}
	}

	// (b) one compute service spread over two or more zones
	computeZones := make(map[string]map[string]bool)
	for i := range nodes {
		n := &nodes[i]
		svc := catalog.Canonical(n.ServiceID)
		desc, ok := catalog.Describe(svc)
		if !ok || desc.Category != catalog.CategoryCompute {
			continue
		}
		z := zoneOf(n)
		if z == "" {
			continue
		}
		if computeZones[svc] == nil {
			computeZones[svc] = make(map[string]bool)
		}
		computeZones[svc][z] = true
		if len(computeZones[svc]) >= 2 {
			return result.Pattern{
				ID:          "ha-compute",
				Description: fmt.Sprintf("%s instances run in multiple availability zones", desc.Name),
				Points:      HighAvailabilityBonus,
			}, true
		}
	}

	// (c) cache tier spread over two or more zones
	cacheCount := 0
	cacheZones := make(map[string]bool)
	for i := range nodes {
		n := &nodes[i]
		desc, ok := catalog.Describe(n.ServiceID)
		if !ok || desc.Category != catalog.CategoryCache {
			continue
		}
		z := zoneOf(n)
		if z == "" {
			continue
		}
		cacheCount++
		cacheZones[z] = true
		if cacheCount >= 2 && len(cacheZones) >= 2 {
			return result.Pattern{
				ID:          "ha-cache",
				Description: "cache nodes run in multiple availability zones",
				Points:      HighAvailabilityBonus,
			}, true
		}
	}

	return result.Pattern{}, false
}

// DetectSegmentation rewards a public/private subnet split. The full
// bonus requires at least one security-sensitive service (database,
// orchestrator, broker, or search engine) resolving to a private subnet;
// a security group alongside the bare split earns a lesser bonus.
func DetectSegmentation(nodes []diagram.Node) (result.Pattern, bool) {
	idx := diagram.NewIndex(nodes)

	hasPublic, hasPrivate, hasSecurityGroup := false, false, false
	for i := range nodes {
		n := &nodes[i]
		switch nodeKey(n) {
		case rules.KeySubnetPublic:
			hasPublic = true
		case rules.KeySubnetPrivate:
			hasPrivate = true
		case rules.KeySecurityGroup:
			hasSecurityGroup = true
		}
	}
	if !hasPublic || !hasPrivate {
		return result.Pattern{}, false
	}

	for i := range nodes {
		n := &nodes[i]
		desc, ok := catalog.Describe(n.ServiceID)
		if !ok || !desc.SecuritySensitive() {
			continue
		}
		sub := idx.NearestAncestor(n, func(p *diagram.Node) bool {
			return rules.SubnetKey(nodeKey(p))
		})
		if sub != nil && nodeKey(sub) == rules.KeySubnetPrivate {
			return result.Pattern{
				ID:          "segmentation",
				Description: "network is segmented and sensitive services sit in a private subnet",
				Points:      SegmentationBonus,
			}, true
		}
	}

	if hasSecurityGroup {
		return result.Pattern{
			ID:          "segmentation-partial",
			Description: "public and private subnets are split and security groups are in place",
			Points:      SegmentationPartialBonus,
		}, true
	}
	return result.Pattern{}, false
}

// nodeKey resolves a node to its container rule key, folding the subnet
// variant into the key the same way placement validation does.
func nodeKey(n *diagram.Node) rules.Key {
	return rules.EffectiveKey(n.ServiceID, n.SubnetVariant)
}
