// Package rules holds the containment rule table: which services may be
// nested inside which container, with explicit rejection messages for
// the placements learners most often get wrong. The table is immutable
// after init.
package rules

import (
	"github.com/cloudsketch/engine/internal/diagram"
)

// Key identifies one container rule set.
type Key string

const (
	KeyCanvas        Key = "canvas"
	KeyRegion        Key = "region"
	KeyAZ            Key = "availability-zone"
	KeyVPC           Key = "vpc"
	KeySubnet        Key = "subnet"
	KeySubnetPublic  Key = "subnet-public"
	KeySubnetPrivate Key = "subnet-private"
	KeySecurityGroup Key = "security-group"
)

// Policy decides what happens to a service that is neither allowed nor
// rejected explicitly. Only the canvas allows by default; every other
// container denies by default so new container types fail safe.
type Policy int

const (
	Deny Policy = iota
	Allow
)

// Rule is the containment rule for one container key. Allowed and
// Rejected are disjoint; the disjointness is asserted by tests.
type Rule struct {
	Policy   Policy
	Allowed  map[string]bool
	Rejected map[string]string
}

// containerAliases maps editor spellings of container types to keys.
var containerAliases = map[string]Key{
	"canvas":            KeyCanvas,
	"":                  KeyCanvas,
	"region":            KeyRegion,
	"az":                KeyAZ,
	"availabilityZone":  KeyAZ,
	"availability-zone": KeyAZ,
	"vpc":               KeyVPC,
	"subnet":            KeySubnet,
	"subnet-public":     KeySubnetPublic,
	"subnetPublic":      KeySubnetPublic,
	"publicSubnet":      KeySubnetPublic,
	"public-subnet":     KeySubnetPublic,
	"subnet-private":    KeySubnetPrivate,
	"subnetPrivate":     KeySubnetPrivate,
	"privateSubnet":     KeySubnetPrivate,
	"private-subnet":    KeySubnetPrivate,
	"security-group":    KeySecurityGroup,
	"securityGroup":     KeySecurityGroup,
}

var table = map[Key]Rule{
	KeyCanvas: {
		Policy:   Allow,
		Allowed:  map[string]bool{},
		Rejected: map[string]string{},
	},
	KeyRegion: {
		Policy: Deny,
		Allowed: set(
			"availability-zone", "vpc", "s3", "dynamodb", "lambda",
			"api-gateway", "sqs", "sns", "kinesis", "kms", "cloudwatch",
			"ecs", "eks",
		),
		Rejected: map[string]string{
			"route53":    "Route 53 is a global service and sits outside any region",
			"cloudfront": "CloudFront runs at edge locations, not inside a region",
			"iam":        "IAM is global; roles and policies are not regional resources",
			"waf":        "WAF attaches at the edge, outside any single region",
		},
	},
	KeyAZ: {
		Policy: Deny,
		Allowed: set(
			"subnet", "nat-gateway", "ebs",
		),
		Rejected: map[string]string{
			"vpc":    "a VPC spans availability zones; draw zones inside the VPC",
			"region": "a region contains zones, not the other way around",
		},
	},
	KeyVPC: {
		Policy: Deny,
		Allowed: set(
			"availability-zone", "subnet", "security-group",
			"internet-gateway", "alb", "nlb", "vpc-endpoint",
		),
		Rejected: map[string]string{
			"s3":          "S3 buckets live outside the VPC; reach them through a gateway endpoint",
			"dynamodb":    "DynamoDB is a regional service; connect via a VPC endpoint instead",
			"route53":     "Route 53 is global and cannot be nested in a VPC",
			"cloudfront":  "CloudFront is an edge service and cannot be nested in a VPC",
			"iam":         "IAM is global and cannot be nested in a VPC",
			"api-gateway": "API Gateway is regional; place it outside and connect to VPC resources",
		},
	},
	KeySubnet: {
		Policy: Deny,
		Allowed: set(
			"ec2", "rds", "rds-read-replica", "neptune", "redshift",
			"elasticache", "opensearch", "msk", "lambda", "ecs", "eks",
			"nat-gateway", "alb", "nlb", "efs",
		),
		Rejected: map[string]string{
			"internet-gateway": "an internet gateway attaches to the VPC, not to a subnet",
			"s3":               "S3 buckets cannot be placed in a subnet",
			"dynamodb":         "DynamoDB tables cannot be placed in a subnet",
		},
	},
	KeySubnetPublic: {
		Policy: Deny,
		Allowed: set(
			"ec2", "nat-gateway", "alb", "nlb",
		),
		Rejected: map[string]string{
			"rds":              "never expose a database in a public subnet; use a private subnet",
			"rds-read-replica": "read replicas belong in a private subnet",
			"neptune":          "never expose a graph database in a public subnet",
			"redshift":         "never expose a data warehouse in a public subnet",
			"elasticache":      "cache clusters belong in a private subnet",
			"opensearch":       "search domains belong in a private subnet",
			"msk":              "broker clusters belong in a private subnet",
			"internet-gateway": "an internet gateway attaches to the VPC, not to a subnet",
		},
	},
	KeySubnetPrivate: {
		Policy: Deny,
		Allowed: set(
			"ec2", "rds", "rds-read-replica", "neptune", "redshift",
			"elasticache", "opensearch", "msk", "lambda", "ecs", "eks", "efs",
		),
		Rejected: map[string]string{
			"internet-gateway": "an internet gateway attaches to the VPC, not to a subnet",
			"nat-gateway":      "a NAT gateway belongs in a public subnet so it can reach the internet",
			"alb":              "an internet-facing load balancer belongs in public subnets",
		},
	},
	KeySecurityGroup: {
		Policy:   Deny,
		Allowed:  map[string]bool{},
		Rejected: map[string]string{},
	},
}

func set(ids ...string) map[string]bool {
	m := make(map[string]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// CanonicalKey resolves a container type string to a rule key. Unknown
// container types map to the canvas, the permissive root.
func CanonicalKey(containerType string) Key {
	if k, ok := containerAliases[containerType]; ok {
		return k
	}
	return Key(containerType)
}

// EffectiveKey canonicalizes the container type and, for a generic
// subnet with a known variant, rewrites to the variant-specific key.
func EffectiveKey(containerType string, variant diagram.SubnetVariant) Key {
	k := CanonicalKey(containerType)
	if k == KeySubnet {
		switch variant {
		case diagram.SubnetPublic:
			return KeySubnetPublic
		case diagram.SubnetPrivate:
			return KeySubnetPrivate
		}
	}
	return k
}

// For returns the rule for the given key, falling back to the canvas
// rule when no container matches.
func For(key Key) Rule {
	if r, ok := table[key]; ok {
		return r
	}
	return table[KeyCanvas]
}

// Known reports whether the key has its own rule entry.
func Known(key Key) bool {
	_, ok := table[key]
	return ok
}

// Keys returns every container key with a rule entry.
func Keys() []Key {
	out := make([]Key, 0, len(table))
	for k := range table {
		out = append(out, k)
	}
	return out
}

// ContainerService maps a rule key back to the catalog service that
// represents it, for container-capability checks. The canvas has no
// backing service.
func ContainerService(key Key) (string, bool) {
	switch key {
	case KeyCanvas:
		return "", false
	case KeySubnetPublic, KeySubnetPrivate:
		return "subnet", true
	default:
		return string(key), true
	}
}

// NetworkConstruct reports whether the key is a network-level container
// (VPC, subnet, zone, or security group) for severity classification.
func NetworkConstruct(key Key) bool {
	switch key {
	case KeyVPC, KeySubnet, KeySubnetPublic, KeySubnetPrivate, KeyAZ, KeySecurityGroup:
		return true
	}
	return false
}

// SubnetKey reports whether the key is any subnet flavor.
func SubnetKey(key Key) bool {
	return key == KeySubnet || key == KeySubnetPublic || key == KeySubnetPrivate
}
