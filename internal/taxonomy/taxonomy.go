// Package taxonomy defines the typed connection categories the engine
// validates edges against. Definitions are matched first-wins in table
// order; the table is immutable after init.
package taxonomy

import "github.com/cloudsketch/engine/internal/catalog"

// Category classifies a connection definition.
type Category string

const (
	CategoryAttachment Category = "attachment"
	CategoryEndpoint   Category = "endpoint"
	CategoryTrust      Category = "trust"
	CategoryDataFlow   Category = "data-flow"

	// CategoryAny matches definitions of every category.
	CategoryAny Category = ""
)

// Cardinality describes how many endpoints a side of a definition admits.
type Cardinality string

const (
	One  Cardinality = "one"
	Many Cardinality = "many"
)

// Definition is one typed connection rule.
type Definition struct {
	ID                string
	Category          Category
	Description       string
	Sources           map[string]bool
	Targets           map[string]bool
	SourceCardinality Cardinality
	TargetCardinality Cardinality

	// Advisory flags surfaced to the editor, never enforced here.
	RequiresSubnet bool
	RequiresVPC    bool
	CrossAZ        bool
	CrossVPC       bool
	CrossRegion    bool
}

var definitions = []Definition{
	{
		ID:                "igw-attachment",
		Category:          CategoryAttachment,
		Description:       "internet gateway attached to VPC",
		Sources:           set("internet-gateway"),
		Targets:           set("vpc"),
		SourceCardinality: One,
		TargetCardinality: One,
	},
	{
		ID:                "sg-attachment",
		Category:          CategoryAttachment,
		Description:       "security group protecting a resource",
		Sources:           set("security-group"),
		Targets:           set("ec2", "rds", "rds-read-replica", "alb", "nlb", "elasticache", "lambda", "opensearch", "msk", "redshift", "neptune", "ecs", "eks", "efs"),
		SourceCardinality: Many,
		TargetCardinality: Many,
		RequiresVPC:       true,
	},
	{
		ID:                "waf-attachment",
		Category:          CategoryAttachment,
		Description:       "WAF protecting an entry point",
		Sources:           set("waf"),
		Targets:           set("cloudfront", "alb", "api-gateway"),
		SourceCardinality: One,
		TargetCardinality: Many,
	},
	{
		ID:                "vpc-endpoint-access",
		Category:          CategoryEndpoint,
		Description:       "private access to a regional service",
		Sources:           set("vpc-endpoint"),
		Targets:           set("s3", "dynamodb", "sqs", "sns", "kinesis", "kms"),
		SourceCardinality: One,
		TargetCardinality: One,
		RequiresVPC:       true,
	},
	{
		ID:                "iam-trust",
		Category:          CategoryTrust,
		Description:       "IAM role assumed by a workload",
		Sources:           set("iam"),
		Targets:           set("ec2", "lambda", "ecs", "eks", "rds", "s3", "dynamodb", "sqs", "sns", "kinesis"),
		SourceCardinality: Many,
		TargetCardinality: Many,
	},
	{
		ID:                "dns-routing",
		Category:          CategoryDataFlow,
		Description:       "DNS routing to an entry point",
		Sources:           set("route53"),
		Targets:           set("alb", "nlb", "cloudfront", "api-gateway", "s3"),
		SourceCardinality: One,
		TargetCardinality: Many,
	},
	{
		ID:                "cdn-origin",
		Category:          CategoryDataFlow,
		Description:       "CDN pulling from an origin",
		Sources:           set("cloudfront"),
		Targets:           set("alb", "s3", "api-gateway"),
		SourceCardinality: One,
		TargetCardinality: Many,
	},
	{
		ID:                "lb-target",
		Category:          CategoryDataFlow,
		Description:       "load balancer to target",
		Sources:           set("alb", "nlb"),
		Targets:           set("ec2", "ecs", "eks", "lambda"),
		SourceCardinality: One,
		TargetCardinality: Many,
		RequiresSubnet:    true,
		CrossAZ:           true,
	},
	{
		ID:                "api-integration",
		Category:          CategoryDataFlow,
		Description:       "API gateway integration",
		Sources:           set("api-gateway"),
		Targets:           set("lambda", "alb", "nlb", "ec2"),
		SourceCardinality: One,
		TargetCardinality: Many,
	},
	{
		ID:                "app-datastore",
		Category:          CategoryDataFlow,
		Description:       "workload reading and writing a data store",
		Sources:           set("ec2", "lambda", "ecs", "eks"),
		Targets:           set("rds", "rds-read-replica", "neptune", "redshift", "dynamodb", "elasticache", "opensearch", "s3", "efs"),
		SourceCardinality: Many,
		TargetCardinality: Many,
		CrossAZ:           true,
	},
	{
		ID:                "db-replication",
		Category:          CategoryDataFlow,
		Description:       "primary database replicating to a read replica",
		Sources:           set("rds"),
		Targets:           set("rds-read-replica"),
		SourceCardinality: One,
		TargetCardinality: Many,
		CrossAZ:           true,
		CrossRegion:       true,
	},
	{
		ID:                "event-flow",
		Category:          CategoryDataFlow,
		Description:       "message or event delivery",
		Sources:           set("sns", "sqs", "kinesis", "ec2", "lambda", "ecs", "eks"),
		Targets:           set("sqs", "sns", "kinesis", "lambda", "msk"),
		SourceCardinality: Many,
		TargetCardinality: Many,
	},
	{
		ID:                "nat-egress",
		Category:          CategoryDataFlow,
		Description:       "NAT gateway egress through the internet gateway",
		Sources:           set("nat-gateway"),
		Targets:           set("internet-gateway"),
		SourceCardinality: Many,
		TargetCardinality: One,
	},
	{
		ID:                "metrics-flow",
		Category:          CategoryDataFlow,
		Description:       "workload publishing metrics and logs",
		Sources:           set("ec2", "lambda", "ecs", "eks", "rds", "alb", "nlb", "api-gateway"),
		Targets:           set("cloudwatch"),
		SourceCardinality: Many,
		TargetCardinality: One,
	},
}

func set(ids ...string) map[string]bool {
	m := make(map[string]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// Definitions returns the full table in match order. Callers must not
// modify the returned slice.
func Definitions() []Definition {
	return definitions
}

// Match returns the first definition (in table order, optionally limited
// to one category) whose source and target sets admit the pair.
func Match(sourceID, targetID string, cat Category) *Definition {
	src := catalog.Canonical(sourceID)
	tgt := catalog.Canonical(targetID)
	for i := range definitions {
		d := &definitions[i]
		if cat != CategoryAny && d.Category != cat {
			continue
		}
		if d.Sources[src] && d.Targets[tgt] {
			return d
		}
	}
	return nil
}
