// Package catalog is the static registry of cloud services the engine
// knows about. The tables are built once at init and never mutated;
// concurrent readers need no locking.
package catalog

// Scope is a service's deployment breadth. It drives default-deny
// decisions when a placement is neither allowed nor rejected explicitly.
type Scope string

const (
	ScopeGlobal   Scope = "global"   // route53, iam: exists outside any region
	ScopeEdge     Scope = "edge"     // cloudfront, waf: edge locations
	ScopeRegional Scope = "regional" // s3, dynamodb, lambda: regional, not VPC-bound
	ScopeAZ       Scope = "az"       // ec2, ebs: bound to one availability zone
	ScopeVPC      Scope = "vpc"      // rds, alb: lives inside a VPC
)

// Category groups services into families used by severity classification
// and pattern detection.
type Category string

const (
	CategoryCompute       Category = "compute"
	CategoryDatabase      Category = "database"
	CategoryCache         Category = "cache"
	CategoryStorage       Category = "storage"
	CategoryNetwork       Category = "network"
	CategorySecurity      Category = "security"
	CategoryIdentity      Category = "identity"
	CategoryDNS           Category = "dns"
	CategoryCDN           Category = "cdn"
	CategoryMessaging     Category = "messaging"
	CategoryMonitoring    Category = "monitoring"
	CategoryOrchestration Category = "orchestration"
	CategorySearch        Category = "search"
	CategoryIntegration   Category = "integration"
)

// DefaultBasePoints is awarded for a valid placement when the descriptor
// carries no base points of its own.
const DefaultBasePoints = 10

// ServiceDescriptor describes one service in the registry.
type ServiceDescriptor struct {
	ID               string
	Name             string
	Category         Category
	Scope            Scope
	ContainerCapable bool
	BasePoints       int
}

// aliases maps alternate spellings (camel-case editor ids, legacy names)
// to the canonical service id.
var aliases = map[string]string{
	"ec2-instance":              "ec2",
	"ec2Instance":               "ec2",
	"rds-instance":              "rds",
	"rdsInstance":               "rds",
	"rdsReadReplica":            "rds-read-replica",
	"read-replica":              "rds-read-replica",
	"application-load-balancer": "alb",
	"applicationLoadBalancer":   "alb",
	"network-load-balancer":     "nlb",
	"networkLoadBalancer":       "nlb",
	"internetGateway":           "internet-gateway",
	"igw":                       "internet-gateway",
	"natGateway":                "nat-gateway",
	"securityGroup":             "security-group",
	"availabilityZone":          "availability-zone",
	"az":                        "availability-zone",
	"vpcEndpoint":               "vpc-endpoint",
	"apiGateway":                "api-gateway",
	"elasticsearch":             "opensearch",
	"s3-bucket":                 "s3",
	"lambda-function":           "lambda",
	"lambdaFunction":            "lambda",
}

var services = map[string]ServiceDescriptor{
	// Containment constructs
	"region":            {ID: "region", Name: "Region", Category: CategoryNetwork, Scope: ScopeGlobal, ContainerCapable: true, BasePoints: 5},
	"availability-zone": {ID: "availability-zone", Name: "Availability Zone", Category: CategoryNetwork, Scope: ScopeRegional, ContainerCapable: true, BasePoints: 5},
	"vpc":               {ID: "vpc", Name: "VPC", Category: CategoryNetwork, Scope: ScopeRegional, ContainerCapable: true, BasePoints: 10},
	"subnet":            {ID: "subnet", Name: "Subnet", Category: CategoryNetwork, Scope: ScopeAZ, ContainerCapable: true, BasePoints: 10},

	// Compute
	"ec2":    {ID: "ec2", Name: "EC2 Instance", Category: CategoryCompute, Scope: ScopeAZ, BasePoints: 10},
	"lambda": {ID: "lambda", Name: "Lambda Function", Category: CategoryCompute, Scope: ScopeRegional, BasePoints: 10},
	"ecs":    {ID: "ecs", Name: "ECS Service", Category: CategoryOrchestration, Scope: ScopeVPC, BasePoints: 10},
	"eks":    {ID: "eks", Name: "EKS Cluster", Category: CategoryOrchestration, Scope: ScopeVPC, BasePoints: 15},

	// Databases and caches
	"rds":              {ID: "rds", Name: "RDS Instance", Category: CategoryDatabase, Scope: ScopeVPC, BasePoints: 15},
	"rds-read-replica": {ID: "rds-read-replica", Name: "RDS Read Replica", Category: CategoryDatabase, Scope: ScopeVPC, BasePoints: 15},
	"neptune":          {ID: "neptune", Name: "Neptune Cluster", Category: CategoryDatabase, Scope: ScopeVPC, BasePoints: 15},
	"redshift":         {ID: "redshift", Name: "Redshift Cluster", Category: CategoryDatabase, Scope: ScopeVPC, BasePoints: 15},
	"dynamodb":         {ID: "dynamodb", Name: "DynamoDB Table", Category: CategoryDatabase, Scope: ScopeRegional, BasePoints: 10},
	"elasticache":      {ID: "elasticache", Name: "ElastiCache Cluster", Category: CategoryCache, Scope: ScopeVPC, BasePoints: 10},

	// Storage
	"s3":  {ID: "s3", Name: "S3 Bucket", Category: CategoryStorage, Scope: ScopeRegional, BasePoints: 10},
	"efs": {ID: "efs", Name: "EFS File System", Category: CategoryStorage, Scope: ScopeVPC, BasePoints: 10},
	"ebs": {ID: "ebs", Name: "EBS Volume", Category: CategoryStorage, Scope: ScopeAZ, BasePoints: 5},

	// Networking
	"alb":              {ID: "alb", Name: "Application Load Balancer", Category: CategoryNetwork, Scope: ScopeVPC, BasePoints: 10},
	"nlb":              {ID: "nlb", Name: "Network Load Balancer", Category: CategoryNetwork, Scope: ScopeVPC, BasePoints: 10},
	"internet-gateway": {ID: "internet-gateway", Name: "Internet Gateway", Category: CategoryNetwork, Scope: ScopeVPC, BasePoints: 5},
	"nat-gateway":      {ID: "nat-gateway", Name: "NAT Gateway", Category: CategoryNetwork, Scope: ScopeAZ, BasePoints: 10},
	"vpc-endpoint":     {ID: "vpc-endpoint", Name: "VPC Endpoint", Category: CategoryNetwork, Scope: ScopeVPC, BasePoints: 10},
	"api-gateway":      {ID: "api-gateway", Name: "API Gateway", Category: CategoryNetwork, Scope: ScopeRegional, BasePoints: 10},
	"route53":          {ID: "route53", Name: "Route 53", Category: CategoryDNS, Scope: ScopeGlobal, BasePoints: 10},
	"cloudfront":       {ID: "cloudfront", Name: "CloudFront Distribution", Category: CategoryCDN, Scope: ScopeEdge, BasePoints: 10},

	// Security and identity
	"security-group": {ID: "security-group", Name: "Security Group", Category: CategorySecurity, Scope: ScopeVPC, BasePoints: 5},
	"waf":            {ID: "waf", Name: "WAF", Category: CategorySecurity, Scope: ScopeEdge, BasePoints: 10},
	"kms":            {ID: "kms", Name: "KMS Key", Category: CategorySecurity, Scope: ScopeRegional, BasePoints: 5},
	"iam":            {ID: "iam", Name: "IAM Role", Category: CategoryIdentity, Scope: ScopeGlobal, BasePoints: 5},

	// Messaging and search
	"sqs":        {ID: "sqs", Name: "SQS Queue", Category: CategoryMessaging, Scope: ScopeRegional, BasePoints: 10},
	"kinesis":    {ID: "kinesis", Name: "Kinesis Stream", Category: CategoryIntegration, Scope: ScopeRegional, BasePoints: 10},
	"sns":        {ID: "sns", Name: "SNS Topic", Category: CategoryMessaging, Scope: ScopeRegional, BasePoints: 10},
	"msk":        {ID: "msk", Name: "MSK Cluster", Category: CategoryMessaging, Scope: ScopeVPC, BasePoints: 15},
	"opensearch": {ID: "opensearch", Name: "OpenSearch Domain", Category: CategorySearch, Scope: ScopeVPC, BasePoints: 15},

	// Observability
	"cloudwatch": {ID: "cloudwatch", Name: "CloudWatch", Category: CategoryMonitoring, Scope: ScopeRegional, BasePoints: 5},
}

// nicCreators lists services that create elastic network interfaces when
// deployed into a VPC. This registry backs the advisory connectivity hint
// in edge validation only; it is unrelated to the formal edge taxonomy.
var nicCreators = map[string]bool{
	"ec2":              true,
	"rds":              true,
	"rds-read-replica": true,
	"neptune":          true,
	"redshift":         true,
	"elasticache":      true,
	"lambda":           true,
	"alb":              true,
	"nlb":              true,
	"nat-gateway":      true,
	"vpc-endpoint":     true,
	"efs":              true,
	"msk":              true,
	"opensearch":       true,
	"ecs":              true,
	"eks":              true,
}

// Canonical resolves alias spellings to the canonical service id. Unknown
// ids pass through unchanged.
func Canonical(id string) string {
	if c, ok := aliases[id]; ok {
		return c
	}
	return id
}

// Describe looks up the descriptor for a service id (aliases resolved).
func Describe(id string) (ServiceDescriptor, bool) {
	d, ok := services[Canonical(id)]
	return d, ok
}

// BasePoints returns the descriptor's base points, or DefaultBasePoints
// for unknown services.
func BasePoints(id string) int {
	if d, ok := Describe(id); ok && d.BasePoints > 0 {
		return d.BasePoints
	}
	return DefaultBasePoints
}

// CreatesNetworkInterface reports whether the service provisions ENIs.
func CreatesNetworkInterface(id string) bool {
	return nicCreators[Canonical(id)]
}

// ServiceIDs returns every registered canonical id.
func ServiceIDs() []string {
	out := make([]string, 0, len(services))
	for id := range services {
		out = append(out, id)
	}
	return out
}

// DatabaseFamily covers the relational/graph/columnar/cache-cluster
// services that must never land in a public subnet.
func (d ServiceDescriptor) DatabaseFamily() bool {
	return d.Category == CategoryDatabase || d.Category == CategoryCache
}

// SecuritySensitive reports whether the service should sit behind the
// private side of a segmented network.
func (d ServiceDescriptor) SecuritySensitive() bool {
	switch d.Category {
	case CategoryDatabase, CategoryOrchestration, CategoryMessaging, CategorySearch:
		return true
	}
	return false
}
