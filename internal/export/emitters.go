package export

import (
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/cloudsketch/engine/internal/catalog"
	"github.com/cloudsketch/engine/internal/diagram"
	"github.com/cloudsketch/engine/internal/rules"
)

func init() {
	Default.Register("vpc", vpcEmitter{})
	Default.Register("subnet", subnetEmitter{})
	Default.Register("security-group", securityGroupEmitter{})
	Default.Register("ec2", ec2Emitter{})
	Default.Register("rds", rdsEmitter{})
	Default.Register("lambda", lambdaEmitter{})
	Default.Register("s3", s3Emitter{})
	Default.Register("alb", albEmitter{})
	Default.Register("internet-gateway", igwEmitter{})
	Default.Register("nat-gateway", natEmitter{})
}

// ancestorRef finds the nearest ancestor with the given canonical service
// id and returns its Terraform address from refs.
func ancestorRef(n *diagram.Node, idx *diagram.Index, refs RefMap, serviceID string) (string, bool) {
	a := idx.NearestAncestor(n, func(p *diagram.Node) bool {
		return catalog.Canonical(p.ServiceID) == serviceID
	})
	if a == nil {
		return "", false
	}
	addr, ok := refs[a.ID]
	return addr, ok
}

// subnetRef finds the nearest subnet ancestor of any variant.
func subnetRef(n *diagram.Node, idx *diagram.Index, refs RefMap) (string, bool) {
	a := idx.NearestAncestor(n, func(p *diagram.Node) bool {
		return rules.SubnetKey(rules.EffectiveKey(p.ServiceID, p.SubnetVariant))
	})
	if a == nil {
		return "", false
	}
	addr, ok := refs[a.ID]
	return addr, ok
}

type vpcEmitter struct{}

func (vpcEmitter) ServiceID() string { return "vpc" }

func (vpcEmitter) Emit(n *diagram.Node, idx *diagram.Index, refs RefMap) ([]byte, error) {
	block := resourceBlock("aws_vpc", sanitizeName(n.ID))
	body := block.Body()
	setStr(body, "cidr_block", "10.0.0.0/16")
	setBool(body, "enable_dns_hostnames", true)
	setNameTag(body, n.Label)
	return blockBytes(block), nil
}

type subnetEmitter struct{}

func (subnetEmitter) ServiceID() string { return "subnet" }

func (subnetEmitter) Emit(n *diagram.Node, idx *diagram.Index, refs RefMap) ([]byte, error) {
	block := resourceBlock("aws_subnet", sanitizeName(n.ID))
	body := block.Body()
	setStr(body, "cidr_block", "10.0.1.0/24")
	if addr, ok := ancestorRef(n, idx, refs, "vpc"); ok {
		body.SetAttributeTraversal("vpc_id", refTraversal(addr, "id"))
	}
	if rules.EffectiveKey(n.ServiceID, n.SubnetVariant) == rules.KeySubnetPublic {
		setBool(body, "map_public_ip_on_launch", true)
	}
	setNameTag(body, n.Label)
	return blockBytes(block), nil
}

type securityGroupEmitter struct{}

func (securityGroupEmitter) ServiceID() string { return "security-group" }

func (securityGroupEmitter) Emit(n *diagram.Node, idx *diagram.Index, refs RefMap) ([]byte, error) {
	block := resourceBlock("aws_security_group", sanitizeName(n.ID))
	body := block.Body()
	name := n.Label
	if name == "" {
		name = n.ID
	}
	setStr(body, "name", name)
	if addr, ok := ancestorRef(n, idx, refs, "vpc"); ok {
		body.SetAttributeTraversal("vpc_id", refTraversal(addr, "id"))
	}
	return blockBytes(block), nil
}

type ec2Emitter struct{}

func (ec2Emitter) ServiceID() string { return "ec2" }

func (ec2Emitter) Emit(n *diagram.Node, idx *diagram.Index, refs RefMap) ([]byte, error) {
	block := resourceBlock("aws_instance", sanitizeName(n.ID))
	body := block.Body()
	setStr(body, "instance_type", "t3.micro")
	if addr, ok := subnetRef(n, idx, refs); ok {
		body.SetAttributeTraversal("subnet_id", refTraversal(addr, "id"))
	}
	setNameTag(body, n.Label)
	return blockBytes(block), nil
}

type rdsEmitter struct{}

func (rdsEmitter) ServiceID() string { return "rds" }

func (rdsEmitter) Emit(n *diagram.Node, idx *diagram.Index, refs RefMap) ([]byte, error) {
	block := resourceBlock("aws_db_instance", sanitizeName(n.ID))
	body := block.Body()
	setStr(body, "engine", "postgres")
	setStr(body, "instance_class", "db.t3.micro")
	setInt(body, "allocated_storage", 20)
	setBool(body, "skip_final_snapshot", true)
	setNameTag(body, n.Label)
	return blockBytes(block), nil
}

type lambdaEmitter struct{}

func (lambdaEmitter) ServiceID() string { return "lambda" }

func (lambdaEmitter) Emit(n *diagram.Node, idx *diagram.Index, refs RefMap) ([]byte, error) {
	block := resourceBlock("aws_lambda_function", sanitizeName(n.ID))
	body := block.Body()
	name := n.Label
	if name == "" {
		name = sanitizeName(n.ID)
	}
	setStr(body, "function_name", name)
	setStr(body, "runtime", "provided.al2")
	setStr(body, "handler", "bootstrap")
	return blockBytes(block), nil
}

type s3Emitter struct{}

func (s3Emitter) ServiceID() string { return "s3" }

func (s3Emitter) Emit(n *diagram.Node, idx *diagram.Index, refs RefMap) ([]byte, error) {
	block := resourceBlock("aws_s3_bucket", sanitizeName(n.ID))
	body := block.Body()
	bucket := n.Label
	if bucket == "" {
		bucket = n.ID
	}
	setStr(body, "bucket", bucket)
	return blockBytes(block), nil
}

type albEmitter struct{}

func (albEmitter) ServiceID() string { return "alb" }

func (albEmitter) Emit(n *diagram.Node, idx *diagram.Index, refs RefMap) ([]byte, error) {
	block := resourceBlock("aws_lb", sanitizeName(n.ID))
	body := block.Body()
	name := n.Label
	if name == "" {
		name = sanitizeName(n.ID)
	}
	setStr(body, "name", name)
	setStr(body, "load_balancer_type", "application")
	setBool(body, "internal", false)
	if addr, ok := subnetRef(n, idx, refs); ok {
		body.SetAttributeRaw("subnets", hclwrite.TokensForTuple([]hclwrite.Tokens{
			hclwrite.TokensForTraversal(refTraversal(addr, "id")),
		}))
	}
	return blockBytes(block), nil
}

type igwEmitter struct{}

func (igwEmitter) ServiceID() string { return "internet-gateway" }

func (igwEmitter) Emit(n *diagram.Node, idx *diagram.Index, refs RefMap) ([]byte, error) {
	block := resourceBlock("aws_internet_gateway", sanitizeName(n.ID))
	body := block.Body()
	if addr, ok := ancestorRef(n, idx, refs, "vpc"); ok {
		body.SetAttributeTraversal("vpc_id", refTraversal(addr, "id"))
	}
	setNameTag(body, n.Label)
	return blockBytes(block), nil
}

type natEmitter struct{}

func (natEmitter) ServiceID() string { return "nat-gateway" }

func (natEmitter) Emit(n *diagram.Node, idx *diagram.Index, refs RefMap) ([]byte, error) {
	block := resourceBlock("aws_nat_gateway", sanitizeName(n.ID))
	body := block.Body()
	if addr, ok := subnetRef(n, idx, refs); ok {
		body.SetAttributeTraversal("subnet_id", refTraversal(addr, "id"))
	}
	setNameTag(body, n.Label)
	return blockBytes(block), nil
}
