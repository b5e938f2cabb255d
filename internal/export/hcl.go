package export

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// sanitizeName converts a node id to a Terraform-safe resource name
// (e.g. node-1 -> node_1).
func sanitizeName(id string) string {
	return strings.ReplaceAll(id, "-", "_")
}

// resourceBlock creates a resource "type" "name" { } block.
func resourceBlock(resourceType, name string) *hclwrite.Block {
	return hclwrite.NewBlock("resource", []string{resourceType, name})
}

// setStr sets a string attribute when the value is non-empty.
func setStr(body *hclwrite.Body, name, value string) {
	if value != "" {
		body.SetAttributeValue(name, cty.StringVal(value))
	}
}

// setBool sets a bool attribute.
func setBool(body *hclwrite.Body, name string, value bool) {
	body.SetAttributeValue(name, cty.BoolVal(value))
}

// setInt sets an int attribute.
func setInt(body *hclwrite.Body, name string, value int) {
	body.SetAttributeValue(name, cty.NumberIntVal(int64(value)))
}

// setNameTag sets a tags map carrying the node label when present.
func setNameTag(body *hclwrite.Body, label string) {
	if label == "" {
		return
	}
	body.SetAttributeValue("tags", cty.MapVal(map[string]cty.Value{
		"Name": cty.StringVal(label),
	}))
}

// refTraversal builds hcl.Traversal for a resource address and attribute
// (e.g. aws_vpc.node_3.id).
func refTraversal(addr, attr string) hcl.Traversal {
	var t hcl.Traversal
	for _, part := range strings.Split(addr, ".") {
		if part == "" {
			continue
		}
		if len(t) == 0 {
			t = append(t, hcl.TraverseRoot{Name: part})
		} else {
			t = append(t, hcl.TraverseAttr{Name: part})
		}
	}
	if attr != "" {
		t = append(t, hcl.TraverseAttr{Name: attr})
	}
	return t
}

// blockBytes formats a block into file bytes.
func blockBytes(block *hclwrite.Block) []byte {
	f := hclwrite.NewEmptyFile()
	f.Body().AppendBlock(block)
	return f.Bytes()
}

// versionsTF returns content for versions.tf (terraform block + aws provider).
func versionsTF() []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	tfBlock := body.AppendNewBlock("terraform", nil)
	tfBody := tfBlock.Body()
	tfBody.SetAttributeValue("required_version", cty.StringVal(">= 1.0"))
	reqProv := tfBody.AppendNewBlock("required_providers", nil)
	reqProv.Body().SetAttributeValue("aws", cty.ObjectVal(map[string]cty.Value{
		"source":  cty.StringVal("hashicorp/aws"),
		"version": cty.StringVal("~> 5.0"),
	}))

	body.AppendNewline()
	provBlock := body.AppendNewBlock("provider", []string{"aws"})
	provBlock.Body().SetAttributeValue("region", cty.StringVal("us-east-1"))

	return f.Bytes()
}
