package export

import (
	"bytes"
	"sort"

	"github.com/cloudsketch/engine/internal/catalog"
	"github.com/cloudsketch/engine/internal/diagram"
)

// resourceType maps canonical service ids to Terraform resource types
// for the ref map.
var resourceType = map[string]string{
	"vpc":              "aws_vpc",
	"subnet":           "aws_subnet",
	"security-group":   "aws_security_group",
	"ec2":              "aws_instance",
	"rds":              "aws_db_instance",
	"lambda":           "aws_lambda_function",
	"s3":               "aws_s3_bucket",
	"alb":              "aws_lb",
	"internet-gateway": "aws_internet_gateway",
	"nat-gateway":      "aws_nat_gateway",
}

// Export renders the snapshot's supported nodes into Terraform files,
// containers before their children so references resolve in order.
// Services without an emitter are skipped; the result is a skeleton to
// finish by hand, not a deployable configuration.
func Export(nodes []diagram.Node) map[string][]byte {
	idx := diagram.NewIndex(nodes)

	// Order by containment depth, stable within a tier.
	order := make([]int, len(nodes))
	for i := range nodes {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return idx.Depth(&nodes[order[a]]) < idx.Depth(&nodes[order[b]])
	})

	refs := make(RefMap)
	var blocks [][]byte
	for _, i := range order {
		n := &nodes[i]
		svc := catalog.Canonical(n.ServiceID)
		em, ok := Default.Get(svc)
		if !ok {
			continue
		}
		// Register the address before emitting so self-references work;
		// ancestors were emitted in an earlier tier.
		refs[n.ID] = resourceType[svc] + "." + sanitizeName(n.ID)
		block, err := em.Emit(n, idx, refs)
		if err != nil {
			delete(refs, n.ID)
			continue
		}
		blocks = append(blocks, block)
	}

	out := map[string][]byte{
		"versions.tf": versionsTF(),
	}
	var mainBuf bytes.Buffer
	for i, b := range blocks {
		if i > 0 {
			mainBuf.WriteString("\n")
		}
		mainBuf.Write(b)
	}
	if mainBuf.Len() > 0 {
		out["main.tf"] = mainBuf.Bytes()
	}
	return out
}
