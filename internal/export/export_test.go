package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsketch/engine/internal/diagram"
)

func TestExportEmitsContainersBeforeChildren(t *testing.T) {
	nodes := []diagram.Node{
		{ID: "web-1", ServiceID: "ec2", ParentID: "sub-1", Label: "web"},
		{ID: "sub-1", ServiceID: "subnet", ParentID: "net-1", SubnetVariant: diagram.SubnetPublic},
		{ID: "net-1", ServiceID: "vpc", Label: "main"},
	}
	files := Export(nodes)
	require.Contains(t, files, "versions.tf")
	require.Contains(t, files, "main.tf")

	main := string(files["main.tf"])
	vpcAt := strings.Index(main, `resource "aws_vpc" "net_1"`)
	subnetAt := strings.Index(main, `resource "aws_subnet" "sub_1"`)
	ec2At := strings.Index(main, `resource "aws_instance" "web_1"`)
	require.GreaterOrEqual(t, vpcAt, 0)
	require.Greater(t, subnetAt, vpcAt)
	require.Greater(t, ec2At, subnetAt)

	assert.Contains(t, main, "aws_vpc.net_1.id", "subnet references its VPC")
	assert.Contains(t, main, "aws_subnet.sub_1.id", "instance references its subnet")
	assert.Contains(t, main, "map_public_ip_on_launch", "public variant is reflected")
}

func TestExportSkipsUnsupportedServices(t *testing.T) {
	nodes := []diagram.Node{
		{ID: "dns-1", ServiceID: "route53"},
		{ID: "bucket-1", ServiceID: "s3", Label: "assets"},
	}
	files := Export(nodes)
	main := string(files["main.tf"])
	assert.Contains(t, main, `resource "aws_s3_bucket" "bucket_1"`)
	assert.NotContains(t, main, "route53")
}

func TestExportEmptySnapshot(t *testing.T) {
	files := Export(nil)
	assert.Contains(t, files, "versions.tf")
	assert.NotContains(t, files, "main.tf")
}

func TestVersionsTFDeclaresProvider(t *testing.T) {
	v := string(versionsTF())
	assert.Contains(t, v, "required_providers")
	assert.Contains(t, v, "hashicorp/aws")
}

func TestAliasedServiceIDsStillExport(t *testing.T) {
	nodes := []diagram.Node{
		{ID: "net-1", ServiceID: "vpc"},
		{ID: "gw-1", ServiceID: "internetGateway", ParentID: "net-1"},
	}
	files := Export(nodes)
	main := string(files["main.tf"])
	assert.Contains(t, main, `resource "aws_internet_gateway" "gw_1"`)
	assert.Contains(t, main, "aws_vpc.net_1.id")
}
