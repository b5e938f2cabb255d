package main

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/cloudsketch/engine"
	"github.com/cloudsketch/engine/internal/logger"
)

var log = logger.New("lambda")

// AuditEvent is the invocation payload (e.g. from API Gateway).
type AuditEvent struct {
	Body     string   `json:"body"` // snapshot JSON (raw or base64 if isBase64)
	IsBase64 bool     `json:"isBase64,omitempty"`
	Expected []string `json:"expected,omitempty"`
}

// AuditResponse is returned to the client.
type AuditResponse struct {
	StatusCode int                 `json:"statusCode"`
	Report     *engine.AuditReport `json:"report,omitempty"`
	Error      string              `json:"error,omitempty"`
}

// APIGatewayResponse is the shape expected by API Gateway proxy
// integration (body = JSON string).
type APIGatewayResponse struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body"`
}

func handler(ctx context.Context, event AuditEvent) (APIGatewayResponse, error) {
	body := event.Body
	if event.IsBase64 {
		dec, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return wrap(AuditResponse{StatusCode: 400, Error: "invalid base64 body: " + err.Error()}), nil
		}
		body = string(dec)
	}

	var snap engine.Snapshot
	if err := json.Unmarshal([]byte(body), &snap); err != nil {
		return wrap(AuditResponse{StatusCode: 400, Error: "invalid snapshot JSON: " + err.Error()}), nil
	}

	rep := engine.AuditDiagram(snap.Nodes, snap.Edges, event.Expected)
	log.Info("audited diagram",
		"nodes", len(snap.Nodes),
		"edges", len(snap.Edges),
		"score", rep.Score,
		"valid", rep.IsValid,
	)

	status := 200
	if !rep.IsValid {
		status = 422
	}
	return wrap(AuditResponse{StatusCode: status, Report: rep}), nil
}

func wrap(out AuditResponse) APIGatewayResponse {
	bodyBytes, _ := json.Marshal(out)
	return APIGatewayResponse{
		StatusCode: out.StatusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(bodyBytes),
	}
}

func main() {
	lambda.Start(handler)
}
