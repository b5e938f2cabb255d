package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cloudsketch/engine"
	"github.com/cloudsketch/engine/internal/export"
	"github.com/cloudsketch/engine/internal/logger"
)

// manifest is the optional expected-services file.
type manifest struct {
	Services []string `yaml:"services"`
}

func main() {
	input := flag.String("input", "", "Path to diagram snapshot JSON file (or - for stdin)")
	expectedPath := flag.String("expected", "", "Path to expected-services YAML manifest")
	jsonOut := flag.Bool("json", false, "Output the report as JSON")
	exportDir := flag.String("export", "", "Write a Terraform skeleton for a valid diagram to this directory")
	minScore := flag.Int("min-score", 0, "Exit nonzero when the score falls below this value")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: auditor -input <file|-> [-expected manifest.yaml] [-json] [-export dir] [-min-score N]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var data []byte
	var err error
	if *input == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(*input)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}

	var snap engine.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		fmt.Fprintf(os.Stderr, "parse JSON: %v\n", err)
		os.Exit(1)
	}

	var expected []string
	if *expectedPath != "" {
		raw, err := os.ReadFile(*expectedPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read manifest: %v\n", err)
			os.Exit(1)
		}
		var m manifest
		if err := yaml.Unmarshal(raw, &m); err != nil {
			fmt.Fprintf(os.Stderr, "parse manifest: %v\n", err)
			os.Exit(1)
		}
		expected = m.Services
	}

	rep := engine.AuditDiagram(snap.Nodes, snap.Edges, expected)

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(rep)
	} else {
		printReport(rep)
	}

	if *exportDir != "" && rep.IsValid {
		log := logger.New("auditor")
		if err := os.MkdirAll(*exportDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
			os.Exit(1)
		}
		for name, content := range export.Export(snap.Nodes) {
			path := filepath.Join(*exportDir, name)
			if err := os.WriteFile(path, content, 0644); err != nil {
				fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
				os.Exit(1)
			}
			log.Info("wrote terraform skeleton", "path", path)
		}
	}

	if !rep.IsValid || rep.Score < *minScore {
		os.Exit(1)
	}
}

func printReport(rep *engine.AuditReport) {
	fmt.Printf("score: %d / %d  valid: %v\n", rep.Score, rep.MaxScore, rep.IsValid)
	for _, c := range rep.Correct {
		fmt.Printf("OK    %s\n", c)
	}
	for _, is := range rep.PlacementIssues {
		fmt.Printf("%-5s [%s] %s\n", is.Severity, is.NodeID, is.Message)
	}
	for _, is := range rep.ConnectionIssues {
		fmt.Printf("%-5s [%s] %s\n", is.Severity, is.EdgeID, is.Message)
	}
	for _, m := range rep.Missing {
		fmt.Printf("MISS  %s\n", m)
	}
	for _, s := range rep.Suggestions {
		fmt.Printf("hint: %s\n", s)
	}
}
