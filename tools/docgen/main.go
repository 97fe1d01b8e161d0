// Package main generates the flctl CLI reference and the OpenAPI document
// for the flashlist API.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra/doc"

	"github.com/donaldgifford/flashlist/api/openapi"
	"github.com/donaldgifford/flashlist/cmd/flctl/cmd"
	"github.com/donaldgifford/flashlist/internal/api/server"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	specDir := flag.String("openapi", "docs/api", "output directory for the OpenAPI document (empty to skip)")
	flag.Parse()

	if err := generateCLI(*output); err != nil {
		log.Fatalf("generating CLI docs: %v", err)
	}
	fmt.Printf("CLI docs generated in %s/\n", *output)

	if *specDir == "" {
		return
	}
	if err := generateSpec(*specDir); err != nil {
		log.Fatalf("generating OpenAPI document: %v", err)
	}
	fmt.Printf("OpenAPI document generated in %s/\n", *specDir)
}

func generateCLI(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	root := cmd.Root()
	root.DisableAutoGenTag = true

	return doc.GenMarkdownTree(root, dir)
}

// generateSpec registers every operation against empty dependencies; only
// the schema is rendered, no handler runs.
func generateSpec(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	api := server.NewAPI(echo.New(), "dev")
	server.Register(api, &server.Deps{})

	for _, format := range []string{"json", "yaml"} {
		data, err := openapi.Spec(api, format)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, "openapi."+format)
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}
