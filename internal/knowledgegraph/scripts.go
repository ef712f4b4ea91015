package knowledgegraph

import (
	"context"
	"embed"
	"fmt"
	"log"
	"strings"
)

//go:embed cypher/01_create_schema.cypher cypher/02_populate_data.cypher
var scripts embed.FS

const (
	schemaScript   = "cypher/01_create_schema.cypher"
	populateScript = "cypher/02_populate_data.cypher"
)

// SplitStatements breaks a Cypher script into individual statements on the
// semicolon separator, dropping empty fragments. String literals in the
// bundled scripts never contain semicolons, so a plain split is enough.
func SplitStatements(script string) []string {
	parts := strings.Split(script, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if stmt := strings.TrimSpace(p); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

func (s *Store) runScript(ctx context.Context, name string) error {
	log.Printf("[kg] executing Cypher script: %s", name)

	content, err := scripts.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read script %s: %w", name, err)
	}

	statements := SplitStatements(string(content))
	for i, stmt := range statements {
		if _, err := s.Run(ctx, stmt, nil); err != nil {
			return fmt.Errorf("statement %d of %s: %w", i+1, name, err)
		}
	}

	log.Printf("[kg] completed %s (%d statements)", name, len(statements))
	return nil
}
