// Command kg manages the demonstration knowledge graph: one-shot setup,
// verification, canned demo queries, and teardown.
//
// Usage:
//
//	kg setup
//	kg verify
//	kg query
//	kg clear [--yes]
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/RumTumTum/GraphRAG-Pattern/config"
	"github.com/RumTumTum/GraphRAG-Pattern/internal/knowledgegraph"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: kg setup|verify|query|clear [--yes]")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.ValidateNeo4j(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	log.Printf("Connecting to Neo4j at %s as %s", cfg.Neo4j.URI, cfg.Neo4j.User)
	store, err := knowledgegraph.Open(cfg.Neo4j.URI, cfg.Neo4j.User, cfg.Neo4j.Password, cfg.Neo4j.Database)
	if err != nil {
		log.Fatalf("neo4j: %v", err)
	}
	defer store.Close(ctx)

	switch os.Args[1] {
	case "setup":
		runSetup(ctx, store)
	case "verify":
		runVerify(ctx, store)
	case "query":
		runQuery(ctx, store)
	case "clear":
		yes := len(os.Args) > 2 && os.Args[2] == "--yes"
		runClear(ctx, store, yes)
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
}

func runSetup(ctx context.Context, store *knowledgegraph.Store) {
	if err := store.Setup(ctx); err != nil {
		log.Fatalf("setup failed: %v", err)
	}
	log.Println("Knowledge graph setup complete!")
	log.Println("You can now:")
	log.Println("1. View the graph in Neo4j Browser: http://localhost:7474")
	log.Println("2. Run the sample queries with: kg query")
}

func runVerify(ctx context.Context, store *knowledgegraph.Store) {
	if err := store.Verify(ctx); err != nil {
		log.Fatalf("verify failed: %v", err)
	}
	if err := store.VerifyCounts(ctx); err != nil {
		log.Fatalf("verify failed: %v", err)
	}
	log.Println("Knowledge graph verification complete!")
}

func runQuery(ctx context.Context, store *knowledgegraph.Store) {
	if err := store.Verify(ctx); err != nil {
		log.Fatalf("query failed: %v", err)
	}
	if err := store.RunDemoQueries(ctx); err != nil {
		log.Fatalf("query demonstration failed: %v", err)
	}
}

func runClear(ctx context.Context, store *knowledgegraph.Store, yes bool) {
	if err := store.Verify(ctx); err != nil {
		log.Fatalf("clear failed: %v", err)
	}

	counts, err := store.Counts(ctx)
	if err != nil {
		log.Fatalf("clear failed: %v", err)
	}
	log.Printf("Current state: %d nodes, %d relationships", counts.Nodes, counts.Relationships)

	if counts.Nodes == 0 && counts.Relationships == 0 {
		log.Println("Database is already empty")
		return
	}

	if !yes && !confirm(counts) {
		log.Println("Cleanup cancelled")
		return
	}

	if err := store.Clear(ctx); err != nil {
		log.Fatalf("clear failed: %v", err)
	}

	constraints, indexes, err := store.SchemaInfo(ctx)
	if err != nil {
		log.Printf("could not show schema info: %v", err)
	} else {
		log.Printf("%d constraints preserved, %d indexes preserved", constraints, indexes)
	}

	log.Println("Knowledge graph cleanup complete!")
	log.Println("To repopulate data, run: kg setup")
}

func confirm(counts knowledgegraph.Counts) bool {
	fmt.Printf("\nThis will DELETE all %d nodes and %d relationships.\n", counts.Nodes, counts.Relationships)
	fmt.Println("Schema (constraints/indexes) will be preserved.")
	fmt.Print("Continue? [y/N]: ")

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(response), "y")
}
