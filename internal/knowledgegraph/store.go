// Package knowledgegraph manages the fixed academic-citation dataset used to
// demonstrate GraphRAG-style retrieval: schema creation, data population,
// teardown, verification, and a set of canned demonstration queries.
package knowledgegraph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Store wraps the Neo4j driver for the demo graph. All queries run through
// ExecuteQuery, which buffers results and manages sessions internally.
type Store struct {
	driver   neo4j.DriverWithContext
	database string
}

func Open(uri, user, password, database string) (*Store, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}
	return &Store{driver: driver, database: database}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// Verify checks connectivity before any one-shot command starts mutating.
func (s *Store) Verify(ctx context.Context) error {
	if err := s.driver.VerifyConnectivity(ctx); err != nil {
		return fmt.Errorf("verify neo4j connectivity: %w", err)
	}
	return nil
}

// Run executes a single Cypher statement and returns the buffered result.
func (s *Store) Run(ctx context.Context, cypher string, params map[string]any) (*neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(
		ctx,
		s.driver,
		cypher,
		params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(s.database),
	)
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}
	return result, nil
}

// count runs a query expected to return a single integer column named "count".
func (s *Store) count(ctx context.Context, cypher string) (int64, error) {
	result, err := s.Run(ctx, cypher, nil)
	if err != nil {
		return 0, err
	}
	if len(result.Records) == 0 {
		return 0, fmt.Errorf("count query returned no records")
	}

	value, _, err := neo4j.GetRecordValue[int64](result.Records[0], "count")
	if err != nil {
		return 0, fmt.Errorf("read count: %w", err)
	}
	return value, nil
}

func (s *Store) NodeCount(ctx context.Context) (int64, error) {
	return s.count(ctx, "MATCH (n) RETURN count(n) as count")
}

func (s *Store) RelationshipCount(ctx context.Context) (int64, error) {
	return s.count(ctx, "MATCH ()-[r]->() RETURN count(r) as count")
}

func (s *Store) LabelCount(ctx context.Context, label string) (int64, error) {
	return s.count(ctx, fmt.Sprintf("MATCH (n:%s) RETURN count(n) as count", label))
}
