package knowledgegraph

import (
	"context"
	"fmt"
	"log"
)

// Counts holds the current node and relationship totals.
type Counts struct {
	Nodes         int64
	Relationships int64
}

func (s *Store) Counts(ctx context.Context) (Counts, error) {
	nodes, err := s.NodeCount(ctx)
	if err != nil {
		return Counts{}, err
	}
	rels, err := s.RelationshipCount(ctx)
	if err != nil {
		return Counts{}, err
	}
	return Counts{Nodes: nodes, Relationships: rels}, nil
}

// Clear removes all relationships, then all nodes. Constraints and indexes
// are left in place. The caller is responsible for confirming with the user
// before invoking this.
func (s *Store) Clear(ctx context.Context) error {
	log.Println("[kg] removing all relationships...")
	if _, err := s.Run(ctx, "MATCH ()-[r]->() DELETE r", nil); err != nil {
		return fmt.Errorf("delete relationships: %w", err)
	}

	log.Println("[kg] removing all nodes...")
	if _, err := s.Run(ctx, "MATCH (n) DELETE n", nil); err != nil {
		return fmt.Errorf("delete nodes: %w", err)
	}

	counts, err := s.Counts(ctx)
	if err != nil {
		return err
	}
	if counts.Nodes != 0 || counts.Relationships != 0 {
		return fmt.Errorf("cleanup incomplete: %d nodes, %d relationships remain",
			counts.Nodes, counts.Relationships)
	}

	log.Println("[kg] all data removed, schema preserved")
	return nil
}

// SchemaInfo reports how many constraints and indexes the database lists,
// so the clear command can show that the schema survived the wipe.
func (s *Store) SchemaInfo(ctx context.Context) (constraints, indexes int, err error) {
	result, err := s.Run(ctx, "SHOW CONSTRAINTS", nil)
	if err != nil {
		return 0, 0, fmt.Errorf("show constraints: %w", err)
	}
	constraints = len(result.Records)

	result, err = s.Run(ctx, "SHOW INDEXES", nil)
	if err != nil {
		return 0, 0, fmt.Errorf("show indexes: %w", err)
	}
	indexes = len(result.Records)

	return constraints, indexes, nil
}
