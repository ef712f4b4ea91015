package knowledgegraph

import (
	"context"
	"fmt"
	"log"
)

// Expected fixture counts. Setup fails if the populated graph does not match.
const (
	ExpectedPapers        = 6
	ExpectedAuthors       = 6
	ExpectedInstitutions  = 4
	ExpectedVenues        = 4
	ExpectedTopics        = 8
	ExpectedNodes         = 28
	ExpectedRelationships = 51
)

// ExpectedLabelCounts maps each node label to its fixture count.
func ExpectedLabelCounts() map[string]int64 {
	return map[string]int64{
		"Paper":       ExpectedPapers,
		"Author":      ExpectedAuthors,
		"Institution": ExpectedInstitutions,
		"Venue":       ExpectedVenues,
		"Topic":       ExpectedTopics,
	}
}

// Setup creates the schema and loads the sample dataset, then verifies the
// resulting counts. Running it against an already-populated graph fails on
// the uniqueness constraints; clear first for a deterministic reset.
func (s *Store) Setup(ctx context.Context) error {
	if err := s.Verify(ctx); err != nil {
		return err
	}

	if err := s.runScript(ctx, schemaScript); err != nil {
		return fmt.Errorf("schema creation: %w", err)
	}
	if err := s.runScript(ctx, populateScript); err != nil {
		return fmt.Errorf("data population: %w", err)
	}

	return s.VerifyCounts(ctx)
}

// VerifyCounts checks the per-label and relationship counts against the
// fixture and logs each one.
func (s *Store) VerifyCounts(ctx context.Context) error {
	for _, label := range []string{"Paper", "Author", "Institution", "Venue", "Topic"} {
		count, err := s.LabelCount(ctx, label)
		if err != nil {
			return err
		}
		want := ExpectedLabelCounts()[label]
		log.Printf("[kg] %s: %d", label, count)
		if count != want {
			return fmt.Errorf("%s count mismatch: got %d, want %d", label, count, want)
		}
	}

	rels, err := s.RelationshipCount(ctx)
	if err != nil {
		return err
	}
	log.Printf("[kg] Relationships: %d", rels)
	if rels != ExpectedRelationships {
		return fmt.Errorf("relationship count mismatch: got %d, want %d", rels, ExpectedRelationships)
	}

	return nil
}
