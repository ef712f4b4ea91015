package integration

import (
	"context"
	"os"
	"testing"

	"github.com/RumTumTum/GraphRAG-Pattern/internal/knowledgegraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore connects to a live Neo4j instance.
// Skips the test when TEST_NEO4J_* (or NEO4J_*) variables are not set.
func setupTestStore(t *testing.T) *knowledgegraph.Store {
	t.Helper()

	uri := os.Getenv("TEST_NEO4J_URI")
	user := os.Getenv("TEST_NEO4J_USER")
	password := os.Getenv("TEST_NEO4J_PASSWORD")

	if uri == "" {
		uri = os.Getenv("NEO4J_URI")
		user = os.Getenv("NEO4J_USER")
		password = os.Getenv("NEO4J_PASSWORD")
	}

	if uri == "" || user == "" || password == "" {
		t.Skip("TEST_NEO4J_* or NEO4J_* environment variables not set, skipping Neo4j integration test")
	}

	store, err := knowledgegraph.Open(uri, user, password, "neo4j")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close(context.Background()) })

	require.NoError(t, store.Verify(context.Background()))
	return store
}

// emptyGraph wipes whatever is in the test database so each test starts clean.
func emptyGraph(t *testing.T, store *knowledgegraph.Store) {
	t.Helper()
	ctx := context.Background()

	counts, err := store.Counts(ctx)
	require.NoError(t, err)
	if counts.Nodes > 0 || counts.Relationships > 0 {
		require.NoError(t, store.Clear(ctx))
	}
}

func TestSetupPopulatesExpectedGraph(t *testing.T) {
	store := setupTestStore(t)
	emptyGraph(t, store)
	ctx := context.Background()

	require.NoError(t, store.Setup(ctx))

	counts, err := store.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(knowledgegraph.ExpectedNodes), counts.Nodes)
	assert.Equal(t, int64(knowledgegraph.ExpectedRelationships), counts.Relationships)

	for label, want := range knowledgegraph.ExpectedLabelCounts() {
		got, err := store.LabelCount(ctx, label)
		require.NoError(t, err)
		assert.Equal(t, want, got, "label %s", label)
	}
}

func TestClearRemovesDataPreservesSchema(t *testing.T) {
	store := setupTestStore(t)
	emptyGraph(t, store)
	ctx := context.Background()

	require.NoError(t, store.Setup(ctx))
	require.NoError(t, store.Clear(ctx))

	counts, err := store.Counts(ctx)
	require.NoError(t, err)
	assert.Zero(t, counts.Nodes)
	assert.Zero(t, counts.Relationships)

	constraints, indexes, err := store.SchemaInfo(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, constraints, 5, "uniqueness constraints should survive a clear")
	assert.GreaterOrEqual(t, indexes, 5, "indexes (including constraint-backed ones) should survive")
}

func TestSetupAfterClearIsDeterministic(t *testing.T) {
	store := setupTestStore(t)
	emptyGraph(t, store)
	ctx := context.Background()

	require.NoError(t, store.Setup(ctx))
	first, err := store.Counts(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Setup(ctx))

	second, err := store.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSetupWithoutClearViolatesConstraints(t *testing.T) {
	store := setupTestStore(t)
	emptyGraph(t, store)
	ctx := context.Background()

	require.NoError(t, store.Setup(ctx))

	// Idempotent reset, not idempotent append: a second population must fail
	// on the id uniqueness constraints.
	err := store.Setup(ctx)
	require.Error(t, err)

	t.Cleanup(func() { _ = store.Clear(ctx) })
}

func TestDemoQueriesRunAgainstFixture(t *testing.T) {
	store := setupTestStore(t)
	emptyGraph(t, store)
	ctx := context.Background()

	require.NoError(t, store.Setup(ctx))
	t.Cleanup(func() { _ = store.Clear(ctx) })

	for _, q := range knowledgegraph.DemoQueries() {
		result, err := store.Run(ctx, q.Cypher, nil)
		require.NoError(t, err, q.Description)
		assert.NotEmpty(t, result.Records, "%s should match fixture data", q.Description)
	}
}
