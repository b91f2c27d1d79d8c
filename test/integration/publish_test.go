//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/sketchont/internal/core"
	"github.com/agenthands/sketchont/internal/diagram"
	"github.com/agenthands/sketchont/internal/driver"
	"github.com/agenthands/sketchont/internal/logger"
)

func connect(t *testing.T) driver.GraphDriver {
	t.Helper()
	_ = godotenv.Load("../../.env")

	uri := os.Getenv("MEMGRAPH_URI")
	if uri == "" {
		t.Skip("Skipping integration test: MEMGRAPH_URI not set")
	}

	ctx := context.Background()
	d, err := driver.NewMemgraphDriver(ctx, uri, os.Getenv("MEMGRAPH_USER"), os.Getenv("MEMGRAPH_PASSWORD"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { d.Close(context.Background()) })
	require.NoError(t, d.BuildIndices(ctx))
	return d
}

func count(t *testing.T, d driver.GraphDriver, query, graphID string) int64 {
	t.Helper()
	res, err := d.ExecuteQuery(context.Background(), query, map[string]any{"graph_id": graphID})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	n, ok := res.Records[0].Values[0].(int64)
	require.True(t, ok)
	return n
}

func TestPublishFamily(t *testing.T) {
	d := connect(t)
	ctx := context.Background()

	dia, err := diagram.Load("../../internal/diagram/testdata/family.yaml")
	require.NoError(t, err)

	engine := core.NewEngine(core.DefaultOptions(), logger.Nop(), nil)
	engine.Driver = d

	res, err := engine.Resolve(ctx, dia, core.ModeRDF)
	require.NoError(t, err)
	require.NoError(t, engine.Publish(ctx, res))
	t.Cleanup(func() { engine.Unpublish(context.Background(), res.RunID) })

	assert.Equal(t, int64(2), count(t, d, `MATCH (n:Class {graph_id: $graph_id}) RETURN count(n)`, res.RunID))
	assert.Equal(t, int64(2), count(t, d, `MATCH (n:Individual {graph_id: $graph_id}) RETURN count(n)`, res.RunID))
	assert.Positive(t, count(t, d, `MATCH (:Property {graph_id: $graph_id})-[e:DOMAIN]->(:Class) RETURN count(e)`, res.RunID))
	assert.Positive(t, count(t, d, `MATCH (:Individual {graph_id: $graph_id})-[e:INSTANCE_OF]->(:Class) RETURN count(e)`, res.RunID))

	// Publishing the same run twice merges rather than duplicates.
	require.NoError(t, engine.Publish(ctx, res))
	assert.Equal(t, int64(2), count(t, d, `MATCH (n:Class {graph_id: $graph_id}) RETURN count(n)`, res.RunID))

	require.NoError(t, engine.Unpublish(ctx, res.RunID))
	assert.Zero(t, count(t, d, `MATCH (n {graph_id: $graph_id}) RETURN count(n)`, res.RunID))
}
