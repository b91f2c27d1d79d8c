package association

import (
	"testing"

	"github.com/agenthands/sketchont/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() (*model.Collection[*model.Concept], *model.Collection[*model.AttributeBlock]) {
	concepts := model.NewCollection(
		&model.Concept{ID: "person", Prefix: "ex", URI: "Person"},
		&model.Concept{ID: "city", Prefix: "ex", URI: "City"},
	)
	blocks := model.NewCollection(
		&model.AttributeBlock{ID: "person-attrs", ConceptAssociated: "person"},
		&model.AttributeBlock{ID: "city-attrs", ConceptAssociated: "city"},
		&model.AttributeBlock{ID: "orphan", ConceptAssociated: "nowhere"},
		&model.AttributeBlock{ID: "floating"},
	)
	return concepts, blocks
}

func TestConceptAttributes(t *testing.T) {
	concepts, blocks := fixture()

	associations := ConceptAttributes(concepts, blocks)

	require.Equal(t, []string{"person", "city"}, associations.IDs())
	person, _ := associations.Get("person")
	assert.Equal(t, []string{"person-attrs"}, person.AttributeBlocks.IDs())
	assert.Equal(t, 0, person.Relations.Len())
	city, _ := associations.Get("city")
	assert.Equal(t, []string{"city-attrs"}, city.AttributeBlocks.IDs())
}

func TestConceptRelations_RewritesBlockEndpoints(t *testing.T) {
	concepts, blocks := fixture()
	associations := ConceptAttributes(concepts, blocks)
	relations := model.NewCollection(
		&model.Relation{ID: "livesIn", Source: "person-attrs", Target: "city-attrs", Type: model.TermObjectProperty},
		&model.Relation{ID: "knows", Source: "person", Target: "person", Type: model.TermObjectProperty},
		&model.Relation{ID: "dom", Source: "rh", Target: "person-attrs", Type: model.TermDomain},
		&model.Relation{ID: "conn", Source: "person-attrs", Target: "city", Type: model.TermConnector},
		&model.Relation{ID: "dangling", Source: "person", Type: model.TermObjectProperty},
		&model.Relation{ID: "stale", Source: "ghost", Target: "city-attrs", Type: model.TermObjectProperty},
	)

	stats := ConceptRelations(associations, relations)

	assert.Equal(t, 2, stats.Filed)
	assert.Equal(t, 1, stats.Unfiled)

	livesIn, _ := relations.Get("livesIn")
	assert.Equal(t, "person", livesIn.Source)
	assert.Equal(t, "city", livesIn.Target)

	person, _ := associations.Get("person")
	assert.Equal(t, []string{"livesIn", "knows"}, person.Relations.IDs())

	dom, _ := relations.Get("dom")
	assert.Equal(t, "person-attrs", dom.Target, "domain edges are left for enrichment")
	conn, _ := relations.Get("conn")
	assert.Equal(t, "person-attrs", conn.Source)

	stale, _ := relations.Get("stale")
	assert.Equal(t, "ghost", stale.Source)
	assert.Equal(t, "city", stale.Target, "target resolves independently of source")
}

func TestConceptRelations_NoBlockEndpointsRemain(t *testing.T) {
	concepts, blocks := fixture()
	associations := ConceptAttributes(concepts, blocks)
	relations := model.NewCollection(
		&model.Relation{ID: "r1", Source: "person-attrs", Target: "city-attrs", Type: model.TermObjectProperty},
		&model.Relation{ID: "r2", Source: "alice", Target: "city-attrs", Type: model.TermType},
		&model.Relation{ID: "r3", Source: "city-attrs", Target: "alice", Type: model.TermObjectProperty},
	)

	ConceptRelations(associations, relations)

	for id, relation := range relations.All() {
		for _, endpoint := range []string{relation.Source, relation.Target} {
			if b, ok := blocks.Get(endpoint); ok {
				_, owned := associations.Get(b.ConceptAssociated)
				assert.False(t, owned, "relation %s still points at block %s", id, endpoint)
			}
		}
	}
}

func TestConceptRelations_FirstOwnerWins(t *testing.T) {
	concepts := model.NewCollection(
		&model.Concept{ID: "a", Prefix: "ex", URI: "A"},
		&model.Concept{ID: "b", Prefix: "ex", URI: "B"},
	)
	associations := ConceptAttributes(concepts, model.NewCollection[*model.AttributeBlock]())
	shared := &model.AttributeBlock{ID: "shared"}
	for _, association := range associations.All() {
		association.AttributeBlocks.Put(shared)
	}
	relations := model.NewCollection(
		&model.Relation{ID: "r", Source: "shared", Target: "shared", Type: model.TermObjectProperty},
	)

	ConceptRelations(associations, relations)

	r, _ := relations.Get("r")
	assert.Equal(t, "a", r.Source)
	assert.Equal(t, "a", r.Target)
}
