package association

import (
	"testing"

	"github.com/agenthands/sketchont/internal/core/model"
	"github.com/stretchr/testify/assert"
)

func TestIndividualAssociations(t *testing.T) {
	individuals := model.NewCollection(
		&model.Individual{ID: "alice", Prefix: "ex", URI: "Alice"},
		&model.Individual{ID: "bob", Prefix: "ex", URI: "Bob"},
	)
	values := model.NewCollection(&model.Value{ID: "v42"})
	relations := model.NewCollection(
		&model.Relation{ID: "knows", Source: "alice", Target: "bob", Type: model.TermObjectProperty, Prefix: "ex", URI: "knows"},
		&model.Relation{ID: "same", Source: "alice", Target: "bob", Type: model.TermSameAs, Prefix: "ex", URI: "whatever"},
		&model.Relation{ID: "diff", Source: "bob", Target: "alice", Type: model.TermDifferentFrom},
		&model.Relation{ID: "age", Source: "alice", Target: "v42", Type: model.TermObjectProperty, Prefix: "ex", URI: "age"},
		&model.Relation{ID: "toClass", Source: "alice", Target: "person", Type: model.TermObjectProperty},
		&model.Relation{ID: "typed", Source: "alice", Target: "bob", Type: model.TermType},
	)

	associations := IndividualRelations(individuals, relations)
	filed := IndividualAttributes(associations, values, relations)

	alice, _ := associations.Get("alice")
	assert.Equal(t, []string{"knows", "same"}, alice.Relations.IDs())
	assert.Equal(t, []string{"age"}, alice.Attributes.IDs())
	assert.Equal(t, 1, filed)

	same, _ := relations.Get("same")
	assert.Equal(t, "owl:sameAs", same.Name())
	diff, _ := relations.Get("diff")
	assert.Equal(t, "owl:differentFrom", diff.Name())

	age, _ := relations.Get("age")
	assert.Equal(t, model.TermDatatypeProperty, age.Type)

	toClass, _ := relations.Get("toClass")
	assert.Equal(t, model.TermObjectProperty, toClass.Type, "unmatched edges are untouched")
	assert.False(t, alice.Relations.Has("toClass"))
	assert.False(t, alice.Attributes.Has("toClass"))

	bob, _ := associations.Get("bob")
	assert.Equal(t, []string{"diff"}, bob.Relations.IDs())
}
