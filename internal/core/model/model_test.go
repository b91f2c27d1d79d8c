package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCollection_Order(t *testing.T) {
	c := NewCollection(
		&Concept{ID: "b"},
		&Concept{ID: "a"},
		&Concept{ID: "c"},
	)
	c.Put(&Concept{ID: "a", URI: "Replaced"})

	assert.Equal(t, []string{"b", "a", "c"}, c.IDs())
	a, _ := c.Get("a")
	assert.Equal(t, "Replaced", a.URI)

	var visited []string
	for id := range c.All() {
		visited = append(visited, id)
		if id == "b" {
			c.Delete("a")
			c.Put(&Concept{ID: "d"})
		}
	}
	assert.Equal(t, []string{"b", "c"}, visited)
	assert.Equal(t, []string{"b", "c", "d"}, c.IDs())

	_, ok := c.Delete("missing")
	assert.False(t, ok)
	assert.Equal(t, 3, c.Len())
}

func TestCollection_ZeroValue(t *testing.T) {
	var c Collection[*Value]
	assert.False(t, c.Has("x"))
	assert.Empty(t, c.Values())
	c.Put(&Value{ID: "x"})
	assert.True(t, c.Has("x"))
}

func TestCollection_Decode(t *testing.T) {
	var c Collection[*Concept]
	require.NoError(t, json.Unmarshal([]byte(`[{"id":"z"},{"id":"y"}]`), &c))
	assert.Equal(t, []string{"z", "y"}, c.IDs())

	assert.ErrorContains(t, json.Unmarshal([]byte(`[{"id":"z"},{"id":"z"}]`), &c), "duplicate element id 'z'")
	assert.ErrorContains(t, json.Unmarshal([]byte(`[{"uri":"x"}]`), &c), "id is required")
	assert.ErrorContains(t, json.Unmarshal([]byte(`[null]`), &c), "null element")

	require.NoError(t, yaml.Unmarshal([]byte("- id: q\n- id: p\n"), &c))
	assert.Equal(t, []string{"q", "p"}, c.IDs())
}

func TestDiagram_JSON(t *testing.T) {
	d := &Diagram{}
	d.Concepts.Put(&Concept{ID: "c", Prefix: "ex", URI: "Person"})
	d.Relations.Put(&Relation{ID: "r", Source: "c", Target: "c", Type: TermObjectProperty, Prefix: "ex", URI: "knows", Domain: "c"})

	data, err := json.Marshal(d)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.JSONEq(t, `[{"id":"c","prefix":"ex","uri":"Person"}]`, string(raw["concepts"]))
	assert.JSONEq(t, `[]`, string(raw["values"]))

	var relations []map[string]any
	require.NoError(t, json.Unmarshal(raw["relations"], &relations))
	require.Len(t, relations, 1)
	assert.Equal(t, "c", relations[0]["domain"])
	assert.Equal(t, false, relations[0]["range"])
}

func TestRef(t *testing.T) {
	var r Ref
	require.NoError(t, json.Unmarshal([]byte(`false`), &r))
	assert.False(t, r.IsSet())
	require.NoError(t, json.Unmarshal([]byte(`"c1"`), &r))
	assert.Equal(t, Ref("c1"), r)
	assert.Error(t, json.Unmarshal([]byte(`12`), &r))

	var a Attribute
	require.NoError(t, yaml.Unmarshal([]byte("uri: age\ndomain: false\n"), &a))
	assert.False(t, a.Domain.IsSet())
	require.NoError(t, yaml.Unmarshal([]byte("uri: age\ndomain: person\n"), &a))
	assert.Equal(t, Ref("person"), a.Domain)
}

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.Empty())
	assert.NoError(t, d.Err())

	d.Add(CheckRhombuses, Diagnostic{Message: "first", ShapeID: "r1"})
	d.Add(CheckOneOf, Diagnostic{Message: "member", ShapeID: "h"})
	d.Add(CheckRhombuses, Diagnostic{Message: "second", ShapeID: "r2", Value: "ex:p"})

	assert.Equal(t, []string{CheckRhombuses, CheckOneOf}, d.Checks())
	assert.Len(t, d.Get(CheckRhombuses), 2)
	assert.Equal(t, 3, d.Len())

	err := d.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Rhombuses: second (shape r2, value ex:p)")

	data, err := json.Marshal(&d)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"Rhombuses": [
			{"message": "first", "shape_id": "r1"},
			{"message": "second", "shape_id": "r2", "value": "ex:p"}
		],
		"owl:oneOf": [{"message": "member", "shape_id": "h"}]
	}`, string(data))
}

func TestFindOwner(t *testing.T) {
	associations := NewCollection(
		&ConceptAssociation{Concept: &Concept{ID: "a"}},
		&ConceptAssociation{Concept: &Concept{ID: "b"}},
	)
	first, _ := associations.Get("a")
	first.AttributeBlocks.Put(&AttributeBlock{ID: "shared"})
	second, _ := associations.Get("b")
	second.AttributeBlocks.Put(&AttributeBlock{ID: "shared"})

	owner, ok := FindOwner(associations, "shared")
	require.True(t, ok)
	assert.Equal(t, "a", owner.Concept.ID)

	_, ok = FindOwner(associations, "")
	assert.False(t, ok)
}

func TestTerm(t *testing.T) {
	assert.True(t, TermRange.Annotation())
	assert.True(t, TermRange.Structural())
	assert.True(t, TermInverseOf.Annotation())
	assert.False(t, TermInverseOf.Structural())
	assert.False(t, TermObjectProperty.Annotation())
	assert.Equal(t, "ex:a", QName("ex", "a"))
}
