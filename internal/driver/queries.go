package driver

// Every node and edge carries the graph_id of the run that produced it, and
// node ids are diagram element ids, unique within one graph.

var IndexQueries = []string{
	"CREATE INDEX ON :Class(graph_id);",
	"CREATE INDEX ON :Property(graph_id);",
	"CREATE INDEX ON :Individual(graph_id);",
	"CREATE INDEX ON :Value(graph_id);",

	"CREATE INDEX ON :Class(id);",
	"CREATE INDEX ON :Property(id);",
	"CREATE INDEX ON :Individual(id);",
}

const (
	SaveClassQuery = `
		MERGE (n:Class {graph_id: $graph_id, id: $id})
		SET n.name = $name
		RETURN n.id AS id
	`

	// Properties always carry :Property; the kind label is added by the
	// kind-specific variants below.
	saveProperty = `
		MERGE (n:Property {graph_id: $graph_id, id: $id})
		SET n.name = $name,
			n.kind = $kind,
			n.functional = $functional,
			n.inverse_functional = $inverse_functional,
			n.transitive = $transitive,
			n.symmetric = $symmetric,
			n.sub_property_of = $sub_property_of,
			n.inverse_of = $inverse_of,
			n.equivalent_property = $equivalent_property,
			n.datatype = $datatype
	`

	SavePropertyQuery         = saveProperty + `RETURN n.id AS id`
	SaveObjectPropertyQuery   = saveProperty + `SET n:ObjectProperty RETURN n.id AS id`
	SaveDatatypePropertyQuery = saveProperty + `SET n:DatatypeProperty RETURN n.id AS id`

	SaveIndividualQuery = `
		MERGE (n:Individual {graph_id: $graph_id, id: $id})
		SET n.name = $name,
			n.types = $types
		RETURN n.id AS id
	`

	SaveDomainEdgeQuery = `
		MATCH (p:Property {graph_id: $graph_id, id: $property_id})
		MATCH (c:Class {graph_id: $graph_id, id: $class_id})
		MERGE (p)-[e:DOMAIN {graph_id: $graph_id}]->(c)
		RETURN p.id AS id
	`

	SaveRangeEdgeQuery = `
		MATCH (p:Property {graph_id: $graph_id, id: $property_id})
		MATCH (c:Class {graph_id: $graph_id, id: $class_id})
		MERGE (p)-[e:RANGE {graph_id: $graph_id}]->(c)
		RETURN p.id AS id
	`

	SaveHasAttributeEdgeQuery = `
		MATCH (c:Class {graph_id: $graph_id, id: $class_id})
		MATCH (p:Property {graph_id: $graph_id, id: $property_id})
		MERGE (c)-[e:HAS_ATTRIBUTE {graph_id: $graph_id}]->(p)
		RETURN c.id AS id
	`

	// Individual types are class names rather than ids; enumerations and
	// classes that were never drawn match no node and are kept on the
	// individual's types property only.
	SaveInstanceOfEdgeQuery = `
		MATCH (i:Individual {graph_id: $graph_id, id: $individual_id})
		MATCH (c:Class {graph_id: $graph_id, name: $class_name})
		MERGE (i)-[e:INSTANCE_OF {graph_id: $graph_id}]->(c)
		RETURN i.id AS id
	`

	SaveRelatesToEdgeQuery = `
		MATCH (source {graph_id: $graph_id, id: $source_id})
		MATCH (target {graph_id: $graph_id, id: $target_id})
		MERGE (source)-[e:RELATES_TO {graph_id: $graph_id, id: $id}]->(target)
		SET e.name = $name,
			e.kind = $kind
		RETURN e.id AS id
	`

	SaveValueAttributeEdgeQuery = `
		MATCH (i:Individual {graph_id: $graph_id, id: $individual_id})
		MERGE (v:Value {graph_id: $graph_id, id: $value_id})
		MERGE (i)-[e:HAS_ATTRIBUTE {graph_id: $graph_id, id: $id}]->(v)
		SET e.name = $name
		RETURN e.id AS id
	`

	DeleteGraphQuery = `
		MATCH (n {graph_id: $graph_id})
		DETACH DELETE n
	`
)
