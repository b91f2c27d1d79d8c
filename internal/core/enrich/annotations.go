package enrich

import (
	"strings"

	"github.com/agenthands/sketchont/internal/core/model"
)

// annotate applies one domain, range, subPropertyOf, inverseOf or
// equivalentProperty edge leaving rhombus.
func (r *run) annotate(rhombus *model.Rhombus, edge *model.Relation) error {
	if rhombus.URI == "" {
		return &MalformedRhombusError{RhombusID: rhombus.ID, Reason: "rhombus has no property name"}
	}

	if target, ok := r.diagram.Rhombuses.Get(edge.Target); ok {
		return r.annotateByName(rhombus, edge.Type, target.Name())
	}
	if edge.Type != model.TermDomain && edge.Type != model.TermRange {
		return nil
	}

	switch rhombus.Type {
	case model.TermObjectProperty:
		for _, relation := range r.objectProperties(rhombus) {
			setRelationAnnotation(relation, edge.Type, edge.Target)
		}
		r.stats.Annotated++

	case model.TermDatatypeProperty:
		handles := r.index.AttributeHandles(rhombus.Name())
		if len(handles) == 0 {
			return &UnknownPropertyError{RhombusID: rhombus.ID, Property: rhombus.Name()}
		}
		if edge.Type == model.TermRange {
			return r.reclassifyRange(rhombus, edge.Target, handles)
		}
		for _, h := range handles {
			h.Attribute().Domain = model.Ref(edge.Target)
		}
		r.stats.Annotated++
	}
	return nil
}

// annotateByName handles edges between two rhombuses, where the annotation
// value is the target property's name.
func (r *run) annotateByName(rhombus *model.Rhombus, kind model.Term, value string) error {
	switch rhombus.Type {
	case model.TermObjectProperty:
		for _, relation := range r.objectProperties(rhombus) {
			setRelationAnnotation(relation, kind, value)
		}
	case model.TermDatatypeProperty:
		handles := r.index.AttributeHandles(rhombus.Name())
		if len(handles) == 0 {
			return &UnknownPropertyError{RhombusID: rhombus.ID, Property: rhombus.Name()}
		}
		for _, h := range handles {
			setAttributeAnnotation(h.Attribute(), kind, value)
		}
	default:
		return nil
	}
	r.stats.Annotated++
	return nil
}

// reclassifyRange handles a datatype property whose range was drawn as a
// class box: the box is really a datatype, so it is removed from the
// concepts and its name becomes the attributes' datatype.
func (r *run) reclassifyRange(rhombus *model.Rhombus, target string, handles []AttributeHandle) error {
	concept, ok := r.diagram.Concepts.Delete(target)
	if !ok {
		return &MalformedRhombusError{
			RhombusID: rhombus.ID,
			Property:  rhombus.Name(),
			Reason:    "range of a datatype property does not point at a datatype",
		}
	}

	prefix, datatype := r.datatypeName(concept.Prefix, concept.URI)
	for _, h := range handles {
		attribute := h.Attribute()
		attribute.Range = true
		attribute.Datatype = datatype
		attribute.PrefixDatatype = prefix
	}
	r.stats.Reclassified++
	r.Log.Debug("concept reclassified as datatype", "concept", concept.ID, "datatype", model.QName(prefix, datatype))
	return nil
}

// datatypeName applies the default prefix to an unprefixed datatype. The
// parser's placeholder prefix comes with a trailing marker character on the
// local name, which is dropped.
func (r *run) datatypeName(prefix, name string) (string, string) {
	switch prefix {
	case r.Options.PlaceholderPrefix:
		if name != "" {
			name = name[:len(name)-1]
		}
		return r.Options.DatatypePrefix, name
	case "":
		return r.Options.DatatypePrefix, name
	}
	return prefix, name
}

func setRelationAnnotation(relation *model.Relation, kind model.Term, value string) {
	switch kind {
	case model.TermDomain:
		relation.Domain = model.Ref(value)
	case model.TermRange:
		relation.Range = model.Ref(value)
	case model.TermSubPropertyOf:
		relation.SubPropertyOf = value
	case model.TermInverseOf:
		relation.InverseOf = value
	case model.TermEquivalentProperty:
		relation.EquivalentProperty = value
	}
}

func setAttributeAnnotation(attribute *model.Attribute, kind model.Term, value string) {
	switch kind {
	case model.TermDomain:
		attribute.Domain = model.Ref(value)
	case model.TermRange:
		attribute.Range = true
		attribute.PrefixDatatype, attribute.Datatype = splitQName(value)
	case model.TermSubPropertyOf:
		attribute.SubPropertyOf = value
	case model.TermInverseOf:
		attribute.InverseOf = value
	case model.TermEquivalentProperty:
		attribute.EquivalentProperty = value
	}
}

func splitQName(name string) (string, string) {
	prefix, local, ok := strings.Cut(name, ":")
	if !ok {
		return "", name
	}
	return prefix, local
}
