package enrich

import (
	"github.com/agenthands/sketchont/internal/core/model"
)

// characterize applies the characteristic or kind declared by rhombus to the
// properties of the same name.
func (r *run) characterize(rhombus *model.Rhombus) error {
	if rhombus.URI == "" {
		return &MalformedRhombusError{RhombusID: rhombus.ID, Reason: "rhombus has no property name"}
	}

	name := rhombus.Name()
	relations := r.index.Relations(name)

	switch rhombus.Type {
	case model.TermInverseFunctionalProperty, model.TermTransitiveProperty, model.TermSymmetricProperty:
		if len(relations) == 0 {
			relations = []*model.Relation{r.synthesize(rhombus, model.TermObjectProperty)}
		}
		for _, relation := range relations {
			setCharacteristic(relation, rhombus.Type)
			promote(relation, model.TermObjectProperty)
		}

	case model.TermFunctionalProperty:
		switch attributes := r.index.Attributes(name); {
		case len(relations) > 0:
			for _, relation := range relations {
				relation.Functional = true
			}
		case len(attributes) > 0:
			for _, attribute := range attributes {
				attribute.Functional = true
			}
		default:
			// The kind is unknown until another rhombus declares it.
			r.synthesize(rhombus, model.TermFunctionalProperty).Functional = true
		}

	case model.TermDatatypeProperty:
		if err := r.declareKind(rhombus, relations, model.TermDatatypeProperty, model.TermObjectProperty); err != nil {
			return err
		}

	case model.TermObjectProperty:
		if len(relations) == 0 {
			r.synthesize(rhombus, model.TermObjectProperty)
			break
		}
		if err := r.declareKind(rhombus, relations, model.TermObjectProperty, model.TermDatatypeProperty); err != nil {
			return err
		}

	default:
		return nil
	}

	r.stats.Flagged++
	return nil
}

// declareKind promotes functional-only records to kind. A record already
// classified as other keeps its classification and yields a single conflict
// for the rhombus, however many records carry the name.
func (r *run) declareKind(rhombus *model.Rhombus, relations []*model.Relation, kind, other model.Term) error {
	var conflict bool
	for _, relation := range relations {
		if relation.Type == other {
			conflict = true
			continue
		}
		promote(relation, kind)
	}
	if conflict {
		return &ConflictError{RhombusID: rhombus.ID, Property: rhombus.Name()}
	}
	return nil
}

// promote resolves a record stored as functional with unknown kind.
func promote(relation *model.Relation, kind model.Term) {
	if relation.Type != model.TermFunctionalProperty {
		return
	}
	relation.Type = kind
	relation.Functional = true
}

func setCharacteristic(relation *model.Relation, characteristic model.Term) {
	switch characteristic {
	case model.TermInverseFunctionalProperty:
		relation.InverseFunctional = true
	case model.TermTransitiveProperty:
		relation.Transitive = true
	case model.TermSymmetricProperty:
		relation.Symmetric = true
	}
}
