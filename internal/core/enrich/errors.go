package enrich

import (
	"fmt"

	"github.com/agenthands/sketchont/internal/core/model"
)

// ConflictError is returned when a rhombus declares a property as an object
// property and a datatype property at once.
type ConflictError struct {
	RhombusID string
	Property  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("rhombus %s: %s is declared as both object and datatype property", e.RhombusID, e.Property)
}

func (e *ConflictError) Diagnostic() model.Diagnostic {
	return model.Diagnostic{
		Message: "A rhombus can not be defined as Object Property and Datatype Property at the same time",
		ShapeID: e.RhombusID,
		Value:   e.Property,
	}
}

// MalformedRhombusError is returned when a rhombus, or an edge leaving it,
// cannot be interpreted.
type MalformedRhombusError struct {
	RhombusID string
	Property  string
	Reason    string
}

func (e *MalformedRhombusError) Error() string {
	return fmt.Sprintf("rhombus %s: %s", e.RhombusID, e.Reason)
}

func (e *MalformedRhombusError) Diagnostic() model.Diagnostic {
	return model.Diagnostic{
		Message: "Malformed rhombus: " + e.Reason,
		ShapeID: e.RhombusID,
		Value:   e.Property,
	}
}

// UnknownPropertyError is returned when a datatype property rhombus carries
// an annotation but no attribute of that name was drawn.
type UnknownPropertyError struct {
	RhombusID string
	Property  string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("rhombus %s: no attribute named %s", e.RhombusID, e.Property)
}

func (e *UnknownPropertyError) Diagnostic() model.Diagnostic {
	return model.Diagnostic{
		Message: "The datatype property of this rhombus is not defined in any attribute block",
		ShapeID: e.RhombusID,
		Value:   e.Property,
	}
}

type diagnoser interface {
	Diagnostic() model.Diagnostic
}
