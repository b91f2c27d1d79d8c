package model

import (
	"encoding/json"
	"fmt"
	"iter"
	"reflect"

	"gopkg.in/yaml.v3"
)

// Keyed is implemented by every diagram element stored in a Collection.
type Keyed interface {
	ElementID() string
}

// Collection is a map of diagram elements that remembers insertion order.
// Every "first match wins" rule in the pipeline iterates in this order.
// The zero value is ready to use.
type Collection[T Keyed] struct {
	order []string
	items map[string]T
}

func NewCollection[T Keyed](items ...T) *Collection[T] {
	c := &Collection[T]{}
	for _, item := range items {
		c.Put(item)
	}
	return c
}

// Put inserts item, or replaces the element with the same id in place.
func (c *Collection[T]) Put(item T) {
	if c.items == nil {
		c.items = make(map[string]T)
	}
	id := item.ElementID()
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = item
}

func (c *Collection[T]) Get(id string) (T, bool) {
	item, ok := c.items[id]
	return item, ok
}

func (c *Collection[T]) Has(id string) bool {
	_, ok := c.items[id]
	return ok
}

// Delete removes id and returns the removed element.
func (c *Collection[T]) Delete(id string) (T, bool) {
	item, ok := c.items[id]
	if !ok {
		return item, false
	}
	delete(c.items, id)
	for i, key := range c.order {
		if key == id {
			c.order = append(c.order[:i:i], c.order[i+1:]...)
			break
		}
	}
	return item, true
}

func (c *Collection[T]) Len() int {
	return len(c.items)
}

func (c *Collection[T]) IDs() []string {
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	return ids
}

// All iterates in insertion order. Elements deleted during iteration are
// skipped; elements added during iteration are not visited.
func (c *Collection[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, id := range c.IDs() {
			item, ok := c.items[id]
			if !ok {
				continue
			}
			if !yield(id, item) {
				return
			}
		}
	}
}

// Values returns the elements in insertion order.
func (c *Collection[T]) Values() []T {
	out := make([]T, 0, len(c.order))
	for _, item := range c.All() {
		out = append(out, item)
	}
	return out
}

// MarshalJSON has a value receiver so collections embedded by value in
// other structs encode as arrays.
func (c Collection[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Values())
}

func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	return c.reset(items)
}

func (c *Collection[T]) UnmarshalYAML(node *yaml.Node) error {
	var items []T
	if err := node.Decode(&items); err != nil {
		return err
	}
	return c.reset(items)
}

func (c *Collection[T]) reset(items []T) error {
	c.order = nil
	c.items = make(map[string]T, len(items))
	for i, item := range items {
		if v := reflect.ValueOf(item); !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
			return fmt.Errorf("element %d: null element", i)
		}
		id := item.ElementID()
		if id == "" {
			return fmt.Errorf("element %d: id is required", i)
		}
		if c.Has(id) {
			return fmt.Errorf("duplicate element id '%s'", id)
		}
		c.Put(item)
	}
	return nil
}
