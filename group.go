package formkit

import (
	"fmt"
	"slices"
)

// Group is an ordered collection of named form fields validated together.
// Fields attach in a stable order that full validation passes follow, and
// cross-field re-validation links are wired explicitly with RevalidateOn.
//
// A Group and its fields follow a single-goroutine, synchronous evaluation
// model: construct one per request or session and do not share it across
// goroutines. Every validation pass runs to completion before the next
// triggering event is processed.
type Group struct {
	elements []Element
	index    map[string]Element
}

// NewGroup creates a group and attaches the given elements in order.
func NewGroup(elements ...Element) (*Group, error) {
	g := &Group{index: make(map[string]Element, len(elements))}
	if err := g.Attach(elements...); err != nil {
		return nil, err
	}
	return g, nil
}

// MustGroup is like NewGroup but panics on error. For form constructors with
// statically known field sets.
func MustGroup(elements ...Element) *Group {
	g, err := NewGroup(elements...)
	if err != nil {
		panic(err)
	}
	return g
}

// Attach adds elements to the end of the group's validation order. Names must
// be non-empty and unique within the group, and an element may belong to at
// most one group at a time. On error, elements attached before the failing
// one stay attached.
func (g *Group) Attach(elements ...Element) error {
	for _, el := range elements {
		name := el.Name()
		if name == "" {
			return ErrInvalidFieldName
		}
		if _, exists := g.index[name]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateField, name)
		}
		if err := el.attachTo(g); err != nil {
			return err
		}
		g.elements = append(g.elements, el)
		g.index[name] = el
	}
	return nil
}

// Detach removes the named field from the group and clears its parent
// pointer. A detached field keeps its value and watchers but drops out of
// validation passes, and conditional validators treat it as having no
// meaningful context.
func (g *Group) Detach(name string) error {
	el, ok := g.index[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrFieldNotFound, name)
	}
	delete(g.index, name)
	g.elements = slices.DeleteFunc(g.elements, func(e Element) bool { return e == el })
	el.detach()
	return nil
}

// Field returns the named element.
func (g *Group) Field(name string) (Element, bool) {
	el, ok := g.index[name]
	return el, ok
}

// Names returns the field names in attachment order.
func (g *Group) Names() []string {
	names := make([]string, 0, len(g.elements))
	for _, el := range g.elements {
		names = append(names, el.Name())
	}
	return names
}

// Validate runs a full validation pass over all fields in attachment order.
// It returns a FormErrors value aggregating every field that failed, or nil
// when the whole group is clean.
func (g *Group) Validate() error {
	failed := make(FormErrors)
	for _, el := range g.elements {
		if errs := el.Validate(); len(errs) > 0 {
			failed[el.Name()] = errs
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return failed
}

// ValidateField re-validates a single field. It returns the field's Errors
// map as an error when validation fails, or ErrFieldNotFound for unknown
// names.
func (g *Group) ValidateField(name string) error {
	el, ok := g.index[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrFieldNotFound, name)
	}
	if errs := el.Validate(); len(errs) > 0 {
		return errs
	}
	return nil
}

// Errs collects the error maps currently recorded on the group's fields,
// keyed by field name. It reflects the latest state after any validation
// pass, including re-validations triggered through RevalidateOn links.
func (g *Group) Errs() FormErrors {
	out := make(FormErrors)
	for _, el := range g.elements {
		if errs := el.Err(); len(errs) > 0 {
			out[el.Name()] = errs
		}
	}
	return out
}

// Valid reports whether every field's most recent validation recorded no
// errors.
func (g *Group) Valid() bool {
	for _, el := range g.elements {
		if !el.Valid() {
			return false
		}
	}
	return true
}

// Values snapshots the current field values keyed by name.
func (g *Group) Values() map[string]any {
	out := make(map[string]any, len(g.elements))
	for _, el := range g.elements {
		out[el.Name()] = el.anyValue()
	}
	return out
}

// Apply assigns typed values to the matching fields. Keys without a matching
// field are ignored; fields without a matching key keep their current value.
// Assignment goes through SetValue, so watchers and re-validation links fire
// per field in attachment order.
func (g *Group) Apply(values map[string]any) error {
	for _, el := range g.elements {
		v, ok := values[el.Name()]
		if !ok {
			continue
		}
		if err := el.setFromAny(v); err != nil {
			return err
		}
	}
	return nil
}

// Decode assigns raw form input (url.Values shaped) to the matching fields
// through each field's decoder. Keys without a matching field are ignored;
// fields absent from the input keep their current value, so callers binding
// HTML form posts should start from a freshly constructed group.
func (g *Group) Decode(values map[string][]string) error {
	for _, el := range g.elements {
		raw, ok := values[el.Name()]
		if !ok {
			continue
		}
		if err := el.decodeRaw(raw); err != nil {
			return err
		}
	}
	return nil
}

// RevalidateOn wires an explicit re-validation link: whenever the trigger
// field's value changes, the target fields are re-validated synchronously, in
// the order given. All named fields must exist at registration time. Links
// registered on the same trigger fire in registration order, interleaved with
// plain watchers, and go dead if the trigger is later detached.
func (g *Group) RevalidateOn(trigger string, targets ...string) error {
	el, ok := g.index[trigger]
	if !ok {
		return fmt.Errorf("%w: %s", ErrFieldNotFound, trigger)
	}
	for _, name := range targets {
		if _, ok := g.index[name]; !ok {
			return fmt.Errorf("%w: %s", ErrFieldNotFound, name)
		}
	}

	names := slices.Clone(targets)
	el.watchChange(func() {
		if current, ok := g.index[trigger]; !ok || current != el {
			return
		}
		for _, name := range names {
			if target, ok := g.index[name]; ok {
				target.Validate()
			}
		}
	})
	return nil
}

// Reset restores every field to its initial value and clears all recorded
// errors. Watchers are not notified.
func (g *Group) Reset() {
	for _, el := range g.elements {
		el.Reset()
	}
}
