package appearance

import (
	"sort"
	"strings"
)

// Document is the style sink the controller mutates: the analog of a page's
// root element. It records marker classes, data attributes, custom
// properties, and per-element inline backgrounds. Keeping it an explicit
// value (instead of ambient globals) lets the TUI read resolved styles from
// it and lets tests inject a fresh one.
//
// Document is not safe for concurrent mutation on its own; the controller
// serializes all writes (see Controller.Apply).
type Document struct {
	classes []string
	attrs   map[string]string
	props   map[string]string

	body       *Element
	containers map[string]*Element

	// generation counts forced style flushes, the analog of reading
	// offsetHeight after a batch of mutations.
	generation int
}

// Element is a style target that can carry an inline background override.
// The animated backdrop renders *behind* elements, so dark/light toggles
// clear these overrides rather than painting opaque colors.
type Element struct {
	background string
}

func (e *Element) SetBackground(color string) {
	if e == nil {
		return
	}
	e.background = strings.TrimSpace(color)
}

func (e *Element) ClearBackground() {
	if e == nil {
		return
	}
	e.background = ""
}

// Background returns the inline background override, empty when cleared.
func (e *Element) Background() string {
	if e == nil {
		return ""
	}
	return e.background
}

func NewDocument() *Document {
	return &Document{
		attrs:      map[string]string{},
		props:      map[string]string{},
		body:       &Element{},
		containers: map[string]*Element{},
	}
}

func (d *Document) Body() *Element { return d.body }

// RegisterContainer declares a translucency-safe container. The controller
// clears background overrides on every registered container when toggling
// dark/light, so components opt in here instead of the controller
// enumerating concrete selectors.
func (d *Document) RegisterContainer(selector string) *Element {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return nil
	}
	if el, ok := d.containers[selector]; ok {
		return el
	}
	el := &Element{}
	d.containers[selector] = el
	return el
}

// Container looks up a registered container. Absent selectors return nil;
// Element methods treat a nil receiver as a no-op, so lookups never need an
// existence check first.
func (d *Document) Container(selector string) *Element {
	return d.containers[strings.TrimSpace(selector)]
}

func (d *Document) containerList() []*Element {
	keys := make([]string, 0, len(d.containers))
	for k := range d.containers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*Element, 0, len(keys))
	for _, k := range keys {
		out = append(out, d.containers[k])
	}
	return out
}

func (d *Document) AddClass(name string) {
	name = strings.TrimSpace(name)
	if name == "" || d.HasClass(name) {
		return
	}
	d.classes = append(d.classes, name)
}

func (d *Document) RemoveClass(name string) {
	for i, c := range d.classes {
		if c == name {
			d.classes = append(d.classes[:i], d.classes[i+1:]...)
			return
		}
	}
}

func (d *Document) HasClass(name string) bool {
	for _, c := range d.classes {
		if c == name {
			return true
		}
	}
	return false
}

// Classes returns a copy of the root class list in application order.
func (d *Document) Classes() []string {
	return append([]string(nil), d.classes...)
}

func (d *Document) SetAttr(key, value string) {
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	d.attrs[key] = value
}

func (d *Document) Attr(key string) string { return d.attrs[key] }

// SetProp writes a custom property (e.g. "--color-primary") on the root.
func (d *Document) SetProp(name, value string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	d.props[name] = value
}

func (d *Document) Prop(name string) string { return d.props[name] }

// Props returns a copy of all custom properties.
func (d *Document) Props() map[string]string {
	out := make(map[string]string, len(d.props))
	for k, v := range d.props {
		out[k] = v
	}
	return out
}

// FlushStyle forces a synchronous style recompute marker. Anything that
// measures after an apply can compare generations to know styles are
// committed.
func (d *Document) FlushStyle() { d.generation++ }

func (d *Document) Generation() int { return d.generation }
