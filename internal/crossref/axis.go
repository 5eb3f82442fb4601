package crossref

import "reflect"

// axis is an insertion-ordered set of keys with a key-to-index map for
// fast membership tests. The zero value is an empty axis ready for use.
type axis[K comparable] struct {
	keys    []K
	indexes map[K]int
}

// newAxis builds an axis from keys, skipping nil keys and any key that
// already appeared earlier in the list.
func newAxis[K comparable](keys []K) axis[K] {
	a := axis[K]{indexes: make(map[K]int, len(keys))}
	for _, k := range keys {
		a.add(k)
	}
	return a
}

// add appends key to the end of the axis. It returns false, leaving the
// axis unchanged, if key is nil or is already present.
func (a *axis[K]) add(key K) bool {
	if isNilKey(key) {
		return false
	}
	if a.indexes == nil {
		a.indexes = make(map[K]int)
	}
	if _, ok := a.indexes[key]; ok {
		return false
	}
	a.indexes[key] = len(a.keys)
	a.keys = append(a.keys, key)
	return true
}

func (a *axis[K]) contains(key K) bool {
	_, ok := a.indexes[key]
	return ok
}

// index returns the position of key, or -1 if it is missing.
func (a *axis[K]) index(key K) int {
	idx, ok := a.indexes[key]
	if !ok {
		return -1
	}
	return idx
}

func (a *axis[K]) len() int {
	return len(a.keys)
}

// list returns a copy of the keys in order.
func (a *axis[K]) list() []K {
	out := make([]K, len(a.keys))
	copy(out, a.keys)
	return out
}

func (a *axis[K]) reset() {
	a.keys = nil
	a.indexes = nil
}

// clone returns an independent copy of the axis.
func (a *axis[K]) clone() axis[K] {
	c := axis[K]{
		keys:    a.list(),
		indexes: make(map[K]int, len(a.indexes)),
	}
	for k, i := range a.indexes {
		c.indexes[k] = i
	}
	return c
}

// isNilKey reports whether key is a nil interface, pointer, channel or
// unsafe pointer. Zero values of other kinds, such as 0 or "", are
// ordinary keys.
func isNilKey[K comparable](key K) bool {
	v := any(key)
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
