// Package module keeps the ports modules publish for each other
package module

import (
	"reflect"
	"sync"
)

// Registry maps module names to their port sets
type Registry struct {
	mu    sync.RWMutex
	ports map[string]any
	order []string
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{ports: map[string]any{}}
}

// Register stores ports under name, replacing an earlier entry
func (r *Registry) Register(name string, ports any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ports[name]; !ok {
		r.order = append(r.order, name)
	}
	r.ports[name] = ports
}

// Names lists registered modules in registration order
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

func (r *Registry) get(name string) (any, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.ports[name]
	return p, ok
}

// Find returns the first value in name's ports that is a T
// the port set itself is tried first, then its exported struct fields
func Find[T any](r *Registry, name string) (T, bool) {
	var zero T
	p, ok := r.get(name)
	if !ok || p == nil {
		return zero, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}

	rv := reflect.ValueOf(p)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return zero, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}
