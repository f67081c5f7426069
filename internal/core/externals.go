package core

import (
	"encoding/json"
	"fmt"
	"sort"
)

// External decides whether a requested module id stays out of the bundle.
type External interface {
	// Resolve returns the name the request is externalized under, or false to
	// let the bundler resolve the module normally.
	Resolve(request string) (string, bool)
}

// Externals is an ordered list of external matchers. The first match wins.
type Externals []External

// Resolve consults each matcher in order.
func (e Externals) Resolve(request string) (string, bool) {
	for _, ext := range e {
		if name, ok := ext.Resolve(request); ok {
			return name, true
		}
	}
	return "", false
}

// Clone copies the list. ExternalMap elements are copied; other matchers are
// treated as immutable and shared.
func (e Externals) Clone() Externals {
	if e == nil {
		return nil
	}
	out := make(Externals, len(e))
	for i, ext := range e {
		if m, ok := ext.(ExternalMap); ok {
			ext = m.Clone()
		}
		out[i] = ext
	}
	return out
}

// ExternalMap externalizes exact requests: key is the request, value the
// external name it is supplied under.
type ExternalMap map[string]string

// Resolve implements External.
func (m ExternalMap) Resolve(request string) (string, bool) {
	name, ok := m[request]
	return name, ok
}

// Clone copies the map.
func (m ExternalMap) Clone() ExternalMap {
	out := make(ExternalMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Keys returns the map keys sorted.
func (m ExternalMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ExternalFunc adapts a function to External.
type ExternalFunc func(request string) (string, bool)

// Resolve implements External.
func (f ExternalFunc) Resolve(request string) (string, bool) {
	return f(request)
}

// MarshalJSON renders functions as an opaque marker.
func (f ExternalFunc) MarshalJSON() ([]byte, error) {
	return json.Marshal("<func>")
}

// ExternalsFromValue converts a decoded YAML/JSON value into Externals.
//
// Accepted shapes:
//
//	rxjs                         # a single name, externalized as itself
//	{rxjs: rxjs, lodash: _}      # request -> external name
//	[rxjs, {lodash: _}]          # any mix of the above
func ExternalsFromValue(v any) (Externals, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		if val == "" {
			return nil, nil
		}
		return Externals{ExternalMap{val: val}}, nil
	case map[string]any:
		m, err := externalMapFromValue(val)
		if err != nil {
			return nil, err
		}
		return Externals{m}, nil
	case map[string]string:
		return Externals{ExternalMap(val).Clone()}, nil
	case []any:
		var out Externals
		for i, item := range val {
			ext, err := ExternalsFromValue(item)
			if err != nil {
				return nil, fmt.Errorf("externals[%d]: %w", i, err)
			}
			out = append(out, ext...)
		}
		return out, nil
	case []string:
		m := ExternalMap{}
		for _, name := range val {
			m[name] = name
		}
		return Externals{m}, nil
	default:
		return nil, fmt.Errorf("unsupported externals value of type %T", v)
	}
}

func externalMapFromValue(in map[string]any) (ExternalMap, error) {
	m := make(ExternalMap, len(in))
	for k, v := range in {
		name, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("external %q: value must be a string, got %T", k, v)
		}
		m[k] = name
	}
	return m, nil
}
