// Package externals computes the externals of a plugin build: shared libraries
// are supplied by the host application, and so are their compiled factories.
package externals

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/ngplug/cli/internal/core"
	oerrors "github.com/ngplug/cli/internal/errors"
)

// ParseSharedLibs splits a comma-separated library list. Names are trimmed;
// an empty name (for example from a trailing comma) is a validation error.
func ParseSharedLibs(csv string) ([]string, error) {
	if csv == "" {
		return nil, nil
	}
	parts := strings.Split(csv, ",")
	names := make([]string, 0, len(parts))
	for i, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("shared library #%d in %q is empty", i+1, csv),
				"", "sharedLibs",
				"separate library names with single commas and no trailing comma",
			)
		}
		names = append(names, name)
	}
	return names, nil
}

// Synthesize returns the externals for a build sharing sharedLibs with its host.
//
// With no shared libraries, existing is returned unchanged. Otherwise the
// result has exactly two elements: a mapping externalizing each library (and
// any static mapping in existing) under its own name, followed by a
// FactoryResolver for "<lib>.ngfactory" requests.
func Synthesize(existing core.Externals, sharedLibs string) (core.Externals, error) {
	if sharedLibs == "" {
		return existing, nil
	}
	names, err := ParseSharedLibs(sharedLibs)
	if err != nil {
		return nil, err
	}

	mapping := core.ExternalMap{}
	var rest core.Externals
	for _, ext := range existing {
		if m, ok := ext.(core.ExternalMap); ok {
			for k, v := range m {
				mapping[k] = v
			}
			continue
		}
		rest = append(rest, ext)
	}
	for _, name := range names {
		mapping[name] = name
	}

	return core.Externals{mapping, NewFactoryResolver(names, rest...)}, nil
}

// FactoryResolver externalizes requests for shared library factories.
type FactoryResolver struct {
	libs     []string
	patterns []*regexp.Regexp
	next     core.Externals
}

// NewFactoryResolver builds a resolver for libs. Requests matching no factory
// pattern are passed to next, in order.
func NewFactoryResolver(libs []string, next ...core.External) *FactoryResolver {
	r := &FactoryResolver{
		libs:     append([]string(nil), libs...),
		patterns: make([]*regexp.Regexp, len(libs)),
		next:     next,
	}
	for i, lib := range libs {
		r.patterns[i] = FactoryPattern(lib)
	}
	return r
}

// FactoryPattern matches any request ending in "<lib>.ngfactory".
func FactoryPattern(lib string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(lib) + `\.ngfactory$`)
}

// Resolve implements core.External. The first library whose pattern matches
// names the external.
func (r *FactoryResolver) Resolve(request string) (string, bool) {
	for i, re := range r.patterns {
		if re.MatchString(request) {
			return r.libs[i], true
		}
	}
	return r.next.Resolve(request)
}

// Libs returns the shared libraries in declaration order.
func (r *FactoryResolver) Libs() []string {
	return append([]string(nil), r.libs...)
}

// MarshalJSON renders the resolver as its pattern sources.
func (r *FactoryResolver) MarshalJSON() ([]byte, error) {
	patterns := make([]string, len(r.patterns))
	for i, re := range r.patterns {
		patterns[i] = re.String()
	}
	return json.Marshal(struct {
		Factories []string       `json:"factories"`
		Next      core.Externals `json:"next,omitempty"`
	}{patterns, r.next})
}
