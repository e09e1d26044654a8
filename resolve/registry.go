package resolve

import (
	"sync"

	"github.com/VelixDevelopments/Imperat-sub001/errs"
	"github.com/VelixDevelopments/Imperat-sub001/types"
)

// Registry maps type descriptors to resolvers
type Registry struct {
	mu        sync.RWMutex
	resolvers map[string]Resolver
	delimiter types.ListDelimiterFunc
}

// NewRegistry creates a registry holding the built-in resolvers
func NewRegistry() *Registry {
	r := &Registry{resolvers: make(map[string]Resolver), delimiter: types.DefaultListDelimiter}
	r.Register(types.String, stringResolver{})
	r.Register(types.Bool, boolResolver{})
	r.Register(types.UUID, uuidResolver{})
	r.Register(types.Time, timeResolver{})
	r.Register(types.Duration, durationResolver{})

	return r
}

// Register binds resolver to the exact type t, overriding structural fallbacks
func (r *Registry) Register(t *types.Type, resolver Resolver) {
	r.RegisterNamed(t.String(), resolver)
}

// SetListDelimiter changes how array tokens are split into elements
func (r *Registry) SetListDelimiter(delimiter types.ListDelimiterFunc) {
	if delimiter == nil {
		delimiter = types.DefaultListDelimiter
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.delimiter = delimiter
}

// RegisterNamed binds resolver to a type name, typically the name of a types.Custom type
func (r *Registry) RegisterNamed(name string, resolver Resolver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolvers[name] = resolver
}

// Lookup finds the resolver for t. An exact registration wins; composites wrap the resolver
// of their inner types; numeric and enum kinds use structural resolvers.
func (r *Registry) Lookup(t *types.Type) (Resolver, error) {
	if t == nil {
		return nil, errs.ErrUnknownType.WithArgs("<nil>")
	}

	r.mu.RLock()
	resolver, ok := r.resolvers[t.String()]
	r.mu.RUnlock()
	if ok {
		return resolver, nil
	}

	kind := t.Kind()
	switch {
	case kind.IsComposite():
		return r.composite(t)
	case kind.IsNumeric():
		return numericResolver{kind: kind}, nil
	case kind == types.KindEnum:
		return enumResolver{}, nil
	}

	return nil, errs.ErrUnknownType.WithArgs(t.String())
}

// Has reports whether Lookup would succeed for t
func (r *Registry) Has(t *types.Type) bool {
	_, err := r.Lookup(t)
	return err == nil
}

func (r *Registry) composite(t *types.Type) (Resolver, error) {
	elem, err := r.Lookup(t.Elem())
	if err != nil {
		return nil, err
	}

	switch t.Kind() {
	case types.KindArray:
		r.mu.RLock()
		defer r.mu.RUnlock()
		return arrayResolver{elem: elem, delimiter: r.delimiter}, nil
	case types.KindCollection:
		return collectionResolver{elem: elem}, nil
	case types.KindMap:
		key, err := r.Lookup(t.Key())
		if err != nil {
			return nil, err
		}
		return mapResolver{key: key, value: elem}, nil
	case types.KindOptional:
		return optionalResolver{elem: elem}, nil
	case types.KindAsync:
		return asyncResolver{elem: elem}, nil
	}

	return nil, errs.ErrUnknownType.WithArgs(t.String())
}
