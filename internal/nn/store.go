package nn

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/born-ml/maskconv/internal/tensor"
)

// scopeSeparator joins scope names into parameter paths.
const scopeSeparator = "/"

// ParameterStore allocates named parameters under hierarchical scopes.
//
// All scopes derived from one store share its table, so a name can only be
// created once per model:
//
//	store := nn.NewParameterStore[B]()
//	conv := store.Scope("conv1")
//	filters, _ := conv.Create("Filters", t) // "conv1/Filters"
//	_, err := conv.Create("Filters", t)     // ErrDuplicateParameter
//
// ParameterStore is safe for concurrent use.
type ParameterStore[B tensor.Backend] struct {
	prefix string
	table  *parameterTable[B]
}

type parameterTable[B tensor.Backend] struct {
	mu     sync.RWMutex
	params map[string]*Parameter[B]
}

// NewParameterStore creates an empty root store.
func NewParameterStore[B tensor.Backend]() *ParameterStore[B] {
	return &ParameterStore[B]{
		table: &parameterTable[B]{params: make(map[string]*Parameter[B])},
	}
}

// Scope returns a child store whose names are prefixed with name + "/".
func (s *ParameterStore[B]) Scope(name string) *ParameterStore[B] {
	return &ParameterStore[B]{
		prefix: s.qualify(name) + scopeSeparator,
		table:  s.table,
	}
}

// Prefix returns the scope path including the trailing separator ("" at the root).
func (s *ParameterStore[B]) Prefix() string {
	return s.prefix
}

func (s *ParameterStore[B]) qualify(name string) string {
	return s.prefix + name
}

// Create registers t under name in this scope.
func (s *ParameterStore[B]) Create(name string, t *tensor.Tensor[float32, B]) (*Parameter[B], error) {
	if name == "" || strings.Contains(name, scopeSeparator) {
		return nil, configErr("name", name, "parameter names must be non-empty and must not contain "+scopeSeparator)
	}

	full := s.qualify(name)

	s.table.mu.Lock()
	defer s.table.mu.Unlock()

	if _, exists := s.table.params[full]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateParameter, full)
	}

	p := NewParameter(full, t)
	s.table.params[full] = p
	return p, nil
}

// Get looks up a parameter by its name relative to this scope.
func (s *ParameterStore[B]) Get(name string) (*Parameter[B], bool) {
	s.table.mu.RLock()
	defer s.table.mu.RUnlock()

	p, ok := s.table.params[s.qualify(name)]
	return p, ok
}

// Names returns the fully qualified names of all parameters in this scope, sorted.
func (s *ParameterStore[B]) Names() []string {
	s.table.mu.RLock()
	defer s.table.mu.RUnlock()

	names := make([]string, 0, len(s.table.params))
	for name := range s.table.params {
		if strings.HasPrefix(name, s.prefix) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Parameters returns the parameters in this scope, sorted by name.
func (s *ParameterStore[B]) Parameters() []*Parameter[B] {
	names := s.Names()

	s.table.mu.RLock()
	defer s.table.mu.RUnlock()

	params := make([]*Parameter[B], 0, len(names))
	for _, name := range names {
		params = append(params, s.table.params[name])
	}
	return params
}

// Len returns the number of parameters in this scope.
func (s *ParameterStore[B]) Len() int {
	return len(s.Names())
}
