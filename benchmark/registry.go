package benchmark

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownImplementation is returned by Lookup for names nobody registered
var ErrUnknownImplementation = errors.New("unknown set implementation")

var (
	// implRegistry stores set factories mapped by implementation name
	implRegistry = make(map[string]Factory)
	registryLock = sync.Mutex{}
)

// Register registers a set implementation under the given name.
// This function is typically called from init() functions in packages providing sets.
// Returns an error if the name is already registered.
//
// Example usage:
//
//	func init() {
//	    if err := benchmark.Register("AVLTree", func() benchmark.IntSet { return NewAVLTree() }); err != nil {
//	        panic(err)
//	    }
//	}
func Register(name string, factory Factory) error {
	if name == "" || factory == nil {
		return fmt.Errorf("implementation name and factory must be set")
	}

	registryLock.Lock()
	defer registryLock.Unlock()

	if _, ok := implRegistry[name]; ok {
		return fmt.Errorf("implementation %s already exists", name)
	}

	implRegistry[name] = factory

	return nil
}

// Lookup returns the registered implementation with the given name
func Lookup(name string) (Implementation, error) {
	registryLock.Lock()
	factory, ok := implRegistry[name]
	registryLock.Unlock()

	if !ok {
		return Implementation{}, fmt.Errorf("%w: '%s', registered implementations are: %s",
			ErrUnknownImplementation, name, strings.Join(Registered(), "|"))
	}

	return Implementation{Name: name, New: factory}, nil
}

// LookupList resolves a comma separated list of implementation names, keeping the given order
func LookupList(list string) ([]Implementation, error) {
	var impls []Implementation
	for _, name := range SplitList(list) {
		impl, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		impls = append(impls, impl)
	}

	if len(impls) == 0 {
		return nil, fmt.Errorf("%w: empty implementation list", ErrUnknownImplementation)
	}

	return impls, nil
}

// Registered returns sorted names of all registered implementations
func Registered() []string {
	registryLock.Lock()
	defer registryLock.Unlock()

	names := make([]string, 0, len(implRegistry))
	for name := range implRegistry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
