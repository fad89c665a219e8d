package listing

import (
	"errors"
	"strings"
)

var ErrEmptyServiceNames = errors.New("service name set cannot be empty")

// ServiceNameSet partitions listings by the name of their category: names in
// the set are services, everything else is a space. Matching happens in the
// store and is exact, so names are only trimmed here.
type ServiceNameSet struct {
	names []string
	index map[string]struct{}
}

func NewServiceNameSet(names []string) (ServiceNameSet, error) {
	set := ServiceNameSet{index: make(map[string]struct{}, len(names))}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := set.index[n]; ok {
			continue
		}
		set.index[n] = struct{}{}
		set.names = append(set.names, n)
	}
	if len(set.names) == 0 {
		return ServiceNameSet{}, ErrEmptyServiceNames
	}
	return set, nil
}

// Names returns the set in insertion order.
func (s ServiceNameSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s ServiceNameSet) Len() int {
	return len(s.names)
}
