package category

import "errors"

var ErrDuplicateSeedName = errors.New("category name appears more than once in seed list")

// Seed is one desired (name, type) pair of the catalog.
type Seed struct {
	Name string
	Type Type
}

// DefaultSeeds is the canonical catalog. Its SERVICE entries also define the
// default service-name set used to reclassify listings.
var DefaultSeeds = []Seed{
	{Name: "Salão de Festas", Type: TypeSpace},
	{Name: "Chácara", Type: TypeSpace},
	{Name: "Espaço Corporativo", Type: TypeSpace},
	{Name: "Auditório", Type: TypeSpace},
	{Name: "Estúdio", Type: TypeSpace},
	{Name: "Rooftop", Type: TypeSpace},
	{Name: "Casa de Praia", Type: TypeSpace},
	{Name: "DJ", Type: TypeService},
	{Name: "Buffet", Type: TypeService},
	{Name: "Fotografia", Type: TypeService},
	{Name: "Decoração", Type: TypeService},
	{Name: "Som", Type: TypeService},
	{Name: "Iluminação", Type: TypeService},
	{Name: "Bartender", Type: TypeService},
	{Name: "Segurança", Type: TypeService},
	{Name: "Cerimonialista", Type: TypeService},
	{Name: "Tendas", Type: TypeEquipment},
	{Name: "Mesas e Cadeiras", Type: TypeEquipment},
	{Name: "Gerador", Type: TypeEquipment},
}

// ValidateSeeds normalizes every entry (trimmed names, upper-case types) and
// rejects invalid types, bad names and case-insensitive duplicates before
// anything touches the store.
func ValidateSeeds(seeds []Seed) ([]Seed, error) {
	seen := make(map[string]struct{}, len(seeds))
	out := make([]Seed, 0, len(seeds))
	for _, s := range seeds {
		name, err := NewName(s.Name)
		if err != nil {
			return nil, err
		}
		typ, err := NewType(s.Type.String())
		if err != nil {
			return nil, err
		}
		if _, dup := seen[name.Key()]; dup {
			return nil, ErrDuplicateSeedName
		}
		seen[name.Key()] = struct{}{}
		out = append(out, Seed{Name: name.Value(), Type: typ})
	}
	return out, nil
}

// ServiceNames returns the names of every SERVICE seed, in seed order.
func ServiceNames(seeds []Seed) []string {
	var names []string
	for _, s := range seeds {
		if s.Type == TypeService {
			names = append(names, s.Name)
		}
	}
	return names
}
