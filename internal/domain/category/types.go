package category

import "strings"

type Type string

const (
	TypeSpace     Type = "SPACE"
	TypeService   Type = "SERVICE"
	TypeEquipment Type = "EQUIPMENT"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeSpace, TypeService, TypeEquipment:
		return true
	default:
		return false
	}
}

// NewType accepts the stored upper-case form and tolerates surrounding
// whitespace or lower-case input from configuration.
func NewType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
