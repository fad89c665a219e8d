package category

import (
	"github.com/google/uuid"
)

type Category struct {
	id   uuid.UUID
	name Name
	typ  Type
}

func NewCategory(name string, typ Type) (*Category, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	if !typ.IsValid() {
		return nil, ErrInvalidType
	}
	return &Category{
		id:   uuid.New(),
		name: n,
		typ:  typ,
	}, nil
}

func (c *Category) ID() uuid.UUID { return c.id }
func (c *Category) Name() string  { return c.name.Value() }
func (c *Category) Type() Type    { return c.typ }
