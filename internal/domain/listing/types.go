package listing

import (
	"errors"
	"strings"
)

var ErrInvalidType = errors.New("invalid listing type")

type Type string

const (
	TypeSpace   Type = "SPACE"
	TypeService Type = "SERVICE"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeSpace, TypeService:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
