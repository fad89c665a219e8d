package category

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmptyName   = errors.New("category name cannot be empty")
	ErrNameTooLong = errors.New("category name is too long (max 255 characters)")
	ErrInvalidType = errors.New("invalid category type")
)

const MaxNameLength = 255

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyName
	}
	if utf8.RuneCountInString(s) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

// Key is the case-folded form used to detect duplicates inside a seed list.
func (n Name) Key() string {
	return strings.ToLower(n.value)
}
