package room

import "neko-hotel/internal/pkg/errs"

var (
	ErrUnknownType   = errs.New("unknown room type")
	ErrUnknownRoom   = errs.New("unknown room identifier")
	ErrTypeMismatch  = errs.New("room does not belong to room type")
	ErrBadAssignment = errs.New("malformed room assignment")
)

// Category is a physical room class. The hotel has a fixed inventory of
// 8 units across three categories.
type Category string

const (
	CategoryStandard Category = "standard"
	CategoryDelux    Category = "delux"
	CategorySuite    Category = "suite"
)

// Type is a bookable room product. A connecting booking is a single
// reservation spanning two adjacent standard units.
type Type string

const (
	TypeStandard   Type = "standard"
	TypeConnecting Type = "standard-connecting"
	TypeDelux      Type = "delux"
	TypeSuite      Type = "suite"
)

var Types = []Type{TypeStandard, TypeConnecting, TypeDelux, TypeSuite}

// categoryTotals is the whole capacity table. Changing hotel inventory
// only requires editing these numbers.
var categoryTotals = map[Category]int{
	CategoryStandard: 4,
	CategoryDelux:    2,
	CategorySuite:    2,
}

// unitsConsumed maps a room type to how many physical units one booking
// of that type occupies.
var unitsConsumed = map[Type]int{
	TypeStandard:   1,
	TypeConnecting: 2,
	TypeDelux:      1,
	TypeSuite:      1,
}

func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrUnknownType
	}
	return t, nil
}

func (t Type) IsValid() bool {
	_, ok := unitsConsumed[t]
	return ok
}

func (t Type) String() string {
	return string(t)
}

func (t Type) Category() Category {
	switch t {
	case TypeStandard, TypeConnecting:
		return CategoryStandard
	case TypeDelux:
		return CategoryDelux
	case TypeSuite:
		return CategorySuite
	default:
		return ""
	}
}

// Units returns the number of physical units one booking of this type
// consumes per night.
func (t Type) Units() int {
	return unitsConsumed[t]
}

func (c Category) Total() int {
	return categoryTotals[c]
}

func TotalUnits() int {
	sum := 0
	for _, n := range categoryTotals {
		sum += n
	}
	return sum
}
