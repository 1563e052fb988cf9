package room

import "strings"

// ID identifies one physical room.
type ID string

const pairSeparator = "+"

var roomRegister = map[ID]Category{
	"Std1":   CategoryStandard,
	"Std2":   CategoryStandard,
	"Std3":   CategoryStandard,
	"Std4":   CategoryStandard,
	"Delx1":  CategoryDelux,
	"Delx2":  CategoryDelux,
	"Suite1": CategorySuite,
	"Suite2": CategorySuite,
}

// assignmentsByType lists the concrete assignments offered per room type.
// Only adjacent standard rooms form connecting pairs.
var assignmentsByType = map[Type][]Assignment{
	TypeStandard:   {single("Std1"), single("Std2"), single("Std3"), single("Std4")},
	TypeConnecting: {pair("Std1", "Std2"), pair("Std3", "Std4")},
	TypeDelux:      {single("Delx1"), single("Delx2")},
	TypeSuite:      {single("Suite1"), single("Suite2")},
}

// Assignment is a tagged room selection: either one room or a connecting
// pair. Conflict checks work on room-ID membership, never on substring
// matching, so identifiers like "Std1" can never spuriously collide with
// a future "Std1X".
type Assignment struct {
	rooms [2]ID
	n     int
}

func single(id ID) Assignment {
	return Assignment{rooms: [2]ID{id}, n: 1}
}

func pair(a, b ID) Assignment {
	return Assignment{rooms: [2]ID{a, b}, n: 2}
}

// ParseAssignment parses a wire identifier such as "Std3" or "Std1+Std2"
// and validates every part against the fixed room register.
func ParseAssignment(s string) (Assignment, error) {
	parts := strings.Split(s, pairSeparator)
	if len(parts) < 1 || len(parts) > 2 {
		return Assignment{}, ErrBadAssignment
	}

	var a Assignment
	for _, p := range parts {
		id := ID(strings.TrimSpace(p))
		if id == "" {
			return Assignment{}, ErrBadAssignment
		}
		if _, ok := roomRegister[id]; !ok {
			return Assignment{}, ErrUnknownRoom
		}
		a.rooms[a.n] = id
		a.n++
	}

	if a.n == 2 && a.rooms[0] == a.rooms[1] {
		return Assignment{}, ErrBadAssignment
	}

	return a, nil
}

func (a Assignment) IsZero() bool {
	return a.n == 0
}

func (a Assignment) IsPair() bool {
	return a.n == 2
}

func (a Assignment) Rooms() []ID {
	return append([]ID(nil), a.rooms[:a.n]...)
}

func (a Assignment) String() string {
	switch a.n {
	case 1:
		return string(a.rooms[0])
	case 2:
		return string(a.rooms[0]) + pairSeparator + string(a.rooms[1])
	default:
		return ""
	}
}

// Contains reports whether the assignment occupies the given room.
func (a Assignment) Contains(id ID) bool {
	for i := 0; i < a.n; i++ {
		if a.rooms[i] == id {
			return true
		}
	}
	return false
}

// Conflicts reports whether two assignments share any physical room.
// This covers the identity case, a pair against one of its halves, and
// a half against a pair containing it.
func (a Assignment) Conflicts(other Assignment) bool {
	for i := 0; i < a.n; i++ {
		if other.Contains(a.rooms[i]) {
			return true
		}
	}
	return false
}

// MatchesType reports whether the assignment is one the given room type
// actually offers.
func (a Assignment) MatchesType(t Type) bool {
	for _, offered := range assignmentsByType[t] {
		if a == offered {
			return true
		}
	}
	return false
}

// AssignmentsFor returns every assignment the room type offers, in
// front-desk display order.
func AssignmentsFor(t Type) []Assignment {
	return append([]Assignment(nil), assignmentsByType[t]...)
}
