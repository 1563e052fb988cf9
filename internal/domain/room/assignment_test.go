//go:build unit

package room_test

import (
	"testing"

	"neko-hotel/internal/domain/room"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) room.Assignment {
	t.Helper()
	a, err := room.ParseAssignment(s)
	require.NoError(t, err)
	return a
}

func TestParseAssignment(t *testing.T) {
	t.Run("single room round-trips", func(t *testing.T) {
		a := mustParse(t, "Std3")
		assert.False(t, a.IsPair())
		assert.Equal(t, "Std3", a.String())
		assert.Equal(t, []room.ID{"Std3"}, a.Rooms())
	})

	t.Run("connecting pair round-trips", func(t *testing.T) {
		a := mustParse(t, "Std1+Std2")
		assert.True(t, a.IsPair())
		assert.Equal(t, "Std1+Std2", a.String())
		assert.Equal(t, []room.ID{"Std1", "Std2"}, a.Rooms())
	})

	t.Run("rejects malformed identifiers", func(t *testing.T) {
		cases := []struct {
			name  string
			input string
			errIs error
		}{
			{name: "unknown room", input: "Std9", errIs: room.ErrUnknownRoom},
			{name: "unknown room in pair", input: "Std1+Std9", errIs: room.ErrUnknownRoom},
			{name: "empty string", input: "", errIs: room.ErrBadAssignment},
			{name: "trailing separator", input: "Std1+", errIs: room.ErrBadAssignment},
			{name: "duplicate halves", input: "Std1+Std1", errIs: room.ErrBadAssignment},
			{name: "three rooms", input: "Std1+Std2+Std3", errIs: room.ErrBadAssignment},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := room.ParseAssignment(tc.input)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestAssignmentConflicts(t *testing.T) {
	cases := []struct {
		name     string
		a        string
		b        string
		conflict bool
	}{
		{name: "same room", a: "Std1", b: "Std1", conflict: true},
		{name: "different rooms", a: "Std1", b: "Std2", conflict: false},
		{name: "pair against its first half", a: "Std1+Std2", b: "Std1", conflict: true},
		{name: "pair against its second half", a: "Std1+Std2", b: "Std2", conflict: true},
		{name: "half against containing pair", a: "Std2", b: "Std1+Std2", conflict: true},
		{name: "pair against identical pair", a: "Std1+Std2", b: "Std1+Std2", conflict: true},
		{name: "pair against disjoint pair", a: "Std1+Std2", b: "Std3+Std4", conflict: false},
		{name: "pair against disjoint single", a: "Std1+Std2", b: "Std3", conflict: false},
		{name: "different categories", a: "Delx1", b: "Suite1", conflict: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := mustParse(t, tc.a)
			b := mustParse(t, tc.b)
			assert.Equal(t, tc.conflict, a.Conflicts(b))
			assert.Equal(t, tc.conflict, b.Conflicts(a), "conflict must be symmetric")
		})
	}
}

func TestAssignmentMatchesType(t *testing.T) {
	assert.True(t, mustParse(t, "Std1").MatchesType(room.TypeStandard))
	assert.True(t, mustParse(t, "Std1+Std2").MatchesType(room.TypeConnecting))
	assert.True(t, mustParse(t, "Suite2").MatchesType(room.TypeSuite))

	// A pair is not a standard booking and a half is not a connecting one
	assert.False(t, mustParse(t, "Std1+Std2").MatchesType(room.TypeStandard))
	assert.False(t, mustParse(t, "Std1").MatchesType(room.TypeConnecting))
	assert.False(t, mustParse(t, "Delx1").MatchesType(room.TypeSuite))
}

func TestAssignmentsFor(t *testing.T) {
	std := room.AssignmentsFor(room.TypeStandard)
	require.Len(t, std, 4)

	connecting := room.AssignmentsFor(room.TypeConnecting)
	require.Len(t, connecting, 2)
	assert.Equal(t, "Std1+Std2", connecting[0].String())
	assert.Equal(t, "Std3+Std4", connecting[1].String())

	assert.Len(t, room.AssignmentsFor(room.TypeDelux), 2)
	assert.Len(t, room.AssignmentsFor(room.TypeSuite), 2)
}

func TestCapacityTable(t *testing.T) {
	assert.Equal(t, 4, room.CategoryStandard.Total())
	assert.Equal(t, 2, room.CategoryDelux.Total())
	assert.Equal(t, 2, room.CategorySuite.Total())
	assert.Equal(t, 8, room.TotalUnits())

	assert.Equal(t, 1, room.TypeStandard.Units())
	assert.Equal(t, 2, room.TypeConnecting.Units())
	assert.Equal(t, room.CategoryStandard, room.TypeConnecting.Category())
}
