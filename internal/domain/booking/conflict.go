package booking

import (
	"neko-hotel/internal/domain/room"
	"neko-hotel/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRoomConflict = errs.New("room is already booked for these dates")

// AssignmentFree reports whether a concrete room assignment is free for
// the whole window. It complements CheckStay: aggregate counts can pass
// while the specific room is taken, in particular across a connecting
// pair and its halves. Overlap is tested with both ends exclusive, so a
// checkout and a check-in on the same day never collide. excludeID skips
// the reservation being edited.
func AssignmentFree(
	a room.Assignment,
	stay StayWindow,
	reservations []*Reservation,
	excludeID uuid.UUID,
) bool {
	for _, res := range reservations {
		if excludeID != uuid.Nil && res.ID() == excludeID {
			continue
		}
		if !res.Stay().Overlaps(stay) {
			continue
		}
		if res.Assignment().Conflicts(a) {
			return false
		}
	}
	return true
}

// FreeAssignments lists the room identifiers of the given type that pass
// the conflict check for the window, for populating the room picker. The
// orchestrator re-validates the chosen one at commit time; the offered
// list is never trusted as final.
func FreeAssignments(
	t room.Type,
	stay StayWindow,
	reservations []*Reservation,
	excludeID uuid.UUID,
) []room.Assignment {
	offered := room.AssignmentsFor(t)
	free := make([]room.Assignment, 0, len(offered))
	for _, a := range offered {
		if AssignmentFree(a, stay, reservations, excludeID) {
			free = append(free, a)
		}
	}
	return free
}
