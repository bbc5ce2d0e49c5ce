package scheduleexam

import (
	"context"
	"fmt"
)

const reasonNoAllocation = "No rooms could be allocated for any proposed date"

// allocateRoom walks the candidate dates in the order they were proposed and
// reserves the first room the collaborator returns for a date (first-fit).
// A failed reservation moves on to the next candidate date, not to the next
// room of the same date.
func (w Workflow) allocateRoom(ctx context.Context, state examScheduling) examScheduling {
	assertKnown(state)

	s, ok := state.(validated)
	if !ok {
		return state
	}

	var allocationErrors []string

	for _, date := range s.proposedDates {
		rooms, err := w.collaborators.FindAvailableRooms(ctx, date, s.duration, s.expectedStudents)
		if err != nil {
			allocationErrors = append(allocationErrors, fmt.Sprintf("Room search failed for date %s: %v", date, err))
			continue
		}

		if len(rooms) == 0 {
			allocationErrors = append(allocationErrors, fmt.Sprintf("No rooms available for date %s", date))
			continue
		}

		room := rooms[0]

		reserved, err := w.collaborators.ReserveRoom(ctx, room, date, s.duration)
		if err != nil {
			allocationErrors = append(allocationErrors, fmt.Sprintf("Failed to reserve room %s on %s: %v", room, date, err))
			continue
		}

		if !reserved {
			allocationErrors = append(allocationErrors, fmt.Sprintf(
				"Failed to reserve room %s on %s (may have been reserved by another process)", room, date))
			continue
		}

		return roomAllocated{
			course:       s.course,
			selectedDate: date,
			duration:     s.duration,
			room:         room,
			roomCapacity: s.expectedStudents,
		}
	}

	reasons := make([]string, 0, len(allocationErrors)+1)
	reasons = append(reasons, reasonNoAllocation)
	reasons = append(reasons, allocationErrors...)

	return invalid{courseCode: s.course.String(), reasons: reasons}
}
