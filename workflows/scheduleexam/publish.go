package scheduleexam

import "github.com/pssc-labs/exam-session-go/domain"

// publish stamps the allocated scheduling with the publication time.
// Enrollment starts at one; registrations are counted by the registration
// workflow, not here.
func (w Workflow) publish(state examScheduling) examScheduling {
	assertKnown(state)

	s, ok := state.(roomAllocated)
	if !ok {
		return state
	}

	return published{
		course:           s.course,
		selectedDate:     s.selectedDate,
		duration:         s.duration,
		room:             s.room,
		roomCapacity:     s.roomCapacity,
		enrolledStudents: domain.MustCapacity(1),
		publishedAt:      w.clock(),
	}
}
