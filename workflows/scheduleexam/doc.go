// Package scheduleexam implements the exam scheduling workflow: a professor
// proposes up to three candidate dates for a course exam, the workflow
// validates the proposal, allocates the first room that can be reserved on
// the earliest workable candidate date, and publishes the scheduling.
//
// The pipeline is Validate -> AllocateRoom -> Publish. Each stage transforms
// one state variant into the next or into the terminal Invalid variant; the
// terminal state is converted into an ExamScheduled or ExamSchedulingFailed
// event. All side effects go through the injected Collaborators functions.
package scheduleexam
