// Package registerstudent implements the student registration workflow: a
// student signs up for a scheduled exam, bounded by the rule that no student
// sits more than two exams on the same calendar day.
//
// The pipeline is Validate -> Check -> Register. Validation parses the raw
// command and resolves the student and the exam; the check stage enforces the
// duplicate-registration and daily-cap rules and resolves the exam room; the
// register stage persists through the injected collaborator.
package registerstudent
