// Package publishgrades implements the grade publication workflow.
//
// The pipeline is Validate -> Publish. Validation parses the course, the
// exam date, and every submitted student grade, accumulating all errors
// instead of stopping at the first one. Publication persists the grade
// sheet and derives the pass statistics. The terminal outcome is either
// GradesPublished or ExamGradingFailed.
package publishgrades
