// Package filecontestation implements the grade contestation workflow.
//
// The pipeline is Validate -> CheckWindow -> File. A contestation may only
// be filed while the 48 hour window after grade publication is still open;
// the window closes once strictly more than 48 hours have elapsed. The
// terminal outcome is either ContestationFiled or ContestationFailed.
package filecontestation
