// Package domain contains the self-validating value objects shared by all
// exam session workflows, the typed error kinds raised when a value object is
// force-constructed from trusted data, and the clock capability injected into
// time-dependent rules.
//
// Value objects are immutable and can only be obtained through their fallible
// Parse factories, which return a descriptive error instead of panicking on
// bad input. The Must constructors exist for data that has already been
// validated (database rows, test fixtures) and panic with a typed domain
// error when that trust is misplaced.
package domain
