// Package records holds the pure aggregation and formatting operations over
// caller-supplied order and user records. Nothing here performs I/O or keeps
// state between calls apart from the profile id sequence.
package records
