// Package models holds the [User] record type shared by every storage
// backend and the task engine.
//
// The invariant the package enforces is construction-time validation: a
// [User] obtained from [NewUser] is always fully valid, and callers that
// rehydrate users from external data (CSV rows, database rows) re-run
// [User.Validate] so corrupt rows surface instead of flowing through.
package models
