// Package tasks contains the [UserEngine], the service layer between the
// CLI/TUI surfaces and the storage strategies.
//
// # Core Operations
//
//  1. [UserEngine.AddUser] : validate raw field values, persist the record
//     - validation failures are recoverable: reported, nothing stored
//  2. [UserEngine.ListUsers] : full listing in insertion order
//  3. [UserEngine.ExportReport] : write and return the total/users summary
//
// # Observability
//
// Every public operation logs its name, timestamp and a uuid invocation id
// before delegating. The hook is plain logging at the top of each method —
// it carries no state and no invariant beyond "log before delegating".
package tasks
