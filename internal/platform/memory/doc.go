// Package memory provides the in-memory implementations of the record
// stores defined in internal/store: UserDirectory, CourseCatalog,
// AssignmentBoard and GradeBook.
//
// Each store owns its collection exclusively and keeps insertion order for
// listing. Lookups return the live record held by the store, so changes made
// through one store operation are visible to every holder of the pointer;
// callers must treat returned records as read-only and change them only
// through store operations.
//
// None of the stores are safe for concurrent use.
package memory
