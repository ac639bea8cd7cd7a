// Package testutils provides helpers shared by tests across packages.
//
// Domain records with sensible defaults:
//
//	student := testutils.MustCreateStudentForTest(t, "S1")
//	course := testutils.MustCreateCourseForTest(t, "CS101", testutils.WithCapacity(1))
//
// A full set of in-memory stores:
//
//	stores := testutils.NewMemoryStores()
//
// Captured log output:
//
//	handler := testutils.NewTestSlogHandler()
//	logger := slog.New(handler)
//	...
//	entries := handler.Entries()
package testutils
