// Package service contains the application's use cases. Each service
// coordinates the stores defined in internal/store to carry out one role's
// operations: signing in, administering accounts and courses, running a
// course as a teacher, and following courses as a student.
//
// Services receive their stores and a logger through constructor injection
// and never depend on a particular store implementation. Expected failures
// are returned as sentinel errors, from this package or from store, wrapped
// with context; callers match them with errors.Is.
package service
