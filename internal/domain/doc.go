// Package domain contains the core records of the school: users with their
// role-specific profiles, courses, assignments and grades. It represents the
// heart of the system, independent of how records are stored or presented.
//
// Records reference each other only by id. A student's enrollment list and a
// teacher's assigned-course list are ordered id lists owned by the user record;
// everything else (course to assignment, assignment to grade) is a plain
// foreign-key string that is never enforced.
package domain
