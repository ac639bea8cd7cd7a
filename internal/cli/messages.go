package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/phrazzld/classroom/internal/domain"
	"github.com/phrazzld/classroom/internal/service"
	"github.com/phrazzld/classroom/internal/store"
)

// errorMessages maps expected errors to what the user is told. Order
// matters: the first match wins.
var errorMessages = []struct {
	err error
	msg string
}{
	{store.ErrInvalidCredentials, "Invalid credentials. Please try again."},
	{store.ErrUserNotFound, "User not found."},
	{store.ErrCourseNotFound, "Course not found."},
	{store.ErrAssignmentNotFound, "Assignment not found."},
	{store.ErrUserExists, "User ID already exists."},
	{store.ErrCourseExists, "Course ID already exists."},
	{store.ErrAssignmentExists, "Assignment ID already exists."},
	{store.ErrCourseFull, "Course is full."},
	{store.ErrAlreadyEnrolled, "Student is already enrolled in this course."},
	{service.ErrWrongRole, "That user does not have the required role."},
	{service.ErrNotAssigned, "You are not assigned to this course."},
	{service.ErrNotEnrolled, "You are not enrolled in this course."},
	{service.ErrPointsOutOfRange, "Points are out of range."},
}

// describe turns an error from a service call into a user-facing message.
// The second result is false for unexpected errors.
func describe(err error) (string, bool) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		msgs := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			msgs = append(msgs, f.Message()+".")
		}
		return strings.Join(msgs, " "), true
	}

	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.msg, true
		}
	}

	if errors.Is(err, domain.ErrValidation) {
		return "Invalid input.", true
	}

	return "Operation failed.", false
}

// formatPoints prints points without trailing zeros, e.g. 50 or 42.5.
func formatPoints(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
