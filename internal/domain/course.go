package domain

import (
	"fmt"
	"strings"
)

// Common validation errors for Course
var (
	ErrEmptyCourseID   = fmt.Errorf("%w: course ID cannot be empty", ErrValidation)
	ErrEmptyCourseName = fmt.Errorf("%w: course name cannot be empty", ErrValidation)
	ErrInvalidCapacity = fmt.Errorf("%w: capacity must be greater than 0", ErrValidation)
)

// Course is a class students enroll in. TeacherID may be empty and is not
// checked against the user store.
type Course struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TeacherID   string `json:"teacher_id"`
	Capacity    int    `json:"capacity"`
}

// NewCourse creates a new Course and validates it.
func NewCourse(id, name, description, teacherID string, capacity int) (*Course, error) {
	course := &Course{
		ID:          id,
		Name:        name,
		Description: description,
		TeacherID:   teacherID,
		Capacity:    capacity,
	}

	if err := course.Validate(); err != nil {
		return nil, err
	}

	return course, nil
}

// Validate checks if the Course has valid data.
func (c *Course) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return ErrEmptyCourseID
	}

	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCourseName
	}

	if c.Capacity <= 0 {
		return ErrInvalidCapacity
	}

	return nil
}

// HasTeacher reports whether the course is taught by teacherID.
func (c *Course) HasTeacher(teacherID string) bool {
	return c.TeacherID != "" && c.TeacherID == teacherID
}
