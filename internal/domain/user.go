package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Role identifies which variant a User is. It is fixed at construction.
type Role string

// Known roles. The string values are the ones written to the users file.
const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
	RoleStudent Role = "STUDENT"
)

// Common validation errors
var (
	ErrEmptyUserID      = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
	ErrEmptyUserName    = fmt.Errorf("%w: name cannot be empty", ErrValidation)
	ErrEmptyPassword    = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrProfileMismatch  = fmt.Errorf("%w: profile does not match role", ErrValidation)
	ErrUnknownUserRole  = fmt.Errorf("%w: %w", ErrValidation, ErrInvalidRole)
	ErrEmptyMajor       = fmt.Errorf("%w: major cannot be empty", ErrValidation)
	ErrEmptyDepartment  = fmt.Errorf("%w: department cannot be empty", ErrValidation)
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least %d characters long", ErrValidation, MinPasswordLength)
)

// MinPasswordLength is the shortest plaintext password accepted for new
// or changed credentials.
const MinPasswordLength = 3

// StudentProfile holds the fields only a student carries.
type StudentProfile struct {
	Major string `json:"major"`
	// EnrolledCourseIDs is the authoritative enrollment relation, in
	// enrollment order. It never contains the same id twice.
	EnrolledCourseIDs []string `json:"enrolled_course_ids"`
}

// TeacherProfile holds the fields only a teacher carries.
type TeacherProfile struct {
	Department string `json:"department"`
	// AssignedCourseIDs mirrors Course.TeacherID for the courses this
	// teacher was assigned to, in assignment order.
	AssignedCourseIDs []string `json:"assigned_course_ids"`
}

// User is a person who can log in. It is a tagged variant: Role selects
// which of Student or Teacher is populated; an admin carries neither.
type User struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Password       string          `json:"-"` // Plaintext, only set while creating or changing credentials
	HashedPassword string          `json:"-"`
	Role           Role            `json:"role"`
	Student        *StudentProfile `json:"student,omitempty"`
	Teacher        *TeacherProfile `json:"teacher,omitempty"`
}

// NewAdmin creates an admin user with a plaintext password.
// The password is hashed by the user store when the record is added.
func NewAdmin(id, password, name string) (*User, error) {
	return newUser(&User{ID: id, Password: password, Name: name, Role: RoleAdmin})
}

// NewTeacher creates a teacher with no assigned courses.
func NewTeacher(id, password, name, department string) (*User, error) {
	return newUser(&User{
		ID:       id,
		Password: password,
		Name:     name,
		Role:     RoleTeacher,
		Teacher:  &TeacherProfile{Department: department},
	})
}

// NewStudent creates a student with no enrollments.
func NewStudent(id, password, name, major string) (*User, error) {
	return newUser(&User{
		ID:       id,
		Password: password,
		Name:     name,
		Role:     RoleStudent,
		Student:  &StudentProfile{Major: major},
	})
}

func newUser(u *User) (*User, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// ParseRole converts the stored role name to a Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if strings.TrimSpace(u.ID) == "" {
		return ErrEmptyUserID
	}

	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyUserName
	}

	// A new or changed credential arrives as plaintext; a stored one only
	// has its hash.
	if u.Password == "" && u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	switch u.Role {
	case RoleAdmin:
		if u.Student != nil || u.Teacher != nil {
			return ErrProfileMismatch
		}
	case RoleTeacher:
		if u.Teacher == nil || u.Student != nil {
			return ErrProfileMismatch
		}
	case RoleStudent:
		if u.Student == nil || u.Teacher != nil {
			return ErrProfileMismatch
		}
	default:
		return ErrUnknownUserRole
	}

	return nil
}

// IsAdmin reports whether u is an admin.
func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }

// IsTeacher reports whether u is a teacher with a profile.
func (u *User) IsTeacher() bool { return u != nil && u.Role == RoleTeacher && u.Teacher != nil }

// IsStudent reports whether u is a student with a profile.
func (u *User) IsStudent() bool { return u != nil && u.Role == RoleStudent && u.Student != nil }

// Detail returns the role-specific text field: the major for a student,
// the department for a teacher, and "" for an admin.
func (u *User) Detail() string {
	switch {
	case u.IsStudent():
		return u.Student.Major
	case u.IsTeacher():
		return u.Teacher.Department
	default:
		return ""
	}
}

// EnrolledIn reports whether u is a student enrolled in courseID.
func (u *User) EnrolledIn(courseID string) bool {
	return u.IsStudent() && slices.Contains(u.Student.EnrolledCourseIDs, courseID)
}

// EnrolledCourseIDs returns a copy of the student's enrollment list in
// enrollment order. Non-students have none.
func (u *User) EnrolledCourseIDs() []string {
	if !u.IsStudent() {
		return nil
	}
	return slices.Clone(u.Student.EnrolledCourseIDs)
}

// AssignedCourseIDs returns a copy of the teacher's assigned-course list.
func (u *User) AssignedCourseIDs() []string {
	if !u.IsTeacher() {
		return nil
	}
	return slices.Clone(u.Teacher.AssignedCourseIDs)
}

// AddEnrollment appends courseID to a student's enrollment list.
// It reports false, leaving the list unchanged, when u is not a student or
// is already enrolled.
func (u *User) AddEnrollment(courseID string) bool {
	if !u.IsStudent() || u.EnrolledIn(courseID) {
		return false
	}
	u.Student.EnrolledCourseIDs = append(u.Student.EnrolledCourseIDs, courseID)
	return true
}

// AddAssignedCourse appends courseID to a teacher's assigned-course list
// unless it is already there.
func (u *User) AddAssignedCourse(courseID string) bool {
	if !u.IsTeacher() || slices.Contains(u.Teacher.AssignedCourseIDs, courseID) {
		return false
	}
	u.Teacher.AssignedCourseIDs = append(u.Teacher.AssignedCourseIDs, courseID)
	return true
}

// ValidatePasswordLength checks a new plaintext password against
// MinPasswordLength.
func ValidatePasswordLength(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
