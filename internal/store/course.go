package store

import "github.com/phrazzld/classroom/internal/domain"

// CourseStore defines the interface for the course catalog, which enforces
// capacity and keeps teacher assignment consistent on both sides.
type CourseStore interface {
	// Create validates and inserts a new course.
	// Returns ErrCourseExists if the id is taken.
	Create(id, name, description, teacherID string, capacity int) (*domain.Course, error)

	// Add inserts a course unless the id exists. Used by bulk loading.
	Add(course *domain.Course)

	// FindByID retrieves a course by id.
	// Returns ErrCourseNotFound if the course does not exist.
	FindByID(id string) (*domain.Course, error)

	// Update overwrites every mutable field of the course with the same id.
	// Returns ErrCourseNotFound if the course does not exist.
	Update(course *domain.Course) error

	// Delete removes a course without touching assignments or enrollments.
	// Returns ErrCourseNotFound if the course does not exist.
	Delete(id string) error

	// ListAll returns every course in insertion order.
	ListAll() []*domain.Course

	// AssignTeacher sets the course's teacher and records the course on the
	// teacher's own list. Nothing is written unless every check passes.
	AssignTeacher(courseID string, teacher *domain.User) error

	// Enroll adds the course to the student's enrollment list after checking
	// the course's remaining capacity against the given student population.
	// Returns ErrCourseFull or ErrAlreadyEnrolled on conflict.
	Enroll(courseID string, student *domain.User, students []*domain.User) error

	// EnrolledCount counts the students in the population enrolled in courseID.
	EnrolledCount(courseID string, students []*domain.User) int

	// StudentsInCourse returns the students in the population enrolled in
	// courseID, in population order.
	StudentsInCourse(courseID string, students []*domain.User) []*domain.User

	// CoursesForTeacher returns the courses whose teacher is teacherID.
	CoursesForTeacher(teacherID string) []*domain.Course

	// CoursesForStudent returns the student's courses in enrollment order,
	// skipping ids that no longer resolve.
	CoursesForStudent(student *domain.User) []*domain.Course
}
