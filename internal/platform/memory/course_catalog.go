package memory

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/classroom/internal/domain"
	"github.com/phrazzld/classroom/internal/store"
)

// CourseCatalog implements store.CourseStore over an in-memory collection.
type CourseCatalog struct {
	courses *collection[*domain.Course]
	logger  *slog.Logger
}

// Ensure CourseCatalog implements store.CourseStore interface
var _ store.CourseStore = (*CourseCatalog)(nil)

// NewCourseCatalog creates an empty course catalog.
// If logger is nil, a default logger will be used.
func NewCourseCatalog(logger *slog.Logger) *CourseCatalog {
	if logger == nil {
		logger = slog.Default()
	}

	return &CourseCatalog{
		courses: newCollection[*domain.Course](),
		logger:  logger.With(slog.String("component", "course_catalog")),
	}
}

// Create implements store.CourseStore.Create
func (c *CourseCatalog) Create(id, name, description, teacherID string, capacity int) (*domain.Course, error) {
	course, err := domain.NewCourse(id, name, description, teacherID, capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	if !c.courses.insert(course.ID, course) {
		return nil, store.ErrCourseExists
	}

	c.logger.Debug("course created",
		slog.String("course_id", course.ID),
		slog.Int("capacity", course.Capacity))

	return course, nil
}

// Add implements store.CourseStore.Add
func (c *CourseCatalog) Add(course *domain.Course) {
	if course == nil {
		return
	}

	if err := course.Validate(); err != nil {
		c.logger.Warn("skipping invalid course",
			slog.String("course_id", course.ID),
			slog.String("error", err.Error()))
		return
	}

	if !c.courses.insert(course.ID, course) {
		c.logger.Debug("skipping duplicate course", slog.String("course_id", course.ID))
	}
}

// FindByID implements store.CourseStore.FindByID
func (c *CourseCatalog) FindByID(id string) (*domain.Course, error) {
	course, ok := c.courses.get(id)
	if !ok {
		return nil, store.ErrCourseNotFound
	}
	return course, nil
}

// Update implements store.CourseStore.Update
// Lowering the capacity below the current enrollment is allowed; capacity is
// only checked when a student enrolls.
func (c *CourseCatalog) Update(course *domain.Course) error {
	if course == nil {
		return fmt.Errorf("%w: nil course", store.ErrInvalidEntity)
	}

	existing, ok := c.courses.get(course.ID)
	if !ok {
		return store.ErrCourseNotFound
	}

	if err := course.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	existing.Name = course.Name
	existing.Description = course.Description
	existing.TeacherID = course.TeacherID
	existing.Capacity = course.Capacity

	return nil
}

// Delete implements store.CourseStore.Delete
func (c *CourseCatalog) Delete(id string) error {
	if !c.courses.remove(id) {
		return store.ErrCourseNotFound
	}
	c.logger.Debug("course deleted", slog.String("course_id", id))
	return nil
}

// ListAll implements store.CourseStore.ListAll
func (c *CourseCatalog) ListAll() []*domain.Course {
	return c.courses.values()
}

// AssignTeacher implements store.CourseStore.AssignTeacher
// The course is not removed from a previous teacher's list; CoursesForTeacher
// reads Course.TeacherID and stays correct regardless.
func (c *CourseCatalog) AssignTeacher(courseID string, teacher *domain.User) error {
	course, ok := c.courses.get(courseID)
	if !ok {
		return store.ErrCourseNotFound
	}

	if !teacher.IsTeacher() {
		return store.NewStoreError("course", "assign teacher", "user is not a teacher", store.ErrInvalidReference)
	}

	course.TeacherID = teacher.ID
	teacher.AddAssignedCourse(course.ID)

	c.logger.Debug("teacher assigned",
		slog.String("course_id", course.ID),
		slog.String("teacher_id", teacher.ID))

	return nil
}

// Enroll implements store.CourseStore.Enroll
// The seat count is recomputed from the population on every call, so it can
// never drift from the students' own enrollment lists.
func (c *CourseCatalog) Enroll(courseID string, student *domain.User, students []*domain.User) error {
	course, ok := c.courses.get(courseID)
	if !ok {
		return store.ErrCourseNotFound
	}

	if !student.IsStudent() {
		return store.NewStoreError("course", "enroll", "user is not a student", store.ErrInvalidReference)
	}

	if student.EnrolledIn(course.ID) {
		return store.ErrAlreadyEnrolled
	}

	if enrolled := c.EnrolledCount(course.ID, students); enrolled >= course.Capacity {
		c.logger.Debug("enrollment rejected, course full",
			slog.String("course_id", course.ID),
			slog.Int("enrolled", enrolled),
			slog.Int("capacity", course.Capacity))
		return store.ErrCourseFull
	}

	student.AddEnrollment(course.ID)

	c.logger.Debug("student enrolled",
		slog.String("course_id", course.ID),
		slog.String("student_id", student.ID))

	return nil
}

// EnrolledCount implements store.CourseStore.EnrolledCount
func (c *CourseCatalog) EnrolledCount(courseID string, students []*domain.User) int {
	count := 0
	for _, s := range students {
		if s.EnrolledIn(courseID) {
			count++
		}
	}
	return count
}

// StudentsInCourse implements store.CourseStore.StudentsInCourse
func (c *CourseCatalog) StudentsInCourse(courseID string, students []*domain.User) []*domain.User {
	out := make([]*domain.User, 0)
	for _, s := range students {
		if s.EnrolledIn(courseID) {
			out = append(out, s)
		}
	}
	return out
}

// CoursesForTeacher implements store.CourseStore.CoursesForTeacher
func (c *CourseCatalog) CoursesForTeacher(teacherID string) []*domain.Course {
	return c.courses.filter(func(course *domain.Course) bool {
		return course.HasTeacher(teacherID)
	})
}

// CoursesForStudent implements store.CourseStore.CoursesForStudent
func (c *CourseCatalog) CoursesForStudent(student *domain.User) []*domain.Course {
	out := make([]*domain.Course, 0)
	for _, id := range student.EnrolledCourseIDs() {
		if course, ok := c.courses.get(id); ok {
			out = append(out, course)
		}
	}
	return out
}
