package service_test

import (
	"testing"

	"github.com/phrazzld/classroom/internal/domain"
	"github.com/phrazzld/classroom/internal/service"
	"github.com/phrazzld/classroom/internal/store"
	"github.com/phrazzld/classroom/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStudentFixture enrolls S1 in C1 (A1 and A2 worth 50 each, A1 graded 25)
// and C3 (no assignments). C2 exists but S1 is not enrolled.
func newStudentFixture(t *testing.T) (service.StudentService, *testutils.MemoryStores) {
	t.Helper()
	stores := testutils.NewMemoryStores()
	s1 := testutils.MustCreateStudentForTest(t, "S1")
	stores.MustAddUsers(t, s1)

	for _, id := range []string{"C1", "C2", "C3"} {
		stores.Courses.Add(testutils.MustCreateCourseForTest(t, id))
	}
	population := stores.Users.ListByRole(domain.RoleStudent)
	require.NoError(t, stores.Courses.Enroll("C1", s1, population))
	require.NoError(t, stores.Courses.Enroll("C3", s1, population))

	_, err := stores.Assignments.Create("A1", "C1", "Essay", "", "Friday", 50)
	require.NoError(t, err)
	_, err = stores.Assignments.Create("A2", "C1", "Quiz", "", "Monday", 50)
	require.NoError(t, err)
	_, err = stores.Grades.Create("G1", "S1", "A1", 25)
	require.NoError(t, err)

	svc, err := service.NewStudentService(s1, stores.Courses, stores.Assignments, stores.Grades, quietLogger())
	require.NoError(t, err)
	return svc, stores
}

func TestNewStudentService_RequiresStudent(t *testing.T) {
	t.Parallel()
	stores := testutils.NewMemoryStores()

	_, err := service.NewStudentService(testutils.MustCreateAdminForTest(t, "ADMIN001"),
		stores.Courses, stores.Assignments, stores.Grades, nil)
	assert.ErrorIs(t, err, service.ErrWrongRole)
}

func TestStudentService_Courses(t *testing.T) {
	t.Parallel()
	svc, _ := newStudentFixture(t)

	courses := svc.Courses()
	require.Len(t, courses, 2)
	assert.Equal(t, "C1", courses[0].ID)
	assert.Equal(t, "C3", courses[1].ID)
	assert.Equal(t, "S1", svc.Student().ID)
}

func TestStudentService_AssignmentsForCourse(t *testing.T) {
	t.Parallel()
	svc, _ := newStudentFixture(t)

	course, graded, err := svc.AssignmentsForCourse("C1")
	require.NoError(t, err)
	assert.Equal(t, "C1", course.ID)
	require.Len(t, graded, 2)
	assert.Equal(t, "A1", graded[0].Assignment.ID)
	require.NotNil(t, graded[0].Grade)
	assert.Equal(t, 25.0, graded[0].Grade.Points)
	assert.Equal(t, "A2", graded[1].Assignment.ID)
	assert.Nil(t, graded[1].Grade)

	_, _, err = svc.AssignmentsForCourse("C2")
	assert.ErrorIs(t, err, service.ErrNotEnrolled)
	_, _, err = svc.AssignmentsForCourse("C9")
	assert.ErrorIs(t, err, store.ErrCourseNotFound)
}

func TestStudentService_GradesSkipsMissingAssignments(t *testing.T) {
	t.Parallel()
	svc, stores := newStudentFixture(t)
	_, err := stores.Grades.Create("G2", "S1", "A-gone", 5)
	require.NoError(t, err)
	_, err = stores.Grades.Create("G3", "S2", "A2", 5)
	require.NoError(t, err)

	grades := svc.Grades()
	require.Len(t, grades, 1)
	assert.Equal(t, "G1", grades[0].Grade.ID)
	assert.Equal(t, "Essay", grades[0].Assignment.Title)
}

func TestStudentService_FinalGrade(t *testing.T) {
	t.Parallel()
	svc, _ := newStudentFixture(t)

	// 25 earned of 100 possible; the ungraded assignment counts as zero.
	result, err := svc.FinalGrade("C1")
	require.NoError(t, err)
	assert.InDelta(t, 25.0, result.Percent, 1e-9)
	assert.Equal(t, 2, result.Assignments)
	assert.Equal(t, "C1", result.Course.ID)

	empty, err := svc.FinalGrade("C3")
	require.NoError(t, err)
	assert.Zero(t, empty.Percent)
	assert.Zero(t, empty.Assignments)

	_, err = svc.FinalGrade("C2")
	assert.ErrorIs(t, err, service.ErrNotEnrolled)
}
