package service_test

import (
	"errors"
	"testing"

	"github.com/phrazzld/classroom/internal/domain"
	"github.com/phrazzld/classroom/internal/mocks"
	"github.com/phrazzld/classroom/internal/service"
	"github.com/phrazzld/classroom/internal/store"
	"github.com/phrazzld/classroom/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdmin(t *testing.T) (service.AdminService, *testutils.MemoryStores) {
	t.Helper()
	stores := testutils.NewMemoryStores()
	return service.NewAdminService(stores.Users, stores.Courses, quietLogger()), stores
}

func TestAdminService_NextStudentID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{"no students", nil, "STUDENT001"},
		{"count wins", []string{"S1", "S2"}, "STUDENT003"},
		{"highest number wins", []string{"STUDENT010"}, "STUDENT011"},
		{"gaps are not reused", []string{"STUDENT001", "STUDENT005", "X"}, "STUDENT006"},
		{"non numeric suffix ignored", []string{"STUDENTabc"}, "STUDENT002"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			admin, stores := newAdmin(t)
			for _, id := range tc.existing {
				stores.MustAddUsers(t, testutils.MustCreateStudentForTest(t, id))
			}
			stores.MustAddUsers(t, testutils.MustCreateTeacherForTest(t, "STUDENT999"))

			assert.Equal(t, tc.want, admin.NextStudentID())
		})
	}
}

func TestAdminService_CreateStudent(t *testing.T) {
	t.Parallel()
	admin, stores := newAdmin(t)

	student, err := admin.CreateStudent(service.CreateStudentRequest{Password: "pw1", Name: "Ann", Major: "Math"})
	require.NoError(t, err)
	assert.Equal(t, "STUDENT001", student.ID)
	assert.Equal(t, "Math", student.Detail())

	_, err = stores.Users.Login("STUDENT001", "pw1")
	assert.NoError(t, err)

	second, err := admin.CreateStudent(service.CreateStudentRequest{Password: "pw2", Name: "Ben", Major: "Art"})
	require.NoError(t, err)
	assert.Equal(t, "STUDENT002", second.ID)

	t.Run("explicit duplicate id", func(t *testing.T) {
		_, err := admin.CreateStudent(service.CreateStudentRequest{ID: "STUDENT001", Password: "pw3", Name: "C", Major: "X"})
		assert.ErrorIs(t, err, store.ErrUserExists)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := admin.CreateStudent(service.CreateStudentRequest{Password: "ab", Name: "C", Major: "X"})
		require.ErrorIs(t, err, service.ErrInvalidRequest)

		var verr *service.ValidationError
		require.True(t, errors.As(err, &verr))
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "Password", verr.Fields[0].Field)
		assert.Equal(t, "min", verr.Fields[0].Tag)
		assert.Equal(t, "Password must be at least 3 characters", verr.Fields[0].Message())
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := admin.CreateStudent(service.CreateStudentRequest{})
		var verr *service.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Len(t, verr.Fields, 3)
	})

	assert.Len(t, admin.ListStudents(), 2)
}

func TestAdminService_CreateTeacher(t *testing.T) {
	t.Parallel()
	admin, _ := newAdmin(t)

	teacher, err := admin.CreateTeacher(service.CreateTeacherRequest{ID: "T1", Password: "pw1", Name: "Ada", Department: "CS"})
	require.NoError(t, err)
	assert.True(t, teacher.IsTeacher())

	_, err = admin.CreateTeacher(service.CreateTeacherRequest{Password: "pw1", Name: "Ada", Department: "CS"})
	assert.ErrorIs(t, err, service.ErrInvalidRequest)

	_, err = admin.CreateTeacher(service.CreateTeacherRequest{ID: "T1", Password: "pw1", Name: "Ada", Department: "CS"})
	assert.ErrorIs(t, err, store.ErrUserExists)

	assert.Len(t, admin.ListTeachers(), 1)
}

func TestAdminService_UpdateUsers(t *testing.T) {
	t.Parallel()
	admin, stores := newAdmin(t)
	student := testutils.MustCreateStudentForTest(t, "S1")
	teacher := testutils.MustCreateTeacherForTest(t, "T1")
	stores.MustAddUsers(t, student, teacher)

	t.Run("empty fields keep current values", func(t *testing.T) {
		updated, err := admin.UpdateStudent(service.UpdateUserRequest{ID: "S1"})
		require.NoError(t, err)
		assert.Equal(t, "Student S1", updated.Name)
		assert.Equal(t, "Undeclared", updated.Detail())

		_, err = stores.Users.Login("S1", testutils.DefaultPassword)
		assert.NoError(t, err)
	})

	t.Run("student fields change", func(t *testing.T) {
		updated, err := admin.UpdateStudent(service.UpdateUserRequest{ID: "S1", Password: "newpw", Name: "Sam", Detail: "Physics"})
		require.NoError(t, err)
		assert.Same(t, student, updated)
		assert.Equal(t, "Sam", student.Name)
		assert.Equal(t, "Physics", student.Detail())

		_, err = stores.Users.Login("S1", "newpw")
		assert.NoError(t, err)
	})

	t.Run("teacher department changes", func(t *testing.T) {
		_, err := admin.UpdateTeacher(service.UpdateUserRequest{ID: "T1", Detail: "Math"})
		require.NoError(t, err)
		assert.Equal(t, "Math", teacher.Detail())
	})

	t.Run("wrong role", func(t *testing.T) {
		_, err := admin.UpdateStudent(service.UpdateUserRequest{ID: "T1", Name: "x"})
		assert.ErrorIs(t, err, service.ErrWrongRole)
		assert.Equal(t, "Teacher T1", teacher.Name)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := admin.UpdateTeacher(service.UpdateUserRequest{ID: "T9"})
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("short new password", func(t *testing.T) {
		_, err := admin.UpdateStudent(service.UpdateUserRequest{ID: "S1", Password: "ab"})
		assert.ErrorIs(t, err, service.ErrInvalidRequest)
	})
}

func TestAdminService_DeleteUsers(t *testing.T) {
	t.Parallel()
	admin, stores := newAdmin(t)
	stores.MustAddUsers(t,
		testutils.MustCreateStudentForTest(t, "S1"),
		testutils.MustCreateTeacherForTest(t, "T1"),
	)

	assert.ErrorIs(t, admin.DeleteStudent("T1"), service.ErrWrongRole)
	assert.ErrorIs(t, admin.DeleteTeacher("S1"), service.ErrWrongRole)
	assert.ErrorIs(t, admin.DeleteStudent("S9"), store.ErrUserNotFound)

	require.NoError(t, admin.DeleteStudent("S1"))
	require.NoError(t, admin.DeleteTeacher("T1"))
	assert.Empty(t, stores.Users.ListAll())
}

func TestAdminService_CreateCourse(t *testing.T) {
	t.Parallel()
	admin, stores := newAdmin(t)
	teacher := testutils.MustCreateTeacherForTest(t, "T1")
	stores.MustAddUsers(t, teacher, testutils.MustCreateStudentForTest(t, "S1"))

	course, err := admin.CreateCourse(service.CreateCourseRequest{ID: "CS101", Name: "Intro", TeacherID: "T1", Capacity: 2})
	require.NoError(t, err)
	assert.Equal(t, "T1", course.TeacherID)
	assert.Equal(t, []string{"CS101"}, teacher.AssignedCourseIDs())

	tests := []struct {
		name    string
		req     service.CreateCourseRequest
		wantErr error
	}{
		{"duplicate id", service.CreateCourseRequest{ID: "CS101", Name: "x", TeacherID: "T1", Capacity: 1}, store.ErrCourseExists},
		{"unknown teacher", service.CreateCourseRequest{ID: "C2", Name: "x", TeacherID: "T9", Capacity: 1}, store.ErrUserNotFound},
		{"teacher is a student", service.CreateCourseRequest{ID: "C2", Name: "x", TeacherID: "S1", Capacity: 1}, service.ErrWrongRole},
		{"zero capacity", service.CreateCourseRequest{ID: "C2", Name: "x", TeacherID: "T1", Capacity: 0}, service.ErrInvalidRequest},
		{"missing name", service.CreateCourseRequest{ID: "C2", TeacherID: "T1", Capacity: 1}, service.ErrInvalidRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := admin.CreateCourse(tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	assert.Len(t, admin.ListCourses(), 1)
}

func TestAdminService_CreateCourseWithoutTeacher(t *testing.T) {
	t.Parallel()
	admin, stores := newAdmin(t)

	course, err := admin.CreateCourse(service.CreateCourseRequest{ID: "ART1", Name: "Drawing", TeacherID: "  ", Capacity: 5})
	require.NoError(t, err)
	assert.Empty(t, course.TeacherID)

	stored, err := stores.Courses.FindByID("ART1")
	require.NoError(t, err)
	assert.Empty(t, stored.TeacherID)

	teacher := testutils.MustCreateTeacherForTest(t, "T1")
	stores.MustAddUsers(t, teacher)
	require.NoError(t, admin.AssignTeacher("ART1", "T1"))
	assert.Equal(t, "T1", stored.TeacherID)
}

func TestAdminService_AssignAndEnroll(t *testing.T) {
	t.Parallel()
	admin, stores := newAdmin(t)
	t1 := testutils.MustCreateTeacherForTest(t, "T1")
	s1 := testutils.MustCreateStudentForTest(t, "S1")
	s2 := testutils.MustCreateStudentForTest(t, "S2")
	stores.MustAddUsers(t, t1, s1, s2)
	stores.Courses.Add(testutils.MustCreateCourseForTest(t, "C1", testutils.WithCapacity(1)))

	require.NoError(t, admin.AssignTeacher("C1", "T1"))
	require.NoError(t, admin.AssignTeacher("C1", "T1"))
	assert.Equal(t, []string{"C1"}, t1.AssignedCourseIDs())

	assert.ErrorIs(t, admin.AssignTeacher("C9", "T1"), store.ErrCourseNotFound)
	assert.ErrorIs(t, admin.AssignTeacher("C1", "S1"), service.ErrWrongRole)

	require.NoError(t, admin.EnrollStudent("C1", "S1"))
	assert.ErrorIs(t, admin.EnrollStudent("C1", "S1"), store.ErrAlreadyEnrolled)
	assert.ErrorIs(t, admin.EnrollStudent("C1", "S2"), store.ErrCourseFull)
	assert.ErrorIs(t, admin.EnrollStudent("C1", "T1"), service.ErrWrongRole)
	assert.ErrorIs(t, admin.EnrollStudent("C9", "S2"), store.ErrCourseNotFound)
	assert.ErrorIs(t, admin.EnrollStudent("C1", "S9"), store.ErrUserNotFound)

	assert.True(t, s1.EnrolledIn("C1"))
	assert.False(t, s2.EnrolledIn("C1"))
}

func TestAdminService_DeleteCourse(t *testing.T) {
	t.Parallel()
	admin, stores := newAdmin(t)
	stores.Courses.Add(testutils.MustCreateCourseForTest(t, "C1"))

	require.NoError(t, admin.DeleteCourse("C1"))
	assert.ErrorIs(t, admin.DeleteCourse("C1"), store.ErrCourseNotFound)
}

func TestAdminService_EnrollPassesStudentPopulation(t *testing.T) {
	t.Parallel()
	users := new(mocks.UserStore)
	courses := new(mocks.CourseStore)

	student := testutils.MustCreateStudentForTest(t, "S1")
	population := []*domain.User{student, testutils.MustCreateStudentForTest(t, "S2")}
	course := testutils.MustCreateCourseForTest(t, "C1")

	courses.On("FindByID", "C1").Return(course, nil)
	users.On("FindByID", "S1").Return(student, nil)
	users.On("ListByRole", domain.RoleStudent).Return(population)
	courses.On("Enroll", "C1", student, population).Return(store.ErrCourseFull)

	admin := service.NewAdminService(users, courses, quietLogger())
	err := admin.EnrollStudent("C1", "S1")

	assert.ErrorIs(t, err, store.ErrCourseFull)
	users.AssertExpectations(t)
	courses.AssertExpectations(t)
	courses.AssertNotCalled(t, "AssignTeacher", mock.Anything, mock.Anything)
}
