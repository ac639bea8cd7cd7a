package memory

import (
	"testing"

	"github.com/phrazzld/classroom/internal/domain"
	"github.com/phrazzld/classroom/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestDirectory() *UserDirectory {
	return NewUserDirectory(bcrypt.MinCost, nil)
}

func mustStudent(t *testing.T, id string) *domain.User {
	t.Helper()
	u, err := domain.NewStudent(id, "pw-"+id, "Student "+id, "Math")
	require.NoError(t, err)
	return u
}

func mustTeacher(t *testing.T, id string) *domain.User {
	t.Helper()
	u, err := domain.NewTeacher(id, "pw-"+id, "Teacher "+id, "CS")
	require.NoError(t, err)
	return u
}

func TestUserDirectory_CreateAndFind(t *testing.T) {
	t.Parallel()
	dir := newTestDirectory()

	student := mustStudent(t, "S1")
	require.NoError(t, dir.Create(student))

	found, err := dir.FindByID("S1")
	require.NoError(t, err)
	assert.Equal(t, "Student S1", found.Name)
	assert.Equal(t, domain.RoleStudent, found.Role)
	assert.Empty(t, found.Password, "plaintext must not be kept")
	assert.True(t, IsPasswordHash(found.HashedPassword))

	t.Run("duplicate create is rejected and original kept", func(t *testing.T) {
		other, err := domain.NewTeacher("S1", "other", "Impostor", "Art")
		require.NoError(t, err)

		err = dir.Create(other)
		assert.ErrorIs(t, err, store.ErrUserExists)

		found, err := dir.FindByID("S1")
		require.NoError(t, err)
		assert.Equal(t, "Student S1", found.Name)
		assert.Equal(t, domain.RoleStudent, found.Role)
	})

	t.Run("invalid record is rejected", func(t *testing.T) {
		err := dir.Create(&domain.User{ID: "X", Name: "x", Password: "pw1", Role: domain.RoleStudent})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.ErrorIs(t, err, domain.ErrProfileMismatch)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := dir.FindByID("nobody")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestUserDirectory_AddIsIdempotent(t *testing.T) {
	t.Parallel()
	dir := newTestDirectory()

	dir.Add(mustStudent(t, "S1"))
	dupe, _ := domain.NewAdmin("S1", "pw1", "Someone Else")
	dir.Add(dupe)
	dir.Add(nil)
	dir.Add(&domain.User{ID: "", Name: "broken"})

	all := dir.ListAll()
	require.Len(t, all, 1)
	assert.Equal(t, "Student S1", all[0].Name)
}

func TestUserDirectory_Login(t *testing.T) {
	t.Parallel()
	dir := newTestDirectory()
	admin, err := domain.NewAdmin("ADMIN001", "admin123", "System Administrator")
	require.NoError(t, err)
	dir.Add(admin)

	user, err := dir.Login("ADMIN001", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "ADMIN001", user.ID)

	_, err = dir.Login("ADMIN001", "wrong")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)

	_, err = dir.Login("admin001", "admin123")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials, "ids are case sensitive")

	_, err = dir.Login("nobody", "admin123")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
}

func TestUserDirectory_AddKeepsStoredHash(t *testing.T) {
	t.Parallel()
	dir := newTestDirectory()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	dir.Add(&domain.User{ID: "T1", Name: "Grace", HashedPassword: string(hash), Role: domain.RoleTeacher, Teacher: &domain.TeacherProfile{Department: "CS"}})

	u, err := dir.Login("T1", "secret")
	require.NoError(t, err)
	assert.Equal(t, string(hash), u.HashedPassword)
}

func TestUserDirectory_Update(t *testing.T) {
	t.Parallel()
	dir := newTestDirectory()
	dir.Add(mustStudent(t, "S1"))
	dir.Add(mustTeacher(t, "T1"))

	t.Run("student fields and password", func(t *testing.T) {
		err := dir.Update(&domain.User{
			ID:       "S1",
			Name:     "Renamed",
			Password: "newpass",
			Role:     domain.RoleStudent,
			Student:  &domain.StudentProfile{Major: "Physics"},
		})
		require.NoError(t, err)

		u, err := dir.Login("S1", "newpass")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", u.Name)
		assert.Equal(t, "Physics", u.Student.Major)
		assert.Empty(t, u.Password)
	})

	t.Run("password kept when none supplied", func(t *testing.T) {
		err := dir.Update(&domain.User{ID: "T1", Name: "Grace H", Role: domain.RoleTeacher, Teacher: &domain.TeacherProfile{Department: "Math"}})
		require.NoError(t, err)

		u, err := dir.Login("T1", "pw-T1")
		require.NoError(t, err)
		assert.Equal(t, "Math", u.Teacher.Department)
	})

	t.Run("role never changes", func(t *testing.T) {
		err := dir.Update(&domain.User{ID: "T1", Name: "Grace", Role: domain.RoleStudent, Student: &domain.StudentProfile{Major: "Art"}})
		require.NoError(t, err)

		u, _ := dir.FindByID("T1")
		assert.Equal(t, domain.RoleTeacher, u.Role)
		assert.Nil(t, u.Student)
		assert.Equal(t, "Math", u.Teacher.Department)
	})

	t.Run("enrollments survive update", func(t *testing.T) {
		u, _ := dir.FindByID("S1")
		u.AddEnrollment("C1")

		require.NoError(t, dir.Update(&domain.User{ID: "S1", Name: "Again", Role: domain.RoleStudent, Student: &domain.StudentProfile{Major: "Bio"}}))
		assert.Equal(t, []string{"C1"}, u.EnrolledCourseIDs())
	})

	t.Run("unknown user", func(t *testing.T) {
		err := dir.Update(&domain.User{ID: "nobody", Name: "x"})
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("empty name", func(t *testing.T) {
		err := dir.Update(&domain.User{ID: "S1", Name: " "})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestUserDirectory_DeleteAndList(t *testing.T) {
	t.Parallel()
	dir := newTestDirectory()
	admin, _ := domain.NewAdmin("A1", "pw1", "Root")
	dir.Add(mustStudent(t, "S1"))
	dir.Add(mustTeacher(t, "T1"))
	dir.Add(admin)
	dir.Add(mustStudent(t, "S2"))

	ids := func(users []*domain.User) []string {
		out := make([]string, 0, len(users))
		for _, u := range users {
			out = append(out, u.ID)
		}
		return out
	}

	assert.Equal(t, []string{"S1", "T1", "A1", "S2"}, ids(dir.ListAll()))
	assert.Equal(t, []string{"S1", "S2"}, ids(dir.ListByRole(domain.RoleStudent)))
	assert.Equal(t, []string{"T1"}, ids(dir.ListByRole(domain.RoleTeacher)))

	require.NoError(t, dir.Delete("T1"))
	assert.ErrorIs(t, dir.Delete("T1"), store.ErrUserNotFound)
	assert.Equal(t, []string{"S1", "A1", "S2"}, ids(dir.ListAll()))
	assert.Equal(t, 3, dir.Len())
}

func TestNewUserDirectory_CostFallback(t *testing.T) {
	t.Parallel()
	assert.Equal(t, bcrypt.DefaultCost, NewUserDirectory(0, nil).bcryptCost)
	assert.Equal(t, bcrypt.MinCost, NewUserDirectory(bcrypt.MinCost, nil).bcryptCost)
}

func TestIsPasswordHash(t *testing.T) {
	t.Parallel()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, IsPasswordHash(string(hash)))
	assert.False(t, IsPasswordHash("admin123"))
	assert.False(t, IsPasswordHash(""))
}
