package flatfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/phrazzld/classroom/internal/domain"
	"github.com/phrazzld/classroom/internal/platform/memory"
	"github.com/phrazzld/classroom/internal/redact"
	"github.com/phrazzld/classroom/internal/store"
)

// File names inside the data directory.
const (
	UsersFile       = "users.txt"
	CoursesFile     = "courses.txt"
	EnrollmentsFile = "enrollments.txt"
	AssignmentsFile = "assignments.txt"
	GradesFile      = "grades.txt"
)

// nullTeacher is what older data files hold for a course without a teacher.
const nullTeacher = "null"

// Gateway loads and saves the four stores. It is not safe for concurrent use.
type Gateway struct {
	dir         string
	users       store.UserStore
	courses     store.CourseStore
	assignments store.AssignmentStore
	grades      store.GradeStore
	logger      *slog.Logger
}

// NewGateway creates a gateway over dir.
// If logger is nil, a default logger will be used.
func NewGateway(
	dir string,
	users store.UserStore,
	courses store.CourseStore,
	assignments store.AssignmentStore,
	grades store.GradeStore,
	logger *slog.Logger,
) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}

	return &Gateway{
		dir:         dir,
		users:       users,
		courses:     courses,
		assignments: assignments,
		grades:      grades,
		logger:      logger.With(slog.String("component", "flatfile")),
	}
}

// Dir returns the data directory.
func (g *Gateway) Dir() string {
	return g.dir
}

// Load reads every data file into the stores. Enrollments need users and
// courses, so the order is fixed. An I/O error stops loading and leaves
// whatever was read so far in the stores.
func (g *Gateway) Load(ctx context.Context) error {
	steps := []struct {
		file  string
		parse func(record []string) error
		// columns hidden when a record is logged
		sensitive []int
	}{
		{UsersFile, g.parseUser, []int{1}},
		{CoursesFile, g.parseCourse, nil},
		{EnrollmentsFile, g.parseEnrollment, nil},
		{AssignmentsFile, g.parseAssignment, nil},
		{GradesFile, g.parseGrade, nil},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.readFile(step.file, step.parse, step.sensitive); err != nil {
			return fmt.Errorf("failed to load %s: %w", step.file, err)
		}
		if step.file == CoursesFile {
			g.linkTeachers()
		}
	}

	g.logger.Info("data loaded",
		slog.String("dir", g.dir),
		slog.Int("users", len(g.users.ListAll())),
		slog.Int("courses", len(g.courses.ListAll())),
		slog.Int("assignments", len(g.assignments.ListAll())),
		slog.Int("grades", len(g.grades.ListAll())))

	return nil
}

// Save writes every store to its file, creating the data directory when
// needed. Each file is replaced atomically.
func (g *Gateway) Save(ctx context.Context) error {
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	steps := []struct {
		file    string
		records func() [][]string
	}{
		{UsersFile, g.userRecords},
		{CoursesFile, g.courseRecords},
		{EnrollmentsFile, g.enrollmentRecords},
		{AssignmentsFile, g.assignmentRecords},
		{GradesFile, g.gradeRecords},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.writeFile(step.file, step.records()); err != nil {
			return fmt.Errorf("failed to save %s: %w", step.file, err)
		}
	}

	g.logger.Debug("data saved", slog.String("dir", g.dir))
	return nil
}

// errMalformed marks a record that is skipped rather than aborting the load.
var errMalformed = errors.New("malformed record")

func (g *Gateway) readFile(name string, parse func([]string) error, sensitive []int) error {
	f, err := os.Open(filepath.Join(g.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		g.logger.Debug("data file missing, skipping", slog.String("file", name))
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			g.logger.Warn("skipping unreadable line",
				slog.String("file", name),
				slog.Int("line", parseErr.Line),
				slog.String("error", redact.Error(err)))
			continue
		}
		if err != nil {
			return err
		}

		if isBlank(record) {
			continue
		}

		if err := parse(record); err != nil {
			line, _ := r.FieldPos(0)
			g.logger.Warn("skipping malformed line",
				slog.String("file", name),
				slog.Int("line", line),
				slog.String("record", redact.Fields(record, sensitive...)),
				slog.String("error", redact.Error(err)))
		}
	}
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

func (g *Gateway) writeFile(name string, records [][]string) (err error) {
	tmp, err := os.CreateTemp(g.dir, name+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := csv.NewWriter(tmp)
	if err := w.WriteAll(records); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), filepath.Join(g.dir, name))
}

func requireFields(record []string, n int) error {
	if len(record) < n {
		return fmt.Errorf("%w: want at least %d fields, got %d", errMalformed, n, len(record))
	}
	return nil
}

// parseUser reads id,password,name,role[,major|department]. The password
// column holds a bcrypt hash; a plaintext value from an older file is
// handed to the store, which hashes it.
func (g *Gateway) parseUser(record []string) error {
	if err := requireFields(record, 4); err != nil {
		return err
	}

	id, password, name := record[0], record[1], record[2]
	role, err := domain.ParseRole(record[3])
	if err != nil {
		return err
	}

	var user *domain.User
	switch role {
	case domain.RoleAdmin:
		user, err = domain.NewAdmin(id, password, name)
	case domain.RoleTeacher:
		if err := requireFields(record, 5); err != nil {
			return err
		}
		user, err = domain.NewTeacher(id, password, name, record[4])
	case domain.RoleStudent:
		if err := requireFields(record, 5); err != nil {
			return err
		}
		user, err = domain.NewStudent(id, password, name, record[4])
	}
	if err != nil {
		return err
	}

	if memory.IsPasswordHash(password) {
		user.HashedPassword = password
		user.Password = ""
	}

	g.users.Add(user)
	return nil
}

func (g *Gateway) parseCourse(record []string) error {
	if err := requireFields(record, 5); err != nil {
		return err
	}

	capacity, err := strconv.Atoi(strings.TrimSpace(record[4]))
	if err != nil {
		return fmt.Errorf("%w: capacity: %w", errMalformed, err)
	}

	teacherID := record[3]
	if teacherID == nullTeacher {
		teacherID = ""
	}

	course, err := domain.NewCourse(record[0], record[1], record[2], teacherID, capacity)
	if err != nil {
		return err
	}

	g.courses.Add(course)
	return nil
}

// linkTeachers rebuilds each teacher's assigned course list from the
// courses' teacher ids, which is the only place that link is stored.
func (g *Gateway) linkTeachers() {
	for _, course := range g.courses.ListAll() {
		if course.TeacherID == "" {
			continue
		}
		teacher, err := g.users.FindByID(course.TeacherID)
		if err != nil || !teacher.IsTeacher() {
			g.logger.Debug("course teacher not found",
				slog.String("course_id", course.ID),
				slog.String("teacher_id", course.TeacherID))
			continue
		}
		teacher.AddAssignedCourse(course.ID)
	}
}

// parseEnrollment links a student to a course without the capacity check
// Enroll applies; the file is trusted to describe the saved state.
func (g *Gateway) parseEnrollment(record []string) error {
	if err := requireFields(record, 2); err != nil {
		return err
	}

	student, err := g.users.FindByID(record[0])
	if err != nil {
		return err
	}
	if !student.IsStudent() {
		return fmt.Errorf("%w: %s is not a student", store.ErrInvalidReference, student.ID)
	}

	course, err := g.courses.FindByID(record[1])
	if err != nil {
		return err
	}

	student.AddEnrollment(course.ID)
	return nil
}

func (g *Gateway) parseAssignment(record []string) error {
	if err := requireFields(record, 6); err != nil {
		return err
	}

	maxPoints, err := strconv.ParseFloat(strings.TrimSpace(record[5]), 64)
	if err != nil {
		return fmt.Errorf("%w: max points: %w", errMalformed, err)
	}

	assignment, err := domain.NewAssignment(record[0], record[1], record[2], record[3], record[4], maxPoints)
	if err != nil {
		return err
	}

	g.assignments.Add(assignment)
	return nil
}

func (g *Gateway) parseGrade(record []string) error {
	if err := requireFields(record, 4); err != nil {
		return err
	}

	points, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
	if err != nil {
		return fmt.Errorf("%w: points: %w", errMalformed, err)
	}

	grade, err := domain.NewGrade(record[0], record[1], record[2], points)
	if err != nil {
		return err
	}

	g.grades.Add(grade)
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (g *Gateway) userRecords() [][]string {
	users := g.users.ListAll()
	out := make([][]string, 0, len(users))
	for _, u := range users {
		record := []string{u.ID, u.HashedPassword, u.Name, string(u.Role)}
		if !u.IsAdmin() {
			record = append(record, u.Detail())
		}
		out = append(out, record)
	}
	return out
}

func (g *Gateway) courseRecords() [][]string {
	courses := g.courses.ListAll()
	out := make([][]string, 0, len(courses))
	for _, c := range courses {
		out = append(out, []string{c.ID, c.Name, c.Description, c.TeacherID, strconv.Itoa(c.Capacity)})
	}
	return out
}

func (g *Gateway) enrollmentRecords() [][]string {
	out := make([][]string, 0)
	for _, s := range g.users.ListByRole(domain.RoleStudent) {
		for _, courseID := range s.EnrolledCourseIDs() {
			out = append(out, []string{s.ID, courseID})
		}
	}
	return out
}

func (g *Gateway) assignmentRecords() [][]string {
	assignments := g.assignments.ListAll()
	out := make([][]string, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, []string{a.ID, a.CourseID, a.Title, a.Description, a.DueDate, formatFloat(a.MaxPoints)})
	}
	return out
}

func (g *Gateway) gradeRecords() [][]string {
	grades := g.grades.ListAll()
	out := make([][]string, 0, len(grades))
	for _, gr := range grades {
		out = append(out, []string{gr.ID, gr.StudentID, gr.AssignmentID, formatFloat(gr.Points)})
	}
	return out
}
