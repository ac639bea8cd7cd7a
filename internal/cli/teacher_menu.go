package cli

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/phrazzld/classroom/internal/service"
)

type teacherMenu struct {
	console *Console
	svc     service.TeacherService
	logger  *slog.Logger
}

func newTeacherMenu(console *Console, svc service.TeacherService, logger *slog.Logger) *teacherMenu {
	return &teacherMenu{console: console, svc: svc, logger: logger}
}

func (m *teacherMenu) run() error {
	greeting := "Welcome, " + m.svc.Teacher().Name + "!"
	return runMenu(m.console, "=== TEACHER MENU ===", greeting, []option{
		{"View My Courses", m.listCourses},
		{"View Students in Course", m.listStudents},
		{"Create Assignment", m.createAssignment},
		{"Enter/Update Grade", m.recordGrade},
		{"View Assignments for Course", m.listAssignments},
	})
}

func (m *teacherMenu) listCourses() error {
	m.console.Println("\n--- My Courses ---")
	courses := m.svc.Courses()
	if len(courses) == 0 {
		m.console.Println("No courses assigned.")
		return nil
	}
	for _, c := range courses {
		m.console.Printf("ID: %s, Name: %s, Capacity: %d\n", c.ID, c.Name, c.Capacity)
	}
	return nil
}

func (m *teacherMenu) listStudents() error {
	m.console.Println("\n--- View Students in Course ---")
	courseID, err := m.console.Prompt("Enter Course ID: ")
	if err != nil {
		return err
	}

	course, students, err := m.svc.StudentsInCourse(courseID)
	if err != nil {
		reportError(m.console, m.logger, err)
		return nil
	}

	m.console.Printf("\nStudents enrolled in %s:\n", course.Name)
	if len(students) == 0 {
		m.console.Println("No students enrolled in this course.")
		return nil
	}
	for _, s := range students {
		m.console.Printf("ID: %s, Name: %s, Major: %s\n", s.ID, s.Name, s.Detail())
	}
	return nil
}

func (m *teacherMenu) createAssignment() error {
	m.console.Println("\n--- Create Assignment ---")
	var answers []string
	for _, label := range []string{
		"Enter Course ID: ",
		"Enter Assignment ID: ",
		"Enter Title: ",
		"Enter Description: ",
		"Enter Due Date (e.g., 2024-12-15): ",
		"Enter Max Points: ",
	} {
		answer, err := m.console.Prompt(label)
		if err != nil {
			return err
		}
		answers = append(answers, answer)
	}

	maxPoints, err := strconv.ParseFloat(answers[5], 64)
	if err != nil {
		m.console.Println("Error: Please enter a valid number.")
		return nil
	}

	if _, err := m.svc.CreateAssignment(service.CreateAssignmentRequest{
		CourseID:    answers[0],
		ID:          answers[1],
		Title:       answers[2],
		Description: answers[3],
		DueDate:     answers[4],
		MaxPoints:   maxPoints,
	}); err != nil {
		reportError(m.console, m.logger, err)
		return nil
	}

	m.console.Println("Assignment created successfully!")
	return nil
}

func (m *teacherMenu) recordGrade() error {
	m.console.Println("\n--- Enter/Update Grade ---")
	assignmentID, err := m.console.Prompt("Enter Assignment ID: ")
	if err != nil {
		return err
	}
	studentID, err := m.console.Prompt("Enter Student ID: ")
	if err != nil {
		return err
	}
	raw, err := m.console.Prompt("Enter Points Earned: ")
	if err != nil {
		return err
	}

	points, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		m.console.Println("Error: Please enter a valid number.")
		return nil
	}

	_, created, err := m.svc.RecordGrade(assignmentID, studentID, points)
	switch {
	case errors.Is(err, service.ErrPointsOutOfRange):
		m.reportRange(assignmentID)
		return nil
	case err != nil:
		reportError(m.console, m.logger, err)
		return nil
	case created:
		m.console.Println("Grade entered successfully!")
	default:
		m.console.Println("Grade updated successfully!")
	}
	return nil
}

// reportRange names the allowed range when the assignment is still visible
// to the teacher.
func (m *teacherMenu) reportRange(assignmentID string) {
	for _, c := range m.svc.Courses() {
		_, assignments, err := m.svc.AssignmentsForCourse(c.ID)
		if err != nil {
			continue
		}
		for _, a := range assignments {
			if a.ID == assignmentID {
				m.console.Printf("Error: Points must be between 0 and %s.\n", formatPoints(a.MaxPoints))
				return
			}
		}
	}
	m.console.Println("Error: Points are out of range.")
}

func (m *teacherMenu) listAssignments() error {
	m.console.Println("\n--- View Assignments for Course ---")
	courseID, err := m.console.Prompt("Enter Course ID: ")
	if err != nil {
		return err
	}

	course, assignments, err := m.svc.AssignmentsForCourse(courseID)
	if err != nil {
		reportError(m.console, m.logger, err)
		return nil
	}

	m.console.Printf("\nAssignments for %s:\n", course.Name)
	if len(assignments) == 0 {
		m.console.Println("No assignments found for this course.")
		return nil
	}
	for _, a := range assignments {
		m.console.Printf("ID: %s, Title: %s, Due Date: %s, Max Points: %s\n",
			a.ID, a.Title, a.DueDate, formatPoints(a.MaxPoints))
	}
	return nil
}
