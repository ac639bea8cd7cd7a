package cli

import (
	"log/slog"

	"github.com/phrazzld/classroom/internal/service"
)

type studentMenu struct {
	console *Console
	svc     service.StudentService
	logger  *slog.Logger
}

func newStudentMenu(console *Console, svc service.StudentService, logger *slog.Logger) *studentMenu {
	return &studentMenu{console: console, svc: svc, logger: logger}
}

func (m *studentMenu) run() error {
	greeting := "Welcome, " + m.svc.Student().Name + "!"
	return runMenu(m.console, "=== STUDENT MENU ===", greeting, []option{
		{"View My Courses", m.listCourses},
		{"View Assignments for Course", m.listAssignments},
		{"View My Grades", m.listGrades},
		{"View Final Grade for Course", m.finalGrade},
	})
}

func (m *studentMenu) listCourses() error {
	m.console.Println("\n--- My Courses ---")
	courses := m.svc.Courses()
	if len(courses) == 0 {
		m.console.Println("You are not enrolled in any courses.")
		return nil
	}
	for _, c := range courses {
		m.console.Printf("ID: %s, Name: %s, Description: %s\n", c.ID, c.Name, c.Description)
	}
	return nil
}

func (m *studentMenu) listAssignments() error {
	m.console.Println("\n--- View Assignments for Course ---")
	courseID, err := m.console.Prompt("Enter Course ID: ")
	if err != nil {
		return err
	}

	course, graded, err := m.svc.AssignmentsForCourse(courseID)
	if err != nil {
		reportError(m.console, m.logger, err)
		return nil
	}

	m.console.Printf("\nAssignments and Grades for %s:\n", course.Name)
	if len(graded) == 0 {
		m.console.Println("No assignments found for this course.")
		return nil
	}
	for _, g := range graded {
		a := g.Assignment
		m.console.Printf("ID: %s, Title: %s, Due Date: %s, Max Points: %s\n",
			a.ID, a.Title, a.DueDate, formatPoints(a.MaxPoints))
		if g.Grade == nil {
			m.console.Println("  Grade: Not yet graded")
			continue
		}
		m.console.Printf("  Grade: %s/%s\n", formatPoints(g.Grade.Points), formatPoints(a.MaxPoints))
	}
	return nil
}

func (m *studentMenu) listGrades() error {
	m.console.Println("\n--- My Grades ---")
	grades := m.svc.Grades()
	if len(grades) == 0 {
		m.console.Println("No grades found.")
		return nil
	}
	for _, g := range grades {
		m.console.Printf("Assignment: %s, Points: %s/%s\n",
			g.Assignment.Title, formatPoints(g.Grade.Points), formatPoints(g.Assignment.MaxPoints))
	}
	return nil
}

func (m *studentMenu) finalGrade() error {
	m.console.Println("\n--- View Final Grade for Course ---")
	courseID, err := m.console.Prompt("Enter Course ID: ")
	if err != nil {
		return err
	}

	grade, err := m.svc.FinalGrade(courseID)
	if err != nil {
		reportError(m.console, m.logger, err)
		return nil
	}

	if grade.Assignments == 0 {
		m.console.Println("No assignments found for this course.")
		return nil
	}

	m.console.Printf("\nFinal Grade for %s: %.2f%%\n", grade.Course.Name, grade.Percent)
	return nil
}
