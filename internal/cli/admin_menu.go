package cli

import (
	"log/slog"
	"strconv"

	"github.com/phrazzld/classroom/internal/domain"
	"github.com/phrazzld/classroom/internal/service"
)

type adminMenu struct {
	console *Console
	svc     service.AdminService
	logger  *slog.Logger
}

func newAdminMenu(console *Console, svc service.AdminService, logger *slog.Logger) *adminMenu {
	return &adminMenu{console: console, svc: svc, logger: logger}
}

func (m *adminMenu) run() error {
	return runMenu(m.console, "=== ADMIN MENU ===", "", []option{
		{"Create Student Account", m.createStudent},
		{"Update Student Account", func() error { return m.updateUser(domain.RoleStudent) }},
		{"Delete Student Account", func() error { return m.deleteUser(domain.RoleStudent) }},
		{"Create Teacher Account", m.createTeacher},
		{"Update Teacher Account", func() error { return m.updateUser(domain.RoleTeacher) }},
		{"Delete Teacher Account", func() error { return m.deleteUser(domain.RoleTeacher) }},
		{"Create Course", m.createCourse},
		{"Delete Course", m.deleteCourse},
		{"Assign Teacher to Course", m.assignTeacher},
		{"Enroll Student in Course", m.enrollStudent},
		{"View All Students", m.listStudents},
		{"View All Teachers", m.listTeachers},
		{"View All Courses", m.listCourses},
	})
}

func (m *adminMenu) fail(err error) {
	reportError(m.console, m.logger, err)
}

// ask prompts for each label in turn and stops at the first input error.
func (m *adminMenu) ask(labels ...string) ([]string, error) {
	answers := make([]string, 0, len(labels))
	for _, label := range labels {
		answer, err := m.console.Prompt(label)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}
	return answers, nil
}

func (m *adminMenu) createStudent() error {
	m.console.Println("\n--- Create Student Account ---")
	id := m.svc.NextStudentID()
	m.console.Println("Generated Student ID: " + id)

	password, err := m.console.Password("Enter Password: ")
	if err != nil {
		return err
	}
	answers, err := m.ask("Enter Name: ", "Enter Major: ")
	if err != nil {
		return err
	}

	if _, err := m.svc.CreateStudent(service.CreateStudentRequest{
		ID:       id,
		Password: password,
		Name:     answers[0],
		Major:    answers[1],
	}); err != nil {
		m.fail(err)
		return nil
	}

	m.console.Println("Student account created successfully!")
	return nil
}

func (m *adminMenu) createTeacher() error {
	m.console.Println("\n--- Create Teacher Account ---")
	id, err := m.console.Prompt("Enter Teacher ID: ")
	if err != nil {
		return err
	}
	password, err := m.console.Password("Enter Password: ")
	if err != nil {
		return err
	}
	answers, err := m.ask("Enter Name: ", "Enter Department: ")
	if err != nil {
		return err
	}

	if _, err := m.svc.CreateTeacher(service.CreateTeacherRequest{
		ID:         id,
		Password:   password,
		Name:       answers[0],
		Department: answers[1],
	}); err != nil {
		m.fail(err)
		return nil
	}

	m.console.Println("Teacher account created successfully!")
	return nil
}

func (m *adminMenu) updateUser(role domain.Role) error {
	kind, detail := "Student", "Major"
	update := m.svc.UpdateStudent
	if role == domain.RoleTeacher {
		kind, detail = "Teacher", "Department"
		update = m.svc.UpdateTeacher
	}

	m.console.Printf("\n--- Update %s Account ---\n", kind)
	id, err := m.console.Prompt("Enter " + kind + " ID: ")
	if err != nil {
		return err
	}
	password, err := m.console.Password("Enter New Password (or press Enter to keep current): ")
	if err != nil {
		return err
	}
	answers, err := m.ask(
		"Enter New Name (or press Enter to keep current): ",
		"Enter New "+detail+" (or press Enter to keep current): ",
	)
	if err != nil {
		return err
	}

	if _, err := update(service.UpdateUserRequest{
		ID:       id,
		Password: password,
		Name:     answers[0],
		Detail:   answers[1],
	}); err != nil {
		m.fail(err)
		return nil
	}

	m.console.Printf("%s account updated successfully!\n", kind)
	return nil
}

func (m *adminMenu) deleteUser(role domain.Role) error {
	kind := "Student"
	remove := m.svc.DeleteStudent
	if role == domain.RoleTeacher {
		kind = "Teacher"
		remove = m.svc.DeleteTeacher
	}

	m.console.Printf("\n--- Delete %s Account ---\n", kind)
	id, err := m.console.Prompt("Enter " + kind + " ID: ")
	if err != nil {
		return err
	}
	ok, err := m.console.Confirm("Are you sure you want to delete this account? (yes/no): ")
	if err != nil {
		return err
	}
	if !ok {
		m.console.Println("Deletion cancelled.")
		return nil
	}

	if err := remove(id); err != nil {
		m.fail(err)
		return nil
	}

	m.console.Printf("%s account deleted successfully!\n", kind)
	return nil
}

func (m *adminMenu) createCourse() error {
	m.console.Println("\n--- Create Course ---")
	answers, err := m.ask(
		"Enter Course ID: ",
		"Enter Course Name: ",
		"Enter Description: ",
		"Enter Teacher ID (or press Enter for none): ",
		"Enter Capacity: ",
	)
	if err != nil {
		return err
	}

	capacity, err := strconv.Atoi(answers[4])
	if err != nil {
		m.console.Println("Error: Please enter a valid number.")
		return nil
	}

	if _, err := m.svc.CreateCourse(service.CreateCourseRequest{
		ID:          answers[0],
		Name:        answers[1],
		Description: answers[2],
		TeacherID:   answers[3],
		Capacity:    capacity,
	}); err != nil {
		m.fail(err)
		return nil
	}

	m.console.Println("Course created successfully!")
	return nil
}

func (m *adminMenu) deleteCourse() error {
	m.console.Println("\n--- Delete Course ---")
	id, err := m.console.Prompt("Enter Course ID: ")
	if err != nil {
		return err
	}
	ok, err := m.console.Confirm("Are you sure you want to delete this course? (yes/no): ")
	if err != nil {
		return err
	}
	if !ok {
		m.console.Println("Deletion cancelled.")
		return nil
	}

	if err := m.svc.DeleteCourse(id); err != nil {
		m.fail(err)
		return nil
	}

	m.console.Println("Course deleted successfully!")
	return nil
}

func (m *adminMenu) assignTeacher() error {
	m.console.Println("\n--- Assign Teacher to Course ---")
	answers, err := m.ask("Enter Course ID: ", "Enter Teacher ID: ")
	if err != nil {
		return err
	}

	if err := m.svc.AssignTeacher(answers[0], answers[1]); err != nil {
		m.fail(err)
		return nil
	}

	m.console.Println("Teacher assigned to course successfully!")
	return nil
}

func (m *adminMenu) enrollStudent() error {
	m.console.Println("\n--- Enroll Student in Course ---")
	answers, err := m.ask("Enter Course ID: ", "Enter Student ID: ")
	if err != nil {
		return err
	}

	if err := m.svc.EnrollStudent(answers[0], answers[1]); err != nil {
		m.fail(err)
		return nil
	}

	m.console.Println("Student enrolled in course successfully!")
	return nil
}

func (m *adminMenu) listStudents() error {
	m.console.Println("\n--- All Students ---")
	students := m.svc.ListStudents()
	if len(students) == 0 {
		m.console.Println("No students found.")
		return nil
	}
	for _, s := range students {
		m.console.Printf("ID: %s, Name: %s, Major: %s\n", s.ID, s.Name, s.Detail())
	}
	return nil
}

func (m *adminMenu) listTeachers() error {
	m.console.Println("\n--- All Teachers ---")
	teachers := m.svc.ListTeachers()
	if len(teachers) == 0 {
		m.console.Println("No teachers found.")
		return nil
	}
	for _, t := range teachers {
		m.console.Printf("ID: %s, Name: %s, Department: %s\n", t.ID, t.Name, t.Detail())
	}
	return nil
}

func (m *adminMenu) listCourses() error {
	m.console.Println("\n--- All Courses ---")
	courses := m.svc.ListCourses()
	if len(courses) == 0 {
		m.console.Println("No courses found.")
		return nil
	}
	for _, c := range courses {
		teacher := c.TeacherID
		if teacher == "" {
			teacher = "(none)"
		}
		m.console.Printf("ID: %s, Name: %s, Teacher: %s, Capacity: %d\n", c.ID, c.Name, teacher, c.Capacity)
	}
	return nil
}
