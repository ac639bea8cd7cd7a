package cli

import "strconv"

type option struct {
	label  string
	action func() error
}

// runMenu shows options until the user picks the trailing Logout entry.
// Errors from actions end the menu; they only occur when input fails.
func runMenu(c *Console, title, greeting string, options []option) error {
	for {
		c.Println()
		c.Println(title)
		if greeting != "" {
			c.Println(greeting)
		}
		for i, o := range options {
			c.Printf("%d. %s\n", i+1, o.label)
		}
		c.Printf("%d. Logout\n", len(options)+1)

		choice, err := c.Prompt("Enter your choice: ")
		if err != nil {
			return err
		}

		n, convErr := strconv.Atoi(choice)
		switch {
		case convErr == nil && n >= 1 && n <= len(options):
			if err := options[n-1].action(); err != nil {
				return err
			}
		case convErr == nil && n == len(options)+1:
			c.Println("Logging out...")
			return nil
		default:
			c.Println("Invalid choice. Please try again.")
		}
	}
}
