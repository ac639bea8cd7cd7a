// Package cli implements the interactive, line-oriented menus: a main menu
// for signing in and one menu per role. All input and output goes through a
// Console so the menus can be driven from tests.
package cli
