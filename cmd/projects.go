package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// projectsCmd represents the projects command
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List the project catalog",
	Long: `List the global project catalog. The catalog is seeded once from all
historical entries and grows additively as new project names are used.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listProjects()
	},
}

// projectsAddCmd represents the projects add command
var projectsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a project to the catalog",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addProject(args[0])
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.AddCommand(projectsAddCmd)
}

func listProjects() {
	s, _, ok := openStore()
	if !ok {
		return
	}

	projects := s.Data().Settings.Projects
	if len(projects) == 0 {
		_, _ = faintColor.Fprintln(deps.Stdout, "no projects")
		return
	}
	for _, p := range projects {
		_, _ = fmt.Fprintln(deps.Stdout, p)
	}
}

func addProject(name string) {
	s, persister, ok := openStore()
	if !ok {
		return
	}

	before := len(s.Data().Settings.Projects)
	s.AddProject(name)
	if len(s.Data().Settings.Projects) == before {
		_, _ = fmt.Fprintf(deps.Stdout, "Project '%s' already in catalog\n", name)
		return
	}

	if !saveStore(persister, s) {
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Added project '%s'\n", name)
}
