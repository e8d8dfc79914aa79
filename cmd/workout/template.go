// ABOUTME: CLI commands for managing workout templates.
// ABOUTME: Supports add, list, show, delete, export, and import subcommands.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/orionmayta1234/Workout-app/internal/models"
	"github.com/orionmayta1234/Workout-app/internal/storage"
)

var (
	templateExercises []string
	templateOutput    string
)

var templateCmd = &cobra.Command{
	Use:     "template",
	Aliases: []string{"t", "tmpl"},
	Short:   "Manage workout templates",
	Long: `Manage the workout templates sessions are started from.

A template is a named list of planned exercises. Each exercise has a
target set count and a target rep range. Targets only seed the session:
you can log fewer sets, or add extras with 'workout add-set'.

EXERCISE FORMAT:

  Exercises are written NAME:SETSxREPS, e.g.

    "Bench Press:3x8-12"   3 sets of 8-12 reps
    "Squat:5x5"            5 sets of 5 reps

COMMANDS:

  add       Create a template from --exercise flags
  exercise  Append exercises to an existing template
  list      List all templates
  show      View a template with its exercises
  delete    Delete a template (logged workouts are kept)
  export    Write a template as editable YAML
  import    Create a template from a YAML file`,
}

var templateAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a workout template",
	Long: `Add a workout template.

Examples:
  workout template add "Push Day" -e "Bench Press:3x8-12" -e "Overhead Press:2x6-8"
  workout template add "Leg Day" -e "Squat:5x5" -e "Leg Press:3x10-15"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if len(templateExercises) == 0 {
			return fmt.Errorf("template needs at least one --exercise (NAME:SETSxREPS)")
		}

		t := models.NewTemplate(name)
		for _, spec := range templateExercises {
			exName, sets, reps, err := parseExerciseSpec(spec)
			if err != nil {
				return err
			}
			t.AddExercise(exName, sets, reps)
		}

		if err := repo.CreateTemplate(t); err != nil {
			return fmt.Errorf("failed to create template: %w", err)
		}

		color.Green("✓ Added template %s", t.Name)
		fmt.Printf("  %s %d exercises\n",
			color.New(color.Faint).Sprint(t.ID.String()[:8]),
			len(t.Exercises))

		return nil
	},
}

var templateExerciseCmd = &cobra.Command{
	Use:   "exercise <ref>",
	Short: "Append exercises to a template",
	Long: `Append exercises to an existing template.

Sessions already started from the template are unaffected; the new
exercises appear the next time you start one.

Example:
  workout template exercise "Push Day" -e "Lateral Raise:3x12-15"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := storage.FindTemplate(repo, args[0])
		if err != nil {
			return fmt.Errorf("template not found: %s", args[0])
		}

		if len(templateExercises) == 0 {
			return fmt.Errorf("nothing to append; pass at least one --exercise (NAME:SETSxREPS)")
		}

		for _, spec := range templateExercises {
			exName, sets, reps, err := parseExerciseSpec(spec)
			if err != nil {
				return err
			}
			t.AddExercise(exName, sets, reps)
		}

		if err := repo.UpdateTemplate(t); err != nil {
			return fmt.Errorf("failed to update template: %w", err)
		}

		color.Green("✓ Updated %s", t.Name)
		fmt.Printf("  now %d exercises\n", len(t.Exercises))

		return nil
	},
}

var templateListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workout templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		templates, err := repo.ListTemplates()
		if err != nil {
			return fmt.Errorf("failed to list templates: %w", err)
		}

		if len(templates) == 0 {
			fmt.Println("No templates found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, t := range templates {
			fmt.Printf("%s %s %s\n",
				faint.Sprint(t.ID.String()[:8]),
				padRight(t.Name, 20),
				faint.Sprint(truncate(exerciseSummary(t), 50)))
		}

		return nil
	},
}

var templateShowCmd = &cobra.Command{
	Use:   "show <ref>",
	Short: "Show a template",
	Long:  `Show a template by ID, ID prefix, or name.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := storage.FindTemplate(repo, args[0])
		if err != nil {
			return fmt.Errorf("template not found: %s", args[0])
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n", t.Name, faint.Sprint(t.ID.String()[:8]))
		fmt.Printf("Created: %s\n\n", t.CreatedAt.Format("2006-01-02"))
		for i, ex := range t.Exercises {
			fmt.Printf("%d. %s  %dx%s\n", i+1, ex.Name, ex.TargetSets, ex.TargetReps)
			if ex.Notes != nil && *ex.Notes != "" {
				fmt.Printf("   %s\n", faint.Sprint(*ex.Notes))
			}
		}

		return nil
	},
}

var templateDeleteCmd = &cobra.Command{
	Use:     "delete <ref>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a workout template",
	Long: `Delete a template by ID, ID prefix, or name.

Workout history is unaffected: logs keep their own copy of the
template name, so past sessions stay intact.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := storage.FindTemplate(repo, args[0])
		if err != nil {
			return fmt.Errorf("template not found: %s", args[0])
		}

		if err := repo.DeleteTemplate(t.ID.String()); err != nil {
			return fmt.Errorf("failed to delete template: %w", err)
		}

		color.Yellow("✗ Deleted %s", t.Name)
		fmt.Println("  Logged workouts are kept.")

		return nil
	},
}

var templateExportCmd = &cobra.Command{
	Use:   "export <ref>",
	Short: "Export a template as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := storage.FindTemplate(repo, args[0])
		if err != nil {
			return fmt.Errorf("template not found: %s", args[0])
		}

		data, err := storage.RenderTemplateYAML(t)
		if err != nil {
			return fmt.Errorf("failed to render template: %w", err)
		}

		if templateOutput != "" {
			if err := os.WriteFile(templateOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported %s to %s", t.Name, templateOutput)
		} else {
			fmt.Print(string(data))
		}

		return nil
	},
}

var templateImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a template from YAML",
	Long: `Create a template from a YAML file.

The file format matches 'workout template export':

  name: Push Day
  exercises:
    - name: Bench Press
      target_sets: 3
      target_reps: 8-12`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		t, err := storage.ParseTemplateYAML(raw)
		if err != nil {
			return err
		}

		if err := repo.CreateTemplate(t); err != nil {
			return fmt.Errorf("failed to create template: %w", err)
		}

		color.Green("✓ Imported template %s", t.Name)
		fmt.Printf("  %s %d exercises\n",
			color.New(color.Faint).Sprint(t.ID.String()[:8]),
			len(t.Exercises))

		return nil
	},
}

// parseExerciseSpec parses "Bench Press:3x8-12" into name, target sets,
// and target reps.
func parseExerciseSpec(spec string) (string, int, string, error) {
	i := strings.LastIndex(spec, ":")
	if i < 0 {
		return "", 0, "", fmt.Errorf("exercise %q: want NAME:SETSxREPS, e.g. \"Bench Press:3x8-12\"", spec)
	}

	name := strings.TrimSpace(spec[:i])
	plan := strings.TrimSpace(spec[i+1:])
	j := strings.Index(plan, "x")
	if name == "" || j < 0 {
		return "", 0, "", fmt.Errorf("exercise %q: want NAME:SETSxREPS, e.g. \"Bench Press:3x8-12\"", spec)
	}

	sets, err := strconv.Atoi(strings.TrimSpace(plan[:j]))
	if err != nil || sets < 1 {
		return "", 0, "", fmt.Errorf("exercise %q: invalid set count %q", spec, plan[:j])
	}

	reps := strings.TrimSpace(plan[j+1:])
	if reps == "" {
		return "", 0, "", fmt.Errorf("exercise %q: missing target reps", spec)
	}

	return name, sets, reps, nil
}

// exerciseSummary renders a template's plan as one line, e.g.
// "Bench Press 3x8-12, Overhead Press 2x6-8".
func exerciseSummary(t *models.WorkoutTemplate) string {
	parts := make([]string, 0, len(t.Exercises))
	for _, ex := range t.Exercises {
		parts = append(parts, fmt.Sprintf("%s %dx%s", ex.Name, ex.TargetSets, ex.TargetReps))
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	templateAddCmd.Flags().StringArrayVarP(&templateExercises, "exercise", "e", nil, "exercise as NAME:SETSxREPS (repeatable)")
	templateExerciseCmd.Flags().StringArrayVarP(&templateExercises, "exercise", "e", nil, "exercise as NAME:SETSxREPS (repeatable)")
	templateExportCmd.Flags().StringVarP(&templateOutput, "output", "o", "", "output file (default: stdout)")

	templateCmd.AddCommand(templateAddCmd)
	templateCmd.AddCommand(templateExerciseCmd)
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateDeleteCmd)
	templateCmd.AddCommand(templateExportCmd)
	templateCmd.AddCommand(templateImportCmd)
	rootCmd.AddCommand(templateCmd)
}
