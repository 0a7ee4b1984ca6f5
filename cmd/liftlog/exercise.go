// ABOUTME: CLI commands for exercises within a session.
// ABOUTME: Includes copy-instantiation from catalogue templates.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mlgx/liftlog/internal/models"
	"github.com/mlgx/liftlog/internal/storage"
)

var (
	exerciseMuscle string
	exerciseDesc   string
	exerciseImage  string
	exerciseName   string
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Manage exercises within a session",
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <session-id> <name>",
	Short: "Add an exercise to a session",
	Long: `Add an exercise to a session.

The muscle group decides how the exercise is measured: Cardio and Autres
are time-based, everything else is weight and reps.

EXAMPLES:

  liftlog exercise add <session-id> "Développé couché" --muscle Pectoraux
  liftlog exercise add <session-id> "Rameur" --muscle Cardio`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, err := parseID(args[0])
		if err != nil {
			return err
		}
		e := models.NewExercise(sessionID, args[1])
		if exerciseMuscle != "" {
			e.WithMuscleGroup(exerciseMuscle)
		}
		if exerciseDesc != "" {
			e.WithDescription(exerciseDesc)
		}
		if exerciseImage != "" {
			e.WithImageURL(exerciseImage)
		}
		if err := store.CreateExercise(e); err != nil {
			return fmt.Errorf("failed to create exercise: %w", err)
		}
		color.Green("✓ Added exercise %q (%s)", e.Name, e.Type)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(e.ID))
		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list <session-id>",
	Aliases: []string{"ls"},
	Short:   "List a session's exercises in manual order",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID, err := parseID(args[0])
		if err != nil {
			return err
		}
		exercises, err := store.GetExercisesBySessionID(sessionID)
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}
		if len(exercises) == 0 {
			fmt.Println("No exercises yet.")
			return nil
		}
		faint := color.New(color.Faint)
		for _, e := range exercises {
			group := ""
			if e.MuscleGroup != nil {
				group = " [" + *e.MuscleGroup + "]"
			}
			fmt.Printf("%d  %s%s  %s\n", e.Order, e.Name, group, faint.Sprint(e.ID))
		}
		return nil
	},
}

var exerciseSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Update an exercise's fields",
	Long: `Update an exercise by id. Only the given flags change; order and
session never do. Changing --muscle rederives type and category.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		var upd storage.ExerciseUpdate
		if cmd.Flags().Changed("name") {
			upd.Name = &exerciseName
		}
		if cmd.Flags().Changed("muscle") {
			upd.MuscleGroup = &exerciseMuscle
		}
		if cmd.Flags().Changed("desc") {
			upd.Description = &exerciseDesc
		}
		if cmd.Flags().Changed("image") {
			upd.ImageURL = &exerciseImage
		}

		if err := store.UpdateExercise(id, upd); err != nil {
			return fmt.Errorf("failed to update exercise: %w", err)
		}
		color.Green("✓ Updated exercise")
		return nil
	},
}

var exerciseRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete an exercise and its logs",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := store.DeleteExercise(id); err != nil {
			return fmt.Errorf("failed to delete exercise: %w", err)
		}
		color.Yellow("✗ Deleted exercise")
		return nil
	},
}

var exerciseReorderCmd = &cobra.Command{
	Use:   "reorder <id>...",
	Short: "Reorder one session's exercises",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		if err := store.ReorderExercises(ids); err != nil {
			return fmt.Errorf("failed to reorder exercises: %w", err)
		}
		color.Green("✓ Reordered %d exercises", len(ids))
		return nil
	},
}

var exerciseFromTemplateCmd = &cobra.Command{
	Use:   "from-template <template-id> <session-id>",
	Short: "Instantiate a catalogue template as an exercise",
	Long: `Copy a template's fields into a new exercise under the session.

The copy is by value: later edits to the exercise or the template are
independent of each other.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		templateID, err := parseID(args[0])
		if err != nil {
			return err
		}
		sessionID, err := parseID(args[1])
		if err != nil {
			return err
		}
		e, err := store.CreateExerciseFromTemplate(templateID, sessionID)
		if err != nil {
			return fmt.Errorf("failed to instantiate template: %w", err)
		}
		color.Green("✓ Added exercise %q from template", e.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(e.ID))
		return nil
	},
}

func init() {
	exerciseAddCmd.Flags().StringVar(&exerciseMuscle, "muscle", "", "muscle group")
	exerciseAddCmd.Flags().StringVar(&exerciseDesc, "desc", "", "description")
	exerciseAddCmd.Flags().StringVar(&exerciseImage, "image", "", "illustration URL")

	exerciseSetCmd.Flags().StringVar(&exerciseName, "name", "", "new name")
	exerciseSetCmd.Flags().StringVar(&exerciseMuscle, "muscle", "", "new muscle group")
	exerciseSetCmd.Flags().StringVar(&exerciseDesc, "desc", "", "new description")
	exerciseSetCmd.Flags().StringVar(&exerciseImage, "image", "", "new illustration URL")

	exerciseCmd.AddCommand(exerciseAddCmd, exerciseListCmd, exerciseSetCmd,
		exerciseRmCmd, exerciseReorderCmd, exerciseFromTemplateCmd)
	rootCmd.AddCommand(exerciseCmd)
}
