// ABOUTME: CLI commands for the exercise template catalogue.
// ABOUTME: Defaults are seeded once and cannot be deleted.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mlgx/liftlog/internal/models"
)

var templateGroup string

var templateCmd = &cobra.Command{
	Use:     "template",
	Aliases: []string{"tpl"},
	Short:   "Browse and manage the exercise catalogue",
}

var templateListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List templates, optionally by muscle group",
	RunE: func(cmd *cobra.Command, args []string) error {
		templates, err := store.ListTemplates(templateGroup)
		if err != nil {
			return fmt.Errorf("failed to list templates: %w", err)
		}
		if len(templates) == 0 {
			fmt.Println("No templates found.")
			return nil
		}
		faint := color.New(color.Faint)
		group := ""
		for _, t := range templates {
			if t.MuscleGroup != group {
				group = t.MuscleGroup
				fmt.Printf("%s\n", color.New(color.Bold).Sprint(group))
			}
			tag := ""
			if !t.IsDefault {
				tag = " (custom)"
			}
			fmt.Printf("  %s%s  %s\n", t.Name, tag, faint.Sprint(t.ID))
		}
		return nil
	},
}

var templateAddCmd = &cobra.Command{
	Use:   "add <name> <muscle-group>",
	Short: "Add a custom template",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t := models.NewExerciseTemplate(args[0], args[1])
		if err := store.CreateTemplate(t); err != nil {
			return fmt.Errorf("failed to create template: %w", err)
		}
		color.Green("✓ Added template %q", t.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(t.ID))
		return nil
	},
}

var templateRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a custom template",
	Long: `Delete a custom template by id.

Default catalogue templates cannot be deleted; asking to is a no-op.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := store.DeleteTemplate(id); err != nil {
			return fmt.Errorf("failed to delete template: %w", err)
		}
		color.Yellow("✗ Deleted template (if it was custom)")
		return nil
	},
}

func init() {
	templateListCmd.Flags().StringVar(&templateGroup, "group", "", "filter by muscle group")
	templateCmd.AddCommand(templateListCmd, templateAddCmd, templateRmCmd)
	rootCmd.AddCommand(templateCmd)
}
