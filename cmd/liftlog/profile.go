// ABOUTME: CLI commands for the user profile and body measurements.
// ABOUTME: The profile behaves as a singleton; the newest row wins.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mlgx/liftlog/internal/models"
	"github.com/mlgx/liftlog/internal/storage"
)

var (
	profileFirst  string
	profileLast   string
	profileAvatar string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the user profile and measurements",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile and its measurements",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := store.GetProfile()
		if err != nil {
			if storage.IsNotFound(err) {
				fmt.Println("No profile yet. Create one with 'liftlog profile set'.")
				return nil
			}
			return fmt.Errorf("failed to load profile: %w", err)
		}

		fmt.Printf("%s %s\n", p.FirstName, p.LastName)
		if p.LastWorkout != nil {
			fmt.Printf("last workout: %s\n", *p.LastWorkout)
		}

		measurements, err := store.GetMeasurementsByProfileID(p.ID)
		if err != nil {
			return fmt.Errorf("failed to load measurements: %w", err)
		}
		if len(measurements) > 0 {
			faint := color.New(color.Faint)
			fmt.Println("\nMeasurements:")
			for _, m := range measurements {
				fmt.Printf("  %s  %.1f %s  %s\n", m.Label, m.Value, m.Unit,
					faint.Sprint(m.CreatedAt.Format("2006-01-02")))
			}
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update the profile",
	Long: `Create the profile, or update the given fields of the existing one.
Only flags you pass change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := store.GetProfile()
		if err != nil {
			if !storage.IsNotFound(err) {
				return fmt.Errorf("failed to load profile: %w", err)
			}
			// First run: create it.
			created := models.NewProfile(profileFirst, profileLast)
			if profileAvatar != "" {
				created.WithAvatar(profileAvatar)
			}
			if err := store.CreateProfile(created); err != nil {
				return fmt.Errorf("failed to create profile: %w", err)
			}
			color.Green("✓ Created profile")
			return nil
		}

		var upd storage.ProfileUpdate
		if cmd.Flags().Changed("first") {
			upd.FirstName = &profileFirst
		}
		if cmd.Flags().Changed("last") {
			upd.LastName = &profileLast
		}
		if cmd.Flags().Changed("avatar") {
			upd.Avatar = &profileAvatar
		}
		if err := store.UpdateProfile(p.ID, upd); err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}
		color.Green("✓ Updated profile")
		return nil
	},
}

var profileMeasureCmd = &cobra.Command{
	Use:   "measure <label> <value> <unit>",
	Short: "Record a body measurement",
	Long: `Record a body measurement, e.g.:

  liftlog profile measure Poids 82.5 kg
  liftlog profile measure "Tour de bras" 38 cm

Labels are free text and may repeat; every entry is kept.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := store.GetProfile()
		if err != nil {
			return fmt.Errorf("create a profile first: %w", err)
		}
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[1])
		}
		m := models.NewMeasurement(p.ID, args[0], value, args[2])
		if err := store.CreateMeasurement(m); err != nil {
			return fmt.Errorf("failed to record measurement: %w", err)
		}
		color.Green("✓ Recorded %s: %.1f %s", m.Label, m.Value, m.Unit)
		return nil
	},
}

var profileRmMeasureCmd = &cobra.Command{
	Use:   "rm-measure <id>",
	Short: "Delete a measurement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := store.DeleteMeasurement(id); err != nil {
			return fmt.Errorf("failed to delete measurement: %w", err)
		}
		color.Yellow("✗ Deleted measurement")
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileFirst, "first", "", "first name")
	profileSetCmd.Flags().StringVar(&profileLast, "last", "", "last name")
	profileSetCmd.Flags().StringVar(&profileAvatar, "avatar", "", "avatar reference")

	profileCmd.AddCommand(profileShowCmd, profileSetCmd, profileMeasureCmd, profileRmMeasureCmd)
	rootCmd.AddCommand(profileCmd)
}
