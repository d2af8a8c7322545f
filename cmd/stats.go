package cmd

import (
	"fmt"

	"github.com/abhisek/cognitrain/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your profile and training statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		snap, err := st.SnapshotRepo().Latest(cmd.Context())
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if snap == nil || snap.Data.Profile == nil {
			fmt.Println("No profile yet. Run 'cognitrain' to get started.")
			return nil
		}

		d := snap.Data
		fmt.Printf("Profile: %s\n", d.Profile.Name)

		if a := d.Assessment; a != nil {
			fmt.Println("\nCognitive profile (0-100):")
			fmt.Printf("  Memory (Numbers)  %5.1f\n", a.MemoryNumbers)
			fmt.Printf("  Memory (Words)    %5.1f\n", a.MemoryWords)
			fmt.Printf("  Speed             %5.1f\n", a.Speed)
			fmt.Printf("  Logic             %5.1f\n", a.Logic)
			fmt.Printf("  Working Memory    %5.1f\n", a.WorkingMemory)
			if a.Narrative != "" {
				fmt.Printf("\n%s\n", a.Narrative)
			}
		}

		if s := d.Stats; s != nil {
			fmt.Println("\nTraining:")
			fmt.Printf("  Games played    %d\n", s.GamesPlayed)
			fmt.Printf("  Current streak  %d\n", s.CurrentStreak)
			if s.LastPlayed != "" {
				fmt.Printf("  Last played     %s\n", s.LastPlayed)
			}
		}
		return nil
	},
}
