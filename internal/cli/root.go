// Package cli contains the cobra command definition for the patients
// distribution tool.
package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bluezephyr/patients/internal/ports/primary"
	"github.com/bluezephyr/patients/internal/version"
	"github.com/bluezephyr/patients/internal/wire"
)

// RootCmd builds the root command. The tool is single-purpose so the root
// command runs the whole pipeline itself: load, validate, distribute twice,
// verify, write.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "patients [patients.csv] [doctors.txt] [output.csv]",
		Short:   "Distribute patients on doctors randomly, twice",
		Version: version.String(),
		Long: `Distributes a number of patients on a set of doctors randomly. The patients
are distributed twice: first evenly (as good as possible) in uniformly random
order, then a second time so that each patient is placed on a new doctor.
The output file is the patient file with two added doctor columns.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, _ := cmd.Flags().GetInt64("seed")
			auditPath, _ := cmd.Flags().GetString("audit-db")
			quiet, _ := cmd.Flags().GetBool("quiet")
			seeded := cmd.Flags().Changed("seed")

			svc, cleanup, err := wire.AssignmentService(args[0], args[1], args[2], auditPath)
			if err != nil {
				return err
			}
			defer cleanup()

			if seeded && !quiet {
				fmt.Printf("Seed provided (%d)\n", seed)
			}

			resp, err := svc.Distribute(context.Background(), primary.DistributeRequest{
				Seed:   seed,
				Seeded: seeded,
			})
			if err != nil {
				return err
			}

			if !quiet {
				renderReport(resp)
			}
			return nil
		},
	}

	cmd.Flags().Int64P("seed", "s", 0, "seed for the random generator")
	cmd.Flags().String("audit-db", "", "sqlite file to export the completed run into")
	cmd.Flags().BoolP("quiet", "q", false, "suppress the per-doctor report")
	return cmd
}

// renderReport prints the per-doctor counts for both rounds and their
// totals.
func renderReport(resp *primary.DistributeResponse) {
	for _, name := range resp.DoctorNames {
		fmt.Println(name)
	}
	fmt.Printf("Number of doctors: %d\n", len(resp.DoctorNames))
	fmt.Printf("Number of patients: %d (unique: %d)\n\n", resp.Patients, resp.UniquePatients)

	bold := color.New(color.Bold)
	bold.Printf("%-24s %8s %8s\n", "Doctor", "Round 1", "Round 2")
	for _, c := range resp.Counts {
		fmt.Printf("%-24s %8d %8d\n", c.Name, c.First, c.Second)
	}
	bold.Printf("%-24s %8d %8d\n", "Distributed", resp.TotalFirst, resp.TotalSecond)

	fmt.Printf("\nFinished in %.3f seconds\n", resp.Elapsed.Seconds())
}
