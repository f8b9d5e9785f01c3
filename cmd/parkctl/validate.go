package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/visl/parking-test/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Check that a configuration file parses, that server and logging settings
are sane, and that the parking layout describes a buildable grid (indices
in range, exits and disabled bays disjoint).

All problems are reported together, not one at a time.

Examples:
  parkctl validate --config config.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		var vErr config.ValidationError
		if errors.As(err, &vErr) {
			fmt.Printf("✗ %s invalid\n\n", cfgFile)
			for _, fe := range vErr.Errors {
				fmt.Printf("  - %s\n", fe.Error())
			}
			return fmt.Errorf("%d validation error(s)", len(vErr.Errors))
		}
		return err
	}

	fmt.Printf("✓ %s valid\n", cfgFile)
	fmt.Printf("  lane size %d (%d bays), %d pedestrian exit(s), %d disabled bay(s)\n",
		cfg.Parking.LaneSize,
		cfg.Parking.LaneSize*cfg.Parking.LaneSize,
		len(cfg.Parking.PedestrianExits),
		len(cfg.Parking.DisabledBays),
	)
	return nil
}
