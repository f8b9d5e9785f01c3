package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/visl/parking-test/pkg/cli"
	"github.com/visl/parking-test/pkg/config"
	"github.com/visl/parking-test/pkg/parking"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the configured grid as a diagram",
	Long: `Build the parking grid described by the configuration file and print its
two-dimensional diagram. Lanes alternate direction, reflecting vehicles
making a U-turn at the end of each lane.

Markers: '=' pedestrian exit, '@' free disabled bay, 'U' free general bay.

Examples:
  parkctl render --config config.yaml`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return cli.NewCommandError("render", err)
	}

	grid, err := buildGrid(cfg.Parking)
	if err != nil {
		return cli.NewCommandError("render", err)
	}

	fmt.Print(parking.NewRenderer(grid).Render())
	return nil
}

// buildGrid assembles a grid from the parking section of the
// configuration.
func buildGrid(layout config.ParkingConfig) (*parking.Grid, error) {
	builder := parking.NewBuilder().WithSquareSize(layout.LaneSize)
	for _, i := range layout.PedestrianExits {
		builder.WithPedestrianExit(i)
	}
	for _, i := range layout.DisabledBays {
		builder.WithDisabledBay(i)
	}
	return builder.Build()
}
