package cli

import (
	"errors"
	"fmt"
	"strconv"

	"geohash-api/internal/geohash"
	"geohash-api/internal/service"

	"github.com/spf13/cobra"
)

func newEncodeCmd(svc *service.GeohashService) *cobra.Command {
	var (
		lat, lon  float64
		precision int
	)

	cmd := &cobra.Command{
		Use:   "encode --lat <lat> --lon <lon> --precision <n>",
		Short: "Encode a coordinate into a geohash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lon") {
				return errors.New("--lat and --lon flags are required")
			}
			if !cmd.Flags().Changed("precision") {
				return errors.New("precision is required")
			}

			cell, err := svc.Encode(cmd.Context(), lat, lon, precision)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cell.Geohash)
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude in degrees (-90 to 90)")
	cmd.Flags().Float64Var(&lon, "lon", 0, "Longitude in degrees (-180 to 180)")
	cmd.Flags().IntVarP(&precision, "precision", "p", 0,
		fmt.Sprintf("Geohash length (%d-%d)", geohash.MinPrecision, geohash.MaxPrecision))

	return cmd
}

func newDecodeCmd(svc *service.GeohashService) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hash>",
		Short: "Decode a geohash to the center of its cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cell, err := svc.Decode(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s ±%s ±%s\n",
				formatDegrees(cell.Center.Latitude),
				formatDegrees(cell.Center.Longitude),
				formatDegrees(cell.LatitudeError),
				formatDegrees(cell.LongitudeError))
			return nil
		},
	}
}

func newAdjacentCmd(svc *service.GeohashService) *cobra.Command {
	return &cobra.Command{
		Use:   "adjacent <hash> <n|e|s|w>",
		Short: "Print the neighbouring geohash in one direction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cell, err := svc.Adjacent(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cell.Geohash)
			return nil
		},
	}
}

func newNeighboursCmd(svc *service.GeohashService) *cobra.Command {
	return &cobra.Command{
		Use:     "neighbours <hash>",
		Aliases: []string{"neighbors"},
		Short:   "Print the eight geohashes surrounding a cell",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := svc.Neighbours(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			for _, d := range geohash.Directions {
				fmt.Fprintf(cmd.OutOrStdout(), "%-2s %s\n", d, n.Neighbours.Get(d))
			}
			return nil
		},
	}
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
