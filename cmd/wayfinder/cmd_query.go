package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	asJSON  bool
	maxHops int
)

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List every location in load order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newService(cmd.Context())
		if err != nil {
			return err
		}
		locs := svc.Locations()
		if asJSON {
			return writeJSON(cmd.OutOrStdout(), locs)
		}
		for _, l := range locs {
			fmt.Fprintln(cmd.OutOrStdout(), l)
		}

		return nil
	},
}

var pathCmd = &cobra.Command{
	Use:   "path START END",
	Short: "Print the fastest route between two locations",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd.Context())
		if err != nil {
			return err
		}
		r, err := svc.Route(args[0], args[1])
		if err != nil {
			return err
		}
		if asJSON {
			return writeJSON(cmd.OutOrStdout(), r)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "%d\t%s\t\n", 0, r.Path[0])
		for i, t := range r.Times {
			fmt.Fprintf(tw, "%d\t%s\t+%s\n", i+1, r.Path[i+1], formatSeconds(t))
		}
		fmt.Fprintf(tw, "\ttotal\t%s\n", formatSeconds(r.Cost))

		return tw.Flush()
	},
}

var furthestCmd = &cobra.Command{
	Use:   "furthest START",
	Short: "Print the location that takes longest to reach from START",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd.Context())
		if err != nil {
			return err
		}
		d, err := svc.Furthest(args[0])
		if err != nil {
			return err
		}
		if asJSON {
			return writeJSON(cmd.OutOrStdout(), d)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n%s\n", d.Location, formatSeconds(d.Cost), strings.Join(d.Path, " -> "))

		return nil
	},
}

var reachableCmd = &cobra.Command{
	Use:   "reachable START",
	Short: "List locations reachable from START by hop count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd.Context())
		if err != nil {
			return err
		}
		hops, err := svc.Reachable(cmd.Context(), args[0], maxHops)
		if err != nil {
			return err
		}
		if asJSON {
			return writeJSON(cmd.OutOrStdout(), hops)
		}
		for _, h := range hops {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", h.Hops, h.Location)
		}

		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{locationsCmd, pathCmd, furthestCmd, reachableCmd} {
		c.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	}
	reachableCmd.Flags().IntVar(&maxHops, "max-hops", 0, "hop limit (0 = unlimited)")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
