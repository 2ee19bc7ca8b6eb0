package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jhalloway/tripflow/internal/cli"
	"github.com/jhalloway/tripflow/internal/common"
)

func tripsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trips",
		Short: "Browse saved trip plans",
	}

	cmd.AddCommand(tripsListCmd())
	cmd.AddCommand(tripsShowCmd())

	return cmd
}

func tripsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved trip plans, newest first",
		RunE:  runTripsList,
	}

	cmd.Flags().IntP("limit", "n", 20, "Maximum number of plans to show")
	_ = viper.BindPFlag("trips.limit", cmd.Flags().Lookup("limit"))

	return cmd
}

func tripsShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved trip plan",
		Args:  cobra.ExactArgs(1),
		RunE:  runTripsShow,
	}

	cmd.Flags().String("format", "pretty", "Output format (pretty, json)")
	_ = viper.BindPFlag("trips.format", cmd.Flags().Lookup("format"))

	return cmd
}

func runTripsList(cmd *cobra.Command, _ []string) error {
	store, err := openStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	records, err := store.ListTrips(cmd.Context(), viper.GetInt("trips.limit"))
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No saved trips. Run 'tripflow plan --save' to save one.")
		return nil
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TRIP ID\tTYPE\tSTRATEGY\tDAYS\tBUDGET\tCOST\tSCORE\tSAVED")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t$%s\t$%s\t%.1f\t%s\n",
			r.TripID,
			r.TripType,
			r.Strategy,
			r.DurationDays,
			r.TotalBudget,
			r.TotalCost,
			r.OptimizationScore,
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to format trip list: %w", err)
	}

	fmt.Println(cli.RenderBox(fmt.Sprintf("Saved Trips (%d)", len(records)), strings.TrimRight(sb.String(), "\n")))
	return nil
}

func runTripsShow(cmd *cobra.Command, args []string) error {
	store, err := openStorage(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	record, err := store.GetTrip(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	itinerary, err := record.Itinerary()
	if err != nil {
		common.LogError(err, "Stored itinerary is unreadable", common.Fields{"id": record.ID})
		return err
	}

	switch viper.GetString("trips.format") {
	case "json":
		encoded, err := json.MarshalIndent(itinerary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode itinerary: %w", err)
		}
		fmt.Println(string(encoded))
	default:
		fmt.Println(cli.RenderItinerary(itinerary))
	}

	return nil
}
