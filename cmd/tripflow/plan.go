package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jhalloway/tripflow/internal/cli"
	"github.com/jhalloway/tripflow/internal/common"
	"github.com/jhalloway/tripflow/internal/config"
	"github.com/jhalloway/tripflow/internal/engine"
	"github.com/jhalloway/tripflow/internal/model"
	"github.com/jhalloway/tripflow/internal/storage"
)

func planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a trip from a structured request",
		Long: `Run the optimization pipeline on a JSON trip request and print the
resulting budget allocation and itinerary.

The request file holds a single trip request; constraints are an optional
JSON array of category bounds.`,
		RunE: runPlan,
	}

	// Flags
	cmd.Flags().StringP("request", "r", "", "Path to the trip request JSON file (required)")
	cmd.Flags().StringP("constraints", "c", "", "Path to a JSON file with budget constraints")
	cmd.Flags().StringP("strategy", "s", string(model.StrategyMaximizeValue), "Optimization strategy")
	cmd.Flags().String("budget", "", "Override the request's total budget")
	cmd.Flags().Bool("save", false, "Save the plan to the trip history database")
	cmd.Flags().String("format", "pretty", "Output format (pretty, json)")
	_ = cmd.MarkFlagRequired("request")

	// Bind to viper
	_ = viper.BindPFlag("plan.strategy", cmd.Flags().Lookup("strategy"))
	_ = viper.BindPFlag("plan.save", cmd.Flags().Lookup("save"))
	_ = viper.BindPFlag("plan.format", cmd.Flags().Lookup("format"))

	return cmd
}

func runPlan(cmd *cobra.Command, _ []string) error {
	requestPath, _ := cmd.Flags().GetString("request")
	constraintsPath, _ := cmd.Flags().GetString("constraints")

	req, err := readRequest(requestPath)
	if err != nil {
		return err
	}

	if override, _ := cmd.Flags().GetString("budget"); override != "" {
		budget, err := decimal.NewFromString(override)
		if err != nil {
			return fmt.Errorf("%w: %q", common.ErrInvalidDecimal, override)
		}
		req.Budget = budget
	}

	constraints, err := readConstraints(constraintsPath)
	if err != nil {
		return err
	}

	strategy, err := model.ParseStrategy(viper.GetString("plan.strategy"))
	if err != nil {
		return err
	}

	tables, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("failed to load cost tables: %w", err)
	}

	itinerary, err := engine.New(tables).Plan(cmd.Context(), req, constraints, strategy)
	if err != nil {
		if common.IsValidation(err) {
			return common.NewUserError("trip request cannot be planned", err)
		}
		return err
	}

	if viper.GetBool("plan.save") {
		store, err := openStorage(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		id, err := store.SaveItinerary(cmd.Context(), req, strategy, itinerary)
		if err != nil {
			return err
		}
		common.LogInfo("Plan saved", common.Fields{"record_id": id, "trip_id": itinerary.TripID})
	}

	switch viper.GetString("plan.format") {
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

func readRequest(path string) (*model.TripRequest, error) {
	data, err := os.ReadFile(filepath.Clean(path)) // #nosec G304 -- user-supplied input file
	if err != nil {
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}

	var req model.TripRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request file: %w", err)
	}
	return &req, nil
}

func readConstraints(path string) ([]model.BudgetConstraint, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(filepath.Clean(path)) // #nosec G304 -- user-supplied input file
	if err != nil {
		return nil, fmt.Errorf("failed to read constraints file: %w", err)
	}

	var constraints []model.BudgetConstraint
	if err := json.Unmarshal(data, &constraints); err != nil {
		return nil, fmt.Errorf("failed to parse constraints file: %w", err)
	}
	return constraints, nil
}

func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".local", "share", "tripflow", "tripflow.db")
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}
