package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mythosquest/mission-engine/internal/entities/mission"
	scenarioservice "github.com/mythosquest/mission-engine/internal/services/scenario"
)

var applyFixes bool

var validateCmd = &cobra.Command{
	Use:   "validate <scenario.json>",
	Short: "Run the winnability validator on a scenario file",
	Long:  `Validate reads a scenario from a JSON file, runs the full winnability analysis, and prints every issue. With --fix it also runs the auto-fixer and prints the repaired scenario.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&applyFixes, "fix", false, "apply auto-fixes and print the repaired scenario")
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read scenario file: %w", err)
	}
	var s mission.Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to parse scenario: %w", err)
	}

	o, err := buildOrchestrator(false)
	if err != nil {
		return err
	}
	ctx := context.Background()

	out, err := o.ValidateScenario(ctx, &scenarioservice.ValidateScenarioInput{Scenario: &s})
	if err != nil {
		return err
	}

	fmt.Println(out.Summary)
	for _, issue := range out.Result.Issues {
		fmt.Printf("  [%s] %s: %s\n", issue.Severity, issue.Code, issue.Message)
	}
	fmt.Printf("confidence=%d estimated_rounds=%d doom_budget=%.1f\n",
		out.Result.Confidence,
		out.Result.Analysis.EstimatedMinRounds,
		out.Result.Analysis.EffectiveDoomBudget)

	if !applyFixes {
		return nil
	}

	fixed, err := o.AutoFix(ctx, &scenarioservice.AutoFixInput{Scenario: &s})
	if err != nil {
		return err
	}
	if len(fixed.Changes) == 0 {
		fmt.Println("no fixes needed")
		return nil
	}
	for _, change := range fixed.Changes {
		fmt.Printf("  fix: %s\n", change)
	}
	return printJSON(fixed.Fixed)
}
