package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/mythosquest/mission-engine/internal/entities/mission"
	scenarioorch "github.com/mythosquest/mission-engine/internal/orchestrators/scenario"
	"github.com/mythosquest/mission-engine/internal/pkg/idgen"
	redisclient "github.com/mythosquest/mission-engine/internal/redis"
	scenariorepo "github.com/mythosquest/mission-engine/internal/repositories/scenario"
	scenarioservice "github.com/mythosquest/mission-engine/internal/services/scenario"
)

var (
	difficultyFlag string
	storeFlag      bool
	redisAddr      string
	poolCount      int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one validated scenario",
	Long:  `Generate runs the bounded generate-validate-repair loop and prints the winning scenario with its validation verdict.`,
	RunE:  runGenerate,
}

var poolCmd = &cobra.Command{
	Use:   "pool",
	Short: "Generate a diverse scenario pool",
	Long:  `Pool generates several scenarios biased toward mission and victory-type diversity, validating each.`,
	RunE:  runPool,
}

func init() {
	for _, cmd := range []*cobra.Command{generateCmd, poolCmd} {
		cmd.Flags().StringVarP(&difficultyFlag, "difficulty", "d", string(mission.DifficultyNormal),
			"difficulty: normal, hard, or nightmare")
	}
	generateCmd.Flags().BoolVar(&storeFlag, "store", false, "persist the validated scenario")
	generateCmd.Flags().StringVar(&redisAddr, "redis", "localhost:6379", "redis address for --store")
	poolCmd.Flags().IntVarP(&poolCount, "count", "n", 3, "number of scenarios")
}

func buildOrchestrator(withStore bool) (*scenarioorch.Orchestrator, error) {
	cfg := &scenarioorch.Config{
		Roller: dice.DefaultRoller,
		IDGen:  idgen.NewPrefixed("scen"),
	}

	if withStore {
		client, err := redisclient.NewClient(redisAddr, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		repo, err := scenariorepo.NewRedis(&scenariorepo.RedisConfig{Client: client})
		if err != nil {
			return nil, err
		}
		cfg.ScenarioRepo = repo
	}

	return scenarioorch.New(cfg)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	o, err := buildOrchestrator(storeFlag)
	if err != nil {
		return err
	}

	out, err := o.GenerateValidated(context.Background(), &scenarioservice.GenerateValidatedInput{
		Difficulty: mission.Difficulty(difficultyFlag),
		Store:      storeFlag,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s (attempt %d)\n\n", scenarioorch.ValidationSummary(out.Validation), out.Attempts)
	return printJSON(out.Scenario)
}

func runPool(cmd *cobra.Command, args []string) error {
	o, err := buildOrchestrator(false)
	if err != nil {
		return err
	}
	ctx := context.Background()

	out, err := o.GenerateScenarioPool(ctx, &scenarioservice.GenerateScenarioPoolInput{
		Difficulty: mission.Difficulty(difficultyFlag),
		Count:      poolCount,
	})
	if err != nil {
		return err
	}

	for _, s := range out.Scenarios {
		validated, err := o.ValidateScenario(ctx, &scenarioservice.ValidateScenarioInput{Scenario: s})
		if err != nil {
			return err
		}
		fmt.Printf("%-40s %-14s doom=%-3d %s\n",
			s.Title, s.MissionID, s.StartDoom, scenarioorch.ValidationSummary(validated.Result))
	}
	return nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
