package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/levels/v1alpha1"
)

var (
	levelSeed      string
	levelArchitect string
)

var generateLevelCmd = &cobra.Command{
	Use:   "generate-level",
	Short: "Generate a level on the server",
	Long: `Generate a level on the server and print it. Examples:

  generate-level
  generate-level --seed 42 --architect rooms`,
	Args: cobra.NoArgs,
	RunE: generateLevel,
}

func init() {
	generateLevelCmd.Flags().StringVar(&levelSeed, "seed", "", "Random seed (empty lets the server pick)")
	generateLevelCmd.Flags().StringVar(&levelArchitect, "architect", "", "Architect: drunkard, rooms, cellular or random")
}

func generateLevel(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createLevelClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := structpb.NewStruct(map[string]any{
		v1alpha1.FieldSeed:      levelSeed,
		v1alpha1.FieldArchitect: levelArchitect,
	})
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.GenerateLevel(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to generate level: %w", err)
	}

	printLevel(cmd.OutOrStdout(), resp)
	return nil
}
