package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/levels/v1alpha1"
)

var getLevelCmd = &cobra.Command{
	Use:   "get-level [level-id]",
	Short: "Regenerate a recorded level",
	Args:  cobra.ExactArgs(1),
	RunE:  getLevel,
}

func getLevel(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createLevelClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := structpb.NewStruct(map[string]any{v1alpha1.FieldLevelID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.GetLevel(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to get level: %w", err)
	}

	printLevel(cmd.OutOrStdout(), resp)
	return nil
}
