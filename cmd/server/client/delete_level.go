package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/levels/v1alpha1"
)

var deleteLevelCmd = &cobra.Command{
	Use:   "delete-level [level-id]",
	Short: "Forget a recorded level",
	Args:  cobra.ExactArgs(1),
	RunE:  deleteLevel,
}

func deleteLevel(cmd *cobra.Command, args []string) error {
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

	resp, err := client.DeleteLevel(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to delete level: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s: %t\n", args[0], resp.GetFields()[v1alpha1.FieldDeleted].GetBoolValue())
	return nil
}
