// Package main is the entry point for the dungeon level service
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dungeon/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-dungeon",
	Short: "Dungeon level generation service",
	Long:  `rpg-dungeon generates playable dungeon levels and serves them over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
