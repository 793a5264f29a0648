package client

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-dungeon/internal/handlers/levels/v1alpha1"
)

func pointString(v *structpb.Value) string {
	fields := v.GetStructValue().GetFields()
	return fmt.Sprintf("(%d,%d)", int(fields["x"].GetNumberValue()), int(fields["y"].GetNumberValue()))
}

// printLevel writes the rendered map followed by its metadata
func printLevel(w io.Writer, resp *structpb.Struct) {
	fields := resp.GetFields()

	for _, row := range v1alpha1.Rows(resp) {
		fmt.Fprintln(w, row)
	}

	fmt.Fprintf(w, "\nLevel ID: %s\n", fields[v1alpha1.FieldID].GetStringValue())
	fmt.Fprintf(w, "  Seed: %s\n", fields[v1alpha1.FieldSeed].GetStringValue())
	fmt.Fprintf(w, "  Architect: %s\n", fields[v1alpha1.FieldArchitect].GetStringValue())
	fmt.Fprintf(w, "  Theme: %s\n", fields[v1alpha1.FieldTheme].GetStringValue())
	fmt.Fprintf(w, "  Player start: %s\n", pointString(fields[v1alpha1.FieldPlayerStart]))
	fmt.Fprintf(w, "  Exit: %s\n", pointString(fields[v1alpha1.FieldExit]))
	fmt.Fprintf(w, "  Spawns: %d\n", len(fields[v1alpha1.FieldSpawnPoints].GetListValue().GetValues()))
	fmt.Fprintf(w, "  Attempts: %d\n", int(fields[v1alpha1.FieldAttempts].GetNumberValue()))
	if expires := fields[v1alpha1.FieldExpiresAt].GetStringValue(); expires != "" {
		fmt.Fprintf(w, "  Record expires at: %s\n", expires)
	}
}
