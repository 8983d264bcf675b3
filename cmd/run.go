package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kaptenjon/mathquest/internal/app"
)

// runApp opens the runtime and launches the TUI.
func runApp(cmd *cobra.Command) error {
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	return app.Run(app.Options{
		Deps:         rt.deps(),
		NeedsProfile: !rt.hasProfile,
	})
}
