package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var quitCmd = &cobra.Command{
	Use:     "quit",
	Aliases: []string{"stop"},
	Short:   "Shut down the running shell",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := dialShell()
		if err != nil {
			if errors.Is(err, errShellNotRunning) {
				fmt.Println("CrewHub shell is not running.")
				return nil
			}
			return err
		}

		if err := c.post("/api/quit", nil); err != nil {
			return err
		}
		fmt.Println(styleSuccess.Render("Shutdown requested."))
		return nil
	},
}
