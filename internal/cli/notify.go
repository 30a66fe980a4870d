package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var notifyCmd = &cobra.Command{
	Use:   "notify <title> [message]",
	Short: "Send an OS notification through the shell",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
		message := strings.Join(args[1:], " ")

		c, err := dialShell()
		if err != nil {
			if errors.Is(err, errShellNotRunning) {
				printNotRunningHint()
				return nil
			}
			return err
		}

		payload := map[string]string{"title": title, "message": message}
		if err := c.post("/api/notify", payload); err != nil {
			return err
		}
		fmt.Println(styleSuccess.Render("Notification sent."))
		return nil
	},
}
