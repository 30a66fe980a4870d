package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var badgeCmd = &cobra.Command{
	Use:   "badge <count>",
	Short: "Set the tray badge unread count",
	Long: `Set the unread count rendered on the tray icon.

Zero clears the badge; three and above share one icon. The tooltip
always carries the exact count.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("badge count must be a number, got %q", args[0])
		}
		if count < 0 {
			return fmt.Errorf("badge count must be non-negative, got %d", count)
		}

		c, err := dialShell()
		if err != nil {
			if errors.Is(err, errShellNotRunning) {
				printNotRunningHint()
				return nil
			}
			return err
		}

		if err := c.post("/api/tray/badge", map[string]int{"count": count}); err != nil {
			return err
		}

		if count == 0 {
			fmt.Println(styleSuccess.Render("Badge cleared."))
		} else {
			fmt.Println(styleSuccess.Render(fmt.Sprintf("Badge set to %d.", count)))
		}
		return nil
	},
}
