package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EKINSOL-DEV/crewhub/internal/shell"
)

var openCmd = &cobra.Command{
	Use:   "open <chat|world|zen|settings>",
	Short: "Open or focus a shell window",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, ok := shell.ParseWindowName(args[0])
		if !ok {
			return fmt.Errorf("unknown window %q (valid: chat, world, zen, settings)", args[0])
		}
		return openWindow(string(name))
	},
}

var zenCmd = &cobra.Command{
	Use:   "zen",
	Short: "Open or focus the zen mode window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := dialShell()
		if err != nil {
			if errors.Is(err, errShellNotRunning) {
				printNotRunningHint()
				return nil
			}
			return err
		}

		if err := c.post("/api/windows/zen", nil); err != nil {
			return err
		}
		fmt.Println(styleSuccess.Render("Zen mode opened."))
		return nil
	},
}

func openWindow(name string) error {
	c, err := dialShell()
	if err != nil {
		if errors.Is(err, errShellNotRunning) {
			printNotRunningHint()
			return nil
		}
		return err
	}

	if err := c.post("/api/windows/open", map[string]string{"name": name}); err != nil {
		return err
	}
	fmt.Println(styleSuccess.Render(fmt.Sprintf("Window %s opened.", name)))
	return nil
}
