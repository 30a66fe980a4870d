package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/EKINSOL-DEV/crewhub/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show shell status",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	running, info, err := config.IsShellRunning()
	if err != nil {
		return fmt.Errorf("failed to check shell status: %w", err)
	}

	if !running || info == nil {
		printNotRunningHint()
		return nil
	}

	uptime := time.Since(info.StartedAt).Truncate(time.Second)

	fmt.Println(styleBrand.Render("CrewHub shell is running."))
	fmt.Printf("  %s %s\n", styleLabel.Render("Version: "), styleValue.Render(info.AppVersion))
	fmt.Printf("  %s %s\n", styleLabel.Render("Host:    "), styleValue.Render(info.Host))
	fmt.Printf("  %s %s\n", styleLabel.Render("Port:    "), styleValue.Render(fmt.Sprintf("%d", info.Port)))
	fmt.Printf("  %s %s\n", styleLabel.Render("PID:     "), styleValue.Render(fmt.Sprintf("%d", info.PID)))
	fmt.Printf("  %s %s\n", styleLabel.Render("Uptime:  "), styleValue.Render(uptime.String()))

	// The info file can outlive a wedged process, so confirm over HTTP.
	c, err := dialShell()
	if err != nil {
		fmt.Println(styleWarning.Render("\nControl API did not answer."))
		return nil
	}

	var health struct {
		Status string `json:"status"`
		Uptime string `json:"uptime"`
	}
	if err := c.get("/api/health", &health); err != nil {
		fmt.Println(styleWarning.Render("\nControl API did not answer."))
		return nil
	}

	fmt.Printf("  %s %s\n", styleLabel.Render("Control: "), styleSuccess.Render(health.Status))
	return nil
}
