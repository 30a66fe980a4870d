package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/EKINSOL-DEV/crewhub/internal/config"
	"github.com/EKINSOL-DEV/crewhub/internal/models"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Show or edit shell settings",
	Long: `Show or edit the shell settings in ~/.crewhub/settings.yaml.

The running shell watches this file and applies changes without a
restart. Editable keys:

  backend-url      Backend base URL ("" = env VITE_API_URL, then default)
  dev-server-url   Dev content server base URL
  control-port     Loopback control API port (takes effect on restart)
  notifications    OS notifications on/off (true|false)
  update-check     Check for updates at startup (true|false)
  log-level        debug | info | warn | error`,
	RunE: runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one settings key",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	path, err := config.GlobalSettingsFile()
	if err != nil {
		return err
	}

	fmt.Println(styleBrand.Render("CrewHub settings"))
	fmt.Printf("  %s %s\n", styleLabel.Render("File:           "), styleHint.Render(path))
	fmt.Printf("  %s %s\n", styleLabel.Render("backend-url:    "), renderOrDefault(settings.Backend.URL, config.BackendURL(settings)))
	fmt.Printf("  %s %s\n", styleLabel.Render("dev-server-url: "), renderOrDefault(settings.Backend.DevServerURL, config.DevServerURL(settings)))
	fmt.Printf("  %s %s\n", styleLabel.Render("control-port:   "), styleValue.Render(strconv.Itoa(settings.Control.Port)))
	fmt.Printf("  %s %s\n", styleLabel.Render("notifications:  "), styleValue.Render(strconv.FormatBool(settings.Notifications.Enabled)))
	fmt.Printf("  %s %s\n", styleLabel.Render("update-check:   "), styleValue.Render(strconv.FormatBool(settings.Updates.CheckOnStartup)))
	fmt.Printf("  %s %s\n", styleLabel.Render("log-level:      "), styleValue.Render(settings.Log.Level))
	return nil
}

func renderOrDefault(explicit, effective string) string {
	if explicit != "" {
		return styleValue.Render(explicit)
	}
	return styleHint.Render(fmt.Sprintf("(default: %s)", effective))
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if err := applySetting(settings, key, value); err != nil {
		return err
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf("Set %s to %s.", key, value)))

	if running, _, _ := config.IsShellRunning(); running {
		fmt.Println(styleHint.Render("The running shell picks this up automatically."))
	}
	return nil
}

func applySetting(settings *models.Settings, key, value string) error {
	switch key {
	case "backend-url":
		settings.Backend.URL = value
	case "dev-server-url":
		settings.Backend.DevServerURL = value
	case "control-port":
		port, err := strconv.Atoi(value)
		if err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("control-port must be a port number, got %q", value)
		}
		settings.Control.Port = port
	case "notifications":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("notifications must be true or false, got %q", value)
		}
		settings.Notifications.Enabled = enabled
	case "update-check":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("update-check must be true or false, got %q", value)
		}
		settings.Updates.CheckOnStartup = enabled
	case "log-level":
		switch value {
		case "debug", "info", "warn", "error":
			settings.Log.Level = value
		default:
			return fmt.Errorf("log-level must be debug, info, warn, or error, got %q", value)
		}
	default:
		return fmt.Errorf("unknown settings key %q", key)
	}
	return nil
}
