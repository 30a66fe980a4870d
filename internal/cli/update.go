package cli

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/EKINSOL-DEV/crewhub/internal/config"
	"github.com/EKINSOL-DEV/crewhub/internal/updater"
)

var (
	updateCheckOnly bool
	updateOpenPage  bool
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update CrewHub to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Checking for updates...")

		result, err := updater.CheckForUpdate()
		if err != nil {
			return fmt.Errorf("failed to check for updates: %w", err)
		}

		if !result.Available {
			fmt.Println(styleSuccess.Render(fmt.Sprintf("Already up to date (v%s).", result.CurrentVersion)))
			return nil
		}

		fmt.Println(styleUpdate.Render(fmt.Sprintf("Update available: v%s → v%s", result.CurrentVersion, result.LatestVersion)))
		fmt.Printf("Release: %s\n", result.ReleaseURL)

		if updateOpenPage {
			if err := browser.OpenURL(result.ReleaseURL); err != nil {
				fmt.Println(styleWarning.Render(fmt.Sprintf("Could not open browser: %v", err)))
			}
		}
		if updateCheckOnly {
			return nil
		}

		shellAsset := updater.FindAsset(result.Release, updater.ShellAssetName())
		cliAsset := updater.FindAsset(result.Release, updater.CLIAssetName())

		if shellAsset == nil {
			return fmt.Errorf("shell binary not found in release (expected %s)", updater.ShellAssetName())
		}
		if cliAsset == nil {
			return fmt.Errorf("CLI binary not found in release (expected %s)", updater.CLIAssetName())
		}

		// Stop the shell before its binary is swapped out
		shellWasRunning, _, _ := config.IsShellRunning()
		if shellWasRunning {
			fmt.Println("Stopping shell...")
			if err := stopShellForUpdate(); err != nil {
				fmt.Println(styleWarning.Render(fmt.Sprintf("Warning: failed to stop shell: %v", err)))
			}
		}

		fmt.Printf("Downloading shell (%s)...\n", shellAsset.Name)
		shellTmpPath, err := updater.DownloadAsset(shellAsset)
		if err != nil {
			return fmt.Errorf("failed to download shell: %w", err)
		}
		defer os.Remove(shellTmpPath)

		fmt.Printf("Downloading CLI (%s)...\n", cliAsset.Name)
		cliTmpPath, err := updater.DownloadAsset(cliAsset)
		if err != nil {
			return fmt.Errorf("failed to download CLI: %w", err)
		}
		defer os.Remove(cliTmpPath)

		// Replace CLI binary (self)
		selfPath, err := os.Executable()
		if err != nil {
			return fmt.Errorf("failed to find self: %w", err)
		}
		selfPath, err = filepath.EvalSymlinks(selfPath)
		if err != nil {
			return fmt.Errorf("failed to resolve self: %w", err)
		}

		fmt.Println("Installing CLI...")
		if err := updater.ReplaceBinary(selfPath, cliTmpPath); err != nil {
			return fmt.Errorf("failed to update CLI: %w", err)
		}

		shellBinPath, err := findShellBinary()
		if err != nil {
			return fmt.Errorf("failed to find shell binary: %w", err)
		}

		fmt.Println("Installing shell...")
		if err := updater.ReplaceBinary(shellBinPath, shellTmpPath); err != nil {
			return fmt.Errorf("failed to update shell: %w", err)
		}

		if shellWasRunning {
			fmt.Println("Restarting shell...")
			restart := exec.Command(shellBinPath)
			restart.Stdout = nil
			restart.Stderr = nil
			restart.Stdin = nil
			if err := restart.Start(); err != nil {
				fmt.Println(styleWarning.Render(fmt.Sprintf("Warning: failed to restart shell: %v", err)))
			}
		}

		fmt.Println(styleSuccess.Render(fmt.Sprintf("Updated to v%s.", result.LatestVersion)))
		return nil
	},
}

func init() {
	updateCmd.Flags().BoolVar(&updateCheckOnly, "check", false, "only check, do not install")
	updateCmd.Flags().BoolVar(&updateOpenPage, "open", false, "open the release page in the browser")
}

// stopShellForUpdate asks the shell to quit and waits for the process
// to go away.
func stopShellForUpdate() error {
	c, err := dialShell()
	if err != nil {
		return err
	}
	if err := c.post("/api/quit", nil); err != nil {
		return err
	}

	for i := 0; i < 50; i++ {
		time.Sleep(100 * time.Millisecond)
		running, _, err := config.IsShellRunning()
		if err == nil && !running {
			return nil
		}
	}
	return fmt.Errorf("shell did not stop within timeout")
}

// findShellBinary locates the crewhub binary.
func findShellBinary() (string, error) {
	// Try PATH first
	path, err := exec.LookPath("crewhub")
	if err == nil {
		return path, nil
	}

	// Try next to the current executable
	execPath, err := os.Executable()
	if err == nil {
		shellPath := filepath.Join(filepath.Dir(execPath), "crewhub")
		if _, err := os.Stat(shellPath); err == nil {
			return shellPath, nil
		}
	}

	// Try build directory
	if _, err := os.Stat("./build/crewhub"); err == nil {
		return "./build/crewhub", nil
	}

	return "", fmt.Errorf("crewhub not found. Install or build it first")
}
