// Package terminal opens a platform-appropriate terminal in a project
// directory.
package terminal

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Launch opens a terminal in dir. When override is non-empty it is
// used as the terminal command; otherwise a per-platform default is
// chosen. The spawned process is detached, so Launch returns as soon
// as the terminal has started.
func Launch(dir, override string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("open terminal: not a directory: %s", dir)
	}

	cmd, err := buildCommand(dir, override)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	// Detach: the terminal outlives this process.
	return cmd.Process.Release()
}

func buildCommand(dir, override string) (*exec.Cmd, error) {
	if override != "" {
		cmd := exec.Command(override)
		cmd.Dir = dir
		return cmd, nil
	}

	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", "-a", "Terminal", dir), nil
	case "windows":
		cmd := exec.Command("cmd", "/c", "start", "cmd")
		cmd.Dir = dir
		return cmd, nil
	default:
		for _, candidate := range []string{os.Getenv("TERMINAL"), "x-terminal-emulator", "gnome-terminal", "konsole", "xterm"} {
			if candidate == "" {
				continue
			}
			if path, err := exec.LookPath(candidate); err == nil {
				cmd := exec.Command(path)
				cmd.Dir = dir
				return cmd, nil
			}
		}
		return nil, fmt.Errorf("no terminal emulator found; set terminal in config")
	}
}
