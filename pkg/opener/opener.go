// Package opener hands a file to the desktop's default application.
package opener

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Command returns the program and arguments that open path on goos.
func Command(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}

// Open starts the default handler for path without waiting for it to exit.
func Open(path string) error {
	name, args := Command(runtime.GOOS, path)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("error running %s: %w", name, err)
	}
	// reap the child once the handler returns
	go cmd.Wait()
	return nil
}
