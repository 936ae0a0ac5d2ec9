package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const (
	colorBlue   = "\033[0;34m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorRed    = "\033[0;31m"
	colorReset  = "\033[0m"
)

// Terminal output helpers

func PrintInfo(format string, a ...interface{}) {
	fmt.Printf(colorBlue+"ℹ "+format+colorReset+"\n", a...)
}

func PrintSuccess(format string, a ...interface{}) {
	fmt.Printf(colorGreen+"✓ "+format+colorReset+"\n", a...)
}

func PrintWarning(format string, a ...interface{}) {
	fmt.Printf(colorYellow+"⚠ "+format+colorReset+"\n", a...)
}

func PrintError(format string, a ...interface{}) {
	fmt.Printf(colorRed+"✗ "+format+colorReset+"\n", a...)
}

func PrintHeader(title string) {
	fmt.Printf("\n"+colorYellow+"=== %s ==="+colorReset+"\n", title)
}

// Command execution helpers

// checkHostile rejects arguments carrying shell metacharacters. exec.Command
// itself never invokes a shell, but some arguments end up forwarded to
// processes that do (psql, docker compose), so the filter stays strict about
// redirection, pipes, and substitution while allowing ';' and '&' for SQL
// and URLs.
func checkHostile(inputs ...string) error {
	dangerous := []string{"|", "`", "$(", "&&", "||", ">", "<"}

	for _, s := range inputs {
		if strings.ContainsAny(s, "\n\r") {
			return fmt.Errorf("hostile input detected: newline in argument")
		}
		if strings.Contains(s, "\x00") {
			return fmt.Errorf("hostile input detected: null byte")
		}
		for _, p := range dangerous {
			if strings.Contains(s, p) {
				return fmt.Errorf("hostile input detected: pattern %q in %q", p, s)
			}
		}
	}
	return nil
}

// getCommandOutput runs a command and returns its trimmed stdout
func getCommandOutput(name string, args ...string) (string, error) {
	if err := checkHostile(append([]string{name}, args...)...); err != nil {
		return "", err
	}
	// #nosec G204 - generic command wrapper, inputs checked above
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// runCommand runs a command silently
func runCommand(name string, args ...string) error {
	if err := checkHostile(append([]string{name}, args...)...); err != nil {
		return err
	}
	// #nosec G204 - generic command wrapper, inputs checked above
	return exec.Command(name, args...).Run()
}

// runCommandVerbose runs a command with output piped to the terminal
func runCommandVerbose(name string, args ...string) error {
	if err := checkHostile(append([]string{name}, args...)...); err != nil {
		return err
	}
	// #nosec G204 - generic command wrapper, inputs checked above
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
