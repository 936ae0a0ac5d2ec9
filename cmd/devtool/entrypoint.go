package main

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"
)

type EntrypointCommand struct{}

func (c *EntrypointCommand) Name() string {
	return "entrypoint"
}

func (c *EntrypointCommand) Description() string {
	return "Container entrypoint (wait-for-db, backup, migrate, exec)"
}

func (c *EntrypointCommand) Run(args []string) error {
	// Inside the compose network the database host is "db"
	if os.Getenv("DB_HOST") == "" {
		_ = os.Setenv("DB_HOST", "db")
	}

	if err := (&WaitForDBCommand{}).Run(nil); err != nil {
		return fmt.Errorf("wait-for-db failed: %w", err)
	}

	c.backupIfNeeded()

	if err := c.migrateWithRetries(); err != nil {
		return err
	}

	return c.execApp(args)
}

func (c *EntrypointCommand) backupIfNeeded() {
	if os.Getenv("ENVIRONMENT") != "production" && os.Getenv("CREATE_BACKUP") != "true" {
		return
	}

	PrintHeader("Creating pre-migration backup...")

	if _, err := exec.LookPath("pg_dump"); err != nil {
		PrintWarning("pg_dump not found, skipping backup")
		return
	}

	backupFile := fmt.Sprintf("/tmp/backup_%s.sql", time.Now().Format("20060102_150405"))
	f, err := os.Create(backupFile)
	if err != nil {
		PrintWarning("Could not create backup file: %v", err)
		return
	}
	defer f.Close()

	cmd := exec.Command("pg_dump",
		"-h", os.Getenv("DB_HOST"),
		"-U", os.Getenv("DB_USER"),
		"-d", os.Getenv("DB_NAME"))
	cmd.Stdout = f
	cmd.Stderr = os.Stderr

	// A failed backup is a warning, not a fatal error: migrations still run
	if err := cmd.Run(); err != nil {
		PrintWarning("Backup failed: %v", err)
	} else {
		PrintSuccess("Backup created: %s", backupFile)
	}
}

func (c *EntrypointCommand) migrateWithRetries() error {
	PrintHeader("Running migrations...")

	const maxRetries = 3
	var err error
	for i := 0; i < maxRetries; i++ {
		err = (&MigrateCommand{}).Run([]string{"up"})
		if err == nil {
			PrintSuccess("Migrations completed successfully")
			return nil
		}
		PrintWarning("Migration attempt %d failed: %v", i+1, err)
		if i < maxRetries-1 {
			PrintInfo("Retrying in 5 seconds...")
			time.Sleep(5 * time.Second)
		}
	}
	return fmt.Errorf("migrations failed after %d attempts: %w", maxRetries, err)
}

// execApp replaces this process with the application binary so it receives
// signals directly from the container runtime.
func (c *EntrypointCommand) execApp(args []string) error {
	execArgs := args
	if len(execArgs) > 0 && execArgs[0] == "--" {
		execArgs = execArgs[1:]
	}
	if len(execArgs) == 0 {
		return fmt.Errorf("no command to execute")
	}

	PrintHeader("Starting application...")
	cmdPath, err := exec.LookPath(execArgs[0])
	if err != nil {
		return fmt.Errorf("executable not found: %w", err)
	}

	if err := syscall.Exec(cmdPath, execArgs, os.Environ()); err != nil {
		return fmt.Errorf("exec failed: %w", err)
	}

	return nil
}
