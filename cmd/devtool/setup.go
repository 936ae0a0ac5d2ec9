package main

import (
	"fmt"
	"io"
	"os"
)

type SetupCommand struct{}

func (c *SetupCommand) Name() string {
	return "setup"
}

func (c *SetupCommand) Description() string {
	return "Setup development environment"
}

func (c *SetupCommand) Run(args []string) error {
	PrintHeader("Starting Environment Setup")

	PrintInfo("Step 1/5: Checking dependencies...")
	if err := (&CheckDepsCommand{}).Run(nil); err != nil {
		return err
	}

	PrintInfo("Step 2/5: Configuring environment...")
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		PrintInfo("Creating .env from .env.example...")
		if err := copyFile(".env.example", ".env"); err != nil {
			return fmt.Errorf("failed to create .env: %w", err)
		}
		PrintSuccess(".env created")
		// The .env did not exist when main loaded it, so values from the new
		// file are not in this process. Defaults cover local setup; re-run if
		// a step below needs a custom value.
	} else {
		PrintSuccess(".env already exists")
	}

	PrintInfo("Step 3/5: Starting database...")
	if err := (&CheckDBCommand{}).Run(nil); err != nil {
		return err
	}

	PrintInfo("Step 4/5: Running migrations...")
	if err := (&MigrateCommand{}).Run([]string{"up"}); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	PrintInfo("Step 5/5: Generating code...")
	if err := runCommandVerbose("make", "generate"); err != nil {
		return fmt.Errorf("code generation failed: %w", err)
	}

	PrintSuccess("Setup complete! You can now run 'make run'.")
	return nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	return err
}
