package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/stimpy77/ConsoleInk.NET/internal/config"
)

func handleConfig(op string) error {
	switch op {
	case "show":
		return showConfig()
	case "edit":
		return editConfig()
	default:
		return fmt.Errorf("unknown config operation %q (expected 'show' or 'edit')", op)
	}
}

func showConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	path, _ := config.GetConfigPath()
	fmt.Printf("config file: %s\n", path)
	fmt.Printf("width:          %d\n", cfg.Width)
	fmt.Printf("colors:         %t\n", cfg.Colors)
	fmt.Printf("theme:          %s\n", cfg.Theme)
	fmt.Printf("strip_html:     %t\n", cfg.StripHTML)
	fmt.Printf("use_hyperlinks: %t\n", cfg.UseHyperlinks)
	return nil
}

func editConfig() error {
	if !config.Exists() {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("failed to write default config: %w", err)
		}
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	c := exec.Command(editor, path)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
