package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	consoleink "github.com/stimpy77/ConsoleInk.NET"
	"github.com/stimpy77/ConsoleInk.NET/internal/config"
)

var (
	widthFlag         int
	noColorFlag       bool
	themeFlag         string
	noHyperlinksFlag  bool
	keepHTMLFlag      bool
	configFlag        string
)

var rootCmd = &cobra.Command{
	Use:   "consoleink [file]",
	Short: "Stream Markdown to styled ANSI terminal output",
	Long: `consoleink renders Markdown incrementally as ANSI-styled terminal text.

Examples:
  consoleink README.md
  cat CHANGELOG.md | consoleink
  consoleink --theme dracula --width 100 notes.md
  consoleink --config show
  consoleink --config edit`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().IntVarP(&widthFlag, "width", "w", 0, "Wrap column (0 uses the saved default)")
	rootCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "Disable ANSI color/style output")
	rootCmd.Flags().StringVarP(&themeFlag, "theme", "t", "", "Theme name: default, monochrome, gruvbox, dracula, nord")
	rootCmd.Flags().BoolVar(&noHyperlinksFlag, "no-hyperlinks", false, "Disable OSC-8 hyperlink emission")
	rootCmd.Flags().BoolVar(&keepHTMLFlag, "keep-html", false, "Pass inline HTML tags through instead of stripping them")
	rootCmd.Flags().StringVar(&configFlag, "config", "", "Config operation: 'show' or 'edit'")
}

// Execute runs the root command, exiting the process with a nonzero status
// on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if configFlag != "" {
		return handleConfig(configFlag)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts := optionsFromConfigAndFlags(cfg)

	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()
		in = f
	}

	w := consoleink.NewWriter(os.Stdout, opts...)
	buf := make([]byte, 64*1024)
	for {
		n, rerr := in.Read(buf)
		if n > 0 {
			if werr := w.WriteString(string(buf[:n])); werr != nil {
				return werr
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return rerr
		}
	}
	return w.Complete()
}

func optionsFromConfigAndFlags(cfg *config.Config) []consoleink.Option {
	width := cfg.Width
	if widthFlag > 0 {
		width = widthFlag
	}
	colors := cfg.Colors && !noColorFlag
	themeName := cfg.Theme
	if themeFlag != "" {
		themeName = themeFlag
	}
	hyperlinks := cfg.UseHyperlinks && !noHyperlinksFlag
	stripHTML := cfg.StripHTML && !keepHTMLFlag

	return []consoleink.Option{
		consoleink.WithWidth(width),
		consoleink.WithColors(colors),
		consoleink.WithTheme(config.ResolveTheme(themeName)),
		consoleink.WithHyperlinks(hyperlinks),
		consoleink.WithStripHTML(stripHTML),
	}
}
