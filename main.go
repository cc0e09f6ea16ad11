package main

import (
	"encoding/json"
	"fmt"
	"os"

	"mazepath/internal/config"
	"mazepath/internal/logging"
	"mazepath/internal/maze"
	"mazepath/internal/model"
	"mazepath/internal/render"
	"mazepath/internal/report"
	"mazepath/internal/tui"
	"mazepath/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "mazepath",
		Repository: "mazepath",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		logging.Log.WithError(err).Debug("update check failed")
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\nA new version is available: %s (you have %s)\n", res.Current, currentVer)
	} else {
		fmt.Printf("You are using the latest version: %s\n", currentVer)
	}
}

func run() int {
	cfg := config.Defaults()

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mazepath [options]\n\n")
		fmt.Fprintf(os.Stderr, "mazepath carves a perfect maze with randomized depth-first search,\n")
		fmt.Fprintf(os.Stderr, "then finds and animates the shortest path from the top-left cell to\n")
		fmt.Fprintf(os.Stderr, "the bottom-right cell.\n\n")
		fmt.Fprintf(os.Stderr, "The grid is width/tile columns by height/tile rows. Defaults can be set\n")
		fmt.Fprintf(os.Stderr, "with MAZE_WIDTH, MAZE_HEIGHT, MAZE_TILE, MAZE_SEED, MAZE_FPS, MAZE_ADDR\n")
		fmt.Fprintf(os.Stderr, "and MAZE_LOG_LEVEL, in the environment or a .env file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  mazepath                      # Animate in the terminal\n")
		fmt.Fprintf(os.Stderr, "  mazepath -r --width 200 --height 200\n")
		fmt.Fprintf(os.Stderr, "  mazepath -p maze.png -g -s 42 # Save a reproducible maze image\n")
		fmt.Fprintf(os.Stderr, "  mazepath --web                # Browse mazes on http://localhost:8080\n")
	}

	pflag.IntVar(&cfg.Width, "width", cfg.Width, "Resolution width in pixels")
	pflag.IntVar(&cfg.Height, "height", cfg.Height, "Resolution height in pixels")
	pflag.IntVarP(&cfg.Tile, "tile", "t", cfg.Tile, "Cell size in pixels; must divide width and height")
	pflag.Int64VarP(&cfg.Seed, "seed", "s", cfg.Seed, "Random seed (0 picks one from the clock)")
	pflag.IntVarP(&cfg.FPS, "fps", "f", cfg.FPS, "Animation ticks per second")
	pflag.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address for --web")
	pflag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	logFileFlag := pflag.String("log-file", "", "Write logs to this file")
	reportFlag := pflag.BoolP("report", "r", false, "Print the solved maze as a text report")
	outputFlag := pflag.StringP("output", "o", "", "Save the report to the specified file (combined with --report)")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Include validation and path coordinates in the report")
	jsonFlag := pflag.BoolP("json", "j", false, "Output the solved maze snapshot as JSON")
	pngFlag := pflag.StringP("png", "p", "", "Save the solved maze as a PNG image")
	gradientFlag := pflag.BoolP("gradient", "g", false, "Tint cells by generation order in the PNG image")
	webFlag := pflag.BoolP("web", "w", false, "Start the web viewer")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return 0
	}

	if *versionFlag {
		fmt.Printf("mazepath version %s\n", model.Version)
		return 0
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	tuiMode := !*reportFlag && !*jsonFlag && *pngFlag == "" && !*webFlag && !*updateFlag
	closer, err := logging.Setup(cfg.LogLevel, *logFileFlag, tuiMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		return 1
	}
	defer closer.Close()

	if *updateFlag {
		checkUpdate(model.Version)
		return 0
	}

	if *webFlag {
		if err := web.StartServer(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Web server failed: %v\n", err)
			return 1
		}
		return 0
	}

	if *reportFlag {
		return runReportMode(cfg, *outputFlag, *verboseFlag)
	}

	if *jsonFlag {
		return runJsonMode(cfg)
	}

	if *pngFlag != "" {
		return runPngMode(cfg, *pngFlag, *gradientFlag)
	}

	// Default: TUI
	return runTuiMode(cfg)
}

// solvedSession carves and solves a maze in one go, for the non-interactive
// modes.
func solvedSession(cfg config.Config) (*maze.Session, error) {
	s, err := maze.NewSeededSession(cfg.Cols(), cfg.Rows(), cfg.Seed)
	if err != nil {
		return nil, err
	}
	if err := s.Finish(); err != nil {
		return nil, err
	}
	return s, nil
}

func runReportMode(cfg config.Config, outputFile string, verbose bool) int {
	s, err := solvedSession(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building maze: %v\n", err)
		return 1
	}

	text := report.GenerateReport(s, verbose)

	if outputFile != "" {
		err := os.WriteFile(outputFile, []byte(text), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", outputFile, err)
			return 1
		}
		fmt.Printf("Report saved to %s\n", outputFile)
	} else {
		fmt.Println(text)
	}
	return 0
}

func runJsonMode(cfg config.Config) int {
	s, err := solvedSession(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building maze: %v\n", err)
		return 1
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.Snapshot()); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding snapshot: %v\n", err)
		return 1
	}
	return 0
}

func runPngMode(cfg config.Config, outFilename string, gradient bool) int {
	s, err := solvedSession(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building maze: %v\n", err)
		return 1
	}
	f, err := os.Create(outFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", outFilename, err)
		return 1
	}
	defer f.Close()
	if err := render.WritePNG(f, s.Snapshot(), cfg.Tile, render.DefaultPalette, gradient); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing image to %s: %v\n", outFilename, err)
		return 1
	}
	fmt.Printf("Image %s written OK.\n", outFilename)
	return 0
}

func runTuiMode(cfg config.Config) int {
	m, err := tui.InitialModel(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building maze: %v\n", err)
		return 1
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		return 1
	}
	if fm, ok := final.(tui.AppModel); ok && fm.Err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", fm.Err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
