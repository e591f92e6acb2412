// Command qimen casts Qi Men Dun Jia charts from the terminal.
//
// Usage:
//
//	qimen chart --date 2025-12-21 --hour 20
//	qimen chart --date 2025-12-21 --hour 20 --json
//	qimen chart --now --plain
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qimen/chart"
	"github.com/katalvlaran/qimen/render"
)

var (
	// Global flags
	verbose bool

	// chart flags
	dateStr   string
	hour      int
	useNow    bool
	asJSON    bool
	plain     bool
	utcOffset int

	logger *zap.Logger
)

// fileConfig mirrors ~/.qimen.yaml. Flags win over the file.
type fileConfig struct {
	UTCOffset *int  `yaml:"utc_offset"`
	Plain     *bool `yaml:"plain"`
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "qimen",
	Short: "qimen - Qi Men Dun Jia chart engine",
	Long: `qimen casts a traditional Qi Men Dun Jia (奇门遁甲) chart for a civil
date and hour: Four Pillars, solar term, Ju formation, and the five plates
laid over the nine palaces.

The engine is deterministic: the same moment always yields the same chart.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// chartCmd casts and prints a single chart
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Cast the chart for a date and hour",
	Long: `Casts the chart for a local civil moment and prints it.

By default the output is a styled 3x3 grid; --plain emits the fixed-width
text layout and --json the full machine-readable record.

Example:
  qimen chart --date 2025-12-21 --hour 20`,
	RunE: runChart,
}

func runChart(cmd *cobra.Command, args []string) error {
	applyConfig(cmd)

	y, m, d, h, err := resolveMoment()
	if err != nil {
		return err
	}
	logger.Debug("casting chart",
		zap.Int("year", y), zap.Int("month", m), zap.Int("day", d), zap.Int("hour", h),
		zap.Int("utc_offset", utcOffset))

	c, err := chart.Generate(y, m, d, h, &chart.Options{UTCOffset: utcOffset})
	if err != nil {
		return fmt.Errorf("chart generation failed: %w", err)
	}
	logger.Debug("chart cast",
		zap.String("formation", c.Formation), zap.String("xun_shou", c.XunShou))

	switch {
	case asJSON:
		out, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case plain:
		fmt.Print(render.Grid(c))
	default:
		fmt.Println(render.StyledGrid(c))
	}
	return nil
}

// resolveMoment turns the date flags into a civil moment. --now uses the
// current wall clock; otherwise --date and --hour are required.
func resolveMoment() (year, month, day, h int, err error) {
	if useNow {
		now := time.Now()
		return now.Year(), int(now.Month()), now.Day(), now.Hour(), nil
	}
	if dateStr == "" {
		return 0, 0, 0, 0, fmt.Errorf("either --now or --date is required")
	}
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("invalid --date %q (want YYYY-MM-DD): %w", dateStr, err)
	}
	if hour < 0 || hour > 23 {
		return 0, 0, 0, 0, fmt.Errorf("invalid --hour %d (want 0..23)", hour)
	}
	return t.Year(), int(t.Month()), t.Day(), hour, nil
}

// applyConfig folds ~/.qimen.yaml under any flags the user did not set.
func applyConfig(cmd *cobra.Command) {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	raw, err := os.ReadFile(filepath.Join(home, ".qimen.yaml"))
	if err != nil {
		return
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		logger.Warn("ignoring malformed config file", zap.Error(err))
		return
	}
	if fc.UTCOffset != nil && !cmd.Flags().Changed("utc-offset") {
		utcOffset = *fc.UTCOffset
	}
	if fc.Plain != nil && !cmd.Flags().Changed("plain") {
		plain = *fc.Plain
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	chartCmd.Flags().StringVar(&dateStr, "date", "", "Civil date, YYYY-MM-DD")
	chartCmd.Flags().IntVar(&hour, "hour", 0, "Civil hour, 0..23")
	chartCmd.Flags().BoolVar(&useNow, "now", false, "Use the current local time")
	chartCmd.Flags().BoolVar(&asJSON, "json", false, "Emit the full chart as JSON")
	chartCmd.Flags().BoolVar(&plain, "plain", false, "Emit fixed-width text instead of the styled grid")
	chartCmd.Flags().IntVar(&utcOffset, "utc-offset", chart.DefaultOptions().UTCOffset, "Timezone label offset in hours")

	rootCmd.AddCommand(chartCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
