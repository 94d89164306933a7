package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `                 _             _
 _ __   ___ _ __(_)_ __   __ _| |_
| '_ \ / _ \ '__| | '_ \ / _` + "`" + ` | __|
| |_) |  __/ |  | | | | | (_| | |_
| .__/ \___|_|  |_|_| |_|\__,_|\__|
|_|`

var rootCmd = &cobra.Command{
	Use:   "perinat",
	Short: "French maternal-health training data generator and loader",
	Long: asciiLogo + `

perinat synthesizes a realistic French maternal-health dataset (patients,
pregnancies, prenatal visits, deliveries, birth outcomes) following ENP 2021
distributions, injects deliberate quality defects for data-engineering
exercises, and bulk-loads the CSV files into a PostgreSQL raw schema.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  11 - Database connection failed
  12 - User denied raw-schema rebuild approval
  13 - Load failed`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for perinat")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
