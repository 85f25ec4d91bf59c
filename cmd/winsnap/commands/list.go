package commands

import (
	"github.com/bryanchriswhite/winsnap/internal/usecase"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List window titles",
	Long: `List the titles of all windows that have one, in window tree order.

Untitled windows are skipped. The order follows the X server's stacking of
children under each parent, not creation or alphabetical order.`,
	Example: `  # List titles as plain text (default)
  winsnap list

  # List titles as JSON
  winsnap list --format json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := configMgr.Get()

	eng, closeSession, err := openEngine(cfg)
	if err != nil {
		return present(cmd.OutOrStdout(), cfg.OutputFormat, nil, err)
	}
	defer closeSession()

	result, err := usecase.NewListWindows(eng).Execute()
	return present(cmd.OutOrStdout(), cfg.OutputFormat, result, err)
}
