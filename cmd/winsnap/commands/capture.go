package commands

import (
	"github.com/bryanchriswhite/winsnap/internal/output"
	"github.com/bryanchriswhite/winsnap/internal/usecase"
	"github.com/spf13/cobra"
)

var captureCmd = &cobra.Command{
	Use:   "capture TITLE OUTPUT",
	Short: "Capture a window by title",
	Long: `Capture the first window whose title equals TITLE exactly and save it
to OUTPUT. The image format follows the file extension: .png, .jpg/.jpeg,
.bmp or .tif/.tiff.`,
	Example: `  # Capture a terminal window to PNG
  winsnap capture "Terminal" screenshot.png

  # Capture through the Composite backing pixmap and report as JSON
  WINSNAP_CAPTURE_USE_COMPOSITE=true winsnap capture "Firefox" out.jpg --format json`,
	Args: cobra.ExactArgs(2),
	RunE: runCapture,
}

func init() {
	rootCmd.AddCommand(captureCmd)
}

func runCapture(cmd *cobra.Command, args []string) error {
	title, outputPath := args[0], args[1]
	cfg := configMgr.Get()

	eng, closeSession, err := openEngine(cfg)
	if err != nil {
		return present(cmd.OutOrStdout(), cfg.OutputFormat, nil, err)
	}
	defer closeSession()

	saver := output.NewFileSaver(encodingOptions())
	result, err := usecase.NewTakeScreenshot(eng, saver).Execute(title, outputPath)
	return present(cmd.OutOrStdout(), cfg.OutputFormat, result, err)
}
