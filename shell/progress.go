package shell

import (
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

// newSearchBar returns a bar with one step per root candidate.
func newSearchBar(candidates int) *progressbar.ProgressBar {
	return progressbar.NewOptions(candidates,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("thinking"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)
}
