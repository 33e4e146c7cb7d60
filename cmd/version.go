package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eduwiki/eduwiki/internal/release"
	"github.com/eduwiki/eduwiki/internal/ui/theme"
)

// version is set via -ldflags at build time.
var version = release.DevVersion

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := output(cmd)
		fmt.Fprintln(w, "eduwiki", version)

		if check, _ := cmd.Flags().GetBool("check"); !check {
			return nil
		}
		res, err := release.NewChecker().Check(cmd.Context(), &release.CheckInput{Version: version})
		if errors.Is(err, release.ErrDevBuild) {
			fmt.Fprintln(w, theme.Hint.Render("Development build; release check skipped."))
			return nil
		}
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if !res.UpdateAvailable {
			fmt.Fprintln(w, theme.Correct.Render("Already running the latest version."))
			return nil
		}
		fmt.Fprintln(w, theme.Caution.Render(fmt.Sprintf("%s is available (you have %s)", res.LatestVersion, res.CurrentVersion)))
		if res.ReleaseURL != "" {
			fmt.Fprintln(w, theme.Link.Render(res.ReleaseURL))
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Check GitHub for a newer release")
}
