package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eduwiki/eduwiki/internal/catalog"
	"github.com/eduwiki/eduwiki/internal/search"
	"github.com/eduwiki/eduwiki/internal/ui/components"
	"github.com/eduwiki/eduwiki/internal/ui/theme"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List topic categories and their topics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		featured, _ := cmd.Flags().GetInt("featured")
		svc := coreServices()
		w := output(cmd)

		if featured > 0 {
			fmt.Fprintln(w, theme.Title.Render("⭐ Featured Topics"))
			for _, t := range svc.Catalog.Featured(svc.Rand, featured) {
				fmt.Fprintf(w, "  • %s %s\n", t, theme.Hint.Render(svc.Catalog.CategoryOf(t)))
			}
			return nil
		}

		cats := svc.Catalog.Categories()
		if category != "" {
			topics := svc.Catalog.Topics(category)
			if topics == nil {
				return fmt.Errorf("unknown category %q (have: %v)", category, svc.Catalog.CategoryNames())
			}
			cats = []catalog.Category{{Name: category, Topics: topics}}
		}
		fmt.Fprint(w, components.Categories(cats))
		fmt.Fprintln(w, theme.Subtitle.Render(fmt.Sprintf("\n%d topics in %d categories",
			svc.Catalog.TopicCount(), len(svc.Catalog.Categories()))))
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search topics by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := coreServices()
		q := topicArg(args)
		fmt.Fprint(output(cmd), components.SearchResults(q, search.Search(q, svc.Catalog), svc.Catalog))
		return nil
	},
}

func init() {
	topicsCmd.Flags().StringP("category", "c", "", "Only list topics in this category")
	topicsCmd.Flags().IntP("featured", "f", 0, "Show this many randomly featured topics instead")
}
