package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mbenadda/mbenadda.com/internal/authors"
	"github.com/mbenadda/mbenadda.com/internal/corpus"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists every post in the corpus, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := authors.Load(siteConfig.BlogAuthorDir, siteConfig.BlogAuthorID)
		if err != nil {
			return err
		}
		c, err := corpus.Load(siteConfig, dir)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tTITLE\tCATEGORY\tAUTHOR\tTAGS\tMIN")
		for _, post := range c.Posts {
			author, _ := dir.Resolve(post.AuthorID)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
				post.Meta.Date,
				post.Meta.Title,
				corpus.DisplayCategory(post.Meta.Category),
				author.Name,
				strings.Join(post.Meta.Tags, ", "),
				post.ReadingMinutes(),
			)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
