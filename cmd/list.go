package cmd

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"movieapp/model"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the movie list as a table",
		Long:  `Print every movie of the list, in display order, without starting the interactive screen.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderMovies(cmd.OutOrStdout(), model.GetMovies())
			return nil
		},
	}
}

func renderMovies(out io.Writer, movies []model.Movie) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"#", "Title", "Year", "Director", "Genre", "Rating"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 28},
		{Number: 5, WidthMax: 28},
	})
	t.SetStyle(table.StyleRounded)

	for i, movie := range movies {
		t.AppendRow(table.Row{
			i + 1,
			movie.Title,
			movie.Year,
			movie.Director,
			movie.Genre,
			movie.RatingLabel(),
		})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d movies", len(movies))})
	t.Render()
}
