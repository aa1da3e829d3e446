package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alp4ka/pagenav"
	"github.com/Alp4ka/pagenav/internal/render"
)

type windowOutput struct {
	PageCount int            `json:"pageCount"`
	Page      int            `json:"page"`
	Changed   bool           `json:"changed"`
	Entries   []string       `json:"entries"`
	Links     []pagenav.Link `json:"links"`
}

func newWindowCmd(a *app) *cobra.Command {
	var (
		page           int
		collectionSize int
		jsonOutput     bool
	)

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Print the pagination bar for a page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := pagenav.NewPaginator(a.settings.Pagination).WithLogger(a.logger)
			p.SetCollectionSize(collectionSize)
			p.SelectPage(page)

			w := p.Window()
			out := cmd.OutOrStdout()

			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")

				return enc.Encode(windowOutput{
					PageCount: w.PageCount,
					Page:      w.Page,
					Changed:   w.Changed,
					Entries:   entryStrings(w.Entries),
					Links:     p.Links(),
				})
			}

			bar := render.NewBar(nil, a.settings.Pagination.Size)
			if _, err := fmt.Fprintln(out, bar.Render(p.Links())); err != nil {
				return err
			}

			_, err := fmt.Fprintf(out, "page %d of %d\n", w.Page, w.PageCount)
			return err
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Selected page")
	cmd.Flags().IntVar(&collectionSize, "collection-size", 0, "Number of items, negative when unknown")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func entryStrings(entries []pagenav.Entry) []string {
	ret := make([]string, 0, len(entries))
	for _, e := range entries {
		ret = append(ret, e.String())
	}

	return ret
}
