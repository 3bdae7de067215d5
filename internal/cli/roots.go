package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/resfs/roots"
)

type rootEntry struct {
	Category string `json:"category"`
	Dir      string `json:"dir"`
	Modified bool   `json:"modified"`
}

func newRootsCmd(g *globalFlags) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "roots",
		Short: "List category roots after configuration and overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fsys, err := g.fileSystem(cmd)
			if err != nil {
				return err
			}
			table := fsys.Roots()

			if asYAML {
				data, err := roots.ConfigFromTable(table).Marshal()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			var entries []rootEntry
			for _, cat := range table.Categories() {
				dir, err := table.RootPath(cat)
				if err != nil {
					return err
				}
				entries = append(entries, rootEntry{
					Category: cat.String(),
					Dir:      dir,
					Modified: table.IsModified(cat),
				})
			}

			return g.print(cmd, entries, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				for _, e := range entries {
					mark := ""
					if e.Modified {
						mark = "*"
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Category, e.Dir, mark)
				}
				_ = tw.Flush()
			})
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the effective roots as a YAML configuration")
	return cmd
}
