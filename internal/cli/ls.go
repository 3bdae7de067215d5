package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/resfs/roots"
)

func newLsCmd(g *globalFlags) *cobra.Command {
	var (
		category string
		ext      string
	)

	cmd := &cobra.Command{
		Use:   "ls [dir]",
		Short: "List files with an extension inside a directory",
		Long: `List the regular files directly inside dir whose extension matches --ext.

With --category the directory is resolved within that category first; dir
defaults to the category root itself.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys, err := g.fileSystem(cmd)
			if err != nil {
				return err
			}

			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			if category != "" {
				if dir, err = fsys.FixPath(dir, roots.Category(category)); err != nil {
					return err
				}
			}
			if dir == "" {
				dir = "."
			}

			files, err := fsys.FilesWithExtension(dir, ext)
			if err != nil {
				return err
			}
			if files == nil {
				files = []string{}
			}

			return g.print(cmd, files, func(w io.Writer) {
				for _, f := range files {
					fmt.Fprintln(w, f)
				}
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Resolve dir within this category")
	cmd.Flags().StringVarP(&ext, "ext", "e", "", "Extension to match, with or without the dot")
	_ = cmd.MarkFlagRequired("ext")
	return cmd
}
