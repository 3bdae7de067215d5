package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/resfs/roots"
	"github.com/jmgilman/go/resfs/stream"
)

func newResolveCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <category> <name>",
		Short: "Print the path a name resolves to within a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys, err := g.fileSystem(cmd)
			if err != nil {
				return err
			}
			p, err := fsys.FixPath(args[1], roots.Category(args[0]))
			if err != nil {
				return err
			}
			return g.print(cmd, map[string]string{"path": p}, func(w io.Writer) {
				fmt.Fprintln(w, p)
			})
		},
	}
}

type statInfo struct {
	Path        string    `json:"path"`
	Size        int64     `json:"size"`
	Modified    time.Time `json:"modified"`
	Checksum    uint32    `json:"checksum"`
	Fingerprint string    `json:"fingerprint"`
}

func newStatCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stat <category> <name>",
		Short: "Show size, modification time and checksums of a resource",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys, err := g.fileSystem(cmd)
			if err != nil {
				return err
			}
			cat := roots.Category(args[0])

			f, err := fsys.Open(args[1], cat, stream.ModeReadBinary)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			sum, err := f.Checksum()
			if err != nil {
				return err
			}
			fp, err := fsys.Fingerprint(args[1], cat)
			if err != nil {
				return err
			}

			info := statInfo{
				Path:        f.Name(),
				Size:        f.Size(),
				Modified:    fsys.LastModifiedTime(f.Name()),
				Checksum:    sum,
				Fingerprint: fp,
			}
			return g.print(cmd, info, func(w io.Writer) {
				fmt.Fprintf(w, "path:        %s\n", info.Path)
				fmt.Fprintf(w, "size:        %d\n", info.Size)
				fmt.Fprintf(w, "modified:    %s\n", info.Modified.Format(time.RFC3339))
				fmt.Fprintf(w, "checksum:    %08x\n", info.Checksum)
				fmt.Fprintf(w, "fingerprint: %s\n", info.Fingerprint)
			})
		},
	}
}
