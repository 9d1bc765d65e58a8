// Command ods2ls mounts an ODS-2 volume image and recursively lists it.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaxdisk/ods2"
)

const defaultImagePath = "ods2.disk"
const mfdSelfName = "000000.DIR"

var (
	homeBlockLBN uint32
	verbosity    int
)

var rootCmd = &cobra.Command{
	Use:   "ods2ls [image-path]",
	Short: "List the contents of an ODS-2 volume image",
	Long: `ods2ls mounts a raw ODS-2 (VAX/VMS) volume image, opens the master
file directory, and recursively prints every file it can reach.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().Uint32Var(&homeBlockLBN, "home-block-lbn", 1, "LBN of the primary home block")
	rootCmd.Flags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (-v info, -vv trace)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	path := defaultImagePath
	if len(args) == 1 {
		path = args[0]
	}

	src, err := ods2.OpenFileBlockSource(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	defer src.Close()

	opts := []ods2.MountOption{ods2.WithHomeBlockLBN(homeBlockLBN)}
	if verbosity > 0 {
		level := slog.LevelInfo
		if verbosity > 1 {
			level = slog.LevelDebug - 2
		}
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		opts = append(opts, ods2.WithLogger(slog.New(handler)))
	}

	fs := ods2.New(src, opts...)
	if err := fs.Mount(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	root, err := fs.OpenRootDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	walk(fs, root, mfdSelfName)
	return nil
}

// walk prints "<path>:<name>" for every entry reachable from dir, depth
// first, skipping the master file directory's self-reference so that
// 000000.DIR does not recurse into itself forever.
func walk(fs *ods2.FS, dir *ods2.File, path string) {
	entries, err := dir.ReadDirEntries()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return
	}
	for _, e := range entries {
		fmt.Printf("%s:%s\n", path, e.Name)

		if path == mfdSelfName && e.Name == mfdSelfName {
			continue
		}

		child, err := fs.OpenFile(e.FID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s:%s: %v\n", path, e.Name, err)
			continue
		}
		if child.IsDir() {
			walk(fs, child, path+":"+e.Name)
		}
	}
}
