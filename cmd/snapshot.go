package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/catsale/internal/snapshot"
	"github.com/Mohsinsiddi/catsale/internal/ui"
)

var (
	snapshotFile  string
	snapshotStart uint64
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Export token owners as id,owner CSV",
	Long: `Write one "id,owner" line per minted token, from --start to the current
supply. Without --file the CSV goes to stdout.

Examples:
  catsale snapshot --file holders.csv
  catsale snapshot --start 500 > holders.csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ss, err := openSale()
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if snapshotFile != "" {
			f, err := os.Create(snapshotFile)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}

		n, err := snapshot.Export(w, ss.sale, snapshotStart)
		if err != nil {
			return err
		}
		if snapshotFile != "" {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("wrote %d owners to %s", n, snapshotFile)))
		}
		return nil
	},
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotFile, "file", "f", "", "output file (default: stdout)")
	snapshotCmd.Flags().Uint64Var(&snapshotStart, "start", 1, "first token id")
}
