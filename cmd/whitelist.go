package cmd

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/catsale/internal/snapshot"
	"github.com/Mohsinsiddi/catsale/internal/ui"
)

var whitelistFile string

var whitelistCmd = &cobra.Command{
	Use:   "whitelist",
	Short: "Manage presale allocations",
	Long: `Every pushed occurrence of an address adds one allocation unit. An
address can mint at most min(units, 5) tokens during the presale.

Examples:
  catsale whitelist push --file whitelist.txt
  catsale whitelist add 0x7099...79C8 0x3C44...93BC
  catsale whitelist show 0x7099...79C8`,
}

var whitelistPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push every address in a file (one per line)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(whitelistFile)
		if err != nil {
			return err
		}
		defer f.Close()

		addrs, err := snapshot.ReadWhitelist(f)
		if err != nil {
			return fmt.Errorf("%s: %w", whitelistFile, err)
		}
		return pushWhitelist(cmd, addrs)
	},
}

var whitelistAddCmd = &cobra.Command{
	Use:   "add <address|alias>...",
	Short: "Push addresses given on the command line",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addrs := make([]common.Address, 0, len(args))
		for _, a := range args {
			addr, err := parseAccount(a)
			if err != nil {
				return err
			}
			addrs = append(addrs, addr)
		}
		return pushWhitelist(cmd, addrs)
	},
}

var whitelistShowCmd = &cobra.Command{
	Use:   "show <address|alias>",
	Short: "Show an address's allocation and presale mints",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := parseAccount(args[0])
		if err != nil {
			return err
		}
		ss, err := openSale()
		if err != nil {
			return err
		}
		s := ss.sale
		units := s.Allocation(addr)
		limit := s.PresaleLimit(addr)
		minted := s.PresaleMinted(addr)

		fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock("Whitelist", [][2]string{
			{"Address", ui.Addr(addr.Hex())},
			{"Units", ui.Val(fmt.Sprintf("%d", units))},
			{"Presale minted", ui.Val(fmt.Sprintf("%d / %d", minted, limit))},
			{"Total units", ui.Meta(fmt.Sprintf("%d", s.WhitelistCount()))},
		}))
		return nil
	},
}

func pushWhitelist(cmd *cobra.Command, addrs []common.Address) error {
	if len(addrs) == 0 {
		return fmt.Errorf("no addresses to push")
	}
	return ownerCall(cmd, func(ss *session, from common.Address) error {
		return ss.sale.PushWhitelist(from, addrs)
	}, fmt.Sprintf("pushed %d whitelist entries", len(addrs)))
}

func init() {
	whitelistPushCmd.Flags().StringVarP(&whitelistFile, "file", "f", "", "file with one address per line")
	_ = whitelistPushCmd.MarkFlagRequired("file")

	whitelistCmd.AddCommand(whitelistPushCmd, whitelistAddCmd, whitelistShowCmd)
}
