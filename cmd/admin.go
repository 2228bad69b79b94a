package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/catsale/internal/ui"
)

var transferOwnershipYes bool

// ownerCall runs an owner-only mutation and persists it.
func ownerCall(cmd *cobra.Command, fn func(ss *session, from common.Address) error, done string) error {
	from, err := caller()
	if err != nil {
		return err
	}
	ss, err := openSale()
	if err != nil {
		return err
	}
	if err := fn(ss, from); err != nil {
		return ss.reverted(err)
	}
	if err := ss.commit(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.Success(done))
	return nil
}

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause public and presale minting",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return ownerCall(cmd, func(ss *session, from common.Address) error {
			return ss.sale.Pause(from, true)
		}, "sale paused")
	},
}

var unpauseCmd = &cobra.Command{
	Use:   "unpause",
	Short: "Resume minting",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return ownerCall(cmd, func(ss *session, from common.Address) error {
			return ss.sale.Pause(from, false)
		}, "sale unpaused")
	},
}

var presaleCmd = &cobra.Command{
	Use:       "presale <on|off>",
	Short:     "Switch between the whitelisted presale and the public mint",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var active bool
		switch args[0] {
		case "on":
			active = true
		case "off":
		default:
			return fmt.Errorf("expected on or off, got %q", args[0])
		}
		return ownerCall(cmd, func(ss *session, from common.Address) error {
			return ss.sale.SetPresale(from, active)
		}, "presale "+args[0])
	},
}

var revealCmd = &cobra.Command{
	Use:   "reveal",
	Short: "Reveal token metadata (cannot be undone)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return ownerCall(cmd, func(ss *session, from common.Address) error {
			return ss.sale.Reveal(from)
		}, "metadata revealed")
	},
}

var transferOwnershipCmd = &cobra.Command{
	Use:   "transfer-ownership <address|alias>",
	Short: "Hand the sale over to a new owner",
	Long: `Transfer ownership of the sale. The new owner controls every admin
command and receives future withdrawals.

Examples:
  catsale transfer-ownership 0x70997970C51812dc3A010C7d01b50e0d17dc79C8
  catsale transfer-ownership bob --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		newOwner, err := parseAccount(args[0])
		if err != nil {
			return err
		}
		if !transferOwnershipYes && !ui.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Transfer ownership to "+newOwner.Hex()+"?") {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Meta("aborted"))
			return nil
		}
		return ownerCall(cmd, func(ss *session, from common.Address) error {
			return ss.sale.TransferOwnership(from, newOwner)
		}, "ownership transferred to "+newOwner.Hex())
	},
}

func init() {
	transferOwnershipCmd.Flags().BoolVarP(&transferOwnershipYes, "yes", "y", false, "skip confirmation")
}
