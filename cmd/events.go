package cmd

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/cobra"

	"github.com/Mohsinsiddi/catsale/internal/sale"
	"github.com/Mohsinsiddi/catsale/internal/ui"
)

var (
	eventsCount int
	eventsRaw   bool
)

// Event signatures the sale emits, for decoding raw logs.
var knownEventTopics = map[common.Hash]string{
	sale.TransferTopic:             "Transfer",
	sale.OwnershipTransferredTopic: "OwnershipTransferred",
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show the sale's event log",
	Long: `Show Transfer and OwnershipTransferred events in emission order, the
way an indexer reads them: every parameter is an indexed topic.

Examples:
  catsale events
  catsale events --count 20
  catsale events --raw`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ss, err := openSale()
		if err != nil {
			return err
		}
		events := ss.sale.Events()
		if eventsCount > 0 && len(events) > eventsCount {
			events = events[len(events)-eventsCount:]
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, ui.Info("No events yet."))
			return nil
		}

		if eventsRaw {
			for _, e := range events {
				l := e.Log(ss.sale.Address())
				fmt.Fprintf(out, "%s #%d\n", ui.Val(knownEventTopics[l.Topics[0]]), l.Index)
				for i, topic := range l.Topics {
					fmt.Fprintf(out, "  topic[%d] %s\n", i, ui.Addr(topic.Hex()))
				}
			}
			return nil
		}

		t := ui.NewTable([]ui.Column{
			{Title: "#", Width: 6, Align: ui.AlignRight},
			{Title: "Event", Width: 20},
			{Title: "From", Width: 13},
			{Title: "To", Width: 13},
			{Title: "Token", Width: 8, Align: ui.AlignRight},
		})
		for _, e := range events {
			t.AddRow(decodeLog(e.Log(ss.sale.Address())))
		}
		fmt.Fprintln(out, t.Render())
		fmt.Fprintln(out, ui.Meta(fmt.Sprintf("%d event(s) from %s", len(events), ss.sale.Address().Hex())))
		return nil
	},
}

// decodeLog turns a sale log back into a table row using only its topics.
func decodeLog(l *types.Log) ui.Row {
	name, ok := knownEventTopics[l.Topics[0]]
	if !ok {
		name = l.Topics[0].Hex()
	}
	row := ui.Row{fmt.Sprintf("%d", l.Index), name, "", "", ""}
	if len(l.Topics) > 2 {
		row[2] = ui.TruncateAddr(common.BytesToAddress(l.Topics[1].Bytes()).Hex())
		row[3] = ui.TruncateAddr(common.BytesToAddress(l.Topics[2].Bytes()).Hex())
	}
	if len(l.Topics) > 3 {
		row[4] = new(big.Int).SetBytes(l.Topics[3].Bytes()).String()
	}
	return row
}

func init() {
	eventsCmd.Flags().IntVar(&eventsCount, "count", 0, "show only the last N events (0 = all)")
	eventsCmd.Flags().BoolVar(&eventsRaw, "raw", false, "print raw log topics")
}
