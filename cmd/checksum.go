package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/sha3"

	"github.com/Mohsinsiddi/catsale/internal/ui"
)

var checksumCmd = &cobra.Command{
	Use:   "checksum <address>",
	Short: "Validate or convert an address to EIP-55 checksum format",
	Long: `Convert an address to its EIP-55 checksummed form and report whether
the input was already correctly checksummed. Useful before pushing a
whitelist file.

Examples:
  catsale checksum 0x70997970c51812dc3a010c7d01b50e0d17dc79c8
  catsale checksum 0x70997970C51812dc3A010C7d01b50e0d17dc79C8`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]

		clean := strings.TrimPrefix(strings.TrimPrefix(input, "0x"), "0X")
		if len(clean) != 40 {
			return fmt.Errorf("invalid address length: expected 40 hex chars, got %d", len(clean))
		}
		if _, err := hex.DecodeString(clean); err != nil {
			return fmt.Errorf("invalid hex address: %w", err)
		}

		checksummed := toChecksumAddress(clean)

		pairs := [][2]string{
			{"Input", input},
			{"Checksummed", ui.Addr(checksummed)},
		}
		switch {
		case input == checksummed:
			pairs = append(pairs, [2]string{"Valid", ui.Success("address is correctly checksummed")})
		case strings.EqualFold(input, checksummed):
			pairs = append(pairs, [2]string{"Valid", ui.Warn("valid address but not checksummed")})
		default:
			pairs = append(pairs, [2]string{"Valid", ui.Err("checksum mismatch")})
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.KeyValueBlock("EIP-55 Checksum", pairs))
		return nil
	},
}

// toChecksumAddress implements EIP-55 mixed-case checksum encoding.
func toChecksumAddress(addr string) string {
	lower := strings.ToLower(addr)

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(lower))
	hash := hex.EncodeToString(h.Sum(nil))

	var result strings.Builder
	result.WriteString("0x")
	for i, c := range lower {
		// Letters whose hash nibble is >= 8 are uppercased.
		if c >= 'a' && c <= 'f' && hash[i] >= '8' {
			result.WriteByte(byte(c - 32))
		} else {
			result.WriteByte(byte(c))
		}
	}
	return result.String()
}
