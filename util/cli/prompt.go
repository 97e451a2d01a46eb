package cli

import (
	"bufio"

	"github.com/cosmos/cosmos-sdk/client/input"
	"github.com/spf13/cobra"
)

// GetConfirmation writes prompt to the command's stderr and reads a y/n answer
// from its stdin. A closed stdin is an error, not a refusal.
func GetConfirmation(cmd *cobra.Command, prompt string) (bool, error) {
	return input.GetConfirmation(prompt, bufio.NewReader(cmd.InOrStdin()), cmd.ErrOrStderr())
}
