package cli

import (
	"fmt"

	"github.com/AntonioJCosta/tinysh/internal/core/domain/command"
	"github.com/AntonioJCosta/tinysh/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// builtinDescriptions holds the one-line help shown by the builtins subcommand.
var builtinDescriptions = map[string]string{
	"cd":   "Change the working directory; no argument or ~ goes home.",
	"echo": "Print the arguments separated by single spaces.",
	"exit": "Leave the shell with an optional numeric status.",
	"pwd":  "Print the working directory.",
	"type": "Tell whether a name is a builtin or where it is on PATH.",
}

// NewBuiltinsCommand creates the 'builtins' subcommand.
func NewBuiltinsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "builtins",
		Short: "List the commands built into the shell.",
		Args:  cobra.NoArgs,
		RunE:  runBuiltinsCmd,
	}
}

func runBuiltinsCmd(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.HeaderColor("Shell builtins:"))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Builtin", "Description"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, name := range command.BuiltinNames {
		table.Append([]string{ui.BuiltinNameColor(name), ui.DetailColor(builtinDescriptions[name])})
	}
	table.Render()

	fmt.Fprintln(out, ui.InfoColor("Any other name is looked up on PATH."))
	return nil
}
