// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"polltick.org/app"
	"polltick.org/io/key"
	"polltick.org/platform/headless"
)

var keysFull bool

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List logical keys, their scancodes and names",
	Long: `keys lists every logical key with the scancode the keyboard reader
samples for it and the name the key namer resolves. Names come from the
headless backend, which uses the US layout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		opts, err := options(cfg, logger)
		if err != nil {
			return err
		}
		if keysFull {
			opts = append(opts, app.FullKeyNames())
		}
		return listKeys(cmd.OutOrStdout(), app.New(headless.New(), opts...))
	},
}

func init() {
	keysCmd.Flags().BoolVar(&keysFull, "full", false, "name every addressable key")
}

func listKeys(out io.Writer, bind *app.Binding) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tSCANCODE\tNAME")
	for _, k := range key.All() {
		sc := "-"
		if s, ok := app.KeyboardScancode(k); ok {
			sc = fmt.Sprintf("%d", s)
		}
		name := "-"
		if n, ok := bind.Namer.Name(k); ok {
			name = n
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", k, sc, name)
	}
	return tw.Flush()
}
