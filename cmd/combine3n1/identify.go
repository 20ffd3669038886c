package main

import (
	"fmt"
	"os"

	"github.com/davesmith10/combine3n1/internal/imageio"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect image dimensions and color model",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := imageio.Inspect(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:        %s\n", path)
	fmt.Fprintf(out, "Format:      %s\n", info.Format)
	fmt.Fprintf(out, "Dimensions:  %d x %d\n", info.Width, info.Height)
	fmt.Fprintf(out, "Color model: %s\n", info.ColorModel)
	fmt.Fprintf(out, "Channels:    %d\n", info.Channels)
	fmt.Fprintf(out, "File size:   %d bytes\n", st.Size())
	return nil
}
