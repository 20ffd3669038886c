package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/davesmith10/combine3n1/internal/imageio"
	"github.com/davesmith10/combine3n1/internal/pipeline"
	"github.com/spf13/cobra"
)

var logger *slog.Logger

var rootCmd = &cobra.Command{
	Use:   "combine3n1 <three_channel_image> <one_channel_image> <output_image>",
	Short: "Combine a color image and a one-channel mask into an RGBA image",
	Long: `Combine takes red, green and blue from the first image and alpha from the
first channel of the second image. Both images must have the same size.
The output format is chosen by the extension of the output path.`,
	Args:              cobra.ExactArgs(3),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
	RunE:              runCombine,
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.Flags().Int("quality", imageio.DefaultEncodeOptions.Quality, "JPEG quality (1-100)")
	rootCmd.Flags().String("compression", "default", "PNG compression (default, none, fast, best)")
}

func setupLogger(cmd *cobra.Command, args []string) error {
	levelStr, _ := cmd.Flags().GetString("log-level")

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(levelStr))); err != nil {
		return fmt.Errorf("invalid log level %q", levelStr)
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

func runCombine(cmd *cobra.Command, args []string) error {
	colorPath, maskPath, outputPath := args[0], args[1], args[2]
	quality, _ := cmd.Flags().GetInt("quality")
	compressionStr, _ := cmd.Flags().GetString("compression")

	if err := imageio.ValidateQuality(quality); err != nil {
		return err
	}
	compression, err := imageio.ParseCompression(compressionStr)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(colorPath, maskPath, outputPath, pipeline.Options{
		Encode: imageio.EncodeOptions{
			Quality:     quality,
			Compression: compression,
		},
		Logger: logger,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Combined %dx%d RGB + mask → %s (%s, %d bytes)\n",
		result.Width, result.Height, outputPath, result.Format, len(result.Data))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
