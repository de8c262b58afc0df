package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	steganography "github.com/Optimusprime44/Steganography"
	"github.com/Optimusprime44/Steganography/imageio"
)

func newDecodeCommand(ctx *commandContext) *cobra.Command {
	var inPath, outPath string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Recover a hidden message from an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			stream, format, err := imageio.Load(inPath)
			if err != nil {
				return err
			}
			logger.Debug("image loaded", "path", inPath, "format", format, "samples", stream.Len())

			text, err := steganography.Extract(stream.Samples)
			if err != nil {
				return fmt.Errorf("decode message: %w", err)
			}
			logger.Info("message decoded", "input", inPath, "characters", len([]rune(text)))

			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
					return fmt.Errorf("write message: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Decoded message written to %s\n", outPath)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inPath, "in", "i", "", "Image holding the message")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the message to a file instead of stdout")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
