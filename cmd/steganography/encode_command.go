package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	steganography "github.com/Optimusprime44/Steganography"
	"github.com/Optimusprime44/Steganography/imageio"
)

func newEncodeCommand(ctx *commandContext) *cobra.Command {
	var inPath, outPath, message, messageFile string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Hide a message in an image",
		Long: "Hide a message in the least-significant bits of an image.\n\n" +
			"Every character takes 8 samples and the end marker takes 16, so an\n" +
			"RGB image of W x H pixels holds (3*W*H - 16) / 8 characters.\n" +
			"The output must be PNG, BMP or TIFF.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			text, err := readMessage(message, messageFile)
			if err != nil {
				return err
			}
			target := outputPath(outPath, cfg.OutputFormat)
			if _, err := imageio.Format(target); err != nil {
				return err
			}
			if !overwrite && !cfg.Overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("output file already exists at %s (use --overwrite to replace it)", target)
				} else if !errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("check output path: %w", err)
				}
			}

			stream, format, err := imageio.Load(inPath)
			if err != nil {
				return err
			}
			logger.Debug("image loaded",
				"path", inPath,
				"format", format,
				"bounds", stream.Bounds().String(),
				"channels", stream.Channels(),
				"samples", stream.Len(),
			)
			if _, err := imageio.FormatFor(target, stream.Channels()); err != nil {
				return err
			}

			if _, err := steganography.Embed(stream.Samples, text); err != nil {
				if errors.Is(err, steganography.ErrCapacityExceeded) {
					logger.Error("message does not fit",
						"characters", len([]rune(text)),
						"capacity", steganography.Capacity(stream.Len()),
					)
				}
				return fmt.Errorf("encode message: %w", err)
			}
			if err := imageio.Save(target, stream); err != nil {
				return err
			}
			logger.Info("message encoded",
				"input", inPath,
				"output", target,
				"characters", len([]rune(text)),
				"samples_used", 8*len([]rune(text))+steganography.MarkerLen,
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Message encoded and saved as %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inPath, "in", "i", "", "Image to hide the message in")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Path for the encoded image (.png, .bmp, .tif)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Message to hide")
	cmd.Flags().StringVarP(&messageFile, "message-file", "f", "", "Read the message from a file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace the output file if it exists")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	cmd.MarkFlagsMutuallyExclusive("message", "message-file")
	return cmd
}

func readMessage(message, messageFile string) (string, error) {
	text := message
	if messageFile != "" {
		data, err := os.ReadFile(messageFile)
		if err != nil {
			return "", fmt.Errorf("read message file: %w", err)
		}
		text = string(data)
	}
	if text == "" {
		return "", errors.New("please enter a message to encode (--message or --message-file)")
	}
	return text, nil
}

// outputPath appends the configured extension when path has none.
func outputPath(path, format string) string {
	if filepath.Ext(path) != "" {
		return path
	}
	return path + "." + strings.TrimPrefix(format, ".")
}
