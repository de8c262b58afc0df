package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Optimusprime44/Steganography/imageio"
	"github.com/Optimusprime44/Steganography/internal/analysis"
)

type inspectReport struct {
	Path     string `json:"path"`
	Format   string `json:"format"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Channels int    `json:"channels"`
	analysis.Report
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var inPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Report capacity and least-significant-bit statistics of an image",
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
			b := stream.Bounds()
			report := inspectReport{
				Path:     inPath,
				Format:   format,
				Width:    b.Dx(),
				Height:   b.Dy(),
				Channels: stream.Channels(),
				Report:   analysis.Analyze(stream.Samples),
			}
			logger.Debug("image analyzed", "path", inPath, "samples", report.Samples)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Image:        %s (%s, %dx%d, %d channels)\n", report.Path, report.Format, report.Width, report.Height, report.Channels)
			fmt.Fprintf(out, "Samples:      %d\n", report.Samples)
			fmt.Fprintf(out, "Capacity:     %d characters\n", report.Capacity)
			fmt.Fprintf(out, "LSB ones:     %.4f\n", report.OnesRatio)
			if report.DegreesOfFreedom > 0 {
				fmt.Fprintf(out, "Chi-square:   %.4f (df=%d, p=%.4f)\n", report.ChiSquare, report.DegreesOfFreedom, report.PValue)
			}
			if report.Marker {
				fmt.Fprintf(out, "End marker:   found after %d bits\n", report.MessageLen)
			} else {
				fmt.Fprintln(out, "End marker:   not found")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inPath, "in", "i", "", "Image to inspect")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
