package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"telecine/internal/compile"
	"telecine/internal/deps"
	"telecine/internal/encoder"
	"telecine/internal/workflow"
)

func newEncodeCommand(ctx *commandContext) *cobra.Command {
	var (
		outputDir   string
		container   string
		codecFlag   string
		formatFlag  string
		remux       bool
		copyVideo   bool
		copyAudio   bool
		highQuality bool
		languages   []string
	)

	cmd := &cobra.Command{
		Use:   "encode <file>...",
		Short: "Encode one or more files into the output directory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Requirements(cfg))
			if missing := deps.MissingRequired(statuses); len(missing) > 0 {
				return fmt.Errorf("missing required tools: %s (run `telecine deps`)", strings.Join(missing, ", "))
			}

			if codecFlag == "" {
				codecFlag = cfg.Encoding.Codec
			}
			codec, err := compile.ParseCodec(codecFlag)
			if err != nil {
				return err
			}
			if formatFlag == "" {
				formatFlag = cfg.Encoding.Format
			}
			format, err := compile.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			if outputDir == "" {
				outputDir = cfg.Paths.OutputDir
			}
			if !highQuality {
				highQuality = cfg.Encoding.HighQuality
			}

			runner := encoder.New(cfg.Tools.FFmpeg, cfg.Tools.MKVPropEdit, logger)
			enc := workflow.NewEncoder(cfg, runner, logger)

			template := workflow.EncodeRequest{
				OutputDir:   outputDir,
				Container:   container,
				Codec:       codec,
				Format:      format,
				Remux:       remux,
				CopyVideo:   copyVideo,
				CopyAudio:   copyAudio,
				HighQuality: highQuality,
				Languages:   languages,
			}

			results := enc.RunBatch(cmd.Context(), args, template)
			failed := 0
			for _, res := range results {
				if res.Err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "failed: %s: %v\n", res.InputPath, res.Err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "encoded: %s\n", res.Result.OutputPath)
				if res.Result.TagWarning != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: tag edits failed for %s: %v\n",
						res.Result.OutputPath, res.Result.TagWarning)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (defaults to paths.output_dir)")
	cmd.Flags().StringVar(&container, "container", "mkv", "Output container (mkv or mp4)")
	cmd.Flags().StringVar(&codecFlag, "codec", "", "Target video codec (defaults to encoding.codec)")
	cmd.Flags().StringVar(&formatFlag, "format", "", "Target resolution: 720p, 1080p, or none")
	cmd.Flags().BoolVar(&remux, "remux", false, "Copy every stream instead of encoding")
	cmd.Flags().BoolVar(&copyVideo, "copy-video", false, "Copy the video stream, encode the rest")
	cmd.Flags().BoolVar(&copyAudio, "copy-audio", false, "Copy audio streams, encode the rest")
	cmd.Flags().BoolVar(&highQuality, "high-quality", false, "Also keep the best surround track per language")
	cmd.Flags().StringSliceVarP(&languages, "language", "l", nil, "Preferred languages in order (defaults to encoding.languages)")

	return cmd
}
