package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"telecine/internal/media/probe"
	"telecine/internal/media/track"
	"telecine/internal/selection"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var (
		asJSON      bool
		highQuality bool
		languages   []string
	)

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show a file's streams and the selection plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			records, err := probe.Inspect(cmd.Context(), cfg.Tools.MediaInfo, args[0])
			if err != nil {
				return err
			}

			if asJSON {
				data, err := json.MarshalIndent(records, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			tracks := track.Normalize(records)
			if len(languages) == 0 {
				languages = cfg.Encoding.Languages
			}
			sel := selection.Select(tracks, languages, highQuality)

			fmt.Fprintln(cmd.OutOrStdout(), renderTrackTable(tracks, sel))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw probe records as JSON")
	cmd.Flags().BoolVar(&highQuality, "high-quality", false, "Plan with surround-audio inclusion")
	cmd.Flags().StringSliceVarP(&languages, "language", "l", nil, "Preferred languages in order")

	return cmd
}

func renderTrackTable(tracks []track.Track, sel selection.Result) string {
	selected := map[int]string{}
	if sel.Video != nil {
		selected[sel.Video.Index] = "video"
	}
	for _, t := range sel.Audio {
		selected[t.Index] = "audio"
	}
	for _, t := range sel.Subtitles {
		label := "full"
		if sel.ForcedSubtitles[t.Index] {
			label = "forced"
		}
		selected[t.Index] = label
	}

	headers := []string{"Idx", "Type", "Format", "Language", "Detail", "Bitrate", "Size", "Selected"}
	rows := make([][]string, 0, len(tracks))
	for _, t := range tracks {
		if t.Type == track.TypeGeneral {
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(t.Index),
			string(t.Type),
			t.Format,
			t.Language,
			trackDetail(t),
			intOrDash(t.BitrateKb, "kb/s"),
			intOrDash(t.SizeMB, "MB"),
			selected[t.Index],
		})
	}
	for _, t := range sel.Attachments {
		rows = append(rows, []string{
			strconv.Itoa(t.Index),
			string(t.Type),
			"", "", t.Title, "", "", "font",
		})
	}
	return renderTable(headers, rows, 1, 6, 7)
}

func trackDetail(t track.Track) string {
	switch t.Type {
	case track.TypeVideo:
		detail := fmt.Sprintf("%dx%d", t.Width, t.Height)
		if t.Interlaced() {
			detail += " interlaced"
		}
		if t.HDRFormat != "" {
			detail += " HDR"
		}
		return detail
	case track.TypeAudio:
		return fmt.Sprintf("%dch", t.Channels)
	case track.TypeText:
		if t.Forced {
			return "forced"
		}
	}
	return ""
}

func intOrDash(value *int, unit string) string {
	if value == nil {
		return "-"
	}
	return fmt.Sprintf("%d %s", *value, unit)
}
