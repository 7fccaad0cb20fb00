package selection

import (
	"telecine/internal/language"
	"telecine/internal/media/track"
)

// maxCompatChannels caps the channel count of the always-selected
// compatibility audio track. Wider layouts are only kept in high-quality
// mode, as an additional track.
const maxCompatChannels = 6

// Result is the outcome of stream auto-selection. Audio and Subtitles are
// in selection order, which later becomes output stream order. Every index
// in ForcedSubtitles also appears in Subtitles.
type Result struct {
	Video           *track.Track
	Audio           []track.Track
	Subtitles       []track.Track
	ForcedSubtitles map[int]bool
	Attachments     []track.Track
}

// AudioIndices returns the selected audio stream indices in order.
func (r Result) AudioIndices() []int {
	indices := make([]int, 0, len(r.Audio))
	for _, t := range r.Audio {
		indices = append(indices, t.Index)
	}
	return indices
}

// SubtitleIndices returns the selected subtitle stream indices in order.
func (r Result) SubtitleIndices() []int {
	indices := make([]int, 0, len(r.Subtitles))
	for _, t := range r.Subtitles {
		indices = append(indices, t.Index)
	}
	return indices
}

// AttachmentIndices returns the synthetic attachment indices in order.
func (r Result) AttachmentIndices() []int {
	indices := make([]int, 0, len(r.Attachments))
	for _, t := range r.Attachments {
		indices = append(indices, t.Index)
	}
	return indices
}

// Select chooses the streams to keep. languages is the caller's preference
// order; highQuality additionally keeps the best surround track per
// language alongside the compatibility track.
func Select(tracks []track.Track, languages []string, highQuality bool) Result {
	result := Result{ForcedSubtitles: make(map[int]bool)}
	result.Video = firstVideo(tracks)
	result.Audio = selectAudio(tracks, languages, highQuality)
	result.Subtitles = selectSubtitles(tracks, languages, result.ForcedSubtitles)
	result.Attachments = selectAttachments(tracks, result.Video)
	return result
}

func firstVideo(tracks []track.Track) *track.Track {
	for i := range tracks {
		if tracks[i].Type == track.TypeVideo {
			return &tracks[i]
		}
	}
	return nil
}

func selectAudio(tracks []track.Track, languages []string, highQuality bool) []track.Track {
	audio := byType(tracks, track.TypeAudio)
	if len(audio) == 0 {
		return nil
	}

	selected := make([]track.Track, 0, 2)
	seen := make(map[int]bool)
	add := func(t *track.Track) {
		if t == nil || seen[t.Index] {
			return
		}
		seen[t.Index] = true
		selected = append(selected, *t)
	}

	for _, lang := range languages {
		matches := matchLanguage(audio, lang)
		if len(matches) == 0 {
			continue
		}
		if highQuality {
			add(highestBitrate(matches, 0))
		}
		add(highestBitrate(matches, maxCompatChannels))
	}

	if len(selected) == 0 {
		// No preferred language matched: keep the single best track so the
		// output is never silent.
		add(bestOverallAudio(audio))
	}
	return selected
}

// highestBitrate returns the highest-bitrate track, optionally restricted
// to a channel ceiling (0 means unrestricted). Earlier tracks win ties.
func highestBitrate(tracks []track.Track, channelCap int) *track.Track {
	var best *track.Track
	for i := range tracks {
		t := &tracks[i]
		if channelCap > 0 && t.Channels > channelCap {
			continue
		}
		if best == nil || t.BitrateOrZero() > best.BitrateOrZero() {
			best = t
		}
	}
	return best
}

func bestOverallAudio(audio []track.Track) *track.Track {
	var best *track.Track
	for i := range audio {
		t := &audio[i]
		if best == nil {
			best = t
			continue
		}
		if t.Channels > best.Channels ||
			(t.Channels == best.Channels && t.BitrateOrZero() > best.BitrateOrZero()) {
			best = t
		}
	}
	return best
}

func selectSubtitles(tracks []track.Track, languages []string, forced map[int]bool) []track.Track {
	text := byType(tracks, track.TypeText)
	if len(text) == 0 {
		return nil
	}

	selected := make([]track.Track, 0, 2)
	seen := make(map[int]bool)
	add := func(t *track.Track, isForced bool) {
		if t == nil || seen[t.Index] {
			return
		}
		seen[t.Index] = true
		selected = append(selected, *t)
		if isForced {
			forced[t.Index] = true
		}
	}

	for _, lang := range languages {
		matches := matchLanguage(text, lang)
		switch len(matches) {
		case 0:
			continue
		case 1:
			// A lone candidate is taken as-is; the forced/full heuristic
			// needs at least two tracks to mean anything.
			add(&matches[0], false)
		default:
			if explicit := firstFlaggedForced(matches); explicit != nil {
				add(explicit, true)
				add(largestBySize(without(matches, explicit.Index)), false)
				continue
			}
			smallest := smallestBySize(matches)
			largest := largestBySize(matches)
			if smallest.Index == largest.Index {
				add(smallest, false)
				continue
			}
			add(smallest, true)
			add(largest, false)
		}
	}

	if len(selected) == 0 {
		fallback := bestOverallSubtitle(text)
		add(fallback, fallback.Forced)
	}
	return selected
}

func firstFlaggedForced(tracks []track.Track) *track.Track {
	for i := range tracks {
		if tracks[i].Forced {
			return &tracks[i]
		}
	}
	return nil
}

func smallestBySize(tracks []track.Track) *track.Track {
	var best *track.Track
	for i := range tracks {
		t := &tracks[i]
		if best == nil || t.SizeOrZero() < best.SizeOrZero() {
			best = t
		}
	}
	return best
}

func largestBySize(tracks []track.Track) *track.Track {
	var best *track.Track
	for i := range tracks {
		t := &tracks[i]
		if best == nil || t.SizeOrZero() > best.SizeOrZero() {
			best = t
		}
	}
	return best
}

func bestOverallSubtitle(text []track.Track) *track.Track {
	var best *track.Track
	for i := range text {
		t := &text[i]
		if best == nil {
			best = t
			continue
		}
		if (t.Forced && !best.Forced) ||
			(t.Forced == best.Forced && t.SizeOrZero() > best.SizeOrZero()) {
			best = t
		}
	}
	return best
}

// selectAttachments synthesizes attachment tracks from the container's
// attachment list. The General pseudo-track is authoritative; the video
// track's list is a fallback seen on remuxes that lost container metadata.
func selectAttachments(tracks []track.Track, video *track.Track) []track.Track {
	var names []string
	seen := make(map[string]bool)
	appendNames := func(list []string) {
		for _, name := range list {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	for i := range tracks {
		if tracks[i].Type == track.TypeGeneral {
			appendNames(tracks[i].AttachmentNames())
		}
	}
	if len(names) == 0 && video != nil {
		appendNames(video.AttachmentNames())
	}

	attachments := make([]track.Track, 0, len(names))
	for i, name := range names {
		attachments = append(attachments, track.Track{
			Type:      track.TypeAttachment,
			Index:     i,
			TypeOrder: i + 1,
			Title:     name,
		})
	}
	return attachments
}

func without(tracks []track.Track, index int) []track.Track {
	out := make([]track.Track, 0, len(tracks))
	for _, t := range tracks {
		if t.Index != index {
			out = append(out, t)
		}
	}
	return out
}

func byType(tracks []track.Track, want track.Type) []track.Track {
	out := make([]track.Track, 0, len(tracks))
	for _, t := range tracks {
		if t.Type == want {
			out = append(out, t)
		}
	}
	return out
}

func matchLanguage(tracks []track.Track, lang string) []track.Track {
	out := make([]track.Track, 0, len(tracks))
	for _, t := range tracks {
		if language.Matches(t.Language, lang) {
			out = append(out, t)
		}
	}
	return out
}
