package compile

import (
	"fmt"
	"strings"

	"telecine/internal/media/track"
)

// filterChain derives the combined deinterlace+scale filter string, or ""
// when the source needs neither. Deinterlacing always precedes scaling.
func filterChain(t *track.Track, format Format, hardware bool) string {
	scale := format != FormatNone && t.Height != 0 && t.Height != format.TargetHeight()
	deinterlace := t.Interlaced()
	if !scale && !deinterlace {
		return ""
	}

	filters := make([]string, 0, 3)
	if hardware {
		// CUDA filters need frames in GPU memory with a known pixel format;
		// software-decoded sources arrive in system memory.
		filters = append(filters, "format=yuv420p", "hwupload")
		if deinterlace {
			filters = append(filters, "yadif_cuda=0:-1:0")
		}
		if scale {
			filters = append(filters, fmt.Sprintf("scale_cuda=-2:%d:interp_algo=lanczos", format.TargetHeight()))
		}
		return strings.Join(filters, ",")
	}

	if deinterlace {
		filters = append(filters, "yadif=0:-1:0")
	}
	if scale {
		filters = append(filters, fmt.Sprintf("scale=-2:%d:flags=lanczos", format.TargetHeight()))
	}
	return strings.Join(filters, ",")
}
