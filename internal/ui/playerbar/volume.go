package playerbar

import (
	"fmt"

	"github.com/llehouerou/soundfeed/internal/icons"
)

// RenderVolume renders the volume indicator, e.g. "🔊  80%".
func RenderVolume(level float64) string {
	icon := icons.Volume()
	if level <= 0 {
		icon = icons.VolumeMute()
	}
	return timeStyle().Render(fmt.Sprintf("%s %3d%%", icon, int(level*100+0.5)))
}
