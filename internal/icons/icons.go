// Package icons selects the glyph set used by the UI.
package icons

// Style names an icon set, as set by the "icons" config key.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds one glyph per UI concept.
type Icons struct {
	Play       string
	Pause      string
	Loading    string
	Volume     string
	VolumeMute string
	Like       string
	Views      string
	Comments   string
	Downloads  string
	Free       string
}

var (
	nerdIcons = Icons{
		Play:       "\uf04b", // nf-fa-play
		Pause:      "\uf04c", // nf-fa-pause
		Loading:    "\uf110", // nf-fa-spinner
		Volume:     "\uf028", // nf-fa-volume_up
		VolumeMute: "\uf026", // nf-fa-volume_off
		Like:       "\uf004", // nf-fa-heart
		Views:      "\uf06e", // nf-fa-eye
		Comments:   "\uf075", // nf-fa-comment
		Downloads:  "\uf019", // nf-fa-download
		Free:       "\uf09c", // nf-fa-unlock
	}

	unicodeIcons = Icons{
		Play:       "▶",
		Pause:      "⏸",
		Loading:    "…",
		Volume:     "🔊",
		VolumeMute: "🔇",
		Like:       "♥",
		Views:      "👁",
		Comments:   "💬",
		Downloads:  "⬇",
		Free:       "★",
	}

	noneIcons = Icons{
		Play:       ">",
		Pause:      "=",
		Loading:    "~",
		Volume:     "vol",
		VolumeMute: "mute",
		Like:       "<3",
		Views:      "v",
		Comments:   "c",
		Downloads:  "d",
		Free:       "free",
	}

	current = unicodeIcons
)

// Init selects the icon set. Unknown styles fall back to unicode.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// Current returns the active icon set.
func Current() Icons {
	return current
}

func Play() string       { return current.Play }
func Pause() string      { return current.Pause }
func Loading() string    { return current.Loading }
func Volume() string     { return current.Volume }
func VolumeMute() string { return current.VolumeMute }
func Like() string       { return current.Like }
func Views() string      { return current.Views }
func Comments() string   { return current.Comments }
func Downloads() string  { return current.Downloads }
func Free() string       { return current.Free }
