package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
		{ActionMoveUp, []string{"k", "up"}, "Move up", "feed"},
	})

	tests := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"k", ActionMoveUp},
		{"up", ActionMoveUp},
		{"unknown", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := r.Resolve(tt.key); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestResolver_LaterBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionPlay, []string{"enter"}, "Play", "feed"},
		{ActionConfirm, []string{"enter"}, "Confirm", "popup"},
	})
	if got := r.Resolve("enter"); got != ActionConfirm {
		t.Errorf("Resolve(enter) = %q, want %q", got, ActionConfirm)
	}
}

func TestResolver_KeysFor_Deduplicates(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionStop, []string{"s"}, "Stop", "playback"},
		{ActionStop, []string{"s", "x"}, "Stop", "feed"},
	})
	if got := r.KeysFor(ActionStop); !slices.Equal(got, []string{"s", "x"}) {
		t.Errorf("KeysFor(stop) = %v, want [s x]", got)
	}
}

func TestForContexts_MainView(t *testing.T) {
	r := ForContexts("global", "feed", "playback")

	tests := map[string]Action{
		"enter":       ActionPlay,
		" ":           ActionPlayPause,
		"space":       ActionPlayPause,
		"shift+right": ActionSeekForward,
		"shift+left":  ActionSeekBack,
		"+":           ActionVolumeUp,
		"-":           ActionVolumeDown,
		"L":           ActionLike,
		"a":           ActionAnalytics,
		"v":           ActionTogglePlayerDisplay,
		"esc":         "",
	}
	for key, want := range tests {
		if got := r.Resolve(key); got != want {
			t.Errorf("Resolve(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestBindings_NoDuplicateKeysWithinContext(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range Bindings {
		for _, k := range b.Keys {
			id := b.Context + "/" + k
			if prev, ok := seen[id]; ok && prev != b.Action {
				t.Errorf("key %q bound to %q and %q in %s", k, prev, b.Action, b.Context)
			}
			seen[id] = b.Action
		}
	}
}
