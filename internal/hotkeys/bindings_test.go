package hotkeys

import "testing"

func TestDefaultBindingsTable(t *testing.T) {
	bindings := DefaultBindings()
	if len(bindings) != 5 {
		t.Fatalf("expected 5 bindings, got %d", len(bindings))
	}

	wantActions := map[VKey]Action{
		vkNumpad0: ActionToggleMute,
		vkNumpad1: ActionToggleRouteA1,
		vkNumpad2: ActionToggleRouteA2,
		vkNumpad3: ActionGainDown,
		vkNumpad6: ActionGainUp,
	}
	seen := map[VKey]bool{}
	for _, binding := range bindings {
		want, ok := wantActions[binding.Key()]
		if !ok {
			t.Fatalf("unexpected key %#x in table", binding.Key())
		}
		if binding.Action() != want {
			t.Fatalf("key %#x: got action %v, want %v", binding.Key(), binding.Action(), want)
		}
		if binding.Modifiers()&modAlt == 0 {
			t.Fatalf("binding %s missing Alt modifier", binding.Label())
		}
		if binding.Label() == "" {
			t.Fatal("binding missing label")
		}
		if seen[binding.Key()] {
			t.Fatalf("duplicate key %#x", binding.Key())
		}
		seen[binding.Key()] = true
	}
}

func TestGainActionsRepeat(t *testing.T) {
	// Holding the gain keys should keep stepping; only the toggles are
	// registered no-repeat.
	for _, binding := range DefaultBindings() {
		repeats := binding.Modifiers()&modNoRepeat == 0
		switch binding.Action() {
		case ActionGainDown, ActionGainUp:
			if !repeats {
				t.Fatalf("%s should auto-repeat", binding.Label())
			}
		default:
			if repeats {
				t.Fatalf("%s should not auto-repeat", binding.Label())
			}
		}
	}
}

func TestActionStrings(t *testing.T) {
	cases := map[Action]string{
		ActionToggleMute:    "toggle_mute",
		ActionToggleRouteA1: "toggle_route_a1",
		ActionToggleRouteA2: "toggle_route_a2",
		ActionGainDown:      "gain_down",
		ActionGainUp:        "gain_up",
		Action(99):          "unknown",
	}
	for action, want := range cases {
		if got := action.String(); got != want {
			t.Fatalf("Action(%d).String(): got %q, want %q", action, got, want)
		}
	}
}
