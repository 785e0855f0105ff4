package hotkeys

// Action names one strip operation a hotkey can invoke.
type Action int

const (
	ActionToggleMute Action = iota
	ActionToggleRouteA1
	ActionToggleRouteA2
	ActionGainDown
	ActionGainUp
)

func (a Action) String() string {
	switch a {
	case ActionToggleMute:
		return "toggle_mute"
	case ActionToggleRouteA1:
		return "toggle_route_a1"
	case ActionToggleRouteA2:
		return "toggle_route_a2"
	case ActionGainDown:
		return "gain_down"
	case ActionGainUp:
		return "gain_up"
	default:
		return "unknown"
	}
}

// GainStepDB is the gain delta applied by the hotkey gain actions.
const GainStepDB = 2.0

// Modifier represents a Win32 hotkey modifier bitmask.
type Modifier uint32

// VKey represents a Win32 virtual-key code.
type VKey uint32

const (
	modAlt      Modifier = 0x0001
	modNoRepeat Modifier = 0x4000

	vkNumpad0 VKey = 0x60
	vkNumpad1 VKey = 0x61
	vkNumpad2 VKey = 0x62
	vkNumpad3 VKey = 0x63
	vkNumpad6 VKey = 0x66
)

// Binding describes one registered global hotkey.
type Binding struct {
	modifiers Modifier
	key       VKey
	label     string
	action    Action
}

// Modifiers returns the modifier bitmask.
func (b Binding) Modifiers() Modifier { return b.modifiers }

// Key returns the virtual-key code.
func (b Binding) Key() VKey { return b.key }

// Label returns the canonical human-readable binding string.
func (b Binding) Label() string { return b.label }

// Action returns the strip operation this binding invokes.
func (b Binding) Action() Action { return b.action }

// DefaultBindings returns the fixed hotkey table: Alt plus Numpad 0/1/2/3/6.
func DefaultBindings() []Binding {
	return []Binding{
		{modifiers: modAlt | modNoRepeat, key: vkNumpad0, label: "Alt+Num 0", action: ActionToggleMute},
		{modifiers: modAlt | modNoRepeat, key: vkNumpad1, label: "Alt+Num 1", action: ActionToggleRouteA1},
		{modifiers: modAlt | modNoRepeat, key: vkNumpad2, label: "Alt+Num 2", action: ActionToggleRouteA2},
		{modifiers: modAlt, key: vkNumpad3, label: "Alt+Num 3", action: ActionGainDown},
		{modifiers: modAlt, key: vkNumpad6, label: "Alt+Num 6", action: ActionGainUp},
	}
}
