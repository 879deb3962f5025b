package icon

// Icon identifies a UI symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Warn
	Denied
	Channel
	Guide
	Clock
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "✗",
		kaomoji: "(×﹏×)",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "…",
		kaomoji: "(・_・;)",
		squares: "🟨",
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    "",
		plain:   "!",
		kaomoji: "(°ロ°)",
		squares: "🟧",
	},
	Denied: {
		emoji:   "🔒",
		nerd:    "",
		plain:   "#",
		kaomoji: "(ー_ー)!!",
		squares: "🟪",
	},
	Channel: {
		emoji:   "📺",
		nerd:    "",
		plain:   ">",
		kaomoji: "[□_□]",
		squares: "🟦",
	},
	Guide: {
		emoji:   "📰",
		nerd:    "",
		plain:   "=",
		kaomoji: "φ(．．)",
		squares: "🟫",
	},
	Clock: {
		emoji:   "⏰",
		nerd:    "",
		plain:   "@",
		kaomoji: "(¬_¬)",
		squares: "⬜",
	},
}
