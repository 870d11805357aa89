package parameter

// Themes
const (
	// DefaultThemeColor is the primary color used before any selection
	DefaultThemeColor = "#4af7ff"

	// GoalColor is the fixed goal post color
	GoalColor = "#4af7ff"
)

// ThemePalette is the set of selectable primary colors, cycled in order
var ThemePalette = []string{
	"#4af7ff",
	"#ff4af7",
	"#7aff4a",
	"#ffd24a",
	"#ff6b4a",
	"#b04aff",
}

// Persistence Keys
const (
	KeyPersonalBest = "personalBest"
	KeyDailyBest    = "dailyBest"
	KeyThemeColor   = "themeColor"
)

// DailyDateLayout formats the calendar day a daily best belongs to
const DailyDateLayout = "Mon Jan 02 2006"

// Terminal Layout
const (
	// HUDRows is the number of rows reserved above the arena
	HUDRows = 1

	// CellAspect is the horizontal stretch applied to world x to compensate for tall terminal cells
	CellAspect = 2.0
)
