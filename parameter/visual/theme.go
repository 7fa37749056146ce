package visual

import "strings"

// Theme is the complete visual configuration passed to the renderer each frame
type Theme struct {
	Name       string
	Scheme     Scheme
	Border     RGB
	Highlight  RGB // most-recent particle override
	Text       RGB
	DimText    RGB
	Particle   RGB // dot color when attribute coloring is off
	Background RGB
}

// ThemeID identifies a built-in theme
type ThemeID string

const (
	ThemeDefault   ThemeID = "default"
	ThemeLagoon    ThemeID = "lagoon"
	ThemeBluemono  ThemeID = "bluemono"
	ThemeViolet    ThemeID = "violet"
	ThemeHarvest   ThemeID = "harvest"
	ThemeMidnight  ThemeID = "midnight"
	ThemeRainbow   ThemeID = "rainbow"
	ThemeFrost     ThemeID = "frost"
	ThemeDeepSpace ThemeID = "deepspace"
	ThemeSunset    ThemeID = "sunset"
	ThemeMatrix    ThemeID = "matrix"
	ThemeAmber     ThemeID = "amber"
)

// Themes in cycling order
var themeOrder = [...]ThemeID{
	ThemeDefault, ThemeLagoon, ThemeBluemono, ThemeViolet, ThemeHarvest, ThemeMidnight,
	ThemeRainbow, ThemeFrost, ThemeDeepSpace, ThemeSunset, ThemeMatrix, ThemeAmber,
}

var themes = map[ThemeID]Theme{
	ThemeDefault: {
		Name: "Default", Scheme: SchemeNeon,
		Border: Cyan, Highlight: Yellow, Text: White, DimText: Gray,
		Particle: Cyan, Background: NearBlack,
	},
	ThemeLagoon: {
		Name: "Lagoon", Scheme: SchemeLagoon,
		Border: MustHex("#31748F"), Highlight: MustHex("#F6C177"), Text: MustHex("#E0DEF4"), DimText: MustHex("#908CAA"),
		Particle: MustHex("#9CCFD8"), Background: MustHex("#191724"),
	},
	ThemeBluemono: {
		Name: "Bluemono", Scheme: SchemeOcean,
		Border: Black, Highlight: Black, Text: Black, DimText: Black,
		Particle: RGB{30, 85, 130}, Background: MustHex("#FCF6F8"),
	},
	ThemeViolet: {
		Name: "Violet", Scheme: SchemeViolet,
		Border: MustHex("#BD93F9"), Highlight: MustHex("#F1FA8C"), Text: MustHex("#F8F8F2"), DimText: MustHex("#6272A4"),
		Particle: MustHex("#8BE9FD"), Background: MustHex("#282A36"),
	},
	ThemeHarvest: {
		Name: "Harvest", Scheme: SchemeHarvest,
		Border: MustHex("#83A598"), Highlight: MustHex("#FABD2F"), Text: MustHex("#EBDBB2"), DimText: MustHex("#928374"),
		Particle: MustHex("#FE8019"), Background: MustHex("#282828"),
	},
	ThemeMidnight: {
		Name: "Midnight", Scheme: SchemeMidnight,
		Border: MustHex("#7AA2F7"), Highlight: MustHex("#E0AF68"), Text: MustHex("#A9B1D6"), DimText: MustHex("#565F89"),
		Particle: MustHex("#7AA2F7"), Background: MustHex("#1A1B26"),
	},
	ThemeRainbow: {
		Name: "Rainbow", Scheme: SchemePlasma,
		Border: MustHex("#89B4FA"), Highlight: MustHex("#F9E2AF"), Text: MustHex("#CDD6F4"), DimText: MustHex("#6C7086"),
		Particle: MustHex("#CBA6F7"), Background: MustHex("#1E1E2E"),
	},
	ThemeFrost: {
		Name: "Frost", Scheme: SchemeFrost,
		Border: MustHex("#88C0D0"), Highlight: MustHex("#EBCB8B"), Text: MustHex("#ECEFF4"), DimText: MustHex("#4C566A"),
		Particle: MustHex("#88C0D0"), Background: MustHex("#2E3440"),
	},
	ThemeDeepSpace: {
		Name: "Deep Space", Scheme: SchemeNeon,
		Border: MustHex("#58A6FF"), Highlight: MustHex("#FFA657"), Text: MustHex("#C9D1D9"), DimText: MustHex("#6E7681"),
		Particle: MustHex("#58A6FF"), Background: MustHex("#0D1117"),
	},
	ThemeSunset: {
		Name: "Sunset", Scheme: SchemeSunset,
		Border: MustHex("#FF6B6B"), Highlight: MustHex("#FFE66D"), Text: MustHex("#F7FFF7"), DimText: RGB{180, 160, 180},
		Particle: MustHex("#FFA07A"), Background: MustHex("#1A1423"),
	},
	ThemeMatrix: {
		Name: "Matrix", Scheme: SchemeMatrix,
		Border: MustHex("#00FF41"), Highlight: MustHex("#ADFF2F"), Text: MustHex("#00FF41"), DimText: RGB{0, 128, 0},
		Particle: MustHex("#00FF41"), Background: MustHex("#0A0A0A"),
	},
	ThemeAmber: {
		Name: "Amber", Scheme: SchemeAmber,
		Border: MustHex("#FFB000"), Highlight: MustHex("#FFCC00"), Text: RGB{255, 200, 100}, DimText: RGB{180, 120, 50},
		Particle: MustHex("#FFB000"), Background: MustHex("#1A1A0A"),
	},
}

// Valid reports whether id names a built-in theme
func (id ThemeID) Valid() bool {
	_, ok := themes[id]
	return ok
}

// Theme resolves the id, falling back to the default theme
func (id ThemeID) Theme() Theme {
	if t, ok := themes[id]; ok {
		return t
	}
	return themes[ThemeDefault]
}

func (id ThemeID) Next() ThemeID { return id.step(1) }
func (id ThemeID) Prev() ThemeID { return id.step(-1) }

func (id ThemeID) step(delta int) ThemeID {
	n := len(themeOrder)
	idx := 0
	for i, t := range themeOrder {
		if t == id {
			idx = i
			break
		}
	}
	return themeOrder[((idx+delta)%n+n)%n]
}

// ParseTheme accepts display names with any casing and separators ("Deep Space", "deep-space")
func ParseTheme(s string) (ThemeID, bool) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	if key == "space" {
		key = string(ThemeDeepSpace)
	}
	id := ThemeID(key)
	if id.Valid() {
		return id, true
	}
	return ThemeDefault, false
}

// ThemeIDs returns the built-in themes in cycling order
func ThemeIDs() []ThemeID {
	out := make([]ThemeID, len(themeOrder))
	copy(out, themeOrder[:])
	return out
}
