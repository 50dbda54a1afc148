package quadrant

// Palette maps drawing roles to concrete colors
type Palette struct {
	Background    string
	Grid          string
	Axes          string
	Q1Fill        string
	Q2Fill        string
	Q3Fill        string
	Q4Fill        string
	Text          string
	Title         string
	Insight       string
	InsightBorder string
}

func (p Palette) quadrantFill(q Quadrant) string {
	switch q {
	case Q1:
		return p.Q1Fill
	case Q2:
		return p.Q2Fill
	case Q3:
		return p.Q3Fill
	default:
		return p.Q4Fill
	}
}

var palettes = map[string]Palette{
	"professional": {
		Background:    "#ffffff",
		Grid:          "#e0e0e0",
		Axes:          "#333333",
		Q1Fill:        "#e3f2fd",
		Q2Fill:        "#f3e5f5",
		Q3Fill:        "#fff3e0",
		Q4Fill:        "#e8f5e8",
		Text:          "#333333",
		Title:         "#1a1a1a",
		Insight:       "#1976d2",
		InsightBorder: "#0d47a1",
	},
	"vibrant": {
		Background:    "#fafafa",
		Grid:          "#bdbdbd",
		Axes:          "#212121",
		Q1Fill:        "#ff9800",
		Q2Fill:        "#2196f3",
		Q3Fill:        "#4caf50",
		Q4Fill:        "#f44336",
		Text:          "#212121",
		Title:         "#000000",
		Insight:       "#7b1fa2",
		InsightBorder: "#4a148c",
	},
	"monochrome": {
		Background:    "#ffffff",
		Grid:          "#cccccc",
		Axes:          "#666666",
		Q1Fill:        "#f5f5f5",
		Q2Fill:        "#e0e0e0",
		Q3Fill:        "#d0d0d0",
		Q4Fill:        "#c0c0c0",
		Text:          "#333333",
		Title:         "#000000",
		Insight:       "#555555",
		InsightBorder: "#333333",
	},
}

// PaletteFor resolves a color scheme name; unknown names fall back to
// professional.
func PaletteFor(scheme string) Palette {
	if p, ok := palettes[scheme]; ok {
		return p
	}
	return palettes["professional"]
}
