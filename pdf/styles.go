package pdf

// Align selects horizontal paragraph alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Style is one entry of the read-only style table. Leading is the distance
// between baselines; Indent shifts the left edge; SpaceAfter is added below
// the block.
type Style struct {
	Family     string
	Weight     string // "", "B", "I", "BI"
	Size       float64
	Leading    float64
	Align      Align
	Indent     float64
	SpaceAfter float64
	Color      [3]int // zero value renders black
}

// Styles is the process-wide style table, built once and never mutated.
// The letter styles are deliberately compact (9 pt) so each letter fits a
// single decorated page.
var Styles = struct {
	Header         Style
	ContractHeader Style
	Body           Style
	Client         Style
	SectionHeader  Style
	ParamList      Style
	Farewell       Style
	LetterHeader   Style
	LetterSub      Style
	LetterBody     Style
	LetterBullet   Style
	LetterCheck    Style
	LetterPS       Style
}{
	Header:         Style{Family: "Helvetica", Weight: "B", Size: 14, Leading: 17, Align: AlignCenter},
	ContractHeader: Style{Family: "Helvetica", Weight: "BI", Size: 15, Leading: 18, Align: AlignCenter},
	Body:           Style{Family: "Helvetica", Size: 11, Leading: 15},
	Client:         Style{Family: "Helvetica", Weight: "B", Size: 13, Leading: 16, SpaceAfter: 10},
	SectionHeader:  Style{Family: "Helvetica", Weight: "B", Size: 15, Leading: 18, SpaceAfter: 12},
	ParamList:      Style{Family: "Helvetica", Size: 11, Leading: 15, Indent: 1.5 * Cm, SpaceAfter: 2},
	Farewell:       Style{Family: "Helvetica", Size: 12, Leading: 15, SpaceAfter: 18},
	LetterHeader:   Style{Family: "Helvetica", Weight: "B", Size: 12, Leading: 14, Align: AlignCenter, SpaceAfter: 2},
	LetterSub:      Style{Family: "Helvetica", Weight: "B", Size: 9, Leading: 11, Align: AlignCenter, SpaceAfter: 1},
	LetterBody:     Style{Family: "Helvetica", Size: 9, Leading: 11, SpaceAfter: 1},
	LetterBullet:   Style{Family: "Helvetica", Size: 9, Leading: 11, Indent: 18, SpaceAfter: 1},
	LetterCheck:    Style{Family: "Helvetica", Size: 9, Leading: 11, Indent: 18, SpaceAfter: 1},
	LetterPS:       Style{Family: "Helvetica", Size: 9, Leading: 11, SpaceAfter: 1, Color: [3]int{128, 128, 128}},
}

// HexRGB parses "#rrggbb" into draw-color components. Malformed input
// falls back to black.
func HexRGB(s string) [3]int {
	if len(s) != 7 || s[0] != '#' {
		return [3]int{}
	}
	var rgb [3]int
	for i := 0; i < 3; i++ {
		hi, okHi := hexVal(s[1+2*i])
		lo, okLo := hexVal(s[2+2*i])
		if !okHi || !okLo {
			return [3]int{}
		}
		rgb[i] = hi<<4 | lo
	}
	return rgb
}

func hexVal(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	}
	return 0, false
}
