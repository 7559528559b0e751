package leveling

// Progress décrit la position d'un utilisateur sur la courbe de niveaux.
type Progress struct {
	Level    int `json:"level"`
	Progress int `json:"progress"`
	Needed   int `json:"needed"`
	Total    int `json:"total"`
}

// Paliers de la courbe : largeur 24 jusqu'au niveau 10, puis 48 jusqu'au 20,
// puis 86 jusqu'au 30. Au-delà de 1556 items le niveau reste plafonné à 30
// et la progression continue de s'accumuler dans une fenêtre de 88 items.
const (
	tier2Start = 216
	tier3Start = 696
	tier4Start = 1556

	tier1Width = 24
	tier2Width = 48
	tier3Width = 86
	tier4Width = 88

	maxLevel = 30
)

// Compute convertit un total d'items (depuis le dernier level-up) en niveau
// et progression dans le palier courant.
func Compute(totalItems int) Progress {
	var level, start, needed int

	switch {
	case totalItems < tier2Start:
		level = totalItems/tier1Width + 1
		start = (level - 1) * tier1Width
		needed = tier1Width
	case totalItems < tier3Start:
		level = (totalItems-tier2Start)/tier2Width + 10
		start = tier2Start + (level-10)*tier2Width
		needed = tier2Width
	case totalItems < tier4Start:
		level = (totalItems-tier3Start)/tier3Width + 20
		start = tier3Start + (level-20)*tier3Width
		needed = tier3Width
	default:
		level = maxLevel
		start = tier4Start
		needed = tier4Width
	}

	return Progress{
		Level:    level,
		Progress: totalItems - start,
		Needed:   needed,
		Total:    totalItems,
	}
}
