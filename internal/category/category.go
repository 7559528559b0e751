package category

import "strings"

// Canonical waste categories. Tout label brut du classifieur est ramené à
// l'une de ces valeurs (ou laissé tel quel en minuscules s'il est inconnu).
const (
	Plastic   = "plastic"
	Glass     = "glass"
	Metal     = "metal"
	Paper     = "paper"
	Cardboard = "cardboard"
	Clothes   = "clothes"
	Organic   = "organic"
)

// typeMap couvre les pluriels et quasi-synonymes renvoyés par le classifieur.
// "item"/"items" sont mappés sur la chaîne vide et ignorés par les stats.
var typeMap = map[string]string{
	"plastic":      Plastic,
	"plastics":     Plastic,
	"glass":        Glass,
	"glasses":      Glass,
	"metal":        Metal,
	"metals":       Metal,
	"paper":        Paper,
	"papers":       Paper,
	"cardboard":    Cardboard,
	"cardboards":   Cardboard,
	"clothes":      Clothes,
	"clothing":     Clothes,
	"organic":      Organic,
	"organicwaste": Organic,
	"waste":        Organic,
	"bottle":       Glass,
	"bottles":      Glass,
	"box":          Cardboard,
	"boxes":        Cardboard,
	"can":          Metal,
	"cans":         Metal,
	"item":         "",
	"items":        "",
}

// Normalize ramène un label brut à sa catégorie canonique.
// Les labels inconnus passent tels quels en minuscules : ils comptent dans le
// total hebdomadaire mais ne matchent aucun challenge par catégorie.
func Normalize(raw string) string {
	lower := strings.ToLower(raw)
	if mapped, ok := typeMap[lower]; ok {
		return mapped
	}
	return lower
}

// itemPoints donne la valeur en points de chaque catégorie canonique.
var itemPoints = map[string]int{
	Plastic:   10,
	Clothes:   10,
	Metal:     7,
	Glass:     7,
	Paper:     4,
	Cardboard: 4,
	Organic:   4,
}

// Points retourne les points gagnés pour un item de ce type (1 par défaut
// pour les catégories inconnues).
func Points(raw string) int {
	if pts, ok := itemPoints[Normalize(raw)]; ok {
		return pts
	}
	return 1
}
