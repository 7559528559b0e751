package challenge

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/M-Muallim/ecosense-appv4/internal/category"
)

// Les titres auto-évaluables suivent le motif "Recycle <N> <Catégorie>[s]".
// Les challenges multi-catégories ou de type streak ne matchent pas et ne
// sont jamais complétés automatiquement.
var titlePattern = regexp.MustCompile(`recycle (\d+) ([a-z]+)`)

// Criteria est le seuil extrait du titre d'un challenge.
type Criteria struct {
	Category string
	Required int
}

// ParseTitle extrait la catégorie canonique et le seuil d'un titre de
// challenge. ok vaut false si le titre ne suit pas le motif attendu.
func ParseTitle(title string) (Criteria, bool) {
	match := titlePattern.FindStringSubmatch(strings.ToLower(title))
	if match == nil {
		return Criteria{}, false
	}

	required, err := strconv.Atoi(match[1])
	if err != nil {
		return Criteria{}, false
	}

	return Criteria{
		Category: category.Normalize(match[2]),
		Required: required,
	}, true
}
