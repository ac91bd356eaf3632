package training

import "strings"

// FoundationalLevelPhrases identifies entry-level formations by their title.
// Matching free text is admittedly brittle, the phrase set is kept injectable
// so a structured level attribute on the formation can replace it.
var FoundationalLevelPhrases = []string{
	"initiation",
	"niveau 1",
	"fondamentaux",
}

// QualifiesForBadge reports whether the customer has completed at least one
// entry-level formation.
func QualifiesForBadge(occurrences []Occurrence) bool {
	return QualifiesForBadgeWithPhrases(occurrences, FoundationalLevelPhrases)
}

func QualifiesForBadgeWithPhrases(occurrences []Occurrence, phrases []string) bool {
	for _, occ := range occurrences {
		if occ.Status != StatusCompleted {
			continue
		}

		title := strings.ToLower(occ.FormationTitle)
		for _, phrase := range phrases {
			if strings.Contains(title, strings.ToLower(phrase)) {
				return true
			}
		}
	}

	return false
}
