package schedule

import "github.com/noah-isme/lectio-cli/internal/models"

// Distribution counts modules per subject and derives each subject's share of
// the set as a percentage. Subjects are matched text-exact and reported in
// the order they first occur, so repeated runs over the same input produce
// identical output.
func Distribution(mods []models.Module) []models.SubjectShare {
	if len(mods) == 0 {
		return nil
	}

	index := make(map[string]int, len(mods))
	shares := make([]models.SubjectShare, 0, len(mods))
	for _, m := range mods {
		i, ok := index[m.Subject]
		if !ok {
			i = len(shares)
			index[m.Subject] = i
			shares = append(shares, models.SubjectShare{Subject: m.Subject})
		}
		shares[i].Count++
	}

	total := float64(len(mods))
	for i := range shares {
		shares[i].Percent = 100 * float64(shares[i].Count) / total
	}
	return shares
}
