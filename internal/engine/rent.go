package engine

import "github.com/seaportlabs/harborlord-backend/internal/entity"

// CalculateRent returns the rent due on a port given its owner's operative
// fleet. Tiers are not additive: a tuglord supersedes an ocean tug, which
// supersedes any port tug count; docked units do not count.
func CalculateRent(space *entity.Space, owner *entity.Player) int {
	tier := 0

	switch tugs := owner.OperativePortTugs(); {
	case tugs >= 3:
		tier = 3
	case tugs == 2:
		tier = 2
	case tugs == 1:
		tier = 1
	}

	if owner.OperativeOceanTug() {
		tier = 4
	}
	if owner.OperativeTuglord() {
		tier = 5
	}

	return space.Rent[tier]
}
