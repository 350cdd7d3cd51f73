package engine

import (
	"testing"

	"github.com/seaportlabs/harborlord-backend/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestCalculateRent(t *testing.T) {
	// port priced at 5000: tiers 500/750/1000/1250/1750/2500
	space := &entity.Space{Type: entity.SpacePort, Price: 5000, Rent: [6]int{500, 750, 1000, 1250, 1750, 2500}}

	tests := []struct {
		name  string
		owner entity.Player
		want  int
	}{
		{
			name:  "No fleet collects base rent",
			owner: entity.Player{},
			want:  500,
		},
		{
			name:  "One port tug",
			owner: entity.Player{PortTugs: 1},
			want:  750,
		},
		{
			name:  "Two port tugs",
			owner: entity.Player{PortTugs: 2},
			want:  1000,
		},
		{
			name:  "Three or more port tugs cap the tug tier",
			owner: entity.Player{PortTugs: 5},
			want:  1250,
		},
		{
			name:  "Ocean tug supersedes any port tug count",
			owner: entity.Player{PortTugs: 3, HasOceanTug: true},
			want:  1750,
		},
		{
			name:  "Tuglord supersedes everything",
			owner: entity.Player{PortTugs: 3, HasOceanTug: true, HasTuglord: true},
			want:  2500,
		},
		{
			name: "Docked units do not count",
			owner: entity.Player{
				PortTugs:    3,
				HasOceanTug: true,
				HasTuglord:  true,
				DockedTugs:  entity.DockedTugs{Port: 3, Ocean: true, Tuglord: true, TurnsRemaining: 2},
			},
			want: 500,
		},
		{
			name: "Partially docked fleet falls to the operative tier",
			owner: entity.Player{
				PortTugs:   3,
				DockedTugs: entity.DockedTugs{Port: 2, TurnsRemaining: 1},
			},
			want: 750,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner := tt.owner
			assert.Equal(t, tt.want, CalculateRent(space, &owner))
		})
	}
}
