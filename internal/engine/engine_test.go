package engine

import (
	"math/rand"
	"testing"

	"github.com/seaportlabs/harborlord-backend/internal/config"
	"github.com/seaportlabs/harborlord-backend/internal/entity"
	"github.com/stretchr/testify/require"
)

// testRules mirrors the standard rulebook defaults.
func testRules() config.Rules {
	return config.Rules{
		StartingMoney:   30000,
		PassStartBonus:  4000,
		MinPlayers:      2,
		MaxPlayers:      6,
		LoanMarkupPct:   10,
		LoanTermRounds:  5,
		DockingTurns:    3,
		DockingFee:      75,
		StockPricePct:   30,
		DividendPct:     50,
		MaxStocksPerLot: 5,
		LiquidationPct:  50,

		PortTugValue:  100,
		OceanTugValue: 250,
		TuglordValue:  375,

		InspectionReward: 200,
		InspectionFine:   150,
	}
}

// newPlayingEngine builds a game with the given players already seated and
// the playing phase entered directly, so the seating order is the turn order.
func newPlayingEngine(t *testing.T, names ...string) *Engine {
	t.Helper()

	game := entity.NewGame("test-game")
	eng := New(game, testRules(), rand.New(rand.NewSource(1)))

	for _, name := range names {
		_, err := eng.AddPlayer(name)
		require.NoError(t, err)
	}

	game.Phase = entity.PhasePlaying
	game.CurrentPlayerIndex = 0
	game.CurrentRound = 1

	return eng
}
