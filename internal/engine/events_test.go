package engine

import (
	"testing"

	"github.com/seaportlabs/harborlord-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_OceanEvents(t *testing.T) {
	t.Run("A windfall credits the player", func(t *testing.T) {
		// Given: a running game
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana := eng.Game().Players[0]

		// When: a money event with a positive amount resolves
		event := entity.OceanEvent{Name: "Emergency Towage", Type: entity.EventMoney, Amount: 500}
		eng.applyOceanEvent(ana, event, &Result{})

		// Then: the amount is credited
		assert.Equal(t, 30500, ana.Money)
	})

	t.Run("A setback goes through the debt resolver", func(t *testing.T) {
		// Given: a player who cannot cover the setback in cash
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana := eng.Game().Players[0]
		ana.Money = 50
		port := eng.Game().SpaceAt(1)
		port.Owner = ana.ID
		ana.AddProperty(1)

		// When: a negative money event resolves
		event := entity.OceanEvent{Name: "Engine Breakdown", Type: entity.EventMoney, Amount: -200}
		eng.applyOceanEvent(ana, event, &Result{})

		// Then: the port was liquidated to settle it
		assert.Equal(t, 0, port.Owner)
		assert.Equal(t, 2350, ana.Money)
	})

	t.Run("A movement event walks the player forward", func(t *testing.T) {
		// Given: a player on the tuglord certification office
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana := eng.Game().Players[0]
		ana.Position = 18

		// When: a five-space current pushes them on
		event := entity.OceanEvent{Name: "Brazil Current", Type: entity.EventMove, Spaces: 5}
		eng.applyOceanEvent(ana, event, &Result{})

		// Then: they stand five spaces further
		assert.Equal(t, 23, ana.Position)
	})

	t.Run("A hazard zone costs the next turn", func(t *testing.T) {
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana := eng.Game().Players[0]

		event := entity.OceanEvent{Name: "Hazard Zone", Type: entity.EventSkipTurn}
		eng.applyOceanEvent(ana, event, &Result{})

		assert.True(t, ana.SkipNextTurn)
	})

	t.Run("A storm returns the player to the previous property", func(t *testing.T) {
		// Given: a player just past the first port
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana := eng.Game().Players[0]
		ana.Position = 2

		// When: the storm event resolves
		event := entity.OceanEvent{Name: "Tropical Storm", Type: entity.EventReturnProperty}
		eng.applyOceanEvent(ana, event, &Result{})

		// Then: they stand on it
		assert.Equal(t, 1, ana.Position)
	})
}

func TestEngine_Inspection(t *testing.T) {
	t.Run("Full certificates earn the reward", func(t *testing.T) {
		// Given: a player holding all four certificates
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana := eng.Game().Players[0]
		for _, kind := range entity.BaseCertificates {
			ana.GrantCertificate(kind)
		}

		// When: the navy inspects
		eng.resolveInspection(ana, &Result{})

		// Then: the reward is credited
		assert.Equal(t, 30200, ana.Money)
	})

	t.Run("Missing certificates cost the fine", func(t *testing.T) {
		// Given: a player with no certificates
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana := eng.Game().Players[0]

		// When: the navy inspects
		eng.resolveInspection(ana, &Result{})

		// Then: the fine is collected
		assert.Equal(t, 29850, ana.Money)
	})
}

func TestEngine_EventChoices(t *testing.T) {
	t.Run("The salvage offer parks a pending choice", func(t *testing.T) {
		// Given: a running game
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana := eng.Game().Players[0]

		// When: the salvage event resolves
		event := entity.OceanEvent{ID: 9, Name: "Salvage Opportunity", Type: entity.EventChoiceSalvage}
		eng.applyOceanEvent(ana, event, &Result{})

		// Then: the prompt waits with both options
		pending := eng.Game().Pending
		require.NotNil(t, pending)
		assert.Equal(t, entity.PendingEventChoice, pending.Kind)
		require.Len(t, pending.Options, 2)
	})

	t.Run("Accepting the salvage pays but costs the next turn", func(t *testing.T) {
		// Given: a pending salvage choice
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana := eng.Game().Players[0]
		event := entity.OceanEvent{ID: 9, Type: entity.EventChoiceSalvage}
		eng.applyOceanEvent(ana, event, &Result{})

		// When: the player accepts
		_, err := eng.ResolveChoice("accept")
		require.NoError(t, err)

		// Then: the reward arrives with the skip-turn penalty
		assert.Equal(t, 30400, ana.Money)
		assert.True(t, ana.SkipNextTurn)
		assert.Nil(t, eng.Game().Pending)
	})

	t.Run("Declining the salvage changes nothing", func(t *testing.T) {
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana := eng.Game().Players[0]
		event := entity.OceanEvent{ID: 9, Type: entity.EventChoiceSalvage}
		eng.applyOceanEvent(ana, event, &Result{})

		_, err := eng.ResolveChoice("decline")
		require.NoError(t, err)

		assert.Equal(t, 30000, ana.Money)
		assert.False(t, ana.SkipNextTurn)
	})

	t.Run("The north route advances three spaces", func(t *testing.T) {
		// Given: a pending route choice away from any event space
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana := eng.Game().Players[0]
		ana.Position = 15
		event := entity.OceanEvent{ID: 10, Type: entity.EventChoiceRoute}
		eng.applyOceanEvent(ana, event, &Result{})

		// When: the player takes the north route
		_, err := eng.ResolveChoice("north")
		require.NoError(t, err)

		// Then: they moved three spaces
		assert.Equal(t, 18, ana.Position)
	})

	t.Run("The south route pays instead", func(t *testing.T) {
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana := eng.Game().Players[0]
		event := entity.OceanEvent{ID: 10, Type: entity.EventChoiceRoute}
		eng.applyOceanEvent(ana, event, &Result{})

		_, err := eng.ResolveChoice("south")
		require.NoError(t, err)

		assert.Equal(t, 30250, ana.Money)
		assert.Equal(t, 0, ana.Position)
	})
}
