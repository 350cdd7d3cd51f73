package engine

import (
	"testing"

	"github.com/seaportlabs/harborlord-backend/internal/apperror"
	"github.com/seaportlabs/harborlord-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_PropertyPurchase(t *testing.T) {
	t.Run("Landing on an unowned port offers it for sale", func(t *testing.T) {
		// Given: a player one space before the first port
		eng := newPlayingEngine(t, "Ana", "Bruno")

		// When: they land on it
		result := &Result{}
		eng.movePlayer(1, result)

		// Then: a purchase prompt is pending with buy and pass options
		pending := eng.Game().Pending
		require.NotNil(t, pending)
		assert.Equal(t, entity.PendingPurchase, pending.Kind)
		assert.Equal(t, 1, pending.SpacePos)
		require.Len(t, pending.Options, 2)
	})

	t.Run("Accepting the purchase transfers money and title", func(t *testing.T) {
		// Given: a pending purchase of the first port
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana := eng.Game().Players[0]
		eng.movePlayer(1, &Result{})

		// When: the player accepts
		_, err := eng.AcceptPending()
		require.NoError(t, err)

		// Then: the price is paid and the title registered in order
		port := eng.Game().SpaceAt(1)
		assert.Equal(t, 25000, ana.Money)
		assert.Equal(t, ana.ID, port.Owner)
		assert.Equal(t, []int{1}, ana.Properties)
		assert.Nil(t, eng.Game().Pending)
	})

	t.Run("Short funds leave the offer open with no mutation", func(t *testing.T) {
		// Given: a pending purchase the player cannot afford
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana := eng.Game().Players[0]
		ana.Money = 100
		eng.movePlayer(1, &Result{})

		// When: the player accepts anyway
		_, err := eng.AcceptPending()

		// Then: it should return ErrInsufficientFunds and change nothing
		assert.ErrorIs(t, err, apperror.ErrInsufficientFunds)
		assert.Equal(t, 100, ana.Money)
		assert.Equal(t, 0, eng.Game().SpaceAt(1).Owner)
		assert.NotNil(t, eng.Game().Pending)
	})

	t.Run("Declining dismisses the offer", func(t *testing.T) {
		// Given: a pending purchase
		eng := newPlayingEngine(t, "Ana", "Bruno")
		eng.movePlayer(1, &Result{})

		// When: the player declines
		_, err := eng.DeclinePending()
		require.NoError(t, err)

		// Then: the prompt is gone and the port stays unowned
		assert.Nil(t, eng.Game().Pending)
		assert.Equal(t, 0, eng.Game().SpaceAt(1).Owner)
	})

	t.Run("Accepting with no pending prompt fails", func(t *testing.T) {
		eng := newPlayingEngine(t, "Ana", "Bruno")

		_, err := eng.AcceptPending()

		assert.ErrorIs(t, err, apperror.ErrNoPendingAction)
	})
}

func TestEngine_VisitorFees(t *testing.T) {
	t.Run("Visiting another captain's port charges rent", func(t *testing.T) {
		// Given: the first port belongs to the other player
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana, bruno := eng.Game().Players[0], eng.Game().Players[1]
		port := eng.Game().SpaceAt(1)
		port.Owner = bruno.ID
		bruno.AddProperty(1)

		// When: the current player lands on it
		eng.movePlayer(1, &Result{})

		// Then: base rent moves from visitor to owner
		assert.Equal(t, 29500, ana.Money)
		assert.Equal(t, 30500, bruno.Money)
	})

	t.Run("A rent waiver is consumed on the first charge", func(t *testing.T) {
		// Given: a visitor holding a favorable-wind waiver
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana, bruno := eng.Game().Players[0], eng.Game().Players[1]
		port := eng.Game().SpaceAt(1)
		port.Owner = bruno.ID
		bruno.AddProperty(1)
		ana.SkipNextRent = true

		// When: they land on the owned port
		eng.movePlayer(1, &Result{})

		// Then: no rent is paid and the waiver is gone
		assert.Equal(t, 30000, ana.Money)
		assert.Equal(t, 30000, bruno.Money)
		assert.False(t, ana.SkipNextRent)
	})

	t.Run("Visiting another captain's workshop charges the service fee", func(t *testing.T) {
		// Given: the naval workshop belongs to the other player
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana, bruno := eng.Game().Players[0], eng.Game().Players[1]
		workshop := eng.Game().SpaceAt(8)
		workshop.Owner = bruno.ID
		bruno.AddProperty(8)
		ana.Position = 7

		// When: the current player lands on it
		eng.movePlayer(1, &Result{})

		// Then: the fixed fee moves to the owner
		assert.Equal(t, 30000-workshop.ServiceFee, ana.Money)
		assert.Equal(t, 30000+workshop.ServiceFee, bruno.Money)
	})

	t.Run("Visiting your own workshop grants its certificate", func(t *testing.T) {
		// Given: the current player owns the naval workshop
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana := eng.Game().Players[0]
		workshop := eng.Game().SpaceAt(8)
		workshop.Owner = ana.ID
		ana.AddProperty(8)
		ana.Position = 7

		// When: they land on it
		eng.movePlayer(1, &Result{})

		// Then: the workshop's certificate is granted for free
		assert.True(t, ana.HasCertificate(entity.CertFire))
		assert.Equal(t, 30000, ana.Money)
	})
}

func TestEngine_TaxAndContract(t *testing.T) {
	t.Run("The port authority tax is mandatory", func(t *testing.T) {
		// Given: a player one space before the tax office
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana := eng.Game().Players[0]
		ana.Position = 33

		// When: they land on it
		eng.movePlayer(1, &Result{})

		// Then: the flat tax is collected
		assert.Equal(t, 29000, ana.Money)
	})

	t.Run("The towage contract pays out", func(t *testing.T) {
		// Given: a player one space before the contract
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana := eng.Game().Players[0]
		ana.Position = 34

		// When: they land on it
		eng.movePlayer(1, &Result{})

		// Then: the payout lands in their account
		assert.Equal(t, 30800, ana.Money)
	})
}

func TestEngine_TugPurchase(t *testing.T) {
	t.Run("The harbor tug dealer offers a tug", func(t *testing.T) {
		// Given: a player one space before the dealer
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana := eng.Game().Players[0]
		ana.Position = 3

		// When: they land and accept
		eng.movePlayer(1, &Result{})
		pending := eng.Game().Pending
		require.NotNil(t, pending)
		require.Equal(t, entity.PendingTugPurchase, pending.Kind)

		_, err := eng.AcceptPending()
		require.NoError(t, err)

		// Then: the fleet grows and the price is paid
		assert.Equal(t, 1, ana.PortTugs)
		assert.Equal(t, 29800, ana.Money)
	})

	t.Run("A second ocean tug is never offered", func(t *testing.T) {
		// Given: a player who already owns the ocean tug
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana := eng.Game().Players[0]
		ana.HasOceanTug = true
		ana.Position = 13

		// When: they land on the ocean tug dealer
		eng.movePlayer(1, &Result{})

		// Then: no offer appears
		assert.Nil(t, eng.Game().Pending)
	})
}

func TestEngine_ShipyardDocking(t *testing.T) {
	t.Run("An operative fleet must dock at an owned shipyard", func(t *testing.T) {
		// Given: the other player owns the shipyard and the visitor has a tug
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana, bruno := eng.Game().Players[0], eng.Game().Players[1]
		shipyard := eng.Game().SpaceAt(12)
		shipyard.Owner = bruno.ID
		bruno.AddProperty(12)
		ana.PortTugs = 1
		ana.Position = 11

		// When: the visitor lands on it
		eng.movePlayer(1, &Result{})

		// Then: the docking choice is mandatory
		pending := eng.Game().Pending
		require.NotNil(t, pending)
		require.Equal(t, entity.PendingDocking, pending.Kind)
		require.Len(t, pending.Options, 1)
		assert.Equal(t, entity.TugPort, pending.Options[0].ID)

		// And: it cannot be declined
		_, err := eng.DeclinePending()
		assert.ErrorIs(t, err, apperror.ErrInvalidChoice)

		// When: the visitor docks the tug
		_, err = eng.ResolveChoice(entity.TugPort)
		require.NoError(t, err)

		// Then: the fee goes to the shipyard owner and the tug is immobilized
		assert.Equal(t, 29925, ana.Money)
		assert.Equal(t, 30075, bruno.Money)
		assert.Equal(t, 1, ana.DockedTugs.Port)
		assert.Equal(t, 3, ana.DockedTugs.TurnsRemaining)
		assert.Equal(t, 0, ana.OperativePortTugs())
	})

	t.Run("No docking without an operative fleet", func(t *testing.T) {
		// Given: an owned shipyard and a visitor with nothing to dock
		eng := newPlayingEngine(t, "Ana", "Bruno")
		bruno := eng.Game().Players[1]
		shipyard := eng.Game().SpaceAt(12)
		shipyard.Owner = bruno.ID
		bruno.AddProperty(12)
		eng.Game().Players[0].Position = 11

		// When: the visitor lands on it
		eng.movePlayer(1, &Result{})

		// Then: no prompt appears
		assert.Nil(t, eng.Game().Pending)
	})

	t.Run("A purchase offer takes precedence on an unowned shipyard", func(t *testing.T) {
		// Given: an unowned shipyard and a visitor with a tug
		eng := newPlayingEngine(t, "Ana", "Bruno")
		ana := eng.Game().Players[0]
		ana.PortTugs = 1
		ana.Position = 11

		// When: they land on it
		eng.movePlayer(1, &Result{})

		// Then: the sale is offered, not the docking
		pending := eng.Game().Pending
		require.NotNil(t, pending)
		assert.Equal(t, entity.PendingPurchase, pending.Kind)
	})
}

func TestEngine_ResolveChoice(t *testing.T) {
	t.Run("Rejects options that were not presented", func(t *testing.T) {
		// Given: a docking prompt offering only a port tug
		eng := newPlayingEngine(t, "Ana", "Bruno")
		eng.Game().Pending = &entity.Pending{
			Kind:     entity.PendingDocking,
			SpacePos: 12,
			Options:  []entity.Option{{ID: entity.TugPort, Label: "Dock a harbor tug"}},
		}

		// When: resolving with an option that is not on the list
		_, err := eng.ResolveChoice(entity.TugOcean)

		// Then: it should return ErrInvalidChoice and keep the prompt
		assert.ErrorIs(t, err, apperror.ErrInvalidChoice)
		assert.NotNil(t, eng.Game().Pending)
	})

	t.Run("Rejects resolving when nothing is pending", func(t *testing.T) {
		eng := newPlayingEngine(t, "Ana", "Bruno")

		_, err := eng.ResolveChoice("buy")

		assert.ErrorIs(t, err, apperror.ErrNoPendingAction)
	})
}
