package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	// Given: a starting bankroll
	player := NewPlayer(1, "Ana", 30000)

	// Then: the player starts solvent at the start space with empty holdings
	assert.Equal(t, 1, player.ID)
	assert.Equal(t, "Ana", player.Name)
	assert.Equal(t, 30000, player.Money)
	assert.Equal(t, 0, player.Position)
	assert.Equal(t, SolventStage, player.BankruptcyStage)
	assert.Empty(t, player.Properties)
	assert.Empty(t, player.Certificates)
	assert.Empty(t, player.Loans)
	assert.Empty(t, player.Stocks)
}

func TestPlayer_Certificates(t *testing.T) {
	t.Run("GrantCertificate does not duplicate", func(t *testing.T) {
		// Given: a player holding the fire certificate
		player := NewPlayer(1, "Ana", 0)
		player.GrantCertificate(CertFire)

		// When: granting the same certificate again
		player.GrantCertificate(CertFire)

		// Then: the player holds exactly one copy
		assert.Equal(t, []string{CertFire}, player.Certificates)
		assert.True(t, player.HasCertificate(CertFire))
		assert.False(t, player.HasCertificate(CertRescue))
	})

	t.Run("HasAllBaseCertificates requires all four kinds", func(t *testing.T) {
		// Given: a player holding three of the four certificates
		player := NewPlayer(1, "Ana", 0)
		player.GrantCertificate(CertFire)
		player.GrantCertificate(CertRescue)
		player.GrantCertificate(CertCollision)

		// Then: the check fails until the last one is granted
		assert.False(t, player.HasAllBaseCertificates())

		player.GrantCertificate(CertAbandon)
		assert.True(t, player.HasAllBaseCertificates())
	})
}

func TestPlayer_OperativeFleet(t *testing.T) {
	t.Run("Docked units do not count as operative", func(t *testing.T) {
		// Given: a player with a full fleet
		player := NewPlayer(1, "Ana", 0)
		player.PortTugs = 3
		player.HasOceanTug = true
		player.HasTuglord = true

		// When: one port tug, the ocean tug and the tuglord are docked
		player.DockedTugs = DockedTugs{Port: 1, Ocean: true, Tuglord: true, TurnsRemaining: 3}

		// Then: only the undocked port tugs remain operative
		assert.Equal(t, 2, player.OperativePortTugs())
		assert.False(t, player.OperativeOceanTug())
		assert.False(t, player.OperativeTuglord())
	})

	t.Run("Operative port tugs never go negative", func(t *testing.T) {
		// Given: more docked port tugs than owned
		player := NewPlayer(1, "Ana", 0)
		player.PortTugs = 1
		player.DockedTugs.Port = 2

		// Then: the operative count clamps at zero
		assert.Equal(t, 0, player.OperativePortTugs())
	})
}

func TestPlayer_Properties(t *testing.T) {
	t.Run("AddProperty preserves acquisition order", func(t *testing.T) {
		// Given: a player buying three spaces in order
		player := NewPlayer(1, "Ana", 0)
		player.AddProperty(10)
		player.AddProperty(3)
		player.AddProperty(15)

		// When: the first one is bought again
		player.AddProperty(10)

		// Then: the order is kept and there are no duplicates
		assert.Equal(t, []int{10, 3, 15}, player.Properties)
		assert.True(t, player.OwnsSpace(3))
		assert.False(t, player.OwnsSpace(5))
	})

	t.Run("RemoveProperty keeps the remaining order", func(t *testing.T) {
		// Given: a player with three properties
		player := NewPlayer(1, "Ana", 0)
		player.AddProperty(10)
		player.AddProperty(3)
		player.AddProperty(15)

		// When: the middle one is removed
		player.RemoveProperty(3)

		// Then: the others stay in acquisition order
		require.Equal(t, []int{10, 15}, player.Properties)
	})
}
