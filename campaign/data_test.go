package campaign

import (
	"testing"

	"github.com/orbitalswap/points-service/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaignDataRoundTrip(t *testing.T) {
	c := Campaign{
		ID:          "512010001",
		Type:        CampaignTypeTeamBattle,
		Title:       Translatable("%team% Champion", map[string]string{"team": "Easter"}),
		Description: Text("Finished in the top 500"),
		Badge:       "easter-champion-gold",
	}
	d, err := ToData(c)
	require.NoError(t, err)
	assert.Equal(t, "teambattle", d.Type)
	assert.Equal(t, "Finished in the top 500", d.Description)
	assert.True(t, d.IsActive)

	back, err := FromData(d)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestFromDataErrors(t *testing.T) {
	_, err := FromData(shared.CampaignData{CampaignID: "1", Type: "raffle", Title: "x"})
	assert.ErrorIs(t, err, ErrUnknownCampaignType)

	_, err = FromData(shared.CampaignData{CampaignID: "1", Type: "ifo", Title: "{broken"})
	assert.Error(t, err)
}

func TestIfoFromData(t *testing.T) {
	d, err := IfoFromData(shared.IfoData{IfoID: "kalmar", Address: "0x1aFB32b76696CdF05593Ca3f3957AEFB23a220FB", CampaignID: "511010000"})
	require.NoError(t, err)
	assert.True(t, d.HasCampaign())
	assert.Equal(t, d.Address.Hex(), IfoToData(d).Address)

	_, err = IfoFromData(shared.IfoData{IfoID: "bad", Address: "0xnothex"})
	assert.Error(t, err)
}

func TestBuildRegistry(t *testing.T) {
	reg, err := BuildRegistry(nil)
	require.NoError(t, err)
	assert.Equal(t, len(DefaultCampaigns()), reg.Len())

	reg, err = BuildRegistry([]shared.CampaignData{
		{CampaignID: "511010000", Type: "ifo", Title: "Kalmar v2", Badge: "ifo-kalm-2", IsActive: true},
		{CampaignID: "599990000", Type: "participation", Title: "New", Description: "Joined", Badge: "new", IsActive: true},
	})
	require.NoError(t, err)
	assert.Equal(t, len(DefaultCampaigns())+1, reg.Len())
	c, ok := reg.Get("511010000")
	require.True(t, ok)
	assert.Equal(t, "ifo-kalm-2", c.Badge)
	assert.True(t, reg.Has("599990000"))

	_, err = BuildRegistry([]shared.CampaignData{{CampaignID: "1", Type: "bogus", IsActive: true}})
	assert.Error(t, err)
}

func TestBuildRegistryRetiresInactiveRows(t *testing.T) {
	reg, err := BuildRegistry([]shared.CampaignData{
		{CampaignID: "511010000"},
		{CampaignID: "599990000", Type: "participation", Title: "New", Badge: "new", IsActive: true},
		{CampaignID: "599990000"},
	})
	require.NoError(t, err)
	assert.False(t, reg.Has("511010000"))
	assert.False(t, reg.Has("599990000"))
	assert.Equal(t, len(DefaultCampaigns())-1, reg.Len())
	for _, c := range reg.Campaigns() {
		assert.NotEqual(t, "511010000", c.ID)
	}
}

func TestBuildIfos(t *testing.T) {
	ifos, err := BuildIfos([]shared.IfoData{
		{IfoID: "kalmar", Address: "0x1aFB32b76696CdF05593Ca3f3957AEFB23a220FB", CampaignID: "599990000", IsActive: true},
	})
	require.NoError(t, err)
	assert.Len(t, ifos, len(DefaultIfos()))
	d, ok := FindByCampaignID(ifos, "599990000")
	require.True(t, ok)
	assert.Equal(t, "kalmar", d.ID)

	_, err = BuildIfos([]shared.IfoData{{IfoID: "x", Address: "nope"}})
	assert.Error(t, err)
}

func TestBuildIfosRetiresInactiveRows(t *testing.T) {
	ifos, err := BuildIfos([]shared.IfoData{
		{IfoID: "kalmar", Address: "0x1afb32b76696cdf05593ca3f3957aefb23a220fb", CampaignID: "511010000"},
	})
	require.NoError(t, err)
	assert.Len(t, ifos, len(DefaultIfos())-1)
	_, ok := FindByCampaignID(ifos, "511010000")
	assert.False(t, ok)

	// the registry still knows the campaign, but no ifo points at it
	reg, err := BuildRegistry(nil)
	require.NoError(t, err)
	assert.True(t, reg.Has("511010000"))
}
