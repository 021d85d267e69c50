package campaign

import (
	"github.com/ethereum/go-ethereum/common"
)

func DefaultCampaigns() []Campaign {
	return []Campaign{
		{ID: "511010000", Type: CampaignTypeIfo, Title: Text("Kalmar"), Badge: "ifo-kalm"},
		{ID: "511020000", Type: CampaignTypeIfo, Title: Text("Hotcross"), Badge: "ifo-hotcross"},
		{ID: "511030000", Type: CampaignTypeIfo, Title: Text("Horizon Protocol"), Badge: "ifo-hzn"},
		{ID: "511040000", Type: CampaignTypeIfo, Title: Text("Belt"), Badge: "ifo-belt"},
		{ID: "511050000", Type: CampaignTypeIfo, Title: Text("Yieldwatch"), Badge: "ifo-watch"},
		{ID: "511060000", Type: CampaignTypeIfo, Title: Text("Berry"), Badge: "ifo-bry"},
		{ID: "511070000", Type: CampaignTypeIfo, Title: Text("Soteria"), Badge: "ifo-wsote"},
		{ID: "511080000", Type: CampaignTypeIfo, Title: Text("Helmet"), Badge: "ifo-helmet"},
		{
			ID:          "512010001",
			Type:        CampaignTypeTeamBattle,
			Title:       Text("Easter Champion: Gold"),
			Description: Text("Finished in the top 500 of the Easter Battle"),
			Badge:       "easter-champion-gold",
		},
		{
			ID:          "512010002",
			Type:        CampaignTypeTeamBattle,
			Title:       Text("Easter Top 500: Gold"),
			Description: Text("Finished in the top 500 of the Easter Battle"),
			Badge:       "easter-top-500-gold",
		},
		{
			ID:          "513010001",
			Type:        CampaignTypeParticipation,
			Title:       Text("Syrup Soaker"),
			Description: Text("Took a dip in the early days of the Auto ORB Pool"),
			Badge:       "syrup-soaker",
		},
	}
}

// DefaultIfos is the built-in IFO list. Older sales predate the points program
// and carry no campaign id.
func DefaultIfos() []IfoDescriptor {
	return []IfoDescriptor{
		{ID: "helmet", Address: common.HexToAddress("0xa32509d760ee47Eb2Be96D338b5d2f8BdE4c6E9C"), CampaignID: "511080000"},
		{ID: "soteria", Address: common.HexToAddress("0x9d0a3Ed6f3E17Dc6F1bB4f61E3D25A8fF6d8fb21"), CampaignID: "511070000"},
		{ID: "berry", Address: common.HexToAddress("0x3A33C41e0B0F7E1C6a4D9bbf30C37A86fBC0E1c5"), CampaignID: "511060000"},
		{ID: "yieldwatch", Address: common.HexToAddress("0x55344b55C71Ad8834C397E6e08dF5195cF84fe6d"), CampaignID: "511050000"},
		{ID: "belt", Address: common.HexToAddress("0x7E2d5Bd4d3C20a8A6c1cD5F4FaD0bB0d3E4E9C1f"), CampaignID: "511040000"},
		{ID: "horizon", Address: common.HexToAddress("0x6137B571f7F1E44839ae10310a08be86D1A4D03B"), CampaignID: "511030000"},
		{ID: "hotcross", Address: common.HexToAddress("0xb664cdbe385656F8c54031c0CB12Cea55b584b63"), CampaignID: "511020000"},
		{ID: "kalmar", Address: common.HexToAddress("0x1aFB32b76696CdF05593Ca3f3957AEFB23a220FB"), CampaignID: "511010000"},
		{ID: "dusk", Address: common.HexToAddress("0xee10f5B0B4a9Dc3E3B5c1a3D3F0E9E0f6B2D4c11")},
		{ID: "blink", Address: common.HexToAddress("0x44a9Cc8463EC00937242b660BF65B10365d99baD")},
	}
}
