package shared

import (
	"github.com/kamva/mgm/v3"
)

// CampaignData is the stored form of a campaign registry entry. Title and
// Description hold either a plain string or a translatable {key,data} json.
// An inactive row retires the campaign with the same id.
type CampaignData struct {
	mgm.DefaultModel `bson:",inline"`
	CampaignID       string `json:"campaignid" bson:"campaignid"`
	Type             string `json:"type" bson:"type"`
	Title            string `json:"title" bson:"title"`
	Description      string `json:"description" bson:"description"`
	Badge            string `json:"badge" bson:"badge"`
	IsActive         bool   `json:"isactive" bson:"isactive"`
}

// IfoData is a stored IFO descriptor. CampaignID is empty for IFOs that grant
// no points. An inactive row retires the descriptor at the same address.
type IfoData struct {
	mgm.DefaultModel `bson:",inline"`
	IfoID            string `json:"ifoid" bson:"ifoid"`
	Address          string `json:"address" bson:"address"`
	CampaignID       string `json:"campaignid" bson:"campaignid"`
	IsActive         bool   `json:"isactive" bson:"isactive"`
}
