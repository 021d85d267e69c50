package campaign

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrUnknownCampaignType = errors.New("unknown campaign type")

// CampaignType is the closed set of campaign kinds. Each kind owns its title
// and description rule.
type CampaignType int

const (
	CampaignTypeIfo CampaignType = iota
	CampaignTypeTeamBattle
	CampaignTypeParticipation
)

const (
	ifoTitleKey       = "IFO Shopper: %title%"
	ifoDescriptionKey = "Committed more than $5 worth of LP in the %title% IFO"
)

func ParseCampaignType(s string) (CampaignType, error) {
	switch s {
	case "ifo":
		return CampaignTypeIfo, nil
	case "teambattle":
		return CampaignTypeTeamBattle, nil
	case "participation":
		return CampaignTypeParticipation, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCampaignType, s)
}

func (ct CampaignType) String() string {
	switch ct {
	case CampaignTypeIfo:
		return "ifo"
	case CampaignTypeTeamBattle:
		return "teambattle"
	case CampaignTypeParticipation:
		return "participation"
	}
	return fmt.Sprintf("CampaignType(%d)", int(ct))
}

func (ct CampaignType) MarshalText() ([]byte, error) {
	switch ct {
	case CampaignTypeIfo, CampaignTypeTeamBattle, CampaignTypeParticipation:
		return []byte(ct.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownCampaignType, int(ct))
}

func (ct *CampaignType) UnmarshalText(b []byte) error {
	v, err := ParseCampaignType(string(b))
	if err != nil {
		return err
	}
	*ct = v
	return nil
}

// FormatTitle builds the achievement title for a campaign of this type. IFO
// titles are templated so the campaign name is substituted at render time.
func (ct CampaignType) FormatTitle(c Campaign) TranslatableText {
	switch ct {
	case CampaignTypeIfo:
		return Translatable(ifoTitleKey, map[string]string{"title": c.Title.Key})
	case CampaignTypeTeamBattle, CampaignTypeParticipation:
		return c.Title
	}
	return c.Title
}

func (ct CampaignType) FormatDescription(c Campaign) TranslatableText {
	switch ct {
	case CampaignTypeIfo:
		return Translatable(ifoDescriptionKey, map[string]string{"title": c.Title.Key})
	case CampaignTypeTeamBattle, CampaignTypeParticipation:
		return c.Description
	}
	return c.Description
}

// TranslatableText is either a plain text (no Data) or a template key with
// substitution parameters, resolved by the client's localization layer.
type TranslatableText struct {
	Key  string
	Data map[string]string
}

func Text(s string) TranslatableText {
	return TranslatableText{Key: s}
}

func Translatable(key string, data map[string]string) TranslatableText {
	return TranslatableText{Key: key, Data: data}
}

func (t TranslatableText) IsTemplate() bool {
	return len(t.Data) > 0
}

type translatableJSON struct {
	Key  string            `json:"key"`
	Data map[string]string `json:"data,omitempty"`
}

func (t TranslatableText) MarshalJSON() ([]byte, error) {
	if !t.IsTemplate() {
		return json.Marshal(t.Key)
	}
	return json.Marshal(translatableJSON{Key: t.Key, Data: t.Data})
}

func (t *TranslatableText) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = Text(s)
		return nil
	}
	var v translatableJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*t = Translatable(v.Key, v.Data)
	return nil
}

type Campaign struct {
	ID          string           `json:"id"`
	Type        CampaignType     `json:"type"`
	Title       TranslatableText `json:"title"`
	Description TranslatableText `json:"description"`
	Badge       string           `json:"badge"`
}

func (c Campaign) AchievementTitle() TranslatableText {
	return c.Type.FormatTitle(c)
}

func (c Campaign) AchievementDescription() TranslatableText {
	return c.Type.FormatDescription(c)
}
