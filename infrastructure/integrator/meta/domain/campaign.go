package metadomain

type Campaign struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
}

const (
	StatusActive = "ACTIVE"
	StatusPaused = "PAUSED"

	BidStrategyLowestCostWithoutCap = "LOWEST_COST_WITHOUT_CAP"
	BillingEventImpressions         = "IMPRESSIONS"

	OptimizationGoalConversations      = "CONVERSATIONS"
	OptimizationGoalLinkClicks         = "LINK_CLICKS"
	OptimizationGoalOffsiteConversions = "OFFSITE_CONVERSIONS"

	DestinationTypeWhatsApp  = "WHATSAPP"
	DestinationTypeMessenger = "MESSENGER"
	DestinationTypeWebsite   = "WEBSITE"
)

// Mapeamento de objetivo canônico -> objetivo de campanha do Meta
var CampaignObjectiveByObjective = map[string]string{
	"WHATSAPP":   "OUTCOME_ENGAGEMENT",
	"SITE_LEADS": "OUTCOME_LEADS",
	"TRAFFIC":    "OUTCOME_TRAFFIC",
}

// Mapeamento de objetivo canônico -> optimization_goal do ad set
var OptimizationGoalByObjective = map[string]string{
	"WHATSAPP":   OptimizationGoalConversations,
	"SITE_LEADS": OptimizationGoalOffsiteConversions,
	"TRAFFIC":    OptimizationGoalLinkClicks,
}

type CreateCampaignRequest struct {
	Name                string   `json:"name"`
	Objective           string   `json:"objective"`
	Status              string   `json:"status"`
	BuyingType          string   `json:"buying_type"`
	SpecialAdCategories []string `json:"special_ad_categories"`
}

type GeoLocations struct {
	Countries []string `json:"countries"`
}

type Targeting struct {
	GeoLocations GeoLocations `json:"geo_locations"`
	AgeMin       int          `json:"age_min"`
	AgeMax       int          `json:"age_max"`
}

// PromotedObject roteia as conversas do ad set. WhatsAppPhoneNumber vazio
// deixa a plataforma usar o destino padrão da página
type PromotedObject struct {
	PageID              string `json:"page_id"`
	WhatsAppPhoneNumber string `json:"whatsapp_phone_number,omitempty"`
}

type AdSetRequest struct {
	Name             string          `json:"name"`
	CampaignID       string          `json:"campaign_id"`
	DailyBudgetCents int             `json:"daily_budget"`
	BillingEvent     string          `json:"billing_event"`
	OptimizationGoal string          `json:"optimization_goal"`
	BidStrategy      string          `json:"bid_strategy"`
	DestinationType  string          `json:"destination_type,omitempty"`
	Status           string          `json:"status"`
	StartTime        string          `json:"start_time,omitempty"`
	Targeting        Targeting       `json:"targeting"`
	PromotedObject   *PromotedObject `json:"promoted_object,omitempty"`
}

type AdCreativeRef struct {
	CreativeID string `json:"creative_id"`
}

type AdRequest struct {
	Name     string        `json:"name"`
	AdSetID  string        `json:"adset_id"`
	Status   string        `json:"status"`
	Creative AdCreativeRef `json:"creative"`
}

// CreateObjectResponse é a resposta dos endpoints de criação do Meta
type CreateObjectResponse struct {
	ID string `json:"id"`
}
