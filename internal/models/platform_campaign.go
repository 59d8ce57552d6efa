package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Objective and bid strategy enumerations as exposed by the platform APIs.
var (
	MetaObjectives = []string{
		"AWARENESS", "REACH", "TRAFFIC", "APP_INSTALLS", "ENGAGEMENT",
		"VIDEO_VIEWS", "LEAD_GENERATION", "MESSAGES", "CONVERSIONS",
		"CATALOG_SALES", "STORE_TRAFFIC",
	}
	MetaBidStrategies = []string{
		"LOWEST_COST_WITHOUT_CAP", "LOWEST_COST_WITH_BID_CAP",
		"TARGET_COST", "COST_CAP",
	}
	GoogleCampaignTypes = []string{
		"SEARCH", "DISPLAY", "SHOPPING", "VIDEO", "DISCOVERY",
		"APP", "SMART", "PERFORMANCE_MAX",
	}
	GoogleBidStrategies = []string{
		"MANUAL_CPC", "ENHANCED_CPC", "MAXIMIZE_CLICKS", "MAXIMIZE_CONVERSIONS",
		"TARGET_CPA", "TARGET_ROAS", "MAXIMIZE_CONVERSION_VALUE",
	}
)

// Contains reports whether list holds v. Used to validate enum inputs.
func Contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// MetaCampaign mirrors a Meta (Facebook) campaign managed from the console.
// The margin percentage is an admin-only field.
type MetaCampaign struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	UserID           uuid.UUID       `db:"user_id" json:"userId"`
	CampaignName     string          `db:"campaign_name" json:"campaignName"`
	Objective        string          `db:"objective" json:"objective"`
	BidStrategy      *string         `db:"bid_strategy" json:"bidStrategy,omitempty"`
	Status           string          `db:"status" json:"status"`
	DailyBudget      *float64        `db:"daily_budget" json:"dailyBudget,omitempty"`
	LifetimeBudget   *float64        `db:"lifetime_budget" json:"lifetimeBudget,omitempty"`
	MarginPercentage *float64        `db:"margin_percentage" json:"marginPercentage,omitempty"`
	MetaCampaignID   *string         `db:"meta_campaign_id" json:"metaCampaignId,omitempty"`
	TargetingConfig  json.RawMessage `db:"targeting_config" json:"targetingConfig,omitempty"`
	CreativeConfig   json.RawMessage `db:"creative_config" json:"creativeConfig,omitempty"`
	StartDate        *time.Time      `db:"start_date" json:"startDate,omitempty"`
	EndDate          *time.Time      `db:"end_date" json:"endDate,omitempty"`
	CreatedAt        time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updatedAt"`
}

// GoogleCampaign mirrors a Google Ads campaign managed from the console.
type GoogleCampaign struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	UserID           uuid.UUID       `db:"user_id" json:"userId"`
	CampaignName     string          `db:"campaign_name" json:"campaignName"`
	CampaignType     string          `db:"campaign_type" json:"campaignType"`
	BidStrategy      *string         `db:"bid_strategy" json:"bidStrategy,omitempty"`
	Status           string          `db:"status" json:"status"`
	DailyBudget      *float64        `db:"daily_budget" json:"dailyBudget,omitempty"`
	MarginPercentage *float64        `db:"margin_percentage" json:"marginPercentage,omitempty"`
	GoogleCampaignID *string         `db:"google_campaign_id" json:"googleCampaignId,omitempty"`
	TargetingConfig  json.RawMessage `db:"targeting_config" json:"targetingConfig,omitempty"`
	CreativeConfig   json.RawMessage `db:"creative_config" json:"creativeConfig,omitempty"`
	StartDate        *time.Time      `db:"start_date" json:"startDate,omitempty"`
	EndDate          *time.Time      `db:"end_date" json:"endDate,omitempty"`
	CreatedAt        time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updatedAt"`
}
