package metadomain

import (
	"strconv"

	"github.com/sirupsen/logrus"
)

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// AdInsight é uma linha de insight no nível de anúncio (level=ad,
// time_increment=1): um anúncio em um dia
type AdInsight struct {
	AccountID        string   `json:"account_id"`
	AdID             string   `json:"ad_id"`
	AdName           string   `json:"ad_name"`
	Impressions      string   `json:"impressions"`
	Reach            string   `json:"reach"`
	Spend            string   `json:"spend"`
	Clicks           string   `json:"clicks"`
	InlineLinkClicks string   `json:"inline_link_clicks"`
	Frequency        string   `json:"frequency"`
	Actions          []Action `json:"actions"`
	DateStart        string   `json:"date_start"`
	DateStop         string   `json:"date_stop"`
}

// Tipos de ação que contam como lead nas respostas do Meta
var LeadActionTypes = map[string]struct{}{
	"lead":                             {},
	"onsite_conversion.lead_grouped":   {},
	"offsite_conversion.fb_pixel_lead": {},
}

const LinkClickActionType = "link_click"

// Leads soma todas as ações do vocabulário de lead
func (i *AdInsight) Leads() int {
	total := 0
	for _, action := range i.Actions {
		if _, ok := LeadActionTypes[action.ActionType]; !ok {
			continue
		}

		value, err := strconv.Atoi(action.Value)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"action_type":  action.ActionType,
				"action_value": action.Value,
				"error":        err.Error(),
			}).Warn("insights: error converting lead action value to integer")
			continue
		}
		total += value
	}
	return total
}

// LinkClicks retorna a ação link_click quando presente; caso contrário usa o
// campo inline_link_clicks da linha
func (i *AdInsight) LinkClicks() int {
	for _, action := range i.Actions {
		if action.ActionType != LinkClickActionType {
			continue
		}

		value, err := strconv.Atoi(action.Value)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"action_value": action.Value,
				"error":        err.Error(),
			}).Warn("insights: error converting link_click value to integer")
			return 0
		}
		return value
	}

	if i.InlineLinkClicks == "" {
		return 0
	}

	value, err := strconv.Atoi(i.InlineLinkClicks)
	if err != nil {
		return 0
	}
	return value
}
