package meta

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/campaign-builder-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-builder-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-builder-api/internal/config"
	"github.com/vfg2006/campaign-builder-api/internal/domain"
)

// Fuso de referência fixo para o horário de início dos ad sets
var adSetStartZone = time.FixedZone("UTC+5", 5*3600)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GetCreativeAdMetrics consulta ao vivo as linhas de métrica de todos os
// anúncios da conta que veiculam o criativo, em qualquer objetivo. Cada linha
// é um par (anúncio, dia) dentro da janela dos filtros
func (s *MetaIntegrator) GetCreativeAdMetrics(account *domain.AdAccount, creative *domain.Creative, filters *domain.InsightFilters) ([]*domain.CreativeMetricRow, error) {
	rows := make([]*domain.CreativeMetricRow, 0)

	for objective, platformCreativeID := range creative.PlatformIDs {
		if platformCreativeID == "" {
			continue
		}

		insights, err := s.Client.GetAdInsightsByCreative(account, platformCreativeID, filters)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id":  account.ID,
				"creative_id": creative.ID,
				"objective":   string(objective),
				"error":       err.Error(),
			}).Error("resolver: failed to get live ad insights for creative")
			return nil, err
		}

		rows = append(rows, FactoryCreativeMetricRows(account.ID, creative.ID, insights)...)
	}

	return rows, nil
}

// GetActiveCampaigns lista as campanhas ativas existentes na conta
func (s *MetaIntegrator) GetActiveCampaigns(account *domain.AdAccount) ([]*domain.PlatformCampaign, error) {
	campaigns, err := s.Client.GetAdCampaignsByAccountID(account)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("executor: failed to list active campaigns")
		return nil, err
	}

	result := make([]*domain.PlatformCampaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		result = append(result, &domain.PlatformCampaign{
			ID:     campaign.ID,
			Name:   campaign.Name,
			Status: campaign.Status,
		})
	}

	return result, nil
}

// CreateCampaign cria uma campanha nova na plataforma e retorna o ID externo
func (s *MetaIntegrator) CreateCampaign(account *domain.AdAccount, name string, objective domain.Objective, activate bool) (string, error) {
	campaignObjective, ok := metadomain.CampaignObjectiveByObjective[string(objective)]
	if !ok {
		return "", fmt.Errorf("objetivo sem mapeamento de campanha na plataforma: %s", objective)
	}

	status := metadomain.StatusPaused
	if activate {
		status = metadomain.StatusActive
	}

	request := &metadomain.CreateCampaignRequest{
		Name:                name,
		Objective:           campaignObjective,
		Status:              status,
		BuyingType:          "AUCTION",
		SpecialAdCategories: []string{},
	}

	campaignID, err := s.Client.CreateCampaign(account, request)
	if err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"account_id":    account.ID,
		"campaign_id":   campaignID,
		"campaign_name": name,
	}).Info("executor: campaign created on platform")

	return campaignID, nil
}

// CreateAdSet cria um ad set na campanha informada. Se a plataforma recusar o
// destino WhatsApp e um número tiver sido enviado, tenta exatamente uma vez
// sem o número (caindo no destino padrão da página); qualquer outra falha é
// terminal
func (s *MetaIntegrator) CreateAdSet(account *domain.AdAccount, params *domain.PlatformAdSetParams) (string, error) {
	request, err := s.buildAdSetRequest(params)
	if err != nil {
		return "", err
	}

	adSetID, err := s.Client.CreateAdSet(account, request)
	if err == nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"adset_id":   adSetID,
			"adset_name": params.Name,
		}).Info("executor: ad set created on platform")
		return adSetID, nil
	}

	hadWhatsAppNumber := request.PromotedObject != nil && request.PromotedObject.WhatsAppPhoneNumber != ""
	if !metadomain.IsWhatsAppDestinationError(err) || !hadWhatsAppNumber {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"adset_name": params.Name,
		"error":      err.Error(),
	}).Warn("executor: WhatsApp destination rejected, retrying once without the number")

	request.PromotedObject.WhatsAppPhoneNumber = ""

	adSetID, err = s.Client.CreateAdSet(account, request)
	if err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"adset_id":   adSetID,
		"adset_name": params.Name,
	}).Info("executor: ad set created on platform after destination retry")

	return adSetID, nil
}

func (s *MetaIntegrator) buildAdSetRequest(params *domain.PlatformAdSetParams) (*metadomain.AdSetRequest, error) {
	optimizationGoal, ok := metadomain.OptimizationGoalByObjective[string(params.Objective)]
	if !ok {
		return nil, fmt.Errorf("objetivo sem mapeamento de otimização na plataforma: %s", params.Objective)
	}

	status := metadomain.StatusPaused
	if params.AutoActivate {
		status = metadomain.StatusActive
	}

	request := &metadomain.AdSetRequest{
		Name:             params.Name,
		CampaignID:       params.CampaignID,
		DailyBudgetCents: params.DailyBudgetCents,
		BillingEvent:     metadomain.BillingEventImpressions,
		OptimizationGoal: optimizationGoal,
		BidStrategy:      metadomain.BidStrategyLowestCostWithoutCap,
		Status:           status,
		Targeting: metadomain.Targeting{
			GeoLocations: metadomain.GeoLocations{
				Countries: []string{s.cfg.Campaign.DefaultCountry},
			},
			AgeMin: s.cfg.Campaign.DefaultAgeMin,
			AgeMax: s.cfg.Campaign.DefaultAgeMax,
		},
	}

	// Destino derivado do objetivo de otimização e da presença do número de
	// roteamento de conversas
	if optimizationGoal == metadomain.OptimizationGoalConversations {
		if s.cfg.Meta.WhatsAppNumber != "" {
			request.DestinationType = metadomain.DestinationTypeWhatsApp
			request.PromotedObject = &metadomain.PromotedObject{
				PageID:              s.cfg.Meta.PageID,
				WhatsAppPhoneNumber: s.cfg.Meta.WhatsAppNumber,
			}
		} else {
			request.DestinationType = metadomain.DestinationTypeMessenger
			request.PromotedObject = &metadomain.PromotedObject{
				PageID: s.cfg.Meta.PageID,
			}
		}
	} else {
		request.DestinationType = metadomain.DestinationTypeWebsite
	}

	if !params.StartImmediately {
		request.StartTime = NextMidnightStartTime(time.Now()).Format(time.RFC3339)
	}

	return request, nil
}

// CreateAds cria um anúncio por criativo no ad set. Criativo sem ID de
// plataforma para o objetivo é logado e pulado; falhas individuais são
// logadas e excluídas do resultado sem desfazer os anúncios já criados.
// O chamador compara o tamanho do resultado com a quantidade solicitada
// para detectar falha parcial
func (s *MetaIntegrator) CreateAds(account *domain.AdAccount, adSetID string, objective domain.Objective, creatives []*domain.Creative, activate bool) []*domain.CreatedAd {
	status := metadomain.StatusPaused
	if activate {
		status = metadomain.StatusActive
	}

	created := make([]*domain.CreatedAd, 0, len(creatives))
	for _, creative := range creatives {
		platformCreativeID := creative.PlatformIDForObjective(objective)
		if platformCreativeID == "" {
			logrus.WithFields(logrus.Fields{
				"account_id":  account.ID,
				"creative_id": creative.ID,
				"objective":   string(objective),
			}).Warn("executor: creative has no platform id for objective, skipping")
			continue
		}

		request := &metadomain.AdRequest{
			Name:    creative.Title,
			AdSetID: adSetID,
			Status:  status,
			Creative: metadomain.AdCreativeRef{
				CreativeID: platformCreativeID,
			},
		}

		adID, err := s.Client.CreateAd(account, request)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id":  account.ID,
				"adset_id":    adSetID,
				"creative_id": creative.ID,
				"error":       err.Error(),
			}).Error("executor: failed to create ad, continuing batch")
			continue
		}

		created = append(created, &domain.CreatedAd{
			AdID:               adID,
			CreativeID:         creative.ID,
			PlatformCreativeID: platformCreativeID,
		})
	}

	return created
}

// UpdateAdStatus altera o status de um objeto de anúncio na plataforma
func (s *MetaIntegrator) UpdateAdStatus(account *domain.AdAccount, objectID, status string) error {
	return s.Client.UpdateAdStatus(account, objectID, status)
}

// NextMidnightStartTime calcula a próxima meia-noite local no fuso de
// referência fixo UTC+5
func NextMidnightStartTime(now time.Time) time.Time {
	local := now.In(adSetStartZone)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, adSetStartZone).AddDate(0, 0, 1)
}

// FactoryCreativeMetricRows converte as linhas de insight da plataforma em
// linhas de métrica do domínio, extraindo leads e cliques de link do array de
// ações
func FactoryCreativeMetricRows(accountID, creativeID string, insights []metadomain.AdInsight) []*domain.CreativeMetricRow {
	rows := make([]*domain.CreativeMetricRow, 0, len(insights))

	for i := range insights {
		insight := insights[i]

		date, err := time.Parse(time.DateOnly, insight.DateStart)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"creative_id": creativeID,
				"date_start":  insight.DateStart,
				"error":       err.Error(),
			}).Warn("resolver: error parsing insight date, skipping row")
			continue
		}

		rows = append(rows, &domain.CreativeMetricRow{
			AccountID:    accountID,
			CreativeID:   creativeID,
			ExternalAdID: insight.AdID,
			Date:         date,
			Impressions:  parseIntField(insight.Impressions, "impressions"),
			Reach:        parseIntField(insight.Reach, "reach"),
			Spend:        parseFloatField(insight.Spend, "spend"),
			Clicks:       parseIntField(insight.Clicks, "clicks"),
			LinkClicks:   insight.LinkClicks(),
			Leads:        insight.Leads(),
			Frequency:    parseFloatField(insight.Frequency, "frequency"),
		})
	}

	return rows
}

func parseIntField(value, field string) int {
	if value == "" {
		return 0
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("resolver: error converting insight field to integer")
		return 0
	}
	return parsed
}

func parseFloatField(value, field string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("resolver: error converting insight field to float")
		return 0
	}
	return parsed
}
