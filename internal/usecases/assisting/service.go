package assisting

import (
	"context"
	"fmt"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/nachobar3/perfectstore-app/infrastructure/integrator/assistant"
	"github.com/nachobar3/perfectstore-app/infrastructure/repository"
	"github.com/nachobar3/perfectstore-app/internal/domain"
	"github.com/nachobar3/perfectstore-app/internal/usecases/aggregating"
	"github.com/nachobar3/perfectstore-app/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Ventanas del contexto del asistente, en días.
	shareWindowDays   = 30
	channelWindowDays = 7
	productWindowDays = 30

	unreadAlertsLimit = 5

	// ApologyMessage es la respuesta genérica cuando el gateway falla. El
	// detalle del error queda solo en los logs.
	ApologyMessage = "Lo siento, no pude procesar tu consulta en este momento. Por favor intentá de nuevo."
)

const systemPromptTemplate = `Eres un asistente de análisis comercial para la marca %s, una empresa de snacks saludables en Argentina.
Tu rol es ayudar a analistas y gerentes comerciales a entender sus datos de ventas y tomar decisiones.

DATOS ACTUALES DEL NEGOCIO:
%s

INSTRUCCIONES:
- Responde siempre en español
- Sé conciso pero informativo
- Cuando menciones números, formatea los valores monetarios con $ y usa separadores de miles
- Si te preguntan por regiones, canales, o productos específicos, usa los datos del contexto
- Sugiere acciones concretas cuando sea apropiado
- Si no tienes datos específicos para responder algo, indícalo claramente
- Puedes hacer comparaciones con la competencia usando los datos de market share
- El Perfect Store Score tiene 3 componentes: disponibilidad, precio competitivo, y distribución

FORMATO:
- Usa bullet points para listas
- Destaca los números importantes
- Si hay alertas relevantes a la pregunta, menciónalas`

// Service implementa Assister. Cada turno arma el contexto desde cero y lo
// reenvía entero: el gateway no guarda estado entre turnos.
type Service struct {
	gateway                assistant.Gateway
	sellOutRepository      repository.SellOutRepository
	marketShareRepository  repository.MarketShareRepository
	perfectStoreRepository repository.PerfectStoreRepository
	alertRepository        repository.AlertRepository
	catalogRepository      repository.CatalogRepository
}

func NewService(
	gateway assistant.Gateway,
	sellOutRepo repository.SellOutRepository,
	marketShareRepo repository.MarketShareRepository,
	perfectStoreRepo repository.PerfectStoreRepository,
	alertRepo repository.AlertRepository,
	catalogRepo repository.CatalogRepository,
) Assister {
	return &Service{
		gateway:                gateway,
		sellOutRepository:      sellOutRepo,
		marketShareRepository:  marketShareRepo,
		perfectStoreRepository: perfectStoreRepo,
		alertRepository:        alertRepo,
		catalogRepository:      catalogRepo,
	}
}

func (s *Service) Chat(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	if len(messages) == 0 {
		return "", fmt.Errorf("la conversación no tiene mensajes")
	}

	businessContext := s.buildContext()

	contextJSON, err := json.MarshalIndent(businessContext, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error al serializar el contexto de negocio: %w", err)
	}

	instructions := fmt.Sprintf(systemPromptTemplate, domain.BrandName, string(contextJSON))

	answer, err := s.gateway.Generate(ctx, instructions, messages)
	if err != nil {
		logrus.WithFields(logrus.Fields{"error": err}).
			Error("El gateway del asistente falló")
		return ApologyMessage, nil
	}

	return answer, nil
}

// buildContext junta todas las secciones en paralelo. Una sección caída se
// registra y queda vacía: el asistente responde con lo que haya.
func (s *Service) buildContext() *domain.AssistantContext {
	now := time.Now()

	var (
		wg sync.WaitGroup

		shareSummaries   []domain.RegionShareSummary
		scoreSummaries   []domain.ScoreSummary
		alertSummaries   []domain.AlertSummary
		channelSummaries []domain.ChannelShareSummary
		topProducts      []domain.ProductSales
		regions          []string
		channels         []string
	)

	wg.Add(6)

	go func() {
		defer wg.Done()
		shareSummaries = s.fetchShareSummaries(now)
	}()

	go func() {
		defer wg.Done()
		scoreSummaries = s.fetchScoreSummaries()
	}()

	go func() {
		defer wg.Done()
		alertSummaries = s.fetchAlertSummaries()
	}()

	go func() {
		defer wg.Done()
		channelSummaries = s.fetchChannelSummaries(now)
	}()

	go func() {
		defer wg.Done()
		topProducts = s.fetchTopProducts(now)
	}()

	go func() {
		defer wg.Done()
		regions, channels = s.fetchCatalog()
	}()

	wg.Wait()

	return &domain.AssistantContext{
		MarketShareByRegion: shareSummaries,
		PerfectStoreScores:  scoreSummaries,
		ActiveAlerts:        alertSummaries,
		SalesByChannel:      channelSummaries,
		TopProducts:         topProducts,
		BrandName:           domain.BrandName,
		Competitors:         domain.Competitors,
		Regions:             regions,
		Channels:            channels,
	}
}

func (s *Service) fetchShareSummaries(now time.Time) []domain.RegionShareSummary {
	rows, err := s.marketShareRepository.GetRawRows(now.AddDate(0, 0, -shareWindowDays))
	if err != nil {
		logrus.WithFields(logrus.Fields{"error": err}).
			Warn("No se pudo armar el market share para el asistente")
		return []domain.RegionShareSummary{}
	}

	shares := aggregating.ShareFromRawRows(rows)

	summaries := make([]domain.RegionShareSummary, 0, len(shares))
	for _, share := range shares {
		summaries = append(summaries, domain.RegionShareSummary{
			Region:  share.RegionName,
			Share:   utils.FormatPercentage(share.SharePct),
			Revenue: utils.FormatMoney(share.OwnRevenue),
		})
	}

	return summaries
}

func (s *Service) fetchScoreSummaries() []domain.ScoreSummary {
	scores, err := s.perfectStoreRepository.GetScores()
	if err != nil {
		logrus.WithFields(logrus.Fields{"error": err}).
			Warn("No se pudieron armar los puntajes para el asistente")
		return []domain.ScoreSummary{}
	}

	summaries := make([]domain.ScoreSummary, 0, len(scores))
	for _, score := range scores {
		summaries = append(summaries, domain.ScoreSummary{
			Region:       score.RegionName,
			Overall:      score.OverallScore,
			Availability: score.AvailabilityScore,
			Price:        score.PriceScore,
			Distribution: score.DistributionScore,
		})
	}

	return summaries
}

func (s *Service) fetchAlertSummaries() []domain.AlertSummary {
	alerts, err := s.alertRepository.ListUnread(unreadAlertsLimit)
	if err != nil {
		logrus.WithFields(logrus.Fields{"error": err}).
			Warn("No se pudieron armar las alertas para el asistente")
		return []domain.AlertSummary{}
	}

	summaries := make([]domain.AlertSummary, 0, len(alerts))
	for _, alert := range alerts {
		summaries = append(summaries, domain.AlertSummary{
			Type:        alert.Type,
			Severity:    alert.Severity,
			Title:       alert.Title,
			Description: alert.Description,
		})
	}

	return summaries
}

func (s *Service) fetchChannelSummaries(now time.Time) []domain.ChannelShareSummary {
	records, err := s.sellOutRepository.GetByDateRange(domain.LastDays(channelWindowDays, now))
	if err != nil {
		logrus.WithFields(logrus.Fields{"error": err}).
			Warn("No se pudo armar el mix de canales para el asistente")
		return []domain.ChannelShareSummary{}
	}

	channels := aggregating.SummaryByChannel(records)

	summaries := make([]domain.ChannelShareSummary, 0, len(channels))
	for _, channel := range channels {
		summaries = append(summaries, domain.ChannelShareSummary{
			Channel: channel.ChannelName,
			Revenue: int64(channel.OwnRevenue),
			Share:   utils.FormatPercentage(channel.SharePct),
		})
	}

	return summaries
}

func (s *Service) fetchTopProducts(now time.Time) []domain.ProductSales {
	ownOnly := true
	filters := domain.LastDays(productWindowDays, now)
	filters.OwnBrandOnly = &ownOnly

	records, err := s.sellOutRepository.GetByDateRange(filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{"error": err}).
			Warn("No se pudo armar el ranking de productos para el asistente")
		return []domain.ProductSales{}
	}

	return aggregating.TopProducts(aggregating.SalesByProduct(records), aggregating.TopProductsLimit)
}

// fetchCatalog devuelve las listas de nombres de regiones y canales. Si el
// catálogo no responde se usan las listas por defecto: el contexto del
// asistente nunca queda sin nombres.
func (s *Service) fetchCatalog() ([]string, []string) {
	regionNames := domain.DefaultRegions
	channelNames := domain.DefaultChannels

	regions, err := s.catalogRepository.ListRegions()
	if err != nil {
		logrus.WithFields(logrus.Fields{"error": err}).
			Warn("No se pudo leer el catálogo de regiones")
	} else if len(regions) > 0 {
		regionNames = make([]string, 0, len(regions))
		for _, region := range regions {
			regionNames = append(regionNames, region.Name)
		}
	}

	channels, err := s.catalogRepository.ListChannels()
	if err != nil {
		logrus.WithFields(logrus.Fields{"error": err}).
			Warn("No se pudo leer el catálogo de canales")
	} else if len(channels) > 0 {
		channelNames = make([]string, 0, len(channels))
		for _, channel := range channels {
			channelNames = append(channelNames, channel.Name)
		}
	}

	return regionNames, channelNames
}
