package dashboarding

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nachobar3/perfectstore-app/infrastructure/repository"
	"github.com/nachobar3/perfectstore-app/internal/domain"
	"github.com/nachobar3/perfectstore-app/internal/usecases/aggregating"
)

const (
	// Ventanas de cálculo, en días.
	kpiWindowDays   = 30
	priceWindowDays = 7
	trendWindowDays = 90

	defaultTrendWeeks = 12
	maxTrendWeeks     = 52

	dashboardAlertsLimit = 10
)

// Service implementa Dashboarder sobre los repositorios de lectura. Cada
// sección del tablero se busca en paralelo y degrada a vacío ante errores:
// un refresco nunca falla completo por una sección caída.
type Service struct {
	sellOutRepository      repository.SellOutRepository
	marketShareRepository  repository.MarketShareRepository
	perfectStoreRepository repository.PerfectStoreRepository
	alertRepository        repository.AlertRepository
}

func NewService(
	sellOutRepo repository.SellOutRepository,
	marketShareRepo repository.MarketShareRepository,
	perfectStoreRepo repository.PerfectStoreRepository,
	alertRepo repository.AlertRepository,
) Dashboarder {
	return &Service{
		sellOutRepository:      sellOutRepo,
		marketShareRepository:  marketShareRepo,
		perfectStoreRepository: perfectStoreRepo,
		alertRepository:        alertRepo,
	}
}

// GetDashboard busca todas las secciones en paralelo y arma la respuesta.
func (s *Service) GetDashboard() (*domain.DashboardResponse, error) {
	now := time.Now()

	var (
		wg sync.WaitGroup

		currentWindow  []domain.SellOutRecord
		previousWindow []domain.SellOutRecord
		priceWindow    []domain.SellOutRecord
		trendWindow    []domain.SellOutRecord

		marketShare []domain.RegionShare
		shareSource domain.MarketShareSource

		scores []domain.PerfectStoreScore
		alerts []domain.Alert
	)

	wg.Add(7)

	go func() {
		defer wg.Done()
		currentWindow = s.fetchSellOut(domain.LastDays(kpiWindowDays, now), "ventana actual")
	}()

	go func() {
		defer wg.Done()
		previousWindow = s.fetchSellOut(domain.PreviousDays(kpiWindowDays, now), "ventana anterior")
	}()

	go func() {
		defer wg.Done()
		priceWindow = s.fetchSellOut(domain.LastDays(priceWindowDays, now), "ventana de precios")
	}()

	go func() {
		defer wg.Done()
		trendWindow = s.fetchSellOut(domain.LastDays(trendWindowDays, now), "ventana de tendencia")
	}()

	go func() {
		defer wg.Done()
		marketShare, shareSource = s.fetchMarketShare(now)
	}()

	go func() {
		defer wg.Done()
		var err error
		scores, err = s.perfectStoreRepository.GetScores()
		if err != nil {
			logrus.WithFields(logrus.Fields{"error": err}).
				Warn("No se pudieron obtener los puntajes de ejecución")
			scores = []domain.PerfectStoreScore{}
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		alerts, err = s.alertRepository.ListRecent(dashboardAlertsLimit)
		if err != nil {
			logrus.WithFields(logrus.Fields{"error": err}).
				Warn("No se pudieron obtener las alertas recientes")
			alerts = []domain.Alert{}
		}
	}()

	wg.Wait()

	products := aggregating.SalesByProduct(currentWindow)

	return &domain.DashboardResponse{
		KPIs:              aggregating.ComputeKPIs(currentWindow, previousWindow, priceWindow),
		MarketShare:       marketShare,
		MarketShareSource: shareSource,
		Trend:             aggregating.WeeklyTrend(trendWindow),
		Channels:          aggregating.SummaryByChannel(currentWindow),
		TopProducts:       aggregating.TopProducts(products, aggregating.TopProductsLimit),
		PerfectStore:      scores,
		Alerts:            alerts,
		GeneratedAt:       now,
	}, nil
}

// GetTrend busca la serie semanal para la cantidad de semanas pedida.
func (s *Service) GetTrend(weeks int) ([]domain.WeekBucket, error) {
	if weeks <= 0 {
		weeks = defaultTrendWeeks
	}
	if weeks > maxTrendWeeks {
		weeks = maxTrendWeeks
	}

	records, err := s.sellOutRepository.GetByDateRange(domain.LastDays(weeks*7, time.Now()))
	if err != nil {
		return nil, err
	}

	return aggregating.WeeklyTrend(records), nil
}

func (s *Service) fetchSellOut(filters *domain.SellOutFilters, window string) []domain.SellOutRecord {
	records, err := s.sellOutRepository.GetByDateRange(filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"window": window,
			"error":  err,
		}).Warn("No se pudo obtener el sell-out de la ventana")
		return []domain.SellOutRecord{}
	}
	return records
}

// fetchMarketShare decide la estrategia una sola vez por refresco: primero el
// procedimiento agregado y, si falla, el recálculo manual sobre filas crudas.
func (s *Service) fetchMarketShare(now time.Time) ([]domain.RegionShare, domain.MarketShareSource) {
	shares, err := s.marketShareRepository.GetShareByRegion()
	if err == nil {
		return shares, domain.SourcePreAggregated
	}

	logrus.WithFields(logrus.Fields{"error": err}).
		Warn("Procedimiento de market share no disponible, recalculando desde filas crudas")

	rows, err := s.marketShareRepository.GetRawRows(now.AddDate(0, 0, -kpiWindowDays))
	if err != nil {
		logrus.WithFields(logrus.Fields{"error": err}).
			Warn("Tampoco se pudieron obtener las filas crudas de market share")
		return []domain.RegionShare{}, domain.SourceManual
	}

	return aggregating.ShareFromRawRows(rows), domain.SourceManual
}
