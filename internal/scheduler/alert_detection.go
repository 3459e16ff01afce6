package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/nachobar3/perfectstore-app/infrastructure/repository"
	"github.com/nachobar3/perfectstore-app/internal/config"
	"github.com/nachobar3/perfectstore-app/internal/domain"
	"github.com/nachobar3/perfectstore-app/internal/usecases/aggregating"
	"github.com/nachobar3/perfectstore-app/pkg/utils"
)

const (
	// Umbrales de detección.
	shareLossThresholdPts    = 2.0
	priceGapThresholdPct     = 10.0
	opportunityShareCapPct   = 15.0
	stockBreakSilenceDays    = 7
	dedupWindowDays          = 7
	minRegionRevenueOpportun = 10000.0
)

// AlertDetectionConfig representa la configuración del detector de alertas
type AlertDetectionConfig struct {
	CronSchedule  string
	LookbackDays  int
	RetentionDays int
	SyncEnabled   bool
}

// AlertDetectionService gestiona la ejecución programada de la detección de
// alertas comerciales. Recorre el sell-out de la ventana de análisis, deriva
// quiebres de stock, brechas de precio, caídas de share y oportunidades, y
// persiste lo que no esté ya informado.
type AlertDetectionService struct {
	scheduler           *gocron.Scheduler
	config              AlertDetectionConfig
	sellOutRepo         repository.SellOutRepository
	alertRepo           repository.AlertRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAlertDetectionService crea una nueva instancia del detector de alertas
func NewAlertDetectionService(
	sellOutRepo repository.SellOutRepository,
	alertRepo repository.AlertRepository,
	appConfig *config.Config,
) *AlertDetectionService {
	detectionConfig := AlertDetectionConfig{
		CronSchedule:  appConfig.AlertSync.CronSchedule,
		LookbackDays:  appConfig.AlertSync.LookbackDays,
		RetentionDays: appConfig.AlertSync.RetentionDays,
		SyncEnabled:   appConfig.AlertSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  detectionConfig.CronSchedule,
		"lookback_days":  detectionConfig.LookbackDays,
		"retention_days": detectionConfig.RetentionDays,
		"sync_enabled":   detectionConfig.SyncEnabled,
	}).Info("Configuración del detector de alertas cargada")

	return &AlertDetectionService{
		scheduler:   scheduler,
		config:      detectionConfig,
		sellOutRepo: sellOutRepo,
		alertRepo:   alertRepo,
		syncRunning: false,
	}
}

// Start inicia el agendador
func (s *AlertDetectionService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Detección de alertas deshabilitada por configuración")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de detección de alertas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDetection()
	})
	if err != nil {
		return fmt.Errorf("error al agendar la detección de alertas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de detección de alertas")
		s.scheduler.Stop()
	}()

	return nil
}

// runDetection ejecuta un ciclo completo: analiza la ventana, guarda alertas
// nuevas y limpia las viejas. Una ejecución en curso descarta la siguiente.
func (s *AlertDetectionService) runDetection() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Detección de alertas ya en curso, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando ciclo de detección de alertas")

	now := time.Now()

	records, err := s.sellOutRepo.GetByDateRange(domain.LastDays(s.config.LookbackDays, now))
	if err != nil {
		logrus.WithError(err).Error("Error al leer el sell-out para la detección de alertas")
		return
	}

	if len(records) == 0 {
		logrus.Info("Sin datos de sell-out en la ventana de análisis, nada que detectar")
		return
	}

	candidates := s.detect(records, now)

	saved := 0
	for _, candidate := range candidates {
		if s.saveIfNew(candidate, now) {
			saved++
		}
	}

	cleaned := s.cleanup()

	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"candidates": len(candidates),
		"saved":      saved,
		"cleaned":    cleaned,
		"duration":   time.Since(startTime).String(),
	}).Info("Ciclo de detección de alertas completado")
}

// detect deriva los candidatos a alerta a partir del sell-out de la ventana.
func (s *AlertDetectionService) detect(records []domain.SellOutRecord, now time.Time) []domain.Alert {
	candidates := make([]domain.Alert, 0)

	candidates = append(candidates, s.detectStockBreaks(records, now)...)
	candidates = append(candidates, s.detectPriceGaps(records)...)
	candidates = append(candidates, s.detectShareShifts(records, now)...)

	return candidates
}

// detectStockBreaks busca productos propios con ventas en la ventana pero sin
// movimiento en los últimos días: el patrón típico de un quiebre de stock.
func (s *AlertDetectionService) detectStockBreaks(records []domain.SellOutRecord, now time.Time) []domain.Alert {
	silenceStart := now.AddDate(0, 0, -stockBreakSilenceDays)

	lastSaleByProduct := make(map[string]time.Time)
	for _, record := range records {
		if !record.IsOwnBrand || record.Units == 0 {
			continue
		}
		if record.Date.After(lastSaleByProduct[record.ProductName]) {
			lastSaleByProduct[record.ProductName] = record.Date
		}
	}

	alerts := make([]domain.Alert, 0)
	for productName, lastSale := range lastSaleByProduct {
		if lastSale.Before(silenceStart) {
			alerts = append(alerts, domain.Alert{
				Type:     domain.AlertTypeStockBreak,
				Severity: domain.AlertSeverityHigh,
				Title:    fmt.Sprintf("Posible quiebre de stock: %s", productName),
				Description: fmt.Sprintf(
					"%s no registra ventas desde el %s a pesar de tener movimiento en la ventana de análisis.",
					productName, lastSale.Format(time.DateOnly),
				),
			})
		}
	}

	return alerts
}

// detectPriceGaps compara el precio promedio propio contra el de competidores
// por canal y alerta cuando la brecha supera el umbral.
func (s *AlertDetectionService) detectPriceGaps(records []domain.SellOutRecord) []domain.Alert {
	type channelPrices struct {
		ownSum, compSum     float64
		ownCount, compCount int
	}

	byChannel := make(map[string]*channelPrices)
	for _, record := range records {
		prices, ok := byChannel[record.ChannelName]
		if !ok {
			prices = &channelPrices{}
			byChannel[record.ChannelName] = prices
		}
		if record.IsOwnBrand {
			prices.ownSum += record.Price
			prices.ownCount++
		} else {
			prices.compSum += record.Price
			prices.compCount++
		}
	}

	alerts := make([]domain.Alert, 0)
	for channelName, prices := range byChannel {
		if prices.ownCount == 0 || prices.compCount == 0 {
			continue
		}

		avgOwn := prices.ownSum / float64(prices.ownCount)
		avgComp := prices.compSum / float64(prices.compCount)
		if avgComp <= 0 {
			continue
		}

		gapPct := (avgOwn - avgComp) / avgComp * 100
		if gapPct > priceGapThresholdPct {
			alerts = append(alerts, domain.Alert{
				Type:     domain.AlertTypePriceAlert,
				Severity: domain.AlertSeverityMedium,
				Title:    fmt.Sprintf("Brecha de precio en %s", channelName),
				Description: fmt.Sprintf(
					"El precio promedio propio en %s está %.1f%% por encima de la competencia (%s vs %s).",
					channelName, gapPct, utils.FormatMoney(avgOwn), utils.FormatMoney(avgComp),
				),
			})
		}
	}

	return alerts
}

// detectShareShifts parte la ventana en dos mitades y compara la
// participación por región entre ambas: caídas fuertes generan share_loss y
// regiones grandes con participación baja generan opportunity.
func (s *AlertDetectionService) detectShareShifts(records []domain.SellOutRecord, now time.Time) []domain.Alert {
	halfStart := now.AddDate(0, 0, -s.config.LookbackDays/2)

	recentHalf := make([]domain.SellOutRecord, 0, len(records)/2)
	olderHalf := make([]domain.SellOutRecord, 0, len(records)/2)
	for _, record := range records {
		if record.Date.Before(halfStart) {
			olderHalf = append(olderHalf, record)
		} else {
			recentHalf = append(recentHalf, record)
		}
	}

	recentShares := aggregating.ShareByRegion(recentHalf)
	olderShares := aggregating.ShareByRegion(olderHalf)

	olderByRegion := make(map[string]domain.RegionShare, len(olderShares))
	for _, share := range olderShares {
		olderByRegion[share.RegionName] = share
	}

	alerts := make([]domain.Alert, 0)
	for _, recent := range recentShares {
		older, ok := olderByRegion[recent.RegionName]
		if ok && older.SharePct-recent.SharePct > shareLossThresholdPts {
			alerts = append(alerts, domain.Alert{
				Type:     domain.AlertTypeShareLoss,
				Severity: domain.AlertSeverityHigh,
				Title:    fmt.Sprintf("Caída de participación en %s", recent.RegionName),
				Description: fmt.Sprintf(
					"La participación en %s bajó de %.1f%% a %.1f%% dentro de la ventana de análisis.",
					recent.RegionName, older.SharePct, recent.SharePct,
				),
			})
		}

		if recent.SharePct < opportunityShareCapPct && recent.TotalRevenue >= minRegionRevenueOpportun {
			alerts = append(alerts, domain.Alert{
				Type:     domain.AlertTypeOpportunity,
				Severity: domain.AlertSeverityLow,
				Title:    fmt.Sprintf("Oportunidad de crecimiento en %s", recent.RegionName),
				Description: fmt.Sprintf(
					"%s mueve %s en el período con solo %.1f%% de participación propia.",
					recent.RegionName, utils.FormatMoney(recent.TotalRevenue), recent.SharePct,
				),
			})
		}
	}

	return alerts
}

// saveIfNew persiste el candidato salvo que ya exista una alerta equivalente
// dentro de la ventana de deduplicación.
func (s *AlertDetectionService) saveIfNew(candidate domain.Alert, now time.Time) bool {
	exists, err := s.alertRepo.ExistsRecent(candidate.Type, candidate.Title, now.AddDate(0, 0, -dedupWindowDays))
	if err != nil {
		logrus.WithError(err).WithField("title", candidate.Title).
			Error("Error al verificar duplicados de alerta")
		return false
	}
	if exists {
		return false
	}

	id, err := utils.GenerateAlertID()
	if err != nil {
		logrus.WithError(err).Error("Error al generar el identificador de la alerta")
		return false
	}

	candidate.ID = id
	candidate.CreatedAt = now

	if err := s.alertRepo.Save(&candidate); err != nil {
		logrus.WithError(err).WithField("title", candidate.Title).
			Error("Error al guardar la alerta")
		return false
	}

	logrus.WithFields(logrus.Fields{
		"id":       candidate.ID,
		"type":     candidate.Type,
		"severity": candidate.Severity,
		"title":    candidate.Title,
	}).Info("Alerta nueva guardada")

	return true
}

func (s *AlertDetectionService) cleanup() int64 {
	cleaned, err := s.alertRepo.DeleteOlderThan(s.config.RetentionDays)
	if err != nil {
		logrus.WithError(err).Error("Error al limpiar alertas viejas")
		return 0
	}
	return cleaned
}

// TriggerManualSync inicia manualmente un ciclo de detección de alertas
func (s *AlertDetectionService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Detección de alertas ya en curso, ignorando solicitud manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando detección manual de alertas")
	go s.runDetection()
}

// GetStatus retorna el estado actual del agendador
func (s *AlertDetectionService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"retention_days":         s.config.RetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
