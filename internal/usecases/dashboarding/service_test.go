package dashboarding

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/nachobar3/perfectstore-app/infrastructure/repository/mocks"
	"github.com/nachobar3/perfectstore-app/internal/domain"
)

func TestService_GetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	sellOutRecords := []domain.SellOutRecord{
		{
			Date:        day,
			ProductName: "Chips Clásicas",
			IsOwnBrand:  true,
			ChannelName: "Supermercado",
			RegionName:  "AMBA",
			Units:       10,
			Revenue:     100,
			Price:       10,
		},
		{
			Date:        day,
			ProductName: "Lays Original",
			IsOwnBrand:  false,
			ChannelName: "Supermercado",
			RegionName:  "AMBA",
			Units:       30,
			Revenue:     300,
			Price:       10,
		},
	}

	regionShares := []domain.RegionShare{
		{RegionName: "AMBA", OwnRevenue: 100, TotalRevenue: 400, SharePct: 25},
	}

	scores := []domain.PerfectStoreScore{
		{RegionID: "R1", RegionName: "AMBA", OverallScore: 82},
	}

	alerts := []domain.Alert{
		{ID: "alr_1", Type: domain.AlertTypeStockBreak, Severity: domain.AlertSeverityHigh, Title: "Quiebre de stock"},
	}

	tests := []struct {
		name     string
		setup    func(sellOut *mocks.MockSellOutRepository, share *mocks.MockMarketShareRepository, store *mocks.MockPerfectStoreRepository, alert *mocks.MockAlertRepository)
		validate func(t *testing.T, result *domain.DashboardResponse)
	}{
		{
			name: "Tablero completo con el procedimiento agregado disponible",
			setup: func(sellOut *mocks.MockSellOutRepository, share *mocks.MockMarketShareRepository, store *mocks.MockPerfectStoreRepository, alert *mocks.MockAlertRepository) {
				sellOut.EXPECT().GetByDateRange(gomock.Any()).Return(sellOutRecords, nil).Times(4)
				share.EXPECT().GetShareByRegion().Return(regionShares, nil)
				store.EXPECT().GetScores().Return(scores, nil)
				alert.EXPECT().ListRecent(uint64(dashboardAlertsLimit)).Return(alerts, nil)
			},
			validate: func(t *testing.T, result *domain.DashboardResponse) {
				assert.Equal(t, domain.SourcePreAggregated, result.MarketShareSource)
				assert.Equal(t, regionShares, result.MarketShare)
				assert.Equal(t, scores, result.PerfectStore)
				assert.Equal(t, alerts, result.Alerts)

				assert.NotNil(t, result.KPIs)
				assert.Equal(t, 100.0, result.KPIs.TotalRevenue)
				assert.Equal(t, 25.0, result.KPIs.MarketSharePct)

				assert.Len(t, result.Channels, 1)
				assert.Equal(t, "Supermercado", result.Channels[0].ChannelName)

				assert.Len(t, result.TopProducts, 1)
				assert.Equal(t, "Chips Clásicas", result.TopProducts[0].ProductName)

				assert.Len(t, result.Trend, 1)
				assert.False(t, result.GeneratedAt.IsZero())
			},
		},
		{
			name: "Procedimiento caído recalcula el share desde filas crudas",
			setup: func(sellOut *mocks.MockSellOutRepository, share *mocks.MockMarketShareRepository, store *mocks.MockPerfectStoreRepository, alert *mocks.MockAlertRepository) {
				sellOut.EXPECT().GetByDateRange(gomock.Any()).Return(sellOutRecords, nil).Times(4)
				share.EXPECT().GetShareByRegion().Return(nil, errors.New("procedimiento no disponible"))
				share.EXPECT().GetRawRows(gomock.Any()).Return([]domain.MarketShareRow{
					{RegionName: "AMBA", TotalRevenue: 100, IsOwnBrand: true},
					{RegionName: "AMBA", TotalRevenue: 300, IsOwnBrand: false},
				}, nil)
				store.EXPECT().GetScores().Return(scores, nil)
				alert.EXPECT().ListRecent(uint64(dashboardAlertsLimit)).Return(alerts, nil)
			},
			validate: func(t *testing.T, result *domain.DashboardResponse) {
				assert.Equal(t, domain.SourceManual, result.MarketShareSource)
				assert.Len(t, result.MarketShare, 1)
				assert.Equal(t, 25.0, result.MarketShare[0].SharePct)
			},
		},
		{
			name: "Todas las fuentes caídas degradan a secciones vacías sin fallar",
			setup: func(sellOut *mocks.MockSellOutRepository, share *mocks.MockMarketShareRepository, store *mocks.MockPerfectStoreRepository, alert *mocks.MockAlertRepository) {
				dbDown := errors.New("conexión rechazada")
				sellOut.EXPECT().GetByDateRange(gomock.Any()).Return(nil, dbDown).Times(4)
				share.EXPECT().GetShareByRegion().Return(nil, dbDown)
				share.EXPECT().GetRawRows(gomock.Any()).Return(nil, dbDown)
				store.EXPECT().GetScores().Return(nil, dbDown)
				alert.EXPECT().ListRecent(uint64(dashboardAlertsLimit)).Return(nil, dbDown)
			},
			validate: func(t *testing.T, result *domain.DashboardResponse) {
				assert.Equal(t, domain.SourceManual, result.MarketShareSource)
				assert.Empty(t, result.MarketShare)
				assert.Empty(t, result.Trend)
				assert.Empty(t, result.Channels)
				assert.Empty(t, result.TopProducts)
				assert.Empty(t, result.PerfectStore)
				assert.Empty(t, result.Alerts)

				assert.NotNil(t, result.KPIs)
				assert.Equal(t, 0.0, result.KPIs.TotalRevenue)
				assert.Equal(t, domain.PlaceholderAvailabilityPct, result.KPIs.AvailabilityPct)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSellOutRepo := mocks.NewMockSellOutRepository(ctrl)
			mockShareRepo := mocks.NewMockMarketShareRepository(ctrl)
			mockStoreRepo := mocks.NewMockPerfectStoreRepository(ctrl)
			mockAlertRepo := mocks.NewMockAlertRepository(ctrl)

			tt.setup(mockSellOutRepo, mockShareRepo, mockStoreRepo, mockAlertRepo)

			service := NewService(mockSellOutRepo, mockShareRepo, mockStoreRepo, mockAlertRepo)

			result, err := service.GetDashboard()

			assert.NoError(t, err)
			assert.NotNil(t, result)
			tt.validate(t, result)
		})
	}
}

func TestService_GetTrend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	records := []domain.SellOutRecord{
		{
			Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			ProductName: "Chips Clásicas",
			IsOwnBrand:  true,
			RegionName:  "AMBA",
			ChannelName: "Kiosco",
			Units:       1,
			Revenue:     100,
			Price:       10,
		},
	}

	t.Run("Semanas inválidas usan la ventana por defecto", func(t *testing.T) {
		mockSellOutRepo := mocks.NewMockSellOutRepository(ctrl)
		mockSellOutRepo.EXPECT().
			GetByDateRange(gomock.Any()).
			DoAndReturn(func(filters *domain.SellOutFilters) ([]domain.SellOutRecord, error) {
				days := int(filters.EndDate.Sub(*filters.StartDate).Hours() / 24)
				assert.Equal(t, defaultTrendWeeks*7+1, days)
				return records, nil
			})

		service := NewService(mockSellOutRepo, nil, nil, nil)

		result, err := service.GetTrend(0)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, "2025-03-09", result[0].WeekStart)
	})

	t.Run("El error del repositorio se propaga", func(t *testing.T) {
		mockSellOutRepo := mocks.NewMockSellOutRepository(ctrl)
		mockSellOutRepo.EXPECT().
			GetByDateRange(gomock.Any()).
			Return(nil, errors.New("conexión rechazada"))

		service := NewService(mockSellOutRepo, nil, nil, nil)

		result, err := service.GetTrend(12)

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
