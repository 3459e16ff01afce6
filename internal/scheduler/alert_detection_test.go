package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/nachobar3/perfectstore-app/infrastructure/repository/mocks"
	"github.com/nachobar3/perfectstore-app/internal/domain"
)

func TestAlertDetectionService_runDetection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownRecord := func(daysAgo int, product, region, channel string, units int, revenue, price float64) domain.SellOutRecord {
		return domain.SellOutRecord{
			Date:        time.Now().AddDate(0, 0, -daysAgo),
			ProductName: product,
			IsOwnBrand:  true,
			ChannelName: channel,
			RegionName:  region,
			Units:       units,
			Revenue:     revenue,
			Price:       price,
		}
	}

	competitorRecord := func(daysAgo int, product, region, channel string, units int, revenue, price float64) domain.SellOutRecord {
		record := ownRecord(daysAgo, product, region, channel, units, revenue, price)
		record.IsOwnBrand = false
		record.BrandName = "Lays"
		return record
	}

	tests := []struct {
		name  string
		setup func(sellOut *mocks.MockSellOutRepository, alert *mocks.MockAlertRepository)
	}{
		{
			name: "Producto propio sin ventas recientes genera quiebre de stock",
			setup: func(sellOut *mocks.MockSellOutRepository, alert *mocks.MockAlertRepository) {
				// Ventas hace 20 días y silencio desde entonces.
				sellOut.EXPECT().GetByDateRange(gomock.Any()).Return([]domain.SellOutRecord{
					ownRecord(20, "Chips Clásicas", "AMBA", "Kiosco", 10, 100, 10),
					ownRecord(25, "Chips Clásicas", "AMBA", "Kiosco", 5, 50, 10),
				}, nil)

				alert.EXPECT().
					ExistsRecent(domain.AlertTypeStockBreak, gomock.Any(), gomock.Any()).
					Return(false, nil)

				alert.EXPECT().Save(gomock.Any()).DoAndReturn(func(saved *domain.Alert) error {
					assert.Equal(t, domain.AlertTypeStockBreak, saved.Type)
					assert.Equal(t, domain.AlertSeverityHigh, saved.Severity)
					assert.Contains(t, saved.Title, "Chips Clásicas")
					assert.NotEmpty(t, saved.ID)
					assert.False(t, saved.CreatedAt.IsZero())
					return nil
				})

				alert.EXPECT().DeleteOlderThan(90).Return(int64(0), nil)
			},
		},
		{
			name: "Una alerta equivalente reciente no se duplica",
			setup: func(sellOut *mocks.MockSellOutRepository, alert *mocks.MockAlertRepository) {
				sellOut.EXPECT().GetByDateRange(gomock.Any()).Return([]domain.SellOutRecord{
					ownRecord(20, "Chips Clásicas", "AMBA", "Kiosco", 10, 100, 10),
				}, nil)

				alert.EXPECT().
					ExistsRecent(domain.AlertTypeStockBreak, gomock.Any(), gomock.Any()).
					Return(true, nil)

				alert.EXPECT().DeleteOlderThan(90).Return(int64(2), nil)
			},
		},
		{
			name: "Caída fuerte de participación entre mitades genera share_loss",
			setup: func(sellOut *mocks.MockSellOutRepository, alert *mocks.MockAlertRepository) {
				sellOut.EXPECT().GetByDateRange(gomock.Any()).Return([]domain.SellOutRecord{
					// Mitad vieja: 50% de participación en AMBA.
					ownRecord(25, "Chips Clásicas", "AMBA", "Kiosco", 5, 50, 10),
					competitorRecord(25, "Lays Original", "AMBA", "Kiosco", 5, 50, 10),
					// Mitad reciente: 10% de participación.
					ownRecord(2, "Chips Clásicas", "AMBA", "Kiosco", 1, 10, 10),
					competitorRecord(2, "Lays Original", "AMBA", "Kiosco", 9, 90, 10),
				}, nil)

				alert.EXPECT().
					ExistsRecent(domain.AlertTypeShareLoss, gomock.Any(), gomock.Any()).
					Return(false, nil)

				alert.EXPECT().Save(gomock.Any()).DoAndReturn(func(saved *domain.Alert) error {
					assert.Equal(t, domain.AlertTypeShareLoss, saved.Type)
					assert.Contains(t, saved.Title, "AMBA")
					return nil
				})

				alert.EXPECT().DeleteOlderThan(90).Return(int64(0), nil)
			},
		},
		{
			name: "Precio propio muy por encima de la competencia genera price_alert",
			setup: func(sellOut *mocks.MockSellOutRepository, alert *mocks.MockAlertRepository) {
				sellOut.EXPECT().GetByDateRange(gomock.Any()).Return([]domain.SellOutRecord{
					ownRecord(2, "Chips Clásicas", "AMBA", "Supermercado", 10, 1500, 150),
					competitorRecord(2, "Lays Original", "AMBA", "Supermercado", 10, 1000, 100),
				}, nil)

				alert.EXPECT().
					ExistsRecent(domain.AlertTypePriceAlert, gomock.Any(), gomock.Any()).
					Return(false, nil)

				alert.EXPECT().Save(gomock.Any()).DoAndReturn(func(saved *domain.Alert) error {
					assert.Equal(t, domain.AlertTypePriceAlert, saved.Type)
					assert.Equal(t, domain.AlertSeverityMedium, saved.Severity)
					assert.Contains(t, saved.Title, "Supermercado")
					return nil
				})

				alert.EXPECT().DeleteOlderThan(90).Return(int64(0), nil)
			},
		},
		{
			name: "Sin datos en la ventana no se guarda ni limpia nada",
			setup: func(sellOut *mocks.MockSellOutRepository, alert *mocks.MockAlertRepository) {
				sellOut.EXPECT().GetByDateRange(gomock.Any()).Return([]domain.SellOutRecord{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSellOutRepo := mocks.NewMockSellOutRepository(ctrl)
			mockAlertRepo := mocks.NewMockAlertRepository(ctrl)

			tt.setup(mockSellOutRepo, mockAlertRepo)

			service := &AlertDetectionService{
				config: AlertDetectionConfig{
					CronSchedule:  "0 7 * * *",
					LookbackDays:  30,
					RetentionDays: 90,
					SyncEnabled:   true,
				},
				sellOutRepo: mockSellOutRepo,
				alertRepo:   mockAlertRepo,
			}

			service.runDetection()

			assert.False(t, service.syncRunning)
		})
	}
}

func TestAlertDetectionService_GetStatus(t *testing.T) {
	service := &AlertDetectionService{
		config: AlertDetectionConfig{
			CronSchedule:  "0 7 * * *",
			LookbackDays:  30,
			RetentionDays: 90,
			SyncEnabled:   true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 7 * * *", status["sync_cron"])
	assert.Equal(t, 30, status["sync_lookback_days"])
	assert.Equal(t, 90, status["retention_days"])
}
