package assisting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	assistantmocks "github.com/nachobar3/perfectstore-app/infrastructure/integrator/assistant/mocks"
	"github.com/nachobar3/perfectstore-app/infrastructure/repository/mocks"
	"github.com/nachobar3/perfectstore-app/internal/domain"
)

type serviceMocks struct {
	gateway     *assistantmocks.MockGateway
	sellOutRepo *mocks.MockSellOutRepository
	shareRepo   *mocks.MockMarketShareRepository
	storeRepo   *mocks.MockPerfectStoreRepository
	alertRepo   *mocks.MockAlertRepository
	catalogRepo *mocks.MockCatalogRepository
}

func newServiceMocks(ctrl *gomock.Controller) *serviceMocks {
	return &serviceMocks{
		gateway:     assistantmocks.NewMockGateway(ctrl),
		sellOutRepo: mocks.NewMockSellOutRepository(ctrl),
		shareRepo:   mocks.NewMockMarketShareRepository(ctrl),
		storeRepo:   mocks.NewMockPerfectStoreRepository(ctrl),
		alertRepo:   mocks.NewMockAlertRepository(ctrl),
		catalogRepo: mocks.NewMockCatalogRepository(ctrl),
	}
}

func (m *serviceMocks) newService() Assister {
	return NewService(m.gateway, m.sellOutRepo, m.shareRepo, m.storeRepo, m.alertRepo, m.catalogRepo)
}

func TestService_Chat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	day := time.Now()

	conversation := []domain.ChatMessage{
		{Role: domain.ChatRoleUser, Content: "¿Cómo viene el share en AMBA?"},
	}

	t.Run("El contexto completo viaja en las instrucciones de sistema", func(t *testing.T) {
		m := newServiceMocks(ctrl)

		m.shareRepo.EXPECT().GetRawRows(gomock.Any()).Return([]domain.MarketShareRow{
			{RegionName: "AMBA", TotalRevenue: 250000, IsOwnBrand: true},
			{RegionName: "AMBA", TotalRevenue: 750000, IsOwnBrand: false},
		}, nil)

		m.storeRepo.EXPECT().GetScores().Return([]domain.PerfectStoreScore{
			{RegionName: "AMBA", OverallScore: 82, AvailabilityScore: 78, PriceScore: 85, DistributionScore: 83},
		}, nil)

		m.alertRepo.EXPECT().ListUnread(uint64(unreadAlertsLimit)).Return([]domain.Alert{
			{Type: domain.AlertTypeStockBreak, Severity: domain.AlertSeverityHigh, Title: "Quiebre en Kiosco"},
		}, nil)

		// Mix de canales (7 días) y ranking de productos (30 días, solo
		// marca propia) salen ambos del sell-out.
		m.sellOutRepo.EXPECT().GetByDateRange(gomock.Any()).DoAndReturn(
			func(filters *domain.SellOutFilters) ([]domain.SellOutRecord, error) {
				return []domain.SellOutRecord{
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
				}, nil
			},
		).Times(2)

		m.catalogRepo.EXPECT().ListRegions().Return([]domain.Region{{ID: "R1", Name: "AMBA"}}, nil)
		m.catalogRepo.EXPECT().ListChannels().Return([]domain.Channel{{ID: "C1", Name: "Kiosco"}}, nil)

		m.gateway.EXPECT().
			Generate(gomock.Any(), gomock.Any(), conversation).
			DoAndReturn(func(_ context.Context, instructions string, _ []domain.ChatMessage) (string, error) {
				assert.Contains(t, instructions, "NutriSnack")
				assert.Contains(t, instructions, "DATOS ACTUALES DEL NEGOCIO")

				// Share 250000/1000000 formateado con un decimal y pesos.
				assert.Contains(t, instructions, `"share": "25.0%"`)
				assert.Contains(t, instructions, `"revenue": "$250,000"`)

				assert.Contains(t, instructions, "Quiebre en Kiosco")
				assert.Contains(t, instructions, "Chips Clásicas")
				assert.Contains(t, instructions, "PepsiCo (Lays)")

				return "El share en AMBA es 25.0%", nil
			})

		answer, err := m.newService().Chat(context.Background(), conversation)

		assert.NoError(t, err)
		assert.Equal(t, "El share en AMBA es 25.0%", answer)
	})

	t.Run("Las fuentes caídas no impiden responder", func(t *testing.T) {
		m := newServiceMocks(ctrl)
		dbDown := errors.New("conexión rechazada")

		m.shareRepo.EXPECT().GetRawRows(gomock.Any()).Return(nil, dbDown)
		m.storeRepo.EXPECT().GetScores().Return(nil, dbDown)
		m.alertRepo.EXPECT().ListUnread(uint64(unreadAlertsLimit)).Return(nil, dbDown)
		m.sellOutRepo.EXPECT().GetByDateRange(gomock.Any()).Return(nil, dbDown).Times(2)
		m.catalogRepo.EXPECT().ListRegions().Return(nil, dbDown)
		m.catalogRepo.EXPECT().ListChannels().Return(nil, dbDown)

		m.gateway.EXPECT().
			Generate(gomock.Any(), gomock.Any(), conversation).
			DoAndReturn(func(_ context.Context, instructions string, _ []domain.ChatMessage) (string, error) {
				// Con el catálogo caído se usan las listas por defecto.
				assert.Contains(t, instructions, "Córdoba")
				assert.Contains(t, instructions, "Almacén")
				return "Respuesta con contexto parcial", nil
			})

		answer, err := m.newService().Chat(context.Background(), conversation)

		assert.NoError(t, err)
		assert.Equal(t, "Respuesta con contexto parcial", answer)
	})

	t.Run("El gateway caído devuelve la disculpa genérica", func(t *testing.T) {
		m := newServiceMocks(ctrl)
		dbDown := errors.New("conexión rechazada")

		m.shareRepo.EXPECT().GetRawRows(gomock.Any()).Return(nil, dbDown)
		m.storeRepo.EXPECT().GetScores().Return(nil, dbDown)
		m.alertRepo.EXPECT().ListUnread(uint64(unreadAlertsLimit)).Return(nil, dbDown)
		m.sellOutRepo.EXPECT().GetByDateRange(gomock.Any()).Return(nil, dbDown).Times(2)
		m.catalogRepo.EXPECT().ListRegions().Return(nil, dbDown)
		m.catalogRepo.EXPECT().ListChannels().Return(nil, dbDown)

		m.gateway.EXPECT().
			Generate(gomock.Any(), gomock.Any(), conversation).
			Return("", errors.New("límite de cuota alcanzado"))

		answer, err := m.newService().Chat(context.Background(), conversation)

		assert.NoError(t, err)
		assert.Equal(t, ApologyMessage, answer)
	})

	t.Run("Una conversación vacía es un error del cliente", func(t *testing.T) {
		m := newServiceMocks(ctrl)

		answer, err := m.newService().Chat(context.Background(), []domain.ChatMessage{})

		assert.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "mensajes"))
		assert.Empty(t, answer)
	})
}
