package domain

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage es un turno de la conversación con el asistente.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// RegionShareSummary es la versión condensada del share regional que se
// inyecta en el prompt del asistente, con valores ya formateados.
type RegionShareSummary struct {
	Region  string `json:"region"`
	Share   string `json:"share"`
	Revenue string `json:"revenue"`
}

// ChannelShareSummary resume el mix de canal para el asistente.
type ChannelShareSummary struct {
	Channel string `json:"channel"`
	Revenue int64  `json:"revenue"`
	Share   string `json:"share"`
}

// ScoreSummary condensa el Perfect Store Score por región.
type ScoreSummary struct {
	Region       string  `json:"region"`
	Overall      float64 `json:"overall"`
	Availability float64 `json:"availability"`
	Price        float64 `json:"price"`
	Distribution float64 `json:"distribution"`
}

// AlertSummary condensa una alerta activa para el asistente.
type AlertSummary struct {
	Type        AlertType     `json:"type"`
	Severity    AlertSeverity `json:"severity"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
}

// AssistantContext es el documento autocontenido que recibe el gateway del
// asistente. Es la única vía de acceso del modelo a los datos del negocio:
// el gateway nunca consulta el almacén directamente.
type AssistantContext struct {
	MarketShareByRegion []RegionShareSummary  `json:"marketShareByRegion"`
	PerfectStoreScores  []ScoreSummary        `json:"perfectStoreScores"`
	ActiveAlerts        []AlertSummary        `json:"activeAlerts"`
	SalesByChannel      []ChannelShareSummary `json:"salesByChannel"`
	TopProducts         []ProductSales        `json:"topProducts"`
	BrandName           string                `json:"brandName"`
	Competitors         []string              `json:"competitors"`
	Regions             []string              `json:"regions"`
	Channels            []string              `json:"channels"`
}
