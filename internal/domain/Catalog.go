package domain

// BrandName es la marca dueña del tablero.
const BrandName = "NutriSnack"

// Competitors son las marcas competidoras de referencia. Lista estática:
// el almacén no las modela como catálogo propio.
var Competitors = []string{"PepsiCo (Lays)", "Arcor", "Mondelez", "Georgalos"}

// DefaultRegions y DefaultChannels se usan cuando la consulta de catálogo
// falla, para que el contexto del asistente nunca quede sin listas de nombres.
var (
	DefaultRegions  = []string{"AMBA", "Córdoba", "Mendoza", "Rosario", "Tucumán"}
	DefaultChannels = []string{"Supermercado", "Autoservicio", "Kiosco", "Almacén"}
)

// Region y Channel son las entradas del catálogo persistido.
type Region struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Channel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
