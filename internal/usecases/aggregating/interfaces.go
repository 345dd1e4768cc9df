package aggregating

import (
	"github.com/vfg2006/social-insights-api/internal/domain"
)

// GrowthParams delimita o conjunto de contas e o intervalo de meses da
// operação de crescimento de seguidores. CustomerSlug e AccountIDs podem ser
// combinados; pelo menos um dos dois é obrigatório.
type GrowthParams struct {
	FromMonth    string
	ToMonth      string
	CustomerSlug string
	Platform     domain.Platform // vazio = todas as plataformas
	AccountIDs   []string
}

// Overviewer é o contrato do motor de agregação mensal consumido por
// dashboards e exportadores.
type Overviewer interface {
	// GetCustomerOverview computa o overview mensal de todos os clientes
	// ativos (ou de um cliente específico, quando customerFilter não é
	// vazio). Falhas de leitura de um cliente marcam só aquele overview como
	// indisponível; a operação inteira só falha quando nada pôde ser
	// computado.
	GetCustomerOverview(month string, customerFilter string) ([]*domain.CustomerOverview, error)

	// GetMonthlyStats achata os overviews de um mês em totais únicos.
	GetMonthlyStats(month string, customerFilter string) (*domain.MonthlyStats, error)

	// GetFollowerGrowth produz a série mensal de crescimento de seguidores
	// para um conjunto de contas.
	GetFollowerGrowth(params *GrowthParams) (*domain.FollowerGrowthReport, error)
}
