package exporting

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/aggregating"
)

const (
	overviewSheet  = "Overview"
	platformsSheet = "Plataformas"

	// Placeholder de métrica que a plataforma não fornece. A distinção vem da
	// tabela de capacidade, nunca de inferência sobre valor zero.
	notAvailable = "—"
)

// Exporter projeta a saída do agregador em formatos prontos para
// apresentação: planilha XLSX, linhas de slide e séries de gráfico.
type Exporter interface {
	OverviewWorkbook(month, customerFilter string) (*excelize.File, error)
	SlideDeck(month, customerSlug string) (*SlideDeck, error)
	FollowerChart(params *aggregating.GrowthParams) (*ChartSeries, error)
}

type Service struct {
	overviewer aggregating.Overviewer
}

func NewService(overviewer aggregating.Overviewer) Exporter {
	return &Service{
		overviewer: overviewer,
	}
}

// OverviewWorkbook monta a planilha mensal com uma aba de resumo por cliente e
// uma aba com o detalhamento por plataforma. Clientes indisponíveis aparecem
// na planilha com o motivo, nunca somem silenciosamente.
func (s *Service) OverviewWorkbook(month, customerFilter string) (*excelize.File, error) {
	overviews, err := s.overviewer.GetCustomerOverview(month, customerFilter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", overviewSheet); err != nil {
		return nil, fmt.Errorf("erro ao renomear a aba de resumo: %w", err)
	}

	if _, err := f.NewSheet(platformsSheet); err != nil {
		return nil, fmt.Errorf("erro ao criar a aba de plataformas: %w", err)
	}

	if err := s.writeOverviewSheet(f, overviews); err != nil {
		return nil, err
	}

	if err := s.writePlatformsSheet(f, overviews); err != nil {
		return nil, err
	}

	return f, nil
}

func (s *Service) writeOverviewSheet(f *excelize.File, overviews []*domain.CustomerOverview) error {
	headers := []interface{}{
		"Cliente", "Mês", "Posts", "Alcance", "Impressões", "Interações",
		"Seguidores", "Variação de seguidores", "Investimento em anúncios", "Status",
	}

	if err := setRow(f, overviewSheet, 1, headers); err != nil {
		return err
	}

	for i, overview := range overviews {
		row := i + 2

		if !overview.Available {
			cells := []interface{}{
				overview.CustomerName, overview.Month,
				notAvailable, notAvailable, notAvailable, notAvailable,
				notAvailable, notAvailable, notAvailable,
				fmt.Sprintf("indisponível: %s", overview.Unavailable),
			}
			if err := setRow(f, overviewSheet, row, cells); err != nil {
				return err
			}
			continue
		}

		followers := overview.Facebook.Followers.EndFollowers + overview.Instagram.Followers.EndFollowers
		netChange := overview.Facebook.Followers.NetChange + overview.Instagram.Followers.NetChange
		hasPrevData := overview.Facebook.Followers.HasPrevData || overview.Instagram.Followers.HasPrevData

		var netChangeCell interface{} = netChange
		if !hasPrevData {
			// Sem histórico anterior a variação é não-informada, não "+0"
			netChangeCell = notAvailable
		}

		cells := []interface{}{
			overview.CustomerName,
			overview.Month,
			overview.Totals.Posts,
			overview.Totals.Reach,
			overview.Totals.Impressions,
			overview.Totals.Interactions,
			followers,
			netChangeCell,
			overview.Totals.AdSpend.StringFixed(2),
			"ok",
		}

		if err := setRow(f, overviewSheet, row, cells); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) writePlatformsSheet(f *excelize.File, overviews []*domain.CustomerOverview) error {
	headers := []interface{}{
		"Cliente", "Mês", "Plataforma", "Contas", "Posts", "Alcance",
		"Impressões", "Reações", "Comentários", "Compartilhamentos",
		"Salvamentos", "Reproduções", "Seguidores", "Variação",
	}

	if err := setRow(f, platformsSheet, 1, headers); err != nil {
		return err
	}

	row := 2
	for _, overview := range overviews {
		if !overview.Available {
			continue
		}

		for _, block := range []*domain.PlatformStats{overview.Facebook, overview.Instagram} {
			if block == nil {
				continue
			}

			var netChangeCell interface{} = block.Followers.NetChange
			if !block.Followers.HasPrevData {
				netChangeCell = notAvailable
			}

			cells := []interface{}{
				overview.CustomerName,
				overview.Month,
				string(block.Platform),
				block.Accounts,
				block.Current.Posts,
				block.Current.Reach,
				block.Current.Impressions,
				metricCell(block, "reactions", block.Current.Reactions),
				metricCell(block, "comments", block.Current.Comments),
				metricCell(block, "shares", block.Current.Shares),
				metricCell(block, "saves", block.Current.Saves),
				metricCell(block, "plays", block.Current.Plays),
				block.Followers.EndFollowers,
				netChangeCell,
			}

			if err := setRow(f, platformsSheet, row, cells); err != nil {
				return err
			}
			row++
		}
	}

	return nil
}

// metricCell devolve o valor da métrica ou o placeholder quando a plataforma
// não fornece o campo.
func metricCell(block *domain.PlatformStats, field string, value int64) interface{} {
	if !block.Fields[field] {
		return notAvailable
	}
	return value
}

func setRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	for i, value := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("erro ao resolver coordenada da célula: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("erro ao escrever a célula %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
