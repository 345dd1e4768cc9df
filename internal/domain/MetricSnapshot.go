package domain

import "time"

// MetricSnapshot representa uma observação pontual das métricas de um post.
// Várias observações se acumulam ao longo da vida do post; a tabela é
// append-only e nunca é alterada por este serviço.
//
// Campos ausentes na plataforma de origem ficam nulos no banco e são
// carregados como ponteiros nulos aqui, para que "indisponível" continue
// distinguível de "zero de verdade".
type MetricSnapshot struct {
	PostID      string    `json:"post_id"`
	ObservedAt  time.Time `json:"observed_at"`
	Reach       *int64    `json:"reach,omitempty"`
	Impressions *int64    `json:"impressions,omitempty"`
	Reactions   *int64    `json:"reactions,omitempty"` // likes no Instagram
	Comments    *int64    `json:"comments,omitempty"`
	Shares      *int64    `json:"shares,omitempty"`
	Saves       *int64    `json:"saves,omitempty"`
	Plays       *int64    `json:"plays,omitempty"`
}

// LatestMetricSnapshot resolve qual snapshot tratar como autoritativo para um
// post: o de maior ObservedAt que não excede o corte asOf. Retorna nil quando
// o post nunca foi observado até o corte — nesse caso as métricas agregam
// como zero, nunca como erro.
//
// Esta é a versão em memória do padrão "última observação por entidade"; a
// versão SQL equivalente vive nos repositórios de snapshot.
func LatestMetricSnapshot(snapshots []*MetricSnapshot, asOf time.Time) *MetricSnapshot {
	var latest *MetricSnapshot

	for _, snapshot := range snapshots {
		if snapshot == nil || snapshot.ObservedAt.After(asOf) {
			continue
		}

		if latest == nil || snapshot.ObservedAt.After(latest.ObservedAt) {
			latest = snapshot
		}
	}

	return latest
}

// ValueOrZero converte um campo possivelmente ausente para o valor usado na
// agregação. A disponibilidade do campo é decidida pela tabela de capacidade
// da plataforma, nunca por "valor é zero".
func ValueOrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

// FieldAvailability indica, por nome de métrica, se a plataforma fornece o
// campo. Exportações usam isso para renderizar "—" em vez de "0".
type FieldAvailability map[string]bool

// AvailabilityFor retorna a tabela de capacidade de campos da plataforma.
// O Facebook não expõe saves; o Instagram não expõe shares.
func AvailabilityFor(platform Platform) FieldAvailability {
	switch platform {
	case PlatformFacebook:
		return FieldAvailability{
			"reach":       true,
			"impressions": true,
			"reactions":   true,
			"comments":    true,
			"shares":      true,
			"saves":       false,
			"plays":       true,
		}
	case PlatformInstagram:
		// "reactions" no Instagram são as curtidas (likes)
		return FieldAvailability{
			"reach":       true,
			"impressions": true,
			"reactions":   true,
			"comments":    true,
			"shares":      false,
			"saves":       true,
			"plays":       true,
		}
	default:
		return FieldAvailability{}
	}
}
