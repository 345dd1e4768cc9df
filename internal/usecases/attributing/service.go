package attributing

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
)

// Attributor resolve identificadores brutos de anúncios para o slug do
// cliente dono. Função pura sobre a configuração estática + entrada; os
// contadores de não-atribuídos existem só para visibilidade operacional.
type Attributor interface {
	// ResolveCustomerForCampaign retorna o slug do cliente dono da campanha e
	// true, ou "" e false quando a campanha não é atribuível. Não-atribuível
	// não é erro: a campanha é excluída dos totais de todos os clientes
	// (isolamento entre tenants), nunca somada a um balde "desconhecido".
	ResolveCustomerForCampaign(accountID, campaignName string) (string, bool)

	// Stats retorna os contadores de campanhas não atribuídas desde a subida
	// do processo, por conta de anúncios. Em produção essa lista cresce com
	// novas contas e alimenta a manutenção do mapa.
	Stats() *Stats

	// UnattributedAccounts retorna as contas com campanhas excluídas, ordenadas.
	UnattributedAccounts() []string
}

// Stats é o retrato dos contadores de atribuição.
type Stats struct {
	Version       string           `json:"version"`
	Unattributed  map[string]int64 `json:"unattributed_by_account"`
	TotalResolved int64            `json:"total_resolved"`
	TotalExcluded int64            `json:"total_excluded"`
}

type Service struct {
	config *Config

	mu            sync.Mutex
	unattributed  map[string]int64
	totalResolved int64
	totalExcluded int64
}

func NewService(config *Config) *Service {
	return &Service{
		config:       config,
		unattributed: make(map[string]int64),
	}
}

// ResolveCustomerForCampaign aplica a ordem de resolução do mapa:
//
//  1. regras de override por nome de campanha, na ordem, primeira vence;
//  2. mapeamento padrão por conta de anúncios;
//  3. nada casou: não atribuível.
//
// A ordem carrega semântica: contas compartilhadas por mais de um cliente
// dependem das overrides para separar as campanhas.
func (s *Service) ResolveCustomerForCampaign(accountID, campaignName string) (string, bool) {
	for i := range s.config.Overrides {
		rule := &s.config.Overrides[i]
		if rule.compiled != nil && rule.compiled.MatchString(campaignName) {
			s.countResolved()
			return rule.Customer, true
		}
	}

	if slug, ok := s.config.AccountDefaults[accountID]; ok {
		s.countResolved()
		return slug, true
	}

	s.countExcluded(accountID)

	logrus.WithFields(logrus.Fields{
		"account_id":    accountID,
		"campaign_name": campaignName,
	}).Debug("attribution: campanha sem cliente atribuível, excluída dos totais")

	return "", false
}

func (s *Service) Stats() *Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	unattributed := make(map[string]int64, len(s.unattributed))
	for accountID, count := range s.unattributed {
		unattributed[accountID] = count
	}

	return &Stats{
		Version:       s.config.Version,
		Unattributed:  unattributed,
		TotalResolved: s.totalResolved,
		TotalExcluded: s.totalExcluded,
	}
}

// UnattributedAccounts retorna as contas com campanhas excluídas, ordenadas,
// para logs periódicos.
func (s *Service) UnattributedAccounts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := make([]string, 0, len(s.unattributed))
	for accountID := range s.unattributed {
		accounts = append(accounts, accountID)
	}
	sort.Strings(accounts)

	return accounts
}

func (s *Service) countResolved() {
	s.mu.Lock()
	s.totalResolved++
	s.mu.Unlock()
}

func (s *Service) countExcluded(accountID string) {
	s.mu.Lock()
	s.totalExcluded++
	s.unattributed[accountID]++
	s.mu.Unlock()
}
