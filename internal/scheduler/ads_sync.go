package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-insights-api/infrastructure/integrator/meta"
	"github.com/vfg2006/social-insights-api/infrastructure/repository"
	"github.com/vfg2006/social-insights-api/internal/config"
	"github.com/vfg2006/social-insights-api/internal/domain"
	"github.com/vfg2006/social-insights-api/internal/usecases/attributing"
	"github.com/vfg2006/social-insights-api/pkg/utils"
)

// AdsSyncConfig representa a configuração do agendador do cache de anúncios
type AdsSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
	MonthLookBack       int
	RetentionMonths     int
}

// AdsSyncService gerencia o agendamento e execução da sincronização mensal do
// cache de anúncios. O agregador nunca fala com a Graph API: lê apenas o que
// este job escreveu.
type AdsSyncService struct {
	scheduler           *gocron.Scheduler
	config              AdsSyncConfig
	appConfig           *config.Config
	adsRepo             repository.AdsCacheRepository
	integrator          meta.Integrator
	attribution         *attributing.Config
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewAdsSyncService cria uma nova instância do serviço de sincronização do
// cache de anúncios
func NewAdsSyncService(
	adsRepo repository.AdsCacheRepository,
	integrator meta.Integrator,
	attribution *attributing.Config,
	appConfig *config.Config,
) *AdsSyncService {
	// Criar a configuração com base na config global
	syncConfig := AdsSyncConfig{
		CronSchedule:        appConfig.AdsSync.CronSchedule,
		RequestDelaySeconds: appConfig.AdsSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.AdsSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.AdsSync.Enabled,
		MonthLookBack:       appConfig.AdsSync.MonthLookBack,
		RetentionMonths:     appConfig.AdsSync.RetentionMonths,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
		"retention_months":      syncConfig.RetentionMonths,
	}).Info("Configuração do agendador do cache de anúncios carregada")

	return &AdsSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		adsRepo:     adsRepo,
		integrator:  integrator,
		attribution: attribution,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *AdsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização do cache de anúncios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do cache de anúncios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAdsCache()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do cache de anúncios: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do cache de anúncios")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAdsCache sincroniza os insights de campanhas de todas as contas de
// anúncios conhecidas pelo mapa de atribuição
func (s *AdsSyncService) syncAdsCache() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do cache de anúncios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	adAccounts := s.attribution.AdAccountIDs()
	if len(adAccounts) == 0 {
		logrus.Info("Nenhuma conta de anúncios no mapa de atribuição, nada a sincronizar")
		return
	}

	logrus.WithField("ad_accounts", len(adAccounts)).Info("Iniciando sincronização do cache de anúncios")

	for i := 1; i <= s.config.MonthLookBack; i++ {
		month := utils.PrevMonth(time.Now())
		for j := 1; j < i; j++ {
			month = utils.PrevMonth(month)
		}

		logrus.WithField("month", utils.FormatMonth(month)).Info("Período para sincronização do cache de anúncios")

		s.processMonth(adAccounts, month)
	}

	if s.config.RetentionMonths > 0 {
		deleted, err := s.adsRepo.DeleteOlderThan(s.config.RetentionMonths)
		if err != nil {
			logrus.WithError(err).Error("Erro ao aplicar retenção do cache de anúncios")
		} else if deleted > 0 {
			logrus.WithField("deleted_entries", deleted).Info("Entradas antigas do cache de anúncios removidas")
		}
	}

	logrus.WithFields(logrus.Fields{
		"duration":    time.Since(startTime).String(),
		"ad_accounts": len(adAccounts),
	}).Info("Sincronização do cache de anúncios concluída")
}

// processMonth coleta e salva as campanhas do mês para todas as contas, com
// workers limitados por semáforo
func (s *AdsSyncService) processMonth(adAccounts []string, month time.Time) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, adAccountID := range adAccounts {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(accountID string) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"ad_account_id": accountID,
				"month":         utils.FormatMonth(month),
			}).Info("Processando campanhas do mês para a conta de anúncios")

			if err := s.processAdAccount(accountID, month); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"ad_account_id": accountID,
					"month":         utils.FormatMonth(month),
				}).Error("Erro ao sincronizar campanhas da conta de anúncios")
			}

			// Aguardar antes da próxima conta para evitar excesso de requisições
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(adAccountID)
	}

	wg.Wait()
}

// processAdAccount coleta as campanhas do mês de uma conta e grava a entrada
// do cache com o resumo derivado
func (s *AdsSyncService) processAdAccount(adAccountID string, month time.Time) error {
	campaigns, err := s.integrator.FetchMonthlyCampaignInsights(adAccountID, month)
	if err != nil {
		return fmt.Errorf("erro ao obter insights de campanhas: %w", err)
	}

	entry := &repository.AdsCacheEntry{
		AdAccountID: adAccountID,
		Month:       utils.FormatMonth(month),
		Campaigns:   campaigns,
		Summary:     domain.SumCampaigns(campaigns),
	}

	if err := s.adsRepo.SaveOrUpdate(entry); err != nil {
		return fmt.Errorf("erro ao salvar entrada do cache de anúncios: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"ad_account_id": adAccountID,
		"month":         entry.Month,
		"campaigns":     len(campaigns),
	}).Info("Campanhas do mês salvas no cache de anúncios")

	return nil
}

// TriggerManualSync inicia manualmente uma sincronização do cache de anúncios
func (s *AdsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização do cache de anúncios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual do cache de anúncios")
	go s.syncAdsCache()
}

// GetStatus retorna o status atual da sincronização, incluindo os meses já
// presentes no cache
func (s *AdsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	syncedMonths, err := s.adsRepo.GetSyncedMonths()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar meses sincronizados do cache de anúncios")
		syncedMonths = []string{}
	}

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"synced_months":          syncedMonths,
	}
}
