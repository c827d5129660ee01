package scheduler

import (
	"github.com/go-co-op/gocron/v2"

	"github.com/sublime247/Lumenpulse/internal/config"
	"github.com/sublime247/Lumenpulse/internal/logger"
	"github.com/sublime247/Lumenpulse/internal/vault"
)

// Manager 任务管理器
type Manager struct {
	scheduler gocron.Scheduler
	vault     *vault.Vault
	config    *config.Config
}

// NewManager 创建新的任务管理器
func NewManager(v *vault.Vault, cfg *config.Config) (*Manager, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &Manager{
		scheduler: s,
		vault:     v,
		config:    cfg,
	}, nil
}

// Start 启动任务管理器
func Start(v *vault.Vault, cfg *config.Config) (*Manager, error) {
	manager, err := NewManager(v, cfg)
	if err != nil {
		return nil, err
	}

	// 注册所有任务
	manager.RegisterJobs()

	// 启动调度器
	manager.scheduler.Start()

	logger.Info("task manager started")
	return manager, nil
}

// RegisterJobs 注册所有任务
func (m *Manager) RegisterJobs() {
	m.registerMatchSnapshotJob(NewMatchSnapshotJob(m.vault, m.config))
}

func (m *Manager) registerMatchSnapshotJob(job *MatchSnapshotJob) {
	_, err := m.scheduler.NewJob(
		job.GetSchedule(),
		gocron.NewTask(job.Execute),
		gocron.WithName(job.GetName()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		logger.Error("failed to register job %s: %v", job.GetName(), err)
	}
}

// Stop 停止任务管理器
func (m *Manager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		logger.Error("failed to shutdown scheduler: %v", err)
	}
	logger.Info("task manager stopped")
}
