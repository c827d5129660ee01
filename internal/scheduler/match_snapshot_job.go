package scheduler

import (
	"errors"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/sublime247/Lumenpulse/internal/config"
	"github.com/sublime247/Lumenpulse/internal/logger"
	"github.com/sublime247/Lumenpulse/internal/vault"
)

// MatchSnapshotJob 定期计算各项目的二次方匹配金额并写入日志
type MatchSnapshotJob struct {
	vault  *vault.Vault
	config *config.Config
}

// NewMatchSnapshotJob 创建匹配快照任务
func NewMatchSnapshotJob(v *vault.Vault, cfg *config.Config) *MatchSnapshotJob {
	return &MatchSnapshotJob{
		vault:  v,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *MatchSnapshotJob) GetName() string {
	return "match_snapshot"
}

// GetSchedule 获取调度配置
func (j *MatchSnapshotJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Scheduler.Interval) * time.Second)
}

// Execute 执行任务
func (j *MatchSnapshotJob) Execute() {
	count, err := j.vault.ProjectCount()
	if err != nil {
		if errors.Is(err, vault.ErrNotInitialized) {
			return
		}
		logger.Error("match snapshot: failed to count projects: %v", err)
		return
	}

	for id := uint64(0); id < count; id++ {
		project, err := j.vault.GetProject(id)
		if err != nil {
			logger.Error("match snapshot: project %d: %v", id, err)
			continue
		}

		match, err := j.vault.CalculateMatch(id)
		if err != nil {
			logger.Error("match snapshot: project %d: %v", id, err)
			continue
		}

		pool, err := j.vault.MatchingPoolBalance(project.Asset)
		if err != nil {
			logger.Error("match snapshot: project %d: %v", id, err)
			continue
		}

		logger.Info("match snapshot: project=%d asset=%s match=%s pool=%s",
			id, project.Asset.Hex(), match.String(), pool.String())
	}
}
