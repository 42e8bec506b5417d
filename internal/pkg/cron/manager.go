package cron

import (
	"Ecotrace/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine         *cron.Cron
	leaderboardJob *job.LeaderboardJob
	streakJob      *job.StreakAuditJob
}

func NewCronManager(leaderboardJob *job.LeaderboardJob, streakJob *job.StreakAuditJob) *Manager {
	return &Manager{
		engine:         cron.New(cron.WithSeconds()),
		leaderboardJob: leaderboardJob,
		streakJob:      streakJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@daily", s.leaderboardJob); err != nil {
		return err
	}
	// 零点后 10 分钟再清理断签，避开排行榜重建
	if _, err := s.engine.AddJob("0 10 0 * * *", s.streakJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
