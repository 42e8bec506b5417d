package job

import (
	"Ecotrace/internal/pkg/logger"
	"Ecotrace/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

type LeaderboardJob struct {
	leaderboardSvc service.LeaderboardService
}

func NewLeaderboardJob(leaderboardSvc service.LeaderboardService) *LeaderboardJob {
	return &LeaderboardJob{leaderboardSvc: leaderboardSvc}
}

func (s *LeaderboardJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	err := s.leaderboardSvc.RebuildGlobalSnapshot(ctx)
	if err != nil {
		log.ErrorContext(ctx, "rebuild global leaderboard error", "err", err)
		return
	}

	log.InfoContext(ctx, "rebuild global leaderboard success")
}
