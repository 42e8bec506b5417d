package job

import (
	"Ecotrace/internal/pkg/logger"
	"Ecotrace/internal/pkg/util"
	"Ecotrace/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// StreakAuditJob 清理昨天没有任何记录的用户连击天数
type StreakAuditJob struct {
	profileRepo repository.ProfileRepo
}

func NewStreakAuditJob(profileRepo repository.ProfileRepo) *StreakAuditJob {
	return &StreakAuditJob{profileRepo: profileRepo}
}

func (s *StreakAuditJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	today := util.DateOnly(time.Now())
	affected, err := s.profileRepo.ResetBrokenStreaks(ctx, today)
	if err != nil {
		log.ErrorContext(ctx, "reset broken streaks error", "err", err)
		return
	}

	log.InfoContext(ctx, "reset broken streaks success", "affected", affected)
}
