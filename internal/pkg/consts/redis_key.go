package consts

const (
	UserFriendCountKey   = "user:friend:count:"
	UserPendingCountKey  = "user:friend:pending:count:"
	LeaderboardGlobalKey = "leaderboard:global:"
	UserAchievementsKey  = "user:achievements:"
	UserStatsKey         = "user:stats:"
)
