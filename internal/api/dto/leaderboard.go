package dto

// LeaderboardEntryDTO 榜单条目
type LeaderboardEntryDTO struct {
	Rank          int     `json:"rank"`
	UserID        uint64  `json:"user_id"`
	Username      string  `json:"username"`
	AvatarURL     string  `json:"avatar_url"`
	TotalPoints   int     `json:"total_points"`
	Level         int     `json:"level"`
	TotalCO2Saved float64 `json:"total_co2_saved"`
}

// LeaderboardDTO 排行榜，全局榜额外带注册用户总数
type LeaderboardDTO struct {
	Scope      string                 `json:"scope"`
	MyRank     int                    `json:"my_rank,omitempty"`
	TotalUsers int64                  `json:"total_users,omitempty"`
	Entries    []*LeaderboardEntryDTO `json:"entries"`
}
