package consts

const (
	DefaultAvatarURL = "default_avatar.png"
)

// 排行榜范围
const (
	LeaderboardScopeGlobal  = "global"
	LeaderboardScopeFriends = "friends"
)
