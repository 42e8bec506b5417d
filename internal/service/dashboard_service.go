package service

import (
	"Ecotrace/internal/api/dto"
	"Ecotrace/internal/model"
	"Ecotrace/internal/pkg/carbon"
	"Ecotrace/internal/pkg/consts"
	"Ecotrace/internal/pkg/redis"
	"Ecotrace/internal/pkg/util"
	"Ecotrace/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	GetSummary(ctx context.Context, userID uint64) (*dto.DashboardSummaryDTO, error)
	GetStats(ctx context.Context, userID uint64, days int) (*dto.DashboardStatsDTO, error)
	GetTips(ctx context.Context, userID uint64, category string, maxTips int) (*dto.EcoTipsDTO, error)
}

type DashboardServiceImpl struct {
	mealRepo        repository.MealRepo
	transportRepo   repository.TransportRepo
	profileRepo     repository.ProfileRepo
	achievementRepo repository.AchievementRepo
	ecoTipRepo      repository.EcoTipRepo
}

func NewDashboardService(
	mealRepo repository.MealRepo,
	transportRepo repository.TransportRepo,
	profileRepo repository.ProfileRepo,
	achievementRepo repository.AchievementRepo,
	ecoTipRepo repository.EcoTipRepo,
) DashboardService {
	return &DashboardServiceImpl{
		mealRepo:        mealRepo,
		transportRepo:   transportRepo,
		profileRepo:     profileRepo,
		achievementRepo: achievementRepo,
		ecoTipRepo:      ecoTipRepo,
	}
}

// statsCacheKey 统计序列缓存键，窗口只有 7 与 30 两档
func statsCacheKey(days int, userID uint64) string {
	return consts.UserStatsKey + strconv.Itoa(days) + ":" + strconv.FormatUint(userID, 10)
}

// invalidateStatsCache 活动增删改后清掉两档统计缓存，下一次读取回源重建
func invalidateStatsCache(ctx context.Context, userID uint64) {
	for _, days := range []int{7, 30} {
		if err := redis.DeleteKey(ctx, statsCacheKey(days, userID)); err != nil {
			log.WarnContext(ctx, "统计缓存清理失败", "userId", userID, "days", days, "err", err)
		}
	}
}

// GetSummary 今日与近期排放总览，各项查询并行执行
func (s *DashboardServiceImpl) GetSummary(ctx context.Context, userID uint64) (*dto.DashboardSummaryDTO, error) {
	profile, err := s.profileRepo.GetProfileByUserId(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}

	today := util.DateOnly(time.Now())
	weekStart := today.AddDate(0, 0, -6)
	monthStart := today.AddDate(0, 0, -29)

	var todayMeals, todayTransport float64
	var weekMeals, weekTransport float64
	var monthMeals, monthTransport float64
	var allMeals, allTransport float64
	var totalMeals, totalTransports int64
	var veganMeals, vegetarianMeals int64
	var unlockedCount int64
	var totalDistance float64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		todayMeals, err = s.mealRepo.SumCO2InRange(gctx, userID, today, today)
		return err
	})
	g.Go(func() error {
		var err error
		todayTransport, err = s.transportRepo.SumCO2InRange(gctx, userID, today, today)
		return err
	})
	g.Go(func() error {
		var err error
		weekMeals, err = s.mealRepo.SumCO2InRange(gctx, userID, weekStart, today)
		return err
	})
	g.Go(func() error {
		var err error
		weekTransport, err = s.transportRepo.SumCO2InRange(gctx, userID, weekStart, today)
		return err
	})
	g.Go(func() error {
		var err error
		monthMeals, err = s.mealRepo.SumCO2InRange(gctx, userID, monthStart, today)
		return err
	})
	g.Go(func() error {
		var err error
		monthTransport, err = s.transportRepo.SumCO2InRange(gctx, userID, monthStart, today)
		return err
	})
	g.Go(func() error {
		var err error
		allMeals, err = s.mealRepo.SumCO2ByUserId(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		allTransport, err = s.transportRepo.SumCO2ByUserId(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		totalMeals, err = s.mealRepo.CountByUserId(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		totalTransports, err = s.transportRepo.CountByUserId(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		veganMeals, err = s.mealRepo.CountVeganByUserId(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		vegetarianMeals, err = s.mealRepo.CountVegetarianByUserId(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		unlockedCount, err = s.achievementRepo.CountUnlockedByUserId(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		totalDistance, err = s.transportRepo.SumDistanceByUserId(gctx, userID)
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	todayTotal := todayMeals + todayTransport
	rating := carbon.GetDailyRating(todayTotal)

	summary := &dto.DashboardSummaryDTO{
		TodayCO2:       todayTotal,
		TodayMeals:     todayMeals,
		TodayTransport: todayTransport,
		WeekCO2:        weekMeals + weekTransport,
		MonthCO2:       monthMeals + monthTransport,
		DailyCO2Goal:   profile.DailyCO2Goal,
		GoalMet:        todayTotal <= profile.DailyCO2Goal,
		Rating:         rating.Rating,
		RatingMessage:  rating.Message,
		TotalPoints:    profile.TotalPoints,
		Level:          profile.Level,
		StreakDays:     profile.StreakDays,
		TotalCO2Saved:  profile.TotalCO2Saved,

		TotalCO2:             allMeals + allTransport,
		TotalMeals:           totalMeals,
		TotalTransports:      totalTransports,
		VeganMeals:           veganMeals,
		VegetarianMeals:      vegetarianMeals,
		AchievementsUnlocked: unlockedCount,
		TotalDistanceKm:      totalDistance,
	}
	return summary, nil
}

// GetStats 近 N 天的逐日排放序列与分类占比，结果缓存到次日零点
func (s *DashboardServiceImpl) GetStats(ctx context.Context, userID uint64, days int) (*dto.DashboardStatsDTO, error) {
	if days != 7 && days != 30 {
		days = 7
	}

	key := statsCacheKey(days, userID)
	value, err := redis.GetValue(ctx, key)
	if err == nil && value != "" {
		var cached dto.DashboardStatsDTO
		if err = json.Unmarshal([]byte(value), &cached); err == nil {
			return &cached, nil
		}
	}

	today := util.DateOnly(time.Now())
	start := today.AddDate(0, 0, -(days - 1))

	meals, err := s.mealRepo.GetMealsByDateRange(ctx, userID, start, today)
	if err != nil {
		return nil, err
	}
	transports, err := s.transportRepo.GetTransportsByDateRange(ctx, userID, start, today)
	if err != nil {
		return nil, err
	}

	daily := make(map[string]*dto.DailyEmissionDTO, days)
	series := make([]*dto.DailyEmissionDTO, 0, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		item := &dto.DailyEmissionDTO{Date: day.Format(time.DateOnly)}
		daily[item.Date] = item
		series = append(series, item)
	}

	for _, meal := range meals {
		if item, ok := daily[util.DateOnly(meal.MealDate).Format(time.DateOnly)]; ok {
			item.MealsCO2 += meal.TotalCO2
			item.TotalCO2 += meal.TotalCO2
		}
	}
	for _, transport := range transports {
		if item, ok := daily[util.DateOnly(transport.TripDate).Format(time.DateOnly)]; ok {
			item.TransportCO2 += transport.TotalCO2
			item.TotalCO2 += transport.TotalCO2
		}
	}

	// 饮食结构三分类：纯素、蛋奶素、杂食
	diet := map[string]*dto.CategoryStatDTO{}
	dietOrder := []string{"vegan", "vegetarian", "omnivore"}
	for _, name := range dietOrder {
		diet[name] = &dto.CategoryStatDTO{Category: name}
	}
	for _, meal := range meals {
		category := "omnivore"
		if meal.IsVegan {
			category = "vegan"
		} else if meal.IsVegetarian {
			category = "vegetarian"
		}
		diet[category].Count++
		diet[category].CO2 += meal.TotalCO2
	}

	mealBreakdown, err := s.mealRepo.CountByMealType(ctx, userID, start, today)
	if err != nil {
		return nil, err
	}
	transportBreakdown, err := s.transportRepo.CountByTransportType(ctx, userID, start, today)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStatsDTO{
		Days:   days,
		Series: series,
	}
	for _, name := range dietOrder {
		stats.DietBreakdown = append(stats.DietBreakdown, diet[name])
	}
	for _, row := range mealBreakdown {
		stats.MealBreakdown = append(stats.MealBreakdown, &dto.CategoryStatDTO{
			Category: row.Type,
			Count:    row.Count,
			CO2:      row.CO2,
		})
	}
	for _, row := range transportBreakdown {
		stats.TransportBreakdown = append(stats.TransportBreakdown, &dto.CategoryStatDTO{
			Category: row.Type,
			Count:    row.Count,
			CO2:      row.CO2,
		})
	}
	for _, item := range series {
		stats.TotalCO2 += item.TotalCO2
	}
	if days > 0 {
		stats.DailyAverage = stats.TotalCO2 / float64(days)
	}

	if jsonStr, err := json.Marshal(stats); err == nil {
		_ = redis.SetWithExpiration(ctx, key, string(jsonStr), time.Until(util.GetMidnight()))
	}
	return stats, nil
}

// GetTips 先按近7天排放结构生成针对性建议，再补充库中贴士。
// 指定分类时返回该分类的全部启用贴士，否则随机取。
func (s *DashboardServiceImpl) GetTips(ctx context.Context, userID uint64, category string, maxTips int) (*dto.EcoTipsDTO, error) {
	if maxTips <= 0 {
		maxTips = 3
	}

	today := util.DateOnly(time.Now())
	weekStart := today.AddDate(0, 0, -6)

	mealsCO2, err := s.mealRepo.SumCO2InRange(ctx, userID, weekStart, today)
	if err != nil {
		return nil, err
	}
	transportCO2, err := s.transportRepo.SumCO2InRange(ctx, userID, weekStart, today)
	if err != nil {
		return nil, err
	}

	personalized := carbon.GetPersonalizedTips(transportCO2, mealsCO2, 0, maxTips)

	var tips []*model.EcoTip
	if category != "" {
		tips, err = s.ecoTipRepo.GetActiveTips(ctx, category)
	} else {
		tips, err = s.ecoTipRepo.GetRandomTips(ctx, maxTips)
	}
	if err != nil {
		return nil, err
	}

	result := &dto.EcoTipsDTO{
		Personalized: personalized,
	}
	for _, tip := range tips {
		result.Catalog = append(result.Catalog, &dto.EcoTipDTO{
			ID:          tip.ID,
			Title:       tip.Title,
			Description: tip.Description,
			Category:    tip.Category,
			Icon:        tip.Icon,
		})
	}
	// 库中没有匹配贴士时给一条固定兜底
	if len(result.Catalog) == 0 {
		result.Catalog = append(result.Catalog, &dto.EcoTipDTO{
			Title:       "从小事做起",
			Description: "坚持记录你的碳足迹，了解自己是改变的第一步",
			Category:    "general",
		})
	}
	return result, nil
}
