package carbon

import (
	"math"
	"strings"
)

// DailyRating 每日排放评级结果
type DailyRating struct {
	Rating  string `json:"rating"`
	Message string `json:"message"`
	Points  int    `json:"points"`
}

// CalculateTransportEmissions 计算一次出行的CO2排放量，未知方式使用兜底因子
func CalculateTransportEmissions(transportType string, distanceKm float64) float64 {
	factor, ok := TransportEmissions[strings.ToLower(transportType)]
	if !ok {
		factor = DefaultTransportFactor
	}
	return round3(factor * distanceKm)
}

// CalculateMealEmissions 根据配料表计算一餐的CO2排放量
// ingredients 的 key 为配料名，value 为公斤数，未知配料使用兜底因子
func CalculateMealEmissions(ingredients map[string]float64) float64 {
	total := 0.0
	for name, quantity := range ingredients {
		factor, ok := MealEmissions[strings.ToLower(name)]
		if !ok {
			factor = DefaultMealFactor
		}
		total += factor * quantity
	}
	return round3(total)
}

// CalculateEnergyEmissions 计算能源消耗的CO2排放量
func CalculateEnergyEmissions(energyType string, amount float64) float64 {
	factor, ok := EnergyEmissions[strings.ToLower(energyType)]
	if !ok {
		factor = DefaultEnergyFactor
	}
	return round3(factor * amount)
}

// GetDailyRating 按固定阈值评估当日排放水平
func GetDailyRating(totalCO2 float64) DailyRating {
	switch {
	case totalCO2 <= DailyTargetExcellent:
		return DailyRating{
			Rating:  "excellent",
			Message: "非常棒！你的排放远低于平均水平",
			Points:  SustainabilityPoints["low_carbon_day"],
		}
	case totalCO2 <= DailyTargetGood:
		return DailyRating{
			Rating:  "good",
			Message: "很好，你的碳足迹低于平均水平",
			Points:  SustainabilityPoints["daily_goal"],
		}
	case totalCO2 <= DailyTargetAverage:
		return DailyRating{
			Rating:  "average",
			Message: "处于全球平均水平，还有提升空间",
			Points:  20,
		}
	default:
		return DailyRating{
			Rating:  "high",
			Message: "碳足迹偏高，试着减少排放吧",
			Points:  0,
		}
	}
}

// Classify 按配料名做词面判定，返回 (是否纯素, 是否素食)
// 只做大小写不敏感的精确匹配，不是营养学意义上的分类
func Classify(ingredients map[string]float64) (isVegan bool, isVegetarian bool) {
	hasMeat := false
	hasAnimal := false
	for name := range ingredients {
		lower := strings.ToLower(name)
		if _, ok := meatItems[lower]; ok {
			hasMeat = true
			hasAnimal = true
			continue
		}
		if _, ok := animalExtras[lower]; ok {
			hasAnimal = true
		}
	}
	return !hasAnimal, !hasMeat
}

// IsEcoTransport 判断出行方式是否属于低碳出行
func IsEcoTransport(transportType string) bool {
	_, ok := EcoTransportTypes[strings.ToLower(transportType)]
	return ok
}

// CalculateTransportSavings 相对开车出行的避免排放量，下限为0
func CalculateTransportSavings(transportType string, distanceKm float64) float64 {
	actual := CalculateTransportEmissions(transportType, distanceKm)
	baseline := TransportBaselineFactor * distanceKm
	if baseline <= actual {
		return 0
	}
	return round3(baseline - actual)
}

// CalculateMealSavings 相对普通杂食餐基准的避免排放量，下限为0
func CalculateMealSavings(ingredients map[string]float64) float64 {
	totalKg := 0.0
	for _, quantity := range ingredients {
		totalKg += quantity
	}
	actual := CalculateMealEmissions(ingredients)
	baseline := MealBaselinePerKg * totalKg
	if baseline <= actual {
		return 0
	}
	return round3(baseline - actual)
}

// CalculatePointsForAction 行为基础分加上节省量奖励分，每节省0.5kg CO2加1分
func CalculatePointsForAction(actionType string, co2Saved float64) int {
	base, ok := SustainabilityPoints[actionType]
	if !ok {
		base = DefaultActionPoints
	}
	bonus := 0
	if co2Saved > 0 {
		bonus = int(co2Saved / 0.5)
	}
	return base + bonus
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
