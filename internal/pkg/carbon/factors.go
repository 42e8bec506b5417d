package carbon

// 排放因子常量表，单位均为 kg CO2。
// 数据来源：EPA、DEFRA 及公开碳足迹研究。

// TransportEmissions 每公里排放因子
var TransportEmissions = map[string]float64{
	"car":              0.192,
	"electric_car":     0.053,
	"bus":              0.089,
	"metro":            0.041,
	"train":            0.041,
	"motorcycle":       0.103,
	"bike":             0.0,
	"walk":             0.0,
	"electric_bike":    0.005,
	"electric_scooter": 0.02,
	"plane":            0.255,
}

// MealEmissions 每公斤（饮品为每升）排放因子
var MealEmissions = map[string]float64{
	// 肉类
	"beef":    27.0,
	"lamb":    39.2,
	"pork":    12.1,
	"chicken": 6.9,
	"turkey":  10.9,
	"fish":    6.1,
	"seafood": 11.9,

	// 乳制品与蛋类
	"cheese": 13.5,
	"milk":   1.9,
	"yogurt": 2.2,
	"butter": 12.1,
	"eggs":   4.8,

	// 蔬菜与主食
	"vegetables": 0.4,
	"fruits":     0.9,
	"rice":       2.7,
	"pasta":      1.5,
	"bread":      0.9,
	"potatoes":   0.3,
	"beans":      2.0,
	"tofu":       2.0,
	"nuts":       2.3,

	// 饮品
	"water":         0.0,
	"bottled_water": 0.2,
	"coffee":        0.6,
	"tea":           0.03,
	"juice":         1.1,
	"soda":          0.3,
	"beer":          0.3,
	"wine":          1.3,
}

// EnergyEmissions 每 kWh（水为每 m³）排放因子
var EnergyEmissions = map[string]float64{
	"electricity": 0.527,
	"natural_gas": 0.185,
	"heating_oil": 0.264,
	"propane":     0.215,
	"coal":        0.995,
	"solar":       0.0,
	"wind":        0.0,
	"water":       2.5,
}

// 未知类别时的兜底因子
const (
	DefaultTransportFactor = 0.1
	DefaultMealFactor      = 0.5
	DefaultEnergyFactor    = 0.5
)

// 每日排放目标阈值，单位 kg CO2
const (
	DailyTargetExcellent = 5.0
	DailyTargetGood      = 8.0
	DailyTargetAverage   = 13.0
)

// 可持续行为类型
const (
	ActionLogMeal        = "log_meal"
	ActionLogTransport   = "log_transport"
	ActionLogEnergy      = "log_energy"
	ActionDailyGoal      = "daily_goal"
	ActionWeeklyGoal     = "weekly_goal"
	ActionLowCarbonDay   = "low_carbon_day"
	ActionBikeUsed       = "bike_used"
	ActionWalkUsed       = "walk_used"
	ActionVegetarianMeal = "vegetarian_meal"
	ActionVeganMeal      = "vegan_meal"
)

// SustainabilityPoints 可持续行为积分表
var SustainabilityPoints = map[string]int{
	"log_meal":        10,
	"log_transport":   10,
	"log_energy":      10,
	"daily_goal":      50,
	"weekly_goal":     200,
	"low_carbon_day":  100,
	"bike_used":       30,
	"walk_used":       25,
	"vegetarian_meal": 20,
	"vegan_meal":      30,
}

const DefaultActionPoints = 10

// meatItems 判定素食的肉类集合，animalProducts 在其基础上追加乳蛋类用于判定纯素
var meatItems = map[string]struct{}{
	"beef":    {},
	"lamb":    {},
	"pork":    {},
	"chicken": {},
	"turkey":  {},
	"fish":    {},
	"seafood": {},
}

var animalExtras = map[string]struct{}{
	"cheese": {},
	"milk":   {},
	"yogurt": {},
	"butter": {},
	"eggs":   {},
}

// EcoTransportTypes 低碳出行方式
var EcoTransportTypes = map[string]struct{}{
	"bike":             {},
	"walk":             {},
	"electric_bike":    {},
	"electric_scooter": {},
}

// 节省量基准：出行按开车计，餐食按普通杂食餐的每公斤均值计
const (
	TransportBaselineFactor = 0.192
	MealBaselinePerKg       = 6.9
)
