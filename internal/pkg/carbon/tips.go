package carbon

import "sort"

// EcoTipCatalog 内置的分类建议库，个性化建议从排放最高的类别开始取
var EcoTipCatalog = map[string][]string{
	"transport": {
		"5公里以内优先骑车或步行",
		"和同事拼车通勤",
		"尽量选择公共交通",
		"把多个事项合并成一次出行",
		"考虑电动或混动车型",
	},
	"meals": {
		"红肉每周控制在1-2次",
		"选择本地应季食材",
		"避免食物浪费",
		"尝试素食或纯素餐",
		"散装购买减少包装",
	},
	"energy": {
		"离开房间随手关灯关电器",
		"选用高能效等级的家电",
		"空调夏天调高2度冬天调低2度",
		"有条件就使用可再生能源",
		"衣物自然晾干代替烘干",
	},
	"general": {
		"先减量再复用最后回收",
		"买耐用的优质产品",
		"避免一次性用品",
		"支持可持续经营的商家",
		"分享你的进度带动身边人",
	},
}

// GetPersonalizedTips 按三大类别排放量从高到低拼接建议，不足时用通用建议补齐
// 相同输入输出确定，排放相等时保持 transport、meals、energy 的固定顺序
func GetPersonalizedTips(transportCO2, mealsCO2, energyCO2 float64, maxTips int) []string {
	if maxTips <= 0 {
		return []string{}
	}

	categories := []struct {
		name string
		co2  float64
	}{
		{"transport", transportCO2},
		{"meals", mealsCO2},
		{"energy", energyCO2},
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].co2 > categories[j].co2
	})

	tips := make([]string, 0, maxTips)
	for _, category := range categories {
		categoryTips := EcoTipCatalog[category.name]
		if len(categoryTips) > maxTips {
			categoryTips = categoryTips[:maxTips]
		}
		tips = append(tips, categoryTips...)
		if len(tips) >= maxTips {
			break
		}
	}

	if len(tips) < maxTips {
		general := EcoTipCatalog["general"]
		need := maxTips - len(tips)
		if need > len(general) {
			need = len(general)
		}
		tips = append(tips, general[:need]...)
	}

	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}
	return tips
}
