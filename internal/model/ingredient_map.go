package model

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// IngredientMap 配料表，key 为配料名，value 为公斤数，落库存为 JSON 文本
type IngredientMap map[string]float64

func (m IngredientMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, errors.New("ingredients cannot be nil")
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ingredients: %w", err)
	}
	return string(data), nil
}

func (m *IngredientMap) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported ingredients column type %T", value)
	}
	return json.Unmarshal(data, m)
}
