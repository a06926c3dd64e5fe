package models

import "github.com/shopspring/decimal"

// Поля товара, без которых расчёт невозможен
const (
	FieldWeight = "weight_kg"
	FieldVolume = "volume_m3"
)

// ProductRecord - карточка товара с маркетплейса, вес и объём на единицу товара
type ProductRecord struct {
	Article  string           `json:"article,omitempty"`
	Name     string           `json:"name"`
	Price    MonetaryAmount   `json:"price"`
	WeightKg *decimal.Decimal `json:"weight_kg,omitempty"`
	VolumeM3 *decimal.Decimal `json:"volume_m3,omitempty"`
}

// MissingFields - список отсутствующих веса и объёма
func (p ProductRecord) MissingFields() []string {
	var missing []string
	if p.WeightKg == nil || !p.WeightKg.IsPositive() {
		missing = append(missing, FieldWeight)
	}
	if p.VolumeM3 == nil || !p.VolumeM3.IsPositive() {
		missing = append(missing, FieldVolume)
	}
	return missing
}

// Merge - накладывает заданные пользователем поля поверх карточки
func (p ProductRecord) Merge(override *ProductRecord) ProductRecord {
	if override == nil {
		return p
	}
	if override.Name != "" {
		p.Name = override.Name
	}
	if override.Price.Value.IsPositive() {
		p.Price = override.Price
	}
	if override.WeightKg != nil {
		p.WeightKg = override.WeightKg
	}
	if override.VolumeM3 != nil {
		p.VolumeM3 = override.VolumeM3
	}
	return p
}

// FieldEstimate - оценка веса и объёма от сервиса подбора полей
type FieldEstimate struct {
	WeightKg *decimal.Decimal `json:"weight_kg,omitempty"`
	VolumeM3 *decimal.Decimal `json:"volume_m3,omitempty"`
}
