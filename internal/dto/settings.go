package dto

import "github.com/shopspring/decimal"

// UpdateSettingsRequest is a partial settings edit: only the fields present in
// the request are applied over the stored record, mirroring how the settings
// screen saves one section at a time.
type UpdateSettingsRequest struct {
	ShopName                   *string          `json:"shopName,omitempty"`
	ContactInfo                *string          `json:"contactInfo,omitempty"`
	PriceRecto                 *decimal.Decimal `json:"priceRecto,omitempty" binding:"omitempty,gte=0"`
	PriceRectoVerso            *decimal.Decimal `json:"priceRectoVerso,omitempty" binding:"omitempty,gte=0"`
	PriceBoth                  *decimal.Decimal `json:"priceBoth,omitempty" binding:"omitempty,gte=0"`
	MaxUnpaidThreshold         *decimal.Decimal `json:"maxUnpaidThreshold,omitempty" binding:"omitempty,gte=0"`
	WhatsappTemplate           *string          `json:"whatsappTemplate,omitempty"`
	DefaultSavePath            *string          `json:"defaultSavePath,omitempty"`
	EnableAutoPdfSave          *bool            `json:"enableAutoPdfSave,omitempty"`
	EnableWhatsappNotification *bool            `json:"enableWhatsappNotification,omitempty"`
	EnableAutoPaidNotification *bool            `json:"enableAutoPaidNotification,omitempty"`
	Language                   *string          `json:"language,omitempty"`
}
