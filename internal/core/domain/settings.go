package domain

import "github.com/shopspring/decimal"

// PriceTable holds the per-page rates used to price a job at creation time.
type PriceTable struct {
	Recto      decimal.Decimal `json:"recto"`
	RectoVerso decimal.Decimal `json:"rectoVerso"`
}

// Settings is the shop-wide settings record. The ledger core reads the price
// table and notification toggles from it but does not own or validate it
// beyond request binding.
type Settings struct {
	ShopName                   string          `json:"shopName"`
	ContactInfo                string          `json:"contactInfo"`
	PriceRecto                 decimal.Decimal `json:"priceRecto"`
	PriceRectoVerso            decimal.Decimal `json:"priceRectoVerso"`
	PriceBoth                  decimal.Decimal `json:"priceBoth"`
	MaxUnpaidThreshold         decimal.Decimal `json:"maxUnpaidThreshold"`
	WhatsappTemplate           string          `json:"whatsappTemplate"`
	DefaultSavePath            string          `json:"defaultSavePath"`
	EnableAutoPdfSave          bool            `json:"enableAutoPdfSave"`
	EnableWhatsappNotification bool            `json:"enableWhatsappNotification"`
	EnableAutoPaidNotification bool            `json:"enableAutoPaidNotification"`
	Language                   string          `json:"language,omitempty"`
}

// Prices returns the price table embedded in the settings record.
func (s Settings) Prices() PriceTable {
	return PriceTable{Recto: s.PriceRecto, RectoVerso: s.PriceRectoVerso}
}

// DefaultSettings returns the settings used until the shop edits them.
func DefaultSettings() Settings {
	return Settings{
		ShopName:                   "Print Enterprise",
		ContactInfo:                "+212 600000000 • example@print.com",
		PriceRecto:                 decimal.NewFromFloat(0.10),
		PriceRectoVerso:            decimal.NewFromFloat(0.15),
		PriceBoth:                  decimal.NewFromFloat(0.25),
		MaxUnpaidThreshold:         decimal.NewFromInt(100),
		WhatsappTemplate:           "Thank you for using our printing service!",
		DefaultSavePath:            "C:/PrintReceipts",
		EnableAutoPdfSave:          true,
		EnableWhatsappNotification: true,
		EnableAutoPaidNotification: false,
	}
}
