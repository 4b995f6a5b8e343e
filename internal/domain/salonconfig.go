package domain

// RewardKind вид награды карточки лояльности. Закрытое перечисление
// вместо нетипизированного списка наград.
type RewardKind string

const (
	RewardDiscountPercent RewardKind = "discount_percent"
	RewardFreeService     RewardKind = "free_service"
)

// Reward награда за заполненную карточку. Теговое объединение:
// значимые поля определяются Kind.
type Reward struct {
	Kind        RewardKind `json:"kind"`
	Percent     int        `json:"percent,omitempty"`     // для discount_percent
	ServiceName string     `json:"serviceName,omitempty"` // для free_service
}

// LoyaltyCard карточка клуба лояльности: цель по одной категории баллов
type LoyaltyCard struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Target   int           `json:"target"`
	Reward   Reward        `json:"reward"`
	Category PointCategory `json:"category"`
}

// DiscountRule правило скидки с текстовым описанием условия
type DiscountRule struct {
	DiscountPercent int    `json:"discountPercent"`
	Rule            string `json:"rule,omitempty"`
}

// LoyaltyClub конфигурация клуба лояльности
type LoyaltyClub struct {
	Cards           []LoyaltyCard `json:"cards"`
	SocialMediaStar DiscountRule  `json:"socialMediaStar"`
	Referral        DiscountRule  `json:"referral"`
}

// DynamicText настраиваемые тексты витрины
type DynamicText struct {
	HeroTitle            string `json:"heroTitle"`
	HeroSubtitle         string `json:"heroSubtitle"`
	StudioDescription    string `json:"studioDescription"`
	ProtocolSectionTitle string `json:"protocolSectionTitle"`
	LoyaltySectionTitle  string `json:"loyaltySectionTitle"`
}

// ThemeColors цветовая схема витрины
type ThemeColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// SalonConfig конфигурация салона: рабочие часы, клуб лояльности,
// оплата и оформление
type SalonConfig struct {
	PointsPerService    int    `json:"pointsPerService"`
	PointsTarget        int    `json:"pointsTarget"`
	PointsValidityMonths int   `json:"pointsValidityMonths"`
	PixPrepayment       bool   `json:"pixPrepayment"`
	PixName             string `json:"pixName"`

	BusinessHours BusinessHours `json:"businessHours"`
	LoyaltyClub   LoyaltyClub   `json:"loyaltyClub"`
	DynamicText   DynamicText   `json:"dynamicText"`
	Colors        ThemeColors   `json:"colors"`
}
