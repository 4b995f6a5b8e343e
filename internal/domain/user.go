package domain

import "time"

// ReferralStatus статус приглашённой подруги
type ReferralStatus string

const (
	ReferralJoined    ReferralStatus = "joined"
	ReferralConverted ReferralStatus = "converted"
)

// ReferralEntry запись о приглашении. Статус движется только
// joined → converted, и только ручным действием оператора.
type ReferralEntry struct {
	FriendName string         `json:"friendName"`
	Status     ReferralStatus `json:"status"`
}

// PointCategory категория накопительных баллов
type PointCategory string

const (
	CategoryEscovas           PointCategory = "escovas"
	CategoryManicurePedicure  PointCategory = "manicurePedicure"
	CategoryCiliosManutencao  PointCategory = "ciliosManutencao"
)

// UserPoints счётчики баллов по трём фиксированным категориям.
// Инкремент — только явное действие оператора; завершение процедуры
// само по себе баллы не начисляет.
type UserPoints struct {
	Escovas          int `json:"escovas"`
	ManicurePedicure int `json:"manicurePedicure"`
	CiliosManutencao int `json:"ciliosManutencao"`
}

// Get возвращает счётчик указанной категории
func (p UserPoints) Get(category PointCategory) int {
	switch category {
	case CategoryEscovas:
		return p.Escovas
	case CategoryManicurePedicure:
		return p.ManicurePedicure
	case CategoryCiliosManutencao:
		return p.CiliosManutencao
	default:
		return 0
	}
}

// Valid проверяет, что все счётчики неотрицательны
func (p UserPoints) Valid() bool {
	return p.Escovas >= 0 && p.ManicurePedicure >= 0 && p.CiliosManutencao >= 0
}

// User клиентка студии. Идентифицируется телефоном; создаётся при первом
// входе, удаляется только явным действием оператора.
type User struct {
	ID           string          `json:"id"` // совпадает с телефоном
	Name         string          `json:"name"`
	Phone        string          `json:"phone"`
	BirthDate    string          `json:"birthDate,omitempty"`
	ReferralCode string          `json:"referralCode"`
	ReferredBy   string          `json:"referredBy,omitempty"`
	Referrals    []ReferralEntry `json:"referrals"`
	Points       UserPoints      `json:"points"`

	PermanentPreferences *ClientPreferences `json:"permanentPreferences,omitempty"`
	TermsAccepted        bool               `json:"termsAccepted"`
	CreatedAt            time.Time          `json:"createdAt"`
}

// FirstName возвращает первое слово имени (для обращений в уведомлениях)
func (u *User) FirstName() string {
	for i, r := range u.Name {
		if r == ' ' {
			return u.Name[:i]
		}
	}
	return u.Name
}
