package domain

import (
	"strings"
	"time"
)

// DisplayDate переводит дату YYYY-MM-DD в клиентский формат DD/MM/YYYY.
// Нечитаемая дата возвращается как есть.
func DisplayDate(date string) string {
	parsed, err := time.Parse(DateFormat, date)
	if err != nil {
		return date
	}
	return parsed.Format(DisplayDateFormat)
}

// NormalizePhone приводит телефон к цифровому виду для сравнения ключей
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DefaultSalonConfig конфигурация салона по умолчанию. Используется при
// холодном старте и при сбое декодирования сохранённого документа.
func DefaultSalonConfig() SalonConfig {
	return SalonConfig{
		PointsPerService:     1,
		PointsTarget:         2,
		PointsValidityMonths: 6,
		PixPrepayment:        true,
		PixName:              "Ivone Hair Studio",
		BusinessHours: BusinessHours{
			Days:       []string{"Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"},
			Start:      "09:00",
			End:        "18:00",
			BreakStart: "12:00",
			BreakEnd:   "13:00",
		},
		LoyaltyClub: LoyaltyClub{
			Cards: []LoyaltyCard{
				{
					ID:       "escovas",
					Title:    "Minhas Escovas",
					Target:   2,
					Reward:   Reward{Kind: RewardDiscountPercent, Percent: 15},
					Category: CategoryEscovas,
				},
				{
					ID:       "unhas",
					Title:    "Manicure + Pedicure",
					Target:   2,
					Reward:   Reward{Kind: RewardFreeService, ServiceName: "Spa dos Pés"},
					Category: CategoryManicurePedicure,
				},
				{
					ID:       "cilios",
					Title:    "Extensão de Cílios",
					Target:   2,
					Reward:   Reward{Kind: RewardFreeService, ServiceName: "Massagem Facial"},
					Category: CategoryCiliosManutencao,
				},
			},
			SocialMediaStar: DiscountRule{
				DiscountPercent: 10,
				Rule:            "Poste um story marcando o studio e valide com a Ivone.",
			},
			Referral: DiscountRule{
				DiscountPercent: 10,
				Rule:            "Sua amiga deve baixar o app e realizar um procedimento.",
			},
		},
		DynamicText: DynamicText{
			HeroTitle:            "The Ivory Experience",
			HeroSubtitle:         "Design de beleza sob medida para realçar sua essência.",
			StudioDescription:    "Protocolos Studio",
			ProtocolSectionTitle: "Nossa Curadoria",
			LoyaltySectionTitle:  "Clube de Pontos",
		},
		Colors: ThemeColors{
			Primary:   "#D99489",
			Secondary: "#86BDB1",
			Accent:    "#8B5E3C",
		},
	}
}

// DefaultServices стартовый каталог услуг
func DefaultServices() []Service {
	return []Service{
		{ID: "1", Name: "Coloração Premium", Category: ServiceHair, Duration: "120 min",
			Description: "Tratamento de cor com tecnologia botânica que preserva a saúde da fibra."},
		{ID: "2", Name: "Escova Modelada", Category: ServiceHair, Duration: "45 min",
			Description: "Finalização profissional com movimento natural e brilho intenso."},
		{ID: "3", Name: "Manicure + Pedicure SPA", Category: ServiceNails, Duration: "90 min",
			Description: "Ritual completo com esfoliação de sais marinhos e hidratação."},
		{ID: "4", Name: "Extensão de Cílios", Category: ServiceFace, Duration: "120 min",
			Description: "Técnica fio a fio para um olhar marcante e natural."},
		{ID: "5", Name: "Corte Design", Category: ServiceHair, Duration: "60 min",
			Description: "Corte personalizado seguindo visagismo e tendências."},
		{ID: "6", Name: "Massagem Relaxante", Category: ServiceMassage, Duration: "60 min",
			Description: "Ritual com óleos essenciais para alívio de tensões e relaxamento profundo."},
	}
}

// DefaultVouchers стартовые ваучеры
func DefaultVouchers() []Voucher {
	return []Voucher{
		{ID: "v1", Name: "Mimo Boas-vindas", Description: "Desconto especial no seu primeiro serviço.", Limit: 10, Redeemed: 7},
		{ID: "v2", Name: "Reserva Antecipada", Description: "Spa dos Pés incluso para agendamentos matinais.", Limit: 5, Redeemed: 4},
	}
}

// DefaultWeeklyOffers стартовые акции дней недели
func DefaultWeeklyOffers() []WeeklyOffer {
	return []WeeklyOffer{
		{
			Day:    int(time.Tuesday),
			Title:  "Terça-Feira da Beleza",
			Active: true,
			Offers: []WeeklyOfferItem{
				{ID: "2", Name: "Escova + Hidratação", Desc: "Tratamento de brilho", Price: 55},
				{ID: "3", Name: "Manicure + Pedicure", Desc: "Ritual completo", Price: 55},
				{ID: "3-m", Name: "Manicure", Desc: "Esmaltação simples", Price: 30},
			},
		},
		{
			Day:    int(time.Wednesday),
			Title:  "Quarta-Feira: Corte & Secagem",
			Active: true,
			Offers: []WeeklyOfferItem{
				{ID: "5", Name: "Corte Design + Secagem", Desc: "Visagismo e finalização", Price: 65},
			},
		},
	}
}

// DefaultAccessibility настройки доступности по умолчанию
func DefaultAccessibility() AccessibilityPrefs {
	return AccessibilityPrefs{
		FontSize:     100,
		HighContrast: false,
		DarkMode:     false,
		ReadAloud:    false,
		VoiceControl: true,
		SpeechRate:   1,
		SpeechPitch:  1,
	}
}
