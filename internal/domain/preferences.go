package domain

// HealthPreferences пожелания по здоровью и комфорту
type HealthPreferences struct {
	Alergias string `json:"alergias,omitempty"`
	Cheiro   string `json:"cheiro,omitempty"`
	AguaTemp string `json:"aguaTemp,omitempty"` // Quente | Morna | Fria
	Outros   string `json:"outros,omitempty"`
}

// NailPreferences пожелания по маникюру
type NailPreferences struct {
	Formato string `json:"formato,omitempty"` // Jade | Redonda | Curta | Quadrada | Outros | none
	Pref    string `json:"pref,omitempty"`
}

// ClientPreferences ритуал предпочтений клиентки. Прикрепляется к записи
// после создания; при saveToProfile копируется в профиль как постоянный.
type ClientPreferences struct {
	Environment   string            `json:"environment,omitempty"` // papo | zen | none
	Refreshment   string            `json:"refreshment,omitempty"`
	Health        HealthPreferences `json:"health"`
	Nails         NailPreferences   `json:"nails"`
	Lashes        string            `json:"lashes,omitempty"`
	HairExtra     string            `json:"hairExtra,omitempty"`
	SaveToProfile bool              `json:"saveToProfile,omitempty"`
}

// AccessibilityPrefs настройки доступности. Ядро использует только
// ReadAloud (гейт озвучивания); остальное — данные тонкой обёртки UI,
// персистентные ради раунд-трипа.
type AccessibilityPrefs struct {
	FontSize     int     `json:"fontSize"`
	HighContrast bool    `json:"highContrast"`
	DarkMode     bool    `json:"darkMode"`
	ReadAloud    bool    `json:"readAloud"`
	VoiceControl bool    `json:"voiceControl"`
	SpeechRate   float64 `json:"speechRate"`
	SpeechPitch  float64 `json:"speechPitch"`
}
