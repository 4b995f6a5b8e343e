package speech

import "github.com/ivonestudio/studio-service/internal/domain"

// AccessibilityProvider источник настроек доступности
type AccessibilityProvider interface {
	Accessibility() domain.AccessibilityPrefs
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Narrator хук озвучивания. Вызывается оппортунистически (вход, чек-ин);
// успех или неуспех никогда не влияет на поведение ядра. Синтез речи
// происходит на клиенте — сервис только публикует реплику в лог.
type Narrator struct {
	prefs AccessibilityProvider
	log   Logger
}

// New создает новый экземпляр озвучивателя
func New(prefs AccessibilityProvider, log Logger) *Narrator {
	return &Narrator{prefs: prefs, log: log}
}

// Speak озвучивает текст, если включён режим чтения вслух
func (n *Narrator) Speak(text string) {
	if !n.prefs.Accessibility().ReadAloud {
		return
	}
	n.log.Info("speak: %s", text)
}
