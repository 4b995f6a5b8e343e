package state

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/ivonestudio/studio-service/internal/domain"
	"github.com/ivonestudio/studio-service/internal/infra/docstore"
)

// persistTimeout таймаут фоновой записи документа
const persistTimeout = 5 * time.Second

// Controller явная структура состояния приложения: единственный владелец
// всех коллекций. Мутации — замена объекта целиком под одним мьютексом;
// экземпляр сервиса обслуживает одну консоль, поэтому писатель один.
// Персистентность fire-and-forget: запись уходит в фоне, без подтверждения
// и без ретраев, ошибки только логируются.
type Controller struct {
	store DocumentStore
	log   Logger

	mu            sync.RWMutex
	users         []domain.User
	appointments  []domain.Appointment
	services      []domain.Service
	vouchers      []domain.Voucher
	offers        []domain.WeeklyOffer
	gallery       []domain.GalleryItem
	salonConfig   domain.SalonConfig
	accessibility domain.AccessibilityPrefs
}

// NewController создает контроллер состояния поверх хранилища документов
func NewController(store DocumentStore, log Logger) *Controller {
	return &Controller{store: store, log: log}
}

// Load загружает все коллекции при холодном старте. Сбой декодирования
// любой коллекции — не фатален: подставляется дефолт из кода.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	loadCollection(ctx, c, docUsers, &c.users, nil)
	loadCollection(ctx, c, docAppointments, &c.appointments, nil)
	loadCollection(ctx, c, docServices, &c.services, domain.DefaultServices)
	loadCollection(ctx, c, docVouchers, &c.vouchers, domain.DefaultVouchers)
	loadCollection(ctx, c, docOffers, &c.offers, domain.DefaultWeeklyOffers)
	loadCollection(ctx, c, docGallery, &c.gallery, nil)
	loadValue(ctx, c, docSalonConfig, &c.salonConfig, domain.DefaultSalonConfig)
	loadValue(ctx, c, docAccessibility, &c.accessibility, domain.DefaultAccessibility)

	c.log.Info("State loaded: users=%d, appointments=%d, services=%d, vouchers=%d, offers=%d",
		len(c.users), len(c.appointments), len(c.services), len(c.vouchers), len(c.offers))
	return nil
}

// loadCollection читает коллекцию-слайс с фолбэком на дефолт
func loadCollection[T any](ctx context.Context, c *Controller, name string, dst *[]T, fallback func() []T) {
	body, err := c.store.Get(ctx, name)
	if err == nil {
		var decoded []T
		if err := json.Unmarshal(body, &decoded); err == nil {
			*dst = decoded
			return
		}
		c.log.Warn("Load: document %q is not decodable, falling back to defaults: %v", name, err)
	} else if !errors.Is(err, docstore.ErrDocumentNotFound) {
		c.log.Warn("Load: failed to read document %q, falling back to defaults: %v", name, err)
	}

	if fallback != nil {
		*dst = fallback()
	} else {
		*dst = []T{}
	}
}

// loadValue читает одиночный документ с фолбэком на дефолт
func loadValue[T any](ctx context.Context, c *Controller, name string, dst *T, fallback func() T) {
	body, err := c.store.Get(ctx, name)
	if err == nil {
		var decoded T
		if err := json.Unmarshal(body, &decoded); err == nil {
			*dst = decoded
			return
		}
		c.log.Warn("Load: document %q is not decodable, falling back to defaults: %v", name, err)
	} else if !errors.Is(err, docstore.ErrDocumentNotFound) {
		c.log.Warn("Load: failed to read document %q, falling back to defaults: %v", name, err)
	}

	*dst = fallback()
}

// persist сериализует значение и пишет документ в фоне.
// Вызывается под мьютексом: маршалинг происходит синхронно, чтобы
// зафиксировать снимок, сама запись уходит в отдельной горутине.
func (c *Controller) persist(name string, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		c.log.Error("persist: failed to marshal document %q: %v", name, err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := c.store.Put(ctx, name, body); err != nil {
			c.log.Error("persist: failed to write document %q: %v", name, err)
		}
	}()
}
