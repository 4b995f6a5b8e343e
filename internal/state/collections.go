package state

import (
	"github.com/ivonestudio/studio-service/internal/domain"
)

// Пользователи

// Users возвращает копию списка клиенток
func (c *Controller) Users() []domain.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.User, len(c.users))
	copy(out, c.users)
	return out
}

// UserByPhone ищет клиентку по телефону
func (c *Controller) UserByPhone(phone string) (domain.User, bool) {
	key := domain.NormalizePhone(phone)
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, u := range c.users {
		if domain.NormalizePhone(u.Phone) == key {
			return u, true
		}
	}
	return domain.User{}, false
}

// UserByReferralCode ищет клиентку по реферальному коду
func (c *Controller) UserByReferralCode(code string) (domain.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, u := range c.users {
		if u.ReferralCode != "" && u.ReferralCode == code {
			return u, true
		}
	}
	return domain.User{}, false
}

// SaveUser вставляет или заменяет клиентку целиком
func (c *Controller) SaveUser(user domain.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	replaced := false
	for i, u := range c.users {
		if u.ID == user.ID {
			c.users[i] = user
			replaced = true
			break
		}
	}
	if !replaced {
		c.users = append(c.users, user)
	}
	c.persist(docUsers, c.users)
}

// DeleteUser удаляет клиентку. Единственный путь удаления — явное
// действие оператора.
func (c *Controller) DeleteUser(phone string) bool {
	key := domain.NormalizePhone(phone)
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, u := range c.users {
		if domain.NormalizePhone(u.Phone) == key {
			c.users = append(c.users[:i], c.users[i+1:]...)
			c.persist(docUsers, c.users)
			return true
		}
	}
	return false
}

// Записи

// Appointments возвращает копию списка записей в порядке создания
func (c *Controller) Appointments() []domain.Appointment {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Appointment, len(c.appointments))
	copy(out, c.appointments)
	return out
}

// AppointmentsByPhone возвращает записи клиентки в порядке создания
func (c *Controller) AppointmentsByPhone(phone string) []domain.Appointment {
	key := domain.NormalizePhone(phone)
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Appointment, 0)
	for _, a := range c.appointments {
		if domain.NormalizePhone(a.ClientPhone) == key {
			out = append(out, a)
		}
	}
	return out
}

// AppointmentByID ищет запись по идентификатору
func (c *Controller) AppointmentByID(id string) (domain.Appointment, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, a := range c.appointments {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Appointment{}, false
}

// SaveAppointment вставляет или заменяет запись целиком.
// Записи никогда не удаляются, только мягко закрываются статусом.
func (c *Controller) SaveAppointment(app domain.Appointment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	replaced := false
	for i, a := range c.appointments {
		if a.ID == app.ID {
			c.appointments[i] = app
			replaced = true
			break
		}
	}
	if !replaced {
		c.appointments = append(c.appointments, app)
	}
	c.persist(docAppointments, c.appointments)
}

// Каталог услуг

// Services возвращает копию каталога услуг
func (c *Controller) Services() []domain.Service {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Service, len(c.services))
	copy(out, c.services)
	return out
}

// ServiceByID ищет услугу по идентификатору
func (c *Controller) ServiceByID(id string) (domain.Service, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.services {
		if s.ID == id {
			return s, true
		}
	}
	return domain.Service{}, false
}

// Ваучеры

// Vouchers возвращает копию списка ваучеров
func (c *Controller) Vouchers() []domain.Voucher {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Voucher, len(c.vouchers))
	copy(out, c.vouchers)
	return out
}

// VoucherByID ищет ваучер по идентификатору
func (c *Controller) VoucherByID(id string) (domain.Voucher, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, v := range c.vouchers {
		if v.ID == id {
			return v, true
		}
	}
	return domain.Voucher{}, false
}

// SaveVoucher заменяет ваучер целиком
func (c *Controller) SaveVoucher(voucher domain.Voucher) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, v := range c.vouchers {
		if v.ID == voucher.ID {
			c.vouchers[i] = voucher
			c.persist(docVouchers, c.vouchers)
			return
		}
	}
	c.vouchers = append(c.vouchers, voucher)
	c.persist(docVouchers, c.vouchers)
}

// Акции

// WeeklyOffers возвращает копию акций дней недели
func (c *Controller) WeeklyOffers() []domain.WeeklyOffer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.WeeklyOffer, len(c.offers))
	copy(out, c.offers)
	return out
}

// SaveWeeklyOffer заменяет акцию дня недели
func (c *Controller) SaveWeeklyOffer(offer domain.WeeklyOffer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, o := range c.offers {
		if o.Day == offer.Day {
			c.offers[i] = offer
			c.persist(docOffers, c.offers)
			return
		}
	}
	c.offers = append(c.offers, offer)
	c.persist(docOffers, c.offers)
}

// Галерея

// Gallery возвращает копию галереи работ
func (c *Controller) Gallery() []domain.GalleryItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.GalleryItem, len(c.gallery))
	copy(out, c.gallery)
	return out
}

// Конфигурация салона

// SalonConfig возвращает копию конфигурации салона
func (c *Controller) SalonConfig() domain.SalonConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.salonConfig
}

// SetSalonConfig заменяет конфигурацию салона целиком
func (c *Controller) SetSalonConfig(cfg domain.SalonConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.salonConfig = cfg
	c.persist(docSalonConfig, c.salonConfig)
}

// Доступность

// Accessibility возвращает настройки доступности
func (c *Controller) Accessibility() domain.AccessibilityPrefs {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessibility
}

// SetAccessibility заменяет настройки доступности целиком
func (c *Controller) SetAccessibility(prefs domain.AccessibilityPrefs) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessibility = prefs
	c.persist(docAccessibility, c.accessibility)
}
