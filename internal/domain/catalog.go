package domain

// ServiceCategory категория услуги каталога
type ServiceCategory string

const (
	ServiceHair    ServiceCategory = "Cabelo"
	ServiceNails   ServiceCategory = "Unhas"
	ServiceBody    ServiceCategory = "Corpo"
	ServiceFace    ServiceCategory = "Rosto"
	ServiceMassage ServiceCategory = "Massagem"
)

// Service услуга студии. Неизменяемые справочные данные: записи ссылаются
// на услугу по id и никогда не встраивают её содержимое.
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    ServiceCategory `json:"category"`
	Duration    string          `json:"duration"`
	Price       float64         `json:"price"`
	Description string          `json:"description,omitempty"`
	ImageURL    string          `json:"imageUrl,omitempty"`
}

// Voucher ваучер с лимитом выдачи. Счётчик redeemed растёт при каждом
// погашении; limit носит информационный характер и не блокирует погашение.
type Voucher struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Limit       int    `json:"limit"`
	Redeemed    int    `json:"redeemed"`
}

// WeeklyOfferItem позиция акционного дня
type WeeklyOfferItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Desc  string  `json:"desc,omitempty"`
	Price float64 `json:"price"`
}

// WeeklyOffer акция дня недели. Day в терминах time.Weekday (0 = воскресенье).
type WeeklyOffer struct {
	Day    int               `json:"day"`
	Title  string            `json:"title"`
	Offers []WeeklyOfferItem `json:"offers"`
	Active bool              `json:"active"`
}

// GalleryItem элемент галереи работ. Управление галереей — тонкая
// обёртка вне ядра; коллекция присутствует только ради персистентного
// раунд-трипа и дефолта при сбое декодирования.
type GalleryItem struct {
	ID          string `json:"id"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt"`
}
