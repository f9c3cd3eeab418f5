package booking

import (
	"context"
	"strings"

	"github.com/rentalworks/partyrent/internal/domain"
	"gorm.io/gorm"
)

// InventoryFilter narrows and orders a catalog listing.
type InventoryFilter struct {
	Query    string
	Category string
	Sort     string
	Order    string
	Page     int
	PageSize int
}

// InventoryRepository provides inventory item data access
type InventoryRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.InventoryItem, error)
	GetBySlug(ctx context.Context, slug string) (*domain.InventoryItem, error)
	List(ctx context.Context, filter InventoryFilter) ([]domain.InventoryItem, int64, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, item *domain.InventoryItem) error
	Update(ctx context.Context, item *domain.InventoryItem) error
	Delete(ctx context.Context, id int64) error
}

// ReservationRepository provides reservation data access. ConfirmedForItem is
// the snapshot feed of the availability engine and must return a consistent
// point-in-time view.
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ConfirmedForItem(ctx context.Context, itemID int64) ([]domain.Reservation, error)
	List(ctx context.Context, itemID int64, status string, page, pageSize int) ([]domain.Reservation, int64, error)
	Create(ctx context.Context, res *domain.Reservation) error
	Update(ctx context.Context, res *domain.Reservation) error
	Cancel(ctx context.Context, id int64) error
}

// OrderRepository persists orders placed at checkout.
type OrderRepository interface {
	GetByNumber(ctx context.Context, number string) (*domain.Order, []domain.OrderItem, error)
	List(ctx context.Context, query string, page, pageSize int) ([]domain.Order, int64, error)
	// Create stores the order, its lines and the confirmed reservations that
	// back them in a single transaction.
	Create(ctx context.Context, order *domain.Order, items []domain.OrderItem, reservations []domain.Reservation) error
}

// GormInventoryRepository is the GORM implementation of InventoryRepository
type GormInventoryRepository struct {
	db *gorm.DB
}

func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

func (r *GormInventoryRepository) GetByID(ctx context.Context, id int64) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	return &item, err
}

func (r *GormInventoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&item).Error
	return &item, err
}

// inventorySortColumns whitelists sortable columns to avoid SQL injection.
var inventorySortColumns = map[string]string{
	"id":            "id",
	"name":          "name",
	"category":      "category",
	"price":         "price_per_day",
	"price_per_day": "price_per_day",
	"created_at":    "created_at",
}

func (r *GormInventoryRepository) List(ctx context.Context, filter InventoryFilter) ([]domain.InventoryItem, int64, error) {
	db := r.db.WithContext(ctx).Model(&domain.InventoryItem{})

	if q := strings.TrimSpace(filter.Query); q != "" {
		if strings.EqualFold(r.db.Name(), "postgres") {
			db = db.Where("name ILIKE ? OR description ILIKE ? OR tags ILIKE ?",
				"%"+q+"%", "%"+q+"%", "%"+q+"%")
		} else {
			like := "%" + strings.ToLower(q) + "%"
			db = db.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(tags) LIKE ?",
				like, like, like)
		}
	}
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortCol, ok := inventorySortColumns[filter.Sort]
	if !ok {
		sortCol = "name"
	}
	order := strings.ToUpper(filter.Order)
	if order != "ASC" && order != "DESC" {
		order = "ASC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 500 {
		pageSize = 20
	}

	var items []domain.InventoryItem
	err := db.Order(sortCol + " " + order).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	return items, total, err
}

func (r *GormInventoryRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&domain.InventoryItem{}).
		Distinct("category").
		Where("category <> ''").
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *GormInventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *GormInventoryRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *GormInventoryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.InventoryItem{}, id).Error
}

// GormReservationRepository is the GORM implementation of ReservationRepository
type GormReservationRepository struct {
	db *gorm.DB
}

func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

func (r *GormReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var res domain.Reservation
	err := r.db.WithContext(ctx).First(&res, id).Error
	return &res, err
}

func (r *GormReservationRepository) ConfirmedForItem(ctx context.Context, itemID int64) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND status = ?", itemID, domain.ReservationConfirmed).
		Order("start_date ASC").
		Find(&reservations).Error
	return reservations, err
}

func (r *GormReservationRepository) List(ctx context.Context, itemID int64, status string, page, pageSize int) ([]domain.Reservation, int64, error) {
	db := r.db.WithContext(ctx).Model(&domain.Reservation{})
	if itemID != 0 {
		db = db.Where("item_id = ?", itemID)
	}
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 500 {
		pageSize = 20
	}

	var reservations []domain.Reservation
	err := db.Order("start_date DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reservations).Error
	return reservations, total, err
}

func (r *GormReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *GormReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *GormReservationRepository) Cancel(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("id = ?", id).
		Update("status", domain.ReservationCanceled).Error
}

// GormOrderRepository is the GORM implementation of OrderRepository
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) GetByNumber(ctx context.Context, number string) (*domain.Order, []domain.OrderItem, error) {
	var order domain.Order
	if err := r.db.WithContext(ctx).Where("number = ?", number).First(&order).Error; err != nil {
		return nil, nil, err
	}
	var items []domain.OrderItem
	if err := r.db.WithContext(ctx).Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
		return nil, nil, err
	}
	return &order, items, nil
}

func (r *GormOrderRepository) List(ctx context.Context, query string, page, pageSize int) ([]domain.Order, int64, error) {
	db := r.db.WithContext(ctx).Model(&domain.Order{})
	if q := strings.TrimSpace(query); q != "" {
		if strings.EqualFold(r.db.Name(), "postgres") {
			db = db.Where("number ILIKE ? OR customer_name ILIKE ? OR customer_email ILIKE ?",
				"%"+q+"%", "%"+q+"%", "%"+q+"%")
		} else {
			like := "%" + strings.ToLower(q) + "%"
			db = db.Where("LOWER(number) LIKE ? OR LOWER(customer_name) LIKE ? OR LOWER(customer_email) LIKE ?",
				like, like, like)
		}
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 500 {
		pageSize = 20
	}

	var orders []domain.Order
	err := db.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error
	return orders, total, err
}

func (r *GormOrderRepository) Create(ctx context.Context, order *domain.Order, items []domain.OrderItem, reservations []domain.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		for i := range reservations {
			reservations[i].OrderID = order.ID
		}
		if len(reservations) > 0 {
			if err := tx.Create(&reservations).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
