package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/errors"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/model"
	"github.com/KonijarlaHemanthkumar/quickbite-campus/internal/domain/repository"
)

// Pool is the subset of pgxpool.Pool the storage relies on.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type menuRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (Pool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// New creates storage with schema initialization and first-boot seeding.
// emailDomain is used for the seeded staff account.
func New(ctx context.Context, dsn, emailDomain string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if err := storage.seed(ctx, emailDomain); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Menu() repository.MenuRepository {
	return &menuRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	// order_items.menu_item_id intentionally has no foreign key: requested
	// lines are stored even when they reference an unknown menu item.
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            name TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'student',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS menu_items (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            category TEXT NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            is_available BOOLEAN NOT NULL DEFAULT TRUE,
            image_url TEXT NOT NULL DEFAULT ''
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            status TEXT NOT NULL,
            total_amount DOUBLE PRECISION NOT NULL,
            pickup_time TEXT NOT NULL DEFAULT '',
            special_instructions TEXT NOT NULL DEFAULT '',
            payment_method TEXT NOT NULL DEFAULT 'college_card',
            order_number TEXT NOT NULL,
            qr_code TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id),
            menu_item_id BIGINT NOT NULL,
            quantity INT NOT NULL,
            customizations TEXT NOT NULL DEFAULT '{}'
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_menu_items_category ON menu_items(category, name)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// seed populates an empty catalog and guarantees one staff account exists.
// Staff role is otherwise unreachable through the exposed surface.
func (s *Storage) seed(ctx context.Context, emailDomain string) error {
	var menuCount int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&menuCount); err != nil {
		return fmt.Errorf("seed: count menu items: %w", err)
	}
	if menuCount == 0 {
		const insert = `INSERT INTO menu_items (name, category, price, image_url) VALUES ($1, $2, $3, $4)`
		items := []model.MenuItem{
			{Name: "Masala Dosa", Category: "breakfast", Price: 4.50, ImageURL: "/images/masala-dosa.jpg"},
			{Name: "Veg Sandwich", Category: "breakfast", Price: 3.00, ImageURL: "/images/veg-sandwich.jpg"},
			{Name: "Chicken Biryani", Category: "lunch", Price: 7.50, ImageURL: "/images/chicken-biryani.jpg"},
			{Name: "Paneer Thali", Category: "lunch", Price: 6.00, ImageURL: "/images/paneer-thali.jpg"},
			{Name: "Samosa", Category: "snacks", Price: 1.50, ImageURL: "/images/samosa.jpg"},
			{Name: "Cold Coffee", Category: "beverages", Price: 2.50, ImageURL: "/images/cold-coffee.jpg"},
		}
		for _, item := range items {
			if _, err := s.pool.Exec(ctx, insert, item.Name, item.Category, item.Price, item.ImageURL); err != nil {
				return fmt.Errorf("seed: insert menu item: %w", err)
			}
		}
		s.logger.Info("seeded menu catalog", slog.Int("items", len(items)))
	}

	const staffInsert = `INSERT INTO users (email, name, role) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING`
	if _, err := s.pool.Exec(ctx, staffInsert, "staff@"+emailDomain, "staff", model.RoleStaff); err != nil {
		return fmt.Errorf("seed: insert staff user: %w", err)
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, email, name string, role model.Role) (*model.User, error) {
	const query = `INSERT INTO users (email, name, role) VALUES ($1, $2, $3) RETURNING id, created_at`
	u := model.User{Email: email, Name: name, Role: role}
	err := r.storage.pool.QueryRow(ctx, query, email, name, role).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, name, role, created_at FROM users WHERE email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, email, name, role, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- MenuRepository implementation ---

func (r *menuRepository) List(ctx context.Context, category string) ([]model.MenuItem, error) {
	const listAll = `SELECT id, name, category, price, is_available, image_url
                     FROM menu_items WHERE is_available ORDER BY category, name`
	const listCategory = `SELECT id, name, category, price, is_available, image_url
                          FROM menu_items WHERE is_available AND category=$1 ORDER BY category, name`

	var (
		rows pgx.Rows
		err  error
	)
	if category == "" {
		rows, err = r.storage.pool.Query(ctx, listAll)
	} else {
		rows, err = r.storage.pool.Query(ctx, listCategory, category)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.MenuItem
	for rows.Next() {
		var item model.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Price, &item.IsAvailable, &item.ImageURL); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *menuRepository) GetByID(ctx context.Context, id int64) (*model.MenuItem, error) {
	const query = `SELECT id, name, category, price, is_available, image_url FROM menu_items WHERE id=$1`
	var item model.MenuItem
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&item.ID, &item.Name, &item.Category, &item.Price, &item.IsAvailable, &item.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	const query = `UPDATE menu_items SET is_available=$1 WHERE id=$2`
	_, err := r.storage.pool.Exec(ctx, query, available, id)
	return err
}

// --- OrderRepository implementation ---

const orderColumns = `id, user_id, status, total_amount, pickup_time, special_instructions, payment_method, order_number, qr_code, created_at`

func scanOrder(row pgx.Row, o *model.Order) error {
	return row.Scan(&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.PickupTime,
		&o.SpecialInstructions, &o.PaymentMethod, &o.Number, &o.QRCode, &o.CreatedAt)
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	const query = `INSERT INTO orders (user_id, status, total_amount, pickup_time, special_instructions, payment_method, order_number)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING id, created_at`
	return r.storage.pool.QueryRow(ctx, query,
		order.UserID, order.Status, order.TotalAmount, order.PickupTime,
		order.SpecialInstructions, order.PaymentMethod, order.Number,
	).Scan(&order.ID, &order.CreatedAt)
}

// InsertItems writes one row per requested line. Each insert is an
// independent statement: a failure mid-way leaves a visible partial order
// rather than blocking the submission.
func (r *orderRepository) InsertItems(ctx context.Context, orderID int64, lines []model.CartLine) error {
	const query = `INSERT INTO order_items (order_id, menu_item_id, quantity, customizations) VALUES ($1, $2, $3, $4)`
	for _, line := range lines {
		customizations := line.Customizations
		if customizations == "" {
			customizations = "{}"
		}
		if _, err := r.storage.pool.Exec(ctx, query, orderID, line.MenuItemID, line.Quantity, customizations); err != nil {
			return err
		}
	}
	return nil
}

func (r *orderRepository) SetQRCode(ctx context.Context, orderID int64, payload string) error {
	const query = `UPDATE orders SET qr_code=$1 WHERE id=$2`
	_, err := r.storage.pool.Exec(ctx, query, payload, orderID)
	return err
}

func (r *orderRepository) GetByIDForUser(ctx context.Context, orderID, userID int64) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 AND user_id=$2`
	var o model.Order
	if err := scanOrder(r.storage.pool.QueryRow(ctx, query, orderID, userID), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT o.id, o.user_id, o.status, o.total_amount, o.pickup_time, o.special_instructions,
                          o.payment_method, o.order_number, o.qr_code, o.created_at,
                          COALESCE(string_agg(oi.menu_item_id::text || ':' || oi.quantity::text, ','), '') AS items
                   FROM orders o
                   LEFT JOIN order_items oi ON oi.order_id = o.id
                   WHERE o.user_id=$1
                   GROUP BY o.id
                   ORDER BY o.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.PickupTime,
			&o.SpecialInstructions, &o.PaymentMethod, &o.Number, &o.QRCode, &o.CreatedAt,
			&o.ItemsSummary); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ItemsByOrder inner-joins menu_items, so lines referencing an unknown menu
// item are stored but never rendered.
func (r *orderRepository) ItemsByOrder(ctx context.Context, orderID int64) ([]model.OrderItemDetail, error) {
	const query = `SELECT oi.id, oi.order_id, oi.menu_item_id, oi.quantity, oi.customizations,
                          mi.name, mi.price, mi.image_url
                   FROM order_items oi
                   JOIN menu_items mi ON mi.id = oi.menu_item_id
                   WHERE oi.order_id=$1`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderItemDetail
	for rows.Next() {
		var d model.OrderItemDetail
		if err := rows.Scan(&d.ID, &d.OrderID, &d.MenuItemID, &d.Quantity, &d.Customizations,
			&d.Name, &d.Price, &d.ImageURL); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	const query = `UPDATE orders SET status=$1 WHERE id=$2`
	_, err := r.storage.pool.Exec(ctx, query, status, orderID)
	return err
}

func (r *orderRepository) ListActive(ctx context.Context) ([]model.StaffOrder, error) {
	const query = `SELECT o.id, o.user_id, o.status, o.total_amount, o.pickup_time, o.special_instructions,
                          o.payment_method, o.order_number, o.qr_code, o.created_at, u.name AS user_name
                   FROM orders o
                   JOIN users u ON u.id = o.user_id
                   WHERE o.status != 'collected'
                   ORDER BY o.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	var result []model.StaffOrder
	for rows.Next() {
		var so model.StaffOrder
		if err := rows.Scan(&so.ID, &so.UserID, &so.Status, &so.TotalAmount, &so.PickupTime,
			&so.SpecialInstructions, &so.PaymentMethod, &so.Number, &so.QRCode, &so.CreatedAt,
			&so.UserName); err != nil {
			rows.Close()
			return nil, err
		}
		result = append(result, so)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range result {
		items, err := r.ItemsByOrder(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Items = items
	}
	return result, nil
}

func (r *orderRepository) SelectMissingQRCode(ctx context.Context, limit int) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + `
                   FROM orders
                   WHERE qr_code = '' AND status NOT IN ('collected', 'cancelled')
                   ORDER BY created_at
                   LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.PickupTime,
			&o.SpecialInstructions, &o.PaymentMethod, &o.Number, &o.QRCode, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) TodayStats(ctx context.Context) (*model.DayStats, error) {
	// Calendar day in the database session timezone; COALESCE keeps an
	// empty day at zeros instead of NULL.
	const query = `SELECT COUNT(*),
                          COALESCE(SUM(total_amount), 0),
                          COALESCE(AVG(total_amount), 0),
                          COUNT(*) FILTER (WHERE status = 'ready'),
                          COUNT(*) FILTER (WHERE status = 'preparing')
                   FROM orders
                   WHERE created_at::date = CURRENT_DATE`
	var stats model.DayStats
	err := r.storage.pool.QueryRow(ctx, query).Scan(&stats.TotalOrders, &stats.TotalRevenue,
		&stats.AvgOrderValue, &stats.ReadyCount, &stats.PreparingCount)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
