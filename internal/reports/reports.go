// Package reports holds the read-only aggregate queries consumed by the
// chart/PDF collaborators. Every method degrades gracefully: on a store
// failure it logs and returns an empty result (or nil for singular
// aggregates) instead of propagating. Reporting must never take the UI
// down with it.
package reports

import (
	"context"
	"log"

	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service {
	return &Service{db: db}
}

// --------------------------------------------------
// Row types
// --------------------------------------------------

type CourtIncomeRow struct {
	CourtName string  `json:"court_name"`
	Income    float64 `json:"income"`
	Bookings  int     `json:"bookings"`
}

type MethodTotalRow struct {
	Method string  `json:"method"`
	Count  int     `json:"count"`
	Total  float64 `json:"total"`
}

type PaymentStatusOverview struct {
	ConfirmedIncome   float64 `json:"confirmed_income"`
	PaymentsCollected float64 `json:"payments_collected"`
	PendingAmount     float64 `json:"pending_amount"`
	CancelledAmount   float64 `json:"cancelled_amount"`
	Balance           float64 `json:"balance"`
}

type MonthlyBudgetRow struct {
	Month             string  `json:"month"`
	ConfirmedBookings int     `json:"confirmed_bookings"`
	Budget            float64 `json:"budget"`
	Collected         float64 `json:"collected"`
}

type TopClientRow struct {
	ClientName string  `json:"client_name"`
	Bookings   int     `json:"bookings"`
	TotalSpend float64 `json:"total_spend"`
	Collected  float64 `json:"collected"`
}

type CollectionRow struct {
	Period    string  `json:"period"`
	Payments  int     `json:"payments"`
	Collected float64 `json:"collected"`
}

type BudgetProjection struct {
	MonthlyAverage      float64 `json:"monthly_average"`
	BestMonth           float64 `json:"best_month"`
	WorstMonth          float64 `json:"worst_month"`
	QuarterlyProjection float64 `json:"quarterly_projection"`
}

type BookingCountRow struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

type MonthlyUtilizationRow struct {
	Month    string `json:"month"`
	Bookings int    `json:"bookings"`
}

// --------------------------------------------------
// Queries
// --------------------------------------------------

// IncomePerCourt sums confirmed booking amounts per court, highest first.
func (s *Service) IncomePerCourt(ctx context.Context) []CourtIncomeRow {
	var rows []CourtIncomeRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT co.name AS court_name,
		       COALESCE(SUM(b.amount), 0) AS income,
		       COUNT(b.id) AS bookings
		FROM courts co
		JOIN bookings b ON b.court_id = co.id AND b.status = 'confirmada'
		GROUP BY co.id, co.name
		ORDER BY income DESC
	`).Scan(&rows).Error
	if err != nil {
		log.Printf("reports: income per court failed: %v", err)
		return []CourtIncomeRow{}
	}
	return rows
}

func (s *Service) PaymentsPerMethod(ctx context.Context) []MethodTotalRow {
	var rows []MethodTotalRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT method, COUNT(*) AS count, SUM(amount) AS total
		FROM payments
		GROUP BY method
		ORDER BY total DESC
	`).Scan(&rows).Error
	if err != nil {
		log.Printf("reports: payments per method failed: %v", err)
		return []MethodTotalRow{}
	}
	return rows
}

// StatusOverview compares income generated by confirmed bookings with
// payments actually collected, plus what is pending and what was lost to
// cancellations.
func (s *Service) StatusOverview(ctx context.Context) *PaymentStatusOverview {
	var o PaymentStatusOverview
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COALESCE(SUM(amount), 0) FROM bookings WHERE status = 'confirmada') AS confirmed_income,
			(SELECT COALESCE(SUM(amount), 0) FROM payments) AS payments_collected,
			(SELECT COALESCE(SUM(amount), 0) FROM bookings WHERE status = 'pendiente') AS pending_amount,
			(SELECT COALESCE(SUM(amount), 0) FROM bookings WHERE status = 'cancelada') AS cancelled_amount
	`).Scan(&o).Error
	if err != nil {
		log.Printf("reports: status overview failed: %v", err)
		return nil
	}
	o.Balance = o.ConfirmedIncome - o.PaymentsCollected
	return &o
}

// MonthlyBudget contrasts the confirmed budget of each month with the
// payments collected against it.
func (s *Service) MonthlyBudget(ctx context.Context) []MonthlyBudgetRow {
	var rows []MonthlyBudgetRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT to_char(b.date, 'YYYY-MM') AS month,
		       COUNT(CASE WHEN b.status = 'confirmada' THEN 1 END) AS confirmed_bookings,
		       COALESCE(SUM(CASE WHEN b.status = 'confirmada' THEN b.amount ELSE 0 END), 0) AS budget,
		       COALESCE(SUM(p.amount), 0) AS collected
		FROM bookings b
		LEFT JOIN payments p ON p.booking_id = b.id
		GROUP BY month
		ORDER BY month DESC
	`).Scan(&rows).Error
	if err != nil {
		log.Printf("reports: monthly budget failed: %v", err)
		return []MonthlyBudgetRow{}
	}
	return rows
}

func (s *Service) TopClients(ctx context.Context) []TopClientRow {
	var rows []TopClientRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT c.first_name || ' ' || c.last_name AS client_name,
		       COUNT(b.id) AS bookings,
		       COALESCE(SUM(b.amount), 0) AS total_spend,
		       COALESCE(SUM(p.amount), 0) AS collected
		FROM clients c
		LEFT JOIN bookings b ON b.client_id = c.id
		LEFT JOIN payments p ON p.booking_id = b.id
		GROUP BY c.id, c.first_name, c.last_name
		ORDER BY total_spend DESC
		LIMIT 10
	`).Scan(&rows).Error
	if err != nil {
		log.Printf("reports: top clients failed: %v", err)
		return []TopClientRow{}
	}
	return rows
}

// CollectionSummary groups collected payments by calendar month.
func (s *Service) CollectionSummary(ctx context.Context) []CollectionRow {
	var rows []CollectionRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT to_char(paid_at, 'YYYY-MM') AS period,
		       COUNT(*) AS payments,
		       SUM(amount) AS collected
		FROM payments
		GROUP BY period
		ORDER BY period DESC
	`).Scan(&rows).Error
	if err != nil {
		log.Printf("reports: collection summary failed: %v", err)
		return []CollectionRow{}
	}
	return rows
}

// Projection derives a budget projection from historical confirmed
// income. Nil when there is no history yet.
func (s *Service) Projection(ctx context.Context) *BudgetProjection {
	var row struct {
		Avg float64
		Max float64
		Min float64
		N   int
	}
	err := s.db.WithContext(ctx).Raw(`
		SELECT COALESCE(AVG(monthly), 0) AS avg,
		       COALESCE(MAX(monthly), 0) AS max,
		       COALESCE(MIN(monthly), 0) AS min,
		       COUNT(*) AS n
		FROM (
			SELECT to_char(date, 'YYYY-MM') AS month, SUM(amount) AS monthly
			FROM bookings
			WHERE status = 'confirmada'
			GROUP BY month
		) months
	`).Scan(&row).Error
	if err != nil {
		log.Printf("reports: projection failed: %v", err)
		return nil
	}
	if row.N == 0 {
		return nil
	}
	return &BudgetProjection{
		MonthlyAverage:      row.Avg,
		BestMonth:           row.Max,
		WorstMonth:          row.Min,
		QuarterlyProjection: row.Avg * 3,
	}
}

func (s *Service) BookingsPerClient(ctx context.Context) []BookingCountRow {
	var rows []BookingCountRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT c.first_name || ' ' || c.last_name AS name,
		       COUNT(b.id) AS total
		FROM clients c
		LEFT JOIN bookings b ON b.client_id = c.id
		GROUP BY c.id, c.first_name, c.last_name
		ORDER BY total DESC
	`).Scan(&rows).Error
	if err != nil {
		log.Printf("reports: bookings per client failed: %v", err)
		return []BookingCountRow{}
	}
	return rows
}

func (s *Service) BookingsPerCourt(ctx context.Context) []BookingCountRow {
	var rows []BookingCountRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT co.name AS name, COUNT(b.id) AS total
		FROM courts co
		LEFT JOIN bookings b ON b.court_id = co.id
		GROUP BY co.id, co.name
		ORDER BY total DESC
	`).Scan(&rows).Error
	if err != nil {
		log.Printf("reports: bookings per court failed: %v", err)
		return []BookingCountRow{}
	}
	return rows
}

func (s *Service) MonthlyUtilization(ctx context.Context) []MonthlyUtilizationRow {
	var rows []MonthlyUtilizationRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT to_char(date, 'YYYY-MM') AS month, COUNT(*) AS bookings
		FROM bookings
		GROUP BY month
		ORDER BY month
	`).Scan(&rows).Error
	if err != nil {
		log.Printf("reports: monthly utilization failed: %v", err)
		return []MonthlyUtilizationRow{}
	}
	return rows
}
