package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gonzalomaurino/canchas-api/internal/audit"
	"github.com/gonzalomaurino/canchas-api/internal/cache"
	"github.com/gonzalomaurino/canchas-api/internal/config"
	"github.com/gonzalomaurino/canchas-api/internal/handlers"
	infraRepo "github.com/gonzalomaurino/canchas-api/internal/infra/repository"
	"github.com/gonzalomaurino/canchas-api/internal/paylink"
	"github.com/gonzalomaurino/canchas-api/internal/reports"
	ucBooking "github.com/gonzalomaurino/canchas-api/internal/usecase/booking"
	ucPayment "github.com/gonzalomaurino/canchas-api/internal/usecase/payment"
	ucTournament "github.com/gonzalomaurino/canchas-api/internal/usecase/tournament"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	paymentRepo := infraRepo.NewPaymentGormRepository(db)
	tournamentRepo := infraRepo.NewTournamentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	reportService := reports.New(db)
	reportCache := cache.New(cfg.RedisAddr, cfg.CacheTTL)

	linkService, err := paylink.New(cfg.MPAccessToken)
	if err != nil {
		log.Printf("payment links disabled: %v", err)
	}

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		cfg.VenueTimezone,
	)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	updateBookingUC := ucBooking.NewUpdateBooking(
		bookingRepo,
		auditDispatcher,
		cfg.VenueTimezone,
	)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, auditDispatcher)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, auditDispatcher)
	availabilityUC := ucBooking.NewCheckAvailability(bookingRepo)

	// ======================================================
	// USE CASES — PAYMENTS
	// ======================================================
	registerPaymentUC := ucPayment.NewRegisterPayment(paymentRepo, auditDispatcher)
	listPaymentsUC := ucPayment.NewListPayments(paymentRepo)
	deletePaymentUC := ucPayment.NewDeletePayment(paymentRepo, auditDispatcher)
	paymentDetailsUC := ucPayment.NewPaymentDetails(paymentRepo)

	// ======================================================
	// USE CASES — TOURNAMENTS
	// ======================================================
	createTournamentUC := ucTournament.NewCreateTournament(tournamentRepo, auditDispatcher)
	assignBookingUC := ucTournament.NewAssignBooking(tournamentRepo, auditDispatcher)
	unassignBookingUC := ucTournament.NewUnassignBooking(tournamentRepo, auditDispatcher)
	tournamentBookingsUC := ucTournament.NewBookingsOfTournament(tournamentRepo)
	deleteTournamentUC := ucTournament.NewDeleteTournament(tournamentRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(db)
	courtHandler := handlers.NewCourtHandler(db)
	timeSlotHandler := handlers.NewTimeSlotHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		listBookingsUC,
		updateBookingUC,
		cancelBookingUC,
		deleteBookingUC,
		availabilityUC,
	)

	paymentHandler := handlers.NewPaymentHandler(
		registerPaymentUC,
		listPaymentsUC,
		deletePaymentUC,
		paymentDetailsUC,
		linkService,
	)

	tournamentHandler := handlers.NewTournamentHandler(
		tournamentRepo,
		createTournamentUC,
		assignBookingUC,
		unassignBookingUC,
		tournamentBookingsUC,
		deleteTournamentUC,
	)

	reportHandler := handlers.NewReportHandler(reportService, reportCache)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// CLIENTS
		// ------------------------------
		api.GET("/clients", clientHandler.List)
		api.POST("/clients", clientHandler.Create)
		api.PATCH("/clients/:id", clientHandler.Update)
		api.DELETE("/clients/:id", clientHandler.Delete)

		// ------------------------------
		// COURTS
		// ------------------------------
		api.GET("/courts", courtHandler.List)
		api.POST("/courts", courtHandler.Create)
		api.GET("/courts/:id", courtHandler.Get)
		api.PATCH("/courts/:id", courtHandler.Update)
		api.DELETE("/courts/:id", courtHandler.Delete)
		api.POST("/courts/:id/services/:serviceID", courtHandler.AssignService)
		api.DELETE("/courts/:id/services/:serviceID", courtHandler.UnassignService)

		// ------------------------------
		// TIME SLOTS / SERVICES
		// ------------------------------
		api.GET("/time-slots", timeSlotHandler.List)
		api.POST("/time-slots", timeSlotHandler.Create)
		api.PATCH("/time-slots/:id", timeSlotHandler.Update)
		api.DELETE("/time-slots/:id", timeSlotHandler.Delete)

		api.GET("/services", serviceHandler.List)
		api.POST("/services", serviceHandler.Create)
		api.PATCH("/services/:id", serviceHandler.Update)
		api.DELETE("/services/:id", serviceHandler.Delete)

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		api.GET("/availability", bookingHandler.Availability)

		api.GET("/bookings", bookingHandler.List)
		api.POST("/bookings", bookingHandler.Create)
		api.PATCH("/bookings/:id", bookingHandler.Update)
		api.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
		api.DELETE("/bookings/:id", bookingHandler.Delete)

		api.GET("/bookings/:id/payments", paymentHandler.Details)
		api.GET("/bookings/:id/balance", paymentHandler.Balance)
		api.POST("/bookings/:id/payment-link", paymentHandler.PaymentLink)

		// ------------------------------
		// PAYMENTS
		// ------------------------------
		api.GET("/payments", paymentHandler.List)
		api.POST("/payments", paymentHandler.Register)
		api.DELETE("/payments/:id", paymentHandler.Delete)

		// ------------------------------
		// TOURNAMENTS
		// ------------------------------
		api.GET("/tournaments", tournamentHandler.List)
		api.POST("/tournaments", tournamentHandler.Create)
		api.DELETE("/tournaments/:id", tournamentHandler.Delete)
		api.GET("/tournaments/:id/bookings", tournamentHandler.Bookings)
		api.POST("/tournaments/:id/bookings/:bookingID", tournamentHandler.AssignBooking)
		api.DELETE("/tournaments/:id/bookings/:bookingID", tournamentHandler.UnassignBooking)

		// ------------------------------
		// REPORTS
		// ------------------------------
		reportsAPI := api.Group("/reports")
		{
			reportsAPI.GET("/income-per-court", reportHandler.IncomePerCourt)
			reportsAPI.GET("/payments-per-method", reportHandler.PaymentsPerMethod)
			reportsAPI.GET("/status-overview", reportHandler.StatusOverview)
			reportsAPI.GET("/monthly-budget", reportHandler.MonthlyBudget)
			reportsAPI.GET("/top-clients", reportHandler.TopClients)
			reportsAPI.GET("/collection-summary", reportHandler.CollectionSummary)
			reportsAPI.GET("/projection", reportHandler.Projection)
			reportsAPI.GET("/bookings-per-client", reportHandler.BookingsPerClient)
			reportsAPI.GET("/bookings-per-court", reportHandler.BookingsPerCourt)
			reportsAPI.GET("/monthly-utilization", reportHandler.MonthlyUtilization)
		}

		// ------------------------------
		// AUDIT
		// ------------------------------
		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
