package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/uturns/booking-agent/internal/activity"
	"github.com/uturns/booking-agent/internal/config"
	"github.com/uturns/booking-agent/internal/gateway"
	"github.com/uturns/booking-agent/internal/handlers"
	"github.com/uturns/booking-agent/internal/localstore"
	"github.com/uturns/booking-agent/internal/mercadopago"
	"github.com/uturns/booking-agent/internal/metrics"
	"github.com/uturns/booking-agent/internal/middleware"
	"github.com/uturns/booking-agent/internal/realtime"
	"github.com/uturns/booking-agent/internal/store"
	"github.com/uturns/booking-agent/internal/upload"
	ucBooking "github.com/uturns/booking-agent/internal/usecase/booking"
	ucDashboard "github.com/uturns/booking-agent/internal/usecase/dashboard"
	ucPayment "github.com/uturns/booking-agent/internal/usecase/payment"
	ucProfile "github.com/uturns/booking-agent/internal/usecase/profile"
	ucSession "github.com/uturns/booking-agent/internal/usecase/session"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config, kv localstore.KV) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	m := metrics.New()
	stores := store.NewStores(kv)

	activityLogger := activity.New(kv)
	activityDispatcher := activity.NewDispatcher(activityLogger)

	gw := gateway.NewClient(cfg, func() string {
		return stores.Session.Get().Token
	}, m)

	rtDispatcher := realtime.NewDispatcher(stores.Bookings, stores.Company, activityDispatcher, m)
	channel := realtime.NewChannel(cfg.RealtimeURL, rtDispatcher)
	channel.Open()

	uploader := upload.NewUploader(cfg)
	verifier := mercadopago.NewVerifier(cfg.MPAccessToken)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	loginUC := ucSession.NewLogin(gw, stores.Session, stores.Company, stores.LoginForm, activityDispatcher)
	logoutUC := ucSession.NewLogout(stores, activityDispatcher)
	registerUC := ucSession.NewRegister(gw, stores.Session, stores.Company, activityDispatcher)

	loadDashboardUC := ucDashboard.NewLoad(gw, stores.Bookings, stores.Services, stores.Schedules)

	createBookingUC := ucBooking.NewCreate(gw, stores.Bookings, activityDispatcher)
	cancelBookingUC := ucBooking.NewCancel(gw, stores.Bookings, activityDispatcher)

	updateProfileUC := ucProfile.NewUpdate(gw, stores.Company, uploader, channel, activityDispatcher)
	paymentReturnUC := ucPayment.NewReturn(verifier, activityDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(gw, loginUC, logoutUC, registerUC)
	stateHandler := handlers.NewStateHandler(stores, activityLogger)
	bookingHandler := handlers.NewBookingHandler(gw, stores, createBookingUC, cancelBookingUC, loadDashboardUC)
	serviceHandler := handlers.NewServiceHandler(gw, stores.Services, stores.Company)
	scheduleHandler := handlers.NewScheduleHandler(gw, stores.Schedules, stores.Company)
	profileHandler := handlers.NewProfileHandler(gw, updateProfileUC)
	paymentHandler := handlers.NewPaymentHandler(gw, stores.Company, paymentReturnUC)

	// ======================================================
	// 🌐 ROTAS PÚBLICAS
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/password-reset", authHandler.PasswordReset)

		// ------------------------------
		// 📄 ESTADO (SNAPSHOTS)
		// ------------------------------
		state := api.Group("/state")
		{
			state.GET("/session", stateHandler.Session)
			state.GET("/company", stateHandler.Company)
			state.GET("/bookings", stateHandler.Bookings)
			state.GET("/services", stateHandler.Services)
			state.GET("/schedules", stateHandler.Schedules)
			state.GET("/payment-account", stateHandler.PaymentAccount)
			state.GET("/login-form", stateHandler.LoginForm)
		}

		api.GET("/activity", stateHandler.Activity)
		api.GET("/categories", stateHandler.Categories)
		api.GET("/companies", profileHandler.Companies)

		// o checkout devolve o browser aqui, sem sessão garantida
		api.GET("/payment/return", paymentHandler.Return)

		// ------------------------------
		// 🔐 OPERAÇÕES COM SESSÃO
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.RequireSession(stores.Session))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.POST("/dashboard/refresh", bookingHandler.RefreshDashboard)

			secured.POST("/bookings", bookingHandler.Create)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/bookings/:id/complete", bookingHandler.Complete)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/employees", scheduleHandler.ListEmployees)
			secured.POST("/schedules", scheduleHandler.CreateSchedule)
			secured.PATCH("/schedules/:id", scheduleHandler.UpdateSchedule)
			secured.DELETE("/employees/:employeeId/schedules/:id", scheduleHandler.DeleteSchedule)

			secured.PATCH("/profile", profileHandler.Update)

			secured.POST("/payments/preference", paymentHandler.CreatePreference)
			secured.GET("/subscription", paymentHandler.GetSubscription)
			secured.POST("/subscription", paymentHandler.CreateSubscription)
			secured.PATCH("/subscription/:id/cancel", paymentHandler.CancelSubscription)
			secured.PATCH("/subscription/:id/reactivate", paymentHandler.ReactivateSubscription)
		}
	}
}
