package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"fitclub-admin/internal/core/server"
	"fitclub-admin/internal/service"
	httpez "fitclub-admin/internal/transport/http/ez"
	mdw "fitclub-admin/internal/transport/http/middleware"
)

// Deps are the services the routes call into.
type Deps struct {
	Auth          *service.AuthService
	Sections      *service.SectionService
	Trainers      *service.TrainerService
	Schedule      *service.ScheduleService
	Registrations *service.RegistrationService
	Payments      *service.PaymentService
	Analytics     *service.AnalyticsService
}

type Options struct {
	CookieName   string
	SecureCookie bool
	SessionTTL   time.Duration
	EnforceRoles bool

	RPS            float64
	Burst          int
	Concurrency    int64
	MaxBodyBytes   int64
	RequestTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.CookieName == "" {
		o.CookieName = "session"
	}
	if o.SessionTTL <= 0 {
		o.SessionTTL = 8 * time.Hour
	}
	if o.RPS <= 0 {
		o.RPS = 200
	}
	if o.Burst <= 0 {
		o.Burst = 400
	}
	if o.Concurrency <= 0 {
		o.Concurrency = 300
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = 1 << 20
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = 10 * time.Second
	}
	return o
}

func NewAPIEngine(l *zap.Logger, deps Deps, opts Options) *gin.Engine {
	opts = opts.withDefaults()
	httpez.RegisterValidators()

	r := server.NewRouter(l)
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(rate.Limit(opts.RPS), opts.Burst),
		mdw.ConcurrencyLimit(opts.Concurrency),
		mdw.MaxBodyBytes(opts.MaxBodyBytes),
		mdw.Timeout(opts.RequestTimeout),
		mdw.SimpleRecovery(l),
		mdw.Metrics(),
		mdw.AccessLog(l),
		mdw.Session(deps.Auth, opts.CookieName, l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	ez := httpez.New(&r.RouterGroup, l, httpez.Options{EnforceRoles: opts.EnforceRoles})

	mountAuthActions(r, ez, deps, opts)
	mountPublicActions(ez, deps)
	mountStaffActions(ez, deps)
	mountScheduleActions(ez, deps)
	mountRegistrationActions(ez, deps)
	mountFinanceActions(ez, deps)

	return r
}
