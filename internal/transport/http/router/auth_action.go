package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"fitclub-admin/internal/domain"
	httpez "fitclub-admin/internal/transport/http/ez"
	mdw "fitclub-admin/internal/transport/http/middleware"
)

type loginIn struct {
	// No binding rules: a missing field must fail like a wrong one.
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

type loginOut struct {
	Actor     *domain.Actor `json:"actor"`
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
}

type whoami struct {
	Actor *domain.Actor `json:"actor"`
}

func mountAuthActions(r *gin.Engine, ez httpez.EZ, deps Deps, opts Options) {
	httpez.RegisterAction(ez, httpez.Action[struct{}, whoami]{
		Method: http.MethodGet,
		Path:   "/",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (whoami, error) {
			return whoami{Actor: mdw.CurrentActor(c)}, nil
		},
	})
	httpez.RegisterAction(ez, httpez.Action[struct{}, whoami]{
		Method: http.MethodGet,
		Path:   "/login",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (whoami, error) {
			return whoami{Actor: mdw.CurrentActor(c)}, nil
		},
	})

	// Brute-force guard on top of the global limiter.
	login := ez.With(r.Group("", mdw.RateLimitPerIP(rate.Every(time.Second), 10)))
	httpez.RegisterAction(login, httpez.Action[loginIn, loginOut]{
		Method: http.MethodPost,
		Path:   "/login",
		Binder: httpez.BindForm,
		OKMsg:  "Logged in",
		Handler: func(c *gin.Context, in *loginIn) (loginOut, error) {
			res, err := deps.Auth.Authenticate(c.Request.Context(), in.Username, in.Password)
			if err != nil {
				return loginOut{}, err
			}
			setSessionCookie(c, opts, res.Token, int(time.Until(res.ExpiresAt).Seconds()))
			return loginOut{Actor: res.Actor, Token: res.Token, ExpiresAt: res.ExpiresAt}, nil
		},
	})

	logout := httpez.Action[struct{}, struct{}]{
		Path:   "/logout",
		Binder: httpez.BindNone,
		Auth:   true,
		OKMsg:  "Logged out",
		Handler: func(c *gin.Context, _ *struct{}) (struct{}, error) {
			err := deps.Auth.EndSession(c.Request.Context(), c.GetString(mdw.KeyToken))
			setSessionCookie(c, opts, "", -1)
			return struct{}{}, err
		},
	}
	logout.Method = http.MethodGet
	httpez.RegisterAction(ez, logout)
	logout.Method = http.MethodPost
	httpez.RegisterAction(ez, logout)
}

func setSessionCookie(c *gin.Context, opts Options, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(opts.CookieName, value, maxAge, "/", "", opts.SecureCookie, true)
}
