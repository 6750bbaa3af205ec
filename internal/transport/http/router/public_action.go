package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitclub-admin/internal/domain"
	httpez "fitclub-admin/internal/transport/http/ez"
)

func mountPublicActions(ez httpez.EZ, deps Deps) {
	httpez.RegisterAction(ez, httpez.Action[struct{}, []domain.Section]{
		Method: http.MethodGet,
		Path:   "/prices",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Section, error) {
			return deps.Sections.ListSections(c.Request.Context())
		},
	})
	httpez.RegisterAction(ez, httpez.Action[struct{}, []domain.Schedule]{
		Method: http.MethodGet,
		Path:   "/schedule",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Schedule, error) {
			return deps.Schedule.ListSchedule(c.Request.Context())
		},
	})
}
