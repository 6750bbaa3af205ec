package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitclub-admin/internal/domain"
	"fitclub-admin/internal/service"
	httpez "fitclub-admin/internal/transport/http/ez"
)

type registrationIn struct {
	ClientID   uint `form:"client_id"   json:"client_id"   binding:"required"`
	ScheduleID uint `form:"schedule_id" json:"schedule_id" binding:"required"`
}

func mountRegistrationActions(ez httpez.EZ, deps Deps) {
	httpez.RegisterAction(ez, httpez.Action[struct{}, *service.RegistrationPage]{
		Method: http.MethodGet,
		Path:   "/registration",
		Binder: httpez.BindNone,
		Auth:   true,
		Cap:    domain.CapManageClients,
		Handler: func(c *gin.Context, _ *struct{}) (*service.RegistrationPage, error) {
			return deps.Registrations.Overview(c.Request.Context())
		},
	})
	httpez.RegisterAction(ez, httpez.Action[registrationIn, *domain.Registration]{
		Method: http.MethodPost,
		Path:   "/registration",
		Binder: httpez.BindForm,
		Auth:   true,
		Cap:    domain.CapManageClients,
		OKMsg:  "Client registered",
		Handler: func(c *gin.Context, in *registrationIn) (*domain.Registration, error) {
			return deps.Registrations.CreateRegistration(c.Request.Context(), in.ClientID, in.ScheduleID)
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, formSpec]{
		Method: http.MethodGet,
		Path:   "/add_registration",
		Binder: httpez.BindNone,
		Auth:   true,
		Cap:    domain.CapManageClients,
		Handler: func(c *gin.Context, _ *struct{}) (formSpec, error) {
			return actorForm, nil
		},
	})
	httpez.RegisterAction(ez, httpez.Action[actorIn, *domain.Actor]{
		Method: http.MethodPost,
		Path:   "/add_registration",
		Binder: httpez.BindForm,
		Auth:   true,
		Cap:    domain.CapManageClients,
		OKMsg:  "Client added",
		Handler: func(c *gin.Context, in *actorIn) (*domain.Actor, error) {
			return deps.Registrations.CreateClient(c.Request.Context(), in.toService())
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/delete_registration/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Cap:    domain.CapManageClients,
		OKMsg:  "Registration deleted",
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id, err := httpez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			if err := deps.Registrations.DeleteRegistration(c.Request.Context(), id); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})
}
