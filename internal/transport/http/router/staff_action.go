package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitclub-admin/internal/domain"
	"fitclub-admin/internal/service"
	httpez "fitclub-admin/internal/transport/http/ez"
)

type actorIn struct {
	Username string `form:"username" json:"username" binding:"required,max=50"`
	Password string `form:"password" json:"password" binding:"required"`
	Phone    string `form:"phone"    json:"phone"    binding:"omitempty,phone"`
}

func (in actorIn) toService() service.ActorInput {
	return service.ActorInput{Username: in.Username, Password: in.Password, Phone: in.Phone}
}

type profileIn struct {
	Username string `form:"username" json:"username" binding:"required,max=50"`
	Phone    string `form:"phone"    json:"phone"    binding:"omitempty,phone"`
}

// formSpec answers GET on a create form with the fields it takes.
type formSpec struct {
	Fields []string `json:"fields"`
}

var actorForm = formSpec{Fields: []string{"username", "password", "phone"}}

func mountStaffActions(ez httpez.EZ, deps Deps) {
	httpez.RegisterAction(ez, httpez.Action[struct{}, []domain.Actor]{
		Method: http.MethodGet,
		Path:   "/staff",
		Binder: httpez.BindNone,
		Auth:   true,
		Cap:    domain.CapManageStaff,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Actor, error) {
			return deps.Trainers.ListTrainers(c.Request.Context())
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, formSpec]{
		Method: http.MethodGet,
		Path:   "/add_trainer",
		Binder: httpez.BindNone,
		Auth:   true,
		Cap:    domain.CapManageStaff,
		Handler: func(c *gin.Context, _ *struct{}) (formSpec, error) {
			return actorForm, nil
		},
	})
	httpez.RegisterAction(ez, httpez.Action[actorIn, *domain.Actor]{
		Method: http.MethodPost,
		Path:   "/add_trainer",
		Binder: httpez.BindForm,
		Auth:   true,
		Cap:    domain.CapManageStaff,
		OKMsg:  "Trainer added",
		Handler: func(c *gin.Context, in *actorIn) (*domain.Actor, error) {
			return deps.Trainers.AddTrainer(c.Request.Context(), in.toService())
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, *domain.Actor]{
		Method: http.MethodGet,
		Path:   "/edit_trainer/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Cap:    domain.CapManageStaff,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Actor, error) {
			id, err := httpez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return deps.Trainers.GetTrainer(c.Request.Context(), id)
		},
	})
	httpez.RegisterAction(ez, httpez.Action[profileIn, *domain.Actor]{
		Method: http.MethodPost,
		Path:   "/edit_trainer/:id",
		Binder: httpez.BindForm,
		Auth:   true,
		Cap:    domain.CapManageStaff,
		OKMsg:  "Trainer updated",
		Handler: func(c *gin.Context, in *profileIn) (*domain.Actor, error) {
			id, err := httpez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return deps.Trainers.EditTrainer(c.Request.Context(), id, in.Username, in.Phone)
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/delete_trainer/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Cap:    domain.CapManageStaff,
		OKMsg:  "Trainer deleted",
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id, err := httpez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			if err := deps.Trainers.DeleteTrainer(c.Request.Context(), id); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})
}
