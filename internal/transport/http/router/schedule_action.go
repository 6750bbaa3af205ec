package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitclub-admin/internal/domain"
	"fitclub-admin/internal/service"
	httpez "fitclub-admin/internal/transport/http/ez"
)

// scheduleIn keeps every field as text; the service rejects bad values.
type scheduleIn struct {
	SectionID httpez.Text `form:"section_id" json:"section_id"`
	TrainerID httpez.Text `form:"trainer_id" json:"trainer_id"`
	Datetime  httpez.Text `form:"datetime"   json:"datetime"`
	Duration  httpez.Text `form:"duration"   json:"duration"`
}

func (in scheduleIn) toService() service.ScheduleInput {
	return service.ScheduleInput{
		SectionID: in.SectionID.String(),
		TrainerID: in.TrainerID.String(),
		Datetime:  in.Datetime.String(),
		Duration:  in.Duration.String(),
	}
}

func mountScheduleActions(ez httpez.EZ, deps Deps) {
	httpez.RegisterAction(ez, httpez.Action[scheduleIn, *domain.Schedule]{
		Method: http.MethodPost,
		Path:   "/schedule",
		Binder: httpez.BindForm,
		Auth:   true,
		Cap:    domain.CapManageSchedule,
		OKMsg:  "Schedule entry added",
		Handler: func(c *gin.Context, in *scheduleIn) (*domain.Schedule, error) {
			return deps.Schedule.CreateSchedule(c.Request.Context(), in.toService())
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, *service.ScheduleForm]{
		Method: http.MethodGet,
		Path:   "/edit_schedule/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Cap:    domain.CapManageSchedule,
		Handler: func(c *gin.Context, _ *struct{}) (*service.ScheduleForm, error) {
			id, err := httpez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return deps.Schedule.Form(c.Request.Context(), id)
		},
	})
	httpez.RegisterAction(ez, httpez.Action[scheduleIn, *domain.Schedule]{
		Method: http.MethodPost,
		Path:   "/edit_schedule/:id",
		Binder: httpez.BindForm,
		Auth:   true,
		Cap:    domain.CapManageSchedule,
		OKMsg:  "Schedule updated",
		Handler: func(c *gin.Context, in *scheduleIn) (*domain.Schedule, error) {
			id, err := httpez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			return deps.Schedule.EditSchedule(c.Request.Context(), id, in.toService())
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/delete_schedule/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Cap:    domain.CapManageSchedule,
		OKMsg:  "Schedule entry deleted",
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id, err := httpez.ParamID(c, "id")
			if err != nil {
				return nil, err
			}
			if err := deps.Schedule.DeleteSchedule(c.Request.Context(), id); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})
}
