package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitclub-admin/internal/domain"
	"fitclub-admin/internal/service"
	httpez "fitclub-admin/internal/transport/http/ez"
)

type paymentIn struct {
	ClientID    uint    `form:"client_id"   json:"client_id"   binding:"required"`
	Amount      float64 `form:"amount"      json:"amount"      binding:"gte=0"`
	Description string  `form:"description" json:"description" binding:"max=200"`
}

func mountFinanceActions(ez httpez.EZ, deps Deps) {
	httpez.RegisterAction(ez, httpez.Action[struct{}, []domain.Payment]{
		Method: http.MethodGet,
		Path:   "/payments",
		Binder: httpez.BindNone,
		Auth:   true,
		Cap:    domain.CapManagePayments,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Payment, error) {
			return deps.Payments.ListPayments(c.Request.Context())
		},
	})
	httpez.RegisterAction(ez, httpez.Action[paymentIn, *domain.Payment]{
		Method: http.MethodPost,
		Path:   "/payments",
		Binder: httpez.BindForm,
		Auth:   true,
		Cap:    domain.CapManagePayments,
		OKMsg:  "Payment recorded",
		Handler: func(c *gin.Context, in *paymentIn) (*domain.Payment, error) {
			return deps.Payments.RecordPayment(c.Request.Context(), service.PaymentInput{
				ClientID: in.ClientID, Amount: in.Amount, Description: in.Description,
			})
		},
	})

	httpez.RegisterAction(ez, httpez.Action[struct{}, *service.Report]{
		Method: http.MethodGet,
		Path:   "/analytics",
		Binder: httpez.BindNone,
		Auth:   true,
		Cap:    domain.CapViewAnalytics,
		Handler: func(c *gin.Context, _ *struct{}) (*service.Report, error) {
			return deps.Analytics.Report(c.Request.Context())
		},
	})
}
