package handlers

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/delivery/http/middlewares"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/delivery/http/views"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/helpers"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/models"
	apperrors "github.com/RehanAthallahAzhar/tokohobby-storefront/internal/pkg/errors"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/services"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/ui/orderdetail"
)

const confirmYes = "yes"

type OrderHandler struct {
	OrderPageSvc services.OrderPageService
	shell        *Shell
	validate     *validator.Validate
	log          *logrus.Logger
}

func NewOrderHandler(
	orderPageSvc services.OrderPageService,
	shell *Shell,
	validate *validator.Validate,
	log *logrus.Logger,
) *OrderHandler {
	return &OrderHandler{
		OrderPageSvc: orderPageSvc,
		shell:        shell,
		validate:     validate,
		log:          log,
	}
}

func (h *OrderHandler) GetOrderDetails() echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		orderID, err := helpers.GetOrderIDFromPathParam(c, "id")
		if err != nil {
			return h.shell.respondMessage(c, http.StatusBadRequest, err, "invalidRequest")
		}

		h.log.WithField("order_id", orderID).Info("Receiving GetOrderDetails request")

		view := h.OrderPageSvc.Open(middlewares.UserFrom(c), h.shell.translator(c))
		defer view.Unmount()

		err = view.Load(ctx, orderID)
		return h.shell.renderPage(c, statusForViewError(err), views.PageOrderDetail, "orderDetails", view.Snapshot())
	}
}

// ConfirmCancelOrder shows the yes/no prompt. Orders that cannot be cancelled
// send the visitor back to the order page.
func (h *OrderHandler) ConfirmCancelOrder() echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		orderID, err := helpers.GetOrderIDFromPathParam(c, "id")
		if err != nil {
			return h.shell.respondMessage(c, http.StatusBadRequest, err, "invalidRequest")
		}

		tr := h.shell.translator(c)
		view := h.OrderPageSvc.Open(middlewares.UserFrom(c), tr)
		defer view.Unmount()

		if err := view.Load(ctx, orderID); err != nil {
			return h.shell.renderPage(c, statusForViewError(err), views.PageOrderDetail, "orderDetails", view.Snapshot())
		}

		order := view.Order()
		if order == nil || !order.Status.Cancellable() {
			if wantsJSON(c) {
				return respondError(c, http.StatusConflict, apperrors.ErrOrderNotCancellable)
			}
			return c.Redirect(http.StatusSeeOther, "/orders/"+orderID)
		}

		return h.shell.renderPage(c, http.StatusOK, views.PageConfirmCancel, "cancelOrder", views.ConfirmView{
			OrderID:  orderID,
			Prompt:   tr.T("confirmCancelOrder"),
			YesLabel: tr.T("yes"),
			NoLabel:  tr.T("no"),
		})
	}
}

// CancelOrder receives the answer to the confirm prompt. Declining sends the
// visitor back to the order page without touching the order API.
func (h *OrderHandler) CancelOrder() echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		orderID, err := helpers.GetOrderIDFromPathParam(c, "id")
		if err != nil {
			return h.shell.respondMessage(c, http.StatusBadRequest, err, "invalidRequest")
		}

		var form models.CancelOrderForm
		if err := c.Bind(&form); err != nil {
			return h.shell.respondMessage(c, http.StatusBadRequest, apperrors.ErrInvalidRequestPayload, "invalidRequest")
		}
		if err := h.validate.Struct(form); err != nil {
			h.log.WithError(err).Debug("Rejecting cancel form")
			return h.shell.respondMessage(c, http.StatusBadRequest, apperrors.ErrInvalidRequestPayload, "invalidRequest")
		}

		logger := h.log.WithFields(logrus.Fields{"order_id": orderID, "confirm": form.Confirm})
		logger.Info("Receiving CancelOrder request")

		if form.Confirm != confirmYes {
			return redirect(c, "/orders/"+orderID, MsgCancelDeclined, nil)
		}

		view := h.OrderPageSvc.Open(middlewares.UserFrom(c), h.shell.translator(c))
		defer view.Unmount()

		if err := view.Load(ctx, orderID); err != nil {
			return h.shell.renderPage(c, statusForViewError(err), views.PageOrderDetail, "orderDetails", view.Snapshot())
		}

		err = view.Cancel(ctx, orderdetail.ConfirmFunc(func(context.Context, string) bool {
			return true
		}))
		if err != nil {
			logger.WithError(err).Warn("Cancel flow did not complete")
		}

		return h.shell.renderPage(c, statusForViewError(err), views.PageOrderDetail, "orderDetails", view.Snapshot())
	}
}
