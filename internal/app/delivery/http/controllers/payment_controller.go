package controllers

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/views"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type PaymentController struct {
	*Base
	PaymentUsecase contracts.PaymentUsecase
}

func NewPaymentController(base *Base, paymentUsecase contracts.PaymentUsecase) *PaymentController {
	return &PaymentController{
		Base:           base,
		PaymentUsecase: paymentUsecase,
	}
}

// Page renders pending payments and the history. The list also reloads
// itself through this handler, selecting its own element from the page.
func (ctrl *PaymentController) Page(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	view := &views.PaymentsView{}
	page, err := ctrl.PaymentUsecase.Page(r.Context(), session)
	if err != nil {
		if ctrl.signedOut(w, r, session, err) {
			return
		}
		utils.LogError(ctrl.Log, err)
		notifyError(w, constvars.ErrClientFailedToLoadPayments)
		view.Failed = true
	} else {
		view.Page = page
	}
	ctrl.page(w, r, "payments", ctrl.layout(session, "Payments", "payments", view))
}

func (ctrl *PaymentController) Process(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}
	paymentID := chi.URLParam(r, "id")

	form := new(requests.ProcessPaymentForm)
	if err := utils.DecodeForm(r, form); err != nil {
		ctrl.fail(w, r, session, err, constvars.ErrClientFailedToProcessPayment)
		return
	}

	view := views.PaymentFormView{PaymentID: paymentID, Form: form}
	fieldErrors, err := ctrl.PaymentUsecase.Process(r.Context(), session, paymentID, form)
	switch {
	case err != nil:
		if ctrl.signedOut(w, r, session, err) {
			return
		}
		utils.LogError(ctrl.Log, err)
		view.Message = exceptions.BackendMessage(err, constvars.ErrClientFailedToProcessPayment)
		notifyError(w, view.Message)
	case len(fieldErrors) > 0:
		view.FieldErrors = fieldErrors
	default:
		notifySuccess(w, constvars.PaymentProcessedSuccessMessage, constvars.ListChangedEvent)
	}
	ctrl.fragment(w, r, "payment_form", view)
}
