package controllers

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/app/views"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type PrescriptionController struct {
	*Base
	PrescriptionUsecase contracts.PrescriptionUsecase
}

func NewPrescriptionController(base *Base, prescriptionUsecase contracts.PrescriptionUsecase) *PrescriptionController {
	return &PrescriptionController{
		Base:                base,
		PrescriptionUsecase: prescriptionUsecase,
	}
}

func (ctrl *PrescriptionController) Page(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	lists, err := ctrl.PrescriptionUsecase.References(r.Context(), session)
	if err != nil {
		if ctrl.signedOut(w, r, session, err) {
			return
		}
		utils.LogError(ctrl.Log, err)
		lists = &models.ReferenceLists{Failed: true}
	}

	list, ok := ctrl.list(w, r, session, requests.PrescriptionFilters{})
	if !ok {
		return
	}

	ctrl.page(w, r, "prescriptions", ctrl.layout(session, "Prescriptions", "prescriptions", &views.PrescriptionsView{
		List: list,
		Form: views.PrescriptionFormView{Lists: lists, Form: &requests.PrescriptionForm{}},
	}))
}

func (ctrl *PrescriptionController) List(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	var filters requests.PrescriptionFilters
	if err := utils.DecodeForm(r, &filters); err != nil {
		ctrl.fail(w, r, session, err, constvars.ErrClientFailedToLoadPrescriptions)
		return
	}

	list, ok := ctrl.list(w, r, session, filters)
	if !ok {
		return
	}
	if list.Failed {
		notifyError(w, constvars.ErrClientFailedToLoadPrescriptions)
	}
	ctrl.fragment(w, r, "prescription_list", list)
}

func (ctrl *PrescriptionController) Detail(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	prescription, err := ctrl.PrescriptionUsecase.Detail(r.Context(), session, chi.URLParam(r, "id"))
	if err != nil {
		ctrl.fail(w, r, session, err, constvars.ErrClientFailedToLoadPrescriptions)
		return
	}
	ctrl.fragment(w, r, "prescription_detail", prescription)
}

func (ctrl *PrescriptionController) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	form := new(requests.PrescriptionForm)
	if err := utils.DecodeForm(r, form); err != nil {
		ctrl.fail(w, r, session, err, constvars.ErrClientFailedToCreatePrescription)
		return
	}

	lists, err := ctrl.PrescriptionUsecase.References(r.Context(), session)
	if err != nil {
		if ctrl.signedOut(w, r, session, err) {
			return
		}
		utils.LogError(ctrl.Log, err)
		lists = &models.ReferenceLists{Failed: true}
	}

	view := views.PrescriptionFormView{Lists: lists, Form: form}
	fieldErrors, err := ctrl.PrescriptionUsecase.Create(r.Context(), session, form)
	switch {
	case err != nil:
		if ctrl.signedOut(w, r, session, err) {
			return
		}
		utils.LogError(ctrl.Log, err)
		view.Message = exceptions.BackendMessage(err, constvars.ErrClientFailedToCreatePrescription)
		notifyError(w, view.Message)
	case len(fieldErrors) > 0:
		view.FieldErrors = fieldErrors
	default:
		notifySuccess(w, constvars.PrescriptionCreatedSuccessMessage, constvars.CloseModalEvent, constvars.ResetFormEvent, constvars.ListChangedEvent)
		view.Form = &requests.PrescriptionForm{}
	}
	ctrl.fragment(w, r, "prescription_form", view)
}

// list fetches the filtered prescriptions. ok is false when the session
// was dropped and the response already written.
func (ctrl *PrescriptionController) list(w http.ResponseWriter, r *http.Request, session *models.Session, filters requests.PrescriptionFilters) (views.PrescriptionListView, bool) {
	view := views.PrescriptionListView{Filters: filters}
	prescriptions, err := ctrl.PrescriptionUsecase.List(r.Context(), session, filters)
	if err != nil {
		if ctrl.signedOut(w, r, session, err) {
			return view, false
		}
		utils.LogError(ctrl.Log, err)
		view.Failed = true
		return view, true
	}
	view.Prescriptions = prescriptions
	return view, true
}
