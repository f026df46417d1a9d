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

type PatientController struct {
	*Base
	PatientUsecase contracts.PatientUsecase
}

func NewPatientController(base *Base, patientUsecase contracts.PatientUsecase) *PatientController {
	return &PatientController{
		Base:           base,
		PatientUsecase: patientUsecase,
	}
}

func (ctrl *PatientController) Page(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	list, ok := ctrl.list(w, r, session, requests.PatientFilters{})
	if !ok {
		return
	}
	ctrl.page(w, r, "patients", ctrl.layout(session, "Patients", "patients", &views.PatientsView{
		List: list,
		Form: views.PatientFormView{Form: &requests.PatientForm{}},
	}))
}

func (ctrl *PatientController) List(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	var filters requests.PatientFilters
	if err := utils.DecodeForm(r, &filters); err != nil {
		ctrl.fail(w, r, session, err, constvars.ErrClientFailedToLoadPatients)
		return
	}

	list, ok := ctrl.list(w, r, session, filters)
	if !ok {
		return
	}
	if list.Failed {
		notifyError(w, constvars.ErrClientFailedToLoadPatients)
	}
	ctrl.fragment(w, r, "patient_list", list)
}

func (ctrl *PatientController) Detail(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	patient, err := ctrl.PatientUsecase.Get(r.Context(), session, chi.URLParam(r, "id"))
	if err != nil {
		ctrl.fail(w, r, session, err, constvars.ErrClientFailedToLoadPatient)
		return
	}
	ctrl.fragment(w, r, "patient_detail", patient)
}

func (ctrl *PatientController) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	form := new(requests.PatientForm)
	if err := utils.DecodeForm(r, form); err != nil {
		ctrl.fail(w, r, session, err, constvars.ErrClientFailedToCreatePatient)
		return
	}

	view := views.PatientFormView{Form: form}
	fieldErrors, err := ctrl.PatientUsecase.Create(r.Context(), session, form)
	switch {
	case err != nil:
		if ctrl.signedOut(w, r, session, err) {
			return
		}
		utils.LogError(ctrl.Log, err)
		view.Message = exceptions.BackendMessage(err, constvars.ErrClientFailedToCreatePatient)
		notifyError(w, view.Message)
	case len(fieldErrors) > 0:
		view.FieldErrors = fieldErrors
	default:
		notifySuccess(w, constvars.PatientCreatedSuccessMessage, constvars.CloseModalEvent, constvars.ResetFormEvent, constvars.ListChangedEvent)
		view.Form = &requests.PatientForm{}
	}
	ctrl.fragment(w, r, "patient_form", view)
}

func (ctrl *PatientController) list(w http.ResponseWriter, r *http.Request, session *models.Session, filters requests.PatientFilters) (views.PatientListView, bool) {
	view := views.PatientListView{Filters: filters}
	patients, err := ctrl.PatientUsecase.List(r.Context(), session, filters)
	if err != nil {
		if ctrl.signedOut(w, r, session, err) {
			return view, false
		}
		utils.LogError(ctrl.Log, err)
		view.Failed = true
		return view, true
	}
	view.Patients = patients
	return view, true
}
