package controllers

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/app/views"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type LaboratoryController struct {
	*Base
	LaboratoryUsecase contracts.LaboratoryUsecase
}

func NewLaboratoryController(base *Base, laboratoryUsecase contracts.LaboratoryUsecase) *LaboratoryController {
	return &LaboratoryController{
		Base:              base,
		LaboratoryUsecase: laboratoryUsecase,
	}
}

func (ctrl *LaboratoryController) Page(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	lists, ok := ctrl.references(w, r, session)
	if !ok {
		return
	}
	list, ok := ctrl.list(w, r, session, requests.LabTestFilters{})
	if !ok {
		return
	}

	ctrl.page(w, r, "laboratory", ctrl.layout(session, "Laboratory", "laboratory", &views.LabView{
		List: list,
		Form: views.LabFormView{Lists: lists, Form: &requests.LabTestForm{}},
	}))
}

func (ctrl *LaboratoryController) List(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	var filters requests.LabTestFilters
	if err := utils.DecodeForm(r, &filters); err != nil {
		ctrl.fail(w, r, session, err, constvars.ErrClientFailedToLoadLabTests)
		return
	}

	list, ok := ctrl.list(w, r, session, filters)
	if !ok {
		return
	}
	if list.Failed {
		notifyError(w, constvars.ErrClientFailedToLoadLabTests)
	}
	ctrl.fragment(w, r, "lab_list", list)
}

func (ctrl *LaboratoryController) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	form := new(requests.LabTestForm)
	if err := utils.DecodeForm(r, form); err != nil {
		ctrl.fail(w, r, session, err, constvars.ErrClientFailedToCreateLabTest)
		return
	}
	lists, ok := ctrl.references(w, r, session)
	if !ok {
		return
	}

	view := views.LabFormView{Lists: lists, Form: form}
	fieldErrors, err := ctrl.LaboratoryUsecase.Create(r.Context(), session, form)
	switch {
	case err != nil:
		if ctrl.signedOut(w, r, session, err) {
			return
		}
		utils.LogError(ctrl.Log, err)
		view.Message = exceptions.BackendMessage(err, constvars.ErrClientFailedToCreateLabTest)
		notifyError(w, view.Message)
	case len(fieldErrors) > 0:
		view.FieldErrors = fieldErrors
	default:
		notifySuccess(w, constvars.LabTestCreatedSuccessMessage, constvars.CloseModalEvent, constvars.ResetFormEvent, constvars.ListChangedEvent)
		view.Form = &requests.LabTestForm{}
	}
	ctrl.fragment(w, r, "lab_form", view)
}

// SubmitResults records the outcome of a test. The optional attachment is
// read from the multipart body.
func (ctrl *LaboratoryController) SubmitResults(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}
	testID := chi.URLParam(r, "id")

	form := new(requests.LabResultForm)
	if err := utils.DecodeForm(r, form); err != nil {
		ctrl.fail(w, r, session, err, constvars.ErrClientFailedToSaveLabResults)
		return
	}

	var attachment *models.Attachment
	file, header, err := r.FormFile("attachment")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		ctrl.fail(w, r, session, exceptions.ErrCannotParseMultipartForm(err), constvars.ErrClientFailedToSaveLabResults)
		return
	default:
		defer file.Close()
		attachment = &models.Attachment{
			FileName:    header.Filename,
			ContentType: header.Header.Get(constvars.HeaderContentType),
			Size:        header.Size,
			Content:     file,
		}
	}

	view := views.LabResultFormView{TestID: testID, Form: form}
	fieldErrors, err := ctrl.LaboratoryUsecase.SubmitResults(r.Context(), session, testID, form, attachment)
	switch {
	case err != nil:
		if ctrl.signedOut(w, r, session, err) {
			return
		}
		utils.LogError(ctrl.Log, err)
		view.Message = exceptions.BackendMessage(err, constvars.ErrClientFailedToSaveLabResults)
		notifyError(w, view.Message)
	case len(fieldErrors) > 0:
		view.FieldErrors = fieldErrors
	default:
		notifySuccess(w, constvars.LabResultsSavedSuccessMessage, constvars.ListChangedEvent)
		view.Form = &requests.LabResultForm{}
	}
	ctrl.fragment(w, r, "lab_result_form", view)
}

func (ctrl *LaboratoryController) references(w http.ResponseWriter, r *http.Request, session *models.Session) (*models.ReferenceLists, bool) {
	lists, err := ctrl.LaboratoryUsecase.References(r.Context(), session)
	if err != nil {
		if ctrl.signedOut(w, r, session, err) {
			return nil, false
		}
		utils.LogError(ctrl.Log, err)
		return &models.ReferenceLists{Failed: true}, true
	}
	return lists, true
}

func (ctrl *LaboratoryController) list(w http.ResponseWriter, r *http.Request, session *models.Session, filters requests.LabTestFilters) (views.LabListView, bool) {
	view := views.LabListView{Filters: filters}
	tests, err := ctrl.LaboratoryUsecase.List(r.Context(), session, filters)
	if err != nil {
		if ctrl.signedOut(w, r, session, err) {
			return view, false
		}
		utils.LogError(ctrl.Log, err)
		view.Failed = true
		return view, true
	}
	view.Tests = tests
	return view, true
}
