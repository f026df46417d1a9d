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

type InventoryController struct {
	*Base
	InventoryUsecase contracts.InventoryUsecase
}

func NewInventoryController(base *Base, inventoryUsecase contracts.InventoryUsecase) *InventoryController {
	return &InventoryController{
		Base:             base,
		InventoryUsecase: inventoryUsecase,
	}
}

func (ctrl *InventoryController) Page(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	view, ok := ctrl.inventory(w, r, session, requests.InventoryFilters{})
	if !ok {
		return
	}
	ctrl.page(w, r, "inventory", ctrl.layout(session, "Inventory", "inventory", view))
}

func (ctrl *InventoryController) List(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	var filters requests.InventoryFilters
	if err := utils.DecodeForm(r, &filters); err != nil {
		ctrl.fail(w, r, session, err, constvars.ErrClientFailedToLoadInventory)
		return
	}

	view, ok := ctrl.inventory(w, r, session, filters)
	if !ok {
		return
	}
	if view.Failed {
		notifyError(w, constvars.ErrClientFailedToLoadInventory)
	}
	ctrl.fragment(w, r, "inventory_list", view)
}

func (ctrl *InventoryController) Transfer(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}
	itemID := chi.URLParam(r, "id")

	form := new(requests.InventoryTransferForm)
	if err := utils.DecodeForm(r, form); err != nil {
		ctrl.fail(w, r, session, err, constvars.ErrClientFailedToTransferItem)
		return
	}

	view := views.TransferFormView{ItemID: itemID, Form: form}
	fieldErrors, err := ctrl.InventoryUsecase.Transfer(r.Context(), session, itemID, form)
	switch {
	case err != nil:
		if ctrl.signedOut(w, r, session, err) {
			return
		}
		utils.LogError(ctrl.Log, err)
		view.Message = exceptions.BackendMessage(err, constvars.ErrClientFailedToTransferItem)
		notifyError(w, view.Message)
	case len(fieldErrors) > 0:
		view.FieldErrors = fieldErrors
	default:
		notifySuccess(w, constvars.InventoryTransferSuccessMessage, constvars.ListChangedEvent)
		view.Form = &requests.InventoryTransferForm{}
	}
	ctrl.fragment(w, r, "transfer_form", view)
}

func (ctrl *InventoryController) inventory(w http.ResponseWriter, r *http.Request, session *models.Session, filters requests.InventoryFilters) (*views.InventoryView, bool) {
	view := &views.InventoryView{Filters: filters}
	page, err := ctrl.InventoryUsecase.List(r.Context(), session, filters)
	if err != nil {
		if ctrl.signedOut(w, r, session, err) {
			return nil, false
		}
		utils.LogError(ctrl.Log, err)
		view.Failed = true
		return view, true
	}
	view.Page = page
	return view, true
}
