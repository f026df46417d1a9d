package controllers

import (
	"careportal-service/internal/app/config"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/utils"
	"net/http"
)

type HealthController struct {
	InternalConfig *config.InternalConfig
}

func NewHealthController(internalConfig *config.InternalConfig) *HealthController {
	return &HealthController{InternalConfig: internalConfig}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseHealthy, responses.Health{
		Status:  constvars.ResponseHealthy,
		Version: ctrl.InternalConfig.App.Version,
	})
}
