package http

import (
	"errors"
	"net/http"

	"github.com/autovendas/whatsapp-bridge/internal/app/usecase"
	"github.com/autovendas/whatsapp-bridge/internal/domain/bridge"
)

type Handler struct {
	sendUC    *usecase.SendTextUsecase
	qrUC      *usecase.QRUsecase
	statusUC  *usecase.StatusUsecase
	infoUC    *usecase.InfoUsecase
	logoutUC  *usecase.LogoutUsecase
	restartUC *usecase.RestartUsecase
}

func NewHandler(
	sendUC *usecase.SendTextUsecase,
	qrUC *usecase.QRUsecase,
	statusUC *usecase.StatusUsecase,
	infoUC *usecase.InfoUsecase,
	logoutUC *usecase.LogoutUsecase,
	restartUC *usecase.RestartUsecase,
) *Handler {
	return &Handler{
		sendUC:    sendUC,
		qrUC:      qrUC,
		statusUC:  statusUC,
		infoUC:    infoUC,
		logoutUC:  logoutUC,
		restartUC: restartUC,
	}
}

// errorStatus maps the bridge failure taxonomy onto HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, bridge.ErrNotConnected):
		return http.StatusServiceUnavailable
	case errors.Is(err, bridge.ErrNotInitialized):
		return http.StatusBadRequest
	case errors.Is(err, bridge.ErrRecipientNotFound):
		return http.StatusNotFound
	case errors.Is(err, bridge.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
