package training

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pixfil/onm-formation/internal/pkg/middleware"
	"github.com/pixfil/onm-formation/pkg/errors"
	publicMiddleware "github.com/pixfil/onm-formation/pkg/middleware"
	"github.com/pixfil/onm-formation/pkg/response"
	"github.com/pixfil/onm-formation/pkg/status"
)

type HTTPHandler struct {
	SessionMiddleware *middleware.CustomerSession
	TrainingUseCase   TrainingUseCase
}

func InitHTTPHandler(router *mux.Router, customerSession *middleware.CustomerSession, trainingUseCase TrainingUseCase) {
	handler := &HTTPHandler{
		TrainingUseCase: trainingUseCase,
	}

	router.HandleFunc("/onm-formation/v1/customerapp/trainings", publicMiddleware.SetRouteChain(handler.GetManyOccurrence, customerSession.Verify)).Methods(http.MethodGet)
	router.HandleFunc("/onm-formation/v1/customerapp/trainings/badge", publicMiddleware.SetRouteChain(handler.GetBadge, customerSession.Verify)).Methods(http.MethodGet)
}

func (handler HTTPHandler) GetManyOccurrence(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := handler.TrainingUseCase.GetManyOccurrence(ctx)
	if err != nil {
		ae := errors.Destruct(err)
		response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
			Status:  ae.Status,
			Message: ae.Message,
		})

		return
	}

	response.JSON(w, http.StatusOK, response.RESTEnvelope{
		Status:  status.OK,
		Message: "list of formation occurrences",
		Data:    resp,
		Meta:    nil,
	})
}

func (handler HTTPHandler) GetBadge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := handler.TrainingUseCase.GetBadge(ctx)
	if err != nil {
		ae := errors.Destruct(err)
		response.JSON(w, ae.HTTPStatusCode, response.RESTEnvelope{
			Status:  ae.Status,
			Message: ae.Message,
		})

		return
	}

	response.JSON(w, http.StatusOK, response.RESTEnvelope{
		Status:  status.OK,
		Message: "badge qualification",
		Data:    resp,
		Meta:    nil,
	})
}
