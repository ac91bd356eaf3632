package formation

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pixfil/onm-formation/pkg/errors"
	"github.com/pixfil/onm-formation/pkg/response"
	"github.com/pixfil/onm-formation/pkg/status"
)

type HTTPHandler struct {
	FormationUseCase FormationUseCase
}

func InitHTTPHandler(router *mux.Router, formationUseCase FormationUseCase) {
	handler := &HTTPHandler{
		FormationUseCase: formationUseCase,
	}

	// Catalog read, no session required.
	router.HandleFunc("/onm-formation/v1/customerapp/formations/{id}", handler.GetFormation).Methods(http.MethodGet)
}

func (handler HTTPHandler) GetFormation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ID := mux.Vars(r)["id"]

	resp, err := handler.FormationUseCase.GetFormation(ctx, ID)
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
		Message: "formation detail",
		Data:    resp,
		Meta:    nil,
	})
}
