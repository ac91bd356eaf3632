package reminder

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pixfil/onm-formation/pkg/errors"
	publicMiddleware "github.com/pixfil/onm-formation/pkg/middleware"
	"github.com/pixfil/onm-formation/pkg/response"
	"github.com/pixfil/onm-formation/pkg/status"
)

type HTTPHandler struct {
	ReminderUseCase ReminderUseCase
}

func InitHTTPHandler(router *mux.Router, reminderUseCase ReminderUseCase) {
	handler := &HTTPHandler{
		ReminderUseCase: reminderUseCase,
	}

	router.HandleFunc("/onm-formation/v1/schedulerapp/reminders/on-run", publicMiddleware.SetRouteChain(handler.OnRunReminders)).Methods(http.MethodPost)
}

func (handler HTTPHandler) OnRunReminders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	e := RunRemindersEvent{}
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&e)
	}

	err := handler.ReminderUseCase.OnRunReminders(ctx, e)
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
		Message: "reminder run has been completed",
		Data:    nil,
		Meta:    nil,
	})
}
