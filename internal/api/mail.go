package api

import (
	"encoding/json"
	"net/http"
	"time"

	"cometjet/crewdesk/internal/common"
	"cometjet/crewdesk/internal/metrics"
	"cometjet/crewdesk/internal/models/dtos"
)

// SendMailHandler handles POST /api/v1/mail (admin). Unlike the lifecycle
// notifications this one surfaces transport failures to the caller.
func SendMailHandler(mailer common.NotificationSender, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.SendMailReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := validate.Struct(&req); err != nil {
			common.RespondError(w, initTime, nil, validationMessage(err), http.StatusBadRequest)
			return
		}

		if err := mailer.Send(req.To, req.Subject, req.Message, false); err != nil {
			metricsReg.MailsTotal.WithLabelValues("failed").Inc()
			common.RespondError(w, initTime, err, "Failed to send mail", http.StatusInternalServerError)
			return
		}

		metricsReg.MailsTotal.WithLabelValues("sent").Inc()
		common.RespondSuccess(w, initTime, "Mail sent", nil)
	}
}
