package http

import (
	"io"
	"net/http"

	"github.com/m-mizutani/ctxlog"

	githubctrl "github.com/lima-uam/github-artifact-sync/pkg/controller/github"
	"github.com/lima-uam/github-artifact-sync/pkg/domain/interfaces"
	"github.com/lima-uam/github-artifact-sync/pkg/domain/model"
)

// WebhookHandler handles GitHub workflow_job webhooks
type WebhookHandler struct {
	secret []byte
	syncUC interfaces.SyncUseCase
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(secret string, syncUC interfaces.SyncUseCase) *WebhookHandler {
	return &WebhookHandler{
		secret: []byte(secret),
		syncUC: syncUC,
	}
}

// Handle processes one webhook delivery. The stages run in a fixed order:
// signature verification, event type check, payload parsing, then the sync
// pipeline. Nothing is parsed before the signature succeeds, and the first
// rejection short-circuits to a terminal response.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Warn("failed to read request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	signature, ok := extractSignature(r.Header.Get("X-Hub-Signature-256"))
	if !ok || !verifySignature(body, h.secret, signature) {
		logger.Warn("the signature is invalid or missing, ignoring the event")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if eventType := r.Header.Get("X-GitHub-Event"); eventType != model.EventTypeWorkflowJob {
		logger.Warn("the event is not from a workflow job, ignoring it",
			"event_type", eventType,
		)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	event, err := githubctrl.ParseWorkflowJobEvent(r.Header.Get("X-GitHub-Delivery"), body)
	if err != nil {
		logger.Warn("unintelligible event payload, ignoring it", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	logger.Info("processing workflow_job event",
		"delivery_id", event.DeliveryID,
		"job_id", event.Job.ID,
		"run_id", event.Job.RunID,
		"repository", event.Repo.Owner+"/"+event.Repo.Name,
		"sender", event.Sender.Login,
		"status", event.Job.Status,
	)

	outcome, err := h.syncUC.ProcessWorkflowJob(ctx, event)
	if err != nil {
		logger.Warn("sync pipeline failed",
			"outcome", outcome,
			"error", err,
		)
	} else {
		logger.Info("sync pipeline finished", "outcome", outcome)
	}

	// Status code is the only externally visible signal; failure detail
	// stays in the logs.
	w.WriteHeader(outcome.HTTPStatus())
}
