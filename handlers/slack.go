package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"sheriffduty/core"
	"sheriffduty/models"
	"sheriffduty/sheriff"
)

// signatureFreshnessWindow is how old a request timestamp may be before it
// is rejected as a possible replay.
const signatureFreshnessWindow = 5 * time.Minute

type SlackWebhookHandler struct {
	signingSecret  string
	sheriffUseCase *sheriff.SheriffUseCase
}

func NewSlackWebhookHandler(signingSecret string, sheriffUseCase *sheriff.SheriffUseCase) *SlackWebhookHandler {
	return &SlackWebhookHandler{
		signingSecret:  signingSecret,
		sheriffUseCase: sheriffUseCase,
	}
}

// verifySlackSignature verifies the authenticity of a Slack webhook request.
// This must pass before any payload is interpreted.
func (h *SlackWebhookHandler) verifySlackSignature(r *http.Request, body []byte) error {
	timestamp := r.Header.Get("X-Slack-Request-Timestamp")
	signature := r.Header.Get("X-Slack-Signature")

	if timestamp == "" || signature == "" {
		return fmt.Errorf("missing required headers")
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp format: %v", err)
	}

	// reject timestamps older than the freshness window to defeat replays
	if time.Now().Unix()-ts > int64(signatureFreshnessWindow.Seconds()) {
		return fmt.Errorf("request timestamp too old")
	}

	// signature base string: v0:timestamp:body
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, string(body))

	mac := hmac.New(sha256.New, []byte(h.signingSecret))
	mac.Write([]byte(baseString))
	expectedSignature := "v0=" + hex.EncodeToString(mac.Sum(nil))

	// constant-time comparison
	if !hmac.Equal([]byte(expectedSignature), []byte(signature)) {
		return fmt.Errorf("signature verification failed")
	}

	return nil
}

func (h *SlackWebhookHandler) HandleSlackEvent(w http.ResponseWriter, r *http.Request) {
	log.Printf("📨 Slack event received from %s", r.RemoteAddr)

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("❌ Failed to read request body: %v", err)
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	if err := h.verifySlackSignature(r, bodyBytes); err != nil {
		log.Printf("❌ Slack signature verification failed: %v", err)
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	log.Printf("✅ Slack signature verified successfully")

	var event models.SlackEvent
	if err := json.Unmarshal(bodyBytes, &event); err != nil {
		log.Printf("❌ Failed to parse JSON body: %v", err)
		http.Error(w, "failed to parse body", http.StatusBadRequest)
		return
	}
	if event.Type == "" {
		log.Printf("❌ Missing event type in request body")
		http.Error(w, "missing event type", http.StatusBadRequest)
		return
	}

	result := h.sheriffUseCase.DispatchEvent(r.Context(), event)
	if result.IsFailure() {
		log.Printf("❌ Event dispatch failed with codes: %v", result.ErrorCodes())
		h.writeFailure(w, result.Errors())
		return
	}

	// the handshake challenge is echoed back as plain text
	if challenge := result.Data().Challenge; challenge != "" {
		log.Printf("✅ Responding to Slack URL verification challenge")
		w.Header().Set("Content-Type", "text/plain")
		if _, err := w.Write([]byte(challenge)); err != nil {
			log.Printf("❌ Failed to write challenge response: %v", err)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, result.Data())
}

func (h *SlackWebhookHandler) HandleSlackCommand(w http.ResponseWriter, r *http.Request) {
	log.Printf("📨 Slack command received from %s", r.RemoteAddr)

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("❌ Failed to read request body: %v", err)
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	if err := h.verifySlackSignature(r, bodyBytes); err != nil {
		log.Printf("❌ Slack signature verification failed: %v", err)
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	log.Printf("✅ Slack signature verified successfully")

	values, err := url.ParseQuery(string(bodyBytes))
	if err != nil {
		log.Printf("❌ Failed to parse form body: %v", err)
		http.Error(w, "failed to parse body", http.StatusBadRequest)
		return
	}

	command := models.SlackCommand{
		Command:     values.Get("command"),
		TeamID:      values.Get("team_id"),
		TeamDomain:  values.Get("team_domain"),
		ChannelID:   values.Get("channel_id"),
		ChannelName: values.Get("channel_name"),
		UserID:      values.Get("user_id"),
		UserName:    values.Get("user_name"),
		Text:        values.Get("text"),
		ResponseURL: values.Get("response_url"),
	}
	if command.Command == "" || command.TeamID == "" {
		log.Printf("❌ Missing command or team_id in request body")
		http.Error(w, "missing command fields", http.StatusBadRequest)
		return
	}

	result := h.sheriffUseCase.DispatchCommand(r.Context(), command)
	if result.IsFailure() {
		log.Printf("❌ Command dispatch failed with codes: %v", result.ErrorCodes())
		h.writeFailure(w, result.Errors())
		return
	}

	h.writeJSON(w, http.StatusOK, result.Data())
}

func (h *SlackWebhookHandler) writeFailure(w http.ResponseWriter, errs []core.OperationError) {
	h.writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
}

func (h *SlackWebhookHandler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("❌ Failed to write response: %v", err)
	}
}

func (h *SlackWebhookHandler) SetupEndpoints(router *mux.Router) {
	log.Printf("🚀 Registering Slack webhook endpoints")

	router.HandleFunc("/slack/events", h.HandleSlackEvent).Methods("POST")
	log.Printf("✅ POST /slack/events endpoint registered")

	router.HandleFunc("/slack/commands", h.HandleSlackCommand).Methods("POST")
	log.Printf("✅ POST /slack/commands endpoint registered")
}
