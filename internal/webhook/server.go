// Package webhook is the HTTP ingress for homelab monitoring events.
package webhook

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"netchan/internal/relay"
	"netchan/internal/response"
)

const (
	defaultEvent   = "generic"
	defaultMessage = "No details provided."
)

type payload struct {
	Event   string `json:"event"`
	Message string `json:"message"`
}

// Server accepts webhook POSTs and hands the rendered replies off to the
// Discord session through the bounded outbox. The HTTP response never waits
// for (or reports) delivery: callers always get 200.
type Server struct {
	addr      string
	channelID string
	responses *response.Store
	eventLog  *relay.Log
	outbox    *relay.Outbox
}

func NewServer(addr, channelID string, responses *response.Store, eventLog *relay.Log, outbox *relay.Outbox) *Server {
	return &Server{
		addr:      addr,
		channelID: channelID,
		responses: responses,
		eventLog:  eventLog,
		outbox:    outbox,
	}
}

// Handler returns the HTTP handler; split out so tests can drive it with
// httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/webhook", s.handleWebhook)
	return mux
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var p payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		log.Printf("[WARN] Webhook body unparseable, using defaults: %v", err)
	}
	if p.Event == "" {
		p.Event = defaultEvent
	}
	if p.Message == "" {
		p.Message = defaultMessage
	}

	log.Printf("[INFO] Received webhook event=%s message=%s", p.Event, p.Message)

	s.eventLog.Append(relay.Entry{Event: p.Event, Message: p.Message})

	reply := s.responses.Get(p.Event, p.Message)
	embed := &discordgo.MessageEmbed{
		Description: reply,
		Color:       0x3498DB,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Event Type", Value: p.Event},
			{Name: "Message", Value: p.Message},
		},
	}
	s.outbox.TryEnqueue(relay.Outbound{ChannelID: s.channelID, Embed: embed})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Run serves until ctx is cancelled. Server errors are logged, never fatal:
// losing the ingress must not take the bot down.
func (s *Server) Run(ctx context.Context) {
	srv := &http.Server{Addr: s.addr, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		log.Println("[INFO] Shutting down webhook server...")
		srv.Shutdown(context.Background()) //nolint:errcheck
	}()

	log.Printf("[INFO] Webhook server listening on %s", s.addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("[ERR] Webhook server exited: %v", err)
	}
}
