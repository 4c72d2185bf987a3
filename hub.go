package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

type Client struct {
	conn *websocket.Conn
	send chan any

	// Participant id minted at upgrade time; stable for the connection's
	// lifetime and authoritative over any id a payload claims.
	participantID string
}

type clientMessage struct {
	client *Client
	msg    ClientMessage
}

// Hub owns the client set and the Session. Every lifecycle event and
// inbound frame funnels through its channels into run(), so each message is
// handled to completion before the next and no locks guard session state.
type Hub struct {
	cfg     *Config
	clients map[*Client]bool
	session *Session

	register chan *Client
	unreg    chan *Client
	incoming chan clientMessage
}

func newHub(cfg *Config) *Hub {
	return &Hub{
		cfg:      cfg,
		clients:  make(map[*Client]bool),
		session:  newSession(cfg),
		register: make(chan *Client),
		unreg:    make(chan *Client),
		incoming: make(chan clientMessage),
	}
}

func (h *Hub) run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true

			// The new connection alone gets the current roster, so its
			// client can draw everyone already present.
			h.sendTo(c, RosterMessage{
				Type:         "participant_joined",
				Participants: h.session.roster(),
			})

		case c := <-h.unreg:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}

			if _, ok := h.session.remove(c.participantID); ok {
				logf(h.cfg, "GAMES: Participant %s left", c.participantID)
				h.broadcast(ParticipantLeftMessage{
					Type: "participant_left",
					ID:   c.participantID,
				})
			}

		case cm := <-h.incoming:
			h.dispatch(cm.client, cm.msg)
		}
	}
}

// dispatch routes an inbound frame to its single handler. Malformed frames
// earn the sender a private bad_request and mutate nothing; unknown types
// are dropped.
func (h *Hub) dispatch(c *Client, msg ClientMessage) {
	if err := msg.validate(); err != nil {
		h.sendTo(c, SimpleMessage{
			Type:    "bad_request",
			Message: err.Error(),
		})
		return
	}

	switch msg.Type {
	case "join":
		h.handleJoin(c, msg)
	case "request_roster":
		h.sendTo(c, RosterMessage{
			Type:         "roster",
			Participants: h.session.roster(),
		})
	case "move":
		h.handleMove(c, msg)
	case "riddle_solved":
		h.handleRiddleSolved(c, msg)
	case "clue_collected":
		h.handleClueCollected(c, msg)
	case "final_answer":
		h.handleFinalAnswer(c, msg)
	case "start_game":
		h.handleStartGame(c)
	case "restart":
		h.handleRestart()
	default:
		// ignore unknown types
	}
}

func (h *Hub) handleJoin(c *Client, msg ClientMessage) {
	p, ok := h.session.join(c.participantID, msg.Name)
	if !ok {
		h.sendTo(c, SimpleMessage{Type: "room_full"})
		return
	}

	logf(h.cfg, "GAMES: Participant %q joined as %s", p.Name, p.ID)

	h.sendTo(c, ColorAssignedMessage{
		Type:          "color_assigned",
		ParticipantID: p.ID,
		Color:         p.Color,
	})

	h.broadcastExcept(c, NewParticipantMessage{
		Type:  "new_participant",
		ID:    p.ID,
		Name:  p.Name,
		X:     p.X,
		Y:     p.Y,
		Color: p.Color,
	})

	h.broadcast(RosterMessage{
		Type:         "participant_joined",
		Participants: h.session.roster(),
	})
}

func (h *Hub) handleMove(c *Client, msg ClientMessage) {
	p, ok := h.session.updatePosition(c.participantID, *msg.X, *msg.Y)
	if !ok {
		return
	}

	h.broadcastExcept(c, ParticipantMovedMessage{
		Type: "participant_moved",
		ID:   p.ID,
		X:    p.X,
		Y:    p.Y,
		Name: p.Name,
	})
}

func (h *Hub) handleRiddleSolved(c *Client, msg ClientMessage) {
	p, _, ok := h.session.recordRiddleSolved(c.participantID, *msg.Level, msg.Clue)
	if !ok {
		return
	}

	logf(h.cfg, "GAMES: %q reached level %d", p.Name, p.Level)

	h.broadcastExcept(c, ParticipantProgressMessage{
		Type:          "participant_progress",
		ParticipantID: p.ID,
		Level:         p.Level,
	})

	if h.session.allReady() {
		h.broadcast(SimpleMessage{Type: "all_ready"})
	}
}

func (h *Hub) handleClueCollected(c *Client, msg ClientMessage) {
	clues, ok := h.session.recordClue(c.participantID, msg.Clue, msg.AllClues)
	if !ok {
		return
	}

	h.broadcast(ClueUpdateMessage{
		Type:          "clue_update",
		ParticipantID: c.participantID,
		CluesCount:    len(clues),
		AllClues:      clues,
	})
}

func (h *Hub) handleFinalAnswer(c *Client, msg ClientMessage) {
	if !h.session.attemptFinal(c.participantID, msg.Answer) {
		return
	}

	logf(h.cfg, "GAMES: %s solved the final riddle", c.participantID)

	h.broadcast(GameCompleteMessage{
		Type:   "game_complete",
		Winner: c.participantID,
	})
}

func (h *Hub) handleStartGame(c *Client) {
	if h.session.count() < 2 {
		return
	}

	hints := h.session.openingHints()
	for client := range h.clients {
		hint, ok := hints[client.participantID]
		if !ok {
			continue
		}
		h.sendTo(client, ClueReceivedMessage{
			Type: "clue_received",
			Clue: hint,
		})
	}

	h.broadcast(GameStartedMessage{
		Type:     "game_started",
		Question: h.session.opening.Question,
	})
}

func (h *Hub) handleRestart() {
	h.session.restart()

	logf(h.cfg, "GAMES: Session restarted")

	h.broadcast(SimpleMessage{Type: "game_restarted"})
}

// sendTo delivers to one client, dropping the client if its send buffer is
// full rather than blocking the hub loop. A client that was already dropped
// is skipped; its send channel is closed, and frames from its still-draining
// readPump must not crash the loop.
func (h *Hub) sendTo(c *Client, msg any) {
	if _, ok := h.clients[c]; !ok {
		return
	}

	select {
	case c.send <- msg:
	default:
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) broadcast(msg any) {
	for client := range h.clients {
		h.sendTo(client, msg)
	}
}

func (h *Hub) broadcastExcept(sender *Client, msg any) {
	for client := range h.clients {
		if client == sender {
			continue
		}
		h.sendTo(client, msg)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func serveWSForHub(cfg *Config, h *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		client := &Client{
			conn:          conn,
			send:          make(chan any, 8),
			participantID: uuid.NewString(),
		}

		logf(cfg, "GAMES: Connection %s from %s", client.participantID, realIP(r))

		h.register <- client

		go client.writePump()
		client.readPump(h)
	}
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		h.unreg <- c
		_ = c.conn.Close()
	}()

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		h.incoming <- clientMessage{
			client: c,
			msg:    msg,
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// serveQR renders the session link as a PNG QR code, for handing the game
// to a phone.
func serveQR(cfg *Config) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}

		// The handler lives one path element below the game page.
		url := scheme + "://" + r.Host + strings.TrimSuffix(r.URL.Path, "/qr")

		png, err := qrcode.Encode(url, qrcode.Medium, 320)
		if err != nil {
			http.Error(w, "qr generation failed", http.StatusInternalServerError)
			return
		}

		securityHeaders(cfg, w)
		w.Header().Set("Content-Type", "image/png")

		_, _ = w.Write(png)

		logf(cfg, "SERVE: QR code for %s to %s", url, realIP(r))
	}
}

func serveGamePage(cfg *Config) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		securityHeaders(cfg, w)

		_, _ = w.Write([]byte(newPage("cluehunt", "The game client connects to ws at this path")))
	}
}

// registerHuntGame sets up routes so that:
//   - $path       → placeholder page (the real client is served elsewhere)
//   - $path/ws    → WebSocket for the session
//   - $path/qr    → PNG QR code for the game URL
func registerHuntGame(cfg *Config, path string, mux *httprouter.Router) {
	h := newHub(cfg)
	go h.run()

	mux.GET(cfg.prefix+path, serveGamePage(cfg))

	mux.GET(cfg.prefix+path+"/ws", serveWSForHub(cfg, h))

	mux.GET(cfg.prefix+path+"/qr", serveQR(cfg))
}
