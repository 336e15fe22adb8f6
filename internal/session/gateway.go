package session

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"chatcore/internal/common"
	"chatcore/internal/dbmysql"
)

// PresenceSetter flips a user's presence flag. Implemented by the identity
// service; delivery must not fail because presence bookkeeping did.
type PresenceSetter interface {
	SetPresence(ctx context.Context, userID string, status dbmysql.PresenceStatus) error
}

// Gateway bridges a user's private delivery channel to a websocket. The
// authorization check happens exactly once, here at connect time: after that,
// everything published on user:<id> is for this user by construction, so no
// per-event check is needed.
//
// Each accepted socket is one session: the gateway owns a Manager for it,
// translates delivery events into invalidation frames on the wire, and treats
// any inbound client frame as a liveness nudge.
type Gateway struct {
	sub      Subscriber
	hub      *Hub
	issuer   *common.TokenIssuer
	presence PresenceSetter
	log      *zap.Logger

	upgrader websocket.Upgrader
}

func NewGateway(sub Subscriber, hub *Hub, issuer *common.TokenIssuer, presence PresenceSetter, log *zap.Logger) *Gateway {
	return &Gateway{
		sub:      sub,
		hub:      hub,
		issuer:   issuer,
		presence: presence,
		log:      log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// invalidationFrame is what the client receives. It never carries record
// contents: clients re-fetch, they do not apply deltas.
type invalidationFrame struct {
	Invalidate     string `json:"invalidate"`
	ConversationID string `json:"conversation_id,omitempty"`
}

func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := g.authenticate(r)
	if !ok {
		http.Error(w, "invalid or expired token", http.StatusUnauthorized)
		return
	}

	ws, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	conn := NewConn(userID, ws)
	conn.Start()

	mgr := NewManager(userID, g.sub, Invalidations{
		ConversationList: func() {
			g.push(conn, invalidationFrame{Invalidate: "conversation_list"})
		},
		Conversation: func(conversationID string) {
			g.push(conn, invalidationFrame{Invalidate: "conversation", ConversationID: conversationID})
		},
	}, g.log)

	if err := mgr.Start(r.Context()); err != nil {
		g.log.Warn("channel subscribe failed", zap.String("user_id", userID), zap.Error(err))
		conn.Close(websocket.CloseInternalServerErr, "subscribe failed")
		return
	}

	if first := g.hub.Add(conn); first {
		g.setPresence(userID, dbmysql.PresenceOnline)
	}

	go g.readLoop(conn, ws, mgr)
	<-conn.Closed()

	mgr.Close()
	if last := g.hub.Remove(conn); last {
		g.setPresence(userID, dbmysql.PresenceOffline)
	}
}

// authenticate accepts the token either as a Bearer header or as a query
// parameter, since browser websocket clients cannot set headers.
func (g *Gateway) authenticate(r *http.Request) (string, bool) {
	token := r.URL.Query().Get("token")
	if token == "" {
		parts := strings.Fields(r.Header.Get("Authorization"))
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			token = parts[1]
		}
	}
	if token == "" {
		return "", false
	}

	claims, err := g.issuer.Validate(token)
	if err != nil {
		return "", false
	}
	return claims.UserID, true
}

func (g *Gateway) push(conn *Conn, frame invalidationFrame) {
	payload, err := json.Marshal(frame)
	if err != nil {
		return
	}
	_ = conn.Send(payload)
}

// readLoop drains client frames until the socket dies. Any frame the client
// sends is taken as a liveness check (foreground regain), which resubscribes
// only if the channel went dead in the meantime.
func (g *Gateway) readLoop(conn *Conn, ws *websocket.Conn, mgr *Manager) {
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			conn.Close(websocket.CloseNormalClosure, "client closed")
			return
		}
		if err := mgr.EnsureLive(context.Background()); err != nil {
			g.log.Warn("resubscribe failed", zap.String("user_id", conn.UserID), zap.Error(err))
		}
	}
}

func (g *Gateway) setPresence(userID string, status dbmysql.PresenceStatus) {
	if g.presence == nil {
		return
	}
	if err := g.presence.SetPresence(context.Background(), userID, status); err != nil {
		g.log.Warn("presence update failed", zap.String("user_id", userID), zap.Error(err))
	}
}
