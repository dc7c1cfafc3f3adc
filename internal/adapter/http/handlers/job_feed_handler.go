package handlers

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"

	"autocare_api/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type jobFeed interface {
	Serve(ctx context.Context, conn *websocket.Conn, actor entities.Actor)
}

// JobFeedHandler upgrades to a websocket that streams job events visible to the caller.

type JobFeedHandler struct {
	feed     jobFeed
	upgrader websocket.Upgrader
}

// NewJobFeedHandler accepts any origin when allowedOrigins is empty or contains "*".
func NewJobFeedHandler(feed jobFeed, allowedOrigins []string) *JobFeedHandler {
	return &JobFeedHandler{
		feed: feed,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// Stream godoc
// @Summary      Live job feed (websocket)
// @Tags         jobs
// @Param        token  query  string  false  "JWT when the Authorization header cannot be set"
// @Success      101
// @Security     Bearer
// @Router       /ws/jobs [get]
func (h *JobFeedHandler) Stream(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already answered the client.
		log.Printf("[realtime][handler] upgrade failed actor_id=%s err=%v", actor.ID, err)
		return
	}
	// Serve blocks until the client disconnects.
	h.feed.Serve(context.WithoutCancel(c.Request.Context()), conn, actor)
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		if o != "" {
			set[strings.ToLower(o)] = struct{}{}
		}
	}
	if len(set) == 0 {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		_, ok := set[strings.ToLower(u.Scheme+"://"+u.Host)]
		return ok
	}
}
