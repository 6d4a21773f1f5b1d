package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"purrhaven/internal/app/ports"
	"purrhaven/internal/app/session"
	"purrhaven/internal/domain/geom"
)

const playerIDHeader = "X-Player-ID"

type Handler struct {
	Sessions *session.Manager
	Journal  ports.MilestoneJournal
	Metrics  metricsSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	game := s.Group("/api/game")
	game.GET("/state", h.state)
	game.GET("/catalog", h.catalog)
	game.GET("/milestones", h.milestones)
	game.POST("/pointer", h.pointer)
	game.POST("/axis", h.axis)
	game.POST("/hud", h.hud)
	game.POST("/save", h.save)

	s.GET("/ops/metrics", h.metricsSnapshot)
}

type pointerRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type axisRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type hudRequest struct {
	Action string `json:"action"`
}

func (h Handler) state(c context.Context, ctx *app.RequestContext) {
	sess, err := h.requireSession(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, sess.Snapshot())
}

func (h Handler) catalog(c context.Context, ctx *app.RequestContext) {
	sess, err := h.requireSession(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"items": sess.Catalog()})
}

func (h Handler) milestones(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if h.Journal == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", "journal disabled")
		return
	}

	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	records, err := h.Journal.ListByPlayerID(c, playerID, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"milestones": records})
}

func (h Handler) pointer(c context.Context, ctx *app.RequestContext) {
	sess, err := h.requireSession(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body pointerRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	sess.HandlePointer(geom.Vec2{X: body.X, Y: body.Y})
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

func (h Handler) axis(c context.Context, ctx *app.RequestContext) {
	sess, err := h.requireSession(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body axisRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	sess.HandleAxis(body.X, body.Y)
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

func (h Handler) hud(c context.Context, ctx *app.RequestContext) {
	sess, err := h.requireSession(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body hudRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if body.Action == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "missing action")
		return
	}

	sess.HandleHUD(body.Action)
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

func (h Handler) save(c context.Context, ctx *app.RequestContext) {
	sess, err := h.requireSession(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if err := sess.Persist(c); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]string{"status": "saved"})
}

type metricsSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) metricsSnapshot(_ context.Context, ctx *app.RequestContext) {
	if h.Metrics == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", "metrics disabled")
		return
	}
	ctx.JSON(consts.StatusOK, h.Metrics.SnapshotAny())
}

var ErrMissingPlayerIDHeader = errors.New("missing x-player-id header")

func requirePlayerID(ctx *app.RequestContext) (string, error) {
	playerID := strings.TrimSpace(string(ctx.GetHeader(playerIDHeader)))
	if playerID == "" {
		return "", ErrMissingPlayerIDHeader
	}
	return playerID, nil
}

func (h Handler) requireSession(c context.Context, ctx *app.RequestContext) (*session.Session, error) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		return nil, err
	}
	return h.Sessions.GetOrCreate(c, playerID)
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrMissingPlayerIDHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_player_id", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	case errors.Is(err, ports.ErrCorruptSave):
		writeErrorBody(ctx, consts.StatusConflict, "corrupt_save", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
