package httpHandler

import (
	"context"

	"room-server/serializers"
	"room-server/usecases"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	Common
	useCase    *usecases.RoomUseCase
	serializer *serializers.RoomSerializer
}

func NewRoomHandler(common Common, useCase *usecases.RoomUseCase, serializer *serializers.RoomSerializer) *RoomHandler {
	return &RoomHandler{
		Common:     common,
		useCase:    useCase,
		serializer: serializer,
	}
}

// ListRooms handles GET /rooms
func (h *RoomHandler) ListRooms(c *gin.Context) { h.serve(c, h.list) }

// CreateRoom handles POST /rooms
func (h *RoomHandler) CreateRoom(c *gin.Context) { h.serve(c, h.create) }

// GetRoom handles GET /rooms/:id
func (h *RoomHandler) GetRoom(c *gin.Context) { h.serve(c, h.retrieve) }

// UpdateRoom handles PUT /rooms/:id
func (h *RoomHandler) UpdateRoom(c *gin.Context) { h.serve(c, h.replace) }

// PatchRoom handles PATCH /rooms/:id
func (h *RoomHandler) PatchRoom(c *gin.Context) { h.serve(c, h.partialUpdate) }

// DeleteRoom handles DELETE /rooms/:id
func (h *RoomHandler) DeleteRoom(c *gin.Context) { h.serve(c, h.destroy) }

func (h *RoomHandler) list(ctx context.Context, req request) response {
	rooms, err := h.useCase.ListRooms(ctx)
	if err != nil {
		return h.fail(req, "list rooms", err)
	}
	return ok(serializers.SerializeRooms(rooms))
}

func (h *RoomHandler) create(ctx context.Context, req request) response {
	data, err := serializers.ParseData(req.body, req.trans)
	if err != nil {
		return h.fail(req, "create room", err)
	}
	in, err := h.serializer.Validate(ctx, data, serializers.Options{Translator: req.trans})
	if err != nil {
		return h.fail(req, "create room", err)
	}
	room, err := h.useCase.CreateRoom(ctx, in)
	if err != nil {
		return h.fail(req, "create room", err)
	}
	return created(serializers.SerializeRoom(room))
}

func (h *RoomHandler) retrieve(ctx context.Context, req request) response {
	room, err := h.useCase.GetRoom(ctx, req.id)
	if err != nil {
		return h.fail(req, "get room", err)
	}
	return ok(serializers.SerializeRoom(room))
}

func (h *RoomHandler) replace(ctx context.Context, req request) response {
	return h.update(ctx, req, false)
}

func (h *RoomHandler) partialUpdate(ctx context.Context, req request) response {
	return h.update(ctx, req, true)
}

func (h *RoomHandler) update(ctx context.Context, req request, partial bool) response {
	room, err := h.useCase.GetRoom(ctx, req.id)
	if err != nil {
		return h.fail(req, "update room", err)
	}
	data, err := serializers.ParseData(req.body, req.trans)
	if err != nil {
		return h.fail(req, "update room", err)
	}
	in, err := h.serializer.Validate(ctx, data, serializers.Options{
		Partial:    partial,
		InstanceID: room.ID,
		Translator: req.trans,
	})
	if err != nil {
		return h.fail(req, "update room", err)
	}
	room, err = h.useCase.UpdateRoom(ctx, room, in)
	if err != nil {
		return h.fail(req, "update room", err)
	}
	return ok(serializers.SerializeRoom(room))
}

func (h *RoomHandler) destroy(ctx context.Context, req request) response {
	if err := h.useCase.DeleteRoom(ctx, req.id); err != nil {
		return h.fail(req, "delete room", err)
	}
	return noContent()
}
