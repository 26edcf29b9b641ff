package httpHandler

import (
	"context"

	"room-server/serializers"
	"room-server/usecases"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Common
	useCase    *usecases.UserUseCase
	serializer *serializers.UserSerializer
}

func NewUserHandler(common Common, useCase *usecases.UserUseCase, serializer *serializers.UserSerializer) *UserHandler {
	return &UserHandler{
		Common:     common,
		useCase:    useCase,
		serializer: serializer,
	}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) { h.serve(c, h.list) }

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) { h.serve(c, h.create) }

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) { h.serve(c, h.retrieve) }

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) { h.serve(c, h.replace) }

// PatchUser handles PATCH /users/:id
func (h *UserHandler) PatchUser(c *gin.Context) { h.serve(c, h.partialUpdate) }

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) { h.serve(c, h.destroy) }

func (h *UserHandler) list(ctx context.Context, req request) response {
	users, err := h.useCase.ListUsers(ctx)
	if err != nil {
		return h.fail(req, "list users", err)
	}
	return ok(serializers.SerializeUsers(users))
}

func (h *UserHandler) create(ctx context.Context, req request) response {
	data, err := serializers.ParseData(req.body, req.trans)
	if err != nil {
		return h.fail(req, "create user", err)
	}
	in, err := h.serializer.Validate(ctx, data, serializers.Options{Translator: req.trans})
	if err != nil {
		return h.fail(req, "create user", err)
	}
	user, err := h.useCase.CreateUser(ctx, in)
	if err != nil {
		return h.fail(req, "create user", err)
	}
	return created(serializers.SerializeUser(user))
}

func (h *UserHandler) retrieve(ctx context.Context, req request) response {
	user, err := h.useCase.GetUser(ctx, req.id)
	if err != nil {
		return h.fail(req, "get user", err)
	}
	return ok(serializers.SerializeUser(user))
}

func (h *UserHandler) replace(ctx context.Context, req request) response {
	return h.update(ctx, req, false)
}

func (h *UserHandler) partialUpdate(ctx context.Context, req request) response {
	return h.update(ctx, req, true)
}

// update looks the user up before touching the body, so a missing id is a
// 404 whatever was sent.
func (h *UserHandler) update(ctx context.Context, req request, partial bool) response {
	user, err := h.useCase.GetUser(ctx, req.id)
	if err != nil {
		return h.fail(req, "update user", err)
	}
	data, err := serializers.ParseData(req.body, req.trans)
	if err != nil {
		return h.fail(req, "update user", err)
	}
	in, err := h.serializer.Validate(ctx, data, serializers.Options{
		Partial:    partial,
		InstanceID: user.ID,
		Translator: req.trans,
	})
	if err != nil {
		return h.fail(req, "update user", err)
	}
	user, err = h.useCase.UpdateUser(ctx, user, in)
	if err != nil {
		return h.fail(req, "update user", err)
	}
	return ok(serializers.SerializeUser(user))
}

func (h *UserHandler) destroy(ctx context.Context, req request) response {
	if err := h.useCase.DeleteUser(ctx, req.id); err != nil {
		return h.fail(req, "delete user", err)
	}
	return noContent()
}
