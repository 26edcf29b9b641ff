package serializers

import (
	"context"

	"room-server/entities"
)

type roomFields struct {
	Name        *string `json:"name" validate:"required,notblank,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Capacity    *int    `json:"capacity" validate:"required,min=1"`
}

// RoomInput is a validated room payload. Nil fields were not supplied.
type RoomInput struct {
	Name        *string
	Description *string
	Capacity    *int
}

func (in RoomInput) ApplyTo(r *entities.Room) {
	if in.Name != nil {
		r.Name = *in.Name
	}
	if in.Description != nil {
		r.Description = *in.Description
	}
	if in.Capacity != nil {
		r.Capacity = *in.Capacity
	}
}

type RoomRepresentation struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
}

type RoomSerializer struct {
	validator *Validator
}

func NewRoomSerializer(v *Validator) *RoomSerializer {
	return &RoomSerializer{validator: v}
}

func (s *RoomSerializer) Validate(ctx context.Context, data Data, opts Options) (RoomInput, error) {
	if opts.Translator == nil {
		opts.Translator = s.validator.fallback
	}
	r := newFieldReader(data, opts)
	fields := roomFields{
		Name:        r.string("name", "Name", true),
		Description: r.string("description", "Description", true),
		Capacity:    r.integer("capacity", "Capacity"),
	}
	if err := s.validator.check(ctx, &fields, r); err != nil {
		return RoomInput{}, err
	}
	if !r.errs.empty() {
		return RoomInput{}, r.errs
	}
	return RoomInput{
		Name:        fields.Name,
		Description: fields.Description,
		Capacity:    fields.Capacity,
	}, nil
}

func SerializeRoom(r *entities.Room) RoomRepresentation {
	return RoomRepresentation{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Capacity:    r.Capacity,
	}
}

func SerializeRooms(rooms []entities.Room) []RoomRepresentation {
	out := make([]RoomRepresentation, 0, len(rooms))
	for i := range rooms {
		out = append(out, SerializeRoom(&rooms[i]))
	}
	return out
}
