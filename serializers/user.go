package serializers

import (
	"context"
	"errors"
	"fmt"

	"room-server/entities"

	"github.com/go-playground/validator/v10"
)

// InternalIDLookup is the uniqueness check the user serializer runs against storage.
type InternalIDLookup interface {
	ExistsByInternalID(ctx context.Context, internalID, excludeID string) (bool, error)
}

type userFields struct {
	InternalID  *string `json:"internal_id" validate:"required,notblank,max=255"`
	Username    *string `json:"username" validate:"required,notblank,max=150"`
	DisplayName *string `json:"display_name" validate:"required,notblank,max=255"`
	DateOfBirth *string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender      *string `json:"gender" validate:"required,gender"`
	Password    *string `json:"password" validate:"required,notblank,passwordlen"`
}

// UserInput is a validated user payload. Nil fields were not supplied.
type UserInput struct {
	InternalID  *string
	Username    *string
	DisplayName *string
	DateOfBirth *entities.Date
	Gender      *entities.Gender
	Password    *string
}

// ApplyTo copies the supplied fields onto u. The password is left to the
// caller, which stores only its hash.
func (in UserInput) ApplyTo(u *entities.User) {
	if in.InternalID != nil {
		u.InternalID = *in.InternalID
	}
	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.DisplayName != nil {
		u.DisplayName = *in.DisplayName
	}
	if in.DateOfBirth != nil {
		u.DateOfBirth = *in.DateOfBirth
	}
	if in.Gender != nil {
		u.Gender = *in.Gender
	}
}

// UserRepresentation is the readable form of a user. It has no password field.
type UserRepresentation struct {
	ID          string          `json:"id"`
	InternalID  string          `json:"internal_id"`
	Username    string          `json:"username"`
	DisplayName string          `json:"display_name"`
	DateOfBirth entities.Date   `json:"date_of_birth"`
	Gender      entities.Gender `json:"gender"`
}

type UserSerializer struct {
	validator *Validator
	lookup    InternalIDLookup
}

func NewUserSerializer(v *Validator, lookup InternalIDLookup) *UserSerializer {
	return &UserSerializer{validator: v, lookup: lookup}
}

// Validate checks data against the user rules. On failure the error is a
// *ValidationError; any other error comes from the uniqueness lookup.
func (s *UserSerializer) Validate(ctx context.Context, data Data, opts Options) (UserInput, error) {
	if opts.Translator == nil {
		opts.Translator = s.validator.fallback
	}
	r := newFieldReader(data, opts)
	fields := userFields{
		InternalID:  r.string("internal_id", "InternalID", true),
		Username:    r.string("username", "Username", true),
		DisplayName: r.string("display_name", "DisplayName", true),
		DateOfBirth: r.string("date_of_birth", "DateOfBirth", true),
		Gender:      r.string("gender", "Gender", false),
		Password:    r.string("password", "Password", false),
	}
	if err := s.validator.check(ctx, &fields, r); err != nil {
		return UserInput{}, err
	}

	if fields.InternalID != nil && !r.errs.Has("internal_id") && s.lookup != nil {
		taken, err := s.lookup.ExistsByInternalID(ctx, *fields.InternalID, opts.InstanceID)
		if err != nil {
			return UserInput{}, fmt.Errorf("validate internal_id: %w", err)
		}
		if taken {
			r.errs.Add("internal_id", Message(opts.Translator, msgUnique, "user", "internal id"))
		}
	}

	if !r.errs.empty() {
		return UserInput{}, r.errs
	}

	in := UserInput{
		InternalID:  fields.InternalID,
		Username:    fields.Username,
		DisplayName: fields.DisplayName,
		Password:    fields.Password,
	}
	if fields.DateOfBirth != nil {
		d, err := entities.ParseDate(*fields.DateOfBirth)
		if err != nil {
			return UserInput{}, fmt.Errorf("parse validated date_of_birth: %w", err)
		}
		in.DateOfBirth = &d
	}
	if fields.Gender != nil {
		g := entities.Gender(*fields.Gender)
		in.Gender = &g
	}
	return in, nil
}

// SerializeUser returns the readable fields of u.
func SerializeUser(u *entities.User) UserRepresentation {
	return UserRepresentation{
		ID:          u.ID,
		InternalID:  u.InternalID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		DateOfBirth: u.DateOfBirth,
		Gender:      u.Gender,
	}
}

// SerializeUsers never returns nil so an empty list encodes as [].
func SerializeUsers(users []entities.User) []UserRepresentation {
	out := make([]UserRepresentation, 0, len(users))
	for i := range users {
		out = append(out, SerializeUser(&users[i]))
	}
	return out
}

// check runs the rule set over the struct fields the reader marked and adds
// each failure to the reader's errors.
func (v *Validator) check(ctx context.Context, fields any, r *fieldReader) error {
	err := v.validate.StructPartialCtx(ctx, fields, r.checked...)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		r.errs.Add(fe.Field(), fe.Translate(r.trans))
	}
	return nil
}
