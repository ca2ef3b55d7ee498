package v1

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/trackhaus/trackhaus"
	"github.com/trackhaus/trackhaus/errors"
	"github.com/trackhaus/trackhaus/website/shared"
	"golang.org/x/crypto/bcrypt"
)

type credentialsRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type listenerResponse struct {
	Email     string    `json:"email"`
	APIKey    string    `json:"api_key"`
	CreatedAt time.Time `json:"created_at"`
}

func newListenerResponse(l *trackhaus.Listener) listenerResponse {
	return listenerResponse{
		Email:     l.Email,
		APIKey:    l.APIKey,
		CreatedAt: l.CreatedAt,
	}
}

func (a *API) decodeCredentials(r *http.Request) (credentialsRequest, error) {
	const op errors.Op = "website/api/v1.decodeCredentials"

	var req credentialsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		return req, errors.E(op, err)
	}

	err := a.validate.Struct(req)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return req, errors.E(op, errors.InvalidArgument, errors.Info(verrs[0].Field()), err)
		}
		return req, errors.E(op, errors.InvalidArgument, err)
	}
	return req, nil
}

func (a *API) PostRegister(w http.ResponseWriter, r *http.Request) {
	listener, err := a.postRegister(r)
	if err != nil {
		shared.ErrorHandler(w, r, err)
		return
	}

	shared.WriteJSON(w, r, http.StatusCreated, newListenerResponse(listener))
}

func (a *API) postRegister(r *http.Request) (*trackhaus.Listener, error) {
	const op errors.Op = "website/api/v1/API.postRegister"

	req, err := a.decodeCredentials(r)
	if err != nil {
		return nil, errors.E(op, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if errors.IsE(err, bcrypt.ErrPasswordTooLong) {
		return nil, errors.E(op, errors.InvalidArgument, errors.Info("Password"), err)
	}
	if err != nil {
		return nil, errors.E(op, err)
	}

	key, err := trackhaus.NewAPIKey()
	if err != nil {
		return nil, errors.E(op, err)
	}

	listener := trackhaus.Listener{
		Email:        req.Email,
		PasswordHash: string(hash),
		APIKey:       key,
		Active:       true,
		CreatedAt:    a.now().UTC(),
	}

	listener.ID, err = a.storage.Listeners(r.Context()).Create(listener)
	if err != nil {
		return nil, errors.E(op, err)
	}
	return &listener, nil
}

func (a *API) PostLogin(w http.ResponseWriter, r *http.Request) {
	listener, err := a.postLogin(r)
	if err != nil {
		shared.ErrorHandler(w, r, err)
		return
	}

	shared.WriteJSON(w, r, http.StatusOK, newListenerResponse(listener))
}

func (a *API) postLogin(r *http.Request) (*trackhaus.Listener, error) {
	const op errors.Op = "website/api/v1/API.postLogin"

	req, err := a.decodeCredentials(r)
	if err != nil {
		return nil, errors.E(op, err)
	}

	ls := a.storage.Listeners(r.Context())

	listener, err := ls.ByEmail(req.Email)
	if err != nil {
		if errors.Is(errors.ListenerUnknown, err) {
			return nil, errors.E(op, errors.InvalidCredentials)
		}
		return nil, errors.E(op, err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(listener.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, errors.E(op, errors.InvalidCredentials, listener.ID)
	}

	if !listener.Active {
		return nil, errors.E(op, errors.ListenerInactive, listener.ID)
	}

	now := a.now().UTC()
	if err = ls.UpdateLastLogin(listener.ID, now); err != nil {
		return nil, errors.E(op, err, listener.ID)
	}
	listener.LastLoginAt = &now
	return listener, nil
}
