package httpapi

import (
	"errors"
	"net/http"

	"resqline.org/internal/audit"
	"resqline.org/internal/auth"
)

type signupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Location  string `json:"location"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userPayload is the response projection of a user. It deliberately has no
// password field of any kind.
type userPayload struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Location  string `json:"location"`
}

type authResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    userPayload `json:"user"`
}

func publicUser(u *auth.User) userPayload {
	return userPayload{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		Location:  u.Location,
	}
}

func (a *API) handleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req signupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	session, err := a.auth.Signup(r.Context(), auth.SignupParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		Role:      req.Role,
		Location:  req.Location,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingField):
			writeError(w, r, http.StatusBadRequest, "All fields are required")
		case errors.Is(err, auth.ErrAlreadyExists):
			writeError(w, r, http.StatusBadRequest, "User with this email already exists")
		default:
			writeError(w, r, http.StatusInternalServerError, "Server error during registration")
		}
		return
	}

	_ = audit.LogEvent(r.Context(), "auth.signup", map[string]any{
		"user_id": session.User.ID,
		"email":   session.User.Email,
		"role":    session.User.Role,
	})

	writeJSON(w, http.StatusCreated, authResponse{
		Success: true,
		Message: "User registered successfully",
		Token:   session.Token,
		User:    publicUser(session.User),
	})
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	session, err := a.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingField):
			writeError(w, r, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, auth.ErrInvalidCredentials):
			// Same status and message whether the email is unknown or the
			// password is wrong.
			writeError(w, r, http.StatusUnauthorized, "Invalid email or password")
		default:
			writeError(w, r, http.StatusInternalServerError, "Server error during login")
		}
		return
	}

	_ = audit.LogEvent(r.Context(), "auth.login", map[string]any{
		"user_id": session.User.ID,
		"email":   session.User.Email,
	})

	writeJSON(w, http.StatusOK, authResponse{
		Success: true,
		Message: "Login successful",
		Token:   session.Token,
		User:    publicUser(session.User),
	})
}
