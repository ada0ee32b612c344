package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/internal/service/auth"
)

type authService interface {
	RegisterBuyer(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	RegisterSeller(ctx context.Context, input auth.RegisterSellerInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	AdminLogin(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*auth.Profile, error)
	UpdateProfile(ctx context.Context, input auth.UpdateProfileInput) (*domain.User, error)
}

// AuthHandler serves registration, login and session endpoints.
type AuthHandler struct {
	svc    authService
	upload uploader
	log    *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, store fileStore, limits UploadLimits, logger *slog.Logger) *AuthHandler {
	log := logger.With("handler", "auth")
	return &AuthHandler{
		svc:    svc,
		upload: newUploader(store, limits, log),
		log:    log,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

func (r registerRequest) input() auth.RegisterInput {
	return auth.RegisterInput{Name: r.Name, Email: r.Email, Password: r.Password, Phone: r.Phone}
}

type registerSellerRequest struct {
	registerRequest
	BusinessName  string `json:"businessName"`
	ServiceBranch string `json:"serviceBranch"`
	Rank          string `json:"rank"`
	ServiceNumber string `json:"serviceNumber"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	City          string `json:"city"`
	State         string `json:"state"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type updateMeRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

type authResponse struct {
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
	User         userDTO    `json:"user"`
	Seller       *sellerDTO `json:"seller,omitempty"`
}

type profileResponse struct {
	User   userDTO    `json:"user"`
	Seller *sellerDTO `json:"seller,omitempty"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.RegisterBuyer(r.Context(), req.input())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, toAuthResponse(result))
}

// RegisterSeller handles POST /api/auth/register/seller. Accepts JSON or a
// multipart form with verification files under "documents".
func (h *AuthHandler) RegisterSeller(w http.ResponseWriter, r *http.Request) {
	var (
		req   registerSellerRequest
		files []domain.StoredFile
		docs  []domain.DocumentUpload
	)
	if isMultipart(r) {
		if err := h.upload.parseForm(w, r); err != nil {
			handleError(w, r, h.log, err)
			return
		}
		req = registerSellerRequest{
			registerRequest: registerRequest{
				Name:     r.FormValue("name"),
				Email:    r.FormValue("email"),
				Password: r.FormValue("password"),
				Phone:    r.FormValue("phone"),
			},
			BusinessName:  r.FormValue("businessName"),
			ServiceBranch: r.FormValue("serviceBranch"),
			Rank:          r.FormValue("rank"),
			ServiceNumber: r.FormValue("serviceNumber"),
			Category:      r.FormValue("category"),
			Description:   r.FormValue("description"),
			City:          r.FormValue("city"),
			State:         r.FormValue("state"),
		}
		var err error
		if files, err = h.upload.save(r, "documents", "documents"); err != nil {
			handleError(w, r, h.log, err)
			return
		}
		docs = documentUploads(files, formList(r, "documentTypes"))
	} else if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.RegisterSeller(r.Context(), auth.RegisterSellerInput{
		RegisterInput: req.input(),
		BusinessName:  req.BusinessName,
		ServiceBranch: req.ServiceBranch,
		Rank:          req.Rank,
		ServiceNumber: req.ServiceNumber,
		Category:      req.Category,
		Description:   req.Description,
		City:          req.City,
		State:         req.State,
		Documents:     docs,
	})
	if err != nil {
		h.upload.discard(r.Context(), files)
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, toAuthResponse(result))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, h.svc.Login)
}

// AdminLogin handles POST /api/auth/admin/login.
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, h.svc.AdminLogin)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request,
	fn func(context.Context, auth.LoginInput) (*auth.AuthResult, error),
) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := fn(r.Context(), auth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toAuthResponse(result))
}

// Refresh handles POST /api/auth/refresh.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Refresh(r.Context(), auth.RefreshInput{RefreshToken: req.RefreshToken})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toAuthResponse(result))
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeMessage(w, "Logged out successfully")
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Me(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	resp := profileResponse{User: toUser(p.User)}
	if p.Seller != nil {
		s := toSeller(p.Seller)
		resp.Seller = &s
	}
	writeData(w, http.StatusOK, resp)
}

// UpdateMe handles PUT /api/auth/me.
func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateMeRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), auth.UpdateProfileInput{Name: req.Name, Phone: req.Phone})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toUser(u))
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	resp := authResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		User:         toUser(result.User),
	}
	if result.Seller != nil {
		s := toSeller(result.Seller)
		resp.Seller = &s
	}
	return resp
}
