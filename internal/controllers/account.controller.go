package controllers

import (
	"errors"
	"net/http"
	"strings"

	"healthmate/internal/apperr"
	"healthmate/internal/auth"
	"healthmate/internal/models"
	"healthmate/internal/repository"
	"healthmate/internal/utils"

	"github.com/gin-gonic/gin"
)

const maxFullNameLength = 100

type RegisterRequest struct {
	Email             string   `json:"email" binding:"required,email" example:"amina@example.com"`
	Password          string   `json:"password" binding:"required,min=6,max=72" example:"secret123"`
	FullName          string   `json:"fullName" binding:"required" example:"Amina Khan"`
	DateOfBirth       string   `json:"dateOfBirth" example:"1990-04-12"`
	BloodGroup        string   `json:"bloodGroup" example:"O+"`
	Allergies         []string `json:"allergies"`
	ChronicConditions []string `json:"chronicConditions"`
	EmergencyContact  string   `json:"emergencyContact"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"amina@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// ProfileUpdateRequest only changes the keys present in the body. A JSON
// null clears the field.
type ProfileUpdateRequest struct {
	FullName          models.Optional[string]   `json:"fullName" swaggertype:"string"`
	DateOfBirth       models.Optional[string]   `json:"dateOfBirth" swaggertype:"string"`
	BloodGroup        models.Optional[string]   `json:"bloodGroup" swaggertype:"string"`
	Allergies         models.Optional[[]string] `json:"allergies" swaggertype:"array,string"`
	ChronicConditions models.Optional[[]string] `json:"chronicConditions" swaggertype:"array,string"`
	EmergencyContact  models.Optional[string]   `json:"emergencyContact" swaggertype:"string"`
	GeminiAPIKey      models.Optional[string]   `json:"geminiApiKey" swaggertype:"string"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type AccountController struct {
	Responder
	users  repository.UserRepository
	tokens *auth.TokenManager
}

func NewAccountController(users repository.UserRepository, tokens *auth.TokenManager, r Responder) *AccountController {
	return &AccountController{Responder: r, users: users, tokens: tokens}
}

// Register godoc
// @Summary Register a new account
// @Description Create a user and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param account body RegisterRequest true "Account data"
// @Success 201 {object} map[string]interface{} "User registered successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data or user already exists"
// @Router /auth/register [post]
func (ac *AccountController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ac.badRequest(c, err)
		return
	}

	user, err := newUserFrom(req)
	if err != nil {
		ac.respondError(c, err)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		// max=72 counts characters; bcrypt's limit is in bytes
		ac.respondError(c, apperr.Validation("Password must be at most 72 bytes"))
		return
	}
	if err != nil {
		ac.respondError(c, apperr.Internal("Failed to register user", err))
		return
	}
	user.Password = hash

	if err := ac.users.Create(c.Request.Context(), user); err != nil {
		ac.respondError(c, err)
		return
	}

	token, err := ac.tokens.Issue(user.ID)
	if err != nil {
		ac.respondError(c, apperr.Internal("Failed to issue token", err))
		return
	}
	ac.success(c, http.StatusCreated, "User registered successfully", AuthResponse{Token: token, User: user})
}

func newUserFrom(req RegisterRequest) (*models.User, error) {
	name := strings.TrimSpace(req.FullName)
	if name == "" {
		return nil, apperr.Validation("Full name is required")
	}
	if len([]rune(name)) > maxFullNameLength {
		return nil, apperr.Validation("Full name is too long")
	}

	user := &models.User{
		Email:             strings.TrimSpace(req.Email),
		FullName:          name,
		Allergies:         cleanList(req.Allergies),
		ChronicConditions: cleanList(req.ChronicConditions),
	}
	if v := strings.TrimSpace(req.DateOfBirth); v != "" {
		dob, err := utils.ParseDate(v)
		if err != nil {
			return nil, err
		}
		user.DateOfBirth = &dob
	}
	if v := strings.TrimSpace(req.BloodGroup); v != "" {
		if !models.ValidBloodGroup(v) {
			return nil, apperr.Validation("Invalid blood group")
		}
		user.BloodGroup = &v
	}
	if v := strings.TrimSpace(req.EmergencyContact); v != "" {
		user.EmergencyContact = &v
	}
	return user, nil
}

// Login godoc
// @Summary Log in
// @Description Exchange email and password for a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "Login successful"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (ac *AccountController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ac.badRequest(c, err)
		return
	}

	user, err := ac.users.FindByEmail(c.Request.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			ac.fail(c, http.StatusUnauthorized, "Invalid credentials", "Email or password is incorrect")
			return
		}
		ac.respondError(c, err)
		return
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		ac.fail(c, http.StatusUnauthorized, "Invalid credentials", "Email or password is incorrect")
		return
	}

	token, err := ac.tokens.Issue(user.ID)
	if err != nil {
		ac.respondError(c, apperr.Internal("Failed to issue token", err))
		return
	}
	ac.success(c, http.StatusOK, "Login successful", AuthResponse{Token: token, User: user})
}

// GetProfile godoc
// @Summary Get the current profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /auth/profile [get]
func (ac *AccountController) GetProfile(c *gin.Context) {
	user, ok := ac.currentUser(c)
	if !ok {
		return
	}
	ac.success(c, http.StatusOK, "Profile retrieved successfully", user)
}

// UpdateProfile godoc
// @Summary Update the current profile
// @Description Only supplied fields change; null clears a field
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body ProfileUpdateRequest true "Fields to change"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Router /auth/profile [put]
func (ac *AccountController) UpdateProfile(c *gin.Context) {
	user, ok := ac.currentUser(c)
	if !ok {
		return
	}

	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ac.badRequest(c, err)
		return
	}

	patch, err := req.patch()
	if err != nil {
		ac.respondError(c, err)
		return
	}

	updated, err := ac.users.Update(c.Request.Context(), user.ID, patch)
	if err != nil {
		ac.respondError(c, err)
		return
	}
	ac.success(c, http.StatusOK, "Profile updated successfully", updated)
}

func (req ProfileUpdateRequest) patch() (models.Patch, error) {
	p := models.Patch{}

	if req.FullName.Set {
		name := strings.TrimSpace(req.FullName.Value)
		if req.FullName.Null || name == "" {
			return nil, apperr.Validation("Full name cannot be empty")
		}
		if len([]rune(name)) > maxFullNameLength {
			return nil, apperr.Validation("Full name is too long")
		}
		p["full_name"] = name
	}

	if req.DateOfBirth.Set {
		if req.DateOfBirth.Null || strings.TrimSpace(req.DateOfBirth.Value) == "" {
			p["date_of_birth"] = nil
		} else {
			dob, err := utils.ParseDate(req.DateOfBirth.Value)
			if err != nil {
				return nil, err
			}
			p["date_of_birth"] = &dob
		}
	}

	if req.BloodGroup.Set {
		group := strings.TrimSpace(req.BloodGroup.Value)
		switch {
		case req.BloodGroup.Null || group == "":
			p["blood_group"] = nil
		case !models.ValidBloodGroup(group):
			return nil, apperr.Validation("Invalid blood group")
		default:
			p["blood_group"] = group
		}
	}

	if req.Allergies.Set {
		p["allergies"] = cleanList(req.Allergies.Value)
	}
	if req.ChronicConditions.Set {
		p["chronic_conditions"] = cleanList(req.ChronicConditions.Value)
	}

	optionalText(p, "emergency_contact", req.EmergencyContact)
	optionalText(p, "gemini_api_key", req.GeminiAPIKey)
	return p, nil
}

// optionalText stores a trimmed value, or NULL for null and blank input.
func optionalText(p models.Patch, column string, o models.Optional[string]) {
	if !o.Set {
		return
	}
	v := strings.TrimSpace(o.Value)
	if o.Null || v == "" {
		p[column] = nil
		return
	}
	p[column] = v
}

// cleanList trims entries and drops blanks. The result is never nil.
func cleanList(in []string) models.StringList {
	out := models.StringList{}
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
