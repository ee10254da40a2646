package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cheflinkhq/chef-marketplace/internal/audit"
	"github.com/cheflinkhq/chef-marketplace/internal/cache"
	"github.com/cheflinkhq/chef-marketplace/internal/httperr"
	"github.com/cheflinkhq/chef-marketplace/internal/httpresp"
	"github.com/cheflinkhq/chef-marketplace/internal/media"
	"github.com/cheflinkhq/chef-marketplace/internal/middleware"
	"github.com/cheflinkhq/chef-marketplace/internal/models"
	"github.com/cheflinkhq/chef-marketplace/internal/storage"
)

// ======================================================
// HANDLER
// ======================================================

type ChefHandler struct {
	db    *gorm.DB
	store storage.Backend
	cache *cache.ChefListCache
	audit *audit.Dispatcher
}

func NewChefHandler(
	db *gorm.DB,
	store storage.Backend,
	listCache *cache.ChefListCache,
	dispatcher *audit.Dispatcher,
) *ChefHandler {
	return &ChefHandler{
		db:    db,
		store: store,
		cache: listCache,
		audit: dispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// UpsertProfileRequest uses pointers so a partial payload only touches
// the fields it carries.
type UpsertProfileRequest struct {
	Bio             *string           `json:"bio"`
	Specialties     []string          `json:"specialties"`
	ExperienceYears *int              `json:"experience_years"`
	HourlyRate      *float64          `json:"hourly_rate"`
	Location        *string           `json:"location"`
	IsOnline        *bool             `json:"is_online"`
	Menu            []models.MenuItem `json:"menu"`
	menuSupplied    bool
}

type AddMenuItemRequest struct {
	Name        string  `json:"name" form:"name" binding:"required"`
	Price       float64 `json:"price" form:"price"`
	Description string  `json:"description" form:"description"`

	// Image carries a URL on the JSON path only. Multipart requests send
	// the picture as a file part named "image", which must never bind
	// into this string field.
	Image string `json:"image" form:"-"`
}

// ======================================================
// CREATE / UPDATE (upsert, lazy profile creation)
// ======================================================

func (h *ChefHandler) UpsertProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role != models.RoleChef {
		httperr.Forbidden(c, "not_a_chef", "Only chef accounts can manage a chef profile.")
		return
	}

	req, idProof, err := h.parseUpsertRequest(c)
	if err != nil {
		// malformed menu fails the whole update, it is never silently dropped
		httperr.BadRequest(c, "invalid_request", "Profile payload is malformed.")
		return
	}

	var profile models.ChefProfile
	err = h.db.Where("user_id = ?", userID).First(&profile).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// first touch creates the profile; registration never does
		profile = models.ChefProfile{
			UserID:     userID,
			HourlyRate: 500,
			Location:   "Unknown",
		}
	case err != nil:
		httperr.Internal(c, "profile_lookup_failed", "Could not load the profile.")
		return
	}

	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Specialties != nil {
		profile.Specialties = req.Specialties
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}
	if req.HourlyRate != nil {
		profile.HourlyRate = *req.HourlyRate
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.IsOnline != nil {
		profile.IsOnline = *req.IsOnline
	}
	if req.menuSupplied {
		profile.Menu = req.Menu
	}

	if idProof != nil {
		path, err := h.saveUpload(c, "idproof", idProof)
		if err != nil {
			writeUploadError(c, err)
			return
		}
		profile.Documents = append(profile.Documents, models.Document{
			DocType:  "id_proof",
			FilePath: path,
		})
		// any new identity document forces re-review
		profile.IsVerified = false
	}

	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "profile_save_failed", "Could not save the profile.")
		return
	}

	h.cache.Invalidate(c.Request.Context())

	if idProof != nil {
		h.audit.Dispatch(audit.Event{
			UserID:   &userID,
			Action:   audit.ActionDocumentUploaded,
			Entity:   "chef_profile",
			EntityID: &profile.ID,
		})
	}

	httpresp.OK(c, profile)
}

// parseUpsertRequest accepts either a JSON body or a multipart form.
// Multipart carries scalar fields as form values and menu/specialties as
// JSON-encoded strings (the way browser FormData submits them).
func (h *ChefHandler) parseUpsertRequest(c *gin.Context) (*UpsertProfileRequest, *multipart.FileHeader, error) {
	req := &UpsertProfileRequest{}

	ct := c.ContentType()
	if !strings.HasPrefix(ct, "multipart/form-data") {
		dec := json.NewDecoder(c.Request.Body)
		var raw map[string]json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, err
		}
		// a JSON null leaves the stored menu alone; only an explicit
		// array (possibly empty) replaces it
		if rawMenu, ok := raw["menu"]; ok && string(rawMenu) != "null" {
			req.menuSupplied = true
			if err := json.Unmarshal(rawMenu, &req.Menu); err != nil {
				return nil, nil, err
			}
		}
		full, _ := json.Marshal(raw)
		if err := json.Unmarshal(full, req); err != nil {
			return nil, nil, err
		}
		return req, nil, nil
	}

	if v, ok := c.GetPostForm("bio"); ok {
		req.Bio = &v
	}
	if v, ok := c.GetPostForm("location"); ok {
		req.Location = &v
	}
	if v, ok := c.GetPostForm("experience_years"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, nil, err
		}
		req.ExperienceYears = &n
	}
	if v, ok := c.GetPostForm("hourly_rate"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, nil, err
		}
		req.HourlyRate = &f
	}
	if v, ok := c.GetPostForm("is_online"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, nil, err
		}
		req.IsOnline = &b
	}
	if v, ok := c.GetPostForm("specialties"); ok {
		if err := json.Unmarshal([]byte(v), &req.Specialties); err != nil {
			return nil, nil, err
		}
	}
	if v, ok := c.GetPostForm("menu"); ok {
		req.menuSupplied = true
		if err := json.Unmarshal([]byte(v), &req.Menu); err != nil {
			return nil, nil, err
		}
	}

	file, err := c.FormFile("id_proof")
	if err != nil {
		// absent file is fine
		return req, nil, nil
	}
	return req, file, nil
}

// ======================================================
// MENU
// ======================================================

func (h *ChefHandler) AddMenuItem(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req AddMenuItemRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A dish name is required.")
		return
	}

	var profile models.ChefProfile
	if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "chef_profile_not_found", "Create your chef profile before adding dishes.")
			return
		}
		httperr.Internal(c, "profile_lookup_failed", "Could not load the profile.")
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := h.saveMenuImage(c, file)
		if err != nil {
			writeUploadError(c, err)
			return
		}
		item.Image = path
	}

	// new dishes go to the end of the menu
	profile.Menu = append(profile.Menu, item)

	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "profile_save_failed", "Could not save the menu.")
		return
	}

	h.cache.Invalidate(c.Request.Context())
	httpresp.OK(c, profile)
}

// ======================================================
// PUBLIC READS
// ======================================================

func (h *ChefHandler) GetVerifiedChefs(c *gin.Context) {
	ctx := c.Request.Context()

	var chefs []models.ChefProfile
	if h.cache.GetVerified(ctx, &chefs) {
		httpresp.List(c, chefs)
		return
	}

	if err := h.db.
		Preload("User").
		Where("is_verified = ?", true).
		Find(&chefs).Error; err != nil {
		httperr.Internal(c, "chef_list_failed", "Could not list chefs.")
		return
	}

	h.cache.SetVerified(ctx, chefs)
	httpresp.List(c, chefs)
}

func (h *ChefHandler) GetChefByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Profile id must be numeric.")
		return
	}

	var profile models.ChefProfile
	if err := h.db.Preload("User").First(&profile, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "chef_not_found", "Chef not found.")
			return
		}
		httperr.Internal(c, "chef_lookup_failed", "Could not load the chef.")
		return
	}

	httpresp.OK(c, profile)
}

func (h *ChefHandler) GetChefByUserID(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "User id must be numeric.")
		return
	}

	var profile models.ChefProfile
	if err := h.db.Preload("User").
		Where("user_id = ?", uint(userID)).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "chef_not_found", "Chef not found.")
			return
		}
		httperr.Internal(c, "chef_lookup_failed", "Could not load the chef.")
		return
	}

	httpresp.OK(c, profile)
}

func (h *ChefHandler) GetMyProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var profile models.ChefProfile
	if err := h.db.Preload("User").
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "chef_profile_not_found", "You have no chef profile yet.")
			return
		}
		httperr.Internal(c, "profile_lookup_failed", "Could not load the profile.")
		return
	}

	httpresp.OK(c, profile)
}

// ======================================================
// UPLOAD HELPERS
// ======================================================

func (h *ChefHandler) saveUpload(c *gin.Context, field string, file *multipart.FileHeader) (string, error) {
	if err := media.ValidateImage(file.Filename, file.Header.Get("Content-Type")); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}

	return h.store.Save(c.Request.Context(), media.StoredName(field, file.Filename), data)
}

// saveMenuImage stores the original and a webp thumbnail next to it.
func (h *ChefHandler) saveMenuImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if err := media.ValidateImage(file.Filename, file.Header.Get("Content-Type")); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}

	name := media.StoredName("menuimg", file.Filename)
	path, err := h.store.Save(c.Request.Context(), name, data)
	if err != nil {
		return "", err
	}

	if thumb, err := media.Thumbnail(data); err == nil {
		// listing pages prefer the thumbnail; losing it is not fatal
		_, _ = h.store.Save(c.Request.Context(), media.ThumbName(name), thumb)
	}

	return path, nil
}

func writeUploadError(c *gin.Context, err error) {
	if httperr.IsBusiness(err, "unsupported_file_type") {
		httperr.BadRequest(c, "unsupported_file_type", "Only jpg, jpeg and png images are accepted.")
		return
	}
	httperr.Internal(c, "upload_failed", "Could not store the uploaded file.")
}
