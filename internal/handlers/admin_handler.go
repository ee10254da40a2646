package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cheflinkhq/chef-marketplace/internal/audit"
	"github.com/cheflinkhq/chef-marketplace/internal/cache"
	"github.com/cheflinkhq/chef-marketplace/internal/httperr"
	"github.com/cheflinkhq/chef-marketplace/internal/httpresp"
	"github.com/cheflinkhq/chef-marketplace/internal/middleware"
	"github.com/cheflinkhq/chef-marketplace/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	db    *gorm.DB
	cache *cache.ChefListCache
	audit *audit.Dispatcher
}

func NewAdminHandler(db *gorm.DB, listCache *cache.ChefListCache, dispatcher *audit.Dispatcher) *AdminHandler {
	return &AdminHandler{db: db, cache: listCache, audit: dispatcher}
}

// ======================================================
// VERIFICATION QUEUE
// ======================================================

func (h *AdminHandler) ListPendingChefs(c *gin.Context) {
	var chefs []models.ChefProfile
	if err := h.db.
		Preload("User").
		Where("is_verified = ?", false).
		Find(&chefs).Error; err != nil {
		httperr.Internal(c, "chef_list_failed", "Could not list pending chefs.")
		return
	}

	httpresp.List(c, chefs)
}

func (h *AdminHandler) ApproveChef(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Profile id must be numeric.")
		return
	}

	var profile models.ChefProfile
	if err := h.db.First(&profile, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "chef_not_found", "Chef not found.")
			return
		}
		httperr.Internal(c, "chef_lookup_failed", "Could not load the chef.")
		return
	}

	profile.IsVerified = true
	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "chef_save_failed", "Could not approve the chef.")
		return
	}

	h.cache.Invalidate(c.Request.Context())
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   audit.ActionChefApproved,
		Entity:   "chef_profile",
		EntityID: &profile.ID,
	})

	httpresp.OK(c, gin.H{"message": "Chef approved"})
}

// RejectChef hard-deletes the profile. The chef keeps their login but
// loses all onboarding data and starts from scratch.
func (h *AdminHandler) RejectChef(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Profile id must be numeric.")
		return
	}

	var profile models.ChefProfile
	if err := h.db.First(&profile, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "chef_not_found", "Chef not found.")
			return
		}
		httperr.Internal(c, "chef_lookup_failed", "Could not load the chef.")
		return
	}

	if err := h.db.Delete(&profile).Error; err != nil {
		httperr.Internal(c, "chef_delete_failed", "Could not reject the chef.")
		return
	}

	h.cache.Invalidate(c.Request.Context())
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   audit.ActionChefRejected,
		Entity:   "chef_profile",
		EntityID: &profile.ID,
	})

	httpresp.OK(c, gin.H{"message": "Chef rejected"})
}

// ======================================================
// AUDIT LOGS
// ======================================================

func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")

	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "50")

	page, _ := strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.Model(&models.AuditLog{})
	if action != "" {
		q = q.Where("action = ?", action)
	}
	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Could not count audit logs.")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "audit_list_failed", "Could not list audit logs.")
		return
	}

	httpresp.OK(c, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
