package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"qrcode_admin_v1/internal/api/dto"
	"qrcode_admin_v1/internal/middleware"
	"qrcode_admin_v1/internal/model"
	"qrcode_admin_v1/internal/service"
)

type ProfileController struct {
	profileService *service.ProfileService
	log            *zap.Logger
}

func NewProfileController(profileService *service.ProfileService, log *zap.Logger) *ProfileController {
	return &ProfileController{profileService: profileService, log: log}
}

// List Profile 列表
// @Summary UTM Profile 列表
// @Description 按 id 升序；查询失败时返回空列表
// @Tags Profile (UTM 模板)
// @Produce json
// @Security SessionToken
// @Success 200 {object} map[string]interface{} "profiles: []dto.ProfileSummary"
// @Router /app/profiles [get]
func (p *ProfileController) List(c *gin.Context) {
	profiles, err := p.profileService.ListProfiles(c.Request.Context(), middleware.GetShop(c))
	if err != nil {
		p.log.Error("list profiles failed", zap.String("shop", middleware.GetShop(c)), zap.Error(err))
		profiles = []dto.ProfileSummary{}
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

// New 新建表单默认值
// @Summary 新建 Profile 表单
// @Tags Profile (UTM 模板)
// @Produce json
// @Security SessionToken
// @Success 200 {object} map[string]interface{} "data"
// @Router /app/profiles/new [get]
func (p *ProfileController) New(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": model.BlankRecord("Profile")})
}

// Create 新建 Profile
// @Summary 新建 Profile
// @Tags Profile (UTM 模板)
// @Accept json
// @Produce json
// @Security SessionToken
// @Param request body dto.ProfileForm true "Profile 表单"
// @Success 201 {object} map[string]interface{} "data: model.Profile"
// @Failure 422 {object} map[string]interface{} "errors: 字段 -> 提示"
// @Router /app/profiles [post]
func (p *ProfileController) Create(c *gin.Context) {
	var form dto.ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := p.profileService.CreateOrUpdateProfile(c.Request.Context(), middleware.GetShop(c), &form, 0)
	if err != nil {
		renderError(c, p.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": profile})
}

// Detail Profile 详情
// @Summary Profile 详情
// @Tags Profile (UTM 模板)
// @Produce json
// @Security SessionToken
// @Param id path int true "Profile ID"
// @Success 200 {object} map[string]interface{} "data: model.Profile"
// @Failure 404 {object} map[string]string "不存在"
// @Router /app/profiles/{id} [get]
func (p *ProfileController) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	profile, err := p.profileService.GetProfile(c.Request.Context(), middleware.GetShop(c), id)
	if err != nil {
		renderError(c, p.log, err)
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": profile})
}

// Update 编辑 Profile
// @Summary 编辑 Profile
// @Tags Profile (UTM 模板)
// @Accept json
// @Produce json
// @Security SessionToken
// @Param id path int true "Profile ID"
// @Param request body dto.ProfileForm true "Profile 表单"
// @Success 200 {object} map[string]interface{} "data: model.Profile"
// @Failure 404 {object} map[string]string "不存在"
// @Failure 422 {object} map[string]interface{} "errors: 字段 -> 提示"
// @Router /app/profiles/{id} [put]
func (p *ProfileController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var form dto.ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := p.profileService.CreateOrUpdateProfile(c.Request.Context(), middleware.GetShop(c), &form, id)
	if err != nil {
		renderError(c, p.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": profile})
}

// Delete 删除 Profile
// @Summary 删除 Profile
// @Description 引用它的二维码保留，profile 引用置空
// @Tags Profile (UTM 模板)
// @Produce json
// @Security SessionToken
// @Param id path int true "Profile ID"
// @Success 200 {object} dto.DeleteResult
// @Failure 404 {object} dto.DeleteResult
// @Failure 500 {object} dto.DeleteResult
// @Router /app/profiles/{id} [delete]
func (p *ProfileController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	shop := middleware.GetShop(c)
	if err := p.profileService.DeleteProfile(c.Request.Context(), shop, id); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrNotFound) {
			status = http.StatusNotFound
		} else {
			p.log.Error("delete profile failed", zap.String("shop", shop), zap.Int64("profile_id", id), zap.Error(err))
		}
		c.JSON(status, dto.DeleteResult{Success: false, Error: "Failed to delete profile"})
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResult{Success: true})
}

// BulkDelete 批量删除
// @Summary 批量删除 Profile
// @Description 表单字段 ids=1,2,3，成功后 303 跳回列表
// @Tags Profile (UTM 模板)
// @Accept x-www-form-urlencoded
// @Security SessionToken
// @Param ids formData string true "逗号分隔的 ID"
// @Success 303 "跳转 /app/profiles"
// @Failure 400 {object} map[string]string "ID 格式错误"
// @Failure 500 {object} dto.DeleteResult
// @Router /app/profiles/delete [post]
func (p *ProfileController) BulkDelete(c *gin.Context) {
	var req dto.BulkDeleteReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ids, err := parseIDs(req.IDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shop := middleware.GetShop(c)
	if _, err := p.profileService.DeleteProfiles(c.Request.Context(), shop, ids); err != nil {
		p.log.Error("delete profiles failed", zap.String("shop", shop), zap.Int64s("profile_ids", ids), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.DeleteResult{Success: false, Error: "Failed to delete profiles"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/app/profiles")
}
