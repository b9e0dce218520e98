package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"qrcode_admin_v1/internal/api/dto"
	"qrcode_admin_v1/internal/middleware"
	"qrcode_admin_v1/internal/model"
	"qrcode_admin_v1/internal/service"
)

type QRCodeController struct {
	qrCodeService  *service.QRCodeService
	enrichService  *service.EnrichService
	profileService *service.ProfileService
	log            *zap.Logger
}

func NewQRCodeController(qrCodeService *service.QRCodeService, enrichService *service.EnrichService, profileService *service.ProfileService, log *zap.Logger) *QRCodeController {
	return &QRCodeController{
		qrCodeService:  qrCodeService,
		enrichService:  enrichService,
		profileService: profileService,
		log:            log,
	}
}

// List 二维码列表
// @Summary 二维码列表
// @Description 当前店铺的全部二维码 (按 id 倒序)，附带商品信息、落地地址和二维码图片
// @Tags QRCode (二维码)
// @Produce json
// @Security SessionToken
// @Success 200 {object} map[string]interface{} "data: []dto.EnrichedQRCode"
// @Failure 502 {object} map[string]string "Shopify 调用失败"
// @Router /app/qrcodes [get]
func (q *QRCodeController) List(c *gin.Context) {
	list, err := q.enrichService.ListEnriched(c.Request.Context(), middleware.GetShop(c))
	if err != nil {
		renderError(c, q.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

// New 新建表单默认值
// @Summary 新建二维码表单
// @Description 返回空白表单和可选的 UTM Profile
// @Tags QRCode (二维码)
// @Produce json
// @Security SessionToken
// @Success 200 {object} map[string]interface{} "data + profiles"
// @Router /app/qrcodes/new [get]
func (q *QRCodeController) New(c *gin.Context) {
	form := model.BlankRecord("QRCode")
	form["productDeleted"] = false
	form["productTitle"] = ""
	form["productImage"] = ""
	form["productAlt"] = ""
	form["destinationUrl"] = ""
	form["image"] = ""

	profiles, err := q.profileService.ListProfiles(c.Request.Context(), middleware.GetShop(c))
	if err != nil {
		q.log.Warn("list profiles for new qr code failed", zap.Error(err))
		profiles = []dto.ProfileSummary{}
	}

	c.JSON(http.StatusOK, gin.H{"data": form, "profiles": profiles})
}

// Create 新建二维码
// @Summary 新建二维码
// @Tags QRCode (二维码)
// @Accept json
// @Produce json
// @Security SessionToken
// @Param request body dto.QRCodeForm true "二维码表单"
// @Success 201 {object} map[string]interface{} "data: model.QRCode"
// @Failure 400 {object} map[string]string "参数错误"
// @Failure 422 {object} map[string]interface{} "errors: 字段 -> 提示"
// @Router /app/qrcodes [post]
func (q *QRCodeController) Create(c *gin.Context) {
	var form dto.QRCodeForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	qr, err := q.qrCodeService.CreateOrUpdate(c.Request.Context(), middleware.GetShop(c), &form, 0)
	if err != nil {
		renderError(c, q.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": qr})
}

// Detail 二维码详情
// @Summary 二维码详情
// @Tags QRCode (二维码)
// @Produce json
// @Security SessionToken
// @Param id path int true "二维码 ID"
// @Success 200 {object} map[string]interface{} "data: dto.EnrichedQRCode"
// @Failure 404 {object} map[string]string "不存在"
// @Router /app/qrcodes/{id} [get]
func (q *QRCodeController) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	data, err := q.enrichService.GetEnriched(c.Request.Context(), middleware.GetShop(c), id)
	if err != nil {
		renderError(c, q.log, err)
		return
	}
	if data == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// Update 编辑二维码
// @Summary 编辑二维码
// @Description 表单与已保存内容一致时不写库
// @Tags QRCode (二维码)
// @Accept json
// @Produce json
// @Security SessionToken
// @Param id path int true "二维码 ID"
// @Param request body dto.QRCodeForm true "二维码表单"
// @Success 200 {object} map[string]interface{} "data: model.QRCode"
// @Failure 404 {object} map[string]string "不存在"
// @Failure 422 {object} map[string]interface{} "errors: 字段 -> 提示"
// @Router /app/qrcodes/{id} [put]
func (q *QRCodeController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var form dto.QRCodeForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	qr, err := q.qrCodeService.CreateOrUpdate(c.Request.Context(), middleware.GetShop(c), &form, id)
	if err != nil {
		renderError(c, q.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": qr})
}

// Delete 删除二维码
// @Summary 删除二维码
// @Tags QRCode (二维码)
// @Produce json
// @Security SessionToken
// @Param id path int true "二维码 ID"
// @Success 200 {object} dto.DeleteResult
// @Failure 404 {object} map[string]string "不存在"
// @Router /app/qrcodes/{id} [delete]
func (q *QRCodeController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := q.qrCodeService.DeleteQRCode(c.Request.Context(), middleware.GetShop(c), id); err != nil {
		renderError(c, q.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResult{Success: true})
}

// BulkDelete 批量删除
// @Summary 批量删除二维码
// @Description 表单字段 ids=1,2,3，成功后 303 跳回列表
// @Tags QRCode (二维码)
// @Accept x-www-form-urlencoded
// @Security SessionToken
// @Param ids formData string true "逗号分隔的 ID"
// @Success 303 "跳转 /app/qrcodes"
// @Failure 400 {object} map[string]string "ID 格式错误"
// @Router /app/qrcodes/delete [post]
func (q *QRCodeController) BulkDelete(c *gin.Context) {
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

	if _, err := q.qrCodeService.DeleteQRCodes(c.Request.Context(), middleware.GetShop(c), ids); err != nil {
		renderError(c, q.log, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/app/qrcodes")
}
