package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/gst-billing-service/internal/model"
	"github.com/ridwanfathin/gst-billing-service/internal/service"
)

// ShopHandler handles HTTP requests for shop-related operations
type ShopHandler struct {
	shopService service.ShopService
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shopService service.ShopService) *ShopHandler {
	return &ShopHandler{
		shopService: shopService,
	}
}

// Register mounts the shop routes on the /api group
func (h *ShopHandler) Register(api *gin.RouterGroup) {
	shops := api.Group("/shop")
	shops.POST("", h.CreateShop)
	shops.GET("", h.ListShops)
	shops.GET("/:id", h.GetShop)
}

// CreateShop handles the POST /api/shop endpoint
// @Summary Register a shop
// @Description Register the seller whose details are printed on invoices
// @Tags shops
// @Accept json
// @Produce json
// @Param shop body model.CreateShopRequest true "Shop details"
// @Success 200 {object} domain.Shop
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /api/shop [post]
func (h *ShopHandler) CreateShop(c *gin.Context) {
	var req model.CreateShopRequest
	if details, err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, err.Error(), details...)
		return
	}

	shop, err := h.shopService.CreateShop(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondServiceError(c, "failed_to_create_shop", err, ErrShopNotFound)
		return
	}

	respondOK(c, shop)
}

// ListShops handles the GET /api/shop endpoint
// @Summary List shops
// @Tags shops
// @Produce json
// @Success 200 {array} domain.Shop
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /api/shop [get]
func (h *ShopHandler) ListShops(c *gin.Context) {
	shops, err := h.shopService.ListShops(c.Request.Context())
	if err != nil {
		respondServiceError(c, "failed_to_list_shops", err, ErrShopNotFound)
		return
	}

	respondOK(c, shops)
}

// GetShop handles the GET /api/shop/{id} endpoint
// @Summary Get a shop
// @Tags shops
// @Produce json
// @Param id path string true "Shop ID"
// @Success 200 {object} domain.Shop
// @Failure 404 {object} model.ErrorResponse "Shop not found"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /api/shop/{id} [get]
func (h *ShopHandler) GetShop(c *gin.Context) {
	shopID, err := getPathParam(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	shop, err := h.shopService.GetShop(c.Request.Context(), shopID)
	if err != nil {
		respondServiceError(c, "failed_to_get_shop", err, ErrShopNotFound)
		return
	}

	respondOK(c, shop)
}
