package handler

import (
	"github.com/framelight/studio-api/internal/application/service"
	"github.com/framelight/studio-api/internal/domain/enum"
	"github.com/framelight/studio-api/internal/presentation/http/dto/request"
	"github.com/framelight/studio-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler handles service package and addon HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListPackages handles listing the package catalog
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	packages, err := h.catalogService.ListPackages(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Packages retrieved successfully", packages)
}

// CreatePackage handles creating a service package
func (h *CatalogHandler) CreatePackage(c *gin.Context) {
	var req request.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	pkg, err := h.catalogService.CreatePackage(c.Request.Context(), &service.CreatePackageInput{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Deliverables: req.Deliverables,
		IsPopular:    req.IsPopular,
		Category:     enum.PackageCategory(req.Category),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Package created successfully", pkg)
}

// GetPackage handles getting a single package
func (h *CatalogHandler) GetPackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid package ID")
		return
	}

	pkg, err := h.catalogService.GetPackage(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Package retrieved successfully", pkg)
}

// UpdatePackage handles updating a service package
func (h *CatalogHandler) UpdatePackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid package ID")
		return
	}

	var req request.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdatePackageInput{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Deliverables: req.Deliverables,
		IsPopular:    req.IsPopular,
	}
	if req.Category != nil {
		category := enum.PackageCategory(*req.Category)
		input.Category = &category
	}

	pkg, err := h.catalogService.UpdatePackage(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Package updated successfully", pkg)
}

// DeletePackage handles deleting a service package
func (h *CatalogHandler) DeletePackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid package ID")
		return
	}

	if err := h.catalogService.DeletePackage(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListAddons handles listing the addon catalog
func (h *CatalogHandler) ListAddons(c *gin.Context) {
	addons, err := h.catalogService.ListAddons(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Addons retrieved successfully", addons)
}

// CreateAddon handles creating an addon
func (h *CatalogHandler) CreateAddon(c *gin.Context) {
	var req request.CreateAddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	addon, err := h.catalogService.CreateAddon(c.Request.Context(), &service.CreateAddonInput{
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		IsTaxable:   req.IsTaxable,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Addon created successfully", addon)
}

// GetAddon handles getting a single addon
func (h *CatalogHandler) GetAddon(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid addon ID")
		return
	}

	addon, err := h.catalogService.GetAddon(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Addon retrieved successfully", addon)
}

// UpdateAddon handles updating an addon
func (h *CatalogHandler) UpdateAddon(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid addon ID")
		return
	}

	var req request.UpdateAddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	addon, err := h.catalogService.UpdateAddon(c.Request.Context(), &service.UpdateAddonInput{
		ID:          id,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		IsTaxable:   req.IsTaxable,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Addon updated successfully", addon)
}

// DeleteAddon handles deleting an addon
func (h *CatalogHandler) DeleteAddon(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid addon ID")
		return
	}

	if err := h.catalogService.DeleteAddon(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
