package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"harvest-guard/internal/advisory"
	"harvest-guard/internal/api/models"
	"harvest-guard/internal/weather"
)

// CatalogHandler serves the enumerations the dashboard's dropdowns need:
// regions, crop types and storage types with localized names.
type CatalogHandler struct {
	sim      *weather.Simulator
	composer *advisory.Composer
}

func NewCatalogHandler(sim *weather.Simulator, composer *advisory.Composer) *CatalogHandler {
	return &CatalogHandler{sim: sim, composer: composer}
}

// ListRegions handles GET /api/v1/regions.
func (h *CatalogHandler) ListRegions(c *gin.Context) {
	names := h.sim.Regions()
	sort.Strings(names)

	regions := make([]models.RegionInfo, 0, len(names))
	for _, name := range names {
		regions = append(regions, models.RegionInfo{Name: name})
	}
	c.JSON(http.StatusOK, gin.H{"regions": regions})
}

// ListCrops handles GET /api/v1/crops.
func (h *CatalogHandler) ListCrops(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"crops": catalogEntries(h.composer.CropNames())})
}

// ListStorageTypes handles GET /api/v1/storage-types.
func (h *CatalogHandler) ListStorageTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"storage_types": catalogEntries(h.composer.StorageNames())})
}

func catalogEntries(table map[string]string) []models.CatalogEntry {
	codes := make([]string, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := make([]models.CatalogEntry, 0, len(codes))
	for _, code := range codes {
		out = append(out, models.CatalogEntry{Code: code, LocalName: table[code]})
	}
	return out
}
