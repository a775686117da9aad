package api

import (
	"pet-adoption/internal/handler/httperr"
	"pet-adoption/internal/pkg/errs"
	"pet-adoption/internal/pkg/flash"
	"pet-adoption/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary List available pets
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.Page
// @Router / [get]
func (h *CatalogHandler) Index(c *gin.Context) {
	pets, err := h.catalogQueries.ListAvailable(c.Request.Context())
	if err != nil {
		renderFailure(c, err)
		return
	}
	render(c, gin.H{"pets": pets})
}

// @Summary Search available pets
// @Description Case-insensitive match on name, type or breed
// @Tags catalog
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {object} resdto.Page
// @Router /search [get]
func (h *CatalogHandler) Search(c *gin.Context) {
	term := c.Query("q")
	pets, err := h.catalogQueries.Search(c.Request.Context(), term)
	if err != nil {
		renderFailure(c, err)
		return
	}
	render(c, gin.H{"pets": pets, "query": term})
}

// @Summary Pet detail
// @Tags catalog
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} resdto.Page
// @Success 303
// @Router /pet/{id} [get]
func (h *CatalogHandler) PetDetail(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httperr.AbortWithRedirect(c, "/", err, flash.LevelDanger, "Pet not found")
		return
	}

	p, err := h.catalogQueries.GetPet(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrPetNotFound) {
			httperr.AbortWithRedirect(c, "/", err, flash.LevelDanger, "Pet not found")
			return
		}
		httperr.AbortWithRedirect(c, "/", err, flash.LevelDanger, genericFailure)
		return
	}
	render(c, gin.H{"pet": p})
}
