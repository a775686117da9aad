package api

import (
	"errors"
	"net/http"

	"pet-adoption/internal/domain/account"
	reqdto "pet-adoption/internal/handler/dto/request"
	resdto "pet-adoption/internal/handler/dto/response"
	"pet-adoption/internal/handler/httperr"
	"pet-adoption/internal/pkg/errs"
	"pet-adoption/internal/pkg/flash"
	"pet-adoption/internal/usecase/commands"
	"pet-adoption/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const ownerDashboard = "/owner/dashboard"

var petFormFields = []string{"name", "type", "breed", "age", "gender", "description", "price", "image"}

type PetHandler struct {
	petCommands    commands.PetCommands
	catalogQueries queries.CatalogQueries
}

func NewPetHandler(petCommands commands.PetCommands, catalogQueries queries.CatalogQueries) *PetHandler {
	return &PetHandler{
		petCommands:    petCommands,
		catalogQueries: catalogQueries,
	}
}

// @Summary Owner dashboard
// @Description The caller's available pets and the pets already adopted
// @Tags owner
// @Produce json
// @Success 200 {object} resdto.Page
// @Router /owner/dashboard [get]
func (h *PetHandler) OwnerDashboard(c *gin.Context) {
	owner, ok := principalOf(c, account.KindOwner)
	if !ok {
		return
	}

	view, err := h.catalogQueries.OwnerDashboard(c.Request.Context(), owner.ID)
	if err != nil {
		renderFailure(c, err)
		return
	}
	render(c, view)
}

func (h *PetHandler) AddPetPage(c *gin.Context) {
	render(c, resdto.FormPage{Form: "add_pet", Action: "/owner/pet/add", Fields: petFormFields})
}

// @Summary Add a pet
// @Tags owner
// @Accept multipart/form-data
// @Success 303
// @Router /owner/pet/add [post]
func (h *PetHandler) AddPet(c *gin.Context) {
	const back = "/owner/pet/add"
	owner, ok := principalOf(c, account.KindOwner)
	if !ok {
		return
	}

	var form reqdto.PetForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.AbortWithRedirect(c, back, err, flash.LevelDanger, "Invalid pet details")
		return
	}

	image, closeImage, err := imageUpload(c)
	if err != nil {
		httperr.AbortWithRedirect(c, back, err, flash.LevelDanger, "Could not read uploaded image")
		return
	}
	defer closeImage()

	if _, err := h.petCommands.AddPet(c.Request.Context(), owner.ID, form.ToAddInput(image)); err != nil {
		h.abortPetError(c, back, err)
		return
	}

	httperr.RedirectWithNotice(c, ownerDashboard, flash.LevelSuccess, "Pet added successfully!")
}

func (h *PetHandler) EditPetPage(c *gin.Context) {
	owner, ok := principalOf(c, account.KindOwner)
	if !ok {
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		httperr.AbortWithRedirect(c, ownerDashboard, err, flash.LevelDanger, "Pet not found")
		return
	}

	p, err := h.catalogQueries.GetOwnedPet(c.Request.Context(), owner.ID, id)
	if err != nil {
		if errs.Is(err, queries.ErrPetNotFound) {
			httperr.AbortWithRedirect(c, ownerDashboard, err, flash.LevelDanger, "Pet not found")
			return
		}
		httperr.AbortWithRedirect(c, ownerDashboard, err, flash.LevelDanger, genericFailure)
		return
	}

	render(c, gin.H{
		"form": resdto.FormPage{Form: "edit_pet", Action: "/owner/pet/edit/" + id.String(), Fields: petFormFields},
		"pet":  p,
	})
}

// @Summary Edit a pet
// @Description Only submitted fields change; malformed age or price keeps the current value
// @Tags owner
// @Accept multipart/form-data
// @Param id path string true "Pet ID"
// @Success 303
// @Router /owner/pet/edit/{id} [post]
func (h *PetHandler) EditPet(c *gin.Context) {
	owner, ok := principalOf(c, account.KindOwner)
	if !ok {
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		httperr.AbortWithRedirect(c, ownerDashboard, err, flash.LevelDanger, "Pet not found")
		return
	}
	back := "/owner/pet/edit/" + id.String()

	var form reqdto.PetForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.AbortWithRedirect(c, back, err, flash.LevelDanger, "Invalid pet details")
		return
	}

	image, closeImage, err := imageUpload(c)
	if err != nil {
		httperr.AbortWithRedirect(c, back, err, flash.LevelDanger, "Could not read uploaded image")
		return
	}
	defer closeImage()

	posted := func(field string) bool {
		_, ok := c.GetPostForm(field)
		return ok
	}
	if err := h.petCommands.EditPet(c.Request.Context(), owner.ID, id, form.ToEditInput(posted, image)); err != nil {
		h.abortPetError(c, back, err)
		return
	}

	httperr.RedirectWithNotice(c, ownerDashboard, flash.LevelSuccess, "Pet updated successfully!")
}

// @Summary Delete a pet
// @Tags owner
// @Param id path string true "Pet ID"
// @Success 303
// @Router /owner/pet/delete/{id} [post]
func (h *PetHandler) DeletePet(c *gin.Context) {
	owner, ok := principalOf(c, account.KindOwner)
	if !ok {
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		httperr.AbortWithRedirect(c, ownerDashboard, err, flash.LevelDanger, "Pet not found")
		return
	}

	if err := h.petCommands.DeletePet(c.Request.Context(), owner.ID, id); err != nil {
		h.abortPetError(c, ownerDashboard, err)
		return
	}

	httperr.RedirectWithNotice(c, ownerDashboard, flash.LevelSuccess, "Pet deleted successfully!")
}

func (h *PetHandler) abortPetError(c *gin.Context, back string, err error) {
	switch {
	case errs.Is(err, commands.ErrPetNotFound):
		httperr.AbortWithRedirect(c, ownerDashboard, err, flash.LevelDanger, "Pet not found")
	case errs.Is(err, commands.ErrUnsupportedImage):
		httperr.AbortWithRedirect(c, back, err, flash.LevelDanger, "Invalid file format. Use PNG, JPG, JPEG, GIF, or WebP")
	case errs.Is(err, commands.ErrImageTooLarge):
		httperr.AbortWithRedirect(c, back, err, flash.LevelDanger, "Image is too large")
	case errs.Is(err, commands.ErrPetHasHistory):
		httperr.AbortWithRedirect(c, ownerDashboard, err, flash.LevelWarning, "Pet has an adoption history and cannot be deleted")
	case errs.Is(err, commands.ErrValidation):
		httperr.AbortWithRedirect(c, back, err, flash.LevelDanger, validationMessage(err))
	default:
		httperr.AbortWithRedirect(c, back, err, flash.LevelDanger, genericFailure)
	}
}

// imageUpload returns nil when no file was attached.
func imageUpload(c *gin.Context) (*commands.ImageUpload, func(), error) {
	header, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}
	if header.Filename == "" {
		return nil, func() {}, nil
	}

	f, err := header.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return &commands.ImageUpload{
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Body:        f,
	}, func() { _ = f.Close() }, nil
}
