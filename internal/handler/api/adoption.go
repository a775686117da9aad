package api

import (
	"pet-adoption/internal/domain/account"
	"pet-adoption/internal/domain/adoption"
	reqdto "pet-adoption/internal/handler/dto/request"
	"pet-adoption/internal/handler/httperr"
	"pet-adoption/internal/pkg/errs"
	"pet-adoption/internal/pkg/flash"
	"pet-adoption/internal/usecase/commands"
	"pet-adoption/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	userDashboard = "/user/dashboard"
	userPayments  = "/user/payments"
	ownerRequests = "/owner/requests"
)

type AdoptionHandler struct {
	adoptionCommands commands.AdoptionCommands
	adoptionQueries  queries.AdoptionQueries
}

func NewAdoptionHandler(adoptionCommands commands.AdoptionCommands, adoptionQueries queries.AdoptionQueries) *AdoptionHandler {
	return &AdoptionHandler{
		adoptionCommands: adoptionCommands,
		adoptionQueries:  adoptionQueries,
	}
}

// @Summary Request adoption of a pet
// @Tags adoption
// @Accept x-www-form-urlencoded
// @Param id path string true "Pet ID"
// @Param message formData string false "Message to the owner"
// @Success 303
// @Router /adopt/{id} [post]
func (h *AdoptionHandler) Adopt(c *gin.Context) {
	adopter, ok := principalOf(c, account.KindAdopter)
	if !ok {
		return
	}
	petID, err := pathID(c, "id")
	if err != nil {
		httperr.AbortWithRedirect(c, "/", err, flash.LevelDanger, "Pet not found")
		return
	}
	back := "/pet/" + petID.String()

	var form reqdto.AdoptForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.AbortWithRedirect(c, back, err, flash.LevelDanger, "Invalid request")
		return
	}

	_, err = h.adoptionCommands.CreateRequest(c.Request.Context(), adopter.ID, petID, form.Message)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrPetNotFound):
			httperr.AbortWithRedirect(c, "/", err, flash.LevelDanger, "Pet not found")
		case errs.Is(err, commands.ErrPetNotAvailable):
			httperr.AbortWithRedirect(c, back, err, flash.LevelWarning, "Pet is no longer available")
		case errs.Is(err, commands.ErrDuplicatePendingRequest):
			httperr.AbortWithRedirect(c, userDashboard, err, flash.LevelInfo, "You already have a pending request for this pet")
		case errs.Is(err, commands.ErrValidation):
			httperr.AbortWithRedirect(c, back, err, flash.LevelDanger, validationMessage(err))
		default:
			httperr.AbortWithRedirect(c, back, err, flash.LevelDanger, genericFailure)
		}
		return
	}

	httperr.RedirectWithNotice(c, userDashboard, flash.LevelSuccess, "Adoption request sent. Owner will be notified.")
}

// @Summary The caller's adoption requests
// @Tags adoption
// @Produce json
// @Success 200 {object} resdto.Page
// @Router /my_requests [get]
func (h *AdoptionHandler) MyRequests(c *gin.Context) {
	adopter, ok := principalOf(c, account.KindAdopter)
	if !ok {
		return
	}

	requests, err := h.adoptionQueries.AdopterRequests(c.Request.Context(), adopter.ID)
	if err != nil {
		renderFailure(c, err)
		return
	}
	render(c, gin.H{"requests": requests})
}

// @Summary Requests for the caller's pets
// @Tags owner
// @Produce json
// @Success 200 {object} resdto.Page
// @Router /owner/requests [get]
func (h *AdoptionHandler) OwnerRequests(c *gin.Context) {
	owner, ok := principalOf(c, account.KindOwner)
	if !ok {
		return
	}

	requests, err := h.adoptionQueries.OwnerRequests(c.Request.Context(), owner.ID)
	if err != nil {
		renderFailure(c, err)
		return
	}
	render(c, gin.H{"requests": requests})
}

// @Summary Approve or reject a request
// @Tags owner
// @Accept x-www-form-urlencoded
// @Param id path string true "Request ID"
// @Param decision formData string true "approve or reject"
// @Success 303
// @Router /owner/request/decide/{id} [post]
func (h *AdoptionHandler) Decide(c *gin.Context) {
	owner, ok := principalOf(c, account.KindOwner)
	if !ok {
		return
	}
	requestID, err := pathID(c, "id")
	if err != nil {
		httperr.AbortWithRedirect(c, ownerRequests, err, flash.LevelDanger, "Request not found")
		return
	}

	var form reqdto.DecisionForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.AbortWithRedirect(c, ownerRequests, err, flash.LevelDanger, "Invalid decision")
		return
	}

	status, err := h.adoptionCommands.DecideRequest(c.Request.Context(), owner.ID, requestID, form.Decision)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrRequestNotFound):
			httperr.AbortWithRedirect(c, ownerRequests, err, flash.LevelDanger, "Request not found")
		case errs.Is(err, commands.ErrRequestAlreadyDecided):
			httperr.AbortWithRedirect(c, ownerRequests, err, flash.LevelWarning, "Request has already been decided")
		case errs.Is(err, commands.ErrValidation):
			httperr.AbortWithRedirect(c, ownerRequests, err, flash.LevelDanger, "Invalid decision")
		default:
			httperr.AbortWithRedirect(c, ownerRequests, err, flash.LevelDanger, genericFailure)
		}
		return
	}

	msg := "Request rejected!"
	if status == adoption.StatusApproved {
		msg = "Request approved!"
	}
	httperr.RedirectWithNotice(c, ownerRequests, flash.LevelSuccess, msg)
}

// @Summary Approved requests awaiting payment
// @Tags adoption
// @Produce json
// @Success 200 {object} resdto.Page
// @Router /user/payments [get]
func (h *AdoptionHandler) Payments(c *gin.Context) {
	adopter, ok := principalOf(c, account.KindAdopter)
	if !ok {
		return
	}

	payable, err := h.adoptionQueries.PayableRequests(c.Request.Context(), adopter.ID)
	if err != nil {
		renderFailure(c, err)
		return
	}
	render(c, gin.H{"payments": payable})
}

func (h *AdoptionHandler) PaymentPage(c *gin.Context) {
	adopter, ok := principalOf(c, account.KindAdopter)
	if !ok {
		return
	}
	requestID, err := pathID(c, "id")
	if err != nil {
		httperr.AbortWithRedirect(c, userPayments, err, flash.LevelDanger, "Payment request not found")
		return
	}

	payable, err := h.adoptionQueries.PayableRequest(c.Request.Context(), adopter.ID, requestID)
	if err != nil {
		if errs.Is(err, queries.ErrPayableRequestNotFound) {
			httperr.AbortWithRedirect(c, userPayments, err, flash.LevelDanger, "Payment request not found")
			return
		}
		httperr.AbortWithRedirect(c, userPayments, err, flash.LevelDanger, genericFailure)
		return
	}
	render(c, gin.H{"payment": payable})
}

// @Summary Pay for an approved request
// @Description Empty amount pays the listed price. Completes the adoption.
// @Tags adoption
// @Accept x-www-form-urlencoded
// @Param id path string true "Request ID"
// @Param amount formData string false "Amount, e.g. 50.00"
// @Param payment_mode formData string false "Payment mode"
// @Success 303
// @Router /user/payment/{id} [post]
func (h *AdoptionHandler) Pay(c *gin.Context) {
	adopter, ok := principalOf(c, account.KindAdopter)
	if !ok {
		return
	}
	requestID, err := pathID(c, "id")
	if err != nil {
		httperr.AbortWithRedirect(c, userPayments, err, flash.LevelDanger, "Payment request not found")
		return
	}
	back := "/user/payment/" + requestID.String()

	var form reqdto.PaymentForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.AbortWithRedirect(c, back, err, flash.LevelDanger, "Invalid amount")
		return
	}

	_, err = h.adoptionCommands.PayRequest(c.Request.Context(), adopter.ID, requestID, form.ToInput())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrRequestNotFound), errs.Is(err, commands.ErrRequestNotApproved):
			httperr.AbortWithRedirect(c, userPayments, err, flash.LevelDanger, "Payment request not found")
		case errs.Is(err, commands.ErrPetNotAvailable), errs.Is(err, commands.ErrPetNotFound):
			httperr.AbortWithRedirect(c, userPayments, err, flash.LevelWarning, "Pet is no longer available")
		case errs.Is(err, commands.ErrValidation):
			httperr.AbortWithRedirect(c, back, err, flash.LevelDanger, "Invalid amount")
		default:
			httperr.AbortWithRedirect(c, userPayments, err, flash.LevelDanger, "Could not complete payment")
		}
		return
	}

	httperr.RedirectWithNotice(c, userDashboard, flash.LevelSuccess, "Payment successful. Adoption completed!")
}

// @Summary The caller's completed adoptions
// @Tags adoption
// @Produce json
// @Success 200 {object} resdto.Page
// @Router /my_history [get]
func (h *AdoptionHandler) MyHistory(c *gin.Context) {
	adopter, ok := principalOf(c, account.KindAdopter)
	if !ok {
		return
	}

	history, err := h.adoptionQueries.History(c.Request.Context(), adopter.ID)
	if err != nil {
		renderFailure(c, err)
		return
	}
	render(c, gin.H{"history": history})
}

// @Summary Adopter dashboard
// @Tags adoption
// @Produce json
// @Success 200 {object} resdto.Page
// @Router /user/dashboard [get]
func (h *AdoptionHandler) UserDashboard(c *gin.Context) {
	adopter, ok := principalOf(c, account.KindAdopter)
	if !ok {
		return
	}

	view, err := h.adoptionQueries.AdopterDashboard(c.Request.Context(), adopter.ID)
	if err != nil {
		renderFailure(c, err)
		return
	}
	render(c, view)
}
