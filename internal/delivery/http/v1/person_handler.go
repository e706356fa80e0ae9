package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitment-portal-api/internal/delivery/http/response"
	"recruitment-portal-api/internal/domain"
)

type PersonHandler struct {
	personUC domain.PersonUsecase
}

// NewPersonHandler registers person profile routes
func NewPersonHandler(protected *gin.RouterGroup, personUC domain.PersonUsecase) {
	handler := &PersonHandler{personUC: personUC}

	persons := protected.Group("/person")
	{
		persons.GET("/me", handler.GetMyProfile)
	}
}

// GetMyProfile godoc
// @Summary      Own profile with competences and availability
// @Tags         person
// @Produce      json
// @Success      200  {object}  domain.PersonProfile
// @Failure      401  {object}  response.ErrorBody
// @Router       /person/me [get]
func (h *PersonHandler) GetMyProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	profile, err := h.personUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, profile)
}
