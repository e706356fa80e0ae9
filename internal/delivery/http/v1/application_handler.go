package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recruitment-portal-api/internal/delivery/http/middleware"
	"recruitment-portal-api/internal/delivery/http/response"
	"recruitment-portal-api/internal/domain"
	"recruitment-portal-api/pkg/apperror"
	"recruitment-portal-api/pkg/validation"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application workflow routes
func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}
	applicant := middleware.RequireRole(domain.RoleApplicant)
	recruiter := middleware.RequireRole(domain.RoleRecruiter)

	apps := protected.Group("/applications")
	{
		// Applicant routes
		apps.POST("", applicant, handler.Submit)
		apps.POST("/competences", applicant, handler.AddCompetence)
		apps.POST("/availability", applicant, handler.AddAvailability)
		apps.DELETE("/competences/:id", applicant, handler.DeleteCompetence)
		apps.DELETE("/availability/:id", applicant, handler.DeleteAvailability)
		apps.DELETE("/me", applicant, handler.DeleteOwn)

		// Recruiter routes
		apps.GET("", recruiter, handler.List)
		apps.PATCH("/:id/status", recruiter, handler.UpdateStatus)

		// gin's GET tree cannot hold the static /me and /competences
		// segments next to /:id, so one route dispatches on the parameter.
		apps.GET("/:id", handler.getByParam)
	}
}

// getByParam routes GET /applications/me, /applications/competences and
// /applications/:id, which share a path segment.
func (h *ApplicationHandler) getByParam(c *gin.Context) {
	switch c.Param("id") {
	case "me":
		h.GetOwn(c)
	case "competences":
		h.ListCompetences(c)
	default:
		h.GetDetails(c)
	}
}

// requireRole mirrors middleware.RequireRole for the dispatched GET routes.
func requireRole(c *gin.Context, role domain.Role) bool {
	if c.GetString(string(domain.KeyUserRole)) != string(role) {
		c.Error(apperror.Forbidden("Access denied"))
		return false
	}
	return true
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.Validation("Invalid application ID"))
		return 0, false
	}
	return id, true
}

type AddCompetenceRequest struct {
	CompetenceID      int64    `json:"competenceId" binding:"required,gt=0"`
	YearsOfExperience *float64 `json:"yearsOfExperience" binding:"required,gte=0"`
}

type AddAvailabilityRequest struct {
	FromDate string `json:"fromDate" binding:"required,iso_date"`
	ToDate   string `json:"toDate" binding:"required,iso_date"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=unhandled accepted rejected"`
}

// ListCompetences godoc
// @Summary      Competence catalog
// @Tags         applications
// @Produce      json
// @Success      200  {array}   domain.Competence
// @Failure      401  {object}  response.ErrorBody
// @Router       /applications/competences [get]
func (h *ApplicationHandler) ListCompetences(c *gin.Context) {
	competences, err := h.applicationUC.ListCompetences(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, competences)
}

// AddCompetence godoc
// @Summary      Add a competence to the profile
// @Description  Allowed while the application is absent or unhandled.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      AddCompetenceRequest  true  "Competence data"
// @Success      201   {object}  domain.CompetenceProfile
// @Failure      400   {object}  response.ErrorBody
// @Failure      403   {object}  response.ErrorBody
// @Failure      404   {object}  response.ErrorBody
// @Router       /applications/competences [post]
func (h *ApplicationHandler) AddCompetence(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req AddCompetenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Validation failed", validation.FormatValidationErrors(err)...))
		return
	}

	profile, err := h.applicationUC.AddCompetence(c.Request.Context(), userID, domain.AddCompetenceInput{
		CompetenceID:      req.CompetenceID,
		YearsOfExperience: *req.YearsOfExperience,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, profile)
}

// AddAvailability godoc
// @Summary      Add an availability period to the profile
// @Description  Allowed while the application is absent or unhandled.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      AddAvailabilityRequest  true  "Availability data"
// @Success      201   {object}  domain.Availability
// @Failure      400   {object}  response.ErrorBody
// @Failure      403   {object}  response.ErrorBody
// @Router       /applications/availability [post]
func (h *ApplicationHandler) AddAvailability(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req AddAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Validation failed", validation.FormatValidationErrors(err)...))
		return
	}

	availability, err := h.applicationUC.AddAvailability(c.Request.Context(), userID, domain.AddAvailabilityInput{
		FromDate: req.FromDate,
		ToDate:   req.ToDate,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, availability)
}

// DeleteCompetence godoc
// @Summary      Remove an own competence profile
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Competence profile ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /applications/competences/{id} [delete]
func (h *ApplicationHandler) DeleteCompetence(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.applicationUC.DeleteCompetence(c.Request.Context(), id, userID); err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Competence removed"})
}

// DeleteAvailability godoc
// @Summary      Remove an own availability period
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Availability ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /applications/availability/{id} [delete]
func (h *ApplicationHandler) DeleteAvailability(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.applicationUC.DeleteAvailability(c.Request.Context(), id, userID); err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Availability period removed"})
}

// Submit godoc
// @Summary      Submit the application
// @Description  Requires at least one competence and one availability period and no existing application.
// @Tags         applications
// @Produce      json
// @Success      201  {object}  domain.Application
// @Failure      400  {object}  response.ErrorBody
// @Failure      409  {object}  response.ErrorBody
// @Router       /applications [post]
func (h *ApplicationHandler) Submit(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	app, err := h.applicationUC.Submit(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, app)
}

// GetOwn godoc
// @Summary      Own application
// @Tags         applications
// @Produce      json
// @Success      200  {object}  domain.Application
// @Failure      404  {object}  response.ErrorBody
// @Router       /applications/me [get]
func (h *ApplicationHandler) GetOwn(c *gin.Context) {
	if !requireRole(c, domain.RoleApplicant) {
		return
	}
	userID := c.GetInt64(string(domain.KeyUserID))

	app, err := h.applicationUC.GetOwn(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, app)
}

// DeleteOwn godoc
// @Summary      Delete the own application
// @Description  Blocked when the application is accepted; otherwise removes the application together with all competence profiles and availability periods.
// @Tags         applications
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /applications/me [delete]
func (h *ApplicationHandler) DeleteOwn(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	if err := h.applicationUC.DeleteOwn(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Application deleted"})
}

// List godoc
// @Summary      List all applications (recruiter)
// @Tags         applications
// @Produce      json
// @Success      200  {array}   domain.ApplicationSummary
// @Failure      403  {object}  response.ErrorBody
// @Router       /applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	applications, err := h.applicationUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, applications)
}

// GetDetails godoc
// @Summary      Application details (recruiter)
// @Description  Includes the applicant's competences and availability.
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  domain.ApplicationDetails
// @Failure      403  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /applications/{id} [get]
func (h *ApplicationHandler) GetDetails(c *gin.Context) {
	if !requireRole(c, domain.RoleRecruiter) {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	details, err := h.applicationUC.GetDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, details)
}

// UpdateStatus godoc
// @Summary      Update application status (recruiter)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "New status"
// @Success      200   {object}  domain.Application
// @Failure      400   {object}  response.ErrorBody
// @Failure      404   {object}  response.ErrorBody
// @Router       /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Validation failed", validation.FormatValidationErrors(err)...))
		return
	}

	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		c.Error(apperror.Validation("Validation failed", err.Error()))
		return
	}

	app, err := h.applicationUC.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, app)
}
