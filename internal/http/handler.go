package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/hr-contracts/internal/chain"
	"github.com/nurpe/hr-contracts/internal/http/middleware"
	"github.com/nurpe/hr-contracts/internal/model"
	"github.com/nurpe/hr-contracts/internal/service"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
)

type Handler struct {
	contracts  *service.ContractService
	onboarding *service.OnboardingService
	documents  *service.DocumentService
	log        zerolog.Logger
}

func NewHandler(
	contracts *service.ContractService,
	onboarding *service.OnboardingService,
	documents *service.DocumentService,
	log zerolog.Logger,
) *Handler {
	return &Handler{contracts: contracts, onboarding: onboarding, documents: documents, log: log}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := router.Group("/contracts")
	protected.Use(authMiddleware)
	protected.POST("/candidates", h.createCandidate)
	protected.POST("/propose", h.propose)
	protected.POST("/export", h.exportContracts)
	protected.POST("/:id/accept", h.accept)
	protected.POST("/:id/terminate", h.terminate)
	protected.GET("/:id", h.getContract)
	protected.GET("/:id/reviewer", h.getReviewer)
	protected.GET("/:id/document", h.contractDocument)
}

type contractPayload struct {
	ID             string                  `json:"id"`
	CandidateNetID string                  `json:"candidate_net_id"`
	StartDate      string                  `json:"start_date"`
	EndDate        *string                 `json:"end_date"`
	Salary         model.SalaryInfo        `json:"salary"`
	Additions      model.ContractAdditions `json:"additions"`
}

type createCandidateRequest struct {
	NetID    string           `json:"net_id"`
	Password string           `json:"password"`
	Contract *contractPayload `json:"contract"`
}

type proposeRequest struct {
	Contract *contractPayload `json:"contract"`
}

type exportContractsRequest struct {
	State     string `json:"state"`
	StartFrom string `json:"start_from"`
	StartTo   string `json:"start_to"`
}

type contractResponse struct {
	ID             string                  `json:"id"`
	CandidateNetID string                  `json:"candidate_net_id"`
	State          model.ContractState     `json:"state"`
	Reviewer       model.Reviewer          `json:"reviewer"`
	StartDate      string                  `json:"start_date"`
	EndDate        *string                 `json:"end_date"`
	Salary         model.SalaryInfo        `json:"salary"`
	Additions      model.ContractAdditions `json:"additions"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

type workflowResponse struct {
	Contract  contractResponse `json:"contract"`
	MessageID string           `json:"message_id"`
}

func (h *Handler) createCandidate(c *gin.Context) {
	session, ok := sessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req createCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contract, err := req.Contract.toModel()
	if err != nil {
		h.handleError(c, err)
		return
	}

	created, err := h.onboarding.CreateCandidate(c.Request.Context(), chain.OnboardingRequest{
		Session:        session,
		CandidateNetID: strings.TrimSpace(req.NetID),
		Password:       req.Password,
		Contract:       contract,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toContractResponse(created))
}

func (h *Handler) propose(c *gin.Context) {
	session, ok := sessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req proposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contract, err := req.Contract.toModel()
	if err != nil {
		h.handleError(c, err)
		return
	}

	result, err := h.contracts.Propose(c.Request.Context(), chain.ProposalRequest{Session: session, Contract: contract})
	h.respondWorkflow(c, result, err)
}

func (h *Handler) accept(c *gin.Context) {
	req, ok := h.decisionRequest(c)
	if !ok {
		return
	}
	result, err := h.contracts.Accept(c.Request.Context(), req)
	h.respondWorkflow(c, result, err)
}

func (h *Handler) terminate(c *gin.Context) {
	req, ok := h.decisionRequest(c)
	if !ok {
		return
	}
	result, err := h.contracts.Terminate(c.Request.Context(), req)
	h.respondWorkflow(c, result, err)
}

func (h *Handler) getContract(c *gin.Context) {
	req, ok := h.decisionRequest(c)
	if !ok {
		return
	}
	contract, err := h.contracts.Get(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponse(contract))
}

func (h *Handler) getReviewer(c *gin.Context) {
	req, ok := h.decisionRequest(c)
	if !ok {
		return
	}
	reviewer, err := h.contracts.Reviewer(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviewer": reviewer})
}

func (h *Handler) contractDocument(c *gin.Context) {
	req, ok := h.decisionRequest(c)
	if !ok {
		return
	}
	result, err := h.documents.ContractDocument(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, pdfContentType, result.Content)
}

func (h *Handler) exportContracts(c *gin.Context) {
	session, ok := sessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req exportContractsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var filter model.ContractFilter
	filter.State = model.ContractState(strings.ToUpper(strings.TrimSpace(req.State)))
	var err error
	if filter.StartFrom, err = parseOptionalDate(req.StartFrom); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_from"})
		return
	}
	if filter.StartTo, err = parseOptionalDate(req.StartTo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_to"})
		return
	}

	result, err := h.documents.ExportContracts(c.Request.Context(), chain.ExportRequest{Session: session, Filter: filter})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, xlsxContentType, result.Content)
}

func (h *Handler) decisionRequest(c *gin.Context) (chain.DecisionRequest, bool) {
	session, ok := sessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return chain.DecisionRequest{}, false
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract id"})
		return chain.DecisionRequest{}, false
	}
	return chain.DecisionRequest{Session: session, ContractID: id}, true
}

func (h *Handler) respondWorkflow(c *gin.Context, result *service.WorkflowResult, err error) {
	// the change is stored even when the message could not be delivered
	if err != nil && result != nil && result.Contract != nil && errors.Is(err, service.ErrNotificationFailed) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":    err.Error(),
			"contract": toContractResponse(result.Contract),
		})
		return
	}
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, workflowResponse{
		Contract:  toContractResponse(result.Contract),
		MessageID: result.MessageID,
	})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotDraft), errors.Is(err, service.ErrDuplicateIdentity):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidContract),
		errors.Is(err, service.ErrMissingCandidateID),
		errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDependencyFailed):
		h.log.Warn().Err(err).Str("path", c.FullPath()).Msg("dependency failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func sessionFrom(c *gin.Context) (chain.Session, bool) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		return chain.Session{}, false
	}
	token, _ := middleware.MustToken(c)
	return chain.Session{Principal: principal, Token: token}, true
}

// toModel returns nil for a missing payload so the check chain can reject it.
func (p *contractPayload) toModel() (*model.Contract, error) {
	if p == nil {
		return nil, nil
	}
	contract := &model.Contract{
		CandidateNetID: strings.TrimSpace(p.CandidateNetID),
		Salary:         p.Salary,
		Additions:      p.Additions,
	}
	if id := strings.TrimSpace(p.ID); id != "" {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, model.Fail(service.ErrInvalidInput, "invalid contract id")
		}
		contract.ID = parsed
	}

	start, err := parseOptionalDate(p.StartDate)
	if err != nil {
		return nil, model.Fail(service.ErrInvalidInput, "invalid start_date")
	}
	contract.StartDate = start

	if p.EndDate != nil && strings.TrimSpace(*p.EndDate) != "" {
		end, err := parseDate(*p.EndDate)
		if err != nil {
			return nil, model.Fail(service.ErrInvalidInput, "invalid end_date")
		}
		contract.EndDate = &end
	}
	return contract, nil
}

func toContractResponse(c *model.Contract) contractResponse {
	resp := contractResponse{
		ID:             c.ID.String(),
		CandidateNetID: c.CandidateNetID,
		State:          c.State,
		Reviewer:       c.Reviewer,
		StartDate:      c.StartDate.Format("2006-01-02"),
		Salary:         c.Salary,
		Additions:      c.Additions,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	if c.EndDate != nil {
		end := c.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}

func parseOptionalDate(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, nil
	}
	return parseDate(raw)
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		"2006-01-02",
		time.RFC3339,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return model.DateOnly(parsed), nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}
