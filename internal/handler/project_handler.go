package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sublime247/Lumenpulse/internal/vault"
)

type ProjectHandler struct {
	vault *vault.Vault
}

func NewProjectHandler(v *vault.Vault) *ProjectHandler {
	return &ProjectHandler{vault: v}
}

func projectID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的项目ID")
		return 0, false
	}
	return id, true
}

// CreateProject 创建项目
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	owner, ok := parseAddress(c, req.Owner)
	if !ok {
		return
	}
	asset, ok := parseAddress(c, req.Asset)
	if !ok {
		return
	}
	target, ok := parseAmount(c, req.TargetAmount)
	if !ok {
		return
	}

	id, err := h.vault.CreateProject(owner, req.Name, target, asset)
	if err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "项目创建成功", gin.H{"id": id})
}

// GetProject 获取项目详情
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	project, err := h.vault.GetProject(id)
	if err != nil {
		LedgerError(c, err)
		return
	}

	balance, err := h.vault.GetBalance(id)
	if err != nil {
		LedgerError(c, err)
		return
	}

	approved, err := h.vault.IsMilestoneApproved(id)
	if err != nil {
		LedgerError(c, err)
		return
	}

	contributors, err := h.vault.ContributorCount(id)
	if err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", ToProjectResponse(project, balance, approved, contributors))
}

// ApproveMilestone 批准里程碑
func (h *ProjectHandler) ApproveMilestone(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	var req AdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	admin, ok := parseAddress(c, req.Admin)
	if !ok {
		return
	}

	if err := h.vault.ApproveMilestone(admin, id); err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "里程碑已批准", nil)
}

// Deposit 向项目存款
func (h *ProjectHandler) Deposit(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	user, ok := parseAddress(c, req.User)
	if !ok {
		return
	}
	amount, ok := parseAmount(c, req.Amount)
	if !ok {
		return
	}

	if err := h.vault.Deposit(user, id, amount); err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "存款成功", nil)
}

// Withdraw 项目方提款
func (h *ProjectHandler) Withdraw(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	var req WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	amount, ok := parseAmount(c, req.Amount)
	if !ok {
		return
	}

	if err := h.vault.Withdraw(id, amount); err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "提款成功", nil)
}

// GetContribution 查询单个贡献者的累计存款
func (h *ProjectHandler) GetContribution(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	contributor, ok := parseAddress(c, c.Param("address"))
	if !ok {
		return
	}

	amount, err := h.vault.GetContribution(id, contributor)
	if err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{
		"projectId":   id,
		"contributor": contributor.Hex(),
		"amount":      amount.String(),
	})
}

// CalculateMatch 计算项目的二次方匹配金额
func (h *ProjectHandler) CalculateMatch(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	amount, err := h.vault.CalculateMatch(id)
	if err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", MatchResponse{ProjectID: id, Amount: amount.String()})
}

// DistributeMatch 从匹配池向项目发放匹配资金
func (h *ProjectHandler) DistributeMatch(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	distributed, err := h.vault.DistributeMatch(id)
	if err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "匹配资金已发放", MatchResponse{ProjectID: id, Amount: distributed.String()})
}
