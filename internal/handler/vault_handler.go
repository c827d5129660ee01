package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sublime247/Lumenpulse/internal/vault"
)

type VaultHandler struct {
	vault *vault.Vault
}

func NewVaultHandler(v *vault.Vault) *VaultHandler {
	return &VaultHandler{vault: v}
}

// Initialize 初始化资金库
func (h *VaultHandler) Initialize(c *gin.Context) {
	var req AdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	admin, ok := parseAddress(c, req.Admin)
	if !ok {
		return
	}

	if err := h.vault.Initialize(admin); err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "资金库初始化成功", nil)
}

// Status 获取资金库状态
func (h *VaultHandler) Status(c *gin.Context) {
	admin, err := h.vault.Admin()
	if err != nil {
		LedgerError(c, err)
		return
	}

	paused, err := h.vault.IsPaused()
	if err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", VaultStatusResponse{
		Admin:   admin.Hex(),
		Paused:  paused,
		Custody: h.vault.Custody().Hex(),
	})
}

// Pause 暂停资金库
func (h *VaultHandler) Pause(c *gin.Context) {
	var req AdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	admin, ok := parseAddress(c, req.Admin)
	if !ok {
		return
	}

	if err := h.vault.Pause(admin); err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "资金库已暂停", nil)
}

// Unpause 恢复资金库
func (h *VaultHandler) Unpause(c *gin.Context) {
	var req AdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	admin, ok := parseAddress(c, req.Admin)
	if !ok {
		return
	}

	if err := h.vault.Unpause(admin); err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "资金库已恢复", nil)
}

// SetAdmin 更换管理员
func (h *VaultHandler) SetAdmin(c *gin.Context) {
	var req SetAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	current, ok := parseAddress(c, req.Admin)
	if !ok {
		return
	}
	next, ok := parseAddress(c, req.NewAdmin)
	if !ok {
		return
	}

	if err := h.vault.SetAdmin(current, next); err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "管理员已更换", nil)
}

// FundMatchingPool 向匹配池注资
func (h *VaultHandler) FundMatchingPool(c *gin.Context) {
	var req FundPoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	admin, ok := parseAddress(c, req.Admin)
	if !ok {
		return
	}
	asset, ok := parseAddress(c, req.Asset)
	if !ok {
		return
	}
	amount, ok := parseAmount(c, req.Amount)
	if !ok {
		return
	}

	if err := h.vault.FundMatchingPool(admin, asset, amount); err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "匹配池注资成功", nil)
}

// MatchingPoolBalance 查询匹配池余额
func (h *VaultHandler) MatchingPoolBalance(c *gin.Context) {
	asset, ok := parseAddress(c, c.Param("asset"))
	if !ok {
		return
	}

	balance, err := h.vault.MatchingPoolBalance(asset)
	if err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{
		"asset":   asset.Hex(),
		"balance": balance.String(),
	})
}
