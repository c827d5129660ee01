package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sublime247/Lumenpulse/internal/token"
)

type TokenHandler struct {
	tokens *token.Ledger
}

func NewTokenHandler(l *token.Ledger) *TokenHandler {
	return &TokenHandler{tokens: l}
}

// InitializeAsset 注册资产
func (h *TokenHandler) InitializeAsset(c *gin.Context) {
	asset, ok := parseAddress(c, c.Param("asset"))
	if !ok {
		return
	}

	var req InitializeAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	admin, ok := parseAddress(c, req.Admin)
	if !ok {
		return
	}

	if err := h.tokens.Initialize(asset, admin, req.Decimals, req.Name, req.Symbol); err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "资产注册成功", nil)
}

// Mint 铸币
func (h *TokenHandler) Mint(c *gin.Context) {
	asset, ok := parseAddress(c, c.Param("asset"))
	if !ok {
		return
	}

	var req MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	to, ok := parseAddress(c, req.To)
	if !ok {
		return
	}
	amount, ok := parseAmount(c, req.Amount)
	if !ok {
		return
	}

	if err := h.tokens.Mint(asset, to, amount); err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "铸币成功", nil)
}

// SetFrozen 冻结或解冻账户
func (h *TokenHandler) SetFrozen(c *gin.Context) {
	asset, ok := parseAddress(c, c.Param("asset"))
	if !ok {
		return
	}

	var req FreezeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	account, ok := parseAddress(c, req.Address)
	if !ok {
		return
	}

	var err error
	if *req.Frozen {
		err = h.tokens.Freeze(asset, account)
	} else {
		err = h.tokens.Unfreeze(asset, account)
	}
	if err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "账户冻结状态已更新", nil)
}

// GetMetadata 查询资产元数据
func (h *TokenHandler) GetMetadata(c *gin.Context) {
	asset, ok := parseAddress(c, c.Param("asset"))
	if !ok {
		return
	}

	meta, err := h.tokens.AssetMetadata(asset)
	if err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", meta)
}

// GetBalance 查询账户余额
func (h *TokenHandler) GetBalance(c *gin.Context) {
	asset, ok := parseAddress(c, c.Param("asset"))
	if !ok {
		return
	}
	account, ok := parseAddress(c, c.Param("address"))
	if !ok {
		return
	}

	balance, err := h.tokens.Balance(asset, account)
	if err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{
		"asset":   asset.Hex(),
		"address": account.Hex(),
		"balance": balance.String(),
	})
}

// GetAllowance 查询授权额度
func (h *TokenHandler) GetAllowance(c *gin.Context) {
	asset, ok := parseAddress(c, c.Param("asset"))
	if !ok {
		return
	}
	from, ok := parseAddress(c, c.Param("from"))
	if !ok {
		return
	}
	spender, ok := parseAddress(c, c.Param("spender"))
	if !ok {
		return
	}

	allowance, err := h.tokens.Allowance(asset, from, spender)
	if err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{
		"asset":     asset.Hex(),
		"from":      from.Hex(),
		"spender":   spender.Hex(),
		"allowance": allowance.String(),
	})
}

// Transfer 转账
func (h *TokenHandler) Transfer(c *gin.Context) {
	asset, ok := parseAddress(c, c.Param("asset"))
	if !ok {
		return
	}

	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	from, ok := parseAddress(c, req.From)
	if !ok {
		return
	}
	to, ok := parseAddress(c, req.To)
	if !ok {
		return
	}
	amount, ok := parseAmount(c, req.Amount)
	if !ok {
		return
	}

	if err := h.tokens.Transfer(asset, from, to, amount); err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "转账成功", nil)
}

// Approve 设置授权额度
func (h *TokenHandler) Approve(c *gin.Context) {
	asset, ok := parseAddress(c, c.Param("asset"))
	if !ok {
		return
	}

	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	from, ok := parseAddress(c, req.From)
	if !ok {
		return
	}
	spender, ok := parseAddress(c, req.Spender)
	if !ok {
		return
	}
	amount, ok := parseAmount(c, req.Amount)
	if !ok {
		return
	}

	if err := h.tokens.Approve(asset, from, spender, amount, req.ExpiresAt); err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "授权成功", nil)
}
