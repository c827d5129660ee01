package handler

import (
	"errors"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/sublime247/Lumenpulse/internal/token"
	"github.com/sublime247/Lumenpulse/internal/vault"
)

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// LedgerError 将账本错误映射为HTTP状态码
func LedgerError(c *gin.Context, err error) {
	ErrorResponse(c, statusFor(err), err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, vault.ErrProjectNotFound),
		errors.Is(err, vault.ErrContributorNotFound),
		errors.Is(err, token.ErrTokenNotFound):
		return http.StatusNotFound
	case errors.Is(err, vault.ErrUnauthorized),
		errors.Is(err, token.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, vault.ErrAlreadyInitialized),
		errors.Is(err, vault.ErrAlreadyRegistered),
		errors.Is(err, vault.ErrNotInitialized),
		errors.Is(err, vault.ErrProjectNotActive),
		errors.Is(err, vault.ErrMilestoneNotApproved),
		errors.Is(err, vault.ErrContractNotPaused),
		errors.Is(err, token.ErrAlreadyInitialized),
		errors.Is(err, token.ErrAccountFrozen):
		return http.StatusConflict
	case errors.Is(err, vault.ErrContractPaused):
		return http.StatusServiceUnavailable
	case errors.Is(err, vault.ErrInvalidAmount),
		errors.Is(err, vault.ErrInsufficientBalance),
		errors.Is(err, token.ErrInvalidAmount),
		errors.Is(err, token.ErrInsufficientBalance),
		errors.Is(err, token.ErrInsufficientAllowance),
		errors.Is(err, token.ErrAllowanceExpired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseAddress 解析并校验地址参数
func parseAddress(c *gin.Context, raw string) (common.Address, bool) {
	if !common.IsHexAddress(raw) {
		ErrorResponse(c, http.StatusBadRequest, "无效的地址: "+raw)
		return common.Address{}, false
	}
	return common.HexToAddress(raw), true
}

// parseAmount 解析十进制整数金额
func parseAmount(c *gin.Context, raw string) (*big.Int, bool) {
	amount, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		ErrorResponse(c, http.StatusBadRequest, "无效的金额: "+raw)
		return nil, false
	}
	return amount, true
}
