package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sublime247/Lumenpulse/internal/vault"
)

type ContributorHandler struct {
	vault *vault.Vault
}

func NewContributorHandler(v *vault.Vault) *ContributorHandler {
	return &ContributorHandler{vault: v}
}

// Register 注册贡献者
func (h *ContributorHandler) Register(c *gin.Context) {
	var req RegisterContributorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	contributor, ok := parseAddress(c, req.Address)
	if !ok {
		return
	}

	if err := h.vault.RegisterContributor(contributor); err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "贡献者注册成功", nil)
}

// GetReputation 查询贡献者声誉
func (h *ContributorHandler) GetReputation(c *gin.Context) {
	contributor, ok := parseAddress(c, c.Param("address"))
	if !ok {
		return
	}

	reputation, err := h.vault.GetReputation(contributor)
	if err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{
		"address":    contributor.Hex(),
		"reputation": reputation.String(),
	})
}

// UpdateReputation 调整贡献者声誉
func (h *ContributorHandler) UpdateReputation(c *gin.Context) {
	contributor, ok := parseAddress(c, c.Param("address"))
	if !ok {
		return
	}

	var req UpdateReputationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	admin, ok := parseAddress(c, req.Admin)
	if !ok {
		return
	}
	delta, ok := parseAmount(c, req.Delta)
	if !ok {
		return
	}

	if err := h.vault.UpdateReputation(admin, contributor, delta); err != nil {
		LedgerError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "声誉已调整", nil)
}
