package handler

import (
	"math/big"

	"github.com/sublime247/Lumenpulse/internal/vault"
)

// 通用响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// CreateProjectRequest 创建项目请求
type CreateProjectRequest struct {
	Owner        string `json:"owner" binding:"required"`
	Name         string `json:"name" binding:"required"`
	TargetAmount string `json:"targetAmount" binding:"required"`
	Asset        string `json:"asset" binding:"required"`
}

// DepositRequest 存款请求
type DepositRequest struct {
	User   string `json:"user" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

// WithdrawRequest 提款请求
type WithdrawRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// AdminRequest 管理员操作请求
type AdminRequest struct {
	Admin string `json:"admin" binding:"required"`
}

// SetAdminRequest 更换管理员请求
type SetAdminRequest struct {
	Admin    string `json:"admin" binding:"required"`
	NewAdmin string `json:"newAdmin" binding:"required"`
}

// FundPoolRequest 注入匹配池请求
type FundPoolRequest struct {
	Admin  string `json:"admin" binding:"required"`
	Asset  string `json:"asset" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

// RegisterContributorRequest 注册贡献者请求
type RegisterContributorRequest struct {
	Address string `json:"address" binding:"required"`
}

// UpdateReputationRequest 调整声誉请求
type UpdateReputationRequest struct {
	Admin string `json:"admin" binding:"required"`
	Delta string `json:"delta" binding:"required"`
}

// InitializeAssetRequest 注册资产请求
type InitializeAssetRequest struct {
	Admin    string `json:"admin" binding:"required"`
	Decimals uint32 `json:"decimals"`
	Name     string `json:"name" binding:"required"`
	Symbol   string `json:"symbol" binding:"required"`
}

// MintRequest 铸币请求
type MintRequest struct {
	To     string `json:"to" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

// FreezeRequest 冻结请求
type FreezeRequest struct {
	Address string `json:"address" binding:"required"`
	Frozen  *bool  `json:"frozen" binding:"required"`
}

// TransferRequest 转账请求
type TransferRequest struct {
	From   string `json:"from" binding:"required"`
	To     string `json:"to" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

// ApproveRequest 授权请求
type ApproveRequest struct {
	From      string `json:"from" binding:"required"`
	Spender   string `json:"spender" binding:"required"`
	Amount    string `json:"amount" binding:"required"`
	ExpiresAt int64  `json:"expiresAt"`
}

// ProjectResponse 项目响应模型
type ProjectResponse struct {
	ID                uint64 `json:"id"`
	Owner             string `json:"owner"`
	Name              string `json:"name"`
	TargetAmount      string `json:"targetAmount"`
	Asset             string `json:"asset"`
	TotalDeposited    string `json:"totalDeposited"`
	TotalWithdrawn    string `json:"totalWithdrawn"`
	IsActive          bool   `json:"isActive"`
	Balance           string `json:"balance"`
	MilestoneApproved bool   `json:"milestoneApproved"`
	ContributorCount  uint32 `json:"contributorCount"`
}

// VaultStatusResponse 资金库状态响应
type VaultStatusResponse struct {
	Admin   string `json:"admin"`
	Paused  bool   `json:"paused"`
	Custody string `json:"custody"`
}

// MatchResponse 匹配金额响应
type MatchResponse struct {
	ProjectID uint64 `json:"projectId"`
	Amount    string `json:"amount"`
}

// ToProjectResponse 将项目状态转换为响应模型
func ToProjectResponse(p vault.Project, balance *big.Int, approved bool, contributors uint32) ProjectResponse {
	return ProjectResponse{
		ID:                p.ID,
		Owner:             p.Owner.Hex(),
		Name:              p.Name,
		TargetAmount:      p.TargetAmount.String(),
		Asset:             p.Asset.Hex(),
		TotalDeposited:    p.TotalDeposited.String(),
		TotalWithdrawn:    p.TotalWithdrawn.String(),
		IsActive:          p.IsActive,
		Balance:           balance.String(),
		MilestoneApproved: approved,
		ContributorCount:  contributors,
	}
}
