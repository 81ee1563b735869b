package handler

import (
	"time"

	"donation-ledger/internal/adapter/http/middleware"
	"donation-ledger/internal/core/domain"
	"donation-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	maxJSONBody       = 1 << 20
	multipartOverhead = 64 << 10
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Donations        ports.MoneyDonationService
	Requests         ports.MoneyRequestService
	Ledger           ports.FundLedger
	BankAccounts     ports.BankAccountService
	Handoffs         ports.HandoffService
	Proofs           ports.ProofService // nil = uploads disabled
	TokenSvc         ports.TokenService
	RateLimiter      ports.RateLimiter      // nil = rate limiting disabled
	IdempotencyCache ports.IdempotencyCache // nil = Idempotency-Key ignored
	IdempotencyTTL   time.Duration
	HealthCheckers   []ports.HealthChecker
	RequestTimeout   time.Duration
	MaxProofSize     int64
	Mode             string
	Logger           zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimiter == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rule, deps.Logger)
	}
	idem := func(c *gin.Context) { c.Next() }
	if deps.IdempotencyCache != nil {
		idem = middleware.Idempotency(deps.IdempotencyCache, deps.IdempotencyTTL, deps.Logger)
	}

	admin := middleware.RequireRole(domain.RoleAdmin)
	donor := middleware.RequireRole(domain.RoleDonor, domain.RoleNGO, domain.RoleShelter, domain.RoleFertilizer)
	beneficiary := middleware.RequireRole(domain.RoleNGO, domain.RoleShelter, domain.RoleFertilizer)

	v1 := r.Group("/api/v1",
		middleware.RequestTimeout(deps.RequestTimeout),
		middleware.JWTAuth(deps.TokenSvc, deps.Logger),
	)

	// Uploads get their own body limit.
	if deps.Proofs != nil {
		proofs := NewProofHandler(deps.Proofs)
		v1.POST("/proofs", middleware.MaxBodySize(deps.MaxProofSize+multipartOverhead), rl("uploads"), proofs.Upload)
	}

	api := v1.Group("", middleware.MaxBodySize(maxJSONBody))

	donations := NewMoneyDonationHandler(deps.Donations)
	md := api.Group("/money-donations")
	{
		md.POST("", donor, rl("submissions"), idem, donations.Submit)
		md.GET("/mine", donor, rl("reads"), donations.ListMine)
		md.POST("/:id/request-review", donor, rl("submissions"), donations.RequestReview)
		md.GET("/pending", admin, rl("admin"), donations.ListPending)
		md.GET("/:id", admin, rl("admin"), donations.Get)
		md.POST("/:id/approve", admin, rl("admin"), donations.Approve)
		md.POST("/:id/reject", admin, rl("admin"), donations.Reject)
	}

	requests := NewMoneyRequestHandler(deps.Requests)
	mr := api.Group("/money-requests")
	{
		mr.POST("", beneficiary, rl("submissions"), idem, requests.Submit)
		mr.GET("", admin, rl("admin"), requests.List)
		mr.GET("/stats", admin, rl("admin"), requests.Stats)
		mr.GET("/:id", rl("reads"), requests.Get)
		mr.POST("/:id/approve", admin, rl("admin"), requests.Approve)
		mr.POST("/:id/reject", admin, rl("admin"), requests.Reject)
	}

	fund := NewFundHandler(deps.Ledger)
	api.GET("/fund-balance", rl("reads"), fund.Balance)
	api.GET("/fund-transactions", admin, rl("admin"), fund.ListTransactions)
	api.POST("/fund-adjustments", admin, rl("admin"), fund.Adjust)

	accounts := NewBankAccountHandler(deps.BankAccounts)
	ba := api.Group("/bank-accounts")
	{
		ba.POST("", rl("submissions"), accounts.Add)
		ba.GET("", rl("reads"), accounts.List)
		ba.GET("/:id", rl("reads"), accounts.Get)
	}

	handoffs := NewHandoffHandler(deps.Handoffs)
	dn := api.Group("/donations/:id")
	{
		dn.POST("/confirm-sent", rl("handoff"), handoffs.ConfirmSent)
		dn.POST("/confirm-received", rl("handoff"), handoffs.ConfirmReceived)
	}

	return r
}
