package controllers

import (
	"errors"
	"log"
	"net/http"

	"nexustap/services"

	"github.com/gin-gonic/gin"
)

// BridgeRequest is the body of POST /api/user/:address/bridge
type BridgeRequest struct {
	Amount float64 `json:"amount"`
}

// Tap spends one energy point for one pending point
func Tap(c *gin.Context) {
	address := c.Param("address")

	result, err := ledger.Tap(c.Request.Context(), address)
	if err != nil {
		if errors.Is(err, services.ErrNoEnergy) {
			c.JSON(http.StatusConflict, gin.H{"error": "No energy remaining - wait for regeneration"})
			return
		}
		log.Printf("Tap failed for %s: %v", address, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record tap"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ClaimTaps submits pending tap points to the chain and credits them once
// the transaction confirms. Pending points survive a failed submission.
func ClaimTaps(c *gin.Context) {
	address := c.Param("address")

	rec, receipt, err := ledger.ClaimTaps(c.Request.Context(), address)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNothingPending):
			c.JSON(http.StatusConflict, gin.H{"error": "No pending points to claim"})
		case errors.Is(err, services.ErrTxNotConfirmed):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Claim transaction was not confirmed", "txHash": receipt.Hash})
		default:
			log.Printf("Claim failed for %s: %v", address, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to submit claim transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":        rec,
		"txHash":      receipt.Hash,
		"explorerUrl": cfg.Chain.ExplorerURL + "/tx/" + receipt.Hash,
	})
}

// ClaimDaily awards the daily check-in bonus, subject to the 24h cooldown
func ClaimDaily(c *gin.Context) {
	address := c.Param("address")

	rec, err := ledger.ClaimDaily(c.Request.Context(), address)
	if err != nil {
		if errors.Is(err, services.ErrClaimCooldown) {
			c.JSON(http.StatusConflict, gin.H{"error": "Daily claim is still on cooldown"})
			return
		}
		log.Printf("Daily claim failed for %s: %v", address, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to claim daily bonus"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Bridge records a confirmed bridge swap and awards the tiered reward
func Bridge(c *gin.Context) {
	address := c.Param("address")

	var req BridgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	rec, err := ledger.RecordBridge(c.Request.Context(), address, req.Amount)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid amount"})
			return
		}
		log.Printf("Bridge record failed for %s: %v", address, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record bridge swap"})
		return
	}
	c.JSON(http.StatusOK, rec)
}
