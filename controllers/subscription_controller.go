package controllers

import (
	"net/http"

	"github.com/suportelm/nutri-ai-vision-scan-17/config"
	"github.com/suportelm/nutri-ai-vision-scan-17/services"

	"github.com/gin-gonic/gin"
)

type SubscriptionController struct {
	subs *services.SubscriptionService
}

func NewSubscriptionController(subs *services.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{subs: subs}
}

// SubscriptionStatus asks Stripe what the caller is currently paying for and
// mirrors the answer into the subscribers table.
func (sc *SubscriptionController) SubscriptionStatus(c *gin.Context) {
	userID := c.GetUint("userID")
	email := c.GetString("email")

	status, err := sc.subs.CheckStatus(userID, email)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not verify subscription"})
		return
	}

	c.JSON(http.StatusOK, status)
}

// SubscriptionPlans lists the checkout links for the paid tiers. The links
// are pre-created Stripe payment links, not sessions.
func (sc *SubscriptionController) SubscriptionPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"plans": []gin.H{
			{
				"tier":         "premium",
				"interval":     "month",
				"checkout_url": config.App.CheckoutLinkMonthly,
			},
			{
				"tier":         "premium_annual",
				"interval":     "year",
				"checkout_url": config.App.CheckoutLinkAnnual,
			},
		},
	})
}
