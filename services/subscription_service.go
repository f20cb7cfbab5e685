package services

import (
	"time"

	"github.com/suportelm/nutri-ai-vision-scan-17/config"
	"github.com/suportelm/nutri-ai-vision-scan-17/models"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/customer"
	"github.com/stripe/stripe-go/v79/subscription"
)

// SubscriptionService resolves a user's premium tier against Stripe on demand
// and mirrors the outcome into the local subscribers table. Checkout happens
// entirely on Stripe-hosted payment links; there is no webhook, the client
// re-checks status after returning from checkout.
type SubscriptionService struct {
	priceMonthly string
	priceAnnual  string
}

func NewSubscriptionService(cfg *config.AppConfig) *SubscriptionService {
	stripe.Key = cfg.StripeKey
	return &SubscriptionService{
		priceMonthly: cfg.StripePriceMonthly,
		priceAnnual:  cfg.StripePriceAnnual,
	}
}

type SubscriptionStatus struct {
	Subscribed       bool       `json:"subscribed"`
	SubscriptionTier string     `json:"subscription_tier"`
	SubscriptionEnd  *time.Time `json:"subscription_end"`
}

func (s *SubscriptionService) tierForPrice(priceID string) string {
	switch priceID {
	case s.priceMonthly:
		return "premium"
	case s.priceAnnual:
		return "premium_annual"
	default:
		return "basic"
	}
}

func (s *SubscriptionService) CheckStatus(userID uint, email string) (*SubscriptionStatus, error) {
	custParams := &stripe.CustomerListParams{Email: stripe.String(email)}
	custParams.Limit = stripe.Int64(1)
	custIter := customer.List(custParams)

	if !custIter.Next() {
		if err := custIter.Err(); err != nil {
			return nil, err
		}
		// No Stripe customer means the free tier.
		status := &SubscriptionStatus{Subscribed: false, SubscriptionTier: "basic"}
		return status, s.upsertSubscriber(userID, email, "", "", "", status)
	}
	cust := custIter.Customer()

	subParams := &stripe.SubscriptionListParams{
		Customer: stripe.String(cust.ID),
		Status:   stripe.String(string(stripe.SubscriptionStatusActive)),
	}
	subParams.Limit = stripe.Int64(1)
	subIter := subscription.List(subParams)

	status := &SubscriptionStatus{Subscribed: false, SubscriptionTier: "basic"}
	priceID, subscriptionID := "", ""
	if subIter.Next() {
		sub := subIter.Subscription()
		end := time.Unix(sub.CurrentPeriodEnd, 0)
		subscriptionID = sub.ID
		if len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
			priceID = sub.Items.Data[0].Price.ID
		}
		status.Subscribed = true
		status.SubscriptionTier = s.tierForPrice(priceID)
		status.SubscriptionEnd = &end
	} else if err := subIter.Err(); err != nil {
		return nil, err
	}

	return status, s.upsertSubscriber(userID, email, cust.ID, priceID, subscriptionID, status)
}

func (s *SubscriptionService) upsertSubscriber(
	userID uint, email, customerID, priceID, subscriptionID string, status *SubscriptionStatus,
) error {
	sub := models.Subscriber{Email: email}
	if err := config.DB.Where("email = ?", email).FirstOrCreate(&sub).Error; err != nil {
		return err
	}

	sub.UserID = userID
	sub.StripeCustomerID = customerID
	sub.Subscribed = status.Subscribed
	sub.SubscriptionTier = status.SubscriptionTier
	sub.SubscriptionEnd = status.SubscriptionEnd
	sub.PriceID = priceID
	sub.SubscriptionID = subscriptionID

	return config.DB.Save(&sub).Error
}
