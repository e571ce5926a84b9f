package cmd

import "time"

type Config struct {
	HTTPPort             string
	DefaultPricingPolicy string
	PaymentDelay         time.Duration
}
