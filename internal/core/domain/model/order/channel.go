package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Channel represents how a fulfilled order reaches the customer.
// Like Status, it is a closed set; values outside it are rejected.
type Channel int

const (
	// ChannelUnknown represents an invalid or undefined channel.
	ChannelUnknown Channel = iota

	// ChannelPickup means the customer collects the order in store.
	// This is the default channel for new orders.
	ChannelPickup

	// ChannelDelivery means the order is shipped to the customer.
	ChannelDelivery
)

// getChannelStrings returns a map of Channel values to their string representations.
func getChannelStrings() map[Channel]string {
	return map[Channel]string{
		ChannelUnknown:  "unknown",
		ChannelPickup:   "pickup",
		ChannelDelivery: "delivery",
	}
}

// getValidChannelStrings returns a map of only valid Channel values.
func getValidChannelStrings() map[Channel]string {
	//nolint:exhaustive // ChannelUnknown is intentionally excluded as it's invalid
	return map[Channel]string{
		ChannelPickup:   "pickup",
		ChannelDelivery: "delivery",
	}
}

// ChannelFromString parses a channel from its lowercase string representation.
// Returns an error for any name outside the closed set.
func ChannelFromString(s string) (Channel, error) {
	for channel, name := range getValidChannelStrings() {
		if name == s {
			return channel, nil
		}
	}
	return ChannelUnknown, errs.NewValueIsInvalidErrorWithCause(
		"channel",
		fmt.Errorf("%q is not a valid channel", s),
	)
}

// Validate checks if the Channel value belongs to the closed set.
func (c Channel) Validate() error {
	if _, ok := getValidChannelStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"channel",
			fmt.Errorf("%d is not a valid channel", c),
		)
	}
	return nil
}

// String returns the lowercase name of the channel.
func (c Channel) String() string {
	if str, ok := getChannelStrings()[c]; ok {
		return str
	}
	return "unknown"
}
